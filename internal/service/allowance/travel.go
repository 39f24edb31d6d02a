package allowance

import (
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/allowance"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/rate"
)

// Travel returns a record for every employee whose service years in yearBE
// hit a milestone exactly. Travel and local fares are flat, not doubled.
func (c *Calculator) Travel(employees []employee.Employee, table rate.Table, yearBE int) []allowance.TravelRecord {
	records := make([]allowance.TravelRecord, 0)
	for _, emp := range employees {
		serviceYears := emp.ServiceYears(yearBE)
		if !isMilestone(serviceYears) {
			continue
		}

		rates := c.ResolveRates(emp, table)
		days := atLeastOne(emp.TravelWorkingDays)
		hotelNights := days + 1
		perDiemDays := days + 2

		hotel := float64(hotelNights) * rates.Hotel
		perDiem := float64(perDiemDays) * rates.PerDiem

		records = append(records, allowance.TravelRecord{
			EmployeeResponse: snapshot(emp),
			RatePosition:     rates.Position,
			ServiceYears:     serviceYears,
			HotelNights:      hotelNights,
			PerDiemDays:      perDiemDays,
			Hotel:            hotel,
			PerDiem:          perDiem,
			TravelRoundTrip:  rates.Travel,
			LocalRoundTrip:   rates.Local,
			Total:            hotel + perDiem + rates.Travel + rates.Local,
		})
	}
	return records
}
