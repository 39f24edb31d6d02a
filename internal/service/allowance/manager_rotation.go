package allowance

import (
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/allowance"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/rate"
)

// ManagerRotation prices rotational travel for top-level managers. The
// employee's WorkingDays is the only duration input.
func (c *Calculator) ManagerRotation(employees []employee.Employee, table rate.Table) []allowance.ManagerRotationRecord {
	records := make([]allowance.ManagerRotationRecord, 0)
	for _, emp := range employees {
		if emp.Level != TopLevelCode {
			continue
		}

		rates := c.ResolveRates(emp, table)
		days := atLeastOne(emp.WorkingDays)
		hotelNights := days + 1
		perDiemDays := days + 2

		perDiemCost := rates.PerDiem * float64(perDiemDays)
		accommodationCost := rates.Hotel * float64(hotelNights)
		other := otherVehicleCost(emp)

		records = append(records, allowance.ManagerRotationRecord{
			EmployeeResponse:  snapshot(emp),
			RatePosition:      rates.Position,
			HotelNights:       hotelNights,
			PerDiemDays:       perDiemDays,
			PerDiemCost:       perDiemCost,
			AccommodationCost: accommodationCost,
			TravelCost:        rates.Travel,
			TaxiCost:          rates.Local,
			OtherVehicleCost:  other,
			TotalTravel:       rates.Travel + rates.Local + other,
			Total:             perDiemCost + accommodationCost + rates.Travel + rates.Local + other,
		})
	}
	return records
}
