package allowance

import (
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/allowance"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/ledger"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/rate"
)

func sumTotals[T any](records []T, total func(T) float64) float64 {
	sum := 0.0
	for _, r := range records {
		sum += total(r)
	}
	return sum
}

// Dashboard aggregates every sheet of a year. The ledgers arrive already
// totalled. The company trip uses the configured destination and bus fare
// over all employees.
func (c *Calculator) Dashboard(
	yearBE int,
	employees []employee.Employee,
	table rate.Table,
	holidays []holiday.Holiday,
	specialAssist ledger.SpecialAssistResult,
	overtime ledger.OvertimeResult,
	trip TripSettings,
) allowance.Dashboard {
	d := allowance.Dashboard{
		Year:             yearBE,
		TotalEmployees:   len(employees),
		EmployeesByLevel: make(map[string]int),
		WorkDays:         c.WorkDays(yearBE, holidays, true),
	}

	for _, e := range employees {
		if e.IsEligible() {
			d.ActiveEmployees++
		}
		d.EmployeesByLevel[e.Level]++
	}

	d.TravelTotal = sumTotals(c.Travel(employees, table, yearBE), func(r allowance.TravelRecord) float64 { return r.Total })
	d.SpecialAssistTotal = specialAssist.Total
	d.AssistanceTotal = sumTotals(c.SpecialAssist(employees, table), func(r allowance.SpecialAssistRecord) float64 { return r.Total })
	d.FamilyVisitTotal = sumTotals(c.FamilyVisit(filterEmployees(employees, FamilyVisitEligible)), func(r allowance.FamilyVisitRecord) float64 { return r.Total })
	d.CompanyTripTotal = sumTotals(c.CompanyTrip(employees, table, trip.Destination, trip.BusFare), func(r allowance.CompanyTripRecord) float64 { return r.Total })
	d.ManagerRotationTotal = sumTotals(c.ManagerRotation(employees, table), func(r allowance.ManagerRotationRecord) float64 { return r.Total })
	d.OvertimeTotal = overtime.Total

	d.TotalExpenses = d.TravelTotal + d.SpecialAssistTotal + d.AssistanceTotal +
		d.FamilyVisitTotal + d.CompanyTripTotal + d.ManagerRotationTotal + d.OvertimeTotal

	return d
}
