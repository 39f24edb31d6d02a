package allowance

import (
	"strings"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/allowance"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/employee"
)

// FamilyVisitEligible is the single filter used for home-visit
// reimbursement: eligible status and a province to visit.
func FamilyVisitEligible(emp employee.Employee) bool {
	return emp.IsEligible() && strings.TrimSpace(emp.VisitProvince) != ""
}

// FamilyVisit prices a round trip home four times a year for every employee
// passed in. Filtering is up to the caller, see FamilyVisitEligible.
func (c *Calculator) FamilyVisit(employees []employee.Employee) []allowance.FamilyVisitRecord {
	records := make([]allowance.FamilyVisitRecord, 0, len(employees))
	for _, emp := range employees {
		roundTrip := emp.HomeVisitBusFare * 2
		total := roundTrip * FamilyVisitTimesPerYear

		records = append(records, allowance.FamilyVisitRecord{
			EmployeeResponse: snapshot(emp),
			RoundTripFare:    roundTrip,
			TimesPerYear:     FamilyVisitTimesPerYear,
			BusFareTotal:     total,
			Total:            total,
		})
	}
	return records
}
