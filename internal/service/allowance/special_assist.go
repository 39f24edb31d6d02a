package allowance

import (
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/allowance"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/ledger"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/rate"
)

// SpecialAssist pays a year of rent and monthly assistance to eligible
// employees.
func (c *Calculator) SpecialAssist(employees []employee.Employee, table rate.Table) []allowance.SpecialAssistRecord {
	records := make([]allowance.SpecialAssistRecord, 0)
	for _, emp := range employees {
		if !emp.IsEligible() {
			continue
		}

		rates := c.ResolveRates(emp, table)
		totalRent := rates.Rent * MonthsPerYear
		totalMonthlyAssist := rates.MonthlyAssist * MonthsPerYear

		records = append(records, allowance.SpecialAssistRecord{
			EmployeeResponse:      snapshot(emp),
			RatePosition:          rates.Position,
			RentPerMonth:          rates.Rent,
			MonthlyAssistPerMonth: rates.MonthlyAssist,
			Months:                MonthsPerYear,
			TotalRent:             totalRent,
			TotalMonthlyAssist:    totalMonthlyAssist,
			LumpSum:               0,
			Total:                 totalRent + totalMonthlyAssist,
		})
	}
	return records
}

// SpecialAssistLedger totals the year's free-form items; each item is the
// product of its four numeric fields.
func (c *Calculator) SpecialAssistLedger(l ledger.SpecialAssistLedger) ledger.SpecialAssistResult {
	lines := make([]ledger.SpecialAssistLine, 0, len(l.Items))
	total := 0.0
	for _, item := range l.Items {
		itemTotal := item.TimesPerYear * item.Days * item.People * item.Rate
		lines = append(lines, ledger.SpecialAssistLine{
			Item:         item.Item,
			TimesPerYear: item.TimesPerYear,
			Days:         item.Days,
			People:       item.People,
			Rate:         item.Rate,
			ItemTotal:    itemTotal,
		})
		total += itemTotal
	}
	return ledger.SpecialAssistResult{
		Year:  l.Year,
		Items: lines,
		Notes: l.Notes,
		Total: total,
	}
}
