package allowance

import (
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/ledger"
)

// Overtime totals a year's holiday-overtime items. Items without an hourly
// rate, or with a zero one, use salary / OvertimeDivisor.
func (c *Calculator) Overtime(l ledger.OvertimeLedger) ledger.OvertimeResult {
	defaultRate := l.Salary / OvertimeDivisor

	lines := make([]ledger.OvertimeLine, 0, len(l.Items))
	total := 0.0
	for _, item := range l.Items {
		hourlyRate := defaultRate
		var explicit *float64
		if item.HourlyRate != nil {
			v := *item.HourlyRate
			explicit = &v
			if v != 0 {
				hourlyRate = v
			}
		}

		itemTotal := item.People * item.Days * item.Hours * hourlyRate
		lines = append(lines, ledger.OvertimeLine{
			Item:                item.Item,
			Days:                item.Days,
			Hours:               item.Hours,
			People:              item.People,
			HourlyRate:          explicit,
			EffectiveHourlyRate: hourlyRate,
			ItemTotal:           itemTotal,
		})
		total += itemTotal
	}

	return ledger.OvertimeResult{
		Year:   l.Year,
		Salary: l.Salary,
		Items:  lines,
		Notes:  l.Notes,
		Total:  total,
	}
}
