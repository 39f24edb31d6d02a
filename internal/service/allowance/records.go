package allowance

import (
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/allowance"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/employee"
)

// snapshot copies an employee into a response so that derived records never
// share the caller's override struct.
func snapshot(e employee.Employee) employee.EmployeeResponse {
	resp := employee.NewEmployeeResponse(e)
	if c := e.CustomTravelRates; c != nil {
		resp.CustomTravelRates = &employee.CustomRates{
			Hotel:             clone(c.Hotel),
			PerDiem:           clone(c.PerDiem),
			Travel:            clone(c.Travel),
			Local:             clone(c.Local),
			SouvenirAllowance: clone(c.SouvenirAllowance),
			Other:             clone(c.Other),
		}
	}
	return resp
}

func clone(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

// NewTable totals the records of a calculated sheet.
func NewTable[T any](yearBE int, records []T, total func(T) float64) allowance.Table[T] {
	if records == nil {
		records = []T{}
	}
	return allowance.Table[T]{Year: yearBE, Records: records, Total: sumTotals(records, total)}
}
