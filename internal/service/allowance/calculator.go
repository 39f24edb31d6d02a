package allowance

import (
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/rate"
)

// Calculator holds the allowance formulas. Every method is pure: inputs are
// never mutated and each call returns freshly built records.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// ResolveRates returns the effective rate bundle for an employee. Unknown
// levels resolve to a zero bundle labelled as unspecified. Custom rates may
// override hotel, per diem, travel, local and souvenir allowance; rent and
// monthly assistance always come from the table.
func (c *Calculator) ResolveRates(emp employee.Employee, table rate.Table) rate.Bundle {
	bundle, ok := table[emp.Level]
	if !ok {
		bundle = rate.Bundle{Position: rate.UnspecifiedPosition}
	}
	bundle.Level = emp.Level

	custom := emp.CustomTravelRates
	if custom == nil {
		return bundle
	}
	if custom.Hotel != nil {
		bundle.Hotel = *custom.Hotel
	}
	if custom.PerDiem != nil {
		bundle.PerDiem = *custom.PerDiem
	}
	if custom.Travel != nil {
		bundle.Travel = *custom.Travel
	}
	if custom.Local != nil {
		bundle.Local = *custom.Local
	}
	if custom.SouvenirAllowance != nil {
		bundle.SouvenirAllowance = *custom.SouvenirAllowance
	}
	return bundle
}

func otherVehicleCost(emp employee.Employee) float64 {
	if emp.CustomTravelRates == nil || emp.CustomTravelRates.Other == nil {
		return 0
	}
	return *emp.CustomTravelRates.Other
}
