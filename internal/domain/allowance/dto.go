package allowance

import (
	"strings"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/validator"
)

// CompanyTripQuery overrides the configured trip destination and bus fare.
type CompanyTripQuery struct {
	YearBE      int
	Destination string
	BusFare     *float64
}

func (q *CompanyTripQuery) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidBuddhistYear(q.YearBE) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a Buddhist-era year",
		})
	}
	if q.BusFare != nil && !validator.IsNonNegative(*q.BusFare) {
		errs = append(errs, validator.ValidationError{
			Field:   "bus_fare",
			Message: "bus_fare must not be negative",
		})
	}
	q.Destination = strings.TrimSpace(q.Destination)

	if len(errs) > 0 {
		return errs
	}
	return nil
}
