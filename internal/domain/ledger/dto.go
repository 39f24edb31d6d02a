package ledger

import (
	"strings"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/numeric"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/validator"
)

type SpecialAssistItemRequest struct {
	Item         string        `json:"item"`
	TimesPerYear numeric.Float `json:"times_per_year"`
	Days         numeric.Float `json:"days"`
	People       numeric.Float `json:"people"`
	Rate         numeric.Float `json:"rate"`
}

type SetSpecialAssistRequest struct {
	YearBE int                        `json:"-"`
	Items  []SpecialAssistItemRequest `json:"items"`
	Notes  string                     `json:"notes"`
}

func (r *SetSpecialAssistRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidBuddhistYear(r.YearBE) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a Buddhist-era year",
		})
	}

	for i, item := range r.Items {
		if !validator.IsNonNegative(float64(item.TimesPerYear), float64(item.Days), float64(item.People), float64(item.Rate)) {
			errs = append(errs, validator.ValidationError{
				Field:   "items[" + validator.Itoa(i) + "]",
				Message: "item values must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *SetSpecialAssistRequest) ToEntity() SpecialAssistLedger {
	items := make([]SpecialAssistItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, SpecialAssistItem{
			Item:         strings.TrimSpace(item.Item),
			TimesPerYear: float64(item.TimesPerYear),
			Days:         float64(item.Days),
			People:       float64(item.People),
			Rate:         float64(item.Rate),
		})
	}
	return SpecialAssistLedger{
		Year:  r.YearBE,
		Items: items,
		Notes: r.Notes,
	}
}

type OvertimeItemRequest struct {
	Item       string         `json:"item"`
	Days       numeric.Float  `json:"days"`
	Hours      numeric.Float  `json:"hours"`
	People     numeric.Float  `json:"people"`
	HourlyRate *numeric.Float `json:"hourly_rate"`
}

type SetOvertimeRequest struct {
	YearBE int                   `json:"-"`
	Salary numeric.Float         `json:"salary"`
	Items  []OvertimeItemRequest `json:"items"`
	Notes  string                `json:"notes"`
}

func (r *SetOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidBuddhistYear(r.YearBE) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a Buddhist-era year",
		})
	}

	if !validator.IsNonNegative(float64(r.Salary)) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	for i, item := range r.Items {
		values := []float64{float64(item.Days), float64(item.Hours), float64(item.People)}
		if item.HourlyRate != nil {
			values = append(values, float64(*item.HourlyRate))
		}
		if !validator.IsNonNegative(values...) {
			errs = append(errs, validator.ValidationError{
				Field:   "items[" + validator.Itoa(i) + "]",
				Message: "item values must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *SetOvertimeRequest) ToEntity() OvertimeLedger {
	items := make([]OvertimeItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, OvertimeItem{
			Item:       strings.TrimSpace(item.Item),
			Days:       float64(item.Days),
			Hours:      float64(item.Hours),
			People:     float64(item.People),
			HourlyRate: numeric.FloatPtr(item.HourlyRate),
		})
	}
	return OvertimeLedger{
		Year:   r.YearBE,
		Salary: float64(r.Salary),
		Items:  items,
		Notes:  r.Notes,
	}
}
