package holiday

import (
	"strings"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	YearBE    int    `json:"-"`
	Date      string `json:"date"`
	Name      string `json:"name"`
	IsSpecial bool   `json:"is_special"`
}

func (r *CreateHolidayRequest) Validate() error {
	return validateHoliday(r.YearBE, r.Date, r.Name)
}

type UpdateHolidayRequest struct {
	ID        string `json:"-"`
	YearBE    int    `json:"-"`
	Date      string `json:"date"`
	Name      string `json:"name"`
	IsSpecial bool   `json:"is_special"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if err := validateHoliday(r.YearBE, r.Date, r.Name); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateHoliday(yearBE int, date, name string) error {
	var errs validator.ValidationErrors

	if !validator.IsValidBuddhistYear(yearBE) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a Buddhist-era year",
		})
	}

	if t, ok := validator.IsValidDate(strings.TrimSpace(date)); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	} else if validator.IsValidBuddhistYear(yearBE) && t.Year() != yearBE-543 {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: ErrHolidayYearMatch.Error(),
		})
	}

	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Name         string `json:"name"`
	IsSpecial    bool   `json:"is_special"`
	Compensatory bool   `json:"compensatory"`
}

func NewHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:           h.ID,
		Date:         h.Date,
		Name:         h.Name,
		IsSpecial:    h.Special(),
		Compensatory: h.Compensatory(),
	}
}
