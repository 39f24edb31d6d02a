package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/numeric"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/validator"
)

type CustomRatesRequest struct {
	Hotel             *numeric.Float `json:"hotel,omitempty"`
	PerDiem           *numeric.Float `json:"per_diem,omitempty"`
	Travel            *numeric.Float `json:"travel,omitempty"`
	Local             *numeric.Float `json:"local,omitempty"`
	SouvenirAllowance *numeric.Float `json:"souvenir_allowance,omitempty"`
	Other             *numeric.Float `json:"other,omitempty"`
}

func (c *CustomRatesRequest) toEntity() *CustomRates {
	if c == nil {
		return nil
	}
	rates := &CustomRates{
		Hotel:             numeric.FloatPtr(c.Hotel),
		PerDiem:           numeric.FloatPtr(c.PerDiem),
		Travel:            numeric.FloatPtr(c.Travel),
		Local:             numeric.FloatPtr(c.Local),
		SouvenirAllowance: numeric.FloatPtr(c.SouvenirAllowance),
		Other:             numeric.FloatPtr(c.Other),
	}
	if *rates == (CustomRates{}) {
		return nil
	}
	return rates
}

// UpsertEmployeeRequest is a full-record replace. Numeric fields accept
// numbers or numeric strings; anything unparseable becomes 0.
type UpsertEmployeeRequest struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Gender            string              `json:"gender"`
	StartYear         numeric.Int         `json:"start_year"`
	Level             string              `json:"level"`
	Status            string              `json:"status"`
	VisitProvince     string              `json:"visit_province"`
	HomeVisitBusFare  numeric.Float       `json:"home_visit_bus_fare"`
	WorkingDays       numeric.Int         `json:"working_days"`
	TravelWorkingDays numeric.Int         `json:"travel_working_days"`
	CustomTravelRates *CustomRatesRequest `json:"custom_travel_rates,omitempty"`
	Position          int                 `json:"position"`
}

func (r *UpsertEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID != "" && !validator.IsValidEmployeeID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must not contain whitespace or '/' and must not exceed 64 characters",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if _, ok := ParseGender(r.Gender); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: ErrInvalidGender.Error(),
		})
	}

	if _, ok := ParseStatus(r.Status); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: ErrInvalidStatus.Error(),
		})
	}

	if !validator.IsValidBuddhistYear(int(r.StartYear)) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_year",
			Message: "start_year must be a Buddhist-era year",
		})
	}

	if !validator.IsValidLevel(strings.TrimSpace(r.Level)) {
		errs = append(errs, validator.ValidationError{
			Field:   "level",
			Message: "level is required and must not exceed 20 characters",
		})
	}

	if !validator.IsNonNegative(float64(r.HomeVisitBusFare)) {
		errs = append(errs, validator.ValidationError{
			Field:   "home_visit_bus_fare",
			Message: "home_visit_bus_fare must not be negative",
		})
	}

	if r.WorkingDays < 0 || r.TravelWorkingDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "working_days",
			Message: "working days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity assumes Validate has passed. Zero working days become 1.
func (r *UpsertEmployeeRequest) ToEntity() Employee {
	gender, _ := ParseGender(r.Gender)
	status, _ := ParseStatus(r.Status)

	workingDays := int(r.WorkingDays)
	if workingDays <= 0 {
		workingDays = 1
	}
	travelWorkingDays := int(r.TravelWorkingDays)
	if travelWorkingDays <= 0 {
		travelWorkingDays = 1
	}

	return Employee{
		ID:                strings.TrimSpace(r.ID),
		Name:              strings.TrimSpace(r.Name),
		Gender:            gender,
		StartYear:         int(r.StartYear),
		Level:             strings.TrimSpace(r.Level),
		Status:            status,
		VisitProvince:     strings.TrimSpace(r.VisitProvince),
		HomeVisitBusFare:  float64(r.HomeVisitBusFare),
		WorkingDays:       workingDays,
		TravelWorkingDays: travelWorkingDays,
		CustomTravelRates: r.CustomTravelRates.toEntity(),
		Position:          r.Position,
	}
}

type BulkUpsertEmployeeRequest struct {
	Employees []UpsertEmployeeRequest `json:"employees"`
}

// Validate only rejects an empty payload; per-record problems are reported
// in the bulk response instead.
func (r *BulkUpsertEmployeeRequest) Validate() error {
	if len(r.Employees) == 0 {
		return validator.ValidationErrors{{Field: "employees", Message: ErrEmptyBulkPayload.Error()}}
	}
	return nil
}

type BulkUpsertFailure struct {
	Index int    `json:"index"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error"`
}

type BulkUpsertEmployeeResponse struct {
	Saved  []EmployeeResponse  `json:"saved"`
	Failed []BulkUpsertFailure `json:"failed"`
}

type EmployeeResponse struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Gender            Gender       `json:"gender"`
	StartYear         int          `json:"start_year"`
	Level             string       `json:"level"`
	Status            Status       `json:"status"`
	VisitProvince     string       `json:"visit_province"`
	HomeVisitBusFare  float64      `json:"home_visit_bus_fare"`
	WorkingDays       int          `json:"working_days"`
	TravelWorkingDays int          `json:"travel_working_days"`
	CustomTravelRates *CustomRates `json:"custom_travel_rates,omitempty"`
	Position          int          `json:"position"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                e.ID,
		Name:              e.Name,
		Gender:            e.Gender,
		StartYear:         e.StartYear,
		Level:             e.Level,
		Status:            e.Status,
		VisitProvince:     e.VisitProvince,
		HomeVisitBusFare:  e.HomeVisitBusFare,
		WorkingDays:       e.WorkingDays,
		TravelWorkingDays: e.TravelWorkingDays,
		CustomTravelRates: e.CustomTravelRates,
		Position:          e.Position,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}
