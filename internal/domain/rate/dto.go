package rate

import (
	"strings"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/numeric"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/validator"
)

type UpsertRateRequest struct {
	Level             string        `json:"level"`
	Position          string        `json:"position"`
	Rent              numeric.Float `json:"rent"`
	MonthlyAssist     numeric.Float `json:"monthly_assist"`
	SouvenirAllowance numeric.Float `json:"souvenir_allowance"`
	Travel            numeric.Float `json:"travel"`
	Local             numeric.Float `json:"local"`
	PerDiem           numeric.Float `json:"per_diem"`
	Hotel             numeric.Float `json:"hotel"`
}

func (r *UpsertRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLevel(strings.TrimSpace(r.Level)) {
		errs = append(errs, validator.ValidationError{
			Field:   "level",
			Message: "level is required and must not exceed 20 characters",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if !validator.IsNonNegative(
		float64(r.Rent), float64(r.MonthlyAssist), float64(r.SouvenirAllowance),
		float64(r.Travel), float64(r.Local), float64(r.PerDiem), float64(r.Hotel),
	) {
		errs = append(errs, validator.ValidationError{
			Field:   "rates",
			Message: "rate amounts must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *UpsertRateRequest) ToEntity() Bundle {
	return Bundle{
		Level:             strings.TrimSpace(r.Level),
		Position:          strings.TrimSpace(r.Position),
		Rent:              float64(r.Rent),
		MonthlyAssist:     float64(r.MonthlyAssist),
		SouvenirAllowance: float64(r.SouvenirAllowance),
		Travel:            float64(r.Travel),
		Local:             float64(r.Local),
		PerDiem:           float64(r.PerDiem),
		Hotel:             float64(r.Hotel),
	}
}

type BulkUpsertRateRequest struct {
	Rates []UpsertRateRequest `json:"rates"`
}

func (r *BulkUpsertRateRequest) Validate() error {
	if len(r.Rates) == 0 {
		return validator.ValidationErrors{{Field: "rates", Message: ErrEmptyBulkPayload.Error()}}
	}

	var errs validator.ValidationErrors
	seen := make(map[string]bool, len(r.Rates))
	for i := range r.Rates {
		if err := r.Rates[i].Validate(); err != nil {
			for _, e := range err.(validator.ValidationErrors) {
				e.Field = "rates[" + validator.Itoa(i) + "]." + e.Field
				errs = append(errs, e)
			}
			continue
		}
		level := strings.TrimSpace(r.Rates[i].Level)
		if seen[level] {
			errs = append(errs, validator.ValidationError{
				Field:   "rates[" + validator.Itoa(i) + "].level",
				Message: "duplicate level " + level,
			})
		}
		seen[level] = true
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RateResponse struct {
	Level             string  `json:"level"`
	Position          string  `json:"position"`
	Rent              float64 `json:"rent"`
	MonthlyAssist     float64 `json:"monthly_assist"`
	SouvenirAllowance float64 `json:"souvenir_allowance"`
	Travel            float64 `json:"travel"`
	Local             float64 `json:"local"`
	PerDiem           float64 `json:"per_diem"`
	Hotel             float64 `json:"hotel"`
}

func NewRateResponse(b Bundle) RateResponse {
	return RateResponse{
		Level:             b.Level,
		Position:          b.Position,
		Rent:              b.Rent,
		MonthlyAssist:     b.MonthlyAssist,
		SouvenirAllowance: b.SouvenirAllowance,
		Travel:            b.Travel,
		Local:             b.Local,
		PerDiem:           b.PerDiem,
		Hotel:             b.Hotel,
	}
}
