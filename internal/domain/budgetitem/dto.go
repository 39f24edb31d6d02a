package budgetitem

import (
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/numeric"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/validator"
)

type BudgetItemRequest struct {
	ID          string                   `json:"id"`
	Type        string                   `json:"type"`
	Code        string                   `json:"code"`
	AccountCode string                   `json:"account_code"`
	Name        string                   `json:"name"`
	Values      map[string]numeric.Float `json:"values"`
	Notes       string                   `json:"notes"`
}

type SaveBudgetItemsRequest struct {
	Items []BudgetItemRequest `json:"items"`
}

func (r *SaveBudgetItemsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "items",
			Message: "at least one budget item is required",
		})
	}

	for i, item := range r.Items {
		prefix := "items[" + validator.Itoa(i) + "]"
		if validator.IsEmpty(item.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".name",
				Message: "name is required",
			})
		}
		for year := range item.Values {
			y, err := strconv.Atoi(year)
			if err != nil || !validator.IsValidBuddhistYear(y) {
				errs = append(errs, validator.ValidationError{
					Field:   prefix + ".values",
					Message: "value keys must be Buddhist-era years",
				})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntities assumes Validate has passed; row order becomes Position.
func (r *SaveBudgetItemsRequest) ToEntities() []Item {
	items := make([]Item, 0, len(r.Items))
	for i, req := range r.Items {
		item := Item{
			ID:          strings.TrimSpace(req.ID),
			Type:        strings.TrimSpace(req.Type),
			Code:        strings.TrimSpace(req.Code),
			AccountCode: strings.TrimSpace(req.AccountCode),
			Name:        strings.TrimSpace(req.Name),
			Notes:       req.Notes,
			Position:    i,
		}
		if len(req.Values) > 0 {
			item.Values = make(map[int]float64, len(req.Values))
			for year, v := range req.Values {
				y, _ := strconv.Atoi(year)
				item.Values[y] = float64(v)
			}
		}
		items = append(items, item)
	}
	return items
}

type BudgetItemResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type,omitempty"`
	Code        string          `json:"code,omitempty"`
	AccountCode string          `json:"account_code,omitempty"`
	Name        string          `json:"name"`
	Values      map[int]float64 `json:"values"`
	Notes       string          `json:"notes"`
}

func NewBudgetItemResponse(i Item) BudgetItemResponse {
	values := i.Values
	if values == nil {
		values = map[int]float64{}
	}
	return BudgetItemResponse{
		ID:          i.ID,
		Type:        i.Type,
		Code:        i.Code,
		AccountCode: i.AccountCode,
		Name:        i.Name,
		Values:      values,
		Notes:       i.Notes,
	}
}
