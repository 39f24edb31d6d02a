package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/budgetitem"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type BudgetItemHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type budgetItemHandlerImpl struct {
	budgetItemService budgetitem.BudgetItemService
}

func NewBudgetItemHandler(budgetItemService budgetitem.BudgetItemService) BudgetItemHandler {
	return &budgetItemHandlerImpl{
		budgetItemService: budgetItemService,
	}
}

func (h *budgetItemHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.budgetItemService.ListItems(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Save takes the whole sheet, either as a bare array or {"items": [...]}.
func (h *budgetItemHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req budgetitem.SaveBudgetItemsRequest
	if err := decodeArrayOrObject(r, &req.Items, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	results, err := h.budgetItemService.SaveItems(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Budget items saved", results)
}

func (h *budgetItemHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.budgetItemService.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Budget item deleted successfully"})
}
