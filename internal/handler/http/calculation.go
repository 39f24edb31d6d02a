package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/allowance"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/ledger"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/handler/http/response"
)

type CalculationHandler interface {
	Travel(w http.ResponseWriter, r *http.Request)
	SpecialAssist(w http.ResponseWriter, r *http.Request)
	FamilyVisit(w http.ResponseWriter, r *http.Request)
	CompanyTrip(w http.ResponseWriter, r *http.Request)
	ManagerRotation(w http.ResponseWriter, r *http.Request)
	Overtime(w http.ResponseWriter, r *http.Request)
	WorkDays(w http.ResponseWriter, r *http.Request)
}

type calculationHandlerImpl struct {
	budgetService allowance.BudgetService
}

func NewCalculationHandler(budgetService allowance.BudgetService) CalculationHandler {
	return &calculationHandlerImpl{budgetService: budgetService}
}

// yearly adapts a year-only service call into a handler.
func yearly[T any](fn func(r *http.Request, yearBE int) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := yearParam(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		result, err := fn(r, year)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		response.Success(w, result)
	}
}

// Travel handles GET /calculations/{year}/travel
func (h *calculationHandlerImpl) Travel(w http.ResponseWriter, r *http.Request) {
	yearly(func(r *http.Request, year int) (allowance.Table[allowance.TravelRecord], error) {
		return h.budgetService.Travel(r.Context(), year)
	})(w, r)
}

// SpecialAssist handles GET /calculations/{year}/special-assist
func (h *calculationHandlerImpl) SpecialAssist(w http.ResponseWriter, r *http.Request) {
	yearly(func(r *http.Request, year int) (allowance.Table[allowance.SpecialAssistRecord], error) {
		return h.budgetService.SpecialAssist(r.Context(), year)
	})(w, r)
}

// FamilyVisit handles GET /calculations/{year}/family-visit
func (h *calculationHandlerImpl) FamilyVisit(w http.ResponseWriter, r *http.Request) {
	yearly(func(r *http.Request, year int) (allowance.Table[allowance.FamilyVisitRecord], error) {
		return h.budgetService.FamilyVisit(r.Context(), year)
	})(w, r)
}

// CompanyTrip handles GET /calculations/{year}/company-trip?destination=&bus_fare=
func (h *calculationHandlerImpl) CompanyTrip(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	busFare, err := floatQuery(r, "bus_fare")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.budgetService.CompanyTrip(r.Context(), allowance.CompanyTripQuery{
		YearBE:      year,
		Destination: r.URL.Query().Get("destination"),
		BusFare:     busFare,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ManagerRotation handles GET /calculations/{year}/manager-rotation
func (h *calculationHandlerImpl) ManagerRotation(w http.ResponseWriter, r *http.Request) {
	yearly(func(r *http.Request, year int) (allowance.Table[allowance.ManagerRotationRecord], error) {
		return h.budgetService.ManagerRotation(r.Context(), year)
	})(w, r)
}

// Overtime handles GET /calculations/{year}/overtime
func (h *calculationHandlerImpl) Overtime(w http.ResponseWriter, r *http.Request) {
	yearly(func(r *http.Request, year int) (ledger.OvertimeResult, error) {
		return h.budgetService.Overtime(r.Context(), year)
	})(w, r)
}

// WorkDays handles GET /calculations/{year}/workdays?include_special=
// Special holidays count as days off unless include_special=false.
func (h *calculationHandlerImpl) WorkDays(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	includeSpecial, err := boolQuery(r, "include_special", true)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.budgetService.WorkDays(r.Context(), year, includeSpecial)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
