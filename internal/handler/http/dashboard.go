package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/allowance"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns the year's budget summary
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetHolidayStats returns holiday counts and the work-day estimate
	GetHolidayStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	budgetService allowance.BudgetService
}

func NewDashboardHandler(budgetService allowance.BudgetService) DashboardHandler {
	return &dashboardHandlerImpl{budgetService: budgetService}
}

// GetDashboard handles GET /dashboard/{year}
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.budgetService.Dashboard(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetHolidayStats handles GET /holidays/{year}/stats
func (h *dashboardHandlerImpl) GetHolidayStats(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.budgetService.HolidayStats(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
