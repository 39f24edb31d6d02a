package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/rate"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	// Master rate handlers
	ListRates(w http.ResponseWriter, r *http.Request)
	GetRate(w http.ResponseWriter, r *http.Request)
	SaveRate(w http.ResponseWriter, r *http.Request)
	BulkSaveRates(w http.ResponseWriter, r *http.Request)
	DeleteRate(w http.ResponseWriter, r *http.Request)

	// Holiday handlers
	ListHolidayYears(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	UpdateHoliday(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	rateService    rate.RateService
	holidayService holiday.HolidayService
}

func NewMasterHandler(rateService rate.RateService, holidayService holiday.HolidayService) MasterHandler {
	return &masterHandlerImpl{
		rateService:    rateService,
		holidayService: holidayService,
	}
}

// ==================== MASTER RATE HANDLERS ====================

func (h *masterHandlerImpl) ListRates(w http.ResponseWriter, r *http.Request) {
	results, err := h.rateService.ListRates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) GetRate(w http.ResponseWriter, r *http.Request) {
	result, err := h.rateService.GetRate(r.Context(), chi.URLParam(r, "level"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveRate upserts one bundle. On PUT the path level wins over the body.
func (h *masterHandlerImpl) SaveRate(w http.ResponseWriter, r *http.Request) {
	var req rate.UpsertRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if level := chi.URLParam(r, "level"); level != "" {
		req.Level = level
	}

	result, err := h.rateService.SaveRate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Master rate saved successfully", result)
}

func (h *masterHandlerImpl) BulkSaveRates(w http.ResponseWriter, r *http.Request) {
	var req rate.BulkUpsertRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	results, err := h.rateService.BulkSaveRates(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Master rates saved successfully", results)
}

func (h *masterHandlerImpl) DeleteRate(w http.ResponseWriter, r *http.Request) {
	if err := h.rateService.DeleteRate(r.Context(), chi.URLParam(r, "level")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Master rate deleted successfully"})
}

// ==================== HOLIDAY HANDLERS ====================

func (h *masterHandlerImpl) ListHolidayYears(w http.ResponseWriter, r *http.Request) {
	years, err := h.holidayService.ListYears(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, years)
}

func (h *masterHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.holidayService.ListHolidays(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.YearBE = year

	result, err := h.holidayService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created successfully", result)
}

func (h *masterHandlerImpl) UpdateHoliday(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req holiday.UpdateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.YearBE = year

	result, err := h.holidayService.UpdateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday updated successfully", result)
}

func (h *masterHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if err := h.holidayService.DeleteHoliday(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Holiday deleted successfully"})
}
