package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/ledger"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/handler/http/response"
)

type LedgerHandler interface {
	GetSpecialAssist(w http.ResponseWriter, r *http.Request)
	SetSpecialAssist(w http.ResponseWriter, r *http.Request)
	GetOvertime(w http.ResponseWriter, r *http.Request)
	SetOvertime(w http.ResponseWriter, r *http.Request)
}

type ledgerHandlerImpl struct {
	ledgerService ledger.LedgerService
}

func NewLedgerHandler(ledgerService ledger.LedgerService) LedgerHandler {
	return &ledgerHandlerImpl{
		ledgerService: ledgerService,
	}
}

func (h *ledgerHandlerImpl) GetSpecialAssist(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.ledgerService.GetSpecialAssist(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *ledgerHandlerImpl) SetSpecialAssist(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req ledger.SetSpecialAssistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.YearBE = year

	result, err := h.ledgerService.SetSpecialAssist(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Special assist ledger saved", result)
}

func (h *ledgerHandlerImpl) GetOvertime(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.ledgerService.GetOvertime(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *ledgerHandlerImpl) SetOvertime(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req ledger.SetOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.YearBE = year

	result, err := h.ledgerService.SetOvertime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime ledger saved", result)
}
