package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/allowance"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

type fakeAuthService struct {
	auth.AuthService
}

func (fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if req.Password != "s3cret" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	return auth.TokenResponse{AccessToken: "token", TokenType: "Bearer", Username: req.Username}, nil
}

func TestAuthHandler_Login(t *testing.T) {
	h := NewAuthHandler(fakeAuthService{})

	cases := []struct {
		name string
		body string
		code int
	}{
		{"malformed", `{`, http.StatusBadRequest},
		{"missing password", `{"username":"admin"}`, http.StatusUnprocessableEntity},
		{"wrong password", `{"username":"admin","password":"x"}`, http.StatusUnauthorized},
		{"ok", `{"username":"admin","password":"s3cret"}`, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tc.body)))
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

type fakeEmployeeService struct {
	employee.EmployeeService
	bulk employee.BulkUpsertEmployeeRequest
}

func (f *fakeEmployeeService) BulkSaveEmployees(ctx context.Context, req employee.BulkUpsertEmployeeRequest) (employee.BulkUpsertEmployeeResponse, error) {
	f.bulk = req
	if err := req.Validate(); err != nil {
		return employee.BulkUpsertEmployeeResponse{}, err
	}
	return employee.BulkUpsertEmployeeResponse{}, nil
}

func (f *fakeEmployeeService) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
}

func TestEmployeeHandler_BulkSaveAcceptsBothShapes(t *testing.T) {
	for name, body := range map[string]string{
		"array":   `[{"id":"E1","name":"a"},{"id":"E2","name":"b","start_year":"2560"}]`,
		"wrapped": `{"employees":[{"id":"E1","name":"a"},{"id":"E2","name":"b","start_year":2560}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			svc := &fakeEmployeeService{}
			h := NewEmployeeHandler(svc)

			rec := httptest.NewRecorder()
			h.BulkSave(rec, httptest.NewRequest(http.MethodPost, "/api/v1/employees/bulk", strings.NewReader(body)))

			assert.Equal(t, http.StatusOK, rec.Code)
			require.Len(t, svc.bulk.Employees, 2)
			assert.Equal(t, "E2", svc.bulk.Employees[1].ID)
			assert.EqualValues(t, 2560, svc.bulk.Employees[1].StartYear)
		})
	}

	t.Run("empty array", func(t *testing.T) {
		h := NewEmployeeHandler(&fakeEmployeeService{})
		rec := httptest.NewRecorder()
		h.BulkSave(rec, httptest.NewRequest(http.MethodPost, "/api/v1/employees/bulk", strings.NewReader(`[]`)))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestEmployeeHandler_NotFound(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/employees/{id}", NewEmployeeHandler(&fakeEmployeeService{}).Get)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employees/E404", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

type fakeBudgetService struct {
	allowance.BudgetService
	tripQuery      allowance.CompanyTripQuery
	includeSpecial bool
}

func (f *fakeBudgetService) CompanyTrip(ctx context.Context, query allowance.CompanyTripQuery) (allowance.Table[allowance.CompanyTripRecord], error) {
	if err := query.Validate(); err != nil {
		return allowance.Table[allowance.CompanyTripRecord]{}, err
	}
	f.tripQuery = query
	return allowance.Table[allowance.CompanyTripRecord]{Year: query.YearBE, Records: []allowance.CompanyTripRecord{}}, nil
}

func (f *fakeBudgetService) WorkDays(ctx context.Context, yearBE int, includeSpecial bool) (allowance.WorkDays, error) {
	f.includeSpecial = includeSpecial
	return allowance.WorkDays{Year: yearBE, IncludeSpecial: includeSpecial}, nil
}

func (f *fakeBudgetService) Travel(ctx context.Context, yearBE int) (allowance.Table[allowance.TravelRecord], error) {
	return allowance.Table[allowance.TravelRecord]{Year: yearBE, Records: []allowance.TravelRecord{}}, nil
}

func calculationRouter(svc allowance.BudgetService) *chi.Mux {
	h := NewCalculationHandler(svc)
	r := chi.NewRouter()
	r.Route("/calculations/{year}", func(r chi.Router) {
		r.Get("/travel", h.Travel)
		r.Get("/company-trip", h.CompanyTrip)
		r.Get("/workdays", h.WorkDays)
	})
	return r
}

func TestCalculationHandler_YearValidation(t *testing.T) {
	r := calculationRouter(&fakeBudgetService{})

	for _, path := range []string{"/calculations/abc/travel", "/calculations/2025x/travel", "/calculations/12/travel"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calculations/2568/travel", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCalculationHandler_CompanyTripQuery(t *testing.T) {
	svc := &fakeBudgetService{}
	r := calculationRouter(svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calculations/2568/company-trip?destination=%E0%B8%A3%E0%B8%B0%E0%B8%A2%E0%B8%AD%E0%B8%87&bus_fare=450", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ระยอง", svc.tripQuery.Destination)
	require.NotNil(t, svc.tripQuery.BusFare)
	assert.Equal(t, 450.0, *svc.tripQuery.BusFare)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calculations/2568/company-trip?bus_fare=-1", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calculations/2568/company-trip?bus_fare=abc", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	for _, fare := range []string{"NaN", "Inf", "%2BInf", "-Inf"} {
		svc.tripQuery = allowance.CompanyTripQuery{}
		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calculations/2568/company-trip?bus_fare="+fare, nil))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "bus_fare=%s", fare)
		assert.Nil(t, svc.tripQuery.BusFare, "bus_fare=%s reached the service", fare)
	}
}

func TestCalculationHandler_WorkDaysIncludeSpecial(t *testing.T) {
	svc := &fakeBudgetService{}
	r := calculationRouter(svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calculations/2568/workdays", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.includeSpecial)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calculations/2568/workdays?include_special=false", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, svc.includeSpecial)
}

type fakeHolidayService struct {
	holiday.HolidayService
}

func (fakeHolidayService) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.HolidayResponse{}, holiday.ErrDuplicateHoliday
}

func TestMasterHandler_CreateHolidayUsesPathYear(t *testing.T) {
	h := NewMasterHandler(nil, fakeHolidayService{})
	r := chi.NewRouter()
	r.Post("/holidays/{year}", h.CreateHoliday)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/holidays/2568", strings.NewReader(`{"date":"2024-01-01","name":"x"}`)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/holidays/2568", strings.NewReader(`{"date":"2025-01-01","name":"x"}`)))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
