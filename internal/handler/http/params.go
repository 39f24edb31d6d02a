package http

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// yearParam reads the Buddhist-era {year} path parameter.
func yearParam(r *http.Request) (int, error) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || !validator.IsValidBuddhistYear(year) {
		return 0, validator.ValidationErrors{{Field: "year", Message: "year must be a Buddhist-era year"}}
	}
	return year, nil
}

// boolQuery parses an optional boolean query parameter.
func boolQuery(r *http.Request, key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, validator.ValidationErrors{{Field: key, Message: key + " must be true or false"}}
	}
	return v, nil
}

// floatQuery parses an optional numeric query parameter; nil when absent.
func floatQuery(r *http.Request, key string) (*float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, validator.ValidationErrors{{Field: key, Message: key + " must be a number"}}
	}
	return &v, nil
}

// decodeArrayOrObject decodes a bare JSON array into list, or an object
// into wrapper.
func decodeArrayOrObject(r *http.Request, list any, wrapper any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, list)
	}
	return json.Unmarshal(trimmed, wrapper)
}
