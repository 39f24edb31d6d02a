package validator

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ValidationError is one failed field check on a request DTO.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors collects every failed check so a client sees all of them
// in one 422 response.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var b strings.Builder
	for i, err := range v {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Field)
		b.WriteString(": ")
		b.WriteString(err.Message)
	}
	return b.String()
}

// ToMap keys messages by field; a later message for the same field wins.
func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v))
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidDate parses an ISO calendar date (YYYY-MM-DD).
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(time.DateOnly, dateStr)
	return date, err == nil
}

// Job level keys: "7", "4.5", or any short label such as "local".
var levelRegex = regexp.MustCompile(`^[\p{L}\p{M}\p{N}._-]{1,20}$`)

func IsValidLevel(level string) bool {
	return levelRegex.MatchString(level)
}

// Employee ids are free-form but must not carry whitespace or slashes.
var employeeIDRegex = regexp.MustCompile(`^[^\s/]{1,64}$`)

func IsValidEmployeeID(id string) bool {
	return employeeIDRegex.MatchString(id)
}

// IsValidBuddhistYear accepts years between 2400 and 2700 BE.
func IsValidBuddhistYear(year int) bool {
	return year >= 2400 && year <= 2700
}

// IsNonNegative reports whether every value is finite and >= 0.
func IsNonNegative(values ...float64) bool {
	for _, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Itoa converts an integer to a string.
func Itoa(i int) string {
	return strconv.Itoa(i)
}
