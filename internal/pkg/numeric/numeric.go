// Package numeric coerces loosely typed numeric input (numbers, numeric
// strings, NUMERIC columns) into float64. Anything that cannot be parsed
// becomes 0; nothing here returns an error.
package numeric

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts v to float64, falling back to 0.
func Parse(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(t)
	case float32:
		return finite(float64(t))
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		return ParseString(t)
	case json.Number:
		return ParseString(string(t))
	case decimal.Decimal:
		f, _ := t.Float64()
		return finite(f)
	case *decimal.Decimal:
		if t == nil {
			return 0
		}
		f, _ := t.Float64()
		return finite(f)
	}
	return 0
}

// ParseString parses a decimal string such as "1500", "1500.50" or "1.5e3".
func ParseString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return finite(f)
}

// Decimal converts f to a decimal for storage in NUMERIC columns.
func Decimal(f float64) decimal.Decimal {
	return decimal.NewFromFloat(finite(f))
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Float unmarshals from a JSON number, a numeric string or null.
type Float float64

func (f *Float) UnmarshalJSON(b []byte) error {
	*f = Float(ParseString(unquote(b)))
	return nil
}

// Int unmarshals like Float and truncates toward zero.
type Int int

func (i *Int) UnmarshalJSON(b []byte) error {
	*i = Int(math.Trunc(ParseString(unquote(b))))
	return nil
}

// FloatPtr returns nil for a nil input, otherwise the plain float64 value.
func FloatPtr(f *Float) *float64 {
	if f == nil {
		return nil
	}
	v := float64(*f)
	return &v
}

func unquote(b []byte) string {
	s := strings.TrimSpace(string(b))
	if unq, err := strconv.Unquote(s); err == nil {
		return unq
	}
	return s
}
