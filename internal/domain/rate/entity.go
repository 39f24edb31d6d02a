package rate

import (
	"cmp"
	"strconv"
	"strings"
	"time"
)

// UnspecifiedPosition labels the zero bundle used for unknown levels.
const UnspecifiedPosition = "ไม่ระบุ"

// Bundle is the standard allowance amounts for one job level.
type Bundle struct {
	Level             string
	Position          string
	Rent              float64
	MonthlyAssist     float64
	SouvenirAllowance float64
	Travel            float64
	Local             float64
	PerDiem           float64
	Hotel             float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Table indexes bundles by level.
type Table map[string]Bundle

func NewTable(bundles []Bundle) Table {
	t := make(Table, len(bundles))
	for _, b := range bundles {
		t[b.Level] = b
	}
	return t
}

// CompareLevels orders levels by numeric value, highest first. Levels that
// are not numbers sort after numeric ones, in plain string order.
func CompareLevels(a, b string) int {
	fa, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(fb, fa)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
