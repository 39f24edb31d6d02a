package holiday

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Name markers kept for data imported before IsSpecial existed.
const (
	SpecialMarkerTH      = "วันหยุดพิเศษ"
	SpecialMarkerEN      = "special holiday"
	CompensatoryMarkerTH = "ชดเชย"
	CompensatoryMarkerEN = "compensatory"
)

// Holiday is a public holiday in a Gregorian year. Date is an ISO
// calendar date string.
type Holiday struct {
	ID        string
	Year      int
	Date      string
	Name      string
	IsSpecial bool
	CreatedAt time.Time
}

// Special reports whether the holiday is a government-declared special day,
// either by flag or by the legacy name marker.
func (h Holiday) Special() bool {
	if h.IsSpecial {
		return true
	}
	return strings.Contains(h.Name, SpecialMarkerTH) ||
		strings.Contains(strings.ToLower(h.Name), SpecialMarkerEN)
}

func (h Holiday) Compensatory() bool {
	return strings.Contains(h.Name, CompensatoryMarkerTH) ||
		strings.Contains(strings.ToLower(h.Name), CompensatoryMarkerEN)
}

// ParseDate returns false for anything that is not YYYY-MM-DD.
func (h Holiday) ParseDate() (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(h.Date))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
