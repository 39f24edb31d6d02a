package ledger

import "time"

// SpecialAssistItem is a free-form line of the yearly special-assistance
// ledger. It is not tied to any employee.
type SpecialAssistItem struct {
	Item         string
	TimesPerYear float64
	Days         float64
	People       float64
	Rate         float64
}

type SpecialAssistLedger struct {
	Year      int
	Items     []SpecialAssistItem
	Notes     string
	UpdatedAt time.Time
}

// OvertimeItem is one holiday-overtime line. A nil or zero HourlyRate falls
// back to the ledger salary divided by the standard monthly hours.
type OvertimeItem struct {
	Item       string
	Days       float64
	Hours      float64
	People     float64
	HourlyRate *float64
}

type OvertimeLedger struct {
	Year      int
	Salary    float64
	Items     []OvertimeItem
	Notes     string
	UpdatedAt time.Time
}

type SpecialAssistLine struct {
	Item         string  `json:"item"`
	TimesPerYear float64 `json:"times_per_year"`
	Days         float64 `json:"days"`
	People       float64 `json:"people"`
	Rate         float64 `json:"rate"`
	ItemTotal    float64 `json:"item_total"`
}

// SpecialAssistResult is a ledger with its computed totals.
type SpecialAssistResult struct {
	Year   int                 `json:"year"`
	Items  []SpecialAssistLine `json:"items"`
	Notes  string              `json:"notes"`
	Total  float64             `json:"total"`
	Stored bool                `json:"stored"`
}

type OvertimeLine struct {
	Item                string   `json:"item"`
	Days                float64  `json:"days"`
	Hours               float64  `json:"hours"`
	People              float64  `json:"people"`
	HourlyRate          *float64 `json:"hourly_rate"`
	EffectiveHourlyRate float64  `json:"effective_hourly_rate"`
	ItemTotal           float64  `json:"item_total"`
}

type OvertimeResult struct {
	Year   int            `json:"year"`
	Salary float64        `json:"salary"`
	Items  []OvertimeLine `json:"items"`
	Notes  string         `json:"notes"`
	Total  float64        `json:"total"`
	Stored bool           `json:"stored"`
}
