package employee

import (
	"strings"
	"time"
)

type Gender string

const (
	Male   Gender = "ชาย"
	Female Gender = "หญิง"
)

type Status string

const (
	StatusEligible   Status = "มีสิทธิ์"
	StatusIneligible Status = "หมดสิทธิ์"
)

// ParseGender accepts the stored Thai values as well as English aliases.
func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Male), "male", "m":
		return Male, true
	case string(Female), "female", "f":
		return Female, true
	}
	return "", false
}

// ParseStatus accepts the stored Thai values as well as English aliases.
// An empty status is eligible.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(StatusEligible), "eligible":
		return StatusEligible, true
	case string(StatusIneligible), "ineligible":
		return StatusIneligible, true
	}
	return "", false
}

// CustomRates overrides individual rate-table fields for one employee.
// A nil field means "use the table value".
type CustomRates struct {
	Hotel             *float64 `json:"hotel,omitempty"`
	PerDiem           *float64 `json:"per_diem,omitempty"`
	Travel            *float64 `json:"travel,omitempty"`
	Local             *float64 `json:"local,omitempty"`
	SouvenirAllowance *float64 `json:"souvenir_allowance,omitempty"`
	Other             *float64 `json:"other,omitempty"`
}

type Employee struct {
	ID                string
	Name              string
	Gender            Gender
	StartYear         int
	Level             string
	Status            Status
	VisitProvince     string
	HomeVisitBusFare  float64
	WorkingDays       int
	TravelWorkingDays int
	CustomTravelRates *CustomRates
	Position          int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (e Employee) IsEligible() bool {
	return e.Status == StatusEligible || e.Status == ""
}

// ServiceYears is the whole number of years between startYear and yearBE,
// both Buddhist era.
func (e Employee) ServiceYears(yearBE int) int {
	return yearBE - e.StartYear
}
