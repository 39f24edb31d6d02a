package allowance

import (
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/employee"
)

// Table is a calculated sheet for one Buddhist-era year.
type Table[T any] struct {
	Year    int     `json:"year"`
	Records []T     `json:"records"`
	Total   float64 `json:"total"`
}

// WorkDays is the working-day count of a Buddhist-era year.
type WorkDays struct {
	Year               int  `json:"year"`
	GregorianYear      int  `json:"gregorian_year"`
	IncludeSpecial     bool `json:"include_special"`
	Weekdays           int  `json:"weekdays"`
	HolidaysOnWeekdays int  `json:"holidays_on_weekdays"`
	TotalWorkDays      int  `json:"total_work_days"`
}

type TravelRecord struct {
	employee.EmployeeResponse
	RatePosition    string  `json:"rate_position"`
	ServiceYears    int     `json:"service_years"`
	HotelNights     int     `json:"hotel_nights"`
	PerDiemDays     int     `json:"per_diem_days"`
	Hotel           float64 `json:"hotel"`
	PerDiem         float64 `json:"per_diem"`
	TravelRoundTrip float64 `json:"travel_round_trip"`
	LocalRoundTrip  float64 `json:"local_round_trip"`
	Total           float64 `json:"total"`
}

type SpecialAssistRecord struct {
	employee.EmployeeResponse
	RatePosition          string  `json:"rate_position"`
	RentPerMonth          float64 `json:"rent_per_month"`
	MonthlyAssistPerMonth float64 `json:"monthly_assist_per_month"`
	Months                int     `json:"months"`
	TotalRent             float64 `json:"total_rent"`
	TotalMonthlyAssist    float64 `json:"total_monthly_assist"`
	LumpSum               float64 `json:"lump_sum"`
	Total                 float64 `json:"total"`
}

type FamilyVisitRecord struct {
	employee.EmployeeResponse
	RoundTripFare float64 `json:"round_trip_fare"`
	TimesPerYear  int     `json:"times_per_year"`
	BusFareTotal  float64 `json:"bus_fare_total"`
	Total         float64 `json:"total"`
}

type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomShared RoomType = "shared"
	RoomNone   RoomType = "none"
)

type CompanyTripRecord struct {
	employee.EmployeeResponse
	Destination           string   `json:"destination"`
	AccommodationEligible bool     `json:"accommodation_eligible"`
	RoomType              RoomType `json:"room_type"`
	PairTag               string   `json:"pair_tag,omitempty"`
	RoommateID            string   `json:"roommate_id,omitempty"`
	HotelRate             float64  `json:"hotel_rate"`
	AccommodationCost     float64  `json:"accommodation_cost"`
	BusFare               float64  `json:"bus_fare"`
	BusFareTotal          float64  `json:"bus_fare_total"`
	Note                  string   `json:"note"`
	Total                 float64  `json:"total"`
}

type ManagerRotationRecord struct {
	employee.EmployeeResponse
	RatePosition      string  `json:"rate_position"`
	HotelNights       int     `json:"hotel_nights"`
	PerDiemDays       int     `json:"per_diem_days"`
	PerDiemCost       float64 `json:"per_diem_cost"`
	AccommodationCost float64 `json:"accommodation_cost"`
	TravelCost        float64 `json:"travel_cost"`
	TaxiCost          float64 `json:"taxi_cost"`
	OtherVehicleCost  float64 `json:"other_vehicle_cost"`
	TotalTravel       float64 `json:"total_travel"`
	Total             float64 `json:"total"`
}

// HolidayStats summarises a year's holiday calendar.
type HolidayStats struct {
	Year                   int               `json:"year"`
	GregorianYear          int               `json:"gregorian_year"`
	TotalHolidays          int               `json:"total_holidays"`
	BankingHolidays        int               `json:"banking_holidays"`
	SpecialHolidays        int               `json:"special_holidays"`
	Weekdays               int               `json:"weekdays"`
	WorkDaysWithSpecial    int               `json:"work_days_with_special"`
	WorkDaysWithoutSpecial int               `json:"work_days_without_special"`
	Estimate               *WorkDaysEstimate `json:"estimate,omitempty"`
}

// WorkDaysEstimate projects working days from the holiday counts of
// previous years.
type WorkDaysEstimate struct {
	ReferenceYears    []int           `json:"reference_years"`
	AverageHolidays   int             `json:"average_holidays"`
	EstimatedWorkDays int             `json:"estimated_work_days"`
	CommonHolidays    []CommonHoliday `json:"common_holidays"`
}

// CommonHoliday is an observance that recurs across the reference years.
type CommonHoliday struct {
	Name   string   `json:"name"`
	Count  int      `json:"count"`
	Years  int      `json:"years"`
	Months []string `json:"months"`
}

type Dashboard struct {
	Year                 int            `json:"year"`
	ActiveEmployees      int            `json:"active_employees"`
	TotalEmployees       int            `json:"total_employees"`
	EmployeesByLevel     map[string]int `json:"employees_by_level"`
	TravelTotal          float64        `json:"travel_total"`
	SpecialAssistTotal   float64        `json:"special_assist_total"`
	AssistanceTotal      float64        `json:"assistance_total"`
	FamilyVisitTotal     float64        `json:"family_visit_total"`
	CompanyTripTotal     float64        `json:"company_trip_total"`
	ManagerRotationTotal float64        `json:"manager_rotation_total"`
	OvertimeTotal        float64        `json:"overtime_total"`
	TotalExpenses        float64        `json:"total_expenses"`
	WorkDays             WorkDays       `json:"work_days"`
}
