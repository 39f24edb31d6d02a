package allowance

const (
	// TopLevelCode is the job level of top-level managers.
	TopLevelCode = "7"

	// MonthsPerYear scales monthly rent and assistance to a year.
	MonthsPerYear = 12

	// FamilyVisitTimesPerYear is the fixed number of home visits reimbursed.
	FamilyVisitTimesPerYear = 4

	// OvertimeDivisor turns a monthly salary into an hourly rate.
	OvertimeDivisor = 210

	// DefaultOvertimeSalary seeds a year that has no overtime ledger yet.
	DefaultOvertimeSalary = 15000

	// BuddhistEraOffset converts between Buddhist-era and Gregorian years.
	BuddhistEraOffset = 543

	BudgetYearStart = 2568
	BudgetYearEnd   = 2580

	DefaultTripDestination = "ขอนแก่น"
	DefaultTripBusFare     = 600

	// EstimateReferenceYears bounds how many previous years feed the
	// working-day estimate.
	EstimateReferenceYears = 5
)

// MilestoneServiceYears are the anniversaries that qualify for the travel
// allowance.
var MilestoneServiceYears = []int{20, 25, 30, 35, 40}

// PairSymbols tag room-sharing pairs on the company trip, cycling in order.
var PairSymbols = []string{"🔵", "🔴", "🟢", "🟡", "🟣", "🟠", "⚫", "⚪"}

const (
	noteSingleRoom   = "พักคนเดียว"
	noteNoPair       = "ไม่มีคู่ - พักคนเดียว"
	noteNotEligible  = "ไม่มีสิทธิ์ค่าที่พัก"
	notePairTemplate = "%s พักคู่ (%s)"
)

func ToGregorian(yearBE int) int {
	return yearBE - BuddhistEraOffset
}

func ToBuddhistEra(year int) int {
	return year + BuddhistEraOffset
}

func isMilestone(serviceYears int) bool {
	for _, y := range MilestoneServiceYears {
		if serviceYears == y {
			return true
		}
	}
	return false
}

func atLeastOne(days int) int {
	if days <= 0 {
		return 1
	}
	return days
}
