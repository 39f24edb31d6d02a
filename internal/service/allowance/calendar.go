package allowance

import (
	"math"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/allowance"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/holiday"
)

func isWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// CountWeekdays counts Monday to Friday in a Gregorian year.
func CountWeekdays(gregorianYear int) int {
	count := 0
	for d := time.Date(gregorianYear, time.January, 1, 0, 0, 0, 0, time.UTC); d.Year() == gregorianYear; d = d.AddDate(0, 0, 1) {
		if isWeekday(d) {
			count++
		}
	}
	return count
}

// WorkDays computes net working days for a Buddhist-era year. Special
// holidays are ignored unless includeSpecial is set. Holidays with an
// unparseable date never count.
func (c *Calculator) WorkDays(yearBE int, holidays []holiday.Holiday, includeSpecial bool) allowance.WorkDays {
	gregorian := ToGregorian(yearBE)
	weekdays := CountWeekdays(gregorian)

	onWeekdays := 0
	for _, h := range holidays {
		if !includeSpecial && h.Special() {
			continue
		}
		t, ok := h.ParseDate()
		if !ok {
			continue
		}
		if isWeekday(t) {
			onWeekdays++
		}
	}

	return allowance.WorkDays{
		Year:               yearBE,
		GregorianYear:      gregorian,
		IncludeSpecial:     includeSpecial,
		Weekdays:           weekdays,
		HolidaysOnWeekdays: onWeekdays,
		TotalWorkDays:      weekdays - onWeekdays,
	}
}

// HolidayStats summarises a year's holidays. previous maps Gregorian years
// to their holiday lists; only the EstimateReferenceYears years before the
// target that have data feed the estimate.
func (c *Calculator) HolidayStats(yearBE int, holidays []holiday.Holiday, previous map[int][]holiday.Holiday) allowance.HolidayStats {
	withSpecial := c.WorkDays(yearBE, holidays, true)
	withoutSpecial := c.WorkDays(yearBE, holidays, false)

	banking := 0
	for _, h := range holidays {
		if !h.Special() && !h.Compensatory() {
			banking++
		}
	}

	return allowance.HolidayStats{
		Year:                   yearBE,
		GregorianYear:          withSpecial.GregorianYear,
		TotalHolidays:          len(holidays),
		BankingHolidays:        banking,
		SpecialHolidays:        len(holidays) - banking,
		Weekdays:               withSpecial.Weekdays,
		WorkDaysWithSpecial:    withSpecial.TotalWorkDays,
		WorkDaysWithoutSpecial: withoutSpecial.TotalWorkDays,
		Estimate:               c.estimateWorkDays(withSpecial.GregorianYear, withSpecial.Weekdays, previous),
	}
}

func (c *Calculator) estimateWorkDays(gregorian, weekdays int, previous map[int][]holiday.Holiday) *allowance.WorkDaysEstimate {
	var years []int
	for y := range previous {
		if y >= gregorian-EstimateReferenceYears && y < gregorian {
			years = append(years, y)
		}
	}
	if len(years) == 0 {
		return nil
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	sum := 0
	for _, y := range years {
		sum += len(previous[y])
	}
	average := int(math.Floor(float64(sum)/float64(len(years)) + 0.5))

	reference := make([]int, len(years))
	for i, y := range years {
		reference[i] = ToBuddhistEra(y)
	}

	return &allowance.WorkDaysEstimate{
		ReferenceYears:    reference,
		AverageHolidays:   average,
		EstimatedWorkDays: weekdays - average,
		CommonHolidays:    commonHolidays(years, previous, average),
	}
}

// commonHolidays lists holidays seen in at least 60% of the reference years,
// most frequent first, capped at limit. Compensatory and special markers are
// stripped so that the same observance matches across years.
func commonHolidays(years []int, previous map[int][]holiday.Holiday, limit int) []allowance.CommonHoliday {
	type entry struct {
		name   string
		count  int
		months []string
	}
	var order []string
	entries := make(map[string]*entry)

	for _, y := range years {
		for _, h := range previous[y] {
			key := h.Name
			key = strings.ReplaceAll(key, holiday.CompensatoryMarkerTH, "")
			key = strings.ReplaceAll(key, holiday.SpecialMarkerTH, "")
			key = strings.TrimSpace(key)

			e, ok := entries[key]
			if !ok {
				e = &entry{name: h.Name}
				entries[key] = e
				order = append(order, key)
			}
			e.count++
			if parts := strings.Split(h.Date, "-"); len(parts) == 3 && !slices.Contains(e.months, parts[1]) {
				e.months = append(e.months, parts[1])
			}
		}
	}

	threshold := int(math.Ceil(float64(len(years)) * 0.6))
	var common []*entry
	for _, key := range order {
		if e := entries[key]; e.count >= threshold {
			common = append(common, e)
		}
	}
	slices.SortStableFunc(common, func(a, b *entry) int {
		return b.count - a.count
	})
	if len(common) > limit {
		common = common[:limit]
	}

	result := make([]allowance.CommonHoliday, 0, len(common))
	for _, e := range common {
		months := slices.Clone(e.months)
		slices.Sort(months)
		result = append(result, allowance.CommonHoliday{
			Name:   e.name,
			Count:  e.count,
			Years:  len(years),
			Months: months,
		})
	}
	return result
}
