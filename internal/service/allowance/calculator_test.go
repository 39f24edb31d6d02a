package allowance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/allowance"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/ledger"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/rate"
)

func ptr(f float64) *float64 { return &f }

func testTable() rate.Table {
	return rate.NewTable([]rate.Bundle{
		{Level: "7", Position: "ผู้อำนวยการ", Rent: 5000, MonthlyAssist: 2000, SouvenirAllowance: 1500, Travel: 3000, Local: 800, PerDiem: 400, Hotel: 1600},
		{Level: "5", Position: "หัวหน้างาน", Rent: 3000, MonthlyAssist: 1000, SouvenirAllowance: 1000, Travel: 2000, Local: 500, PerDiem: 300, Hotel: 1000},
		{Level: "4.5", Position: "เจ้าหน้าที่อาวุโส", Rent: 2500, MonthlyAssist: 800, SouvenirAllowance: 800, Travel: 1800, Local: 400, PerDiem: 270, Hotel: 900},
	})
}

func emp(id string, gender employee.Gender, level string) employee.Employee {
	return employee.Employee{
		ID:                id,
		Name:              "พนักงาน " + id,
		Gender:            gender,
		StartYear:         2550,
		Level:             level,
		Status:            employee.StatusEligible,
		VisitProvince:     "เชียงใหม่",
		HomeVisitBusFare:  500,
		WorkingDays:       1,
		TravelWorkingDays: 1,
	}
}

func TestResolveRates(t *testing.T) {
	c := NewCalculator()
	table := testTable()

	t.Run("table values", func(t *testing.T) {
		got := c.ResolveRates(emp("a", employee.Male, "5"), table)
		assert.Equal(t, "หัวหน้างาน", got.Position)
		assert.Equal(t, 1000.0, got.Hotel)
		assert.Equal(t, 3000.0, got.Rent)
	})

	t.Run("unknown level falls back to zero bundle", func(t *testing.T) {
		got := c.ResolveRates(emp("a", employee.Male, "9"), table)
		assert.Equal(t, rate.UnspecifiedPosition, got.Position)
		assert.Equal(t, "9", got.Level)
		assert.Zero(t, got.Hotel)
		assert.Zero(t, got.Rent)
		assert.Zero(t, got.PerDiem)
	})

	t.Run("custom rates override travel fields only", func(t *testing.T) {
		e := emp("a", employee.Male, "5")
		e.CustomTravelRates = &employee.CustomRates{
			Hotel:             ptr(1200),
			PerDiem:           ptr(0),
			Travel:            ptr(2500),
			Local:             ptr(600),
			SouvenirAllowance: ptr(50),
		}
		got := c.ResolveRates(e, table)
		assert.Equal(t, 1200.0, got.Hotel)
		assert.Equal(t, 0.0, got.PerDiem, "an explicit zero still overrides")
		assert.Equal(t, 2500.0, got.Travel)
		assert.Equal(t, 600.0, got.Local)
		assert.Equal(t, 50.0, got.SouvenirAllowance)
		assert.Equal(t, 3000.0, got.Rent)
		assert.Equal(t, 1000.0, got.MonthlyAssist)
	})

	t.Run("does not modify the table", func(t *testing.T) {
		e := emp("a", employee.Male, "5")
		e.CustomTravelRates = &employee.CustomRates{Hotel: ptr(1)}
		c.ResolveRates(e, table)
		assert.Equal(t, 1000.0, table["5"].Hotel)
	})
}

func TestTravel(t *testing.T) {
	c := NewCalculator()
	table := testTable()

	t.Run("milestone boundary", func(t *testing.T) {
		for _, tc := range []struct {
			startYear int
			want      int
		}{
			{2549, 0}, // 19 years
			{2548, 1}, // 20 years
			{2547, 0}, // 21 years
			{2543, 1}, // 25 years
			{2528, 1}, // 40 years
			{2527, 0}, // 41 years
		} {
			e := emp("a", employee.Male, "5")
			e.StartYear = tc.startYear
			got := c.Travel([]employee.Employee{e}, table, 2568)
			assert.Len(t, got, tc.want, "startYear %d", tc.startYear)
		}
	})

	t.Run("formula", func(t *testing.T) {
		e := emp("a", employee.Male, "5")
		e.StartYear = 2548
		e.TravelWorkingDays = 0

		got := c.Travel([]employee.Employee{e}, table, 2568)
		require.Len(t, got, 1)
		r := got[0]
		assert.Equal(t, 20, r.ServiceYears)
		assert.Equal(t, 2, r.HotelNights)
		assert.Equal(t, 3, r.PerDiemDays)
		assert.Equal(t, 2000.0, r.Hotel)
		assert.Equal(t, 900.0, r.PerDiem)
		assert.Equal(t, 2000.0, r.TravelRoundTrip)
		assert.Equal(t, 500.0, r.LocalRoundTrip)
		assert.Equal(t, 5400.0, r.Total)
	})

	t.Run("travel working days scale nights and days", func(t *testing.T) {
		e := emp("a", employee.Male, "5")
		e.StartYear = 2538
		e.TravelWorkingDays = 3

		got := c.Travel([]employee.Employee{e}, table, 2568)
		require.Len(t, got, 1)
		assert.Equal(t, 4, got[0].HotelNights)
		assert.Equal(t, 5, got[0].PerDiemDays)
		assert.Equal(t, 4000.0+1500.0+2000.0+500.0, got[0].Total)
	})
}

func TestSpecialAssist(t *testing.T) {
	c := NewCalculator()
	eligible := emp("a", employee.Male, "5")
	ineligible := emp("b", employee.Female, "5")
	ineligible.Status = employee.StatusIneligible

	got := c.SpecialAssist([]employee.Employee{eligible, ineligible}, testTable())
	require.Len(t, got, 1)
	r := got[0]
	assert.Equal(t, "a", r.ID)
	assert.Equal(t, 36000.0, r.TotalRent)
	assert.Equal(t, 12000.0, r.TotalMonthlyAssist)
	assert.Equal(t, 0.0, r.LumpSum)
	assert.Equal(t, 12, r.Months)
	assert.Equal(t, 48000.0, r.Total)
}

func TestSpecialAssistLedger(t *testing.T) {
	c := NewCalculator()
	item := ledger.SpecialAssistItem{Item: "ค่าเยี่ยมไข้", TimesPerYear: 2, Days: 3, People: 4, Rate: 100}

	single := c.SpecialAssistLedger(ledger.SpecialAssistLedger{Year: 2568, Items: []ledger.SpecialAssistItem{item}})
	require.Len(t, single.Items, 1)
	assert.Equal(t, 2400.0, single.Items[0].ItemTotal)
	assert.Equal(t, 2400.0, single.Total)

	double := c.SpecialAssistLedger(ledger.SpecialAssistLedger{Year: 2568, Items: []ledger.SpecialAssistItem{item, item}})
	assert.Equal(t, 4800.0, double.Total)

	empty := c.SpecialAssistLedger(ledger.SpecialAssistLedger{Year: 2568})
	assert.Empty(t, empty.Items)
	assert.Zero(t, empty.Total)
}

func TestFamilyVisit(t *testing.T) {
	c := NewCalculator()
	e := emp("a", employee.Male, "5")
	e.HomeVisitBusFare = 100

	got := c.FamilyVisit([]employee.Employee{e})
	require.Len(t, got, 1)
	assert.Equal(t, 200.0, got[0].RoundTripFare)
	assert.Equal(t, 4, got[0].TimesPerYear)
	assert.Equal(t, 800.0, got[0].Total)
}

func TestFamilyVisitEligible(t *testing.T) {
	e := emp("a", employee.Male, "5")
	assert.True(t, FamilyVisitEligible(e))

	e.VisitProvince = "  "
	assert.False(t, FamilyVisitEligible(e))

	e = emp("a", employee.Male, "5")
	e.Status = employee.StatusIneligible
	assert.False(t, FamilyVisitEligible(e))
}

func TestCompanyTrip_PairingIsOrderDependent(t *testing.T) {
	c := NewCalculator()
	table := testTable()
	a := emp("A", employee.Male, "5")
	b := emp("B", employee.Male, "5")
	cc := emp("C", employee.Male, "5")

	got := c.CompanyTrip([]employee.Employee{a, b, cc}, table, "ขอนแก่น", 600)
	require.Len(t, got, 3)
	assert.Equal(t, 500.0, got[0].AccommodationCost)
	assert.Equal(t, 500.0, got[1].AccommodationCost)
	assert.Equal(t, 1000.0, got[2].AccommodationCost)
	assert.Equal(t, "B", got[0].RoommateID)
	assert.Equal(t, "A", got[1].RoommateID)
	assert.Equal(t, "ไม่มีคู่ - พักคนเดียว", got[2].Note)

	reordered := c.CompanyTrip([]employee.Employee{cc, a, b}, table, "ขอนแก่น", 600)
	require.Len(t, reordered, 3)
	assert.Equal(t, "C", reordered[0].ID)
	assert.Equal(t, 500.0, reordered[0].AccommodationCost)
	assert.Equal(t, 500.0, reordered[1].AccommodationCost)
	assert.Equal(t, "A", reordered[0].RoommateID)
	assert.Equal(t, 1000.0, reordered[2].AccommodationCost)
	assert.Equal(t, allowance.RoomSingle, reordered[2].RoomType)
}

func TestCompanyTrip_Rules(t *testing.T) {
	c := NewCalculator()
	table := testTable()

	manager := emp("M", employee.Male, "7")
	local := emp("L", employee.Female, "5")
	local.VisitProvince = "ขอนแก่น"
	m1 := emp("M1", employee.Male, "5")
	f1 := emp("F1", employee.Female, "4.5")
	m2 := emp("M2", employee.Male, "4.5")
	f2 := emp("F2", employee.Female, "5")

	got := c.CompanyTrip([]employee.Employee{manager, local, m1, f1, m2, f2}, table, "ขอนแก่น", 600)
	require.Len(t, got, 6, "every employee gets a record")

	for _, r := range got {
		assert.Equal(t, 600.0, r.BusFare)
		assert.Equal(t, 1200.0, r.BusFareTotal)
		assert.Equal(t, r.BusFareTotal+r.AccommodationCost, r.Total)
	}

	// top-level manager: single room at full rate, outside the pairing pool
	assert.Equal(t, 1600.0, got[0].AccommodationCost)
	assert.Equal(t, "พักคนเดียว", got[0].Note)
	assert.Empty(t, got[0].PairTag)

	// already at the destination
	assert.False(t, got[1].AccommodationEligible)
	assert.Zero(t, got[1].AccommodationCost)
	assert.Equal(t, "ไม่มีสิทธิ์ค่าที่พัก", got[1].Note)
	assert.Equal(t, allowance.RoomNone, got[1].RoomType)

	// males pair first because a male appears first; each pays half of own rate
	assert.Equal(t, "🔵", got[2].PairTag)
	assert.Equal(t, "🔵", got[4].PairTag)
	assert.Equal(t, 500.0, got[2].AccommodationCost)
	assert.Equal(t, 450.0, got[4].AccommodationCost)
	assert.Equal(t, "🔵 พักคู่ (ชาย)", got[2].Note)

	// symbol index continues into the female group
	assert.Equal(t, "🔴", got[3].PairTag)
	assert.Equal(t, "🔴", got[5].PairTag)
	assert.Equal(t, "🔴 พักคู่ (หญิง)", got[5].Note)
	assert.Equal(t, 450.0, got[3].AccommodationCost)
	assert.Equal(t, 500.0, got[5].AccommodationCost)
}

func TestCompanyTrip_SymbolsCycle(t *testing.T) {
	c := NewCalculator()
	var employees []employee.Employee
	for i := 0; i < 2*(len(PairSymbols)+1); i++ {
		employees = append(employees, emp(letterID(i), employee.Male, "5"))
	}

	got := c.CompanyTrip(employees, testTable(), "ขอนแก่น", 600)
	last := got[len(got)-1]
	assert.Equal(t, PairSymbols[0], last.PairTag)
}

func letterID(i int) string {
	return string(rune('a' + i))
}

func TestManagerRotation(t *testing.T) {
	c := NewCalculator()
	table := testTable()

	for _, tc := range []struct {
		workingDays int
		nights      int
		perDiemDays int
	}{
		{0, 2, 3},
		{1, 2, 3},
		{3, 4, 5},
	} {
		m := emp("M", employee.Male, "7")
		m.WorkingDays = tc.workingDays
		got := c.ManagerRotation([]employee.Employee{m, emp("x", employee.Male, "5")}, table)
		require.Len(t, got, 1, "only top-level managers")
		r := got[0]
		assert.Equal(t, tc.nights, r.HotelNights)
		assert.Equal(t, tc.perDiemDays, r.PerDiemDays)
		assert.Equal(t, 400.0*float64(tc.perDiemDays), r.PerDiemCost)
		assert.Equal(t, 1600.0*float64(tc.nights), r.AccommodationCost)
	}

	m := emp("M", employee.Male, "7")
	m.CustomTravelRates = &employee.CustomRates{Other: ptr(250)}
	got := c.ManagerRotation([]employee.Employee{m}, table)
	require.Len(t, got, 1)
	r := got[0]
	assert.Equal(t, 3000.0, r.TravelCost)
	assert.Equal(t, 800.0, r.TaxiCost)
	assert.Equal(t, 250.0, r.OtherVehicleCost)
	assert.Equal(t, 4050.0, r.TotalTravel)
	assert.Equal(t, 1200.0+3200.0+3000.0+800.0+250.0, r.Total)
}

func TestOvertime(t *testing.T) {
	c := NewCalculator()
	l := ledger.OvertimeLedger{
		Year:   2568,
		Salary: 21000,
		Items: []ledger.OvertimeItem{
			{Item: "สงกรานต์", People: 2, Days: 3, Hours: 4},
			{Item: "ปีใหม่", People: 2, Days: 3, Hours: 4, HourlyRate: ptr(50)},
			{Item: "zero rate", People: 1, Days: 1, Hours: 1, HourlyRate: ptr(0)},
		},
	}

	got := c.Overtime(l)
	require.Len(t, got.Items, 3)
	assert.Equal(t, 100.0, got.Items[0].EffectiveHourlyRate)
	assert.Nil(t, got.Items[0].HourlyRate)
	assert.Equal(t, 2400.0, got.Items[0].ItemTotal)
	assert.Equal(t, 1200.0, got.Items[1].ItemTotal)
	assert.Equal(t, 100.0, got.Items[2].ItemTotal)
	assert.Equal(t, 3700.0, got.Total)

	assert.Zero(t, c.Overtime(ledger.OvertimeLedger{Salary: 15000}).Total)
}

func TestCalculators_EmptyInput(t *testing.T) {
	c := NewCalculator()
	table := testTable()

	assert.Empty(t, c.Travel(nil, table, 2568))
	assert.Empty(t, c.SpecialAssist(nil, table))
	assert.Empty(t, c.FamilyVisit(nil))
	assert.Empty(t, c.CompanyTrip(nil, table, "ขอนแก่น", 600))
	assert.Empty(t, c.ManagerRotation(nil, table))

	tbl := NewTable(2568, []allowance.TravelRecord(nil), func(r allowance.TravelRecord) float64 { return r.Total })
	assert.NotNil(t, tbl.Records)
	assert.Zero(t, tbl.Total)
}

func TestCalculators_IdempotentAndNonMutating(t *testing.T) {
	c := NewCalculator()
	table := testTable()

	build := func() []employee.Employee {
		m := emp("M", employee.Male, "7")
		m.CustomTravelRates = &employee.CustomRates{Other: ptr(100), Hotel: ptr(2000)}
		a := emp("A", employee.Male, "5")
		a.StartYear = 2548
		return []employee.Employee{m, a, emp("B", employee.Female, "4.5"), emp("C", employee.Male, "5")}
	}
	input := build()
	tableCopy := rate.NewTable([]rate.Bundle{table["7"], table["5"], table["4.5"]})

	first := c.CompanyTrip(input, table, "ขอนแก่น", 600)
	second := c.CompanyTrip(input, table, "ขอนแก่น", 600)
	assert.Equal(t, first, second)

	assert.Equal(t, c.Travel(input, table, 2568), c.Travel(input, table, 2568))
	assert.Equal(t, c.ManagerRotation(input, table), c.ManagerRotation(input, table))
	assert.Equal(t, c.SpecialAssist(input, table), c.SpecialAssist(input, table))
	assert.Equal(t, c.FamilyVisit(input), c.FamilyVisit(input))

	assert.Equal(t, build(), input)
	assert.Equal(t, tableCopy, table)

	// records do not alias the caller's override struct
	first[0].CustomTravelRates.Other = ptr(999)
	assert.Equal(t, 100.0, *input[0].CustomTravelRates.Other)
}
