package postgresqltest

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/budgetitem"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/ledger"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/rate"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_UpsertAndGet(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewEmployeeRepository(setup.DB)
	ctx := context.Background()

	hotel := 900.0
	emp := employee.Employee{
		ID:                "E001",
		Name:              "สมชาย",
		Gender:            employee.Male,
		StartYear:         2550,
		Level:             "5",
		Status:            employee.StatusEligible,
		VisitProvince:     "เชียงใหม่",
		HomeVisitBusFare:  450.5,
		WorkingDays:       1,
		TravelWorkingDays: 2,
		CustomTravelRates: &employee.CustomRates{Hotel: &hotel},
	}

	saved, err := repo.Upsert(ctx, emp)
	require.NoError(t, err)
	assert.Equal(t, 450.5, saved.HomeVisitBusFare)
	require.NotNil(t, saved.CustomTravelRates)
	assert.Equal(t, 900.0, *saved.CustomTravelRates.Hotel)
	assert.Nil(t, saved.CustomTravelRates.PerDiem)

	emp.Level = "6"
	emp.CustomTravelRates = nil
	_, err = repo.Upsert(ctx, emp)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "E001")
	require.NoError(t, err)
	assert.Equal(t, "6", got.Level)
	assert.Nil(t, got.CustomTravelRates)
	assert.Equal(t, saved.CreatedAt, got.CreatedAt)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, "E001"))
	_, err = repo.GetByID(ctx, "E001")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "E001"), employee.ErrEmployeeNotFound)
}

func TestRateRepository_CRUD(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewRateRepository(setup.DB)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = repo.Upsert(ctx, rate.Bundle{Level: "5", Position: "หัวหน้างาน", Rent: 3000, Hotel: 1200, PerDiem: 270})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, rate.Bundle{Level: "5", Position: "หัวหน้างาน", Rent: 3500, Hotel: 1200, PerDiem: 270})
	require.NoError(t, err)

	got, err := repo.GetByLevel(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, 3500.0, got.Rent)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	require.NoError(t, repo.Delete(ctx, "5"))
	_, err = repo.GetByLevel(ctx, "5")
	assert.ErrorIs(t, err, rate.ErrRateNotFound)
}

func TestHolidayRepository_DuplicateAndYears(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewHolidayRepository(setup.DB)
	ctx := context.Background()

	h := holiday.Holiday{ID: uuid.NewString(), Year: 2025, Date: "2025-04-13", Name: "วันสงกรานต์"}
	created, err := repo.Create(ctx, h)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-13", created.Date)

	h.ID = uuid.NewString()
	_, err = repo.Create(ctx, h)
	assert.ErrorIs(t, err, holiday.ErrDuplicateHoliday)

	_, err = repo.Create(ctx, holiday.Holiday{ID: uuid.NewString(), Year: 2024, Date: "2024-01-01", Name: "วันขึ้นปีใหม่"})
	require.NoError(t, err)

	years, err := repo.ListYears(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2025, 2024}, years)

	list, err := repo.ListByYear(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	created.Name = "วันสงกรานต์ (ชดเชย)"
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.True(t, updated.Compensatory())

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, holiday.ErrHolidayNotFound)
}

func TestLedgerRepositories_SetReplacesItems(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()

	special := postgresql.NewSpecialAssistRepository(setup.DB)
	_, err := special.Get(ctx, 2568)
	assert.ErrorIs(t, err, ledger.ErrLedgerNotFound)

	require.NoError(t, special.Set(ctx, ledger.SpecialAssistLedger{
		Year: 2568,
		Items: []ledger.SpecialAssistItem{
			{Item: "ค่าเช่าบ้าน", TimesPerYear: 12, Days: 1, People: 2, Rate: 100},
			{Item: "ค่าช่วยเหลือ", TimesPerYear: 1, Days: 2, People: 1, Rate: 50},
		},
		Notes: "first",
	}))
	require.NoError(t, special.Set(ctx, ledger.SpecialAssistLedger{
		Year:  2568,
		Items: []ledger.SpecialAssistItem{{Item: "ค่าช่วยเหลือ", TimesPerYear: 1, Days: 2, People: 1, Rate: 50}},
		Notes: "second",
	}))

	got, err := special.Get(ctx, 2568)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Notes)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 50.0, got.Items[0].Rate)

	overtime := postgresql.NewOvertimeRepository(setup.DB)
	rateValue := 100.0
	require.NoError(t, overtime.Set(ctx, ledger.OvertimeLedger{
		Year:   2568,
		Salary: 21000,
		Items: []ledger.OvertimeItem{
			{Item: "ปิดงบ", Days: 2, Hours: 3, People: 1},
			{Item: "ตรวจนับ", Days: 1, Hours: 2, People: 2, HourlyRate: &rateValue},
		},
	}))

	ot, err := overtime.Get(ctx, 2568)
	require.NoError(t, err)
	assert.Equal(t, 21000.0, ot.Salary)
	require.Len(t, ot.Items, 2)
	assert.Nil(t, ot.Items[0].HourlyRate)
	require.NotNil(t, ot.Items[1].HourlyRate)
	assert.Equal(t, 100.0, *ot.Items[1].HourlyRate)
}

func TestBudgetItemRepository_UpsertByAccountCode(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewBudgetItemRepository(setup.DB)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, budgetitem.Item{
		Code:        "1.1",
		AccountCode: "5201010101",
		Name:        "ค่าเดินทาง",
		Values:      map[int]float64{2568: 1000},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := repo.Upsert(ctx, budgetitem.Item{
		AccountCode: "5201010101",
		Name:        "ค่าเดินทางไปราชการ",
		Values:      map[int]float64{2568: 1500, 2569: 1600},
		Position:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, map[int]float64{2568: 1500, 2569: 1600}, second.Values)

	_, err = repo.Upsert(ctx, budgetitem.Item{Type: "header", Name: "หมวดค่าใช้จ่าย"})
	require.NoError(t, err)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].IsHeader())
	assert.Equal(t, "ค่าเดินทางไปราชการ", items[1].Name)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), budgetitem.ErrBudgetItemNotFound)
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewUserRepository(setup.DB)
	ctx := context.Background()

	_, err := repo.GetByUsername(ctx, "admin")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	created, err := repo.Create(ctx, user.User{ID: uuid.NewString(), Username: "admin", PasswordHash: "hash", IsAdmin: true})
	require.NoError(t, err)
	assert.True(t, created.IsAdmin)

	_, err = repo.Create(ctx, user.User{ID: uuid.NewString(), Username: "admin", PasswordHash: "hash"})
	assert.ErrorIs(t, err, user.ErrUsernameExists)

	got, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}
