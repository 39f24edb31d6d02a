package allowance

import (
	"context"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/ledger"
)

// BudgetService loads stored inputs and runs the allowance calculations for
// a Buddhist-era year.
type BudgetService interface {
	Travel(ctx context.Context, yearBE int) (Table[TravelRecord], error)
	SpecialAssist(ctx context.Context, yearBE int) (Table[SpecialAssistRecord], error)
	FamilyVisit(ctx context.Context, yearBE int) (Table[FamilyVisitRecord], error)
	CompanyTrip(ctx context.Context, query CompanyTripQuery) (Table[CompanyTripRecord], error)
	ManagerRotation(ctx context.Context, yearBE int) (Table[ManagerRotationRecord], error)
	Overtime(ctx context.Context, yearBE int) (ledger.OvertimeResult, error)
	WorkDays(ctx context.Context, yearBE int, includeSpecial bool) (WorkDays, error)
	HolidayStats(ctx context.Context, yearBE int) (HolidayStats, error)
	Dashboard(ctx context.Context, yearBE int) (Dashboard, error)
}
