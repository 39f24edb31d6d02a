package allowance

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/allowance"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/ledger"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/rate"
)

// TripSettings are the company-trip defaults used when a request does not
// override them.
type TripSettings struct {
	Destination string
	BusFare     float64
}

type BudgetServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	rateRepo     rate.RateRepository
	holidayRepo  holiday.HolidayRepository
	ledgers      ledger.LedgerService
	calc         *Calculator
	trip         TripSettings
}

func NewBudgetService(
	employeeRepo employee.EmployeeRepository,
	rateRepo rate.RateRepository,
	holidayRepo holiday.HolidayRepository,
	ledgers ledger.LedgerService,
	trip TripSettings,
) allowance.BudgetService {
	if trip.Destination == "" {
		trip.Destination = DefaultTripDestination
	}
	return &BudgetServiceImpl{
		employeeRepo: employeeRepo,
		rateRepo:     rateRepo,
		holidayRepo:  holidayRepo,
		ledgers:      ledgers,
		calc:         NewCalculator(),
		trip:         trip,
	}
}

// loadInputs reads employees and the rate table in parallel.
func (s *BudgetServiceImpl) loadInputs(ctx context.Context) ([]employee.Employee, rate.Table, error) {
	var (
		employees []employee.Employee
		bundles   []rate.Bundle
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load employees: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		bundles, err = s.rateRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load master rates: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("Budget loadInputs error", "error", err)
		return nil, nil, err
	}

	return employees, rate.NewTable(bundles), nil
}

func (s *BudgetServiceImpl) Travel(ctx context.Context, yearBE int) (allowance.Table[allowance.TravelRecord], error) {
	employees, table, err := s.loadInputs(ctx)
	if err != nil {
		return allowance.Table[allowance.TravelRecord]{}, err
	}

	records := SortForDisplay(s.calc.Travel(employees, table, yearBE), func(r allowance.TravelRecord) employee.EmployeeResponse {
		return r.EmployeeResponse
	})
	return NewTable(yearBE, records, func(r allowance.TravelRecord) float64 { return r.Total }), nil
}

func (s *BudgetServiceImpl) SpecialAssist(ctx context.Context, yearBE int) (allowance.Table[allowance.SpecialAssistRecord], error) {
	employees, table, err := s.loadInputs(ctx)
	if err != nil {
		return allowance.Table[allowance.SpecialAssistRecord]{}, err
	}

	records := SortForDisplay(s.calc.SpecialAssist(employees, table), func(r allowance.SpecialAssistRecord) employee.EmployeeResponse {
		return r.EmployeeResponse
	})
	return NewTable(yearBE, records, func(r allowance.SpecialAssistRecord) float64 { return r.Total }), nil
}

func filterEmployees(employees []employee.Employee, keep func(employee.Employee) bool) []employee.Employee {
	filtered := make([]employee.Employee, 0, len(employees))
	for _, e := range employees {
		if keep(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func (s *BudgetServiceImpl) FamilyVisit(ctx context.Context, yearBE int) (allowance.Table[allowance.FamilyVisitRecord], error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		slog.Error("Budget FamilyVisit error", "error", err)
		return allowance.Table[allowance.FamilyVisitRecord]{}, fmt.Errorf("failed to load employees: %w", err)
	}

	eligible := filterEmployees(employees, FamilyVisitEligible)
	records := SortForDisplay(s.calc.FamilyVisit(eligible), func(r allowance.FamilyVisitRecord) employee.EmployeeResponse {
		return r.EmployeeResponse
	})
	return NewTable(yearBE, records, func(r allowance.FamilyVisitRecord) float64 { return r.Total }), nil
}

func (s *BudgetServiceImpl) CompanyTrip(ctx context.Context, query allowance.CompanyTripQuery) (allowance.Table[allowance.CompanyTripRecord], error) {
	if err := query.Validate(); err != nil {
		return allowance.Table[allowance.CompanyTripRecord]{}, err
	}

	destination := query.Destination
	if destination == "" {
		destination = s.trip.Destination
	}
	busFare := s.trip.BusFare
	if query.BusFare != nil {
		busFare = *query.BusFare
	}

	employees, table, err := s.loadInputs(ctx)
	if err != nil {
		return allowance.Table[allowance.CompanyTripRecord]{}, err
	}

	// Stored order drives pairing, so no display sort here.
	records := s.calc.CompanyTrip(employees, table, destination, busFare)
	return NewTable(query.YearBE, records, func(r allowance.CompanyTripRecord) float64 { return r.Total }), nil
}

func (s *BudgetServiceImpl) ManagerRotation(ctx context.Context, yearBE int) (allowance.Table[allowance.ManagerRotationRecord], error) {
	employees, table, err := s.loadInputs(ctx)
	if err != nil {
		return allowance.Table[allowance.ManagerRotationRecord]{}, err
	}

	records := SortForDisplay(s.calc.ManagerRotation(employees, table), func(r allowance.ManagerRotationRecord) employee.EmployeeResponse {
		return r.EmployeeResponse
	})
	return NewTable(yearBE, records, func(r allowance.ManagerRotationRecord) float64 { return r.Total }), nil
}

func (s *BudgetServiceImpl) Overtime(ctx context.Context, yearBE int) (ledger.OvertimeResult, error) {
	return s.ledgers.GetOvertime(ctx, yearBE)
}

func (s *BudgetServiceImpl) WorkDays(ctx context.Context, yearBE int, includeSpecial bool) (allowance.WorkDays, error) {
	holidays, err := s.holidayRepo.ListByYear(ctx, ToGregorian(yearBE))
	if err != nil {
		slog.Error("Budget WorkDays error", "error", err)
		return allowance.WorkDays{}, fmt.Errorf("failed to load holidays: %w", err)
	}
	return s.calc.WorkDays(yearBE, holidays, includeSpecial), nil
}

func (s *BudgetServiceImpl) HolidayStats(ctx context.Context, yearBE int) (allowance.HolidayStats, error) {
	gregorian := ToGregorian(yearBE)

	years, err := s.holidayRepo.ListYears(ctx)
	if err != nil {
		slog.Error("Budget HolidayStats error", "error", err)
		return allowance.HolidayStats{}, fmt.Errorf("failed to list holiday years: %w", err)
	}

	var (
		current  []holiday.Holiday
		previous = make(map[int][]holiday.Holiday)
		results  = make([][]holiday.Holiday, len(years))
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		current, err = s.holidayRepo.ListByYear(gCtx, gregorian)
		return err
	})

	for i, y := range years {
		if y < gregorian-EstimateReferenceYears || y >= gregorian {
			continue
		}
		g.Go(func() error {
			list, err := s.holidayRepo.ListByYear(gCtx, y)
			if err != nil {
				return err
			}
			results[i] = list
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Error("Budget HolidayStats error", "error", err)
		return allowance.HolidayStats{}, fmt.Errorf("failed to load holidays: %w", err)
	}

	for i, y := range years {
		if len(results[i]) > 0 {
			previous[y] = results[i]
		}
	}

	return s.calc.HolidayStats(yearBE, current, previous), nil
}

// Dashboard computes every sheet for the year in one pass. Inputs are
// loaded in parallel.
func (s *BudgetServiceImpl) Dashboard(ctx context.Context, yearBE int) (allowance.Dashboard, error) {
	var (
		employees     []employee.Employee
		bundles       []rate.Bundle
		holidays      []holiday.Holiday
		specialAssist ledger.SpecialAssistResult
		overtime      ledger.OvertimeResult
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		bundles, err = s.rateRepo.List(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		holidays, err = s.holidayRepo.ListByYear(gCtx, ToGregorian(yearBE))
		return err
	})
	g.Go(func() error {
		var err error
		specialAssist, err = s.ledgers.GetSpecialAssist(gCtx, yearBE)
		return err
	})
	g.Go(func() error {
		var err error
		overtime, err = s.ledgers.GetOvertime(gCtx, yearBE)
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("Budget Dashboard error", "error", err)
		return allowance.Dashboard{}, fmt.Errorf("failed to load dashboard inputs: %w", err)
	}

	return s.calc.Dashboard(yearBE, employees, rate.NewTable(bundles), holidays, specialAssist, overtime, s.trip), nil
}
