package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/ledger"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/service/allowance"
)

// Defaults supplies the ledger a year reads as before anything is stored.
type Defaults interface {
	SpecialAssistLedger(yearBE int) ledger.SpecialAssistLedger
	OvertimeLedger(yearBE int) ledger.OvertimeLedger
}

type LedgerServiceImpl struct {
	specialAssistRepo ledger.SpecialAssistRepository
	overtimeRepo      ledger.OvertimeRepository
	defaults          Defaults
	calc              *allowance.Calculator
}

func NewLedgerService(
	specialAssistRepo ledger.SpecialAssistRepository,
	overtimeRepo ledger.OvertimeRepository,
	defaults Defaults,
) ledger.LedgerService {
	return &LedgerServiceImpl{
		specialAssistRepo: specialAssistRepo,
		overtimeRepo:      overtimeRepo,
		defaults:          defaults,
		calc:              allowance.NewCalculator(),
	}
}

// GetSpecialAssist implements ledger.LedgerService.
func (s *LedgerServiceImpl) GetSpecialAssist(ctx context.Context, yearBE int) (ledger.SpecialAssistResult, error) {
	stored := true
	l, err := s.specialAssistRepo.Get(ctx, yearBE)
	if err != nil {
		if !errors.Is(err, ledger.ErrLedgerNotFound) {
			return ledger.SpecialAssistResult{}, fmt.Errorf("failed to get special assist ledger: %w", err)
		}
		l = s.defaults.SpecialAssistLedger(yearBE)
		stored = false
	}

	result := s.calc.SpecialAssistLedger(l)
	result.Stored = stored
	return result, nil
}

// SetSpecialAssist implements ledger.LedgerService.
func (s *LedgerServiceImpl) SetSpecialAssist(ctx context.Context, req ledger.SetSpecialAssistRequest) (ledger.SpecialAssistResult, error) {
	if err := req.Validate(); err != nil {
		return ledger.SpecialAssistResult{}, err
	}

	l := req.ToEntity()
	if err := s.specialAssistRepo.Set(ctx, l); err != nil {
		return ledger.SpecialAssistResult{}, fmt.Errorf("failed to save special assist ledger: %w", err)
	}

	slog.Info("Special assist ledger saved", "year", l.Year, "items", len(l.Items))

	result := s.calc.SpecialAssistLedger(l)
	result.Stored = true
	return result, nil
}

// GetOvertime implements ledger.LedgerService.
func (s *LedgerServiceImpl) GetOvertime(ctx context.Context, yearBE int) (ledger.OvertimeResult, error) {
	stored := true
	l, err := s.overtimeRepo.Get(ctx, yearBE)
	if err != nil {
		if !errors.Is(err, ledger.ErrLedgerNotFound) {
			return ledger.OvertimeResult{}, fmt.Errorf("failed to get overtime ledger: %w", err)
		}
		l = s.defaults.OvertimeLedger(yearBE)
		stored = false
	}

	result := s.calc.Overtime(l)
	result.Stored = stored
	return result, nil
}

// SetOvertime implements ledger.LedgerService.
func (s *LedgerServiceImpl) SetOvertime(ctx context.Context, req ledger.SetOvertimeRequest) (ledger.OvertimeResult, error) {
	if err := req.Validate(); err != nil {
		return ledger.OvertimeResult{}, err
	}

	l := req.ToEntity()
	if err := s.overtimeRepo.Set(ctx, l); err != nil {
		return ledger.OvertimeResult{}, fmt.Errorf("failed to save overtime ledger: %w", err)
	}

	slog.Info("Overtime ledger saved", "year", l.Year, "items", len(l.Items))

	result := s.calc.Overtime(l)
	result.Stored = true
	return result, nil
}
