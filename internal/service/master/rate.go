package master

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/rate"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/database"
)

type rateServiceImpl struct {
	rateRepo   rate.RateRepository
	transactor database.Transactor
	defaults   []rate.Bundle
}

// NewRateService builds the master-rate service. defaults are written by
// SeedDefaults when the table is empty.
func NewRateService(rateRepo rate.RateRepository, transactor database.Transactor, defaults []rate.Bundle) rate.RateService {
	return &rateServiceImpl{
		rateRepo:   rateRepo,
		transactor: transactor,
		defaults:   defaults,
	}
}

// ==================== READ OPERATIONS ====================

func (s *rateServiceImpl) ListRates(ctx context.Context) ([]rate.RateResponse, error) {
	bundles, err := s.rateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list master rates: %w", err)
	}

	slices.SortStableFunc(bundles, func(a, b rate.Bundle) int {
		return rate.CompareLevels(a.Level, b.Level)
	})

	responses := make([]rate.RateResponse, 0, len(bundles))
	for _, b := range bundles {
		responses = append(responses, rate.NewRateResponse(b))
	}
	return responses, nil
}

func (s *rateServiceImpl) GetRate(ctx context.Context, level string) (rate.RateResponse, error) {
	b, err := s.rateRepo.GetByLevel(ctx, level)
	if err != nil {
		return rate.RateResponse{}, err
	}
	return rate.NewRateResponse(b), nil
}

// ==================== WRITE OPERATIONS ====================

func (s *rateServiceImpl) SaveRate(ctx context.Context, req rate.UpsertRateRequest) (rate.RateResponse, error) {
	if err := req.Validate(); err != nil {
		return rate.RateResponse{}, err
	}

	saved, err := s.rateRepo.Upsert(ctx, req.ToEntity())
	if err != nil {
		return rate.RateResponse{}, fmt.Errorf("failed to save master rate: %w", err)
	}

	slog.Info("Master rate saved", "level", saved.Level)
	return rate.NewRateResponse(saved), nil
}

func (s *rateServiceImpl) BulkSaveRates(ctx context.Context, req rate.BulkUpsertRateRequest) ([]rate.RateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	responses := make([]rate.RateResponse, 0, len(req.Rates))
	err := s.transactor.WithinTx(ctx, func(txCtx context.Context) error {
		for i := range req.Rates {
			saved, err := s.rateRepo.Upsert(txCtx, req.Rates[i].ToEntity())
			if err != nil {
				return fmt.Errorf("failed to save master rate %q: %w", req.Rates[i].Level, err)
			}
			responses = append(responses, rate.NewRateResponse(saved))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Master rates saved", "count", len(responses))
	return responses, nil
}

func (s *rateServiceImpl) DeleteRate(ctx context.Context, level string) error {
	if err := s.rateRepo.Delete(ctx, level); err != nil {
		return err
	}
	slog.Info("Master rate deleted", "level", level)
	return nil
}

func (s *rateServiceImpl) SeedDefaults(ctx context.Context) (int, error) {
	count, err := s.rateRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count master rates: %w", err)
	}
	if count > 0 || len(s.defaults) == 0 {
		return 0, nil
	}

	err = s.transactor.WithinTx(ctx, func(txCtx context.Context) error {
		for _, b := range s.defaults {
			if _, err := s.rateRepo.Upsert(txCtx, b); err != nil {
				return fmt.Errorf("failed to seed master rate %q: %w", b.Level, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("Default master rates seeded", "count", len(s.defaults))
	return len(s.defaults), nil
}
