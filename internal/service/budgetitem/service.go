package budgetitem

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/budgetitem"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/service/allowance"
)

type BudgetItemServiceImpl struct {
	itemRepo   budgetitem.BudgetItemRepository
	transactor database.Transactor
	defaults   []budgetitem.Item
}

func NewBudgetItemService(itemRepo budgetitem.BudgetItemRepository, transactor database.Transactor, defaults []budgetitem.Item) budgetitem.BudgetItemService {
	return &BudgetItemServiceImpl{
		itemRepo:   itemRepo,
		transactor: transactor,
		defaults:   defaults,
	}
}

// withBudgetYears gives a value row an entry for every budget year; headers
// carry no values at all.
func withBudgetYears(item budgetitem.Item) budgetitem.Item {
	if item.IsHeader() {
		item.Values = nil
		return item
	}

	values := make(map[int]float64, allowance.BudgetYearEnd-allowance.BudgetYearStart+1)
	for year := allowance.BudgetYearStart; year <= allowance.BudgetYearEnd; year++ {
		values[year] = 0
	}
	for year, v := range item.Values {
		values[year] = v
	}
	item.Values = values
	return item
}

// ListItems implements budgetitem.BudgetItemService.
func (s *BudgetItemServiceImpl) ListItems(ctx context.Context) ([]budgetitem.BudgetItemResponse, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget items: %w", err)
	}

	responses := make([]budgetitem.BudgetItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, budgetitem.NewBudgetItemResponse(item))
	}
	return responses, nil
}

// SaveItems implements budgetitem.BudgetItemService.
func (s *BudgetItemServiceImpl) SaveItems(ctx context.Context, req budgetitem.SaveBudgetItemsRequest) ([]budgetitem.BudgetItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.saveAll(ctx, req.ToEntities())
	if err != nil {
		return nil, err
	}

	responses := make([]budgetitem.BudgetItemResponse, 0, len(saved))
	for _, item := range saved {
		responses = append(responses, budgetitem.NewBudgetItemResponse(item))
	}

	slog.Info("Budget items saved", "count", len(saved))
	return responses, nil
}

func (s *BudgetItemServiceImpl) saveAll(ctx context.Context, items []budgetitem.Item) ([]budgetitem.Item, error) {
	saved := make([]budgetitem.Item, 0, len(items))
	err := s.transactor.WithinTx(ctx, func(txCtx context.Context) error {
		for _, item := range items {
			result, err := s.itemRepo.Upsert(txCtx, withBudgetYears(item))
			if err != nil {
				return fmt.Errorf("failed to save budget item %q: %w", item.Name, err)
			}
			saved = append(saved, result)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// DeleteItem implements budgetitem.BudgetItemService.
func (s *BudgetItemServiceImpl) DeleteItem(ctx context.Context, id string) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Budget item deleted", "budget_item_id", id)
	return nil
}

// SeedDefaults implements budgetitem.BudgetItemService.
func (s *BudgetItemServiceImpl) SeedDefaults(ctx context.Context) (int, error) {
	existing, err := s.itemRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list budget items: %w", err)
	}
	if len(existing) > 0 || len(s.defaults) == 0 {
		return 0, nil
	}

	saved, err := s.saveAll(ctx, s.defaults)
	if err != nil {
		return 0, err
	}

	slog.Info("Default budget items seeded", "count", len(saved))
	return len(saved), nil
}
