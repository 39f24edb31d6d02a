package budgetitem

import "context"

type BudgetItemService interface {
	ListItems(ctx context.Context) ([]BudgetItemResponse, error)
	SaveItems(ctx context.Context, req SaveBudgetItemsRequest) ([]BudgetItemResponse, error)
	DeleteItem(ctx context.Context, id string) error

	// SeedDefaults writes the default sheet when no items exist.
	SeedDefaults(ctx context.Context) (int, error)
}
