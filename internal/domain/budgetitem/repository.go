package budgetitem

import "context"

type BudgetItemRepository interface {
	List(ctx context.Context) ([]Item, error)
	// Upsert updates the row matching accountCode, else code, else id, and
	// inserts when nothing matches.
	Upsert(ctx context.Context, item Item) (Item, error)
	Delete(ctx context.Context, id string) error
}
