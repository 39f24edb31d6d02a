package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/budgetitem"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type budgetItemRepositoryImpl struct {
	db *database.DB
}

func NewBudgetItemRepository(db *database.DB) budgetitem.BudgetItemRepository {
	return &budgetItemRepositoryImpl{db: db}
}

const budgetItemColumns = `id, COALESCE(type, ''), COALESCE(code, ''), COALESCE(account_code, ''), name, year_values, notes, position, created_at, updated_at`

func scanBudgetItem(row pgx.Row) (budgetitem.Item, error) {
	var (
		item   budgetitem.Item
		values []byte
	)
	err := row.Scan(
		&item.ID,
		&item.Type,
		&item.Code,
		&item.AccountCode,
		&item.Name,
		&values,
		&item.Notes,
		&item.Position,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return budgetitem.Item{}, err
	}

	item.Values = map[int]float64{}
	if len(values) > 0 {
		if err := json.Unmarshal(values, &item.Values); err != nil {
			return budgetitem.Item{}, fmt.Errorf("failed to decode year_values: %w", err)
		}
	}
	return item, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// List implements budgetitem.BudgetItemRepository.
func (r *budgetItemRepositoryImpl) List(ctx context.Context) ([]budgetitem.Item, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+budgetItemColumns+` FROM budget_items ORDER BY position ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget items: %w", err)
	}
	defer rows.Close()

	items := []budgetitem.Item{}
	for rows.Next() {
		item, err := scanBudgetItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}

// findID resolves the row an upsert should update: account code first,
// then code, then the id itself.
func (r *budgetItemRepositoryImpl) findID(ctx context.Context, item budgetitem.Item) (string, error) {
	q := GetQuerier(ctx, r.db)

	var query string
	var arg string
	if column, value := item.MatchKey(); column != "" {
		query = `SELECT id FROM budget_items WHERE ` + column + ` = $1 ORDER BY created_at ASC LIMIT 1`
		arg = value
	} else if item.ID != "" {
		query = `SELECT id FROM budget_items WHERE id = $1`
		arg = item.ID
	} else {
		return "", nil
	}

	var id string
	err := q.QueryRow(ctx, query, arg).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to find budget item: %w", err)
	}
	return id, nil
}

// Upsert implements budgetitem.BudgetItemRepository.
func (r *budgetItemRepositoryImpl) Upsert(ctx context.Context, item budgetitem.Item) (budgetitem.Item, error) {
	existingID, err := r.findID(ctx, item)
	if err != nil {
		return budgetitem.Item{}, err
	}

	values := item.Values
	if values == nil {
		values = map[int]float64{}
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return budgetitem.Item{}, fmt.Errorf("failed to encode year_values: %w", err)
	}

	q := GetQuerier(ctx, r.db)

	if existingID != "" {
		query := `
			UPDATE budget_items
			SET type = $2, code = $3, account_code = $4, name = $5,
				year_values = $6, notes = $7, position = $8, updated_at = NOW()
			WHERE id = $1
			RETURNING ` + budgetItemColumns

		saved, err := scanBudgetItem(q.QueryRow(ctx, query, existingID,
			nullIfEmpty(item.Type), nullIfEmpty(item.Code), nullIfEmpty(item.AccountCode),
			item.Name, encoded, item.Notes, item.Position,
		))
		if err != nil {
			return budgetitem.Item{}, fmt.Errorf("failed to update budget item: %w", err)
		}
		return saved, nil
	}

	id := item.ID
	if id == "" {
		id = uuid.NewString()
	}

	query := `
		INSERT INTO budget_items (id, type, code, account_code, name, year_values, notes, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + budgetItemColumns

	saved, err := scanBudgetItem(q.QueryRow(ctx, query, id,
		nullIfEmpty(item.Type), nullIfEmpty(item.Code), nullIfEmpty(item.AccountCode),
		item.Name, encoded, item.Notes, item.Position,
	))
	if err != nil {
		return budgetitem.Item{}, fmt.Errorf("failed to create budget item: %w", err)
	}
	return saved, nil
}

// Delete implements budgetitem.BudgetItemRepository.
func (r *budgetItemRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM budget_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget item: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return budgetitem.ErrBudgetItemNotFound
	}

	return nil
}
