package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/rate"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/numeric"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type rateRepositoryImpl struct {
	db *database.DB
}

func NewRateRepository(db *database.DB) rate.RateRepository {
	return &rateRepositoryImpl{db: db}
}

const rateColumns = `level, position, rent, monthly_assist, souvenir_allowance, travel, local, per_diem, hotel, created_at, updated_at`

func scanRate(row pgx.Row) (rate.Bundle, error) {
	var (
		b                                                      rate.Bundle
		rent, monthly, souvenir, travel, local, perDiem, hotel decimal.Decimal
	)
	err := row.Scan(
		&b.Level,
		&b.Position,
		&rent,
		&monthly,
		&souvenir,
		&travel,
		&local,
		&perDiem,
		&hotel,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return rate.Bundle{}, err
	}

	b.Rent = rent.InexactFloat64()
	b.MonthlyAssist = monthly.InexactFloat64()
	b.SouvenirAllowance = souvenir.InexactFloat64()
	b.Travel = travel.InexactFloat64()
	b.Local = local.InexactFloat64()
	b.PerDiem = perDiem.InexactFloat64()
	b.Hotel = hotel.InexactFloat64()
	return b, nil
}

// List implements rate.RateRepository.
func (r *rateRepositoryImpl) List(ctx context.Context) ([]rate.Bundle, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+rateColumns+` FROM master_rates ORDER BY level ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list master rates: %w", err)
	}
	defer rows.Close()

	bundles := []rate.Bundle{}
	for rows.Next() {
		b, err := scanRate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan master rate: %w", err)
		}
		bundles = append(bundles, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return bundles, nil
}

// GetByLevel implements rate.RateRepository.
func (r *rateRepositoryImpl) GetByLevel(ctx context.Context, level string) (rate.Bundle, error) {
	q := GetQuerier(ctx, r.db)

	b, err := scanRate(q.QueryRow(ctx, `SELECT `+rateColumns+` FROM master_rates WHERE level = $1`, level))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rate.Bundle{}, rate.ErrRateNotFound
		}
		return rate.Bundle{}, fmt.Errorf("failed to get master rate: %w", err)
	}

	return b, nil
}

// Upsert implements rate.RateRepository.
func (r *rateRepositoryImpl) Upsert(ctx context.Context, b rate.Bundle) (rate.Bundle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO master_rates (
			level, position, rent, monthly_assist, souvenir_allowance,
			travel, local, per_diem, hotel, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (level) DO UPDATE SET
			position = EXCLUDED.position,
			rent = EXCLUDED.rent,
			monthly_assist = EXCLUDED.monthly_assist,
			souvenir_allowance = EXCLUDED.souvenir_allowance,
			travel = EXCLUDED.travel,
			local = EXCLUDED.local,
			per_diem = EXCLUDED.per_diem,
			hotel = EXCLUDED.hotel,
			updated_at = NOW()
		RETURNING ` + rateColumns

	saved, err := scanRate(q.QueryRow(ctx, query,
		b.Level,
		b.Position,
		numeric.Decimal(b.Rent),
		numeric.Decimal(b.MonthlyAssist),
		numeric.Decimal(b.SouvenirAllowance),
		numeric.Decimal(b.Travel),
		numeric.Decimal(b.Local),
		numeric.Decimal(b.PerDiem),
		numeric.Decimal(b.Hotel),
	))
	if err != nil {
		return rate.Bundle{}, fmt.Errorf("failed to upsert master rate: %w", err)
	}

	return saved, nil
}

// Delete implements rate.RateRepository.
func (r *rateRepositoryImpl) Delete(ctx context.Context, level string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM master_rates WHERE level = $1`, level)
	if err != nil {
		return fmt.Errorf("failed to delete master rate: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return rate.ErrRateNotFound
	}

	return nil
}

// Count implements rate.RateRepository.
func (r *rateRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM master_rates`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count master rates: %w", err)
	}

	return count, nil
}
