package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/ledger"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/numeric"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type specialAssistRepositoryImpl struct {
	db *database.DB
}

func NewSpecialAssistRepository(db *database.DB) ledger.SpecialAssistRepository {
	return &specialAssistRepositoryImpl{db: db}
}

// Get implements ledger.SpecialAssistRepository.
func (r *specialAssistRepositoryImpl) Get(ctx context.Context, yearBE int) (ledger.SpecialAssistLedger, error) {
	q := GetQuerier(ctx, r.db)

	l := ledger.SpecialAssistLedger{Year: yearBE}
	err := q.QueryRow(ctx, `SELECT notes, updated_at FROM special_assist_ledgers WHERE year = $1`, yearBE).Scan(&l.Notes, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.SpecialAssistLedger{}, ledger.ErrLedgerNotFound
		}
		return ledger.SpecialAssistLedger{}, fmt.Errorf("failed to get special assist ledger: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT item, times_per_year, days, people, rate
		FROM special_assist_items
		WHERE year = $1
		ORDER BY position ASC
	`, yearBE)
	if err != nil {
		return ledger.SpecialAssistLedger{}, fmt.Errorf("failed to get special assist items: %w", err)
	}
	defer rows.Close()

	l.Items = []ledger.SpecialAssistItem{}
	for rows.Next() {
		var (
			item                      ledger.SpecialAssistItem
			times, days, people, rate decimal.Decimal
		)
		if err := rows.Scan(&item.Item, &times, &days, &people, &rate); err != nil {
			return ledger.SpecialAssistLedger{}, fmt.Errorf("failed to scan special assist item: %w", err)
		}
		item.TimesPerYear = times.InexactFloat64()
		item.Days = days.InexactFloat64()
		item.People = people.InexactFloat64()
		item.Rate = rate.InexactFloat64()
		l.Items = append(l.Items, item)
	}

	if err = rows.Err(); err != nil {
		return ledger.SpecialAssistLedger{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return l, nil
}

// Set implements ledger.SpecialAssistRepository.
func (r *specialAssistRepositoryImpl) Set(ctx context.Context, l ledger.SpecialAssistLedger) error {
	return inTx(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		_, err := q.Exec(ctx, `
			INSERT INTO special_assist_ledgers (year, notes, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (year) DO UPDATE SET notes = EXCLUDED.notes, updated_at = NOW()
		`, l.Year, l.Notes)
		if err != nil {
			return fmt.Errorf("failed to save special assist ledger: %w", err)
		}

		if _, err := q.Exec(ctx, `DELETE FROM special_assist_items WHERE year = $1`, l.Year); err != nil {
			return fmt.Errorf("failed to clear special assist items: %w", err)
		}

		for i, item := range l.Items {
			_, err := q.Exec(ctx, `
				INSERT INTO special_assist_items (year, position, item, times_per_year, days, people, rate)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, l.Year, i, item.Item,
				numeric.Decimal(item.TimesPerYear),
				numeric.Decimal(item.Days),
				numeric.Decimal(item.People),
				numeric.Decimal(item.Rate),
			)
			if err != nil {
				return fmt.Errorf("failed to save special assist item %d: %w", i, err)
			}
		}

		return nil
	})
}

type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) ledger.OvertimeRepository {
	return &overtimeRepositoryImpl{db: db}
}

// Get implements ledger.OvertimeRepository.
func (r *overtimeRepositoryImpl) Get(ctx context.Context, yearBE int) (ledger.OvertimeLedger, error) {
	q := GetQuerier(ctx, r.db)

	var salary decimal.Decimal
	l := ledger.OvertimeLedger{Year: yearBE}
	err := q.QueryRow(ctx, `SELECT salary, notes, updated_at FROM overtime_ledgers WHERE year = $1`, yearBE).Scan(&salary, &l.Notes, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.OvertimeLedger{}, ledger.ErrLedgerNotFound
		}
		return ledger.OvertimeLedger{}, fmt.Errorf("failed to get overtime ledger: %w", err)
	}
	l.Salary = salary.InexactFloat64()

	rows, err := q.Query(ctx, `
		SELECT item, days, hours, people, hourly_rate
		FROM overtime_items
		WHERE year = $1
		ORDER BY position ASC
	`, yearBE)
	if err != nil {
		return ledger.OvertimeLedger{}, fmt.Errorf("failed to get overtime items: %w", err)
	}
	defer rows.Close()

	l.Items = []ledger.OvertimeItem{}
	for rows.Next() {
		var (
			item                ledger.OvertimeItem
			days, hours, people decimal.Decimal
			hourlyRate          decimal.NullDecimal
		)
		if err := rows.Scan(&item.Item, &days, &hours, &people, &hourlyRate); err != nil {
			return ledger.OvertimeLedger{}, fmt.Errorf("failed to scan overtime item: %w", err)
		}
		item.Days = days.InexactFloat64()
		item.Hours = hours.InexactFloat64()
		item.People = people.InexactFloat64()
		if hourlyRate.Valid {
			v := hourlyRate.Decimal.InexactFloat64()
			item.HourlyRate = &v
		}
		l.Items = append(l.Items, item)
	}

	if err = rows.Err(); err != nil {
		return ledger.OvertimeLedger{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return l, nil
}

// Set implements ledger.OvertimeRepository.
func (r *overtimeRepositoryImpl) Set(ctx context.Context, l ledger.OvertimeLedger) error {
	return inTx(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		_, err := q.Exec(ctx, `
			INSERT INTO overtime_ledgers (year, salary, notes, updated_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (year) DO UPDATE SET salary = EXCLUDED.salary, notes = EXCLUDED.notes, updated_at = NOW()
		`, l.Year, numeric.Decimal(l.Salary), l.Notes)
		if err != nil {
			return fmt.Errorf("failed to save overtime ledger: %w", err)
		}

		if _, err := q.Exec(ctx, `DELETE FROM overtime_items WHERE year = $1`, l.Year); err != nil {
			return fmt.Errorf("failed to clear overtime items: %w", err)
		}

		for i, item := range l.Items {
			var hourlyRate decimal.NullDecimal
			if item.HourlyRate != nil {
				hourlyRate = decimal.NewNullDecimal(numeric.Decimal(*item.HourlyRate))
			}
			_, err := q.Exec(ctx, `
				INSERT INTO overtime_items (year, position, item, days, hours, people, hourly_rate)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, l.Year, i, item.Item,
				numeric.Decimal(item.Days),
				numeric.Decimal(item.Hours),
				numeric.Decimal(item.People),
				hourlyRate,
			)
			if err != nil {
				return fmt.Errorf("failed to save overtime item %d: %w", i, err)
			}
		}

		return nil
	})
}
