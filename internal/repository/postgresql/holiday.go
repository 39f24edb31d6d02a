package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

const holidayColumns = `id, year, to_char(date, 'YYYY-MM-DD'), name, is_special, created_at`

func scanHoliday(row pgx.Row) (holiday.Holiday, error) {
	var h holiday.Holiday
	err := row.Scan(
		&h.ID,
		&h.Year,
		&h.Date,
		&h.Name,
		&h.IsSpecial,
		&h.CreatedAt,
	)
	return h, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// ListByYear implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+holidayColumns+` FROM holidays WHERE year = $1 ORDER BY date ASC, name ASC`, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	holidays := []holiday.Holiday{}
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return holidays, nil
}

// ListYears implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) ListYears(ctx context.Context) ([]int, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT DISTINCT year FROM holidays ORDER BY year DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list holiday years: %w", err)
	}
	defer rows.Close()

	years := []int{}
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("failed to scan holiday year: %w", err)
		}
		years = append(years, y)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return years, nil
}

// GetByID implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	h, err := scanHoliday(q.QueryRow(ctx, `SELECT `+holidayColumns+` FROM holidays WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to get holiday: %w", err)
	}

	return h, nil
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, year, date, name, is_special, created_at)
		VALUES ($1, $2, $3::date, $4, $5, NOW())
		RETURNING ` + holidayColumns

	created, err := scanHoliday(q.QueryRow(ctx, query, h.ID, h.Year, h.Date, h.Name, h.IsSpecial))
	if err != nil {
		if isUniqueViolation(err) {
			return holiday.Holiday{}, holiday.ErrDuplicateHoliday
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return created, nil
}

// Update implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Update(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holidays
		SET year = $2, date = $3::date, name = $4, is_special = $5
		WHERE id = $1
		RETURNING ` + holidayColumns

	updated, err := scanHoliday(q.QueryRow(ctx, query, h.ID, h.Year, h.Date, h.Name, h.IsSpecial))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		if isUniqueViolation(err) {
			return holiday.Holiday{}, holiday.ErrDuplicateHoliday
		}
		return holiday.Holiday{}, fmt.Errorf("failed to update holiday: %w", err)
	}

	return updated, nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}
