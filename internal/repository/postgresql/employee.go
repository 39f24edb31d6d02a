package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/numeric"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, name, gender, start_year, level, status, visit_province,
	home_visit_bus_fare, working_days, travel_working_days, custom_travel_rates,
	position, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var (
		e      employee.Employee
		fare   decimal.Decimal
		custom []byte
	)
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Gender,
		&e.StartYear,
		&e.Level,
		&e.Status,
		&e.VisitProvince,
		&fare,
		&e.WorkingDays,
		&e.TravelWorkingDays,
		&custom,
		&e.Position,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	e.HomeVisitBusFare = numeric.Parse(fare)
	if len(custom) > 0 && string(custom) != "null" {
		var rates employee.CustomRates
		if err := json.Unmarshal(custom, &rates); err != nil {
			return employee.Employee{}, fmt.Errorf("failed to decode custom_travel_rates: %w", err)
		}
		e.CustomTravelRates = &rates
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees
		ORDER BY position ASC, created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

// Upsert implements employee.EmployeeRepository. The record is replaced
// wholesale; created_at survives.
func (r *employeeRepositoryImpl) Upsert(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	var custom []byte
	if e.CustomTravelRates != nil {
		b, err := json.Marshal(e.CustomTravelRates)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to encode custom_travel_rates: %w", err)
		}
		custom = b
	}

	query := `
		INSERT INTO employees (
			id, name, gender, start_year, level, status, visit_province,
			home_visit_bus_fare, working_days, travel_working_days, custom_travel_rates,
			position, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			gender = EXCLUDED.gender,
			start_year = EXCLUDED.start_year,
			level = EXCLUDED.level,
			status = EXCLUDED.status,
			visit_province = EXCLUDED.visit_province,
			home_visit_bus_fare = EXCLUDED.home_visit_bus_fare,
			working_days = EXCLUDED.working_days,
			travel_working_days = EXCLUDED.travel_working_days,
			custom_travel_rates = EXCLUDED.custom_travel_rates,
			position = EXCLUDED.position,
			updated_at = NOW()
		RETURNING ` + employeeColumns

	saved, err := scanEmployee(q.QueryRow(ctx, query,
		e.ID,
		e.Name,
		e.Gender,
		e.StartYear,
		e.Level,
		e.Status,
		e.VisitProvince,
		numeric.Decimal(e.HomeVisitBusFare),
		e.WorkingDays,
		e.TravelWorkingDays,
		custom,
		e.Position,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to upsert employee: %w", err)
	}

	return saved, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
