package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e))
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(e), nil
}

// SaveEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SaveEmployee(ctx context.Context, req employee.UpsertEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	saved, err := s.save(ctx, req.ToEntity())
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee saved", "employee_id", saved.ID, "level", saved.Level)
	return employee.NewEmployeeResponse(saved), nil
}

func (s *EmployeeServiceImpl) save(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	saved, err := s.employeeRepo.Upsert(ctx, e)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to save employee: %w", err)
	}
	return saved, nil
}

// BulkSaveEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) BulkSaveEmployees(ctx context.Context, req employee.BulkUpsertEmployeeRequest) (employee.BulkUpsertEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.BulkUpsertEmployeeResponse{}, err
	}

	resp := employee.BulkUpsertEmployeeResponse{
		Saved:  []employee.EmployeeResponse{},
		Failed: []employee.BulkUpsertFailure{},
	}

	for i := range req.Employees {
		item := req.Employees[i]
		if err := item.Validate(); err != nil {
			slog.Warn("Skipping invalid employee in bulk save", "index", i, "employee_id", item.ID, "error", err)
			resp.Failed = append(resp.Failed, employee.BulkUpsertFailure{Index: i, ID: item.ID, Error: err.Error()})
			continue
		}

		saved, err := s.save(ctx, item.ToEntity())
		if err != nil {
			slog.Error("Failed to save employee in bulk save", "index", i, "employee_id", item.ID, "error", err)
			resp.Failed = append(resp.Failed, employee.BulkUpsertFailure{Index: i, ID: item.ID, Error: err.Error()})
			continue
		}
		resp.Saved = append(resp.Saved, employee.NewEmployeeResponse(saved))
	}

	slog.Info("Bulk employee save finished", "saved", len(resp.Saved), "failed", len(resp.Failed))
	return resp, nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Employee deleted", "employee_id", id)
	return nil
}
