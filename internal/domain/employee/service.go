package employee

import (
	"context"
)

// EmployeeService defines business logic for employee master data
type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// SaveEmployee creates or fully replaces an employee keyed by id.
	// A missing id gets a fresh one.
	SaveEmployee(ctx context.Context, req UpsertEmployeeRequest) (EmployeeResponse, error)

	// BulkSaveEmployees upserts every record it can; failures are logged and skipped.
	BulkSaveEmployees(ctx context.Context, req BulkUpsertEmployeeRequest) (BulkUpsertEmployeeResponse, error)

	DeleteEmployee(ctx context.Context, id string) error
}
