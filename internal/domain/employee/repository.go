package employee

import "context"

type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Upsert(ctx context.Context, e Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
}
