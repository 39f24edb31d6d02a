package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/numeric"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepository struct {
	rows    map[string]employee.Employee
	order   []string
	failIDs map[string]bool
}

func newFakeEmployeeRepository() *fakeEmployeeRepository {
	return &fakeEmployeeRepository{rows: map[string]employee.Employee{}, failIDs: map[string]bool{}}
}

func (f *fakeEmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.rows[id])
	}
	return out, nil
}

func (f *fakeEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.rows[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepository) Upsert(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	if f.failIDs[e.ID] {
		return employee.Employee{}, errors.New("connection reset")
	}
	if _, ok := f.rows[e.ID]; !ok {
		f.order = append(f.order, e.ID)
	}
	f.rows[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.rows, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func validRequest(id string) employee.UpsertEmployeeRequest {
	return employee.UpsertEmployeeRequest{
		ID:        id,
		Name:      "สมหญิง",
		Gender:    "female",
		StartYear: 2560,
		Level:     "4",
	}
}

func TestSaveEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults are applied", func(t *testing.T) {
		repo := newFakeEmployeeRepository()
		svc := NewEmployeeService(repo)

		resp, err := svc.SaveEmployee(ctx, validRequest(""))
		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, employee.Female, resp.Gender)
		assert.Equal(t, employee.StatusEligible, resp.Status)
		assert.Equal(t, 1, resp.WorkingDays)
		assert.Equal(t, 1, resp.TravelWorkingDays)
	})

	t.Run("replace keeps id", func(t *testing.T) {
		repo := newFakeEmployeeRepository()
		svc := NewEmployeeService(repo)

		_, err := svc.SaveEmployee(ctx, validRequest("E1"))
		require.NoError(t, err)

		req := validRequest("E1")
		req.Level = "6"
		req.HomeVisitBusFare = numeric.Float(350)
		_, err = svc.SaveEmployee(ctx, req)
		require.NoError(t, err)

		list, err := svc.ListEmployees(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "6", list[0].Level)
		assert.Equal(t, 350.0, list[0].HomeVisitBusFare)
	})

	t.Run("invalid gender", func(t *testing.T) {
		svc := NewEmployeeService(newFakeEmployeeRepository())

		req := validRequest("E1")
		req.Gender = "x"
		_, err := svc.SaveEmployee(ctx, req)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "gender", verrs[0].Field)
	})
}

func TestBulkSaveEmployees(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepository()
	repo.failIDs["E3"] = true
	svc := NewEmployeeService(repo)

	invalid := validRequest("E2")
	invalid.Name = ""

	resp, err := svc.BulkSaveEmployees(ctx, employee.BulkUpsertEmployeeRequest{
		Employees: []employee.UpsertEmployeeRequest{validRequest("E1"), invalid, validRequest("E3"), validRequest("E4")},
	})
	require.NoError(t, err)

	require.Len(t, resp.Saved, 2)
	assert.Equal(t, "E1", resp.Saved[0].ID)
	assert.Equal(t, "E4", resp.Saved[1].ID)
	require.Len(t, resp.Failed, 2)
	assert.Equal(t, 1, resp.Failed[0].Index)
	assert.Equal(t, "E3", resp.Failed[1].ID)

	_, err = svc.BulkSaveEmployees(ctx, employee.BulkUpsertEmployeeRequest{})
	assert.Error(t, err)
}

func TestDeleteEmployee(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepository())

	_, err := svc.SaveEmployee(ctx, validRequest("E1"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEmployee(ctx, "E1"))
	_, err = svc.GetEmployee(ctx, "E1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.ErrorIs(t, svc.DeleteEmployee(ctx, "E1"), employee.ErrEmployeeNotFound)
}
