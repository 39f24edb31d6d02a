package holiday

import "context"

type HolidayRepository interface {
	// ListByYear takes a Gregorian year and returns holidays ordered by date.
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
	ListYears(ctx context.Context) ([]int, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	Create(ctx context.Context, h Holiday) (Holiday, error)
	Update(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error
}
