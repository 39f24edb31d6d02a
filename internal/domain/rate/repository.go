package rate

import "context"

type RateRepository interface {
	List(ctx context.Context) ([]Bundle, error)
	GetByLevel(ctx context.Context, level string) (Bundle, error)
	Upsert(ctx context.Context, b Bundle) (Bundle, error)
	Delete(ctx context.Context, level string) error
	Count(ctx context.Context) (int64, error)
}
