package rate

import "context"

type RateService interface {
	// ListRates returns every bundle sorted by numeric level, highest first.
	ListRates(ctx context.Context) ([]RateResponse, error)
	GetRate(ctx context.Context, level string) (RateResponse, error)
	SaveRate(ctx context.Context, req UpsertRateRequest) (RateResponse, error)
	BulkSaveRates(ctx context.Context, req BulkUpsertRateRequest) ([]RateResponse, error)
	DeleteRate(ctx context.Context, level string) error

	// SeedDefaults writes the default bundles when the table is empty.
	SeedDefaults(ctx context.Context) (int, error)
}
