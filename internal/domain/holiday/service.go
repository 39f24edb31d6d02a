package holiday

import "context"

// HolidayService manages holidays addressed by Buddhist-era year; storage is
// keyed by the Gregorian year.
type HolidayService interface {
	ListHolidays(ctx context.Context, yearBE int) ([]HolidayResponse, error)
	ListYears(ctx context.Context) ([]int, error)
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	UpdateHoliday(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
}
