package holiday

import "errors"

var (
	ErrHolidayNotFound  = errors.New("holiday not found")
	ErrHolidayYearMatch = errors.New("holiday date is outside the requested year")
	ErrDuplicateHoliday = errors.New("a holiday with this name already exists on this date")
)
