package rate

import "errors"

var (
	ErrRateNotFound     = errors.New("master rate not found")
	ErrEmptyBulkPayload = errors.New("at least one master rate is required")
)
