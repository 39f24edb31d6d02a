package ledger

import "errors"

var (
	ErrLedgerNotFound = errors.New("ledger not found for year")
)
