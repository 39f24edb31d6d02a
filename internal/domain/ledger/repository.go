package ledger

import "context"

// Get returns ErrLedgerNotFound when nothing is stored for the year.
// Set replaces the whole ledger for the year atomically.
type SpecialAssistRepository interface {
	Get(ctx context.Context, yearBE int) (SpecialAssistLedger, error)
	Set(ctx context.Context, l SpecialAssistLedger) error
}

type OvertimeRepository interface {
	Get(ctx context.Context, yearBE int) (OvertimeLedger, error)
	Set(ctx context.Context, l OvertimeLedger) error
}
