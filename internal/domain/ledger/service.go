package ledger

import "context"

// LedgerService reads and writes the year-keyed ledgers. A year with no
// stored ledger reads as an explicit default that is not persisted.
type LedgerService interface {
	GetSpecialAssist(ctx context.Context, yearBE int) (SpecialAssistResult, error)
	SetSpecialAssist(ctx context.Context, req SetSpecialAssistRequest) (SpecialAssistResult, error)
	GetOvertime(ctx context.Context, yearBE int) (OvertimeResult, error)
	SetOvertime(ctx context.Context, req SetOvertimeRequest) (OvertimeResult, error)
}
