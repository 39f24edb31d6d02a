package budgetitem

import "errors"

var (
	ErrBudgetItemNotFound = errors.New("budget item not found")
)
