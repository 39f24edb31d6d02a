package allowance

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/rate"
)

// SortForDisplay orders records by level, highest first, then by name using
// Thai collation. The input slice is left untouched.
func SortForDisplay[T any](records []T, key func(T) employee.EmployeeResponse) []T {
	sorted := slices.Clone(records)
	collator := collate.New(language.Thai)
	slices.SortStableFunc(sorted, func(a, b T) int {
		ea, eb := key(a), key(b)
		if c := rate.CompareLevels(ea.Level, eb.Level); c != 0 {
			return c
		}
		return collator.CompareString(ea.Name, eb.Name)
	})
	return sorted
}
