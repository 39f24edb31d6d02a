package budgetitem

import "time"

// Item is a row of the annual budget sheet. Rows with a Type are section
// headers and carry no values.
type Item struct {
	ID          string
	Type        string
	Code        string
	AccountCode string
	Name        string
	Values      map[int]float64
	Notes       string
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (i Item) IsHeader() bool {
	return i.Type != ""
}

// MatchKey is the natural key used for upserts: the account code when set,
// otherwise the item code.
func (i Item) MatchKey() (column string, value string) {
	if i.AccountCode != "" {
		return "account_code", i.AccountCode
	}
	if i.Code != "" {
		return "code", i.Code
	}
	return "", ""
}
