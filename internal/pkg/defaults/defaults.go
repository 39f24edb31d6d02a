package defaults

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/budgetitem"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/ledger"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/rate"
)

//go:embed default.yaml
var embedded []byte

type masterRate struct {
	Level             string  `yaml:"level"`
	Position          string  `yaml:"position"`
	Rent              float64 `yaml:"rent"`
	MonthlyAssist     float64 `yaml:"monthly_assist"`
	SouvenirAllowance float64 `yaml:"souvenir_allowance"`
	Travel            float64 `yaml:"travel"`
	Local             float64 `yaml:"local"`
	PerDiem           float64 `yaml:"per_diem"`
	Hotel             float64 `yaml:"hotel"`
}

type specialAssistItem struct {
	Item         string  `yaml:"item"`
	TimesPerYear float64 `yaml:"times_per_year"`
	Days         float64 `yaml:"days"`
	People       float64 `yaml:"people"`
	Rate         float64 `yaml:"rate"`
}

type budgetItem struct {
	Type        string `yaml:"type"`
	Code        string `yaml:"code"`
	AccountCode string `yaml:"account_code"`
	Name        string `yaml:"name"`
}

type file struct {
	OvertimeSalary     float64             `yaml:"overtime_salary"`
	MasterRates        []masterRate        `yaml:"master_rates"`
	SpecialAssistItems []specialAssistItem `yaml:"special_assist_items"`
	BudgetItems        []budgetItem        `yaml:"budget_items"`
}

// Defaults is the seed data for master rates, ledgers and budget items.
type Defaults struct {
	OvertimeSalary     float64
	MasterRates        []rate.Bundle
	SpecialAssistItems []ledger.SpecialAssistItem
	BudgetItems        []budgetitem.Item
}

// Load parses the embedded defaults, or the YAML file at path when path is
// not empty.
func Load(path string) (*Defaults, error) {
	data := embedded
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read defaults file: %w", err)
		}
		data = b
	}
	return Parse(data)
}

func Parse(data []byte) (*Defaults, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse defaults: %w", err)
	}

	d := &Defaults{OvertimeSalary: f.OvertimeSalary}

	seen := make(map[string]bool, len(f.MasterRates))
	for i, r := range f.MasterRates {
		if r.Level == "" {
			return nil, fmt.Errorf("master_rates[%d]: level is required", i)
		}
		if seen[r.Level] {
			return nil, fmt.Errorf("master_rates[%d]: duplicate level %q", i, r.Level)
		}
		seen[r.Level] = true
		d.MasterRates = append(d.MasterRates, rate.Bundle{
			Level:             r.Level,
			Position:          r.Position,
			Rent:              r.Rent,
			MonthlyAssist:     r.MonthlyAssist,
			SouvenirAllowance: r.SouvenirAllowance,
			Travel:            r.Travel,
			Local:             r.Local,
			PerDiem:           r.PerDiem,
			Hotel:             r.Hotel,
		})
	}

	for _, item := range f.SpecialAssistItems {
		d.SpecialAssistItems = append(d.SpecialAssistItems, ledger.SpecialAssistItem{
			Item:         item.Item,
			TimesPerYear: item.TimesPerYear,
			Days:         item.Days,
			People:       item.People,
			Rate:         item.Rate,
		})
	}

	for i, item := range f.BudgetItems {
		d.BudgetItems = append(d.BudgetItems, budgetitem.Item{
			Type:        item.Type,
			Code:        item.Code,
			AccountCode: item.AccountCode,
			Name:        item.Name,
			Position:    i,
		})
	}

	return d, nil
}

// SpecialAssistLedger returns a fresh default ledger for the year.
func (d *Defaults) SpecialAssistLedger(yearBE int) ledger.SpecialAssistLedger {
	items := make([]ledger.SpecialAssistItem, len(d.SpecialAssistItems))
	copy(items, d.SpecialAssistItems)
	return ledger.SpecialAssistLedger{Year: yearBE, Items: items}
}

// OvertimeLedger returns a fresh default overtime ledger for the year: the
// default salary and one blank item.
func (d *Defaults) OvertimeLedger(yearBE int) ledger.OvertimeLedger {
	return ledger.OvertimeLedger{
		Year:   yearBE,
		Salary: d.OvertimeSalary,
		Items:  []ledger.OvertimeItem{{}},
	}
}
