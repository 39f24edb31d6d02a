package defaults

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 15000.0, d.OvertimeSalary)
	require.NotEmpty(t, d.MasterRates)
	assert.Equal(t, "7", d.MasterRates[0].Level)
	assert.NotEmpty(t, d.SpecialAssistItems)
	require.NotEmpty(t, d.BudgetItems)
	assert.True(t, d.BudgetItems[0].IsHeader())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
overtime_salary: 18000
master_rates:
  - level: "3"
    position: staff
    hotel: 900
`), 0o600))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 18000.0, d.OvertimeSalary)
	require.Len(t, d.MasterRates, 1)
	assert.Equal(t, 900.0, d.MasterRates[0].Hotel)
	assert.Empty(t, d.SpecialAssistItems)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("master_rates:\n  - position: no level\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("master_rates:\n  - level: \"5\"\n  - level: \"5\"\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("master_rates: [unterminated"))
	assert.Error(t, err)
}

func TestLedgerDefaults_AreFreshCopies(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)

	a := d.SpecialAssistLedger(2568)
	a.Items[0].Rate = 1
	b := d.SpecialAssistLedger(2568)
	assert.NotEqual(t, 1.0, b.Items[0].Rate)
	assert.Equal(t, 2568, b.Year)

	ot := d.OvertimeLedger(2569)
	assert.Equal(t, 15000.0, ot.Salary)
	assert.Len(t, ot.Items, 1)
	assert.Nil(t, ot.Items[0].HourlyRate)
}
