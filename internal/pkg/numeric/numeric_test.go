package numeric

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  float64
	}{
		{"nil", nil, 0},
		{"float", 12.5, 12.5},
		{"int", 7, 7},
		{"numeric string", "1500.25", 1500.25},
		{"padded string", "  42 ", 42},
		{"exponent", "1.5e3", 1500},
		{"empty string", "", 0},
		{"garbage", "abc", 0},
		{"decimal", decimal.RequireFromString("99.99"), 99.99},
		{"unsupported type", true, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Parse(c.input))
		})
	}
}

func TestFloat_UnmarshalJSON(t *testing.T) {
	var payload struct {
		A Float  `json:"a"`
		B Float  `json:"b"`
		C Float  `json:"c"`
		D Float  `json:"d"`
		E *Float `json:"e"`
		F *Float `json:"f"`
	}
	err := json.Unmarshal([]byte(`{"a":100,"b":"250.5","c":"oops","d":null,"e":null,"f":"0"}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, Float(100), payload.A)
	assert.Equal(t, Float(250.5), payload.B)
	assert.Equal(t, Float(0), payload.C)
	assert.Equal(t, Float(0), payload.D)
	assert.Nil(t, payload.E)
	require.NotNil(t, payload.F)
	assert.Equal(t, Float(0), *payload.F)
}

func TestInt_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Year Int `json:"year"`
		Days Int `json:"days"`
	}
	err := json.Unmarshal([]byte(`{"year":"2545","days":3.9}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, Int(2545), payload.Year)
	assert.Equal(t, Int(3), payload.Days)
}

func TestFloatPtr(t *testing.T) {
	assert.Nil(t, FloatPtr(nil))

	f := Float(12)
	got := FloatPtr(&f)
	require.NotNil(t, got)
	assert.Equal(t, 12.0, *got)
}
