package money_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rezonia/invoice-builder/internal/money"
)

func TestFromInt(t *testing.T) {
	d := money.FromInt(100)
	assert.True(t, d.Equal(dec.NewFromInt(100)))
}

func TestFromFloat(t *testing.T) {
	d := money.FromFloat(100.555)
	// Should round to 2 decimal places
	assert.True(t, d.Equal(dec.NewFromFloat(100.56)))
}

func TestMustFromString(t *testing.T) {
	d := money.MustFromString("999.99")
	assert.True(t, d.Equal(dec.RequireFromString("999.99")))

	assert.Panics(t, func() {
		money.MustFromString("invalid")
	})
}

func TestParseLoose(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain number", "42.5", "42.5"},
		{"whitespace", "  7 ", "7"},
		{"empty", "", "0"},
		{"garbage coerces to zero", "abc", "0"},
		{"trailing junk coerces to zero", "12x", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := money.ParseLoose(tt.input)
			assert.True(t, d.Equal(dec.RequireFromString(tt.expected)),
				"ParseLoose(%q) = %s, want %s", tt.input, d, tt.expected)
		})
	}
}

func TestMul(t *testing.T) {
	a := dec.NewFromInt(100)
	b := dec.NewFromFloat(0.15)
	result := money.Mul(a, b)
	assert.True(t, result.Equal(dec.NewFromInt(15)))

	// Rounds to cents
	result = money.Mul(dec.RequireFromString("3.333"), dec.NewFromInt(3))
	assert.True(t, result.Equal(dec.RequireFromString("10.00")))
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		rate     int64
		expected string
	}{
		{"10% of 100", 100, 10, "10"},
		{"5% of 200", 200, 5, "10"},
		{"0% of 100", 100, 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := money.Percentage(dec.NewFromInt(tt.amount), dec.NewFromInt(tt.rate))
			assert.True(t, result.Equal(dec.RequireFromString(tt.expected)),
				"got %s, want %s", result, tt.expected)
		})
	}
}

func TestSum(t *testing.T) {
	values := []dec.Decimal{
		dec.NewFromInt(100),
		dec.RequireFromString("0.50"),
		dec.NewFromInt(-1),
	}
	assert.True(t, money.Sum(values).Equal(dec.RequireFromString("99.50")))
	assert.True(t, money.Sum(nil).IsZero())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "10.00", money.Format(dec.NewFromInt(10)))
	assert.Equal(t, "10.50", money.Format(dec.RequireFromString("10.5")))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "3", money.FormatQuantity(dec.NewFromInt(3)))
	assert.Equal(t, "2.5", money.FormatQuantity(dec.RequireFromString("2.5")))
}
