package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "$0"},
		{5, "$5"},
		{999, "$999"},
		{1000, "$1,000"},
		{98765, "$98,765"},
		{1234567, "$1,234,567"},
		{-56, "-$56"},
		{-1234567, "-$1,234,567"},
		{1649.6, "$1,650"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromDecimal(decimal.NewFromFloat(tt.value)).Format(), "value %v", tt.value)
	}
}

func TestFormatSignedDelta(t *testing.T) {
	assert.Equal(t, "+$0", FormatSignedDelta(decimal.Zero))
	assert.Equal(t, "+$12,500", FormatSignedDelta(decimal.NewFromInt(12500)))
	assert.Equal(t, "-$6,000", FormatSignedDelta(decimal.NewFromInt(-6000)))
}
