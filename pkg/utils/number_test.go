package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"250.00", "250.00"},
		{"10.005", "10.01"},
		{"10.004999", "10.00"},
		{"0.125", "0.13"},
		{"896.0049", "896.00"},
		{"1", "1.00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := RoundHalfUp(decimal.RequireFromString(tt.input))
			assert.Equal(t, tt.expected, got.StringFixed(2))
		})
	}
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"5000.00", "5000"},
		{"5000,00", "5000"},
		{"1.234,56", "1234.56"},
		{" 0.1 ", "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMoney(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "got %s", got)
		})
	}

	_, err := ParseMoney("abc")
	assert.Error(t, err)
}
