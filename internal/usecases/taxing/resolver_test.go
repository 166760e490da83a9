package taxing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// Tabela mensal vigente a partir de fevereiro de 2024
func monthlyTable2024() []domain.IrTaxBracket {
	return []domain.IrTaxBracket{
		{Ordinal: 1, LowerBound: dec("0"), UpperBound: decPtr("2259.20"), Rate: dec("0"), Deduction: dec("0")},
		{Ordinal: 2, LowerBound: dec("2259.21"), UpperBound: decPtr("2826.65"), Rate: dec("0.075"), Deduction: dec("169.44")},
		{Ordinal: 3, LowerBound: dec("2826.66"), UpperBound: decPtr("3751.05"), Rate: dec("0.15"), Deduction: dec("381.44")},
		{Ordinal: 4, LowerBound: dec("3751.06"), UpperBound: decPtr("4664.68"), Rate: dec("0.225"), Deduction: dec("662.77")},
		{Ordinal: 5, LowerBound: dec("4664.69"), UpperBound: nil, Rate: dec("0.275"), Deduction: dec("896.00")},
	}
}

func TestComputeTax(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		brackets []domain.IrTaxBracket
		expected string
	}{
		{
			name: "base na faixa de 15% com dedução de 500",
			base: "5000.00",
			brackets: []domain.IrTaxBracket{
				{Ordinal: 1, LowerBound: dec("0"), UpperBound: decPtr("4000.00"), Rate: dec("0"), Deduction: dec("0")},
				{Ordinal: 2, LowerBound: dec("4000.01"), UpperBound: nil, Rate: dec("0.15"), Deduction: dec("500.00")},
			},
			expected: "250.00",
		},
		{name: "base zero não consulta faixas", base: "0", brackets: nil, expected: "0.00"},
		{name: "base negativa", base: "-10.00", brackets: monthlyTable2024(), expected: "0.00"},
		{name: "faixa isenta", base: "2000.00", brackets: monthlyTable2024(), expected: "0.00"},
		{name: "limite superior inclusivo da faixa isenta", base: "2259.20", brackets: monthlyTable2024(), expected: "0.00"},
		{name: "limite inferior inclusivo da segunda faixa", base: "2259.21", brackets: monthlyTable2024(), expected: "0.00"},
		{name: "segunda faixa", base: "2500.00", brackets: monthlyTable2024(), expected: "18.06"},
		{name: "terceira faixa", base: "3000.00", brackets: monthlyTable2024(), expected: "68.56"},
		{name: "quarta faixa", base: "4000.00", brackets: monthlyTable2024(), expected: "237.23"},
		{name: "última faixa sem teto", base: "10000.00", brackets: monthlyTable2024(), expected: "1854.00"},
		{name: "arredondamento metade para cima no final", base: "2333.34", brackets: monthlyTable2024(), expected: "5.56"},
		{name: "tabela vazia", base: "5000.00", brackets: []domain.IrTaxBracket{}, expected: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTax(dec(tt.base), tt.brackets)
			assert.Equal(t, tt.expected, got.StringFixed(2))
		})
	}
}

func TestResolve_FallbackToLastBracketOnGap(t *testing.T) {
	brackets := []domain.IrTaxBracket{
		{Ordinal: 1, LowerBound: dec("0"), UpperBound: decPtr("1000.00"), Rate: dec("0"), Deduction: dec("0")},
		{Ordinal: 2, LowerBound: dec("2000.00"), UpperBound: decPtr("3000.00"), Rate: dec("0.10"), Deduction: dec("100.00")},
	}

	// 1500 cai na lacuna e 5000 excede o teto da última faixa
	for _, base := range []string{"1500.00", "5000.00"} {
		resolution := Resolve(dec(base), brackets)
		require.NotNil(t, resolution.Bracket)
		assert.True(t, resolution.Fallback)
		assert.Equal(t, 2, resolution.Bracket.Ordinal)
	}

	assert.Equal(t, "50.00", ComputeTax(dec("1500.00"), brackets).StringFixed(2))
	assert.Equal(t, "400.00", ComputeTax(dec("5000.00"), brackets).StringFixed(2))
}

func TestResolve_NegativeResultIsClamped(t *testing.T) {
	brackets := []domain.IrTaxBracket{
		{Ordinal: 1, LowerBound: dec("0"), UpperBound: nil, Rate: dec("0.10"), Deduction: dec("1000.00")},
	}

	resolution := Resolve(dec("500.00"), brackets)
	assert.True(t, resolution.Amount.IsZero())
	assert.False(t, resolution.Fallback)
}

func TestResolve_RoundsOnlyOnce(t *testing.T) {
	// 0.01 × 0.5 − 0.001 = 0.004; arredondar o produto antes da subtração daria 0.01
	brackets := []domain.IrTaxBracket{
		{Ordinal: 1, LowerBound: dec("0"), UpperBound: nil, Rate: dec("0.5"), Deduction: dec("0.001")},
	}
	assert.Equal(t, "0.00", ComputeTax(dec("0.01"), brackets).StringFixed(2))
}

func TestComputeTax_DefinedForEveryNonNegativeBase(t *testing.T) {
	brackets := monthlyTable2024()
	previous := decimal.Zero

	for cents := int64(0); cents <= 1_000_000; cents += 737 {
		base := decimal.New(cents, -2)
		amount := ComputeTax(base, brackets)

		assert.False(t, amount.IsNegative(), "base %s", base)
		// Tabela progressiva correta nunca reduz o imposto quando a base cresce
		assert.True(t, amount.GreaterThanOrEqual(previous), "base %s: %s < %s", base, amount, previous)
		previous = amount
	}
}

func TestEffectiveRate(t *testing.T) {
	assert.Equal(t, "0.0500", EffectiveRate(dec("250.00"), dec("5000.00")).StringFixed(4))
	assert.True(t, EffectiveRate(dec("10"), decimal.Zero).IsZero())
}
