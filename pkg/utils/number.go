package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RoundHalfUp arredonda para duas casas decimais com metade para cima.
// Para valores negativos o arredondamento é para longe do zero.
func RoundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ParseMoney converte um valor monetário informado pelo usuário.
// Aceita "1234.56", "1234,56" e "1.234,56".
func ParseMoney(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}
