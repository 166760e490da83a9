package taxing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
	"github.com/vfg2006/payroll-consolidation-api/pkg/log"
	"github.com/vfg2006/payroll-consolidation-api/pkg/utils"
)

// Resolution é o resultado da aplicação da tabela progressiva sobre uma base
type Resolution struct {
	Amount   decimal.Decimal
	Bracket  *domain.IrTaxBracket
	Fallback bool
}

// ComputeTax calcula o imposto devido sobre a base. As faixas devem vir
// ordenadas pelo limite inferior.
func ComputeTax(base decimal.Decimal, brackets []domain.IrTaxBracket) decimal.Decimal {
	return Resolve(base, brackets).Amount
}

// Resolve seleciona a primeira faixa que contém a base e aplica
// base × alíquota − parcela a deduzir, arredondado uma única vez ao final.
// Quando nenhuma faixa contém a base, a última faixa da lista é aplicada.
func Resolve(base decimal.Decimal, brackets []domain.IrTaxBracket) Resolution {
	if !base.IsPositive() {
		return Resolution{Amount: decimal.Zero}
	}

	if len(brackets) == 0 {
		log.L.WithField("base", base.String()).Warn("ir-resolver: nenhuma faixa configurada, imposto considerado zero")
		return Resolution{Amount: decimal.Zero}
	}

	bracket, fallback := selectBracket(base, brackets)
	if fallback {
		log.L.WithFields(log.Fields{
			"base":  base.String(),
			"faixa": bracket.Ordinal,
		}).Warn("ir-resolver: base fora das faixas configuradas, aplicando a última faixa")
	}

	return Resolution{
		Amount:   applyBracket(base, bracket),
		Bracket:  &bracket,
		Fallback: fallback,
	}
}

func selectBracket(base decimal.Decimal, brackets []domain.IrTaxBracket) (domain.IrTaxBracket, bool) {
	for _, bracket := range brackets {
		if bracket.Contains(base) {
			return bracket, false
		}
	}
	return brackets[len(brackets)-1], true
}

func applyBracket(base decimal.Decimal, bracket domain.IrTaxBracket) decimal.Decimal {
	// Faixa com alíquota zero é isenção
	if bracket.Rate.IsZero() {
		return decimal.Zero
	}

	amount := utils.RoundHalfUp(base.Mul(bracket.Rate).Sub(bracket.Deduction))
	if amount.IsNegative() {
		return decimal.Zero
	}

	return amount
}

// EffectiveRate retorna imposto ÷ base com quatro casas decimais
func EffectiveRate(amount, base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}
	return amount.DivRound(base, 4)
}
