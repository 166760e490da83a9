package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// IncidenceType é o regime de tributação aplicado sobre a base de cálculo
type IncidenceType string

const (
	IncidenceMonthly       IncidenceType = "MENSAL"
	IncidenceAnnual        IncidenceType = "ANUAL"
	IncidenceProfitSharing IncidenceType = "PLR"
)

var IncidenceTypes = []IncidenceType{IncidenceMonthly, IncidenceAnnual, IncidenceProfitSharing}

func (t IncidenceType) IsValid() bool {
	for _, incidence := range IncidenceTypes {
		if t == incidence {
			return true
		}
	}
	return false
}

// IrTaxBracket representa uma faixa da tabela progressiva do IR.
// UpperBound nulo significa faixa sem teto (a última da tabela).
type IrTaxBracket struct {
	ID            string           `json:"id"`
	Year          int              `json:"ano"`
	IncidenceType IncidenceType    `json:"tipo_incidencia"`
	Ordinal       int              `json:"faixa"`
	LowerBound    decimal.Decimal  `json:"limite_inferior"`
	UpperBound    *decimal.Decimal `json:"limite_superior"`
	Rate          decimal.Decimal  `json:"aliquota"`
	Deduction     decimal.Decimal  `json:"parcela_deduzir"`
	Description   string           `json:"descricao"`
}

// Contains indica se a base está dentro dos limites (inclusivos) da faixa
func (b IrTaxBracket) Contains(base decimal.Decimal) bool {
	if base.LessThan(b.LowerBound) {
		return false
	}
	return b.UpperBound == nil || base.LessThanOrEqual(*b.UpperBound)
}

func (b IrTaxBracket) String() string {
	upper := "∞"
	if b.UpperBound != nil {
		upper = b.UpperBound.StringFixed(2)
	}
	return fmt.Sprintf("faixa %d [%s, %s] aliquota=%s deducao=%s",
		b.Ordinal, b.LowerBound.StringFixed(2), upper, b.Rate.String(), b.Deduction.StringFixed(2))
}

// IrAnnualParameters são as constantes anuais usadas no cálculo do IR
type IrAnnualParameters struct {
	Year                  int             `json:"ano"`
	IncidenceType         IncidenceType   `json:"tipo_incidencia"`
	DependentDeduction    decimal.Decimal `json:"deducao_dependente"`
	EducationExpenseCap   decimal.Decimal `json:"limite_despesa_instrucao"`
	SimplifiedDiscountCap decimal.Decimal `json:"limite_desconto_simplificado"`
	Over65ExemptionAmount decimal.Decimal `json:"isencao_maior_65"`
}

// TaxResult detalha o cálculo do imposto para uma base
type TaxResult struct {
	Base          decimal.Decimal `json:"base"`
	Year          int             `json:"ano"`
	IncidenceType IncidenceType   `json:"tipo_incidencia"`
	Amount        decimal.Decimal `json:"imposto"`
	EffectiveRate decimal.Decimal `json:"aliquota_efetiva"`
	Bracket       *IrTaxBracket   `json:"faixa,omitempty"`
	FallbackUsed  bool            `json:"faixa_fallback"`
}

// BracketIssueType classifica problemas de qualidade de dados na tabela de faixas
type BracketIssueType string

const (
	BracketIssueEmpty        BracketIssueType = "EMPTY"
	BracketIssueUnordered    BracketIssueType = "UNORDERED"
	BracketIssueGap          BracketIssueType = "GAP"
	BracketIssueOverlap      BracketIssueType = "OVERLAP"
	BracketIssueLastBounded  BracketIssueType = "LAST_BOUNDED"
	BracketIssueOpenInMiddle BracketIssueType = "OPEN_IN_MIDDLE"
	BracketIssueNegativeRate BracketIssueType = "NEGATIVE_RATE"
)

type BracketIssue struct {
	Type    BracketIssueType `json:"tipo"`
	Ordinal int              `json:"faixa"`
	Details string           `json:"detalhes"`
}
