package taxing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
)

// contiguityStep é a menor diferença entre o teto de uma faixa e o piso da seguinte
var contiguityStep = decimal.New(1, -2)

// AuditBrackets verifica se a tabela está ordenada, sem lacunas nem sobreposições,
// e se apenas a última faixa não tem teto
func AuditBrackets(brackets []domain.IrTaxBracket) []domain.BracketIssue {
	if len(brackets) == 0 {
		return []domain.BracketIssue{{
			Type:    domain.BracketIssueEmpty,
			Details: "nenhuma faixa configurada",
		}}
	}

	issues := make([]domain.BracketIssue, 0)
	last := len(brackets) - 1

	for i, bracket := range brackets {
		if bracket.Rate.IsNegative() {
			issues = append(issues, domain.BracketIssue{
				Type:    domain.BracketIssueNegativeRate,
				Ordinal: bracket.Ordinal,
				Details: fmt.Sprintf("alíquota negativa %s", bracket.Rate),
			})
		}

		if i == 0 {
			continue
		}

		previous := brackets[i-1]
		if bracket.LowerBound.LessThan(previous.LowerBound) {
			issues = append(issues, domain.BracketIssue{
				Type:    domain.BracketIssueUnordered,
				Ordinal: bracket.Ordinal,
				Details: fmt.Sprintf("limite inferior %s menor que o da faixa anterior %s", bracket.LowerBound, previous.LowerBound),
			})
			continue
		}

		if previous.UpperBound == nil {
			issues = append(issues, domain.BracketIssue{
				Type:    domain.BracketIssueOpenInMiddle,
				Ordinal: previous.Ordinal,
				Details: "faixa sem teto antes da última faixa",
			})
			continue
		}

		expectedLower := previous.UpperBound.Add(contiguityStep)
		switch {
		case bracket.LowerBound.LessThanOrEqual(*previous.UpperBound):
			issues = append(issues, domain.BracketIssue{
				Type:    domain.BracketIssueOverlap,
				Ordinal: bracket.Ordinal,
				Details: fmt.Sprintf("limite inferior %s sobrepõe o teto anterior %s", bracket.LowerBound, previous.UpperBound),
			})
		case bracket.LowerBound.GreaterThan(expectedLower):
			issues = append(issues, domain.BracketIssue{
				Type:    domain.BracketIssueGap,
				Ordinal: bracket.Ordinal,
				Details: fmt.Sprintf("lacuna entre %s e %s", previous.UpperBound, bracket.LowerBound),
			})
		}
	}

	if brackets[last].UpperBound != nil {
		issues = append(issues, domain.BracketIssue{
			Type:    domain.BracketIssueLastBounded,
			Ordinal: brackets[last].Ordinal,
			Details: fmt.Sprintf("última faixa tem teto %s", brackets[last].UpperBound),
		})
	}

	return issues
}
