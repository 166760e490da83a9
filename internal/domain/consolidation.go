package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Months é a lista fixa de meses exibida nas colunas do relatório consolidado
var Months = []string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12"}

// ConsolidationFilter são os filtros opcionais aceitos pela consolidação.
// Campos vazios significam ausência de filtro.
type ConsolidationFilter struct {
	Year                    string `json:"ano,omitempty"`
	Origin                  string `json:"origem,omitempty"`
	IncludeInactiveRubricas bool   `json:"inativas,omitempty"`
}

// ConsolidationRow é uma linha da matriz: uma rubrica e seus valores por referência (YYYY-MM)
type ConsolidationRow struct {
	Code        string                     `json:"codigo"`
	Description string                     `json:"descricao"`
	Category    string                     `json:"categoria,omitempty"`
	Values      map[string]decimal.Decimal `json:"valores"`
	Total       decimal.Decimal            `json:"total"`
}

// References retorna as referências da linha em ordem cronológica
func (r ConsolidationRow) References() []string {
	refs := make([]string, 0, len(r.Values))
	for ref := range r.Values {
		refs = append(refs, ref)
	}
	// YYYY-MM ordena lexicograficamente na mesma ordem que cronologicamente
	sort.Strings(refs)
	return refs
}

// ConsolidatedResponse é a matriz consolidada de um contribuinte
type ConsolidatedResponse struct {
	Cpf           string                     `json:"cpf"`
	Name          string                     `json:"nome"`
	Years         []int                      `json:"anos"`
	Months        []string                   `json:"meses"`
	Rows          []ConsolidationRow         `json:"rubricas"`
	MonthlyTotals map[string]decimal.Decimal `json:"totaisMensais"`
	GrandTotal    decimal.Decimal            `json:"totalGeral"`
}

// ColumnReferences retorna as chaves de totaisMensais em ordem cronológica
func (r ConsolidatedResponse) ColumnReferences() []string {
	refs := make([]string, 0, len(r.MonthlyTotals))
	for ref := range r.MonthlyTotals {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}
