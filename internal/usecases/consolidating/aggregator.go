package consolidating

import (
	"context"
	"iter"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
	"github.com/vfg2006/payroll-consolidation-api/pkg/utils"
)

// Criteria são os filtros já validados aplicados a cada lançamento.
// Year nil e Origin vazia significam ausência de filtro.
type Criteria struct {
	Year   *int
	Origin domain.Origin
}

// Matches indica se a referência normalizada e a origem passam pelos filtros
func (c Criteria) Matches(reference string, origin domain.Origin) bool {
	if c.Origin != "" && origin != c.Origin {
		return false
	}

	if c.Year == nil {
		return true
	}

	year, err := utils.ExtractYear(reference)
	return err == nil && year == *c.Year
}

type snapshot struct {
	reference   string
	description string
}

// Accumulation é o resultado do fold dos lançamentos: células por rubrica e referência
type Accumulation struct {
	cells     map[string]map[string]decimal.Decimal
	snapshots map[string]snapshot
	accepted  int
	skipped   int
}

func newAccumulation() *Accumulation {
	return &Accumulation{
		cells:     make(map[string]map[string]decimal.Decimal),
		snapshots: make(map[string]snapshot),
	}
}

// Aggregate consome a sequência de lançamentos em uma única passada.
// Só o acumulador é retido; os lançamentos não são armazenados.
func Aggregate(ctx context.Context, entries iter.Seq2[domain.PayrollEntry, error], criteria Criteria) (*Accumulation, error) {
	acc := newAccumulation()

	for entry, err := range entries {
		if err != nil {
			return nil, err
		}

		// Parar a iteração aqui libera o cursor do repositório
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		acc.add(entry, criteria)
	}

	return acc, nil
}

func (a *Accumulation) add(entry domain.PayrollEntry, criteria Criteria) {
	reference, ok := utils.NormalizeReference(entry.Reference)
	if !ok || !criteria.Matches(reference, entry.Origin) {
		a.skipped++
		return
	}

	row, exists := a.cells[entry.RubricaCode]
	if !exists {
		row = make(map[string]decimal.Decimal)
		a.cells[entry.RubricaCode] = row
	}
	row[reference] = row[reference].Add(entry.Value)
	a.accepted++

	a.keepSnapshot(entry.RubricaCode, reference, entry.RubricaDescription)
}

// keepSnapshot guarda a descrição do lançamento mais recente da rubrica.
// Empate na referência fica com a menor descrição para não depender da ordem de chegada.
func (a *Accumulation) keepSnapshot(code, reference, description string) {
	if description == "" {
		return
	}

	current, exists := a.snapshots[code]
	if !exists ||
		reference > current.reference ||
		(reference == current.reference && description < current.description) {
		a.snapshots[code] = snapshot{reference: reference, description: description}
	}
}

// Accepted é a quantidade de lançamentos que passaram pelos filtros
func (a *Accumulation) Accepted() int {
	return a.accepted
}

// Skipped é a quantidade de lançamentos descartados por filtro ou referência inválida
func (a *Accumulation) Skipped() int {
	return a.skipped
}

// Rows converte o acumulador em linhas ordenadas pelo código da rubrica.
// A descrição vem do catálogo, depois do lançamento e por último do próprio código.
func (a *Accumulation) Rows(catalog map[string]domain.Rubrica) []domain.ConsolidationRow {
	rows := make([]domain.ConsolidationRow, 0, len(a.cells))

	for code, cells := range a.cells {
		row := domain.ConsolidationRow{
			Code:        code,
			Description: code,
			Values:      make(map[string]decimal.Decimal, len(cells)),
			Total:       decimal.Zero,
		}

		if snap, ok := a.snapshots[code]; ok {
			row.Description = snap.description
		}

		if rubrica, ok := catalog[code]; ok {
			if rubrica.Description != "" {
				row.Description = rubrica.Description
			}
			row.Category = rubrica.Category
		}

		for reference, value := range cells {
			row.Values[reference] = value
			row.Total = row.Total.Add(value)
		}

		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Code < rows[j].Code
	})

	return rows
}
