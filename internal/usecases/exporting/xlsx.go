// Package exporting gera planilhas a partir da matriz consolidada
package exporting

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
	"github.com/vfg2006/payroll-consolidation-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Consolidado"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// linhas de cabeçalho antes da primeira rubrica
	headerRows = 3
)

// BuildWorkbook monta uma planilha com uma linha por rubrica e uma coluna por YYYY-MM.
// Valores são gravados como texto com duas casas para não passar por ponto flutuante.
func BuildWorkbook(response *domain.ConsolidatedResponse) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar planilha: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("erro ao remover planilha padrão: %w", err)
	}

	references := response.ColumnReferences()
	totalColumn := len(references) + 3

	if err := f.SetCellValue(SheetName, "A1", fmt.Sprintf("%s - %s", response.Name, response.Cpf)); err != nil {
		return nil, err
	}

	header := make([]any, 0, totalColumn)
	header = append(header, "Código", "Descrição")
	for _, reference := range references {
		header = append(header, reference)
	}
	header = append(header, "Total")
	if err := f.SetSheetRow(SheetName, "A3", &header); err != nil {
		return nil, fmt.Errorf("erro ao escrever cabeçalho: %w", err)
	}

	for i, row := range response.Rows {
		line := make([]any, 0, totalColumn)
		line = append(line, row.Code, row.Description)
		for _, reference := range references {
			// Célula sem lançamento fica vazia
			if value, ok := row.Values[reference]; ok {
				line = append(line, money(value))
			} else {
				line = append(line, "")
			}
		}
		line = append(line, money(row.Total))

		cell, err := excelize.CoordinatesToCellName(1, headerRows+i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &line); err != nil {
			return nil, fmt.Errorf("erro ao escrever rubrica %s: %w", row.Code, err)
		}
	}

	totals := make([]any, 0, totalColumn)
	totals = append(totals, "TOTAL", "")
	for _, reference := range references {
		totals = append(totals, money(response.MonthlyTotals[reference]))
	}
	totals = append(totals, money(response.GrandTotal))

	cell, err := excelize.CoordinatesToCellName(1, headerRows+len(response.Rows)+1)
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(SheetName, cell, &totals); err != nil {
		return nil, fmt.Errorf("erro ao escrever totais: %w", err)
	}

	lastColumn, err := excelize.ColumnNumberToName(totalColumn)
	if err != nil {
		return nil, err
	}
	_ = f.SetColWidth(SheetName, "A", "A", 10)
	_ = f.SetColWidth(SheetName, "B", "B", 40)
	_ = f.SetColWidth(SheetName, "C", lastColumn, 14)

	return f, nil
}

// WriteXLSX grava a planilha consolidada em w
func WriteXLSX(w io.Writer, response *domain.ConsolidatedResponse) error {
	f, err := BuildWorkbook(response)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

// FileName gera um nome único para o download
func FileName(response *domain.ConsolidatedResponse) string {
	suffix, err := utils.GenerateID()
	if err != nil {
		suffix = "export"
	}
	if len(response.Years) == 0 {
		return fmt.Sprintf("consolidado_%s.xlsx", suffix)
	}
	first, last := response.Years[0], response.Years[len(response.Years)-1]
	return fmt.Sprintf("consolidado_%d-%d_%s.xlsx", first, last, suffix)
}

// money formata com duas casas sem perder precisão de valores com mais casas,
// para que as células somem exatamente o total exportado.
func money(value decimal.Decimal) string {
	if value.Exponent() >= -2 {
		return value.StringFixed(2)
	}
	return value.String()
}
