// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Origin identifica a fonte do contracheque de onde o lançamento foi extraído
type Origin string

const (
	OriginCaixa     Origin = "CAIXA"
	OriginFuncef    Origin = "FUNCEF"
	OriginIncomeTax Origin = "INCOME_TAX"
)

// FilterableOrigins são as origens aceitas como filtro na consolidação
var FilterableOrigins = []Origin{OriginCaixa, OriginFuncef}

// IsFilterable indica se a origem pode ser usada como filtro de consolidação
func (o Origin) IsFilterable() bool {
	for _, origin := range FilterableOrigins {
		if o == origin {
			return true
		}
	}
	return false
}

// PayrollEntry é um lançamento de rubrica extraído de um contracheque. Nunca é alterado.
type PayrollEntry struct {
	ID                 string          `json:"id"`
	DocumentID         string          `json:"document_id"`
	RubricaCode        string          `json:"rubrica_codigo"`
	RubricaDescription string          `json:"rubrica_descricao"`
	Reference          string          `json:"referencia"` // Formato YYYY-MM
	Value              decimal.Decimal `json:"valor"`
	Origin             Origin          `json:"origem"`
	PageNumber         int             `json:"pagina"`
	CreatedAt          time.Time       `json:"created_at"`
}

type PayrollDocument struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"tenant_id"`
	Cpf             string    `json:"cpf"`
	ReferenceMonths []string  `json:"meses_detectados"`
	Origin          Origin    `json:"origem"`
	CreatedAt       time.Time `json:"created_at"`
}

type Person struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Cpf         string    `json:"cpf"`
	Name        string    `json:"nome"`
	DocumentIDs []string  `json:"documentos"`
	CreatedAt   time.Time `json:"created_at"`
}

// Rubrica é um item do catálogo de rubricas (proventos e descontos)
type Rubrica struct {
	Code        string `json:"codigo"`
	Description string `json:"descricao"`
	Category    string `json:"categoria"`
	Active      bool   `json:"ativo"`
}
