package taxing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
)

var (
	ErrInvalidIncidenceType  = errors.New("tipo de incidência inválido")
	ErrInvalidYear           = errors.New("ano inválido")
	ErrInvalidBase           = errors.New("base de cálculo inválida")
	ErrTaxParametersNotFound = errors.New("parâmetros anuais do IR não encontrados")
	ErrFetchBrackets         = errors.New("erro ao buscar faixas do IR")
	ErrFetchParameters       = errors.New("erro ao buscar parâmetros do IR")
)

// TaxError é um erro com contexto adicional para o cálculo do IR
type TaxError struct {
	Kind    domain.ErrorKind
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *TaxError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TaxError) Unwrap() error {
	return e.Err
}

func NewTaxError(kind domain.ErrorKind, err error, code string, details string) *TaxError {
	return &TaxError{
		Kind:    kind,
		Err:     err,
		Code:    code,
		Details: details,
	}
}
