package consolidating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
)

var (
	// Erros de validação
	ErrInvalidOrigin = errors.New("origem inválida")
	ErrInvalidYear   = errors.New("ano inválido")

	// Erros de consulta
	ErrPersonNotFound   = errors.New("pessoa não encontrada")
	ErrDocumentNotFound = errors.New("documento não encontrado")
	ErrNoEntriesFound   = errors.New("nenhum lançamento encontrado para os filtros informados")

	// Erros de banco de dados
	ErrFetchPerson    = errors.New("erro ao buscar pessoa")
	ErrFetchEntries   = errors.New("erro ao ler lançamentos")
	ErrFetchRubricas  = errors.New("erro ao buscar catálogo de rubricas")
	ErrFetchDocuments = errors.New("erro ao buscar documentos")
)

// ConsolidationError é um erro com contexto adicional para a consolidação
type ConsolidationError struct {
	Kind    domain.ErrorKind
	Err     error  // Erro base
	Code    string // Código de erro para API
	Cpf     string // CPF envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *ConsolidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConsolidationError) Unwrap() error {
	return e.Err
}

func NewConsolidationError(kind domain.ErrorKind, err error, code, cpf, details string) *ConsolidationError {
	return &ConsolidationError{
		Kind:    kind,
		Err:     err,
		Code:    code,
		Cpf:     cpf,
		Details: details,
	}
}

// KindOf retorna a classificação do erro, ou KindInternal quando não é um ConsolidationError
func KindOf(err error) domain.ErrorKind {
	var consErr *ConsolidationError
	if errors.As(err, &consErr) {
		return consErr.Kind
	}
	return domain.KindInternal
}
