package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro expostos pela API
const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest       = "VAL_001" // Requisição inválida
	ErrMissingRequiredData  = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat        = "VAL_003" // Formato de dados inválido
	ErrInvalidOrigin        = "VAL_004" // Origem fora do conjunto aceito
	ErrInvalidYear          = "VAL_005" // Ano fora do formato YYYY
	ErrInvalidIncidenceType = "VAL_006" // Tipo de incidência desconhecido
	ErrInvalidBase          = "VAL_007" // Base de cálculo inválida

	// Erros de consolidação
	ErrPersonNotFound   = "CONS_001" // Pessoa não encontrada para o tenant
	ErrDocumentNotFound = "CONS_002" // Documento da pessoa não encontrado
	ErrNoEntriesFound   = "CONS_003" // Nenhum lançamento após os filtros

	// Erros de imposto de renda
	ErrTaxParametersNotFound = "IR_001" // Parâmetros anuais inexistentes

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrRouteNotFound     = "SRV_003" // Rota inexistente
	ErrMethodNotAllowed  = "SRV_004" // Método não suportado pela rota
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidOrigin:         http.StatusBadRequest,
	ErrInvalidYear:           http.StatusBadRequest,
	ErrInvalidIncidenceType:  http.StatusBadRequest,
	ErrInvalidBase:           http.StatusBadRequest,
	ErrPersonNotFound:        http.StatusNotFound,
	ErrDocumentNotFound:      http.StatusNotFound,
	ErrNoEntriesFound:        http.StatusNotFound,
	ErrTaxParametersNotFound: http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
