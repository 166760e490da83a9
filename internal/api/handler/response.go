package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
	"github.com/vfg2006/payroll-consolidation-api/internal/usecases/consolidating"
	"github.com/vfg2006/payroll-consolidation-api/internal/usecases/taxing"
	"github.com/vfg2006/payroll-consolidation-api/pkg/apiErrors"
	"github.com/vfg2006/payroll-consolidation-api/pkg/log"
)

// Chaves de mapa ordenadas para que respostas iguais tenham os mesmos bytes
var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("erro ao codificar resposta")
	}
}

// writeUseCaseError traduz o erro classificado do caso de uso para a resposta HTTP.
// Erros internos não expõem a mensagem original.
func writeUseCaseError(w http.ResponseWriter, logger log.Logger, err error) {
	var (
		kind    = domain.KindInternal
		code    = apiErrors.ErrInternalServer
		message string
		details string
	)

	var consErr *consolidating.ConsolidationError
	var taxErr *taxing.TaxError
	switch {
	case errors.As(err, &consErr):
		kind, code, message, details = consErr.Kind, consErr.Code, consErr.Err.Error(), consErr.Details
	case errors.As(err, &taxErr):
		kind, code, message, details = taxErr.Kind, taxErr.Code, taxErr.Err.Error(), taxErr.Details
	}

	switch kind {
	case domain.KindInvalidInput, domain.KindNotFound, domain.KindNoMatchingData:
		logger.WithField("kind", kind.String()).Info(err.Error())
		var payload any
		if details != "" {
			payload = details
		}
		apiErrors.WriteError(w, code, message, payload)
	default:
		if errors.Is(err, context.Canceled) {
			logger.Info("requisição cancelada pelo cliente")
			return
		}
		logger.WithError(err).Error("erro interno")
		if code == "" {
			code = apiErrors.ErrInternalServer
		}
		apiErrors.WriteError(w, code, "Erro interno no servidor", nil)
	}
}
