package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
	"github.com/vfg2006/payroll-consolidation-api/internal/usecases/consolidating"
	"github.com/vfg2006/payroll-consolidation-api/internal/usecases/exporting"
	"github.com/vfg2006/payroll-consolidation-api/pkg/apiErrors"
	"github.com/vfg2006/payroll-consolidation-api/pkg/log"
)

// GetConsolidation retorna a matriz rubrica × mês do contribuinte
func GetConsolidation(service consolidating.Consolidator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cpf, filter, ok := parseConsolidationRequest(w, r)
		if !ok {
			return
		}

		response, err := service.Consolidate(r.Context(), cpf, log.GetTenantID(r.Context()), filter)
		if err != nil {
			writeUseCaseError(w, logger, err)
			return
		}

		writeJSON(w, logger, response)
	})
}

// ExportConsolidationXLSX devolve a mesma matriz como planilha
func ExportConsolidationXLSX(service consolidating.Consolidator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cpf, filter, ok := parseConsolidationRequest(w, r)
		if !ok {
			return
		}

		response, err := service.Consolidate(r.Context(), cpf, log.GetTenantID(r.Context()), filter)
		if err != nil {
			writeUseCaseError(w, logger, err)
			return
		}

		workbook, err := exporting.BuildWorkbook(response)
		if err != nil {
			logger.WithError(err).Error("consolidation-xlsx: erro ao montar planilha")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha", nil)
			return
		}
		defer workbook.Close()

		w.Header().Set("Content-Type", exporting.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exporting.FileName(response)))

		if err := workbook.Write(w); err != nil {
			logger.WithError(err).Error("consolidation-xlsx: erro ao escrever planilha")
		}
	})
}

func parseConsolidationRequest(w http.ResponseWriter, r *http.Request) (string, domain.ConsolidationFilter, bool) {
	var filter domain.ConsolidationFilter

	cpf := strings.TrimSpace(httprouter.ParamsFromContext(r.Context()).ByName("cpf"))
	if cpf == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "CPF não informado", nil)
		return "", filter, false
	}

	query := r.URL.Query()
	filter.Year = query.Get("ano")
	filter.Origin = query.Get("origem")

	if raw := query.Get("inativas"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro inativas deve ser true ou false", nil)
			return "", filter, false
		}
		filter.IncludeInactiveRubricas = includeInactive
	}

	log.ForContext(r.Context()).WithFields(log.Fields{
		"cpf":    cpf,
		"ano":    filter.Year,
		"origem": filter.Origin,
	}).Info("consolidation: requisição recebida")

	return cpf, filter, true
}
