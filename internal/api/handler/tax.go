package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
	"github.com/vfg2006/payroll-consolidation-api/internal/usecases/taxing"
	"github.com/vfg2006/payroll-consolidation-api/pkg/apiErrors"
	"github.com/vfg2006/payroll-consolidation-api/pkg/log"
	"github.com/vfg2006/payroll-consolidation-api/pkg/utils"
)

// GetTaxCalculation calcula o IR devido para base, ano e tipo de incidência
func GetTaxCalculation(service taxing.TaxCalculator, defaultIncidence domain.IncidenceType) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		rawBase := query.Get("base")
		if rawBase == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Base de cálculo não informada", nil)
			return
		}

		base, err := taxing.ParseBase(rawBase)
		if err != nil {
			writeUseCaseError(w, logger, err)
			return
		}

		year, ok := parseYear(w, query.Get("ano"))
		if !ok {
			return
		}

		incidenceType := incidenceFromQuery(query.Get("tipo"), defaultIncidence)

		result, err := service.ComputeTaxDetailed(r.Context(), base, year, incidenceType)
		if err != nil {
			writeUseCaseError(w, logger, err)
			return
		}

		writeJSON(w, logger, result)
	})
}

// GetAnnualParameters retorna os parâmetros anuais do IR
func GetAnnualParameters(service taxing.TaxCalculator, defaultIncidence domain.IncidenceType) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, ok := parseYear(w, httprouter.ParamsFromContext(r.Context()).ByName("ano"))
		if !ok {
			return
		}

		incidenceType := incidenceFromQuery(r.URL.Query().Get("tipo"), defaultIncidence)

		params, err := service.GetAnnualParameters(r.Context(), year, incidenceType)
		if err != nil {
			writeUseCaseError(w, logger, err)
			return
		}

		writeJSON(w, logger, params)
	})
}

func parseYear(w http.ResponseWriter, raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if !utils.IsValidYear(raw) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidYear, "Ano inválido. Use formato de quatro dígitos (ex: 2024)", nil)
		return 0, false
	}

	year, _ := strconv.Atoi(raw)
	return year, true
}

func incidenceFromQuery(raw string, fallback domain.IncidenceType) domain.IncidenceType {
	if raw = strings.TrimSpace(raw); raw == "" {
		return fallback
	}
	return domain.IncidenceType(strings.ToUpper(raw))
}
