package handler

import (
	"net/http"

	"github.com/vfg2006/payroll-consolidation-api/internal/api/handler/router"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
	"github.com/vfg2006/payroll-consolidation-api/internal/usecases/consolidating"
	"github.com/vfg2006/payroll-consolidation-api/internal/usecases/taxing"
	"github.com/vfg2006/payroll-consolidation-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Consolidation(service consolidating.Consolidator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/pessoas/:cpf/consolidado",
			Method:      http.MethodGet,
			Handler:     GetConsolidation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/pessoas/:cpf/consolidado/xlsx",
			Method:      http.MethodGet,
			Handler:     ExportConsolidationXLSX(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Tax(service taxing.TaxCalculator, defaultIncidence domain.IncidenceType) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ir/calculo",
			Method:      http.MethodGet,
			Handler:     GetTaxCalculation(service, defaultIncidence),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ir/parametros/:ano",
			Method:      http.MethodGet,
			Handler:     GetAnnualParameters(service, defaultIncidence),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
