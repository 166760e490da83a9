package handler

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
	"github.com/vfg2006/payroll-consolidation-api/internal/usecases/taxing"
	"github.com/vfg2006/payroll-consolidation-api/internal/usecases/taxing/mocks"
	"github.com/vfg2006/payroll-consolidation-api/pkg/apiErrors"
	"github.com/vfg2006/payroll-consolidation-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestGetTaxCalculation(t *testing.T) {
	t.Run("usa o tipo de incidência padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockTaxCalculator(ctrl)
		base := decimal.RequireFromString("5000.00")
		service.EXPECT().
			ComputeTaxDetailed(gomock.Any(), gomock.Cond(func(x any) bool { return x.(decimal.Decimal).Equal(base) }), 2024, domain.IncidenceMonthly).
			Return(&domain.TaxResult{Base: base, Year: 2024, IncidenceType: domain.IncidenceMonthly, Amount: decimal.RequireFromString("250.00")}, nil)

		rec := serve(t, Tax(service, domain.IncidenceMonthly), http.MethodGet, "/v1/ir/calculo?base=5.000,00&ano=2024", middleware.RoleViewer)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"250"`)
	})

	t.Run("tipo informado na query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockTaxCalculator(ctrl)
		service.EXPECT().
			ComputeTaxDetailed(gomock.Any(), gomock.Any(), 2024, domain.IncidenceProfitSharing).
			Return(&domain.TaxResult{}, nil)

		rec := serve(t, Tax(service, domain.IncidenceMonthly), http.MethodGet, "/v1/ir/calculo?base=1000&ano=2024&tipo=plr", middleware.RoleViewer)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	tests := []struct {
		name         string
		target       string
		expectedCode string
	}{
		{name: "base ausente", target: "/v1/ir/calculo?ano=2024", expectedCode: apiErrors.ErrMissingRequiredData},
		{name: "base inválida", target: "/v1/ir/calculo?base=abc&ano=2024", expectedCode: apiErrors.ErrInvalidBase},
		{name: "ano inválido", target: "/v1/ir/calculo?base=100&ano=24", expectedCode: apiErrors.ErrInvalidYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockTaxCalculator(ctrl)

			rec := serve(t, Tax(service, domain.IncidenceMonthly), http.MethodGet, tt.target, middleware.RoleViewer)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedCode)
		})
	}

	t.Run("tipo de incidência desconhecido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockTaxCalculator(ctrl)
		service.EXPECT().
			ComputeTaxDetailed(gomock.Any(), gomock.Any(), 2024, domain.IncidenceType("SEMANAL")).
			Return(nil, taxing.NewTaxError(domain.KindInvalidInput, taxing.ErrInvalidIncidenceType, apiErrors.ErrInvalidIncidenceType, ""))

		rec := serve(t, Tax(service, domain.IncidenceMonthly), http.MethodGet, "/v1/ir/calculo?base=100&ano=2024&tipo=semanal", middleware.RoleViewer)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidIncidenceType)
	})
}

func TestGetAnnualParameters(t *testing.T) {
	t.Run("parâmetros encontrados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockTaxCalculator(ctrl)
		service.EXPECT().GetAnnualParameters(gomock.Any(), 2024, domain.IncidenceAnnual).Return(&domain.IrAnnualParameters{
			Year:               2024,
			IncidenceType:      domain.IncidenceAnnual,
			DependentDeduction: decimal.RequireFromString("2275.08"),
		}, nil)

		rec := serve(t, Tax(service, domain.IncidenceMonthly), http.MethodGet, "/v1/ir/parametros/2024?tipo=ANUAL", middleware.RoleViewer)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "2275.08")
	})

	t.Run("parâmetros ausentes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockTaxCalculator(ctrl)
		service.EXPECT().GetAnnualParameters(gomock.Any(), 2031, domain.IncidenceMonthly).
			Return(nil, taxing.NewTaxError(domain.KindNotFound, taxing.ErrTaxParametersNotFound, apiErrors.ErrTaxParametersNotFound, ""))

		rec := serve(t, Tax(service, domain.IncidenceMonthly), http.MethodGet, "/v1/ir/parametros/2031", middleware.RoleViewer)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrTaxParametersNotFound)
	})
}
