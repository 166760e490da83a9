package consolidating

import (
	"context"
	"errors"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/payroll-consolidation-api/infrastructure/repository/mocks"
	"github.com/vfg2006/payroll-consolidation-api/internal/config"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
	"github.com/vfg2006/payroll-consolidation-api/pkg/apiErrors"
	"github.com/vfg2006/payroll-consolidation-api/pkg/log"
	"go.uber.org/mock/gomock"
)

const (
	testCpf    = "12345678909"
	testTenant = "tenant-1"
)

type serviceMocks struct {
	person   *mocks.MockPersonRepository
	document *mocks.MockPayrollDocumentRepository
	entry    *mocks.MockPayrollEntryRepository
	rubrica  *mocks.MockRubricaRepository
}

func setupService(t *testing.T, cfg config.Consolidation) (Consolidator, serviceMocks) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		person:   mocks.NewMockPersonRepository(ctrl),
		document: mocks.NewMockPayrollDocumentRepository(ctrl),
		entry:    mocks.NewMockPayrollEntryRepository(ctrl),
		rubrica:  mocks.NewMockRubricaRepository(ctrl),
	}

	service := NewService(&config.Config{Consolidation: cfg}, m.person, m.document, m.entry, m.rubrica)
	return service, m
}

func testPerson(documentIDs ...string) *domain.Person {
	return &domain.Person{
		ID:          "p1",
		TenantID:    testTenant,
		Cpf:         testCpf,
		Name:        "Maria da Silva",
		DocumentIDs: documentIDs,
	}
}

func requireKind(t *testing.T, err error, kind domain.ErrorKind, code string) {
	t.Helper()
	var consErr *ConsolidationError
	require.ErrorAs(t, err, &consErr)
	assert.Equal(t, kind, consErr.Kind)
	assert.Equal(t, code, consErr.Code)
}

func TestService_Consolidate(t *testing.T) {
	ctx := context.Background()

	t.Run("soma exata por rubrica", func(t *testing.T) {
		service, m := setupService(t, config.Consolidation{})
		m.person.EXPECT().FindByTenantAndCpf(gomock.Any(), testTenant, testCpf).Return(testPerson(), nil)
		m.entry.EXPECT().StreamByCpf(gomock.Any(), testCpf, testTenant).Return(seqOf(nil,
			entry("R001", "2024-01", "0.10", domain.OriginCaixa),
			entry("R001", "2024-02", "0.20", domain.OriginCaixa),
		))
		m.rubrica.EXPECT().ListActive(gomock.Any()).Return([]domain.Rubrica{
			{Code: "R001", Description: "Salário", Category: "PROVENTO", Active: true},
		}, nil)

		response, err := service.Consolidate(ctx, testCpf, testTenant, domain.ConsolidationFilter{})

		require.NoError(t, err)
		require.Len(t, response.Rows, 1)
		assert.Equal(t, "Maria da Silva", response.Name)
		assert.Equal(t, "Salário", response.Rows[0].Description)
		assert.True(t, response.Rows[0].Total.Equal(dec("0.30")))
		assert.True(t, response.GrandTotal.Equal(dec("0.30")))
		assert.Equal(t, []int{2024}, response.Years)
		assert.Equal(t, domain.Months, response.Months)
		assert.Equal(t, []string{"2024-01", "2024-02"}, response.ColumnReferences())
	})

	t.Run("totais de linha, coluna e geral são consistentes", func(t *testing.T) {
		service, m := setupService(t, config.Consolidation{})
		m.person.EXPECT().FindByTenantAndCpf(gomock.Any(), testTenant, testCpf).Return(testPerson(), nil)
		m.entry.EXPECT().StreamByCpf(gomock.Any(), testCpf, testTenant).Return(seqOf(nil,
			entry("R010", "2023-12", "1500.33", domain.OriginCaixa),
			entry("R002", "2024-01", "-320.10", domain.OriginCaixa),
			entry("R001", "2024-01", "4000.01", domain.OriginFuncef),
			entry("R001", "2023-12", "0.07", domain.OriginCaixa),
			entry("R002", "2024-01", "0.1", domain.OriginIncomeTax),
		))
		m.rubrica.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

		response, err := service.Consolidate(ctx, testCpf, testTenant, domain.ConsolidationFilter{})
		require.NoError(t, err)

		assert.Equal(t, []string{"R001", "R002", "R010"}, []string{response.Rows[0].Code, response.Rows[1].Code, response.Rows[2].Code})
		assert.Equal(t, []int{2023, 2024}, response.Years)

		rowSum, columnSum := decimal.Zero, decimal.Zero
		for _, row := range response.Rows {
			rowSum = rowSum.Add(row.Total)
		}
		for _, total := range response.MonthlyTotals {
			columnSum = columnSum.Add(total)
		}

		assert.True(t, rowSum.Equal(response.GrandTotal))
		assert.True(t, columnSum.Equal(response.GrandTotal))
		assert.True(t, response.GrandTotal.Equal(dec("5180.41")))
		assert.True(t, response.MonthlyTotals["2024-01"].Equal(dec("3680.01")))
	})

	t.Run("filtro de origem e ano", func(t *testing.T) {
		service, m := setupService(t, config.Consolidation{})
		m.person.EXPECT().FindByTenantAndCpf(gomock.Any(), testTenant, testCpf).Return(testPerson(), nil)
		m.entry.EXPECT().StreamByCpf(gomock.Any(), testCpf, testTenant).Return(seqOf(nil,
			entry("R001", "2023-12", "10", domain.OriginFuncef),
			entry("R001", "2024-01", "20", domain.OriginFuncef),
			entry("R001", "2024-01", "40", domain.OriginCaixa),
		))
		m.rubrica.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

		response, err := service.Consolidate(ctx, testCpf, testTenant, domain.ConsolidationFilter{Year: "2024", Origin: "funcef"})

		require.NoError(t, err)
		assert.True(t, response.GrandTotal.Equal(dec("20")))
		assert.Equal(t, []int{2024}, response.Years)
	})

	t.Run("pessoa inexistente", func(t *testing.T) {
		service, m := setupService(t, config.Consolidation{})
		m.person.EXPECT().FindByTenantAndCpf(gomock.Any(), testTenant, testCpf).Return(nil, nil)

		response, err := service.Consolidate(ctx, testCpf, testTenant, domain.ConsolidationFilter{})

		assert.Nil(t, response)
		requireKind(t, err, domain.KindNotFound, apiErrors.ErrPersonNotFound)
		assert.ErrorIs(t, err, ErrPersonNotFound)
	})

	t.Run("nenhum lançamento da origem filtrada", func(t *testing.T) {
		service, m := setupService(t, config.Consolidation{})
		m.person.EXPECT().FindByTenantAndCpf(gomock.Any(), testTenant, testCpf).Return(testPerson(), nil)
		m.entry.EXPECT().StreamByCpf(gomock.Any(), testCpf, testTenant).Return(seqOf(nil,
			entry("R001", "2024-01", "10", domain.OriginFuncef),
			entry("R002", "2024-02", "20", domain.OriginFuncef),
		))
		m.rubrica.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

		response, err := service.Consolidate(ctx, testCpf, testTenant, domain.ConsolidationFilter{Origin: "CAIXA"})

		assert.Nil(t, response)
		requireKind(t, err, domain.KindNoMatchingData, apiErrors.ErrNoEntriesFound)
		assert.Equal(t, domain.KindNoMatchingData, KindOf(err))
	})

	t.Run("ano 0000 é um filtro válido e não descarta o critério", func(t *testing.T) {
		service, m := setupService(t, config.Consolidation{})
		m.person.EXPECT().FindByTenantAndCpf(gomock.Any(), testTenant, testCpf).Return(testPerson(), nil)
		m.entry.EXPECT().StreamByCpf(gomock.Any(), testCpf, testTenant).Return(seqOf(nil,
			entry("R001", "2024-01", "10", domain.OriginCaixa),
		))
		m.rubrica.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

		response, err := service.Consolidate(ctx, testCpf, testTenant, domain.ConsolidationFilter{Year: "0000"})

		assert.Nil(t, response)
		requireKind(t, err, domain.KindNoMatchingData, apiErrors.ErrNoEntriesFound)
	})

	t.Run("origem inválida falha antes de qualquer consulta", func(t *testing.T) {
		service, _ := setupService(t, config.Consolidation{})

		_, err := service.Consolidate(ctx, testCpf, testTenant, domain.ConsolidationFilter{Origin: "INVALID"})

		requireKind(t, err, domain.KindInvalidInput, apiErrors.ErrInvalidOrigin)
		assert.ErrorIs(t, err, ErrInvalidOrigin)
	})

	t.Run("origem INCOME_TAX não é aceita como filtro", func(t *testing.T) {
		service, _ := setupService(t, config.Consolidation{})

		_, err := service.Consolidate(ctx, testCpf, testTenant, domain.ConsolidationFilter{Origin: "INCOME_TAX"})

		assert.ErrorIs(t, err, ErrInvalidOrigin)
	})

	t.Run("ano inválido falha antes de qualquer consulta", func(t *testing.T) {
		service, _ := setupService(t, config.Consolidation{})

		for _, year := range []string{"24", "20x4", "202401"} {
			_, err := service.Consolidate(ctx, testCpf, testTenant, domain.ConsolidationFilter{Year: year})
			requireKind(t, err, domain.KindInvalidInput, apiErrors.ErrInvalidYear)
		}
	})

	t.Run("erro do repositório de pessoas é propagado", func(t *testing.T) {
		service, m := setupService(t, config.Consolidation{})
		dbErr := errors.New("timeout")
		m.person.EXPECT().FindByTenantAndCpf(gomock.Any(), testTenant, testCpf).Return(nil, dbErr)

		_, err := service.Consolidate(ctx, testCpf, testTenant, domain.ConsolidationFilter{})

		requireKind(t, err, domain.KindInternal, apiErrors.ErrDatabaseOperation)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("erro do catálogo é propagado", func(t *testing.T) {
		service, m := setupService(t, config.Consolidation{})
		dbErr := errors.New("relation rubricas does not exist")
		m.person.EXPECT().FindByTenantAndCpf(gomock.Any(), testTenant, testCpf).Return(testPerson(), nil)
		m.entry.EXPECT().StreamByCpf(gomock.Any(), testCpf, testTenant).Return(seqOf(nil))
		m.rubrica.EXPECT().ListActive(gomock.Any()).Return(nil, dbErr)

		_, err := service.Consolidate(ctx, testCpf, testTenant, domain.ConsolidationFilter{})

		assert.ErrorIs(t, err, dbErr)
		assert.ErrorIs(t, err, ErrFetchRubricas)
	})

	t.Run("rubricas inativas usam o catálogo completo", func(t *testing.T) {
		service, m := setupService(t, config.Consolidation{})
		m.person.EXPECT().FindByTenantAndCpf(gomock.Any(), testTenant, testCpf).Return(testPerson(), nil)
		m.entry.EXPECT().StreamByCpf(gomock.Any(), testCpf, testTenant).Return(seqOf(nil,
			entry("R099", "2024-01", "10", domain.OriginCaixa),
		))
		m.rubrica.EXPECT().ListAll(gomock.Any()).Return([]domain.Rubrica{
			{Code: "R099", Description: "Abono extinto", Category: "PROVENTO", Active: false},
		}, nil)

		response, err := service.Consolidate(ctx, testCpf, testTenant, domain.ConsolidationFilter{IncludeInactiveRubricas: true})

		require.NoError(t, err)
		assert.Equal(t, "Abono extinto", response.Rows[0].Description)
	})

	t.Run("cobertura de meses dos documentos", func(t *testing.T) {
		service, m := setupService(t, config.Consolidation{IncludeDocumentMonths: true})
		m.person.EXPECT().FindByTenantAndCpf(gomock.Any(), testTenant, testCpf).Return(testPerson("d1", "d2"), nil)
		m.entry.EXPECT().StreamByCpf(gomock.Any(), testCpf, testTenant).Return(seqOf(nil,
			entry("R001", "2024-01", "10", domain.OriginCaixa),
		))
		m.rubrica.EXPECT().ListActive(gomock.Any()).Return(nil, nil)
		m.document.EXPECT().FindByTenantAndID(gomock.Any(), testTenant, "d1").Return(&domain.PayrollDocument{
			ID: "d1", Origin: domain.OriginCaixa, ReferenceMonths: []string{"2024-01", "2024-02", "lixo"},
		}, nil)
		m.document.EXPECT().FindByTenantAndID(gomock.Any(), testTenant, "d2").Return(&domain.PayrollDocument{
			ID: "d2", Origin: domain.OriginCaixa, ReferenceMonths: []string{"2022-06"},
		}, nil)

		response, err := service.Consolidate(ctx, testCpf, testTenant, domain.ConsolidationFilter{})

		require.NoError(t, err)
		assert.Equal(t, []int{2022, 2024}, response.Years)
		assert.Equal(t, []string{"2022-06", "2024-01", "2024-02"}, response.ColumnReferences())
		assert.True(t, response.MonthlyTotals["2024-02"].IsZero())
		assert.True(t, response.GrandTotal.Equal(dec("10")))
	})

	t.Run("documento inexistente", func(t *testing.T) {
		service, m := setupService(t, config.Consolidation{IncludeDocumentMonths: true})
		m.person.EXPECT().FindByTenantAndCpf(gomock.Any(), testTenant, testCpf).Return(testPerson("d1"), nil)
		m.entry.EXPECT().StreamByCpf(gomock.Any(), testCpf, testTenant).Return(seqOf(nil)).AnyTimes()
		m.rubrica.EXPECT().ListActive(gomock.Any()).Return(nil, nil).AnyTimes()
		m.document.EXPECT().FindByTenantAndID(gomock.Any(), testTenant, "d1").Return(nil, nil)

		_, err := service.Consolidate(ctx, testCpf, testTenant, domain.ConsolidationFilter{})

		requireKind(t, err, domain.KindNotFound, apiErrors.ErrDocumentNotFound)
	})

	t.Run("requisição cancelada interrompe a leitura", func(t *testing.T) {
		service, m := setupService(t, config.Consolidation{})
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		pulled := 0
		m.person.EXPECT().FindByTenantAndCpf(gomock.Any(), testTenant, testCpf).Return(testPerson(), nil)
		m.entry.EXPECT().StreamByCpf(gomock.Any(), testCpf, testTenant).Return(seqOf(&pulled,
			entry("R001", "2024-01", "10", domain.OriginCaixa),
			entry("R001", "2024-02", "10", domain.OriginCaixa),
		))
		m.rubrica.EXPECT().ListActive(gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := service.Consolidate(cancelled, testCpf, testTenant, domain.ConsolidationFilter{})

		assert.ErrorIs(t, err, context.Canceled)
		assert.LessOrEqual(t, pulled, 1)
	})
}

func TestService_ConsolidateIsIdempotent(t *testing.T) {
	service, m := setupService(t, config.Consolidation{})
	entries := []domain.PayrollEntry{
		entry("R003", "2024-03", "7.77", domain.OriginCaixa),
		entry("R001", "2024-01", "0.1", domain.OriginCaixa),
		entry("R002", "2023-11", "12.5", domain.OriginFuncef),
		entry("R001", "2024-01", "0.2", domain.OriginFuncef),
	}

	m.person.EXPECT().FindByTenantAndCpf(gomock.Any(), testTenant, testCpf).Return(testPerson(), nil).Times(2)
	m.entry.EXPECT().StreamByCpf(gomock.Any(), testCpf, testTenant).Return(seqOf(nil, entries...))
	m.entry.EXPECT().StreamByCpf(gomock.Any(), testCpf, testTenant).Return(seqOf(nil, entries[3], entries[2], entries[1], entries[0]))
	m.rubrica.EXPECT().ListActive(gomock.Any()).Return(nil, nil).Times(2)

	first, err := service.Consolidate(context.Background(), testCpf, testTenant, domain.ConsolidationFilter{})
	require.NoError(t, err)
	second, err := service.Consolidate(context.Background(), testCpf, testTenant, domain.ConsolidationFilter{})
	require.NoError(t, err)

	json := jsoniter.ConfigCompatibleWithStandardLibrary
	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
}
