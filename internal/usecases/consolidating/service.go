package consolidating

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/payroll-consolidation-api/infrastructure/repository"
	"github.com/vfg2006/payroll-consolidation-api/internal/config"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
	"github.com/vfg2006/payroll-consolidation-api/pkg/apiErrors"
	"github.com/vfg2006/payroll-consolidation-api/pkg/log"
	"github.com/vfg2006/payroll-consolidation-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// documentFetchLimit limita as consultas simultâneas de documentos de uma pessoa
const documentFetchLimit = 4

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type Consolidator interface {
	Consolidate(ctx context.Context, cpf, tenantID string, filter domain.ConsolidationFilter) (*domain.ConsolidatedResponse, error)
}

type Service struct {
	cfg          config.Consolidation
	personRepo   repository.PersonRepository
	documentRepo repository.PayrollDocumentRepository
	entryRepo    repository.PayrollEntryRepository
	rubricaRepo  repository.RubricaRepository
}

func NewService(
	cfg *config.Config,
	personRepo repository.PersonRepository,
	documentRepo repository.PayrollDocumentRepository,
	entryRepo repository.PayrollEntryRepository,
	rubricaRepo repository.RubricaRepository,
) Consolidator {
	return &Service{
		cfg:          cfg.Consolidation,
		personRepo:   personRepo,
		documentRepo: documentRepo,
		entryRepo:    entryRepo,
		rubricaRepo:  rubricaRepo,
	}
}

// Consolidate monta a matriz rubrica × mês de um contribuinte.
// Nenhuma escrita é feita, então a operação pode ser repetida e cancelada a qualquer momento.
func (s *Service) Consolidate(ctx context.Context, cpf, tenantID string, filter domain.ConsolidationFilter) (*domain.ConsolidatedResponse, error) {
	criteria, err := validateFilter(filter)
	if err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"cpf":       cpf,
		"tenant_id": tenantID,
		"ano":       filter.Year,
		"origem":    filter.Origin,
	})
	logger.Info("consolidação: iniciando")

	if s.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.FetchTimeout)
		defer cancel()
	}

	person, err := s.personRepo.FindByTenantAndCpf(ctx, tenantID, cpf)
	if err != nil {
		logger.WithError(err).Error("consolidação: erro ao buscar pessoa")
		return nil, NewConsolidationError(domain.KindInternal, fmt.Errorf("%w: %w", ErrFetchPerson, err), apiErrors.ErrDatabaseOperation, cpf, "")
	}

	if person == nil {
		return nil, NewConsolidationError(domain.KindNotFound, ErrPersonNotFound, apiErrors.ErrPersonNotFound, cpf, "")
	}

	var (
		acc       *Accumulation
		catalog   map[string]domain.Rubrica
		documents []domain.PayrollDocument
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		acc, err = Aggregate(gctx, s.entryRepo.StreamByCpf(gctx, person.Cpf, tenantID), criteria)
		if err != nil {
			logger.WithError(err).Error("consolidação: erro ao ler lançamentos")
			return NewConsolidationError(domain.KindInternal, fmt.Errorf("%w: %w", ErrFetchEntries, err), apiErrors.ErrDatabaseOperation, cpf, "")
		}
		return nil
	})

	g.Go(func() error {
		var err error
		catalog, err = s.fetchCatalog(gctx, filter.IncludeInactiveRubricas)
		if err != nil {
			logger.WithError(err).Error("consolidação: erro ao buscar rubricas")
			return NewConsolidationError(domain.KindInternal, fmt.Errorf("%w: %w", ErrFetchRubricas, err), apiErrors.ErrDatabaseOperation, cpf, "")
		}
		return nil
	})

	if s.cfg.IncludeDocumentMonths {
		g.Go(func() error {
			var err error
			documents, err = s.fetchDocuments(gctx, person)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := acc.Rows(catalog)
	if len(rows) == 0 {
		logger.WithField("descartados", acc.Skipped()).Info("consolidação: nenhum lançamento após os filtros")
		return nil, NewConsolidationError(domain.KindNoMatchingData, ErrNoEntriesFound, apiErrors.ErrNoEntriesFound, cpf, "")
	}

	response := assemble(person, rows, coverage(documents, criteria))

	logger.WithFields(log.Fields{
		"rows":        len(response.Rows),
		"lancamentos": acc.Accepted(),
		"descartados": acc.Skipped(),
		"total_geral": response.GrandTotal.String(),
	}).Info("consolidação: concluída")

	return response, nil
}

func (s *Service) fetchCatalog(ctx context.Context, includeInactive bool) (map[string]domain.Rubrica, error) {
	var (
		rubricas []domain.Rubrica
		err      error
	)

	if includeInactive {
		rubricas, err = s.rubricaRepo.ListAll(ctx)
	} else {
		rubricas, err = s.rubricaRepo.ListActive(ctx)
	}
	if err != nil {
		return nil, err
	}

	catalog := make(map[string]domain.Rubrica, len(rubricas))
	for _, rubrica := range rubricas {
		catalog[rubrica.Code] = rubrica
	}

	return catalog, nil
}

// fetchDocuments resolve os documentos da pessoa preservando a ordem de person.DocumentIDs
func (s *Service) fetchDocuments(ctx context.Context, person *domain.Person) ([]domain.PayrollDocument, error) {
	documents := make([]domain.PayrollDocument, len(person.DocumentIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(documentFetchLimit)

	for i, id := range person.DocumentIDs {
		g.Go(func() error {
			document, err := s.documentRepo.FindByTenantAndID(gctx, person.TenantID, id)
			if err != nil {
				return NewConsolidationError(domain.KindInternal, fmt.Errorf("%w: %w", ErrFetchDocuments, err), apiErrors.ErrDatabaseOperation, person.Cpf, id)
			}

			if document == nil {
				return NewConsolidationError(domain.KindNotFound, ErrDocumentNotFound, apiErrors.ErrDocumentNotFound, person.Cpf, id)
			}

			documents[i] = *document
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return documents, nil
}

// coverage retorna as referências detectadas nos documentos que passam pelos filtros
func coverage(documents []domain.PayrollDocument, criteria Criteria) []string {
	references := make([]string, 0)
	for _, document := range documents {
		for _, month := range document.ReferenceMonths {
			reference, ok := utils.NormalizeReference(month)
			if ok && criteria.Matches(reference, document.Origin) {
				references = append(references, reference)
			}
		}
	}
	return references
}

func assemble(person *domain.Person, rows []domain.ConsolidationRow, covered []string) *domain.ConsolidatedResponse {
	years := make(map[int]struct{})
	monthlyTotals := make(map[string]decimal.Decimal)
	grandTotal := decimal.Zero

	for _, row := range rows {
		for reference, value := range row.Values {
			monthlyTotals[reference] = monthlyTotals[reference].Add(value)
			addYear(years, reference)
		}
		grandTotal = grandTotal.Add(row.Total)
	}

	// Meses cobertos por documento sem lançamento aparecem com total zero
	for _, reference := range covered {
		if _, ok := monthlyTotals[reference]; !ok {
			monthlyTotals[reference] = decimal.Zero
		}
		addYear(years, reference)
	}

	months := make([]string, len(domain.Months))
	copy(months, domain.Months)

	return &domain.ConsolidatedResponse{
		Cpf:           person.Cpf,
		Name:          person.Name,
		Years:         sortedYears(years),
		Months:        months,
		Rows:          rows,
		MonthlyTotals: monthlyTotals,
		GrandTotal:    grandTotal,
	}
}

func addYear(years map[int]struct{}, reference string) {
	if year, err := utils.ExtractYear(reference); err == nil {
		years[year] = struct{}{}
	}
}

func sortedYears(years map[int]struct{}) []int {
	sorted := make([]int, 0, len(years))
	for year := range years {
		sorted = append(sorted, year)
	}
	sort.Ints(sorted)
	return sorted
}

// validateFilter valida origem e ano antes de qualquer consulta
func validateFilter(filter domain.ConsolidationFilter) (Criteria, error) {
	var criteria Criteria

	if origin := strings.ToUpper(strings.TrimSpace(filter.Origin)); origin != "" {
		if !domain.Origin(origin).IsFilterable() {
			return criteria, NewConsolidationError(domain.KindInvalidInput, ErrInvalidOrigin, apiErrors.ErrInvalidOrigin, "",
				fmt.Sprintf("%q, valores aceitos: %v", filter.Origin, domain.FilterableOrigins))
		}
		criteria.Origin = domain.Origin(origin)
	}

	if year := strings.TrimSpace(filter.Year); year != "" {
		if !utils.IsValidYear(year) {
			return criteria, NewConsolidationError(domain.KindInvalidInput, ErrInvalidYear, apiErrors.ErrInvalidYear, "", fmt.Sprintf("%q", filter.Year))
		}
		value, _ := strconv.Atoi(year)
		criteria.Year = &value
	}

	return criteria, nil
}
