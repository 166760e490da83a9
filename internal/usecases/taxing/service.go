package taxing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/payroll-consolidation-api/infrastructure/repository"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
	"github.com/vfg2006/payroll-consolidation-api/pkg/apiErrors"
	"github.com/vfg2006/payroll-consolidation-api/pkg/log"
	"github.com/vfg2006/payroll-consolidation-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type TaxCalculator interface {
	ComputeTax(ctx context.Context, base decimal.Decimal, year int, incidenceType domain.IncidenceType) (decimal.Decimal, error)
	ComputeTaxDetailed(ctx context.Context, base decimal.Decimal, year int, incidenceType domain.IncidenceType) (*domain.TaxResult, error)
	GetAnnualParameters(ctx context.Context, year int, incidenceType domain.IncidenceType) (*domain.IrAnnualParameters, error)
}

type Service struct {
	irTaxRepo repository.IrTaxRepository
}

func NewService(irTaxRepo repository.IrTaxRepository) TaxCalculator {
	return &Service{
		irTaxRepo: irTaxRepo,
	}
}

func (s *Service) ComputeTax(ctx context.Context, base decimal.Decimal, year int, incidenceType domain.IncidenceType) (decimal.Decimal, error) {
	result, err := s.ComputeTaxDetailed(ctx, base, year, incidenceType)
	if err != nil {
		return decimal.Zero, err
	}
	return result.Amount, nil
}

func (s *Service) ComputeTaxDetailed(ctx context.Context, base decimal.Decimal, year int, incidenceType domain.IncidenceType) (*domain.TaxResult, error) {
	if err := validate(year, incidenceType); err != nil {
		return nil, err
	}

	result := &domain.TaxResult{
		Base:          base,
		Year:          year,
		IncidenceType: incidenceType,
		Amount:        decimal.Zero,
		EffectiveRate: decimal.Zero,
	}

	// Base zerada ou negativa não precisa consultar a tabela
	if !base.IsPositive() {
		return result, nil
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"ano":             year,
		"tipo_incidencia": incidenceType,
	})

	brackets, err := s.irTaxRepo.FindBrackets(ctx, year, incidenceType)
	if err != nil {
		logger.WithError(err).Error("ir: erro ao buscar faixas")
		return nil, NewTaxError(domain.KindInternal, fmt.Errorf("%w: %w", ErrFetchBrackets, err), apiErrors.ErrDatabaseOperation, "")
	}

	if issues := AuditBrackets(brackets); len(issues) > 0 {
		logger.WithField("problemas", issues).Warn("ir: tabela de faixas com problemas de qualidade")
	}

	resolution := Resolve(base, brackets)
	result.Amount = resolution.Amount
	result.Bracket = resolution.Bracket
	result.FallbackUsed = resolution.Fallback
	result.EffectiveRate = EffectiveRate(resolution.Amount, base)

	logger.WithFields(log.Fields{
		"base":    base.String(),
		"imposto": result.Amount.String(),
	}).Debug("ir: imposto calculado")

	return result, nil
}

func (s *Service) GetAnnualParameters(ctx context.Context, year int, incidenceType domain.IncidenceType) (*domain.IrAnnualParameters, error) {
	if err := validate(year, incidenceType); err != nil {
		return nil, err
	}

	params, err := s.irTaxRepo.FindParameters(ctx, year, incidenceType)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("ir: erro ao buscar parâmetros anuais")
		return nil, NewTaxError(domain.KindInternal, fmt.Errorf("%w: %w", ErrFetchParameters, err), apiErrors.ErrDatabaseOperation, "")
	}

	if params == nil {
		return nil, NewTaxError(domain.KindNotFound, ErrTaxParametersNotFound, apiErrors.ErrTaxParametersNotFound,
			fmt.Sprintf("ano %d, incidência %s", year, incidenceType))
	}

	return params, nil
}

// ParseBase converte a base de cálculo informada ("1.234,56" ou "1234.56")
func ParseBase(raw string) (decimal.Decimal, error) {
	base, err := utils.ParseMoney(raw)
	if err != nil {
		return decimal.Zero, NewTaxError(domain.KindInvalidInput, ErrInvalidBase, apiErrors.ErrInvalidBase, fmt.Sprintf("%q", raw))
	}
	return base, nil
}

func validate(year int, incidenceType domain.IncidenceType) error {
	if !incidenceType.IsValid() {
		return NewTaxError(domain.KindInvalidInput, ErrInvalidIncidenceType, apiErrors.ErrInvalidIncidenceType,
			fmt.Sprintf("valores aceitos: %v", domain.IncidenceTypes))
	}

	if year < 1000 || year > 9999 {
		return NewTaxError(domain.KindInvalidInput, ErrInvalidYear, apiErrors.ErrInvalidYear, fmt.Sprintf("%d", year))
	}

	return nil
}
