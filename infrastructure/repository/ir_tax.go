package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/payroll-consolidation-api/infrastructure/database/postgres"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
)

const (
	irTaxBracketsTable    = "ir_tax_brackets b"
	irAnnualParamsTable   = "ir_annual_parameters ap"
	undefinedTableErrCode = "42P01"
)

//go:generate mockgen -source=ir_tax.go -destination=mocks/ir_tax.go -package=mocks
type IrTaxRepository interface {
	// FindBrackets retorna as faixas ordenadas pelo limite inferior
	FindBrackets(ctx context.Context, year int, incidenceType domain.IncidenceType) ([]domain.IrTaxBracket, error)
	FindParameters(ctx context.Context, year int, incidenceType domain.IncidenceType) (*domain.IrAnnualParameters, error)
	ListYears(ctx context.Context, incidenceType domain.IncidenceType) ([]int, error)
}

type irTaxRepository struct {
	conn postgres.Conn
}

func NewIrTaxRepository(conn postgres.Conn) IrTaxRepository {
	return &irTaxRepository{
		conn: conn,
	}
}

func (r *irTaxRepository) FindBrackets(ctx context.Context, year int, incidenceType domain.IncidenceType) ([]domain.IrTaxBracket, error) {
	query, args, err := squirrel.
		Select("b.id, b.year, b.incidence_type, b.ordinal, b.lower_bound, b.upper_bound, b.rate, b.deduction, b.description").
		From(irTaxBracketsTable).
		Where(squirrel.Eq{"b.year": year, "b.incidence_type": string(incidenceType)}).
		OrderBy("b.lower_bound ASC", "b.ordinal ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapPqError(err, "erro ao consultar faixas do IR")
	}
	defer rows.Close()

	brackets := make([]domain.IrTaxBracket, 0)
	for rows.Next() {
		var bracket domain.IrTaxBracket
		var incidence string
		var upper decimal.NullDecimal
		var description sql.NullString

		if err := rows.Scan(
			&bracket.ID,
			&bracket.Year,
			&incidence,
			&bracket.Ordinal,
			&bracket.LowerBound,
			&upper,
			&bracket.Rate,
			&bracket.Deduction,
			&description,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear faixa do IR")
		}

		bracket.IncidenceType = domain.IncidenceType(incidence)
		bracket.Description = description.String
		if upper.Valid {
			upperBound := upper.Decimal
			bracket.UpperBound = &upperBound
		}

		brackets = append(brackets, bracket)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return brackets, nil
}

func (r *irTaxRepository) FindParameters(ctx context.Context, year int, incidenceType domain.IncidenceType) (*domain.IrAnnualParameters, error) {
	query, args, err := squirrel.
		Select("ap.year, ap.incidence_type, ap.dependent_deduction, ap.education_expense_cap, ap.simplified_discount_cap, ap.over65_exemption").
		From(irAnnualParamsTable).
		Where(squirrel.Eq{"ap.year": year, "ap.incidence_type": string(incidenceType)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	params := &domain.IrAnnualParameters{}
	var incidence string

	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&params.Year,
		&incidence,
		&params.DependentDeduction,
		&params.EducationExpenseCap,
		&params.SimplifiedDiscountCap,
		&params.Over65ExemptionAmount,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapPqError(err, "erro ao buscar parâmetros anuais do IR")
	}
	params.IncidenceType = domain.IncidenceType(incidence)

	return params, nil
}

func (r *irTaxRepository) ListYears(ctx context.Context, incidenceType domain.IncidenceType) ([]int, error) {
	query, args, err := squirrel.
		Select("DISTINCT b.year").
		From(irTaxBracketsTable).
		Where(squirrel.Eq{"b.incidence_type": string(incidenceType)}).
		OrderBy("b.year ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapPqError(err, "erro ao consultar anos das tabelas do IR")
	}
	defer rows.Close()

	years := make([]int, 0)
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear ano")
		}
		years = append(years, year)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return years, nil
}

func wrapPqError(err error, message string) error {
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == undefinedTableErrCode {
			logrus.WithField("table", pqErr.Table).Error("Tabela do IR inexistente, execute o script de migração")
		}
		return errors.Wrapf(err, "%s (código: %s)", message, pqErr.Code)
	}
	return errors.Wrap(err, message)
}
