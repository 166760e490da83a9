package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/payroll-consolidation-api/infrastructure/database/postgres"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
)

const (
	rubricasTable = "rubricas r"
)

//go:generate mockgen -source=rubrica.go -destination=mocks/rubrica.go -package=mocks
type RubricaRepository interface {
	ListActive(ctx context.Context) ([]domain.Rubrica, error)
	ListAll(ctx context.Context) ([]domain.Rubrica, error)
}

type rubricaRepository struct {
	conn postgres.Conn
}

func NewRubricaRepository(conn postgres.Conn) RubricaRepository {
	return &rubricaRepository{
		conn: conn,
	}
}

func (r *rubricaRepository) ListActive(ctx context.Context) ([]domain.Rubrica, error) {
	return r.list(ctx, squirrel.Eq{"r.active": true})
}

func (r *rubricaRepository) ListAll(ctx context.Context) ([]domain.Rubrica, error) {
	return r.list(ctx, nil)
}

func (r *rubricaRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]domain.Rubrica, error) {
	builder := squirrel.
		Select("r.code, r.description, r.category, r.active").
		From(rubricasTable).
		OrderBy("r.code ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar rubricas")
	}
	defer rows.Close()

	rubricas := make([]domain.Rubrica, 0)
	for rows.Next() {
		var rubrica domain.Rubrica
		if err := rows.Scan(&rubrica.Code, &rubrica.Description, &rubrica.Category, &rubrica.Active); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear rubrica")
		}
		rubricas = append(rubricas, rubrica)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return rubricas, nil
}
