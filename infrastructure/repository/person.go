package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/payroll-consolidation-api/infrastructure/database/postgres"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
)

const (
	personsTable = "persons p"
)

//go:generate mockgen -source=person.go -destination=mocks/person.go -package=mocks
type PersonRepository interface {
	FindByTenantAndCpf(ctx context.Context, tenantID, cpf string) (*domain.Person, error)
}

type personRepository struct {
	conn postgres.Conn
}

func NewPersonRepository(conn postgres.Conn) PersonRepository {
	return &personRepository{
		conn: conn,
	}
}

// FindByTenantAndCpf retorna nil, nil quando a pessoa não existe para o tenant
func (r *personRepository) FindByTenantAndCpf(ctx context.Context, tenantID, cpf string) (*domain.Person, error) {
	query, args, err := squirrel.
		Select("p.id, p.tenant_id, p.cpf, p.name, p.created_at").
		From(personsTable).
		Where(squirrel.Eq{"p.tenant_id": tenantID, "p.cpf": cpf}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	person := &domain.Person{}
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&person.ID,
		&person.TenantID,
		&person.Cpf,
		&person.Name,
		&person.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar pessoa")
	}

	documentIDs, err := r.listDocumentIDs(ctx, tenantID, cpf)
	if err != nil {
		return nil, err
	}
	person.DocumentIDs = documentIDs

	return person, nil
}

func (r *personRepository) listDocumentIDs(ctx context.Context, tenantID, cpf string) ([]string, error) {
	query, args, err := squirrel.
		Select("d.id").
		From(payrollDocumentsTable).
		Where(squirrel.Eq{"d.tenant_id": tenantID, "d.cpf": cpf}).
		OrderBy("d.created_at ASC", "d.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar documentos da pessoa")
	}
	defer rows.Close()

	documentIDs := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear documento")
		}
		documentIDs = append(documentIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return documentIDs, nil
}
