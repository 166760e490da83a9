package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/payroll-consolidation-api/infrastructure/database/postgres"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
)

const (
	payrollDocumentsTable = "payroll_documents d"
)

//go:generate mockgen -source=payroll_document.go -destination=mocks/payroll_document.go -package=mocks
type PayrollDocumentRepository interface {
	FindByTenantAndID(ctx context.Context, tenantID, id string) (*domain.PayrollDocument, error)
}

type payrollDocumentRepository struct {
	conn postgres.Conn
}

func NewPayrollDocumentRepository(conn postgres.Conn) PayrollDocumentRepository {
	return &payrollDocumentRepository{
		conn: conn,
	}
}

func (r *payrollDocumentRepository) FindByTenantAndID(ctx context.Context, tenantID, id string) (*domain.PayrollDocument, error) {
	query, args, err := squirrel.
		Select("d.id, d.tenant_id, d.cpf, d.reference_months, d.origin, d.created_at").
		From(payrollDocumentsTable).
		Where(squirrel.Eq{"d.tenant_id": tenantID, "d.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	document := &domain.PayrollDocument{}
	var referenceMonths pq.StringArray
	var origin string

	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&document.ID,
		&document.TenantID,
		&document.Cpf,
		&referenceMonths,
		&origin,
		&document.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar documento")
	}

	document.ReferenceMonths = []string(referenceMonths)
	document.Origin = domain.Origin(origin)

	return document, nil
}
