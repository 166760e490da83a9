package repository

import (
	"context"
	"database/sql"
	"iter"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/payroll-consolidation-api/infrastructure/database/postgres"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
)

const (
	payrollEntriesTable = "payroll_entries e"
)

//go:generate mockgen -source=payroll_entry.go -destination=mocks/payroll_entry.go -package=mocks
type PayrollEntryRepository interface {
	// StreamByCpf percorre os lançamentos da pessoa sem ordem garantida.
	// A sequência só pode ser consumida uma vez; parar a iteração fecha o cursor.
	StreamByCpf(ctx context.Context, cpf, tenantID string) iter.Seq2[domain.PayrollEntry, error]
}

type payrollEntryRepository struct {
	conn postgres.Conn
}

func NewPayrollEntryRepository(conn postgres.Conn) PayrollEntryRepository {
	return &payrollEntryRepository{
		conn: conn,
	}
}

func (r *payrollEntryRepository) StreamByCpf(ctx context.Context, cpf, tenantID string) iter.Seq2[domain.PayrollEntry, error] {
	return func(yield func(domain.PayrollEntry, error) bool) {
		query, args, err := squirrel.
			Select(
				"e.id, e.document_id, e.rubrica_code, e.rubrica_description, e.reference",
				"e.value, e.origin, e.page_number, e.created_at",
			).
			From(payrollEntriesTable).
			Join("payroll_documents d ON d.id = e.document_id").
			Where(squirrel.Eq{"d.tenant_id": tenantID, "d.cpf": cpf}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			yield(domain.PayrollEntry{}, errors.Wrap(err, "erro ao construir a query"))
			return
		}

		rows, err := r.conn.Query(ctx, query, args...)
		if err != nil {
			yield(domain.PayrollEntry{}, errors.Wrap(err, "erro ao consultar lançamentos"))
			return
		}
		defer rows.Close()

		for rows.Next() {
			entry, err := scanEntry(rows)
			if err != nil {
				yield(domain.PayrollEntry{}, errors.Wrap(err, "erro ao escanear lançamento"))
				return
			}
			if !yield(entry, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(domain.PayrollEntry{}, errors.Wrap(err, "erro durante a iteração de linhas"))
		}
	}
}

func scanEntry(rows *sql.Rows) (domain.PayrollEntry, error) {
	var entry domain.PayrollEntry
	var description sql.NullString
	var origin string

	err := rows.Scan(
		&entry.ID,
		&entry.DocumentID,
		&entry.RubricaCode,
		&description,
		&entry.Reference,
		&entry.Value, // NUMERIC escaneado direto para decimal.Decimal, sem passar por float
		&origin,
		&entry.PageNumber,
		&entry.CreatedAt,
	)
	if err != nil {
		return domain.PayrollEntry{}, err
	}

	entry.RubricaDescription = description.String
	entry.Origin = domain.Origin(origin)

	return entry, nil
}
