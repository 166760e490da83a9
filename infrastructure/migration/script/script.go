package main

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/payroll-consolidation-api/internal/config"
	"github.com/vfg2006/payroll-consolidation-api/pkg/utils"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS persons (
		id         VARCHAR(20) PRIMARY KEY,
		tenant_id  VARCHAR(64) NOT NULL,
		cpf        VARCHAR(11) NOT NULL,
		name       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (tenant_id, cpf)
	)`,
	`CREATE TABLE IF NOT EXISTS payroll_documents (
		id               VARCHAR(20) PRIMARY KEY,
		tenant_id        VARCHAR(64) NOT NULL,
		cpf              VARCHAR(11) NOT NULL,
		reference_months TEXT[] NOT NULL DEFAULT '{}',
		origin           VARCHAR(16) NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS payroll_documents_tenant_cpf_idx ON payroll_documents (tenant_id, cpf)`,
	`CREATE TABLE IF NOT EXISTS payroll_entries (
		id                  VARCHAR(20) PRIMARY KEY,
		document_id         VARCHAR(20) NOT NULL REFERENCES payroll_documents (id) ON DELETE CASCADE,
		rubrica_code        VARCHAR(16) NOT NULL,
		rubrica_description TEXT NOT NULL DEFAULT '',
		reference           VARCHAR(16) NOT NULL,
		value               NUMERIC(18, 2) NOT NULL,
		origin              VARCHAR(16) NOT NULL,
		page_number         INTEGER NOT NULL DEFAULT 0,
		created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS payroll_entries_document_idx ON payroll_entries (document_id)`,
	`CREATE TABLE IF NOT EXISTS rubricas (
		code        VARCHAR(16) PRIMARY KEY,
		description TEXT NOT NULL,
		category    VARCHAR(32) NOT NULL DEFAULT '',
		active      BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS ir_tax_brackets (
		id             VARCHAR(20) PRIMARY KEY,
		year           INTEGER NOT NULL,
		incidence_type VARCHAR(8) NOT NULL,
		ordinal        INTEGER NOT NULL,
		lower_bound    NUMERIC(18, 2) NOT NULL,
		upper_bound    NUMERIC(18, 2),
		rate           NUMERIC(7, 4) NOT NULL,
		deduction      NUMERIC(18, 2) NOT NULL DEFAULT 0,
		description    TEXT NOT NULL DEFAULT '',
		UNIQUE (year, incidence_type, ordinal)
	)`,
	`CREATE TABLE IF NOT EXISTS ir_annual_parameters (
		year                    INTEGER NOT NULL,
		incidence_type          VARCHAR(8) NOT NULL,
		dependent_deduction     NUMERIC(18, 2) NOT NULL,
		education_expense_cap   NUMERIC(18, 2) NOT NULL,
		simplified_discount_cap NUMERIC(18, 2) NOT NULL,
		over65_exemption        NUMERIC(18, 2) NOT NULL,
		PRIMARY KEY (year, incidence_type)
	)`,
}

type bracketSeed struct {
	Ordinal     int
	Lower       string
	Upper       sql.NullString
	Rate        string
	Deduction   string
	Description string
}

// Tabela progressiva mensal vigente a partir de fevereiro de 2024
var monthly2024 = []bracketSeed{
	{1, "0.00", sql.NullString{String: "2259.20", Valid: true}, "0", "0", "Isento"},
	{2, "2259.21", sql.NullString{String: "2826.65", Valid: true}, "0.075", "169.44", "7,5%"},
	{3, "2826.66", sql.NullString{String: "3751.05", Valid: true}, "0.15", "381.44", "15%"},
	{4, "3751.06", sql.NullString{String: "4664.68", Valid: true}, "0.225", "662.77", "22,5%"},
	{5, "4664.69", sql.NullString{}, "0.275", "896.00", "27,5%"},
}

type parametersSeed struct {
	IncidenceType         string
	DependentDeduction    string
	EducationExpenseCap   string
	SimplifiedDiscountCap string
	Over65Exemption       string
}

var parameters2024 = []parametersSeed{
	{"MENSAL", "189.59", "0.00", "564.80", "1903.98"},
	{"ANUAL", "2275.08", "3561.50", "16754.34", "24751.74"},
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir conexão")
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar transação")
	}

	if err := run(ctx, tx); err != nil {
		_ = tx.Rollback()
		logrus.WithError(err).Fatal("Migração revertida")
	}

	if err := tx.Commit(); err != nil {
		logrus.WithError(err).Fatal("Erro ao confirmar transação")
	}

	logrus.Info("Migração concluída")
}

func run(ctx context.Context, tx *sql.Tx) error {
	startTime := time.Now()

	for _, statement := range schema {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return err
		}
	}
	logrus.WithField("tabelas", len(schema)).Info("Schema criado")

	if err := seedBrackets(ctx, tx, 2024, "MENSAL", monthly2024); err != nil {
		return err
	}

	if err := seedParameters(ctx, tx, 2024, parameters2024); err != nil {
		return err
	}

	logrus.WithField("duracao", time.Since(startTime).String()).Info("Seed concluído")
	return nil
}

func seedBrackets(ctx context.Context, tx *sql.Tx, year int, incidenceType string, brackets []bracketSeed) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO ir_tax_brackets (id, year, incidence_type, ordinal, lower_bound, upper_bound, rate, deduction, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (year, incidence_type, ordinal) DO NOTHING`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	inserted := 0
	for _, b := range brackets {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}

		result, err := stmt.ExecContext(ctx, id, year, incidenceType, b.Ordinal, b.Lower, b.Upper, b.Rate, b.Deduction, b.Description)
		if err != nil {
			return err
		}
		if affected, _ := result.RowsAffected(); affected > 0 {
			inserted++
		}
	}

	logrus.WithFields(logrus.Fields{
		"ano":             year,
		"tipo_incidencia": incidenceType,
		"inseridas":       inserted,
		"existentes":      len(brackets) - inserted,
	}).Info("Faixas do IR carregadas")

	return nil
}

func seedParameters(ctx context.Context, tx *sql.Tx, year int, parameters []parametersSeed) error {
	for _, p := range parameters {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO ir_annual_parameters (year, incidence_type, dependent_deduction, education_expense_cap, simplified_discount_cap, over65_exemption)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (year, incidence_type) DO NOTHING`,
			year, p.IncidenceType, p.DependentDeduction, p.EducationExpenseCap, p.SimplifiedDiscountCap, p.Over65Exemption)
		if err != nil {
			return err
		}
	}

	logrus.WithField("ano", year).Info("Parâmetros anuais do IR carregados")
	return nil
}
