package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/payroll-consolidation-api/infrastructure/database/postgres"
	"github.com/vfg2006/payroll-consolidation-api/infrastructure/repository"
	"github.com/vfg2006/payroll-consolidation-api/internal/api"
	"github.com/vfg2006/payroll-consolidation-api/internal/config"
	"github.com/vfg2006/payroll-consolidation-api/internal/scheduler"
	"github.com/vfg2006/payroll-consolidation-api/internal/usecases/authenticating"
	"github.com/vfg2006/payroll-consolidation-api/internal/usecases/consolidating"
	"github.com/vfg2006/payroll-consolidation-api/internal/usecases/taxing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	personRepo := repository.NewPersonRepository(pgConn)
	documentRepo := repository.NewPayrollDocumentRepository(pgConn)
	entryRepo := repository.NewPayrollEntryRepository(pgConn)
	rubricaRepo := repository.NewRubricaRepository(pgConn)
	irTaxRepo := repository.NewIrTaxRepository(pgConn)

	authenticator := authenticating.NewService(cfg)
	consolidator := consolidating.NewService(cfg, personRepo, documentRepo, entryRepo, rubricaRepo)
	taxCalculator := taxing.NewService(irTaxRepo)

	bracketAuditService := scheduler.NewBracketAuditService(irTaxRepo, cfg)
	if err := bracketAuditService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de auditoria de faixas do IR")
	}

	server, err := api.New(cfg, consolidator, taxCalculator, authenticator, bracketAuditService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
