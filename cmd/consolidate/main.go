package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/payroll-consolidation-api/infrastructure/database/postgres"
	"github.com/vfg2006/payroll-consolidation-api/infrastructure/repository"
	"github.com/vfg2006/payroll-consolidation-api/internal/config"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
	"github.com/vfg2006/payroll-consolidation-api/internal/usecases/consolidating"
	"github.com/vfg2006/payroll-consolidation-api/internal/usecases/exporting"
	"github.com/vfg2006/payroll-consolidation-api/pkg/utils"
)

func main() {
	cpf := flag.String("cpf", "", "CPF do colaborador (somente dígitos)")
	tenantID := flag.String("tenant", "", "identificador do tenant")
	year := flag.String("ano", "", "filtra as referências pelo ano (YYYY)")
	origin := flag.String("origem", "", "filtra pela origem do lançamento (CAIXA ou FUNCEF)")
	includeInactive := flag.Bool("inativas", false, "inclui rubricas inativas no catálogo")
	xlsxDir := flag.String("xlsx", "", "diretório onde gravar a planilha consolidada")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.SetOutput(os.Stderr)

	if *cpf == "" || *tenantID == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	consolidator := consolidating.NewService(
		cfg,
		repository.NewPersonRepository(conn),
		repository.NewPayrollDocumentRepository(conn),
		repository.NewPayrollEntryRepository(conn),
		repository.NewRubricaRepository(conn),
	)

	response, err := consolidator.Consolidate(ctx, *cpf, *tenantID, domain.ConsolidationFilter{
		Year:                    *year,
		Origin:                  *origin,
		IncludeInactiveRubricas: *includeInactive,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao consolidar")
	}

	if *xlsxDir != "" {
		path := filepath.Join(*xlsxDir, exporting.FileName(response))
		if err := writeWorkbook(path, response); err != nil {
			logrus.WithError(err).Fatal("Erro ao gravar planilha")
		}
		logrus.WithField("arquivo", path).Info("Planilha gravada")
		return
	}

	out, err := utils.PrettyJson(response)
	if err != nil {
		logrus.Fatal(err)
	}
	fmt.Println(out)
}

func writeWorkbook(path string, response *domain.ConsolidatedResponse) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := exporting.WriteXLSX(f, response); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
