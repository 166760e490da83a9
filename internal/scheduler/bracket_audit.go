// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/payroll-consolidation-api/infrastructure/repository"
	"github.com/vfg2006/payroll-consolidation-api/internal/config"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
	"github.com/vfg2006/payroll-consolidation-api/internal/usecases/taxing"
)

type BracketAuditConfig struct {
	CronSchedule string
	Enabled      bool
	YearsBack    int
}

// BracketAuditReport são os problemas encontrados na tabela de um ano e tipo de incidência
type BracketAuditReport struct {
	Year          int                   `json:"ano"`
	IncidenceType domain.IncidenceType  `json:"tipo_incidencia"`
	Issues        []domain.BracketIssue `json:"problemas"`
}

type BracketAuditService struct {
	scheduler           *gocron.Scheduler
	irTaxRepo           repository.IrTaxRepository
	config              BracketAuditConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReports         []BracketAuditReport
}

func NewBracketAuditService(irTaxRepo repository.IrTaxRepository, cfg *config.Config) *BracketAuditService {
	auditConfig := BracketAuditConfig{
		CronSchedule: cfg.BracketAudit.CronSchedule, // Default: 2h da manhã todos os dias
		Enabled:      cfg.BracketAudit.Enabled,
		YearsBack:    cfg.BracketAudit.YearsBack,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": auditConfig.CronSchedule,
		"years_back":    auditConfig.YearsBack,
	}).Info("Configuração da auditoria de faixas do IR carregada")

	return &BracketAuditService{
		scheduler: gocron.NewScheduler(time.Local),
		irTaxRepo: irTaxRepo,
		config:    auditConfig,
		now:       time.Now,
	}
}

func (s *BracketAuditService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de auditoria de faixas do IR desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de auditoria de faixas do IR")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunAudit(ctx); err != nil {
			logrus.WithError(err).Error("Erro na auditoria de faixas do IR")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar auditoria de faixas do IR: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de auditoria de faixas do IR")
		s.scheduler.Stop()
	}()

	return nil
}

// RunAudit audita as tabelas do ano corrente e dos anos anteriores configurados.
// Retorna apenas as tabelas com problemas; execução concorrente é ignorada.
func (s *BracketAuditService) RunAudit(ctx context.Context) ([]BracketAuditReport, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Auditoria de faixas do IR já está em execução")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	reports := make([]BracketAuditReport, 0)
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastReports = reports
		s.syncMutex.Unlock()
	}()

	currentYear := s.now().Year()
	oldestYear := currentYear - s.config.YearsBack

	logrus.WithFields(logrus.Fields{
		"de":  oldestYear,
		"ate": currentYear,
	}).Info("Iniciando auditoria de faixas do IR")

	for _, incidenceType := range domain.IncidenceTypes {
		years, err := s.yearsToAudit(ctx, incidenceType, oldestYear, currentYear)
		if err != nil {
			return nil, err
		}

		for _, year := range years {
			brackets, err := s.irTaxRepo.FindBrackets(ctx, year, incidenceType)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"ano":             year,
					"tipo_incidencia": incidenceType,
				}).Error("Erro ao buscar faixas do IR para auditoria")
				return nil, err
			}

			issues := taxing.AuditBrackets(brackets)
			if len(issues) == 0 {
				continue
			}

			for _, issue := range issues {
				logrus.WithFields(logrus.Fields{
					"kind":            domain.KindDataQuality.String(),
					"ano":             year,
					"tipo_incidencia": incidenceType,
					"problema":        issue.Type,
					"faixa":           issue.Ordinal,
					"detalhes":        issue.Details,
				}).Warn("Problema na tabela de faixas do IR")
			}

			reports = append(reports, BracketAuditReport{
				Year:          year,
				IncidenceType: incidenceType,
				Issues:        issues,
			})
		}
	}

	logrus.WithField("tabelas_com_problemas", len(reports)).Info("Auditoria de faixas do IR concluída")

	return reports, nil
}

// yearsToAudit combina os anos cadastrados dentro da janela com o ano corrente,
// que é sempre auditado para acusar tabela ausente
func (s *BracketAuditService) yearsToAudit(ctx context.Context, incidenceType domain.IncidenceType, oldestYear, currentYear int) ([]int, error) {
	stored, err := s.irTaxRepo.ListYears(ctx, incidenceType)
	if err != nil {
		logrus.WithError(err).WithField("tipo_incidencia", incidenceType).Error("Erro ao listar anos com faixas do IR")
		return nil, err
	}

	unique := map[int]struct{}{currentYear: {}}
	for _, year := range stored {
		if year >= oldestYear && year <= currentYear {
			unique[year] = struct{}{}
		}
	}

	years := make([]int, 0, len(unique))
	for year := range unique {
		years = append(years, year)
	}
	sort.Ints(years)

	return years, nil
}

// TriggerManualSync inicia manualmente uma auditoria de faixas do IR
func (s *BracketAuditService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Auditoria de faixas do IR já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando auditoria manual de faixas do IR")
	go func() {
		if _, err := s.RunAudit(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na auditoria manual de faixas do IR")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *BracketAuditService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"years_back":             s.config.YearsBack,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_reports":           s.lastReports,
	}
}
