package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/install-growth-api/infrastructure/repository"
	"github.com/vfg2006/install-growth-api/internal/config"
	"github.com/vfg2006/install-growth-api/internal/domain"
	"github.com/vfg2006/install-growth-api/internal/usecases/attributing"
	"github.com/vfg2006/install-growth-api/pkg/utils"
)

// InstallReportSyncConfig representa a configuração do agendador do relatório de instalações
type InstallReportSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	RetentionDays int
}

// InstallReportSyncService gera diariamente o relatório de instalações do dia anterior
type InstallReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              InstallReportSyncConfig
	reportRepo          repository.InstallReportRepository
	attributor          attributing.Attributor
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewInstallReportSyncService cria uma nova instância do serviço de relatório de instalações
func NewInstallReportSyncService(
	reportRepo repository.InstallReportRepository,
	attributor attributing.Attributor,
	appConfig *config.Config,
) *InstallReportSyncService {
	syncConfig := InstallReportSyncConfig{
		CronSchedule:  appConfig.InstallReportSync.CronSchedule,
		SyncEnabled:   appConfig.InstallReportSync.Enabled,
		RetentionDays: appConfig.InstallReportSync.RetentionDays,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"sync_enabled":   syncConfig.SyncEnabled,
		"retention_days": syncConfig.RetentionDays,
	}).Info("Configuração do agendador de relatório de instalações carregada")

	return &InstallReportSyncService{
		scheduler:  gocron.NewScheduler(time.UTC),
		config:     syncConfig,
		reportRepo: reportRepo,
		attributor: attributor,
		now:        time.Now,
	}
}

// Start inicia o agendador
func (s *InstallReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Relatório diário de instalações desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do relatório de instalações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncInstallReport(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório de instalações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do relatório de instalações")
		s.scheduler.Stop()
	}()

	return nil
}

// syncInstallReport ignora a execução quando já existe uma em andamento
func (s *InstallReportSyncService) syncInstallReport(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Relatório de instalações já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	err := s.processInstallReport(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()
}

// processInstallReport calcula o crescimento de ontem contra anteontem e salva o relatório com o breakdown de ontem
func (s *InstallReportSyncService) processInstallReport(ctx context.Context) error {
	startTime := s.now()
	yesterday := utils.Yesterday(startTime)

	window, err := domain.NewWindow(yesterday, yesterday)
	if err != nil {
		return err
	}

	logger := logrus.WithField("report_date", yesterday.Format(time.DateOnly))
	logger.Info("Gerando relatório de instalações")

	// uma única reconciliação por janela: o breakdown salvo é o mesmo usado no crescimento
	growth, err := s.attributor.GetInstallGrowth(ctx, window, nil)
	if err != nil {
		logger.WithError(err).Error("Erro ao calcular crescimento de instalações")
		return err
	}
	current := domain.InstallBreakdownFromMetrics(growth.Current)

	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id do relatório: %w", err)
	}

	report := &domain.InstallReport{
		ID:             id,
		ReportDate:     yesterday,
		Window:         window,
		PreviousWindow: window.Previous(),
		Breakdown:      current,
		Growth:         growth.Growth,
	}

	if err := s.reportRepo.SaveOrUpdate(ctx, report); err != nil {
		logger.WithError(err).Error("Erro ao salvar relatório de instalações")
		return err
	}

	if s.config.RetentionDays > 0 {
		removed, err := s.reportRepo.DeleteOlderThan(ctx, s.config.RetentionDays)
		if err != nil {
			logger.WithError(err).Warn("Erro ao remover relatórios antigos")
		} else if removed > 0 {
			logger.WithField("removed", removed).Info("Relatórios antigos removidos")
		}
	}

	logger.WithFields(logrus.Fields{
		"duration":      time.Since(startTime).String(),
		"total_install": current.TotalInstall,
	}).Info("Relatório de instalações concluído")

	return nil
}

// TriggerManualSync inicia manualmente a geração do relatório; retorna false se já houver uma em andamento
func (s *InstallReportSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Relatório de instalações já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual do relatório de instalações")
	go s.syncInstallReport(context.Background())
	return true
}

// GetStatus retorna o status atual da sincronização
func (s *InstallReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
