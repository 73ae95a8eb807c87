package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/install-growth-api/infrastructure/repository/mocks"
	"github.com/vfg2006/install-growth-api/internal/domain"
	attributingmocks "github.com/vfg2006/install-growth-api/internal/usecases/attributing/mocks"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(t *testing.T, retentionDays int) (*InstallReportSyncService, *mocks.MockInstallReportRepository, *attributingmocks.MockAttributor) {
	ctrl := gomock.NewController(t)

	reportRepo := mocks.NewMockInstallReportRepository(ctrl)
	attributor := attributingmocks.NewMockAttributor(ctrl)

	service := &InstallReportSyncService{
		config: InstallReportSyncConfig{
			CronSchedule:  "0 3 * * *",
			SyncEnabled:   true,
			RetentionDays: retentionDays,
		},
		reportRepo: reportRepo,
		attributor: attributor,
		// 2 de fevereiro, o relatório é sempre do dia anterior
		now: func() time.Time { return time.Date(2024, 2, 2, 10, 30, 0, 0, time.UTC) },
	}

	return service, reportRepo, attributor
}

func TestInstallReportSyncService_processInstallReport(t *testing.T) {
	window := domain.MustWindow("2024-02-01", "2024-02-01")
	breakdown := domain.InstallBreakdown{GoogleInstall: 100, TotalInstall: 265}
	growth := &domain.GrowthReport{
		Window:         window,
		PreviousWindow: window.Previous(),
		Current:        breakdown.Metrics(),
		Previous:       domain.InstallBreakdown{GoogleInstall: 50, TotalInstall: 215}.Metrics(),
		Growth:         domain.GrowthResult{"google_install": 1, "total_install": 0.2326},
	}

	t.Run("Salva o relatório de ontem e remove os antigos", func(t *testing.T) {
		service, reportRepo, attributor := newTestSyncService(t, 400)

		attributor.EXPECT().GetInstallGrowth(gomock.Any(), window, nil).Return(growth, nil)

		var saved *domain.InstallReport
		reportRepo.EXPECT().
			SaveOrUpdate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, report *domain.InstallReport) error {
				saved = report
				return nil
			})
		reportRepo.EXPECT().DeleteOlderThan(gomock.Any(), 400).Return(int64(2), nil)

		err := service.processInstallReport(context.Background())

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Len(t, saved.ID, 12)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), saved.ReportDate)
		assert.Equal(t, window, saved.Window)
		assert.Equal(t, domain.MustWindow("2024-01-31", "2024-01-31"), saved.PreviousWindow)
		assert.Equal(t, breakdown, saved.Breakdown)
		assert.Equal(t, growth.Growth, saved.Growth)
	})

	t.Run("Sem retenção não remove relatórios", func(t *testing.T) {
		service, reportRepo, attributor := newTestSyncService(t, 0)

		attributor.EXPECT().GetInstallGrowth(gomock.Any(), window, nil).Return(growth, nil)
		reportRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, service.processInstallReport(context.Background()))
	})

	t.Run("Falha na limpeza não falha o relatório", func(t *testing.T) {
		service, reportRepo, attributor := newTestSyncService(t, 30)

		attributor.EXPECT().GetInstallGrowth(gomock.Any(), window, nil).Return(growth, nil)
		reportRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
		reportRepo.EXPECT().DeleteOlderThan(gomock.Any(), 30).Return(int64(0), errors.New("lock timeout"))

		assert.NoError(t, service.processInstallReport(context.Background()))
	})

	t.Run("Erro na reconciliação interrompe antes de salvar", func(t *testing.T) {
		service, _, attributor := newTestSyncService(t, 400)

		attributor.EXPECT().GetInstallGrowth(gomock.Any(), window, nil).Return(nil, errors.New("tiktok: timeout"))

		err := service.processInstallReport(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "tiktok")
	})
}

func TestInstallReportSyncService_syncInstallReport_RecordsStatus(t *testing.T) {
	service, _, attributor := newTestSyncService(t, 400)

	attributor.EXPECT().
		GetInstallGrowth(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("erro no banco de dados"))

	service.syncInstallReport(context.Background())

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "erro no banco de dados", status["last_sync_error"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, time.Date(2024, 2, 2, 10, 30, 0, 0, time.UTC), status["last_sync_completed_at"])
}

func TestInstallReportSyncService_TriggerManualSync_AlreadyRunning(t *testing.T) {
	service, _, _ := newTestSyncService(t, 400)
	service.syncRunning = true

	assert.False(t, service.TriggerManualSync())
	assert.Equal(t, true, service.GetStatus()["sync_running"])
}

func TestInstallReportSyncService_Start_Disabled(t *testing.T) {
	service, _, _ := newTestSyncService(t, 400)
	service.config.SyncEnabled = false

	assert.NoError(t, service.Start(context.Background()))
}
