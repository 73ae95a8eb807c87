package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/install-growth-api/pkg/apiErrors"
)

type fakeSyncJob struct {
	running   bool
	triggered int
}

func (f *fakeSyncJob) TriggerManualSync() bool {
	if f.running {
		return false
	}
	f.triggered++
	return true
}

func (f *fakeSyncJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": f.running}
}

func TestRunCronJob(t *testing.T) {
	t.Run("Dispara o relatório de instalações", func(t *testing.T) {
		job := &fakeSyncJob{}

		rec := serve(t, http.MethodPost, "/v1/cron/install-report/run", CronJobs(CronJobServices{InstallReportSyncService: job})...)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, 1, job.triggered)
	})

	t.Run("Já em execução", func(t *testing.T) {
		job := &fakeSyncJob{running: true}

		rec := serve(t, http.MethodPost, "/v1/cron/install-report/run", CronJobs(CronJobServices{InstallReportSyncService: job})...)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrSyncRunning, decodeError(t, rec).Code)
	})

	t.Run("Tipo desconhecido", func(t *testing.T) {
		rec := serve(t, http.MethodPost, "/v1/cron/meta-insights/run", CronJobs(CronJobServices{InstallReportSyncService: &fakeSyncJob{}})...)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})
}

func TestGetCronStatus(t *testing.T) {
	job := &fakeSyncJob{running: true}

	rec := serve(t, http.MethodGet, "/v1/cron/status", CronJobs(CronJobServices{InstallReportSyncService: job})...)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body[CronJobTypeInstallReport]["sync_running"])
}
