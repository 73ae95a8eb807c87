package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/install-growth-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeInstallReport = "install-report"
)

// SyncJob é o contrato dos agendadores que podem ser disparados manualmente
type SyncJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	InstallReportSyncService SyncJob
}

func (s CronJobServices) byType(cronType string) (SyncJob, bool) {
	switch cronType {
	case CronJobTypeInstallReport:
		return s.InstallReportSyncService, s.InstallReportSyncService != nil
	default:
		return nil, false
	}
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, ok := services.byType(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: install-report", nil)
			return
		}

		if !job.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSyncRunning, "Cron job já está em execução", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.InstallReportSyncService != nil {
			status[CronJobTypeInstallReport] = services.InstallReportSyncService.GetStatus()
		}

		writeJSON(r.Context(), w, status)
	}
}
