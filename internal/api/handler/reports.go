package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/install-growth-api/internal/domain"
	"github.com/vfg2006/install-growth-api/pkg/apiErrors"
	"github.com/vfg2006/install-growth-api/pkg/log"
)

// InstallReportLister lê os relatórios diários já persistidos
type InstallReportLister interface {
	ListByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.InstallReport, error)
}

func ListInstallReports(reports InstallReportLister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		window, err := parseWindow(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidWindow, err.Error(), nil)
			return
		}

		result, err := reports.ListByDateRange(r.Context(), window.From, window.To)
		if err != nil {
			logger.WithError(err).Error("install-reports: erro ao buscar relatórios")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar relatórios", nil)
			return
		}

		if len(result) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum relatório encontrado para a janela", window)
			return
		}

		logger.WithFields(log.Fields{
			"window":  window.String(),
			"reports": len(result),
		}).Info("install-reports: relatórios recuperados com sucesso")

		writeJSON(r.Context(), w, result)
	})
}
