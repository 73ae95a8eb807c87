package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/install-growth-api/internal/usecases/growing"
	"github.com/vfg2006/install-growth-api/pkg/apiErrors"
	"github.com/vfg2006/install-growth-api/pkg/log"
)

// ListFamilies retorna as famílias de métricas cadastradas no registro
func ListFamilies(service growing.Grower) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, map[string]any{
			"families": service.Families(),
		})
	})
}

func GetFamilyTotals(service growing.Grower) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		family := httprouter.ParamsFromContext(r.Context()).ByName("family")

		window, err := parseWindow(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidWindow, err.Error(), nil)
			return
		}

		totals, err := service.GetFamilyTotals(r.Context(), family, window, parseMetricKeys(r))
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		if isEmptyMetrics(totals) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum dado encontrado para a janela", window)
			return
		}

		writeJSON(r.Context(), w, totals)
	})
}

func GetFamilyGrowth(service growing.Grower) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		family := httprouter.ParamsFromContext(r.Context()).ByName("family")

		window, err := parseWindow(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"family": family,
				"error":  err.Error(),
			}).Warn("growth: janela inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidWindow, err.Error(), nil)
			return
		}

		report, err := service.GetFamilyGrowth(r.Context(), family, window, parseMetricKeys(r))
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		if isEmptyMetrics(report.Current) && isEmptyMetrics(report.Previous) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum dado encontrado nas duas janelas", nil)
			return
		}

		logger.WithFields(log.Fields{
			"family": family,
			"window": window.String(),
		}).Info("growth: crescimento calculado com sucesso")

		writeJSON(r.Context(), w, report)
	})
}
