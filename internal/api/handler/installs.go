package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/install-growth-api/internal/domain"
	"github.com/vfg2006/install-growth-api/internal/usecases/attributing"
	"github.com/vfg2006/install-growth-api/pkg/apiErrors"
	"github.com/vfg2006/install-growth-api/pkg/log"
)

// ChannelSeriesResponse expõe as séries diárias de um canal, por coluna
type ChannelSeriesResponse struct {
	Channel domain.Channel                  `json:"channel"`
	Window  domain.Window                   `json:"window"`
	Series  map[string][]domain.SeriesPoint `json:"series"`
	Totals  map[string]int64                `json:"totals"`
}

func GetInstallBreakdown(service attributing.Attributor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		window, err := parseWindow(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("installs: janela inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidWindow, err.Error(), nil)
			return
		}
		keys := parseMetricKeys(r)

		logger.WithFields(log.Fields{
			"window":  window.String(),
			"metrics": keys,
		}).Info("installs: calculando breakdown de instalações")

		breakdown, err := service.GetInstallBreakdown(r.Context(), window, keys)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		if isEmptyMetrics(breakdown) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhuma instalação encontrada para a janela", window)
			return
		}

		writeJSON(r.Context(), w, breakdown)
	})
}

func GetInstallGrowth(service attributing.Attributor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		window, err := parseWindow(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("installs-growth: janela inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidWindow, err.Error(), nil)
			return
		}
		keys := parseMetricKeys(r)

		report, err := service.GetInstallGrowth(r.Context(), window, keys)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		if isEmptyMetrics(report.Current) && isEmptyMetrics(report.Previous) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhuma instalação encontrada nas duas janelas", nil)
			return
		}

		logger.WithFields(log.Fields{
			"window":          window.String(),
			"previous_window": report.PreviousWindow.String(),
		}).Info("installs-growth: crescimento calculado com sucesso")

		writeJSON(r.Context(), w, report)
	})
}

func GetChannelSeries(service attributing.Attributor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		channel := domain.Channel(httprouter.ParamsFromContext(r.Context()).ByName("channel"))

		window, err := parseWindow(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidWindow, err.Error(), nil)
			return
		}

		aggregate, err := service.GetChannelSeries(r.Context(), channel, window)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		response := ChannelSeriesResponse{
			Channel: aggregate.Channel,
			Window:  aggregate.Window,
			Series:  make(map[string][]domain.SeriesPoint, len(aggregate.Series)),
			Totals:  make(map[string]int64, len(aggregate.Series)),
		}
		for name, series := range aggregate.Series {
			response.Series[name] = series.Points()
			response.Totals[name] = series.Total()
		}

		writeJSON(r.Context(), w, response)
	})
}
