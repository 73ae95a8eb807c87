package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/install-growth-api/internal/domain"
	"github.com/vfg2006/install-growth-api/pkg/apiErrors"
	"github.com/vfg2006/install-growth-api/pkg/log"
	"github.com/vfg2006/install-growth-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseWindow lê start_date e end_date (YYYY-MM-DD); os dois são obrigatórios
func parseWindow(r *http.Request) (domain.Window, error) {
	rawStart := r.URL.Query().Get("start_date")
	rawEnd := r.URL.Query().Get("end_date")
	if rawStart == "" || rawEnd == "" {
		return domain.Window{}, fmt.Errorf("%w: start_date e end_date são obrigatórios", domain.ErrInvalidWindow)
	}

	startDate, err := utils.ParseDate(rawStart)
	if err != nil {
		return domain.Window{}, fmt.Errorf("%w: start_date %q", domain.ErrInvalidWindow, rawStart)
	}

	endDate, err := utils.ParseDate(rawEnd)
	if err != nil {
		return domain.Window{}, fmt.Errorf("%w: end_date %q", domain.ErrInvalidWindow, rawEnd)
	}

	return domain.NewWindow(*startDate, *endDate)
}

// parseMetricKeys lê o parâmetro metrics=a,b; vazio significa todas as métricas
func parseMetricKeys(r *http.Request) []string {
	return utils.SplitList(r.URL.Query().Get("metrics"))
}

// writeServiceError traduz os erros dos serviços para os códigos da API
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	logger := log.ForContext(ctx)

	switch {
	case errors.Is(err, domain.ErrInvalidWindow):
		apiErrors.WriteError(w, apiErrors.ErrInvalidWindow, err.Error(), nil)
	case errors.Is(err, domain.ErrUnknownMetric):
		apiErrors.WriteError(w, apiErrors.ErrUnknownMetric, err.Error(), nil)
	case errors.Is(err, domain.ErrUnknownChannel):
		apiErrors.WriteError(w, apiErrors.ErrUnknownChannel, err.Error(), nil)
	case errors.Is(err, domain.ErrUnknownFamily):
		apiErrors.WriteError(w, apiErrors.ErrUnknownFamily, err.Error(), nil)
	case errors.Is(err, domain.ErrKeyMismatch):
		logger.WithError(err).Error("Totais com chaves divergentes")
		apiErrors.WriteError(w, apiErrors.ErrInconsistentData, "Erro ao comparar janelas", nil)
	case errors.Is(err, context.DeadlineExceeded):
		logger.WithError(err).Error("Consulta excedeu o tempo limite")
		apiErrors.WriteError(w, apiErrors.ErrTimeout, "Consulta excedeu o tempo limite", nil)
	default:
		logger.WithError(err).Error("Erro inesperado ao processar requisição")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

// isEmptyMetrics indica um mapa sem nenhum valor diferente de zero
func isEmptyMetrics[M ~map[string]float64](m M) bool {
	for _, v := range m {
		if v != 0 {
			return false
		}
	}
	return true
}

func writeJSON(ctx context.Context, w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao codificar resposta")
	}
}
