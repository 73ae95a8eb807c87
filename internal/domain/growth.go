package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vfg2006/install-growth-api/pkg/utils"
)

var (
	// ErrKeyMismatch indica mapas de métricas com chaves diferentes na comparação de crescimento
	ErrKeyMismatch = errors.New("metric key mismatch")
	// ErrUnknownMetric indica uma métrica solicitada que não existe no mapa
	ErrUnknownMetric = errors.New("unknown metric")
)

// MetricSet é um mapa de nome de métrica para valor numérico
type MetricSet map[string]float64

// GrowthResult é um mapa de nome de métrica para razão de crescimento (0.25 = +25%)
type GrowthResult map[string]float64

// CalculateGrowth compara duas janelas métrica a métrica.
// Quando o valor anterior é zero o crescimento é zero.
func CalculateGrowth(current, previous MetricSet) (GrowthResult, error) {
	if missing := keyDiff(current, previous); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrKeyMismatch, strings.Join(missing, ", "))
	}

	growth := make(GrowthResult, len(current))
	for key, cur := range current {
		prev := previous[key]
		if prev == 0 {
			growth[key] = 0
			continue
		}
		growth[key] = utils.RoundWithFourDecimalPlace((cur - prev) / prev)
	}

	return growth, nil
}

// keyDiff retorna as chaves presentes em apenas um dos mapas
func keyDiff(a, b MetricSet) []string {
	diff := make([]string, 0)
	for k := range a {
		if _, ok := b[k]; !ok {
			diff = append(diff, k)
		}
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			diff = append(diff, k)
		}
	}
	sort.Strings(diff)
	return diff
}

// ProjectMetrics restringe o mapa às chaves pedidas; sem chaves devolve uma cópia completa
func ProjectMetrics[M ~map[string]float64](m M, keys []string) (M, error) {
	if len(keys) == 0 {
		out := make(M, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, nil
	}

	out := make(M, len(keys))
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, k)
		}
		out[k] = v
	}
	return out, nil
}

// GrowthReport junta os totais das duas janelas e o crescimento entre elas
type GrowthReport struct {
	Family         string       `json:"family"`
	Window         Window       `json:"window"`
	PreviousWindow Window       `json:"previous_window"`
	Current        MetricSet    `json:"current"`
	Previous       MetricSet    `json:"previous"`
	Growth         GrowthResult `json:"growth"`
}

// NewGrowthReport monta o relatório aplicando a mesma projeção de chaves nos três mapas
func NewGrowthReport(
	family string,
	window Window,
	current, previous MetricSet,
	growth GrowthResult,
	keys []string,
) (*GrowthReport, error) {
	projectedCurrent, err := ProjectMetrics(current, keys)
	if err != nil {
		return nil, err
	}
	projectedPrevious, err := ProjectMetrics(previous, keys)
	if err != nil {
		return nil, err
	}
	projectedGrowth, err := ProjectMetrics(growth, keys)
	if err != nil {
		return nil, err
	}

	return &GrowthReport{
		Family:         family,
		Window:         window,
		PreviousWindow: window.Previous(),
		Current:        projectedCurrent,
		Previous:       projectedPrevious,
		Growth:         projectedGrowth,
	}, nil
}
