package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func semFamily() MetricFamily {
	return MetricFamily{
		Name:       "sem",
		Table:      "sem_daily",
		DateColumn: "date",
		Metrics: []FamilyMetric{
			{Name: "spend", Column: "spend"},
			{Name: "installs", Column: "installs"},
		},
		Ratios: []FamilyRatio{
			{Name: "cost_per_install", Numerator: "spend", Denominator: "installs"},
		},
	}
}

func TestMetricFamily_ApplyRatios(t *testing.T) {
	tests := []struct {
		name     string
		totals   MetricSet
		expected float64
	}{
		{name: "Custo por instalação", totals: MetricSet{"spend": 100, "installs": 3}, expected: 33.3333},
		{name: "Denominador zero resulta em zero", totals: MetricSet{"spend": 100, "installs": 0}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := semFamily().ApplyRatios(tt.totals)

			assert.Equal(t, tt.expected, out["cost_per_install"])
			assert.Equal(t, tt.totals["spend"], out["spend"])
			assert.NotContains(t, tt.totals, "cost_per_install")
		})
	}
}

func TestMetricFamily_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *MetricFamily)
	}{
		{name: "Sem tabela", mutate: func(f *MetricFamily) { f.Table = "" }},
		{name: "Sem métricas", mutate: func(f *MetricFamily) { f.Metrics = nil }},
		{name: "Agregação inválida", mutate: func(f *MetricFamily) { f.Metrics[0].Aggregation = "median" }},
		{name: "Razão com métrica inexistente", mutate: func(f *MetricFamily) { f.Ratios[0].Denominator = "clicks" }},
		{name: "Razão com nome duplicado", mutate: func(f *MetricFamily) { f.Ratios[0].Name = "spend" }},
	}

	require.NoError(t, semFamily().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := semFamily()
			tt.mutate(&f)

			assert.Error(t, f.Validate())
		})
	}
}

func TestFamilyRegistry(t *testing.T) {
	registry, err := NewFamilyRegistry([]MetricFamily{semFamily()})
	require.NoError(t, err)

	family, err := registry.Lookup("sem")
	require.NoError(t, err)
	assert.Equal(t, []string{"spend", "installs", "cost_per_install"}, family.Keys())
	assert.Equal(t, AggregationSum, family.Metrics[0].AggregationOf())

	_, err = registry.Lookup("unknown")
	assert.ErrorIs(t, err, ErrUnknownFamily)

	_, err = NewFamilyRegistry([]MetricFamily{semFamily(), semFamily()})
	assert.Error(t, err)
}
