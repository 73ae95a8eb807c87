package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateGrowth(t *testing.T) {
	tests := []struct {
		name     string
		current  MetricSet
		previous MetricSet
		expected GrowthResult
	}{
		{
			name:     "Crescimento e queda",
			current:  MetricSet{"a": 150, "b": 50},
			previous: MetricSet{"a": 100, "b": 200},
			expected: GrowthResult{"a": 0.5, "b": -0.75},
		},
		{
			name:     "Anterior zerado resulta em zero",
			current:  MetricSet{"a": 10, "b": 0},
			previous: MetricSet{"a": 0, "b": 0},
			expected: GrowthResult{"a": 0, "b": 0},
		},
		{
			name:     "Arredondamento em quatro casas",
			current:  MetricSet{"a": 2},
			previous: MetricSet{"a": 3},
			expected: GrowthResult{"a": -0.3333},
		},
		{
			name:     "Anterior negativo",
			current:  MetricSet{"undetected_install": -20},
			previous: MetricSet{"undetected_install": -10},
			expected: GrowthResult{"undetected_install": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			growth, err := CalculateGrowth(tt.current, tt.previous)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, growth)
		})
	}
}

func TestCalculateGrowth_Identity(t *testing.T) {
	x := MetricSet{"total_install": 265, "android_install": 220, "undetected_install": -3, "zero": 0}

	growth, err := CalculateGrowth(x, x)

	require.NoError(t, err)
	require.Len(t, growth, len(x))
	for k := range x {
		assert.Equal(t, 0.0, growth[k], k)
	}
}

func TestCalculateGrowth_KeyMismatch(t *testing.T) {
	_, err := CalculateGrowth(MetricSet{"a": 1, "b": 2}, MetricSet{"a": 1, "c": 2})

	assert.ErrorIs(t, err, ErrKeyMismatch)
	assert.Contains(t, err.Error(), "b, c")
}

func TestProjectMetrics(t *testing.T) {
	full := MetricSet{"a": 1, "b": 2, "c": 3}

	t.Run("Sem chaves retorna cópia completa", func(t *testing.T) {
		out, err := ProjectMetrics(full, nil)

		require.NoError(t, err)
		assert.Equal(t, full, out)

		out["a"] = 99
		assert.Equal(t, 1.0, full["a"])
	})

	t.Run("Restringe às chaves pedidas", func(t *testing.T) {
		out, err := ProjectMetrics(full, []string{"c", "a"})

		require.NoError(t, err)
		assert.Equal(t, MetricSet{"a": 1, "c": 3}, out)
	})

	t.Run("Chave inexistente", func(t *testing.T) {
		_, err := ProjectMetrics(full, []string{"a", "z"})

		assert.ErrorIs(t, err, ErrUnknownMetric)
	})

	t.Run("Funciona com GrowthResult", func(t *testing.T) {
		out, err := ProjectMetrics(GrowthResult{"a": 0.5, "b": 0}, []string{"a"})

		require.NoError(t, err)
		assert.Equal(t, GrowthResult{"a": 0.5}, out)
	})
}

func TestNewGrowthReport(t *testing.T) {
	w := MustWindow("2024-02-01", "2024-02-07")
	current := MetricSet{"a": 150, "b": 10}
	previous := MetricSet{"a": 100, "b": 10}
	growth, err := CalculateGrowth(current, previous)
	require.NoError(t, err)

	report, err := NewGrowthReport("installs", w, current, previous, growth, []string{"a"})

	require.NoError(t, err)
	assert.Equal(t, "installs", report.Family)
	assert.Equal(t, MustWindow("2024-01-25", "2024-01-31"), report.PreviousWindow)
	assert.Equal(t, MetricSet{"a": 150}, report.Current)
	assert.Equal(t, MetricSet{"a": 100}, report.Previous)
	assert.Equal(t, GrowthResult{"a": 0.5}, report.Growth)
}
