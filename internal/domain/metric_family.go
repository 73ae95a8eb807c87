package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vfg2006/install-growth-api/pkg/utils"
)

// ErrUnknownFamily indica uma família de métricas que não está no registro
var ErrUnknownFamily = errors.New("unknown metric family")

// Aggregation define como a coluna é agregada na janela
type Aggregation string

const (
	AggregationSum Aggregation = "sum"
	AggregationAvg Aggregation = "avg"
	AggregationMax Aggregation = "max"
)

// FamilyMetric é uma métrica lida diretamente de uma coluna
type FamilyMetric struct {
	Name        string      `yaml:"name"`
	Column      string      `yaml:"column"`
	Aggregation Aggregation `yaml:"aggregation"`
}

// FamilyRatio é uma métrica derivada pela divisão de duas outras métricas da família
type FamilyRatio struct {
	Name        string `yaml:"name"`
	Numerator   string `yaml:"numerator"`
	Denominator string `yaml:"denominator"`
}

// MetricFamily agrupa métricas de negócio lidas de uma mesma tabela (receita, SEO, SEM...)
type MetricFamily struct {
	Name       string         `yaml:"name"`
	Table      string         `yaml:"table"`
	DateColumn string         `yaml:"date_column"`
	Metrics    []FamilyMetric `yaml:"metrics"`
	Ratios     []FamilyRatio  `yaml:"ratios"`
}

func (f MetricFamily) Validate() error {
	if f.Name == "" {
		return errors.New("family: name é obrigatório")
	}
	if f.Table == "" || f.DateColumn == "" {
		return fmt.Errorf("family %s: table e date_column são obrigatórios", f.Name)
	}
	if len(f.Metrics) == 0 {
		return fmt.Errorf("family %s: ao menos uma métrica é obrigatória", f.Name)
	}

	names := make(map[string]bool, len(f.Metrics)+len(f.Ratios))
	for _, m := range f.Metrics {
		if m.Name == "" || m.Column == "" {
			return fmt.Errorf("family %s: métrica com name/column vazio", f.Name)
		}
		switch m.Aggregation {
		case "", AggregationSum, AggregationAvg, AggregationMax:
		default:
			return fmt.Errorf("family %s: agregação inválida para %s: %s", f.Name, m.Name, m.Aggregation)
		}
		if names[m.Name] {
			return fmt.Errorf("family %s: métrica duplicada: %s", f.Name, m.Name)
		}
		names[m.Name] = true
	}
	for _, r := range f.Ratios {
		if !names[r.Numerator] || !names[r.Denominator] {
			return fmt.Errorf("family %s: razão %s referencia métrica inexistente", f.Name, r.Name)
		}
		if names[r.Name] {
			return fmt.Errorf("family %s: métrica duplicada: %s", f.Name, r.Name)
		}
		names[r.Name] = true
	}
	return nil
}

// AggregationOf retorna a agregação da métrica; o padrão é soma
func (m FamilyMetric) AggregationOf() Aggregation {
	if m.Aggregation == "" {
		return AggregationSum
	}
	return m.Aggregation
}

// ApplyRatios devolve um novo mapa com as razões calculadas.
// Denominador zero resulta em zero.
func (f MetricFamily) ApplyRatios(totals MetricSet) MetricSet {
	out := make(MetricSet, len(totals)+len(f.Ratios))
	for k, v := range totals {
		out[k] = v
	}
	for _, r := range f.Ratios {
		out[r.Name] = utils.RoundWithFourDecimalPlace(utils.SafeDivide(totals[r.Numerator], totals[r.Denominator]))
	}
	return out
}

// Keys lista todas as métricas expostas pela família
func (f MetricFamily) Keys() []string {
	keys := make([]string, 0, len(f.Metrics)+len(f.Ratios))
	for _, m := range f.Metrics {
		keys = append(keys, m.Name)
	}
	for _, r := range f.Ratios {
		keys = append(keys, r.Name)
	}
	return keys
}

// FamilyRegistry é o registro imutável de famílias de métricas
type FamilyRegistry struct {
	families map[string]MetricFamily
}

func NewFamilyRegistry(families []MetricFamily) (*FamilyRegistry, error) {
	registry := &FamilyRegistry{families: make(map[string]MetricFamily, len(families))}
	for _, f := range families {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		if _, exists := registry.families[f.Name]; exists {
			return nil, fmt.Errorf("family %s: família duplicada", f.Name)
		}
		f.Metrics = append([]FamilyMetric(nil), f.Metrics...)
		f.Ratios = append([]FamilyRatio(nil), f.Ratios...)
		registry.families[f.Name] = f
	}
	return registry, nil
}

func (r *FamilyRegistry) Lookup(name string) (MetricFamily, error) {
	f, ok := r.families[name]
	if !ok {
		return MetricFamily{}, fmt.Errorf("%w: %s", ErrUnknownFamily, name)
	}
	return f, nil
}

// Names lista as famílias registradas em ordem alfabética
func (r *FamilyRegistry) Names() []string {
	names := make([]string, 0, len(r.families))
	for name := range r.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
