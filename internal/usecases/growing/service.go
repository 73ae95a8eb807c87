package growing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/install-growth-api/internal/domain"
	"github.com/vfg2006/install-growth-api/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// Service calcula o crescimento das famílias de métricas de negócio
type Service struct {
	families *domain.FamilyRegistry
	querier  FamilyQuerier
}

// NewService cria uma nova instância do serviço de crescimento
func NewService(families *domain.FamilyRegistry, querier FamilyQuerier) Grower {
	return &Service{
		families: families,
		querier:  querier,
	}
}

func (s *Service) Families() []string {
	return s.families.Names()
}

func (s *Service) GetFamilyTotals(ctx context.Context, name string, window domain.Window, keys []string) (domain.MetricSet, error) {
	family, err := s.lookup(name, window, keys)
	if err != nil {
		return nil, err
	}

	totals, err := s.totals(ctx, family, window)
	if err != nil {
		return nil, err
	}

	return domain.ProjectMetrics(totals, keys)
}

func (s *Service) GetFamilyGrowth(ctx context.Context, name string, window domain.Window, keys []string) (*domain.GrowthReport, error) {
	family, err := s.lookup(name, window, keys)
	if err != nil {
		return nil, err
	}

	var current, previous domain.MetricSet

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := s.totals(gctx, family, window)
		current = m
		return err
	})
	g.Go(func() error {
		m, err := s.totals(gctx, family, window.Previous())
		previous = m
		return err
	})
	if err := g.Wait(); err != nil {
		metrics.RecordGrowth(family.Name, err)
		return nil, err
	}

	growth, err := domain.CalculateGrowth(current, previous)
	metrics.RecordGrowth(family.Name, err)
	if err != nil {
		logrus.WithError(err).WithField("family", family.Name).Error("Totais das janelas com chaves divergentes")
		return nil, errors.Wrapf(err, "erro ao calcular crescimento da família %s", family.Name)
	}

	return domain.NewGrowthReport(family.Name, window, current, previous, growth, keys)
}

// lookup valida a janela, a família e as chaves antes de qualquer consulta
func (s *Service) lookup(name string, window domain.Window, keys []string) (domain.MetricFamily, error) {
	if err := window.Validate(); err != nil {
		return domain.MetricFamily{}, err
	}

	family, err := s.families.Lookup(name)
	if err != nil {
		return domain.MetricFamily{}, err
	}

	known := make(map[string]bool)
	for _, k := range family.Keys() {
		known[k] = true
	}
	for _, k := range keys {
		if !known[k] {
			return domain.MetricFamily{}, errors.Wrapf(domain.ErrUnknownMetric, "família %s, métrica %s", family.Name, k)
		}
	}

	return family, nil
}

// totals completa com zero as métricas sem valor e calcula as razões
func (s *Service) totals(ctx context.Context, family domain.MetricFamily, window domain.Window) (domain.MetricSet, error) {
	raw, err := s.querier.Totals(ctx, family, window)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao consultar totais da família %s", family.Name)
	}

	filled := make(domain.MetricSet, len(family.Metrics))
	for _, m := range family.Metrics {
		filled[m.Name] = raw[m.Name]
	}

	return family.ApplyRatios(filled), nil
}
