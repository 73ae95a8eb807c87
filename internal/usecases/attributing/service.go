package attributing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/install-growth-api/internal/config"
	"github.com/vfg2006/install-growth-api/internal/domain"
	"github.com/vfg2006/install-growth-api/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// Service orquestra a agregação por canal, a reconciliação e o crescimento de instalações
type Service struct {
	aggregator *SourceAggregator
}

// NewService cria uma nova instância do serviço de atribuição
func NewService(cfg *config.Config, querier DailySourceQuerier) Attributor {
	return &Service{
		aggregator: NewSourceAggregator(
			cfg.Registry.Channels,
			querier,
			cfg.Attribution.MaxConcurrentJobs,
			cfg.Attribution.QueryTimeout(),
		),
	}
}

// NewServiceWithAggregator é usado quando o agregador já foi montado (testes, jobs)
func NewServiceWithAggregator(aggregator *SourceAggregator) *Service {
	return &Service{aggregator: aggregator}
}

// Breakdown busca todos os canais em paralelo e só reconcilia depois que todos terminarem.
// O primeiro erro cancela as demais consultas.
func (s *Service) Breakdown(ctx context.Context, window domain.Window) (domain.InstallBreakdown, error) {
	if err := window.Validate(); err != nil {
		return domain.InstallBreakdown{}, err
	}

	aggregates, err := s.collect(ctx, window)
	if err != nil {
		return domain.InstallBreakdown{}, err
	}

	breakdown := Reconcile(ReconcileInput{
		Window:     window,
		Aggregates: aggregates,
	})
	metrics.RecordReconciliation()

	logrus.WithFields(logrus.Fields{
		"window":        window.String(),
		"total_install": breakdown.TotalInstall,
		"undetected":    breakdown.UndetectedInstall,
	}).Debug("Reconciliação de instalações concluída")

	if breakdown.UndetectedInstall < 0 {
		logrus.WithFields(logrus.Fields{
			"window":     window.String(),
			"undetected": breakdown.UndetectedInstall,
		}).Warn("Instalações não detectadas negativas: relatórios de origem divergentes")
	}

	return breakdown, nil
}

func (s *Service) collect(ctx context.Context, window domain.Window) (map[domain.Channel]domain.SourceAggregate, error) {
	channels := domain.AttributionChannels()
	results := make([]domain.SourceAggregate, len(channels))

	g, gctx := errgroup.WithContext(ctx)
	for i, channel := range channels {
		i, channel := i, channel
		g.Go(func() error {
			aggregate, err := s.aggregator.Aggregate(gctx, channel, window)
			if err != nil {
				return err
			}
			results[i] = aggregate
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logrus.WithError(err).WithField("window", window.String()).Error("Erro ao agregar fontes de instalação")
		return nil, err
	}

	aggregates := make(map[domain.Channel]domain.SourceAggregate, len(results))
	for _, aggregate := range results {
		aggregates[aggregate.Channel] = aggregate
	}
	return aggregates, nil
}

// GetInstallBreakdown retorna o breakdown da janela restrito às chaves pedidas
func (s *Service) GetInstallBreakdown(ctx context.Context, window domain.Window, keys []string) (domain.MetricSet, error) {
	if err := validateInstallKeys(keys); err != nil {
		return nil, err
	}

	breakdown, err := s.Breakdown(ctx, window)
	if err != nil {
		return nil, err
	}

	return domain.ProjectMetrics(breakdown.Metrics(), keys)
}

// GetInstallGrowth calcula a janela atual e a anterior em paralelo e compara as duas
func (s *Service) GetInstallGrowth(ctx context.Context, window domain.Window, keys []string) (*domain.GrowthReport, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}
	if err := validateInstallKeys(keys); err != nil {
		return nil, err
	}

	previousWindow := window.Previous()

	var current, previous domain.InstallBreakdown

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := s.Breakdown(gctx, window)
		current = b
		return err
	})
	g.Go(func() error {
		b, err := s.Breakdown(gctx, previousWindow)
		previous = b
		return err
	})
	if err := g.Wait(); err != nil {
		metrics.RecordGrowth("installs", err)
		return nil, err
	}

	growth, err := domain.CalculateGrowth(current.Metrics(), previous.Metrics())
	metrics.RecordGrowth("installs", err)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular crescimento de instalações")
	}

	return domain.NewGrowthReport("installs", window, current.Metrics(), previous.Metrics(), growth, keys)
}

// GetChannelSeries expõe as séries normalizadas de um único canal
func (s *Service) GetChannelSeries(ctx context.Context, channel domain.Channel, window domain.Window) (domain.SourceAggregate, error) {
	return s.aggregator.Aggregate(ctx, channel, window)
}

func validateInstallKeys(keys []string) error {
	known := make(map[string]bool)
	for _, k := range domain.InstallMetricKeys() {
		known[k] = true
	}
	for _, k := range keys {
		if !known[k] {
			return errors.Wrapf(domain.ErrUnknownMetric, "métrica %s", k)
		}
	}
	return nil
}
