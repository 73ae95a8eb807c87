package attributing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/install-growth-api/internal/domain"
	"github.com/vfg2006/install-growth-api/pkg/metrics"
)

// SourceAggregator monta as séries diárias completas de qualquer canal do registro
type SourceAggregator struct {
	registry     *domain.ChannelRegistry
	querier      DailySourceQuerier
	queryTimeout time.Duration
	// semáforo que limita as normalizações simultâneas
	slots chan struct{}
}

func NewSourceAggregator(
	registry *domain.ChannelRegistry,
	querier DailySourceQuerier,
	maxConcurrent int,
	queryTimeout time.Duration,
) *SourceAggregator {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &SourceAggregator{
		registry:     registry,
		querier:      querier,
		queryTimeout: queryTimeout,
		slots:        make(chan struct{}, maxConcurrent),
	}
}

// Aggregate consulta a fonte do canal e devolve uma série por coluna cobrindo toda a janela.
// Uma fonte sem linhas resulta em séries zeradas, nunca em erro.
func (a *SourceAggregator) Aggregate(ctx context.Context, channel domain.Channel, window domain.Window) (domain.SourceAggregate, error) {
	if err := window.Validate(); err != nil {
		return domain.SourceAggregate{}, err
	}

	source, err := a.registry.Lookup(channel)
	if err != nil {
		return domain.SourceAggregate{}, err
	}

	rows, err := a.query(ctx, source, window)
	if err != nil {
		return domain.SourceAggregate{}, errors.Wrapf(err, "erro ao consultar fonte %s", channel)
	}

	// Adquirir uma vaga no semáforo para a normalização
	select {
	case a.slots <- struct{}{}:
	case <-ctx.Done():
		return domain.SourceAggregate{}, ctx.Err()
	}
	defer func() { <-a.slots }()

	if len(rows) == 0 {
		logrus.WithFields(logrus.Fields{
			"channel": channel,
			"window":  window.String(),
		}).Debug("Fonte sem linhas na janela, usando série zerada")
	}

	return normalize(source, window, rows), nil
}

func (a *SourceAggregator) query(ctx context.Context, source domain.SourceDefinition, window domain.Window) ([]domain.DailyRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if a.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.queryTimeout)
		defer cancel()
	}

	startedAt := time.Now()
	rows, err := a.querier.SumByDate(ctx, source, window)
	metrics.RecordSourceQuery(string(source.Channel), err, time.Since(startedAt))

	return rows, err
}

// normalize soma as linhas por data e coluna e preenche com zero as datas sem dado
func normalize(source domain.SourceDefinition, window domain.Window, rows []domain.DailyRow) domain.SourceAggregate {
	names := source.ColumnNames()

	counts := make(map[string]map[time.Time]int64, len(names))
	for _, name := range names {
		counts[name] = make(map[time.Time]int64)
	}

	for _, row := range rows {
		date := domain.DateOf(row.Date)
		if !window.Contains(date) {
			continue
		}
		for _, name := range names {
			// uma linha sem a coluna ainda marca a data como reportada
			counts[name][date] += row.Values[name]
		}
	}

	series := make(map[string]domain.SourceSeries, len(names))
	for _, name := range names {
		series[name] = domain.NewSourceSeries(window, counts[name])
	}

	return domain.SourceAggregate{
		Channel: source.Channel,
		Window:  window,
		Series:  series,
	}
}
