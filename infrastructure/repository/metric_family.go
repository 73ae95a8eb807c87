package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/install-growth-api/infrastructure/database/postgres"
	"github.com/vfg2006/install-growth-api/internal/domain"
)

//go:generate mockgen -source=metric_family.go -destination=mocks/metric_family.go -package=mocks

type MetricFamilyRepository interface {
	Totals(ctx context.Context, family domain.MetricFamily, window domain.Window) (domain.MetricSet, error)
}

type metricFamilyRepository struct {
	conn postgres.Queryer
}

func NewMetricFamilyRepository(conn postgres.Queryer) MetricFamilyRepository {
	return &metricFamilyRepository{
		conn: conn,
	}
}

// Totals agrega cada métrica da família na janela; tabelas sem linhas resultam em zero
func (r *metricFamilyRepository) Totals(ctx context.Context, family domain.MetricFamily, window domain.Window) (domain.MetricSet, error) {
	query, args, err := buildTotalsQuery(family, window)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	values := make([]float64, len(family.Metrics))
	dest := make([]any, len(values))
	for i := range values {
		dest[i] = &values[i]
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(dest...)
	if err != nil {
		if err == sql.ErrNoRows {
			return make(domain.MetricSet), nil
		}
		return nil, fmt.Errorf("erro ao escanear totais da família %s: %w", family.Name, err)
	}

	totals := make(domain.MetricSet, len(family.Metrics))
	for i, m := range family.Metrics {
		totals[m.Name] = values[i]
	}

	return totals, nil
}

func buildTotalsQuery(family domain.MetricFamily, window domain.Window) (string, []any, error) {
	dateColumn := pq.QuoteIdentifier(family.DateColumn)

	columns := make([]string, 0, len(family.Metrics))
	for _, m := range family.Metrics {
		columns = append(columns, fmt.Sprintf("COALESCE(%s(%s), 0) AS %s",
			aggregateFunction(m.AggregationOf()), pq.QuoteIdentifier(m.Column), pq.QuoteIdentifier(m.Name)))
	}

	return squirrel.
		Select(columns...).
		From(pq.QuoteIdentifier(family.Table)).
		Where(squirrel.GtOrEq{dateColumn: window.From.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{dateColumn: window.To.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func aggregateFunction(agg domain.Aggregation) string {
	switch agg {
	case domain.AggregationAvg:
		return "AVG"
	case domain.AggregationMax:
		return "MAX"
	default:
		return "SUM"
	}
}
