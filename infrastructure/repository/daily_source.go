package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/install-growth-api/infrastructure/database/postgres"
	"github.com/vfg2006/install-growth-api/internal/domain"
)

//go:generate mockgen -source=daily_source.go -destination=mocks/daily_source.go -package=mocks

// DailySourceRepository soma por data as colunas de qualquer fonte do registro de canais
type DailySourceRepository interface {
	SumByDate(ctx context.Context, source domain.SourceDefinition, window domain.Window) ([]domain.DailyRow, error)
}

type dailySourceRepository struct {
	conn postgres.Queryer
}

func NewDailySourceRepository(conn postgres.Queryer) DailySourceRepository {
	return &dailySourceRepository{
		conn: conn,
	}
}

func (r *dailySourceRepository) SumByDate(ctx context.Context, source domain.SourceDefinition, window domain.Window) ([]domain.DailyRow, error) {
	query, args, err := buildSumByDateQuery(source, window)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	names := source.ColumnNames()
	result := make([]domain.DailyRow, 0)
	for rows.Next() {
		var day time.Time
		values := make([]int64, len(names))

		dest := make([]any, 0, len(names)+1)
		dest = append(dest, &day)
		for i := range values {
			dest = append(dest, &values[i])
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha da fonte %s: %w", source.Channel, err)
		}

		row := domain.DailyRow{
			Date:   domain.DateOf(day),
			Values: make(map[string]int64, len(names)),
		}
		for i, name := range names {
			row.Values[name] = values[i]
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

// buildSumByDateQuery monta: SELECT date, SUM(col)... WHERE date entre a janela [AND campanha = ANY(...)] GROUP BY date
func buildSumByDateQuery(source domain.SourceDefinition, window domain.Window) (string, []any, error) {
	dateColumn := pq.QuoteIdentifier(source.DateColumn)

	columns := make([]string, 0, len(source.Columns)+1)
	columns = append(columns, dateColumn)
	for _, c := range source.Columns {
		columns = append(columns, fmt.Sprintf("COALESCE(SUM(%s), 0) AS %s",
			pq.QuoteIdentifier(c.Column), pq.QuoteIdentifier(c.Name)))
	}

	builder := squirrel.
		Select(columns...).
		From(pq.QuoteIdentifier(source.Table)).
		Where(squirrel.GtOrEq{dateColumn: window.From.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{dateColumn: window.To.Format(time.DateOnly)})

	if len(source.Campaigns) > 0 {
		builder = builder.Where(
			squirrel.Expr(pq.QuoteIdentifier(source.CampaignColumn)+" = ANY(?)", pq.Array(source.Campaigns)),
		)
	}

	return builder.
		GroupBy(dateColumn).
		OrderBy(dateColumn + " ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
