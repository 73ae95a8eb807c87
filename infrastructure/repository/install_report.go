package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/install-growth-api/infrastructure/database/postgres"
	"github.com/vfg2006/install-growth-api/internal/domain"
)

//go:generate mockgen -source=install_report.go -destination=mocks/install_report.go -package=mocks

const (
	installReportsTable = "install_reports ir"
	installReportsCols  = "ir.id, ir.report_date, ir.from_date, ir.to_date, ir.breakdown, ir.growth, ir.created_at, ir.updated_at"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type InstallReportRepository interface {
	SaveOrUpdate(ctx context.Context, report *domain.InstallReport) error
	GetByDate(ctx context.Context, date time.Time) (*domain.InstallReport, error)
	ListByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.InstallReport, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type installReportRepository struct {
	conn postgres.Queryer
}

func NewInstallReportRepository(conn postgres.Queryer) InstallReportRepository {
	return &installReportRepository{
		conn: conn,
	}
}

func (r *installReportRepository) SaveOrUpdate(ctx context.Context, report *domain.InstallReport) error {
	breakdownJSON, err := json.Marshal(report.Breakdown)
	if err != nil {
		return fmt.Errorf("erro ao serializar Breakdown para JSON: %w", err)
	}

	growthJSON, err := json.Marshal(report.Growth)
	if err != nil {
		return fmt.Errorf("erro ao serializar Growth para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("install_reports").
		Columns("id", "report_date", "from_date", "to_date", "breakdown", "growth").
		Values(
			report.ID,
			report.ReportDate.Format(time.DateOnly),
			report.Window.From.Format(time.DateOnly),
			report.Window.To.Format(time.DateOnly),
			breakdownJSON,
			growthJSON,
		).
		Suffix(`
			ON CONFLICT (report_date) DO UPDATE SET
				from_date = EXCLUDED.from_date,
				to_date = EXCLUDED.to_date,
				breakdown = EXCLUDED.breakdown,
				growth = EXCLUDED.growth,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *installReportRepository) GetByDate(ctx context.Context, date time.Time) (*domain.InstallReport, error) {
	query, args, err := squirrel.
		Select(installReportsCols).
		From(installReportsTable).
		Where(squirrel.Eq{"ir.report_date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report, err := r.scanReport(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
	}

	return report, nil
}

func (r *installReportRepository) ListByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.InstallReport, error) {
	query, args, err := squirrel.
		Select(installReportsCols).
		From(installReportsTable).
		Where(squirrel.GtOrEq{"ir.report_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ir.report_date": endDate.Format(time.DateOnly)}).
		OrderBy("ir.report_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.InstallReport, 0)
	for rows.Next() {
		report, err := r.scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear relatórios: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *installReportRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("install_reports").
		Where(squirrel.Lt{"report_date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *installReportRepository) scanReport(row rowScanner) (*domain.InstallReport, error) {
	report := &domain.InstallReport{}
	var breakdownJSON, growthJSON []byte
	var fromDate, toDate time.Time

	err := row.Scan(
		&report.ID,
		&report.ReportDate,
		&fromDate,
		&toDate,
		&breakdownJSON,
		&growthJSON,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	report.ReportDate = domain.DateOf(report.ReportDate)
	report.Window = domain.Window{From: domain.DateOf(fromDate), To: domain.DateOf(toDate)}
	report.PreviousWindow = report.Window.Previous()

	if len(breakdownJSON) > 0 {
		if err := json.Unmarshal(breakdownJSON, &report.Breakdown); err != nil {
			return nil, fmt.Errorf("erro ao deserializar breakdown: %w", err)
		}
	}
	if len(growthJSON) > 0 {
		if err := json.Unmarshal(growthJSON, &report.Growth); err != nil {
			return nil, fmt.Errorf("erro ao deserializar growth: %w", err)
		}
	}

	return report, nil
}
