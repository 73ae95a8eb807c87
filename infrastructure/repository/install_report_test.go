package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/install-growth-api/internal/domain"
)

var reportColumns = []string{"id", "report_date", "from_date", "to_date", "breakdown", "growth", "created_at", "updated_at"}

func TestInstallReportRepository_SaveOrUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	report := &domain.InstallReport{
		ID:         "abc123def456",
		ReportDate: day,
		Window:     domain.MustWindow("2024-02-01", "2024-02-01"),
		Breakdown:  domain.InstallBreakdown{TotalInstall: 265},
		Growth:     domain.GrowthResult{"total_install": 0.2326},
	}

	mock.ExpectExec("INSERT INTO install_reports").
		WithArgs("abc123def456", "2024-02-01", "2024-02-01", "2024-02-01", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewInstallReportRepository(db)
	err = repo.SaveOrUpdate(context.Background(), report)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstallReportRepository_SaveOrUpdate_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO install_reports").WillReturnError(errors.New("disk full"))

	repo := NewInstallReportRepository(db)
	err = repo.SaveOrUpdate(context.Background(), &domain.InstallReport{
		ID:     "abc123def456",
		Window: domain.MustWindow("2024-02-01", "2024-02-01"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestInstallReportRepository_ListByDateRange(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 2, 2, 2, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT ir.id, ir.report_date(.+)FROM install_reports ir WHERE (.+) ORDER BY ir.report_date ASC").
		WithArgs("2024-02-01", "2024-02-07").
		WillReturnRows(sqlmock.NewRows(reportColumns).
			AddRow("abc123def456", day, day, day,
				[]byte(`{"total_install":265,"undetected_install":-5}`),
				[]byte(`{"total_install":0.2326}`),
				createdAt, createdAt))

	repo := NewInstallReportRepository(db)
	reports, err := repo.ListByDateRange(context.Background(),
		day, time.Date(2024, 2, 7, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, reports, 1)

	report := reports[0]
	assert.Equal(t, "abc123def456", report.ID)
	assert.Equal(t, domain.MustWindow("2024-02-01", "2024-02-01"), report.Window)
	assert.Equal(t, domain.MustWindow("2024-01-31", "2024-01-31"), report.PreviousWindow)
	assert.Equal(t, int64(265), report.Breakdown.TotalInstall)
	assert.Equal(t, int64(-5), report.Breakdown.UndetectedInstall)
	assert.Equal(t, 0.2326, report.Growth["total_install"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstallReportRepository_GetByDate_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM install_reports ir").
		WithArgs("2024-02-01").
		WillReturnRows(sqlmock.NewRows(reportColumns))

	repo := NewInstallReportRepository(db)
	report, err := repo.GetByDate(context.Background(), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Nil(t, report)
}

func TestInstallReportRepository_DeleteOlderThan(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM install_reports WHERE report_date").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))

	repo := NewInstallReportRepository(db)
	removed, err := repo.DeleteOlderThan(context.Background(), 400)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
