package handler

import (
	"net/http"

	"github.com/vfg2006/install-growth-api/internal/api/handler/router"
	"github.com/vfg2006/install-growth-api/internal/usecases/attributing"
	"github.com/vfg2006/install-growth-api/internal/usecases/growing"
	"github.com/vfg2006/install-growth-api/pkg/metrics"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Installs(service attributing.Attributor) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/installs",
			Method:  http.MethodGet,
			Handler: GetInstallBreakdown(service),
		},
		{
			Path:    "/v1/installs/growth",
			Method:  http.MethodGet,
			Handler: GetInstallGrowth(service),
		},
		{
			Path:    "/v1/installs/channels/:channel",
			Method:  http.MethodGet,
			Handler: GetChannelSeries(service),
		},
	}
}

func Growth(service growing.Grower) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/growth",
			Method:  http.MethodGet,
			Handler: ListFamilies(service),
		},
		{
			Path:    "/v1/growth/:family",
			Method:  http.MethodGet,
			Handler: GetFamilyGrowth(service),
		},
		{
			Path:    "/v1/growth/:family/totals",
			Method:  http.MethodGet,
			Handler: GetFamilyTotals(service),
		},
	}
}

func Reports(reports InstallReportLister) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/installs",
			Method:  http.MethodGet,
			Handler: ListInstallReports(reports),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
