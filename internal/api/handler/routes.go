package handler

import (
	"net/http"

	"github.com/vfg2006/smartvend/internal/api/handler/router"
	"github.com/vfg2006/smartvend/internal/presentation"
	"github.com/vfg2006/smartvend/internal/usecases/analyzing"
	"github.com/vfg2006/smartvend/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// DashboardPages expõe a página HTML: formulário em "/" e relatório em "/dashboard"
func DashboardPages(service analyzing.Analyzer, dashboard *presentation.Dashboard, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: UploadForm(dashboard),
		},
		{
			Path:        "/dashboard",
			Method:      http.MethodPost,
			Handler:     Dashboard(service, dashboard),
			Middlewares: []func(http.Handler) http.Handler{middleware.MaxBodySize(maxUploadBytes)},
		},
	}
}

func Analysis(service analyzing.Analyzer, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analysis",
			Method:      http.MethodPost,
			Handler:     AnalyzeSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MaxBodySize(maxUploadBytes)},
		},
	}
}

func CronJobs(syncer ReportSyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/jobs/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(syncer),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(syncer),
		},
	}
}

// Metrics expõe o handler do Prometheus
func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}
