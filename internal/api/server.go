package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/install-growth-api/internal/api/handler"
	"github.com/vfg2006/install-growth-api/internal/api/handler/router"
	"github.com/vfg2006/install-growth-api/internal/config"
	"github.com/vfg2006/install-growth-api/internal/usecases/attributing"
	"github.com/vfg2006/install-growth-api/internal/usecases/growing"
	"github.com/vfg2006/install-growth-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Dependencies agrupa os serviços expostos pela API
type Dependencies struct {
	DB                       handler.Pinger
	Attributor               attributing.Attributor
	Grower                   growing.Grower
	Reports                  handler.InstallReportLister
	InstallReportSyncService handler.SyncJob
}

// NewHandler monta o router com todas as rotas e a cadeia de middlewares
func NewHandler(cfg *config.Config, deps Dependencies) http.Handler {
	cronServices := handler.CronJobServices{
		InstallReportSyncService: deps.InstallReportSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(deps.DB)...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Installs(deps.Attributor)...),
		router.WithRoutes(handler.Growth(deps.Grower)...),
		router.WithRoutes(handler.Reports(deps.Reports)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.Recover(),
		middleware.RequestLogger(cfg.Server.SlowRequestThreshold),
		middleware.Cors(cfg.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, deps),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
