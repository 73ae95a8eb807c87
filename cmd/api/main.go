package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/install-growth-api/infrastructure/database/postgres"
	"github.com/vfg2006/install-growth-api/infrastructure/repository"
	"github.com/vfg2006/install-growth-api/internal/api"
	"github.com/vfg2006/install-growth-api/internal/config"
	"github.com/vfg2006/install-growth-api/internal/scheduler"
	"github.com/vfg2006/install-growth-api/internal/usecases/attributing"
	"github.com/vfg2006/install-growth-api/internal/usecases/growing"
	"github.com/vfg2006/install-growth-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	logrus.WithFields(logrus.Fields{
		"channels": cfg.Registry.Channels.Channels(),
		"families": cfg.Registry.Families.Names(),
	}).Info("Registro de fontes carregado")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	dailySourceRepo := repository.NewDailySourceRepository(pgConn)
	metricFamilyRepo := repository.NewMetricFamilyRepository(pgConn)
	installReportRepo := repository.NewInstallReportRepository(pgConn)

	attributor := attributing.NewService(cfg, dailySourceRepo)
	grower := growing.NewService(cfg.Registry.Families, metricFamilyRepo)

	installReportSyncService := scheduler.NewInstallReportSyncService(
		installReportRepo,
		attributor,
		cfg,
	)

	if err := installReportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório de instalações")
	} else {
		logrus.Info("Agendador do relatório de instalações iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		DB:                       pgConn,
		Attributor:               attributor,
		Grower:                   grower,
		Reports:                  installReportRepo,
		InstallReportSyncService: installReportSyncService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource garante que o .env ao lado do binário seja encontrado em desenvolvimento
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
