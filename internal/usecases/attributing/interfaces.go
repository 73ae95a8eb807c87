package attributing

import (
	"context"

	"github.com/vfg2006/install-growth-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// DailySourceQuerier lê as contagens diárias já somadas por data de uma fonte
type DailySourceQuerier interface {
	SumByDate(ctx context.Context, source domain.SourceDefinition, window domain.Window) ([]domain.DailyRow, error)
}

// Attributor é a interface consumida pela camada HTTP e pelo agendador
type Attributor interface {
	// Breakdown reconcilia todos os canais de uma janela
	Breakdown(ctx context.Context, window domain.Window) (domain.InstallBreakdown, error)

	// GetInstallBreakdown retorna o breakdown como mapa, opcionalmente restrito às chaves pedidas
	GetInstallBreakdown(ctx context.Context, window domain.Window, keys []string) (domain.MetricSet, error)

	// GetInstallGrowth compara a janela com a janela anterior de mesmo tamanho
	GetInstallGrowth(ctx context.Context, window domain.Window, keys []string) (*domain.GrowthReport, error)

	// GetChannelSeries retorna as séries diárias normalizadas de um canal
	GetChannelSeries(ctx context.Context, channel domain.Channel, window domain.Window) (domain.SourceAggregate, error)
}
