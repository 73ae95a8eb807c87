package growing

import (
	"context"

	"github.com/vfg2006/install-growth-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// FamilyQuerier lê os totais agregados das métricas de uma família na janela
type FamilyQuerier interface {
	Totals(ctx context.Context, family domain.MetricFamily, window domain.Window) (domain.MetricSet, error)
}

// Grower é a interface consumida pela camada HTTP
type Grower interface {
	// Families lista as famílias de métricas disponíveis
	Families() []string

	// GetFamilyTotals retorna os totais da família na janela, com as razões já calculadas
	GetFamilyTotals(ctx context.Context, family string, window domain.Window, keys []string) (domain.MetricSet, error)

	// GetFamilyGrowth compara a janela com a janela anterior de mesmo tamanho
	GetFamilyGrowth(ctx context.Context, family string, window domain.Window, keys []string) (*domain.GrowthReport, error)
}
