package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/install-growth-api/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed registry.yaml
var defaultRegistry []byte

// registryFile é o formato do arquivo YAML do registro
type registryFile struct {
	Channels []domain.SourceDefinition `yaml:"channels"`
	Families []domain.MetricFamily     `yaml:"families"`
}

// Registry contém os registros validados de canais e famílias de métricas
type Registry struct {
	Channels *domain.ChannelRegistry
	Families *domain.FamilyRegistry
}

// LoadRegistry lê o registro do caminho informado, ou o registro embutido se o caminho for vazio
func LoadRegistry(path string) (*Registry, error) {
	data := defaultRegistry
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler arquivo de registro %s: %w", path, err)
		}
		data = content
		logrus.WithField("path", path).Info("Registro de canais carregado do arquivo")
	} else {
		logrus.Info("Usando registro de canais embutido")
	}

	return ParseRegistry(data)
}

// ParseRegistry decodifica e valida o conteúdo YAML do registro
func ParseRegistry(data []byte) (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("erro ao decodificar registro: %w", err)
	}

	channels, err := domain.NewChannelRegistry(file.Channels)
	if err != nil {
		return nil, err
	}

	families, err := domain.NewFamilyRegistry(file.Families)
	if err != nil {
		return nil, err
	}

	return &Registry{
		Channels: channels,
		Families: families,
	}, nil
}
