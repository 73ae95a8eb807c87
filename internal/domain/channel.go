package domain

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownChannel indica um canal que não está no registro de fontes
var ErrUnknownChannel = errors.New("unknown channel")

// Channel identifica uma fonte de aquisição de instalações
type Channel string

const (
	ChannelGoogle              Channel = "google"
	ChannelFacebook            Channel = "facebook"
	ChannelTikTok              Channel = "tiktok"
	ChannelASA                 Channel = "asa"
	ChannelASAUnattributed     Channel = "asa_unattributed"
	ChannelAppleStore          Channel = "apple_store"
	ChannelOrganic             Channel = "organic"
	ChannelUndetectedReferrals Channel = "undetected_referrals"
)

// Nomes lógicos das colunas de métricas lidas de cada fonte
const (
	ColumnInstalls            = "installs"
	ColumnGooglePlaySearch    = "google_play_search"
	ColumnGooglePlayExplore   = "google_play_explore"
	ColumnAllTrafficSources   = "all_traffic_sources"
	ColumnAdsAndReferrals     = "ads_and_referrals"
	ColumnAppleStoreDownloads = "apple_store_downloads"
)

// requiredColumns define as colunas lógicas que a reconciliação lê de cada canal
var requiredColumns = map[Channel][]string{
	ChannelGoogle:              {ColumnInstalls},
	ChannelFacebook:            {ColumnInstalls},
	ChannelTikTok:              {ColumnInstalls},
	ChannelASA:                 {ColumnInstalls},
	ChannelASAUnattributed:     {ColumnInstalls},
	ChannelAppleStore:          {ColumnAppleStoreDownloads},
	ChannelOrganic:             {ColumnGooglePlaySearch, ColumnGooglePlayExplore},
	ChannelUndetectedReferrals: {ColumnAllTrafficSources, ColumnAdsAndReferrals},
}

// AttributionChannels retorna todos os canais necessários para montar um InstallBreakdown
func AttributionChannels() []Channel {
	return []Channel{
		ChannelGoogle,
		ChannelFacebook,
		ChannelTikTok,
		ChannelASA,
		ChannelASAUnattributed,
		ChannelAppleStore,
		ChannelOrganic,
		ChannelUndetectedReferrals,
	}
}

// SourceColumn associa um nome lógico de métrica à coluna física somada no banco
type SourceColumn struct {
	Name   string `yaml:"name"`
	Column string `yaml:"column"`
}

// SourceDefinition descreve de onde e como as contagens diárias de um canal são lidas
type SourceDefinition struct {
	Channel        Channel        `yaml:"channel"`
	Table          string         `yaml:"table"`
	DateColumn     string         `yaml:"date_column"`
	CampaignColumn string         `yaml:"campaign_column"`
	Campaigns      []string       `yaml:"campaigns"`
	Columns        []SourceColumn `yaml:"columns"`
}

func (s SourceDefinition) Validate() error {
	if s.Channel == "" {
		return errors.New("source: channel é obrigatório")
	}
	if s.Table == "" {
		return fmt.Errorf("source %s: table é obrigatório", s.Channel)
	}
	if s.DateColumn == "" {
		return fmt.Errorf("source %s: date_column é obrigatório", s.Channel)
	}
	if len(s.Campaigns) > 0 && s.CampaignColumn == "" {
		return fmt.Errorf("source %s: campaign_column é obrigatório quando há campanhas", s.Channel)
	}
	if len(s.Columns) == 0 {
		return fmt.Errorf("source %s: ao menos uma coluna é obrigatória", s.Channel)
	}

	names := make(map[string]bool, len(s.Columns))
	for _, c := range s.Columns {
		if c.Name == "" || c.Column == "" {
			return fmt.Errorf("source %s: coluna com name/column vazio", s.Channel)
		}
		names[c.Name] = true
	}
	for _, required := range requiredColumns[s.Channel] {
		if !names[required] {
			return fmt.Errorf("source %s: coluna obrigatória ausente: %s", s.Channel, required)
		}
	}
	return nil
}

// ColumnNames retorna os nomes lógicos das colunas na ordem configurada
func (s SourceDefinition) ColumnNames() []string {
	names := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		names = append(names, c.Name)
	}
	return names
}

// ChannelRegistry é o registro imutável de fontes por canal
type ChannelRegistry struct {
	sources map[Channel]SourceDefinition
}

// NewChannelRegistry valida as definições e monta o registro.
// Todos os canais de AttributionChannels precisam estar presentes.
func NewChannelRegistry(sources []SourceDefinition) (*ChannelRegistry, error) {
	registry := &ChannelRegistry{sources: make(map[Channel]SourceDefinition, len(sources))}
	for _, s := range sources {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, exists := registry.sources[s.Channel]; exists {
			return nil, fmt.Errorf("source %s: canal duplicado", s.Channel)
		}
		s.Campaigns = append([]string(nil), s.Campaigns...)
		s.Columns = append([]SourceColumn(nil), s.Columns...)
		registry.sources[s.Channel] = s
	}

	for _, ch := range AttributionChannels() {
		if _, ok := registry.sources[ch]; !ok {
			return nil, fmt.Errorf("%w: canal %s não configurado", ErrUnknownChannel, ch)
		}
	}

	return registry, nil
}

// Lookup retorna a definição de fonte de um canal
func (r *ChannelRegistry) Lookup(ch Channel) (SourceDefinition, error) {
	s, ok := r.sources[ch]
	if !ok {
		return SourceDefinition{}, fmt.Errorf("%w: %s", ErrUnknownChannel, ch)
	}
	return s, nil
}

// Channels lista os canais registrados em ordem alfabética
func (r *ChannelRegistry) Channels() []Channel {
	channels := make([]Channel, 0, len(r.sources))
	for ch := range r.sources {
		channels = append(channels, ch)
	}
	sort.Slice(channels, func(i, j int) bool { return channels[i] < channels[j] })
	return channels
}
