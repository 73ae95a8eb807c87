package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSources() []SourceDefinition {
	sources := make([]SourceDefinition, 0)
	for _, ch := range AttributionChannels() {
		columns := make([]SourceColumn, 0)
		for _, name := range requiredColumns[ch] {
			columns = append(columns, SourceColumn{Name: name, Column: name})
		}
		sources = append(sources, SourceDefinition{
			Channel:    ch,
			Table:      string(ch) + "_daily",
			DateColumn: "date",
			Columns:    columns,
		})
	}
	return sources
}

func TestNewChannelRegistry(t *testing.T) {
	registry, err := NewChannelRegistry(testSources())
	require.NoError(t, err)

	assert.Len(t, registry.Channels(), len(AttributionChannels()))

	source, err := registry.Lookup(ChannelOrganic)
	require.NoError(t, err)
	assert.Equal(t, []string{ColumnGooglePlaySearch, ColumnGooglePlayExplore}, source.ColumnNames())

	_, err = registry.Lookup("snapchat")
	assert.ErrorIs(t, err, ErrUnknownChannel)
}

func TestNewChannelRegistry_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(sources []SourceDefinition) []SourceDefinition
	}{
		{
			name: "Canal obrigatório ausente",
			mutate: func(sources []SourceDefinition) []SourceDefinition {
				return sources[1:]
			},
		},
		{
			name: "Canal duplicado",
			mutate: func(sources []SourceDefinition) []SourceDefinition {
				return append(sources, sources[0])
			},
		},
		{
			name: "Coluna obrigatória ausente",
			mutate: func(sources []SourceDefinition) []SourceDefinition {
				for i := range sources {
					if sources[i].Channel == ChannelUndetectedReferrals {
						sources[i].Columns = sources[i].Columns[:1]
					}
				}
				return sources
			},
		},
		{
			name: "Campanhas sem coluna de campanha",
			mutate: func(sources []SourceDefinition) []SourceDefinition {
				sources[0].Campaigns = []string{"android_uac"}
				return sources
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChannelRegistry(tt.mutate(testSources()))

			assert.Error(t, err)
		})
	}
}

func TestInstallBreakdown_Metrics(t *testing.T) {
	b := InstallBreakdown{
		GoogleInstall:    100,
		FBInstall:        30,
		TikTokInstall:    20,
		AndroidOrganic:   70,
		AndroidReferrals: 20,
	}

	m := b.Metrics()

	assert.Len(t, m, len(InstallMetricKeys()))
	for _, k := range InstallMetricKeys() {
		assert.Contains(t, m, k)
	}
	assert.Equal(t, int64(150), b.AndroidAdsInstall())
	assert.Equal(t, int64(200), b.AllChannel())
	assert.False(t, b.IsEmpty())
	assert.True(t, InstallBreakdown{}.IsEmpty())
}

func TestInstallBreakdownFromMetrics(t *testing.T) {
	b := InstallBreakdown{
		UndetectedInstall: -12,
		AndroidOrganic:    70,
		AppleOrganic:      25,
		TotalOrganic:      95,
		AndroidReferrals:  20,
		FBInstall:         50,
		GoogleInstall:     100,
		ASAInstall:        20,
		AndroidInstall:    220,
		AppleInstall:      45,
		TotalInstall:      265,
	}

	assert.Equal(t, b, InstallBreakdownFromMetrics(b.Metrics()))
	assert.True(t, InstallBreakdownFromMetrics(MetricSet{}).IsEmpty())
}
