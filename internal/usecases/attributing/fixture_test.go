package attributing

import (
	"context"
	"time"

	"github.com/vfg2006/install-growth-api/internal/domain"
)

// sourceFixture guarda as contagens por data, canal e coluna lógica
type sourceFixture struct {
	data   map[string]map[domain.Channel]map[string]int64
	errors map[domain.Channel]error
}

func newSourceFixture() *sourceFixture {
	return &sourceFixture{
		data:   make(map[string]map[domain.Channel]map[string]int64),
		errors: make(map[domain.Channel]error),
	}
}

func (f *sourceFixture) set(day string, channel domain.Channel, column string, value int64) *sourceFixture {
	if f.data[day] == nil {
		f.data[day] = make(map[domain.Channel]map[string]int64)
	}
	if f.data[day][channel] == nil {
		f.data[day][channel] = make(map[string]int64)
	}
	f.data[day][channel][column] = value
	return f
}

// day preenche um dia completo com os valores do cenário de referência
func (f *sourceFixture) day(day string, google, facebook, tiktok, asa, asaUnattributed, appleStore, search, explore, allTraffic, adsAndReferrals int64) *sourceFixture {
	return f.
		set(day, domain.ChannelGoogle, domain.ColumnInstalls, google).
		set(day, domain.ChannelFacebook, domain.ColumnInstalls, facebook).
		set(day, domain.ChannelTikTok, domain.ColumnInstalls, tiktok).
		set(day, domain.ChannelASA, domain.ColumnInstalls, asa).
		set(day, domain.ChannelASAUnattributed, domain.ColumnInstalls, asaUnattributed).
		set(day, domain.ChannelAppleStore, domain.ColumnAppleStoreDownloads, appleStore).
		set(day, domain.ChannelOrganic, domain.ColumnGooglePlaySearch, search).
		set(day, domain.ChannelOrganic, domain.ColumnGooglePlayExplore, explore).
		set(day, domain.ChannelUndetectedReferrals, domain.ColumnAllTrafficSources, allTraffic).
		set(day, domain.ChannelUndetectedReferrals, domain.ColumnAdsAndReferrals, adsAndReferrals)
}

func (f *sourceFixture) sumByDate(_ context.Context, source domain.SourceDefinition, window domain.Window) ([]domain.DailyRow, error) {
	if err := f.errors[source.Channel]; err != nil {
		return nil, err
	}

	rows := make([]domain.DailyRow, 0)
	for _, d := range window.Dates() {
		values, ok := f.data[d.Format(time.DateOnly)][source.Channel]
		if !ok {
			continue
		}
		row := domain.DailyRow{Date: d, Values: make(map[string]int64)}
		for k, v := range values {
			row.Values[k] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}
