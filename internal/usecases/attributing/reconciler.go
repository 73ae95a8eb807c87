package attributing

import (
	"github.com/vfg2006/install-growth-api/internal/domain"
)

// ReconcileInput reúne os agregados de todos os canais de uma mesma janela
type ReconcileInput struct {
	Window     domain.Window
	Aggregates map[domain.Channel]domain.SourceAggregate
}

func (in ReconcileInput) column(channel domain.Channel, name string) domain.SourceSeries {
	agg, ok := in.Aggregates[channel]
	if !ok {
		return domain.ZeroSeries(in.Window)
	}
	return agg.Column(name)
}

// Reconcile combina as séries dos canais em um único InstallBreakdown.
//
// O cálculo é feito data a data e somado na janela:
//   - referrals = max(0, ads - ads_and_referrals)
//   - undetected = all_traffic_sources - (organic + ads - referrals), sem clamp
//
// Datas sem linha no relatório da loja contam referrals e undetected como zero.
func Reconcile(in ReconcileInput) domain.InstallBreakdown {
	google := in.column(domain.ChannelGoogle, domain.ColumnInstalls)
	facebook := in.column(domain.ChannelFacebook, domain.ColumnInstalls)
	tiktok := in.column(domain.ChannelTikTok, domain.ColumnInstalls)
	asa := in.column(domain.ChannelASA, domain.ColumnInstalls)
	asaUnattributed := in.column(domain.ChannelASAUnattributed, domain.ColumnInstalls)
	appleStore := in.column(domain.ChannelAppleStore, domain.ColumnAppleStoreDownloads)
	playSearch := in.column(domain.ChannelOrganic, domain.ColumnGooglePlaySearch)
	playExplore := in.column(domain.ChannelOrganic, domain.ColumnGooglePlayExplore)
	allTraffic := in.column(domain.ChannelUndetectedReferrals, domain.ColumnAllTrafficSources)
	adsAndReferrals := in.column(domain.ChannelUndetectedReferrals, domain.ColumnAdsAndReferrals)
	storeListing := in.Aggregates[domain.ChannelUndetectedReferrals]

	var b domain.InstallBreakdown
	for _, date := range in.Window.Dates() {
		g, f, t := google.At(date), facebook.At(date), tiktok.At(date)
		ads := g + f + t
		organic := playSearch.At(date) + playExplore.At(date)

		var referrals, undetected int64
		if storeListing.Reported(date) {
			referrals = max(0, ads-adsAndReferrals.At(date))
			allChannel := organic + ads - referrals
			undetected = allTraffic.At(date) - allChannel
		}

		b.GoogleInstall += g
		b.FBInstall += f
		b.TikTokInstall += t
		b.ASAInstall += asa.At(date)
		b.AndroidOrganic += organic
		b.AndroidReferrals += referrals
		b.UndetectedInstall += undetected
		b.AppleOrganic += appleStore.At(date) + asaUnattributed.At(date)
	}

	b.AndroidInstall = b.GoogleInstall + b.FBInstall + b.TikTokInstall + b.AndroidOrganic
	b.AppleInstall = b.ASAInstall + b.AppleOrganic
	b.TotalInstall = b.AndroidInstall + b.AppleInstall
	b.TotalOrganic = b.AndroidOrganic + b.AppleOrganic

	return b
}
