package domain

import "math"

// Chaves das métricas de instalação expostas para os chamadores
const (
	MetricUndetectedInstall = "undetected_install"
	MetricAndroidOrganic    = "android_organic"
	MetricAppleOrganic      = "apple_organic"
	MetricTotalOrganic      = "total_organic"
	MetricAndroidReferrals  = "android_referrals"
	MetricFBInstall         = "fb_install"
	MetricGoogleInstall     = "google_install"
	MetricTikTokInstall     = "tiktok_install"
	MetricASAInstall        = "asa_install"
	MetricAndroidInstall    = "android_install"
	MetricAppleInstall      = "apple_install"
	MetricTotalInstall      = "total_install"
)

// InstallMetricKeys lista todas as chaves de um InstallBreakdown
func InstallMetricKeys() []string {
	return []string{
		MetricUndetectedInstall,
		MetricAndroidOrganic,
		MetricAppleOrganic,
		MetricTotalOrganic,
		MetricAndroidReferrals,
		MetricFBInstall,
		MetricGoogleInstall,
		MetricTikTokInstall,
		MetricASAInstall,
		MetricAndroidInstall,
		MetricAppleInstall,
		MetricTotalInstall,
	}
}

// InstallBreakdown é a visão reconciliada das instalações de uma janela.
// UndetectedInstall pode ser negativo quando os relatórios de origem divergem.
type InstallBreakdown struct {
	UndetectedInstall int64 `json:"undetected_install"`
	AndroidOrganic    int64 `json:"android_organic"`
	AppleOrganic      int64 `json:"apple_organic"`
	TotalOrganic      int64 `json:"total_organic"`
	AndroidReferrals  int64 `json:"android_referrals"`
	FBInstall         int64 `json:"fb_install"`
	GoogleInstall     int64 `json:"google_install"`
	TikTokInstall     int64 `json:"tiktok_install"`
	ASAInstall        int64 `json:"asa_install"`
	AndroidInstall    int64 `json:"android_install"`
	AppleInstall      int64 `json:"apple_install"`
	TotalInstall      int64 `json:"total_install"`
}

// AndroidAdsInstall soma as instalações pagas de Android
func (b InstallBreakdown) AndroidAdsInstall() int64 {
	return b.GoogleInstall + b.FBInstall + b.TikTokInstall
}

// AllChannel é o total de Android explicado por algum canal detectado
func (b InstallBreakdown) AllChannel() int64 {
	return b.AndroidOrganic + b.AndroidAdsInstall() - b.AndroidReferrals
}

// Metrics exporta o breakdown como mapa de métricas
func (b InstallBreakdown) Metrics() MetricSet {
	return MetricSet{
		MetricUndetectedInstall: float64(b.UndetectedInstall),
		MetricAndroidOrganic:    float64(b.AndroidOrganic),
		MetricAppleOrganic:      float64(b.AppleOrganic),
		MetricTotalOrganic:      float64(b.TotalOrganic),
		MetricAndroidReferrals:  float64(b.AndroidReferrals),
		MetricFBInstall:         float64(b.FBInstall),
		MetricGoogleInstall:     float64(b.GoogleInstall),
		MetricTikTokInstall:     float64(b.TikTokInstall),
		MetricASAInstall:        float64(b.ASAInstall),
		MetricAndroidInstall:    float64(b.AndroidInstall),
		MetricAppleInstall:      float64(b.AppleInstall),
		MetricTotalInstall:      float64(b.TotalInstall),
	}
}

// InstallBreakdownFromMetrics reconstrói o breakdown a partir do mapa exportado por Metrics.
// Chaves ausentes valem zero.
func InstallBreakdownFromMetrics(m MetricSet) InstallBreakdown {
	v := func(key string) int64 { return int64(math.Round(m[key])) }

	return InstallBreakdown{
		UndetectedInstall: v(MetricUndetectedInstall),
		AndroidOrganic:    v(MetricAndroidOrganic),
		AppleOrganic:      v(MetricAppleOrganic),
		TotalOrganic:      v(MetricTotalOrganic),
		AndroidReferrals:  v(MetricAndroidReferrals),
		FBInstall:         v(MetricFBInstall),
		GoogleInstall:     v(MetricGoogleInstall),
		TikTokInstall:     v(MetricTikTokInstall),
		ASAInstall:        v(MetricASAInstall),
		AndroidInstall:    v(MetricAndroidInstall),
		AppleInstall:      v(MetricAppleInstall),
		TotalInstall:      v(MetricTotalInstall),
	}
}

// IsEmpty informa se nenhuma instalação foi registrada na janela
func (b InstallBreakdown) IsEmpty() bool {
	return b == InstallBreakdown{}
}
