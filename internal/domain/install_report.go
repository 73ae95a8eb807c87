package domain

import (
	"time"
)

// InstallReport é o relatório diário de instalações gerado pelo agendador
type InstallReport struct {
	ID             string           `json:"id"`
	ReportDate     time.Time        `json:"report_date"`
	Window         Window           `json:"window"`
	PreviousWindow Window           `json:"previous_window"`
	Breakdown      InstallBreakdown `json:"breakdown"`
	Growth         GrowthResult     `json:"growth"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
