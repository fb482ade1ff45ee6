package report

import "time"

// Ad platforms accepted on ad reports.
var Platforms = []string{"Facebook", "FB Ads", "Google", "TikTok", "Instagram"}

// LeadReport is one marketer's daily activity report.
type LeadReport struct {
	ID         string
	ProfileID  string
	ReportDate time.Time
	TotalLeads int
	CallCount  int
	SlikCount  int
	VisitCount int
	Notes      *string
	AISummary  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AdReport is one campaign's daily spend report.
type AdReport struct {
	ID           string
	MarketingID  string
	ReportDate   time.Time
	Platform     string
	CampaignName string
	TotalSpend   float64
	LeadsCount   int
	CPR          float64
	CTR          float64
	AISummary    *string
	CreatedAt    time.Time
}
