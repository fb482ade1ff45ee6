package report

import (
	"fmt"
	"strings"

	"github.com/salesops-id/salesops-backend-go/internal/pkg/validator"
)

type CreateLeadReportRequest struct {
	ReportDate  string  `json:"report_date"`
	TotalLeads  int     `json:"total_leads"`
	CallCount   int     `json:"call_count"`
	SlikCount   int     `json:"slik_count"`
	VisitCount  int     `json:"visit_count"`
	FollowUp    *int    `json:"follow_up"`
	BerkasMasuk *int    `json:"berkas_masuk"`
	Notes       *string `json:"notes"`
}

func (r *CreateLeadReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ReportDate) {
		errs = append(errs, validator.ValidationError{Field: "report_date", Message: "report date is required"})
	} else if _, ok := validator.IsValidDate(r.ReportDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "report_date", Message: "report date must be in YYYY-MM-DD format"})
	}
	if r.TotalLeads < 0 {
		errs = append(errs, validator.ValidationError{Field: "total_leads", Message: "total leads cannot be negative"})
	}
	if r.CallCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "call_count", Message: "call count cannot be negative"})
	}
	if r.SlikCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "slik_count", Message: "slik count cannot be negative"})
	}
	if r.VisitCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "visit_count", Message: "visit count cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// FoldedNotes merges follow-up and berkas-masuk counters into the free-text
// notes column, since the table has no dedicated columns for them.
func (r *CreateLeadReportRequest) FoldedNotes() *string {
	var parts []string
	if r.Notes != nil && strings.TrimSpace(*r.Notes) != "" {
		parts = append(parts, strings.TrimSpace(*r.Notes))
	}
	if r.FollowUp != nil && *r.FollowUp > 0 {
		parts = append(parts, fmt.Sprintf("[Follow Up: %d]", *r.FollowUp))
	}
	if r.BerkasMasuk != nil && *r.BerkasMasuk > 0 {
		parts = append(parts, fmt.Sprintf("[Berkas Masuk: %d]", *r.BerkasMasuk))
	}
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, " ")
	return &joined
}

type CreateAdReportRequest struct {
	ReportDate   string  `json:"report_date"`
	Platform     string  `json:"platform"`
	CampaignName string  `json:"campaign_name"`
	TotalSpend   float64 `json:"total_spend"`
	LeadsCount   int     `json:"leads_count"`
	BudgetSet    *string `json:"budget_set"`
	Note         *string `json:"note"`
}

func (r *CreateAdReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ReportDate) {
		errs = append(errs, validator.ValidationError{Field: "report_date", Message: "report date is required"})
	} else if _, ok := validator.IsValidDate(r.ReportDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "report_date", Message: "report date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Platform) {
		errs = append(errs, validator.ValidationError{Field: "platform", Message: "platform is required"})
	}
	if validator.IsEmpty(r.CampaignName) {
		errs = append(errs, validator.ValidationError{Field: "campaign_name", Message: "campaign name is required"})
	}
	if r.TotalSpend < 0 {
		errs = append(errs, validator.ValidationError{Field: "total_spend", Message: "total spend cannot be negative"})
	}
	if r.LeadsCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "leads_count", Message: "leads count cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReportFilter struct {
	StartDate *string
	EndDate   *string
	ProfileID *string
	Page      int
	Limit     int
}

func (f *ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date must be in YYYY-MM-DD format"})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date must be in YYYY-MM-DD format"})
		}
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeadReportResponse struct {
	ID         string  `json:"report_id"`
	ProfileID  string  `json:"profile_id"`
	ReportDate string  `json:"report_date"`
	TotalLeads int     `json:"total_leads"`
	CallCount  int     `json:"call_count"`
	SlikCount  int     `json:"slik_count"`
	VisitCount int     `json:"visit_count"`
	Notes      *string `json:"notes"`
	AISummary  *string `json:"ai_summary"`
	CreatedAt  string  `json:"created_at"`
}

type AdReportResponse struct {
	ID           string  `json:"report_id"`
	MarketingID  string  `json:"marketing_id"`
	ReportDate   string  `json:"report_date"`
	Platform     string  `json:"platform"`
	CampaignName string  `json:"campaign_name"`
	TotalSpend   float64 `json:"total_spend"`
	LeadsCount   int     `json:"leads_count"`
	CPR          float64 `json:"cpr"`
	CTR          float64 `json:"ctr"`
	AISummary    *string `json:"ai_summary"`
	CreatedAt    string  `json:"created_at"`
}

type ListLeadReportsResponse struct {
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
	Reports    []LeadReportResponse `json:"reports"`
}

type ListAdReportsResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Reports    []AdReportResponse `json:"reports"`
}
