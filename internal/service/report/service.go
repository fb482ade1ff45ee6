package report

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/salesops-id/salesops-backend-go/internal/domain/report"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/database"
)

type ReportServiceImpl struct {
	db *database.DB
	report.LeadReportRepository
	report.AdReportRepository
}

func NewReportService(db *database.DB, leadRepo report.LeadReportRepository, adRepo report.AdReportRepository) *ReportServiceImpl {
	return &ReportServiceImpl{
		db:                   db,
		LeadReportRepository: leadRepo,
		AdReportRepository:   adRepo,
	}
}

func claimsFromContext(ctx context.Context) (profileID string, isAdmin bool, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", false, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	profileID, ok := claims["profile_id"].(string)
	if !ok || profileID == "" {
		return "", false, fmt.Errorf("profile_id claim is missing or invalid")
	}
	isAdmin, _ = claims["is_admin"].(bool)
	return profileID, isAdmin, nil
}

// CreateLeadReport implements report.ReportService.
func (s *ReportServiceImpl) CreateLeadReport(ctx context.Context, req report.CreateLeadReportRequest) (*report.LeadReportResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profileID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	reportDate, err := time.Parse("2006-01-02", req.ReportDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report date: %w", err)
	}

	created, err := s.LeadReportRepository.Create(ctx, report.LeadReport{
		ProfileID:  profileID,
		ReportDate: reportDate,
		TotalLeads: req.TotalLeads,
		CallCount:  req.CallCount,
		SlikCount:  req.SlikCount,
		VisitCount: req.VisitCount,
		Notes:      req.FoldedNotes(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create lead report: %w", err)
	}

	resp := toLeadResponse(created)
	return &resp, nil
}

// ListLeadReports implements report.ReportService. Marketers only see
// their own reports; admins can filter across profiles.
func (s *ReportServiceImpl) ListLeadReports(ctx context.Context, filter report.ReportFilter) (*report.ListLeadReportsResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	profileID, isAdmin, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		filter.ProfileID = &profileID
	}

	reports, total, err := s.LeadReportRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list lead reports: %w", err)
	}

	resp := &report.ListLeadReportsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Reports:    make([]report.LeadReportResponse, 0, len(reports)),
	}
	for _, rep := range reports {
		resp.Reports = append(resp.Reports, toLeadResponse(rep))
	}
	return resp, nil
}

// CreateAdReport implements report.ReportService. Cost per result is
// derived at write time so historical rows keep the figure they were
// reported with.
func (s *ReportServiceImpl) CreateAdReport(ctx context.Context, req report.CreateAdReportRequest) (*report.AdReportResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profileID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	reportDate, err := time.Parse("2006-01-02", req.ReportDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report date: %w", err)
	}

	cpr := 0.0
	if req.LeadsCount > 0 {
		cpr = req.TotalSpend / float64(req.LeadsCount)
	}

	created, err := s.AdReportRepository.Create(ctx, report.AdReport{
		MarketingID:  profileID,
		ReportDate:   reportDate,
		Platform:     req.Platform,
		CampaignName: req.CampaignName,
		TotalSpend:   req.TotalSpend,
		LeadsCount:   req.LeadsCount,
		CPR:          cpr,
		CTR:          0,
		AISummary:    buildAdSummary(req.BudgetSet, req.Note),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ad report: %w", err)
	}

	resp := toAdResponse(created)
	return &resp, nil
}

// ListAdReports implements report.ReportService.
func (s *ReportServiceImpl) ListAdReports(ctx context.Context, filter report.ReportFilter) (*report.ListAdReportsResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	profileID, isAdmin, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		filter.ProfileID = &profileID
	}

	reports, total, err := s.AdReportRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list ad reports: %w", err)
	}

	resp := &report.ListAdReportsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Reports:    make([]report.AdReportResponse, 0, len(reports)),
	}
	for _, rep := range reports {
		resp.Reports = append(resp.Reports, toAdResponse(rep))
	}
	return resp, nil
}

// buildAdSummary folds the free-text budget and note fields into the
// single summary column.
func buildAdSummary(budgetSet, note *string) *string {
	budget := "-"
	if budgetSet != nil && *budgetSet != "" {
		budget = *budgetSet
	}
	n := "-"
	if note != nil && *note != "" {
		n = *note
	}
	if budget == "-" && n == "-" {
		return nil
	}
	summary := fmt.Sprintf("Budget Set: %s | Note: %s", budget, n)
	return &summary
}

func toLeadResponse(rep report.LeadReport) report.LeadReportResponse {
	return report.LeadReportResponse{
		ID:         rep.ID,
		ProfileID:  rep.ProfileID,
		ReportDate: rep.ReportDate.Format("2006-01-02"),
		TotalLeads: rep.TotalLeads,
		CallCount:  rep.CallCount,
		SlikCount:  rep.SlikCount,
		VisitCount: rep.VisitCount,
		Notes:      rep.Notes,
		AISummary:  rep.AISummary,
		CreatedAt:  rep.CreatedAt.Format(time.RFC3339),
	}
}

func toAdResponse(rep report.AdReport) report.AdReportResponse {
	return report.AdReportResponse{
		ID:           rep.ID,
		MarketingID:  rep.MarketingID,
		ReportDate:   rep.ReportDate.Format("2006-01-02"),
		Platform:     rep.Platform,
		CampaignName: rep.CampaignName,
		TotalSpend:   rep.TotalSpend,
		LeadsCount:   rep.LeadsCount,
		CPR:          rep.CPR,
		CTR:          rep.CTR,
		AISummary:    rep.AISummary,
		CreatedAt:    rep.CreatedAt.Format(time.RFC3339),
	}
}
