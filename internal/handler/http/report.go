package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/salesops-id/salesops-backend-go/internal/domain/report"
	"github.com/salesops-id/salesops-backend-go/internal/handler/http/response"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/whatsapp"
)

type ReportHandler interface {
	CreateLeadReport(w http.ResponseWriter, r *http.Request)
	ListLeadReports(w http.ResponseWriter, r *http.Request)
	CreateAdReport(w http.ResponseWriter, r *http.Request)
	ListAdReports(w http.ResponseWriter, r *http.Request)
	DailyWhatsAppMessage(w http.ResponseWriter, r *http.Request)
	AdsRecapWhatsAppMessage(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// CreateLeadReport implements ReportHandler.
func (h *reportHandlerImpl) CreateLeadReport(w http.ResponseWriter, r *http.Request) {
	var req report.CreateLeadReportRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLeadReport decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.reportService.CreateLeadReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Lead report created", result)
}

func reportFilterFromQuery(r *http.Request) report.ReportFilter {
	filter := report.ReportFilter{}
	q := r.URL.Query()

	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := q.Get("profile_id"); v != "" {
		filter.ProfileID = &v
	}
	if v := q.Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			filter.Page = page
		}
	}
	if v := q.Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			filter.Limit = limit
		}
	}
	return filter
}

// ListLeadReports implements ReportHandler.
func (h *reportHandlerImpl) ListLeadReports(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.ListLeadReports(r.Context(), reportFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Reports, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// CreateAdReport implements ReportHandler.
func (h *reportHandlerImpl) CreateAdReport(w http.ResponseWriter, r *http.Request) {
	var req report.CreateAdReportRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAdReport decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.reportService.CreateAdReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Ad report created", result)
}

// ListAdReports implements ReportHandler.
func (h *reportHandlerImpl) ListAdReports(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.ListAdReports(r.Context(), reportFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Reports, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

type dailyMessageRequest struct {
	MarketerName string `json:"marketer_name"`
	ReportDate   string `json:"report_date"`
	TotalLeads   int    `json:"total_leads"`
	FollowUp     int    `json:"follow_up"`
	CallCount    int    `json:"call_count"`
	SlikCount    int    `json:"slik_count"`
	BerkasMasuk  int    `json:"berkas_masuk"`
	ClockCount   int    `json:"clock_count"`
	Notes        string `json:"notes"`
}

type whatsAppMessageResponse struct {
	Message  string `json:"message"`
	ShareURL string `json:"share_url"`
}

// DailyWhatsAppMessage implements ReportHandler. Renders the standard
// end-of-day broadcast plus a wa.me link with the text prefilled.
func (h *reportHandlerImpl) DailyWhatsAppMessage(w http.ResponseWriter, r *http.Request) {
	var req dailyMessageRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("DailyWhatsAppMessage decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	reportDate, err := time.Parse("2006-01-02", req.ReportDate)
	if err != nil {
		response.BadRequest(w, "report_date must be in YYYY-MM-DD format", nil)
		return
	}

	message := whatsapp.DailyMarketingMessage(whatsapp.DailyReportSummary{
		MarketerName: req.MarketerName,
		ReportDate:   reportDate,
		TotalLeads:   req.TotalLeads,
		FollowUp:     req.FollowUp,
		CallCount:    req.CallCount,
		SlikCount:    req.SlikCount,
		BerkasMasuk:  req.BerkasMasuk,
		ClockCount:   req.ClockCount,
		Notes:        req.Notes,
	})

	response.Success(w, whatsAppMessageResponse{
		Message:  message,
		ShareURL: whatsapp.ShareURL(message),
	})
}

type adsRecapRequest struct {
	ReportDate string `json:"report_date"`
	Lines      []struct {
		MarketerName string  `json:"marketer_name"`
		Platform     string  `json:"platform"`
		CampaignName string  `json:"campaign_name"`
		Spend        float64 `json:"spend"`
		Leads        int     `json:"leads"`
	} `json:"lines"`
}

// AdsRecapWhatsAppMessage implements ReportHandler.
func (h *reportHandlerImpl) AdsRecapWhatsAppMessage(w http.ResponseWriter, r *http.Request) {
	var req adsRecapRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AdsRecapWhatsAppMessage decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	reportDate, err := time.Parse("2006-01-02", req.ReportDate)
	if err != nil {
		response.BadRequest(w, "report_date must be in YYYY-MM-DD format", nil)
		return
	}

	lines := make([]whatsapp.AdSpendLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, whatsapp.AdSpendLine{
			MarketerName: l.MarketerName,
			Platform:     l.Platform,
			CampaignName: l.CampaignName,
			Spend:        l.Spend,
			Leads:        l.Leads,
		})
	}

	message := whatsapp.AdsRecapMessage(reportDate, lines)

	response.Success(w, whatsAppMessageResponse{
		Message:  message,
		ShareURL: whatsapp.ShareURL(message),
	})
}
