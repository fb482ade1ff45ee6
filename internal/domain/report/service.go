package report

import "context"

type ReportService interface {
	CreateLeadReport(ctx context.Context, req CreateLeadReportRequest) (*LeadReportResponse, error)
	ListLeadReports(ctx context.Context, filter ReportFilter) (*ListLeadReportsResponse, error)
	CreateAdReport(ctx context.Context, req CreateAdReportRequest) (*AdReportResponse, error)
	ListAdReports(ctx context.Context, filter ReportFilter) (*ListAdReportsResponse, error)
}
