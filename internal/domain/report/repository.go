package report

import "context"

type LeadReportRepository interface {
	Create(ctx context.Context, rep LeadReport) (LeadReport, error)
	List(ctx context.Context, filter ReportFilter) ([]LeadReport, int64, error)
	GetByID(ctx context.Context, id string) (*LeadReport, error)
}

type AdReportRepository interface {
	Create(ctx context.Context, rep AdReport) (AdReport, error)
	List(ctx context.Context, filter ReportFilter) ([]AdReport, int64, error)
}
