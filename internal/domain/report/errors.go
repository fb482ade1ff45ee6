package report

import "errors"

var (
	ErrLeadReportNotFound = errors.New("lead report not found")
	ErrAdReportNotFound   = errors.New("ad report not found")
	ErrInvalidPlatform    = errors.New("invalid ad platform")
)
