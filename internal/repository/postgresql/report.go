package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/salesops-id/salesops-backend-go/internal/domain/report"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/database"
)

type leadReportRepository struct {
	db *database.DB
}

func NewLeadReportRepository(db *database.DB) report.LeadReportRepository {
	return &leadReportRepository{db: db}
}

const leadReportColumns = `
	id, profile_id, report_date, total_leads, call_count, slik_count,
	visit_count, notes, ai_summary, created_at, updated_at
`

func scanLeadReport(row pgx.Row) (report.LeadReport, error) {
	var rep report.LeadReport
	err := row.Scan(
		&rep.ID, &rep.ProfileID, &rep.ReportDate, &rep.TotalLeads, &rep.CallCount,
		&rep.SlikCount, &rep.VisitCount, &rep.Notes, &rep.AISummary, &rep.CreatedAt, &rep.UpdatedAt,
	)
	return rep, err
}

// Create implements report.LeadReportRepository.
func (r *leadReportRepository) Create(ctx context.Context, rep report.LeadReport) (report.LeadReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO report_leads (
			profile_id, report_date, total_leads, call_count, slik_count,
			visit_count, notes, ai_summary
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + leadReportColumns

	created, err := scanLeadReport(q.QueryRow(ctx, query,
		rep.ProfileID, rep.ReportDate, rep.TotalLeads, rep.CallCount,
		rep.SlikCount, rep.VisitCount, rep.Notes, rep.AISummary,
	))
	if err != nil {
		return report.LeadReport{}, fmt.Errorf("failed to insert lead report: %w", err)
	}
	return created, nil
}

func reportFilterClause(filter report.ReportFilter, ownerColumn string) (string, []interface{}, int) {
	conditions := []string{"TRUE"}
	var args []interface{}
	argPos := 1

	if filter.ProfileID != nil {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", ownerColumn, argPos))
		args = append(args, *filter.ProfileID)
		argPos++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("report_date >= $%d", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("report_date <= $%d", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}

	return strings.Join(conditions, " AND "), args, argPos
}

// List implements report.LeadReportRepository.
func (r *leadReportRepository) List(ctx context.Context, filter report.ReportFilter) ([]report.LeadReport, int64, error) {
	q := GetQuerier(ctx, r.db)

	where, args, argPos := reportFilterClause(filter, "profile_id")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM report_leads WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count lead reports: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM report_leads
		WHERE %s
		ORDER BY report_date DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, leadReportColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query lead reports: %w", err)
	}
	defer rows.Close()

	var result []report.LeadReport
	for rows.Next() {
		rep, err := scanLeadReport(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan lead report row: %w", err)
		}
		result = append(result, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate lead report rows: %w", err)
	}
	return result, total, nil
}

// GetByID implements report.LeadReportRepository.
func (r *leadReportRepository) GetByID(ctx context.Context, id string) (*report.LeadReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leadReportColumns + ` FROM report_leads WHERE id = $1`

	rep, err := scanLeadReport(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, report.ErrLeadReportNotFound
		}
		return nil, fmt.Errorf("failed to get lead report by id: %w", err)
	}
	return &rep, nil
}

type adReportRepository struct {
	db *database.DB
}

func NewAdReportRepository(db *database.DB) report.AdReportRepository {
	return &adReportRepository{db: db}
}

const adReportColumns = `
	id, marketing_id, report_date, platform, campaign_name, total_spend,
	leads_count, cpr, ctr, ai_summary, created_at
`

func scanAdReport(row pgx.Row) (report.AdReport, error) {
	var rep report.AdReport
	err := row.Scan(
		&rep.ID, &rep.MarketingID, &rep.ReportDate, &rep.Platform, &rep.CampaignName,
		&rep.TotalSpend, &rep.LeadsCount, &rep.CPR, &rep.CTR, &rep.AISummary, &rep.CreatedAt,
	)
	return rep, err
}

// Create implements report.AdReportRepository.
func (r *adReportRepository) Create(ctx context.Context, rep report.AdReport) (report.AdReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO report_ads (
			marketing_id, report_date, platform, campaign_name, total_spend,
			leads_count, cpr, ctr, ai_summary
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + adReportColumns

	created, err := scanAdReport(q.QueryRow(ctx, query,
		rep.MarketingID, rep.ReportDate, rep.Platform, rep.CampaignName,
		rep.TotalSpend, rep.LeadsCount, rep.CPR, rep.CTR, rep.AISummary,
	))
	if err != nil {
		return report.AdReport{}, fmt.Errorf("failed to insert ad report: %w", err)
	}
	return created, nil
}

// List implements report.AdReportRepository.
func (r *adReportRepository) List(ctx context.Context, filter report.ReportFilter) ([]report.AdReport, int64, error) {
	q := GetQuerier(ctx, r.db)

	where, args, argPos := reportFilterClause(filter, "marketing_id")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM report_ads WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count ad reports: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM report_ads
		WHERE %s
		ORDER BY report_date DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, adReportColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query ad reports: %w", err)
	}
	defer rows.Close()

	var result []report.AdReport
	for rows.Next() {
		rep, err := scanAdReport(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan ad report row: %w", err)
		}
		result = append(result, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate ad report rows: %w", err)
	}
	return result, total, nil
}
