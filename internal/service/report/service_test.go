package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesops-id/salesops-backend-go/internal/domain/report"
)

type fakeLeadReportRepo struct {
	seq  int
	rows []report.LeadReport
}

func (f *fakeLeadReportRepo) Create(_ context.Context, rep report.LeadReport) (report.LeadReport, error) {
	f.seq++
	rep.ID = fmt.Sprintf("lr-%d", f.seq)
	rep.CreatedAt = time.Now()
	f.rows = append(f.rows, rep)
	return rep, nil
}

func (f *fakeLeadReportRepo) List(_ context.Context, filter report.ReportFilter) ([]report.LeadReport, int64, error) {
	var matched []report.LeadReport
	for _, r := range f.rows {
		if filter.ProfileID != nil && r.ProfileID != *filter.ProfileID {
			continue
		}
		matched = append(matched, r)
	}
	return matched, int64(len(matched)), nil
}

func (f *fakeLeadReportRepo) GetByID(_ context.Context, id string) (*report.LeadReport, error) {
	for _, r := range f.rows {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, report.ErrLeadReportNotFound
}

type fakeAdReportRepo struct {
	seq  int
	rows []report.AdReport
}

func (f *fakeAdReportRepo) Create(_ context.Context, rep report.AdReport) (report.AdReport, error) {
	f.seq++
	rep.ID = fmt.Sprintf("ar-%d", f.seq)
	rep.CreatedAt = time.Now()
	f.rows = append(f.rows, rep)
	return rep, nil
}

func (f *fakeAdReportRepo) List(_ context.Context, filter report.ReportFilter) ([]report.AdReport, int64, error) {
	var matched []report.AdReport
	for _, r := range f.rows {
		if filter.ProfileID != nil && r.MarketingID != *filter.ProfileID {
			continue
		}
		matched = append(matched, r)
	}
	return matched, int64(len(matched)), nil
}

func testCtx(t *testing.T, profileID string, isAdmin bool) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"profile_id": profileID,
		"is_admin":   isAdmin,
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCreateLeadReportFoldsCounters(t *testing.T) {
	leadRepo := &fakeLeadReportRepo{}
	svc := NewReportService(nil, leadRepo, &fakeAdReportRepo{})

	resp, err := svc.CreateLeadReport(testCtx(t, "p1", false), report.CreateLeadReportRequest{
		ReportDate:  "2024-08-12",
		TotalLeads:  10,
		CallCount:   4,
		FollowUp:    intPtr(3),
		BerkasMasuk: intPtr(1),
		Notes:       strPtr("kunjungan pasar"),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Notes)
	assert.Equal(t, "kunjungan pasar [Follow Up: 3] [Berkas Masuk: 1]", *resp.Notes)
	assert.Equal(t, "p1", resp.ProfileID)
	assert.Equal(t, "2024-08-12", resp.ReportDate)
}

func TestCreateLeadReportWithoutCountersKeepsNotesNil(t *testing.T) {
	svc := NewReportService(nil, &fakeLeadReportRepo{}, &fakeAdReportRepo{})

	resp, err := svc.CreateLeadReport(testCtx(t, "p1", false), report.CreateLeadReportRequest{
		ReportDate: "2024-08-12",
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Notes)
}

func TestCreateLeadReportSkipsZeroCounters(t *testing.T) {
	svc := NewReportService(nil, &fakeLeadReportRepo{}, &fakeAdReportRepo{})

	resp, err := svc.CreateLeadReport(testCtx(t, "p1", false), report.CreateLeadReportRequest{
		ReportDate:  "2024-08-12",
		FollowUp:    intPtr(0),
		BerkasMasuk: intPtr(0),
		Notes:       strPtr("tidak ada tindak lanjut"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "tidak ada tindak lanjut", *resp.Notes)
}

func TestCreateLeadReportRejectsBadDate(t *testing.T) {
	repo := &fakeLeadReportRepo{}
	svc := NewReportService(nil, repo, &fakeAdReportRepo{})

	_, err := svc.CreateLeadReport(testCtx(t, "p1", false), report.CreateLeadReportRequest{
		ReportDate: "12-08-2024",
	})
	assert.Error(t, err)
	assert.Empty(t, repo.rows)
}

func TestCreateAdReportDerivesCPR(t *testing.T) {
	svc := NewReportService(nil, &fakeLeadReportRepo{}, &fakeAdReportRepo{})

	resp, err := svc.CreateAdReport(testCtx(t, "p1", false), report.CreateAdReportRequest{
		ReportDate:   "2024-08-12",
		Platform:     "FB Ads",
		CampaignName: "Gadai BPKB",
		TotalSpend:   250000,
		LeadsCount:   10,
		BudgetSet:    strPtr("Rp 250.000/hari"),
		Note:         strPtr("naikkan budget"),
	})
	require.NoError(t, err)

	assert.Equal(t, 25000.0, resp.CPR)
	assert.Equal(t, 0.0, resp.CTR)
	require.NotNil(t, resp.AISummary)
	assert.Equal(t, "Budget Set: Rp 250.000/hari | Note: naikkan budget", *resp.AISummary)
}

func TestCreateAdReportZeroLeads(t *testing.T) {
	svc := NewReportService(nil, &fakeLeadReportRepo{}, &fakeAdReportRepo{})

	resp, err := svc.CreateAdReport(testCtx(t, "p1", false), report.CreateAdReportRequest{
		ReportDate:   "2024-08-12",
		Platform:     "Google",
		CampaignName: "Dana Tunai",
		TotalSpend:   100000,
		LeadsCount:   0,
	})
	require.NoError(t, err)

	// Division by zero leads must not blow up; CPR is just zero.
	assert.Equal(t, 0.0, resp.CPR)
	assert.Nil(t, resp.AISummary)
}

func TestListLeadReportsScopedToMarketer(t *testing.T) {
	leadRepo := &fakeLeadReportRepo{}
	svc := NewReportService(nil, leadRepo, &fakeAdReportRepo{})

	_, err := svc.CreateLeadReport(testCtx(t, "p1", false), report.CreateLeadReportRequest{ReportDate: "2024-08-12"})
	require.NoError(t, err)
	_, err = svc.CreateLeadReport(testCtx(t, "p2", false), report.CreateLeadReportRequest{ReportDate: "2024-08-12"})
	require.NoError(t, err)

	mine, err := svc.ListLeadReports(testCtx(t, "p1", false), report.ReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), mine.TotalCount)

	all, err := svc.ListLeadReports(testCtx(t, "admin", true), report.ReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.TotalCount)
}
