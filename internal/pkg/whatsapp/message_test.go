package whatsapp

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateID(t *testing.T) {
	// 2024-08-12 is a Monday.
	date := time.Date(2024, 8, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Senin, 12 Agustus 2024", FormatDateID(date))

	date = time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Minggu, 5 Januari 2025", FormatDateID(date))
}

func TestFormatIDR(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{1500, "Rp 1.500"},
		{1500000, "Rp 1.500.000"},
		{1234567890, "Rp 1.234.567.890"},
		{999.99, "Rp 999"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatIDR(tt.amount))
	}
}

func TestDailyMarketingMessage(t *testing.T) {
	msg := DailyMarketingMessage(DailyReportSummary{
		MarketerName: "Budi Santoso",
		ReportDate:   time.Date(2024, 8, 12, 0, 0, 0, 0, time.UTC),
		TotalLeads:   12,
		FollowUp:     5,
		CallCount:    8,
		SlikCount:    3,
		BerkasMasuk:  2,
		ClockCount:   1,
		Notes:        "Kunjungan ke 2 nasabah",
	})

	assert.True(t, strings.HasPrefix(msg, "*Laporan Harian Marketing*"))
	assert.Contains(t, msg, "Senin, 12 Agustus 2024")
	assert.Contains(t, msg, "*Budi Santoso*")
	assert.Contains(t, msg, "Total Respon : 12")
	assert.Contains(t, msg, "Total Follow UP : 5")
	assert.Contains(t, msg, "Total Call : 8")
	assert.Contains(t, msg, "Total Slik : 3")
	assert.Contains(t, msg, "Berkas Masuk : 2")
	assert.Contains(t, msg, "Total Ceklok : 1")
	assert.Contains(t, msg, "Keterangan : Kunjungan ke 2 nasabah")
}

func TestDailyMarketingMessageEmptyNotes(t *testing.T) {
	msg := DailyMarketingMessage(DailyReportSummary{
		MarketerName: "Budi",
		ReportDate:   time.Date(2024, 8, 12, 0, 0, 0, 0, time.UTC),
	})
	assert.Contains(t, msg, "Keterangan : -")
}

func TestAdsRecapMessage(t *testing.T) {
	date := time.Date(2024, 8, 12, 0, 0, 0, 0, time.UTC)
	msg := AdsRecapMessage(date, []AdSpendLine{
		{MarketerName: "Budi", Platform: "FB Ads", CampaignName: "Gadai BPKB", Spend: 250000, Leads: 10},
		{MarketerName: "Sari", Platform: "Google", CampaignName: "Dana Tunai", Spend: 150000, Leads: 5},
	})

	assert.Contains(t, msg, "*Rekap Iklan Senin, 12 Agustus 2024*")
	assert.Contains(t, msg, "Spend : Rp 250.000")
	assert.Contains(t, msg, "Spend : Rp 150.000")
	assert.Contains(t, msg, "Total Spend : Rp 400.000")
	assert.Contains(t, msg, "Total Leads : 15")
	assert.Equal(t, 3, strings.Count(msg, recapSeparator))
}

func TestShareURL(t *testing.T) {
	u := ShareURL("halo dunia")
	assert.Equal(t, "https://wa.me/?text=halo+dunia", u)
}
