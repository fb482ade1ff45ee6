// Package whatsapp builds share-ready report messages and wa.me deep links.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

var dayNames = []string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var monthNames = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDateID renders a date the way the reports are captioned,
// e.g. "Senin, 12 Agustus 2024".
func FormatDateID(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d", dayNames[t.Weekday()], t.Day(), monthNames[t.Month()-1], t.Year())
}

// FormatIDR formats an amount as Indonesian rupiah with dot thousand
// separators, e.g. "Rp 1.500.000". Fractions are dropped since ad spend
// is tracked in whole rupiah.
func FormatIDR(amount float64) string {
	n := int64(amount)
	neg := n < 0
	if neg {
		n = -n
	}

	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	if neg {
		return "Rp -" + b.String()
	}
	return "Rp " + b.String()
}

// DailyReportSummary carries the counters shown in a marketer's
// end-of-day WhatsApp message.
type DailyReportSummary struct {
	MarketerName string
	ReportDate   time.Time
	TotalLeads   int
	FollowUp     int
	CallCount    int
	SlikCount    int
	BerkasMasuk  int
	ClockCount   int
	Notes        string
}

// DailyMarketingMessage renders the standard daily report broadcast.
func DailyMarketingMessage(s DailyReportSummary) string {
	notes := s.Notes
	if strings.TrimSpace(notes) == "" {
		notes = "-"
	}
	return fmt.Sprintf(
		"*Laporan Harian Marketing*\n\n%s\n*%s*\n\nTotal Respon : %d\nTotal Follow UP : %d\nTotal Call : %d\nTotal Slik : %d\nBerkas Masuk : %d\nTotal Ceklok : %d\nKeterangan : %s",
		FormatDateID(s.ReportDate), s.MarketerName,
		s.TotalLeads, s.FollowUp, s.CallCount, s.SlikCount, s.BerkasMasuk, s.ClockCount, notes,
	)
}

// AdSpendLine is one campaign row inside the ads recap.
type AdSpendLine struct {
	MarketerName string
	Platform     string
	CampaignName string
	Spend        float64
	Leads        int
}

const recapSeparator = "----------------------------"

// AdsRecapMessage renders the ads recap broadcast: one block per
// campaign, then grand totals.
func AdsRecapMessage(date time.Time, lines []AdSpendLine) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Rekap Iklan %s*\n", FormatDateID(date))

	var totalSpend float64
	var totalLeads int
	for _, l := range lines {
		b.WriteString(recapSeparator + "\n")
		fmt.Fprintf(&b, "*%s*\n", l.MarketerName)
		fmt.Fprintf(&b, "Platform : %s\n", l.Platform)
		fmt.Fprintf(&b, "Campaign : %s\n", l.CampaignName)
		fmt.Fprintf(&b, "Spend : %s\n", FormatIDR(l.Spend))
		fmt.Fprintf(&b, "Leads : %d\n", l.Leads)
		totalSpend += l.Spend
		totalLeads += l.Leads
	}

	b.WriteString(recapSeparator + "\n")
	fmt.Fprintf(&b, "Total Spend : %s\n", FormatIDR(totalSpend))
	fmt.Fprintf(&b, "Total Leads : %d", totalLeads)
	return b.String()
}

// ShareURL wraps a message in a wa.me deep link that opens the share
// sheet with the text prefilled.
func ShareURL(message string) string {
	return "https://wa.me/?text=" + url.QueryEscape(message)
}
