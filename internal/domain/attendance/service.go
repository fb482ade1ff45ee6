package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn records a check-in for today, upserting by (profile, date)
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut stamps clock_out on an owned attendance row
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// SubmitLeave records an izin/sakit/cuti submission for a day
	SubmitLeave(ctx context.Context, req SubmitLeaveRequest) (AttendanceResponse, error)

	// GetToday returns today's record for the authenticated profile, nil data when absent
	GetToday(ctx context.Context) (*AttendanceResponse, error)

	// History lists the authenticated profile's attendance records
	History(ctx context.Context, filter HistoryFilter) (*ListAttendanceResponse, error)
}
