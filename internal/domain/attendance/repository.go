package attendance

import (
	"context"
)

// AttendanceRepository defines data access for attendance rows.
// All row access is scoped by profileID; ownership is enforced in the
// WHERE clause of the write, not by a prior read.
type AttendanceRepository interface {
	// Create inserts a new attendance row and returns it
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByProfileAndDate returns the row for (profile, date) or nil when absent
	GetByProfileAndDate(ctx context.Context, profileID string, date string) (*Attendance, error)

	// UpdateClockIn overwrites clock_in, status and location fields of an
	// existing row. Never touches clock_out.
	UpdateClockIn(ctx context.Context, attendance Attendance) (Attendance, error)

	// UpdateClockOut sets clock_out on the row owned by profileID.
	// Zero rows affected surfaces as ErrAttendanceNotFound.
	UpdateClockOut(ctx context.Context, id string, profileID string, clockOut string) (Attendance, error)

	// History lists rows for a profile, newest first, paginated
	History(ctx context.Context, profileID string, filter HistoryFilter) ([]Attendance, int64, error)
}
