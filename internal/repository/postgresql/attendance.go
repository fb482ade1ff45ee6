package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/salesops-id/salesops-backend-go/internal/domain/attendance"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, profile_id, attendance_date, clock_in::text, clock_out::text,
	status, permission_type, latitude, longitude, location_name,
	notes, device_info, browser_info, created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.ProfileID, &att.Date, &att.ClockIn, &att.ClockOut,
		&att.Status, &att.PermissionType, &att.Latitude, &att.Longitude, &att.LocationName,
		&att.Notes, &att.DeviceInfo, &att.BrowserInfo, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			profile_id, attendance_date, clock_in, status, permission_type,
			latitude, longitude, location_name, notes, device_info, browser_info
		)
		VALUES ($1, $2, $3::time, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query,
		newAttendance.ProfileID, newAttendance.Date, newAttendance.ClockIn,
		newAttendance.Status, newAttendance.PermissionType,
		newAttendance.Latitude, newAttendance.Longitude, newAttendance.LocationName,
		newAttendance.Notes, newAttendance.DeviceInfo, newAttendance.BrowserInfo,
	))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to insert attendance: %w", err)
	}
	return att, nil
}

// GetByProfileAndDate implements attendance.AttendanceRepository. When the
// day has both a clock-in row and a leave row, the clock-in row wins.
func (a *attendanceRepository) GetByProfileAndDate(ctx context.Context, profileID, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE profile_id = $1 AND attendance_date = $2
		ORDER BY (clock_in IS NULL), created_at
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, profileID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by profile and date: %w", err)
	}
	return &att, nil
}

// UpdateClockIn implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdateClockIn(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET clock_in = $2::time, status = $3, permission_type = $4,
			latitude = $5, longitude = $6, location_name = $7,
			device_info = $8, browser_info = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + attendanceColumns

	updated, err := scanAttendance(q.QueryRow(ctx, query,
		att.ID, att.ClockIn, att.Status, att.PermissionType,
		att.Latitude, att.Longitude, att.LocationName,
		att.DeviceInfo, att.BrowserInfo,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update clock in: %w", err)
	}
	return updated, nil
}

// UpdateClockOut implements attendance.AttendanceRepository. Ownership is
// part of the WHERE clause so one profile cannot close another's day.
func (a *attendanceRepository) UpdateClockOut(ctx context.Context, id, profileID, clockOut string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET clock_out = $3::time, updated_at = NOW()
		WHERE id = $1 AND profile_id = $2
		RETURNING ` + attendanceColumns

	updated, err := scanAttendance(q.QueryRow(ctx, query, id, profileID, clockOut))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update clock out: %w", err)
	}
	return updated, nil
}

// History implements attendance.AttendanceRepository.
func (a *attendanceRepository) History(ctx context.Context, profileID string, filter attendance.HistoryFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	conditions := []string{"profile_id = $1"}
	args := []interface{}{profileID}
	argPos := 2

	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("attendance_date >= $%d", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("attendance_date <= $%d", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendances WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance history: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances
		WHERE %s
		ORDER BY attendance_date DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance history: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		result = append(result, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}

	return result, total, nil
}
