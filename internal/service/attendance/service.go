package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/salesops-id/salesops-backend-go/internal/domain/attendance"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/database"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/geocode"
)

// Clock-ins after this local time of day are marked late.
const lateCutoff = "09:15:00"

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	geocoder geocode.ReverseGeocoder
	location *time.Location
	now      func() time.Time
}

func NewAttendanceService(db *database.DB, repo attendance.AttendanceRepository, geocoder geocode.ReverseGeocoder, timezone string) *AttendanceServiceImpl {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: repo,
		geocoder:             geocoder,
		location:             loc,
		now:                  time.Now,
	}
}

func profileIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	profileID, ok := claims["profile_id"].(string)
	if !ok || profileID == "" {
		return "", fmt.Errorf("profile_id claim is missing or invalid")
	}
	return profileID, nil
}

// isLate reports whether t falls strictly after the late cutoff on its own day.
func (a *AttendanceServiceImpl) isLate(t time.Time) bool {
	cutoff := time.Date(t.Year(), t.Month(), t.Day(), 9, 15, 0, 0, t.Location())
	return t.After(cutoff)
}

// resolveLocationName prefers the caller-supplied label, then reverse
// geocoding, then the bare coordinates.
func (a *AttendanceServiceImpl) resolveLocationName(ctx context.Context, req attendance.ClockInRequest) *string {
	if req.LocationName != "" {
		return &req.LocationName
	}
	if req.Latitude == nil || req.Longitude == nil {
		return nil
	}
	name, err := a.geocoder.ReverseGeocode(ctx, *req.Latitude, *req.Longitude)
	if err != nil {
		fallback := geocode.FallbackLabel(*req.Latitude, *req.Longitude)
		return &fallback
	}
	return &name
}

// ClockIn implements attendance.AttendanceService. One row per profile per
// day: a repeated clock-in overwrites clock_in, status, and location on the
// existing row but never touches clock_out.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	profileID, err := profileIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowLocal := a.now().In(a.location)
	dateLocal := nowLocal.Format("2006-01-02")
	clockIn := nowLocal.Format("15:04:05")

	status := attendance.StatusPresent
	if a.isLate(nowLocal) {
		status = attendance.StatusLate
	}

	locationName := a.resolveLocationName(ctx, req)

	existing, err := a.AttendanceRepository.GetByProfileAndDate(ctx, profileID, dateLocal)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}

	var saved attendance.Attendance
	if existing == nil {
		saved, err = a.AttendanceRepository.Create(ctx, attendance.Attendance{
			ProfileID:      profileID,
			Date:           nowLocal,
			ClockIn:        &clockIn,
			Status:         status,
			PermissionType: attendance.PermissionNone,
			Latitude:       req.Latitude,
			Longitude:      req.Longitude,
			LocationName:   locationName,
			DeviceInfo:     req.DeviceInfo,
			BrowserInfo:    req.BrowserInfo,
		})
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
		}
	} else {
		existing.ClockIn = &clockIn
		existing.Status = status
		existing.Latitude = req.Latitude
		existing.Longitude = req.Longitude
		existing.LocationName = locationName
		existing.DeviceInfo = req.DeviceInfo
		existing.BrowserInfo = req.BrowserInfo
		saved, err = a.AttendanceRepository.UpdateClockIn(ctx, *existing)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
		}
	}

	resp := toResponse(saved)
	return resp, nil
}

// ClockOut implements attendance.AttendanceService. It only fills
// clock_out on an existing row owned by the caller.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	profileID, err := profileIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	clockOut := a.now().In(a.location).Format("15:04:05")
	updated, err := a.AttendanceRepository.UpdateClockOut(ctx, req.AttendanceID, profileID, clockOut)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(updated), nil
}

// SubmitLeave implements attendance.AttendanceService. Leave always
// inserts a new row, even when a clock-in row already exists for the day.
func (a *AttendanceServiceImpl) SubmitLeave(ctx context.Context, req attendance.SubmitLeaveRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	profileID, err := profileIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var status, permissionType string
	switch req.Category {
	case attendance.CategoryIzin:
		status = attendance.StatusPermission
		permissionType = req.PermissionType
	case attendance.CategorySakit:
		status = attendance.StatusSick
		permissionType = attendance.PermissionNone
	case attendance.CategoryCuti:
		status = attendance.StatusLeave
		permissionType = attendance.PermissionNone
	default:
		return attendance.AttendanceResponse{}, attendance.ErrInvalidCategory
	}

	// Date defaults to the current business day when omitted.
	date := a.now().In(a.location)
	if req.Date != "" {
		date, err = time.ParseInLocation("2006-01-02", req.Date, a.location)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse leave date: %w", err)
		}
	}

	var notes *string
	if req.Notes != "" {
		notes = &req.Notes
	}

	created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		ProfileID:      profileID,
		Date:           date,
		Status:         status,
		PermissionType: permissionType,
		Notes:          notes,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to submit leave: %w", err)
	}

	return toResponse(created), nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context) (*attendance.AttendanceResponse, error) {
	profileID, err := profileIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	dateLocal := a.now().In(a.location).Format("2006-01-02")
	record, err := a.AttendanceRepository.GetByProfileAndDate(ctx, profileID, dateLocal)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return nil, attendance.ErrAttendanceNotFound
	}

	resp := toResponse(*record)
	return &resp, nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, filter attendance.HistoryFilter) (*attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	profileID, err := profileIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, total, err := a.AttendanceRepository.History(ctx, profileID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}

	resp := &attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		Attendances: make([]attendance.AttendanceResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Attendances = append(resp.Attendances, toResponse(rec))
	}
	return resp, nil
}

func toResponse(rec attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:             rec.ID,
		ProfileID:      rec.ProfileID,
		Date:           rec.Date.Format("2006-01-02"),
		ClockIn:        rec.ClockIn,
		ClockOut:       rec.ClockOut,
		Status:         rec.Status,
		PermissionType: rec.PermissionType,
		DisplayStatus:  attendance.DisplayStatus(rec.Status, rec.PermissionType),
		Latitude:       rec.Latitude,
		Longitude:      rec.Longitude,
		LocationName:   rec.LocationName,
		Notes:          rec.Notes,
		CreatedAt:      rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      rec.UpdatedAt.Format(time.RFC3339),
	}
}
