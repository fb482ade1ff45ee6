package attendance

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesops-id/salesops-backend-go/internal/domain/attendance"
)

type fakeAttendanceRepo struct {
	seq  int
	rows []*attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	f.seq++
	a.ID = fmt.Sprintf("att-%d", f.seq)
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	stored := a
	f.rows = append(f.rows, &stored)
	return a, nil
}

func (f *fakeAttendanceRepo) GetByProfileAndDate(_ context.Context, profileID, date string) (*attendance.Attendance, error) {
	for _, r := range f.rows {
		if r.ProfileID == profileID && r.Date.Format("2006-01-02") == date {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) UpdateClockIn(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	for _, r := range f.rows {
		if r.ID == a.ID {
			r.ClockIn = a.ClockIn
			r.Status = a.Status
			r.PermissionType = a.PermissionType
			r.Latitude = a.Latitude
			r.Longitude = a.Longitude
			r.LocationName = a.LocationName
			r.DeviceInfo = a.DeviceInfo
			r.BrowserInfo = a.BrowserInfo
			r.UpdatedAt = time.Now()
			cp := *r
			return cp, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) UpdateClockOut(_ context.Context, id, profileID, clockOut string) (attendance.Attendance, error) {
	for _, r := range f.rows {
		if r.ID == id && r.ProfileID == profileID {
			r.ClockOut = &clockOut
			r.UpdatedAt = time.Now()
			cp := *r
			return cp, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) History(_ context.Context, profileID string, filter attendance.HistoryFilter) ([]attendance.Attendance, int64, error) {
	var matched []attendance.Attendance
	for _, r := range f.rows {
		if r.ProfileID != profileID {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		matched = append(matched, *r)
	}
	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

type fakeGeocoder struct {
	name string
	err  error
}

func (f *fakeGeocoder) ReverseGeocode(_ context.Context, _, _ float64) (string, error) {
	return f.name, f.err
}

func ctxWithProfile(t *testing.T, profileID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{"profile_id": profileID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo *fakeAttendanceRepo, at time.Time) *AttendanceServiceImpl {
	svc := NewAttendanceService(nil, repo, &fakeGeocoder{name: "Jl. Sudirman No. 1, Jakarta"}, "Asia/Jakarta")
	svc.now = func() time.Time { return at }
	return svc
}

// jakarta builds an instant whose Asia/Jakarta wall clock reads the given time.
func jakarta(t *testing.T, year int, month time.Month, day, hour, min, sec int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return time.Date(year, month, day, hour, min, sec, 0, loc)
}

func TestClockInBeforeCutoffIsPresent(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, jakarta(t, 2024, 8, 12, 8, 59, 59))

	resp, err := svc.ClockIn(ctxWithProfile(t, "p1"), attendance.ClockInRequest{})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Equal(t, "Present", resp.DisplayStatus)
	require.NotNil(t, resp.ClockIn)
	assert.Equal(t, "08:59:59", *resp.ClockIn)
	assert.Equal(t, "2024-08-12", resp.Date)
}

func TestClockInAtExactCutoffIsPresent(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, jakarta(t, 2024, 8, 12, 9, 15, 0))

	resp, err := svc.ClockIn(ctxWithProfile(t, "p1"), attendance.ClockInRequest{})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
}

func TestClockInAfterCutoffIsLate(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, jakarta(t, 2024, 8, 12, 9, 15, 1))

	resp, err := svc.ClockIn(ctxWithProfile(t, "p1"), attendance.ClockInRequest{})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, resp.Status)
	assert.Equal(t, "Late", resp.DisplayStatus)
}

func TestClockInTwiceOverwritesSameRow(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, jakarta(t, 2024, 8, 12, 8, 0, 0))

	first, err := svc.ClockIn(ctxWithProfile(t, "p1"), attendance.ClockInRequest{})
	require.NoError(t, err)

	// Clock out, then clock in again later the same day.
	_, err = svc.ClockOut(ctxWithProfile(t, "p1"), attendance.ClockOutRequest{AttendanceID: first.ID})
	require.NoError(t, err)

	svc.now = func() time.Time { return jakarta(t, 2024, 8, 12, 10, 0, 0) }
	second, err := svc.ClockIn(ctxWithProfile(t, "p1"), attendance.ClockInRequest{})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.rows, 1)
	assert.Equal(t, attendance.StatusLate, second.Status)
	require.NotNil(t, second.ClockIn)
	assert.Equal(t, "10:00:00", *second.ClockIn)
	// The earlier clock-out must survive the overwrite.
	require.NotNil(t, second.ClockOut)
	assert.Equal(t, "08:00:00", *second.ClockOut)
}

func TestClockInResolvesLocationName(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, jakarta(t, 2024, 8, 12, 8, 0, 0))

	lat, lon := -6.2088, 106.8456
	resp, err := svc.ClockIn(ctxWithProfile(t, "p1"), attendance.ClockInRequest{Latitude: &lat, Longitude: &lon})
	require.NoError(t, err)
	require.NotNil(t, resp.LocationName)
	assert.Equal(t, "Jl. Sudirman No. 1, Jakarta", *resp.LocationName)
}

func TestClockInFallsBackToCoordinates(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, jakarta(t, 2024, 8, 12, 8, 0, 0))
	svc.geocoder = &fakeGeocoder{err: errors.New("timeout")}

	lat, lon := -6.2088, 106.8456
	resp, err := svc.ClockIn(ctxWithProfile(t, "p1"), attendance.ClockInRequest{Latitude: &lat, Longitude: &lon})
	require.NoError(t, err)
	require.NotNil(t, resp.LocationName)
	assert.Equal(t, "-6.208800, 106.845600", *resp.LocationName)
}

func TestClockOutUnknownRow(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, jakarta(t, 2024, 8, 12, 17, 0, 0))

	_, err := svc.ClockOut(ctxWithProfile(t, "p1"), attendance.ClockOutRequest{AttendanceID: "missing"})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestClockOutRejectsOtherProfilesRow(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, jakarta(t, 2024, 8, 12, 8, 0, 0))

	resp, err := svc.ClockIn(ctxWithProfile(t, "p1"), attendance.ClockInRequest{})
	require.NoError(t, err)

	_, err = svc.ClockOut(ctxWithProfile(t, "p2"), attendance.ClockOutRequest{AttendanceID: resp.ID})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)

	today, err := svc.GetToday(ctxWithProfile(t, "p1"))
	require.NoError(t, err)
	assert.Nil(t, today.ClockOut)
}

func TestSubmitLeaveMapsCategories(t *testing.T) {
	tests := []struct {
		name           string
		req            attendance.SubmitLeaveRequest
		wantStatus     string
		wantPermission string
		wantDisplay    string
	}{
		{
			name:           "izin halfday",
			req:            attendance.SubmitLeaveRequest{Category: "izin", PermissionType: "halfday", Date: "2024-08-12"},
			wantStatus:     attendance.StatusPermission,
			wantPermission: attendance.PermissionHalfday,
			wantDisplay:    "Permission – Half Day",
		},
		{
			name:           "izin fullday",
			req:            attendance.SubmitLeaveRequest{Category: "izin", PermissionType: "fullday", Date: "2024-08-12"},
			wantStatus:     attendance.StatusPermission,
			wantPermission: attendance.PermissionFullday,
			wantDisplay:    "Permission – Full Day",
		},
		{
			name:           "sakit",
			req:            attendance.SubmitLeaveRequest{Category: "sakit", Date: "2024-08-12"},
			wantStatus:     attendance.StatusSick,
			wantPermission: attendance.PermissionNone,
			wantDisplay:    "Sick",
		},
		{
			name:           "cuti",
			req:            attendance.SubmitLeaveRequest{Category: "cuti", Date: "2024-08-12"},
			wantStatus:     attendance.StatusLeave,
			wantPermission: attendance.PermissionNone,
			wantDisplay:    "On Leave",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAttendanceRepo{}
			svc := newTestService(repo, jakarta(t, 2024, 8, 12, 8, 0, 0))

			resp, err := svc.SubmitLeave(ctxWithProfile(t, "p1"), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantPermission, resp.PermissionType)
			assert.Equal(t, tt.wantDisplay, resp.DisplayStatus)
			assert.Nil(t, resp.ClockIn)
		})
	}
}

func TestSubmitLeaveInsertsEvenWhenClockInExists(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, jakarta(t, 2024, 8, 12, 8, 0, 0))

	_, err := svc.ClockIn(ctxWithProfile(t, "p1"), attendance.ClockInRequest{})
	require.NoError(t, err)

	_, err = svc.SubmitLeave(ctxWithProfile(t, "p1"), attendance.SubmitLeaveRequest{
		Category: "sakit", Date: "2024-08-12",
	})
	require.NoError(t, err)

	// Leave goes through the insert path, so the day ends up with two rows.
	assert.Len(t, repo.rows, 2)
}

func TestSubmitLeaveDefaultsDateToToday(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, jakarta(t, 2024, 8, 12, 8, 0, 0))

	resp, err := svc.SubmitLeave(ctxWithProfile(t, "p1"), attendance.SubmitLeaveRequest{
		Category: "sakit", Notes: "demam",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-08-12", resp.Date)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "demam", *resp.Notes)
}

func TestClockInKeepsExistingPermissionSubtype(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, jakarta(t, 2024, 8, 12, 8, 0, 0))
	ctx := ctxWithProfile(t, "p1")

	_, err := svc.SubmitLeave(ctx, attendance.SubmitLeaveRequest{
		Category: "izin", PermissionType: "halfday", Date: "2024-08-12",
	})
	require.NoError(t, err)

	resp, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Equal(t, attendance.PermissionHalfday, resp.PermissionType)
}

func TestSubmitLeaveInvalidCategory(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, jakarta(t, 2024, 8, 12, 8, 0, 0))

	_, err := svc.SubmitLeave(ctxWithProfile(t, "p1"), attendance.SubmitLeaveRequest{
		Category: "liburan", Date: "2024-08-12",
	})
	assert.Error(t, err)
}

func TestGetToday(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, jakarta(t, 2024, 8, 12, 8, 0, 0))

	_, err := svc.GetToday(ctxWithProfile(t, "p1"))
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)

	_, err = svc.ClockIn(ctxWithProfile(t, "p1"), attendance.ClockInRequest{})
	require.NoError(t, err)

	resp, err := svc.GetToday(ctxWithProfile(t, "p1"))
	require.NoError(t, err)
	assert.Equal(t, "2024-08-12", resp.Date)
}

func TestHistoryPagination(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, jakarta(t, 2024, 8, 12, 8, 0, 0))
	ctx := ctxWithProfile(t, "p1")

	for day := 1; day <= 25; day++ {
		svc.now = func() time.Time { return jakarta(t, 2024, 7, day, 8, 0, 0) }
		_, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
		require.NoError(t, err)
	}

	resp, err := svc.History(ctx, attendance.HistoryFilter{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), resp.TotalCount)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Len(t, resp.Attendances, 10)
}

func TestHistoryDefaultsPaging(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, jakarta(t, 2024, 8, 12, 8, 0, 0))
	ctx := ctxWithProfile(t, "p1")

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	resp, err := svc.History(ctx, attendance.HistoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Len(t, resp.Attendances, 1)
}

func TestUnauthenticatedContext(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, jakarta(t, 2024, 8, 12, 8, 0, 0))

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{})
	assert.Error(t, err)
}
