package attendance

import (
	"time"
)

// Attendance status values stored in the database.
const (
	StatusPresent    = "present"
	StatusLate       = "late"
	StatusSick       = "sick"
	StatusPermission = "permission"
	StatusLeave      = "leave"
)

// Permission subtype values. Only meaningful when Status is "permission".
const (
	PermissionNone    = "none"
	PermissionHalfday = "halfday"
	PermissionFullday = "fullday"
)

// Leave categories accepted from clients.
const (
	CategoryIzin  = "izin"
	CategorySakit = "sakit"
	CategoryCuti  = "cuti"
)

// Attendance is one row per profile per business day.
// ClockIn/ClockOut are local times of day in "15:04:05" form.
type Attendance struct {
	ID             string
	ProfileID      string
	Date           time.Time
	ClockIn        *string
	ClockOut       *string
	Status         string
	PermissionType string
	Latitude       *float64
	Longitude      *float64
	LocationName   *string
	Notes          *string
	DeviceInfo     *string
	BrowserInfo    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
