package attendance

// DisplayStatus maps a stored (status, permission_type) pair to the label
// shown on the attendance card. Unknown or missing statuses fall back to
// "Not Checked In".
func DisplayStatus(status, permissionType string) string {
	switch status {
	case StatusPresent:
		return "Present"
	case StatusLate:
		return "Late"
	case StatusSick:
		return "Sick"
	case StatusLeave:
		return "On Leave"
	case StatusPermission:
		switch permissionType {
		case PermissionHalfday:
			return "Permission – Half Day"
		case PermissionFullday:
			return "Permission – Full Day"
		default:
			return "Permission"
		}
	default:
		return "Not Checked In"
	}
}
