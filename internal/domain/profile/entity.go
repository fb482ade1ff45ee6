package profile

import "time"

const (
	RoleAdmin     = "admin"
	RoleMarketing = "marketing"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

var Themes = []string{ThemeLight, ThemeDark}

// Profile is an application account. Password is nil for accounts
// provisioned through Google sign-in.
type Profile struct {
	ID        string
	Email     string
	Password  *string
	GoogleID  *string
	FullName  string
	Phone     *string
	Role      string
	Theme     string
	AvatarURL *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
