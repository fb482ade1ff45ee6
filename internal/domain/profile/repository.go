package profile

import "context"

type ProfileRepository interface {
	Create(ctx context.Context, p Profile) (Profile, error)
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	GetByGoogleID(ctx context.Context, googleID string) (*Profile, error)
	Update(ctx context.Context, p Profile) (Profile, error)
	UpdateTheme(ctx context.Context, id, theme string) error
	List(ctx context.Context) ([]Profile, error)
}
