package profile

import "context"

type ProfileService interface {
	Me(ctx context.Context) (*ProfileResponse, error)
	Update(ctx context.Context, req UpdateProfileRequest) (*ProfileResponse, error)
	UpdateTheme(ctx context.Context, req UpdateThemeRequest) (*ProfileResponse, error)
	List(ctx context.Context) ([]ProfileResponse, error)
}
