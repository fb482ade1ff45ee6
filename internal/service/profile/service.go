package profile

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/salesops-id/salesops-backend-go/internal/domain/profile"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/database"
)

type ProfileServiceImpl struct {
	db *database.DB
	profile.ProfileRepository
}

func NewProfileService(db *database.DB, repo profile.ProfileRepository) *ProfileServiceImpl {
	return &ProfileServiceImpl{db: db, ProfileRepository: repo}
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

// Me implements profile.ProfileService.
func (s *ProfileServiceImpl) Me(ctx context.Context) (*profile.ProfileResponse, error) {
	profileID, err := profileIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	found, err := s.ProfileRepository.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, profile.ErrProfileNotFound
	}

	resp := profile.ToResponse(*found)
	return &resp, nil
}

// Update implements profile.ProfileService.
func (s *ProfileServiceImpl) Update(ctx context.Context, req profile.UpdateProfileRequest) (*profile.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profileID, err := profileIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.ProfileRepository.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, profile.ErrProfileNotFound
	}

	if req.FullName != nil {
		existing.FullName = *req.FullName
	}
	if req.Phone != nil {
		existing.Phone = req.Phone
	}
	if req.AvatarURL != nil {
		existing.AvatarURL = req.AvatarURL
	}

	updated, err := s.ProfileRepository.Update(ctx, *existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	resp := profile.ToResponse(updated)
	return &resp, nil
}

// UpdateTheme implements profile.ProfileService. The preference is
// stored server side so the console renders consistently across devices.
func (s *ProfileServiceImpl) UpdateTheme(ctx context.Context, req profile.UpdateThemeRequest) (*profile.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profileID, err := profileIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.ProfileRepository.UpdateTheme(ctx, profileID, req.Theme); err != nil {
		return nil, fmt.Errorf("failed to update theme: %w", err)
	}

	return s.Me(ctx)
}

// List implements profile.ProfileService.
func (s *ProfileServiceImpl) List(ctx context.Context) ([]profile.ProfileResponse, error) {
	profiles, err := s.ProfileRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	resp := make([]profile.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		resp = append(resp, profile.ToResponse(p))
	}
	return resp, nil
}
