package profile

import "github.com/salesops-id/salesops-backend-go/internal/pkg/validator"

type UpdateProfileRequest struct {
	FullName  *string `json:"full_name"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatar_url"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full name cannot be empty"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must be a valid Indonesian phone number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateThemeRequest struct {
	Theme string `json:"theme"`
}

func (r *UpdateThemeRequest) Validate() error {
	if !validator.IsInSlice(r.Theme, Themes) {
		return validator.ValidationErrors{
			{Field: "theme", Message: "theme must be light or dark"},
		}
	}
	return nil
}

type ProfileResponse struct {
	ID        string  `json:"profile_id"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	Phone     *string `json:"phone"`
	Role      string  `json:"role"`
	Theme     string  `json:"theme"`
	AvatarURL *string `json:"avatar_url"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
}

func ToResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Phone:     p.Phone,
		Role:      p.Role,
		Theme:     p.Theme,
		AvatarURL: p.AvatarURL,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
