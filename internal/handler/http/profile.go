package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/salesops-id/salesops-backend-go/internal/domain/profile"
	"github.com/salesops-id/salesops-backend-go/internal/handler/http/response"
)

type ProfileHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateTheme(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type profileHandlerImpl struct {
	profileService profile.ProfileService
}

func NewProfileHandler(profileService profile.ProfileService) ProfileHandler {
	return &profileHandlerImpl{
		profileService: profileService,
	}
}

// Me implements ProfileHandler.
func (h *profileHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	result, err := h.profileService.Me(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements ProfileHandler.
func (h *profileHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req profile.UpdateProfileRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Profile update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.profileService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated", result)
}

// UpdateTheme implements ProfileHandler.
func (h *profileHandlerImpl) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	var req profile.UpdateThemeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Theme update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.profileService.UpdateTheme(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Theme updated", result)
}

// List implements ProfileHandler.
func (h *profileHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.profileService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
