package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/salesops-id/salesops-backend-go/internal/domain/slik"
	"github.com/salesops-id/salesops-backend-go/internal/handler/http/response"
	"github.com/salesops-id/salesops-backend-go/internal/service/file"
)

type SlikHandler interface {
	ExtractFromImage(w http.ResponseWriter, r *http.Request)
	NormalizeJSON(w http.ResponseWriter, r *http.Request)
	Finalize(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type slikHandlerImpl struct {
	slikService slik.SlikService
	fileService file.FileService
}

func NewSlikHandler(slikService slik.SlikService, fileService file.FileService) SlikHandler {
	return &slikHandlerImpl{
		slikService: slikService,
		fileService: fileService,
	}
}

type extractResponse struct {
	Data        slik.KTPData `json:"data"`
	KTPImageURL *string      `json:"ktp_image_url,omitempty"`
}

// ExtractFromImage implements SlikHandler. Multipart upload: the card
// photo under "image", and optionally the current form state as JSON
// under "data".
func (h *slikHandlerImpl) ExtractFromImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("ExtractFromImage failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	var prior slik.KTPData
	if dataJSON := r.FormValue("data"); dataJSON != "" {
		if err := json.Unmarshal([]byte(dataJSON), &prior); err != nil {
			slog.Error("ExtractFromImage failed to unmarshal prior data", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	imageFile, fileHeader, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "KTP image is required", nil)
			return
		}
		slog.Error("ExtractFromImage failed to read file", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer imageFile.Close()

	imageBytes, err := io.ReadAll(imageFile)
	if err != nil {
		slog.Error("ExtractFromImage failed to buffer file", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	result, err := h.slikService.ExtractFromImage(r.Context(), prior, imageBytes, mimeType)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := extractResponse{Data: result}

	// Keep the original photo so finalize can attach it. Upload failure
	// is not fatal; the extraction result is still useful.
	_, claims, _ := jwtauth.FromContext(r.Context())
	if profileID, ok := claims["profile_id"].(string); ok && profileID != "" {
		uploadedPath, err := h.fileService.UploadKTPImage(r.Context(), profileID, bytes.NewReader(imageBytes), fileHeader.Filename)
		if err != nil {
			slog.Error("ExtractFromImage failed to store photo", "error", err)
		} else {
			resp.KTPImageURL = &uploadedPath
		}
	}

	response.Success(w, resp)
}

// NormalizeJSON implements SlikHandler.
func (h *slikHandlerImpl) NormalizeJSON(w http.ResponseWriter, r *http.Request) {
	var req slik.NormalizeJSONRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("NormalizeJSON decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.slikService.NormalizeFromJSON(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, slik.ExtractionResponse{Data: result})
}

// Finalize implements SlikHandler.
func (h *slikHandlerImpl) Finalize(w http.ResponseWriter, r *http.Request) {
	var req slik.FinalizeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Finalize decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.slikService.Finalize(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Slik verification saved", result)
}

// ListMine implements SlikHandler.
func (h *slikHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.slikService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
