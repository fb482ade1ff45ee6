package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/salesops-id/salesops-backend-go/internal/domain/lead"
	"github.com/salesops-id/salesops-backend-go/internal/handler/http/response"
)

type LeadHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type leadHandlerImpl struct {
	leadService lead.LeadService
}

func NewLeadHandler(leadService lead.LeadService) LeadHandler {
	return &leadHandlerImpl{
		leadService: leadService,
	}
}

// Create implements LeadHandler.
func (h *leadHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req lead.CreateLeadRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Lead create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leadService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Lead created", result)
}

// Get implements LeadHandler.
func (h *leadHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "leadID")

	result, err := h.leadService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements LeadHandler.
func (h *leadHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := lead.LeadFilter{}
	q := r.URL.Query()

	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("assigned_to"); v != "" {
		filter.AssignedTo = &v
	}
	if v := q.Get("search"); v != "" {
		filter.Search = &v
	}
	if v := q.Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			filter.Page = page
		}
	}
	if v := q.Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			filter.Limit = limit
		}
	}

	result, err := h.leadService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Leads, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Update implements LeadHandler.
func (h *leadHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "leadID")

	var req lead.UpdateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Lead update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leadService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Lead updated", result)
}

// Delete implements LeadHandler.
func (h *leadHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "leadID")

	if err := h.leadService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Lead deleted", nil)
}
