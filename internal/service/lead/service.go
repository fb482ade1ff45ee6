package lead

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/salesops-id/salesops-backend-go/internal/domain/lead"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/database"
)

type LeadServiceImpl struct {
	db *database.DB
	lead.LeadRepository
}

func NewLeadService(db *database.DB, repo lead.LeadRepository) *LeadServiceImpl {
	return &LeadServiceImpl{db: db, LeadRepository: repo}
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

// Create implements lead.LeadService. New leads always start in "new".
func (s *LeadServiceImpl) Create(ctx context.Context, req lead.CreateLeadRequest) (*lead.LeadResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profileID, err := profileIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	created, err := s.LeadRepository.Create(ctx, lead.Lead{
		Name:       req.Name,
		Phone:      req.Phone,
		Source:     req.Source,
		Status:     lead.StatusNew,
		Notes:      req.Notes,
		AssignedTo: req.AssignedTo,
		CreatedBy:  profileID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	resp := toResponse(created)
	return &resp, nil
}

// GetByID implements lead.LeadService.
func (s *LeadServiceImpl) GetByID(ctx context.Context, id string) (*lead.LeadResponse, error) {
	found, err := s.LeadRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, lead.ErrLeadNotFound
	}

	resp := toResponse(*found)
	return &resp, nil
}

// List implements lead.LeadService.
func (s *LeadServiceImpl) List(ctx context.Context, filter lead.LeadFilter) (*lead.ListLeadsResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	leads, total, err := s.LeadRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	resp := &lead.ListLeadsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Leads:      make([]lead.LeadResponse, 0, len(leads)),
	}
	for _, l := range leads {
		resp.Leads = append(resp.Leads, toResponse(l))
	}
	return resp, nil
}

// Update implements lead.LeadService. Only fields present in the request
// change; everything else keeps its stored value.
func (s *LeadServiceImpl) Update(ctx context.Context, id string, req lead.UpdateLeadRequest) (*lead.LeadResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.LeadRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, lead.ErrLeadNotFound
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Phone != nil {
		existing.Phone = *req.Phone
	}
	if req.Source != nil {
		existing.Source = req.Source
	}
	if req.Status != nil {
		existing.Status = *req.Status
	}
	if req.Notes != nil {
		existing.Notes = req.Notes
	}
	if req.AssignedTo != nil {
		existing.AssignedTo = req.AssignedTo
	}

	updated, err := s.LeadRepository.Update(ctx, *existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	resp := toResponse(updated)
	return &resp, nil
}

// Delete implements lead.LeadService.
func (s *LeadServiceImpl) Delete(ctx context.Context, id string) error {
	return s.LeadRepository.Delete(ctx, id)
}

func toResponse(l lead.Lead) lead.LeadResponse {
	return lead.LeadResponse{
		ID:         l.ID,
		Name:       l.Name,
		Phone:      l.Phone,
		Source:     l.Source,
		Status:     l.Status,
		Notes:      l.Notes,
		AssignedTo: l.AssignedTo,
		CreatedBy:  l.CreatedBy,
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  l.UpdatedAt.Format(time.RFC3339),
	}
}
