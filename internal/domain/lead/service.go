package lead

import "context"

type LeadService interface {
	Create(ctx context.Context, req CreateLeadRequest) (*LeadResponse, error)
	GetByID(ctx context.Context, id string) (*LeadResponse, error)
	List(ctx context.Context, filter LeadFilter) (*ListLeadsResponse, error)
	Update(ctx context.Context, id string, req UpdateLeadRequest) (*LeadResponse, error)
	Delete(ctx context.Context, id string) error
}
