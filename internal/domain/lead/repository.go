package lead

import "context"

type LeadRepository interface {
	Create(ctx context.Context, l Lead) (Lead, error)
	GetByID(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]Lead, int64, error)
	Update(ctx context.Context, l Lead) (Lead, error)
	Delete(ctx context.Context, id string) error
}
