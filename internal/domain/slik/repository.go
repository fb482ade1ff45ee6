package slik

import (
	"context"
)

// SlikRepository defines data access for finalized verifications.
type SlikRepository interface {
	// Create inserts a finalized slik row and returns it
	Create(ctx context.Context, s Slik) (Slik, error)

	// ListByCreator lists recent verifications by a profile, newest first
	ListByCreator(ctx context.Context, profileID string, limit int) ([]Slik, error)

	// GetByID retrieves one verification, nil when absent
	GetByID(ctx context.Context, id string) (*Slik, error)
}
