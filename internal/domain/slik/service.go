package slik

import (
	"context"
)

// FieldExtractor is the narrow vision-model boundary: image in,
// best-effort subset of the 15 KTP fields out.
type FieldExtractor interface {
	ExtractIdentityFields(ctx context.Context, image []byte, mimeType string) (KTPData, error)
}

// SlikService defines business logic for the KTP capture flow.
type SlikService interface {
	// ExtractFromImage runs the vision boundary and partial-merges the
	// result onto the prior form state. On failure the prior state is
	// returned untouched alongside the error.
	ExtractFromImage(ctx context.Context, prior KTPData, image []byte, mimeType string) (KTPData, error)

	// NormalizeFromJSON resolves a pasted JSON blob through the alias
	// table and fully replaces the form state with resolved-or-default
	// values.
	NormalizeFromJSON(ctx context.Context, req NormalizeJSONRequest) (KTPData, error)

	// Finalize persists a verification after the nik+nama gate passes
	Finalize(ctx context.Context, req FinalizeRequest) (SlikResponse, error)

	// ListMine lists the authenticated profile's recent verifications
	ListMine(ctx context.Context) ([]SlikResponse, error)
}
