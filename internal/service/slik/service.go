package slik

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/salesops-id/salesops-backend-go/internal/domain/slik"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/database"
)

// KTP cards print dates as DD-MM-YYYY.
const ktpDateLayout = "02-01-2006"

type SlikServiceImpl struct {
	db *database.DB
	slik.SlikRepository
	extractor slik.FieldExtractor
}

func NewSlikService(db *database.DB, repo slik.SlikRepository, extractor slik.FieldExtractor) *SlikServiceImpl {
	return &SlikServiceImpl{
		db:             db,
		SlikRepository: repo,
		extractor:      extractor,
	}
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

// ExtractFromImage implements slik.SlikService. Extracted fields land on
// top of whatever the operator already typed; blanks from the model never
// erase prior values.
func (s *SlikServiceImpl) ExtractFromImage(ctx context.Context, prior slik.KTPData, image []byte, mimeType string) (slik.KTPData, error) {
	if len(image) == 0 {
		return prior, fmt.Errorf("%w: empty image", slik.ErrExtractionFailed)
	}

	extracted, err := s.extractor.ExtractIdentityFields(ctx, image, mimeType)
	if err != nil {
		return prior, err
	}

	return slik.PartialMerge.Merge(prior, extracted), nil
}

// NormalizeFromJSON implements slik.SlikService. A successful paste
// replaces the whole form, with empties backfilled from defaults.
func (s *SlikServiceImpl) NormalizeFromJSON(ctx context.Context, req slik.NormalizeJSONRequest) (slik.KTPData, error) {
	if err := req.Validate(); err != nil {
		return req.Prior, err
	}

	parsed, err := slik.NormalizeFromJSON(req.RawJSON)
	if err != nil {
		return req.Prior, err
	}

	return slik.FullReplaceWithDefaults.Merge(req.Prior, parsed), nil
}

// Finalize implements slik.SlikService.
func (s *SlikServiceImpl) Finalize(ctx context.Context, req slik.FinalizeRequest) (slik.SlikResponse, error) {
	if err := req.Validate(); err != nil {
		return slik.SlikResponse{}, err
	}

	profileID, err := profileIDFromContext(ctx)
	if err != nil {
		return slik.SlikResponse{}, err
	}

	rt, rw := splitRTRW(req.Data.RTRW)

	record := slik.Slik{
		CreatedBy:     profileID,
		NIK:           strings.TrimSpace(req.Data.NIK),
		FullName:      strings.TrimSpace(req.Data.Nama),
		BirthPlace:    optional(req.Data.TempatLahir),
		BirthDate:     parseKTPDate(req.Data.TanggalLahir),
		Gender:        optional(req.Data.JenisKelamin),
		BloodType:     optional(req.Data.GolonganDarah),
		Address:       optional(req.Data.Alamat),
		RT:            rt,
		RW:            rw,
		Village:       optional(req.Data.KelDesa),
		District:      optional(req.Data.Kecamatan),
		Religion:      optional(req.Data.Agama),
		MaritalStatus: optional(req.Data.StatusPerkawinan),
		Occupation:    optional(req.Data.Pekerjaan),
		Nationality:   optional(req.Data.Kewarganegaraan),
		ExpiryDate:    parseKTPDate(req.Data.BerlakuHingga),
		KTPImageURL:   req.KTPImageURL,
		Status:        slik.StatusPending,
	}

	created, err := s.SlikRepository.Create(ctx, record)
	if err != nil {
		return slik.SlikResponse{}, fmt.Errorf("failed to save slik verification: %w", err)
	}

	return toResponse(created), nil
}

// ListMine implements slik.SlikService.
func (s *SlikServiceImpl) ListMine(ctx context.Context) ([]slik.SlikResponse, error) {
	profileID, err := profileIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.SlikRepository.ListByCreator(ctx, profileID, 50)
	if err != nil {
		return nil, fmt.Errorf("failed to list slik verifications: %w", err)
	}

	resp := make([]slik.SlikResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toResponse(rec))
	}
	return resp, nil
}

// splitRTRW breaks "003/011" into its halves. Anything without a slash
// is stored as the RT alone.
func splitRTRW(raw string) (*string, *string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.SplitN(raw, "/", 2)
	rt := strings.TrimSpace(parts[0])
	var rtPtr, rwPtr *string
	if rt != "" {
		rtPtr = &rt
	}
	if len(parts) == 2 {
		rw := strings.TrimSpace(parts[1])
		if rw != "" {
			rwPtr = &rw
		}
	}
	return rtPtr, rwPtr
}

// parseKTPDate returns nil for anything that is not a DD-MM-YYYY date,
// including "SEUMUR HIDUP" expiry values.
func parseKTPDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse(ktpDateLayout, raw)
	if err != nil {
		return nil
	}
	return &parsed
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02")
	return &formatted
}

func toResponse(rec slik.Slik) slik.SlikResponse {
	return slik.SlikResponse{
		ID:            rec.ID,
		CreatedBy:     rec.CreatedBy,
		NIK:           rec.NIK,
		FullName:      rec.FullName,
		BirthPlace:    rec.BirthPlace,
		BirthDate:     formatDate(rec.BirthDate),
		Gender:        rec.Gender,
		BloodType:     rec.BloodType,
		Address:       rec.Address,
		RT:            rec.RT,
		RW:            rec.RW,
		Village:       rec.Village,
		District:      rec.District,
		Religion:      rec.Religion,
		MaritalStatus: rec.MaritalStatus,
		Occupation:    rec.Occupation,
		Nationality:   rec.Nationality,
		ExpiryDate:    formatDate(rec.ExpiryDate),
		KTPImageURL:   rec.KTPImageURL,
		Status:        rec.Status,
		CreatedAt:     rec.CreatedAt.Format(time.RFC3339),
	}
}
