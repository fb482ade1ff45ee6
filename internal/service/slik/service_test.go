package slik

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesops-id/salesops-backend-go/internal/domain/slik"
)

type fakeSlikRepo struct {
	seq  int
	rows []slik.Slik
}

func (f *fakeSlikRepo) Create(_ context.Context, s slik.Slik) (slik.Slik, error) {
	f.seq++
	s.ID = fmt.Sprintf("slik-%d", f.seq)
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	f.rows = append(f.rows, s)
	return s, nil
}

func (f *fakeSlikRepo) ListByCreator(_ context.Context, profileID string, limit int) ([]slik.Slik, error) {
	var out []slik.Slik
	for i := len(f.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if f.rows[i].CreatedBy == profileID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *fakeSlikRepo) GetByID(_ context.Context, id string) (*slik.Slik, error) {
	for _, r := range f.rows {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeExtractor struct {
	data slik.KTPData
	err  error
}

func (f *fakeExtractor) ExtractIdentityFields(_ context.Context, _ []byte, _ string) (slik.KTPData, error) {
	return f.data, f.err
}

func ctxWithProfile(t *testing.T, profileID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{"profile_id": profileID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestExtractFromImageMergesOntoPrior(t *testing.T) {
	repo := &fakeSlikRepo{}
	svc := NewSlikService(nil, repo, &fakeExtractor{
		data: slik.KTPData{NIK: "3201234567890001", Nama: "BUDI SANTOSO"},
	})

	prior := slik.KTPData{Alamat: "Jl. Melati No. 5", Nama: "typo name"}
	merged, err := svc.ExtractFromImage(context.Background(), prior, []byte("img"), "image/jpeg")
	require.NoError(t, err)

	// Extracted fields win, but blanks never erase operator input.
	assert.Equal(t, "3201234567890001", merged.NIK)
	assert.Equal(t, "BUDI SANTOSO", merged.Nama)
	assert.Equal(t, "Jl. Melati No. 5", merged.Alamat)
}

func TestExtractFromImageFailureKeepsPrior(t *testing.T) {
	svc := NewSlikService(nil, &fakeSlikRepo{}, &fakeExtractor{err: slik.ErrExtractionFailed})

	prior := slik.KTPData{NIK: "123"}
	result, err := svc.ExtractFromImage(context.Background(), prior, []byte("img"), "image/jpeg")
	assert.ErrorIs(t, err, slik.ErrExtractionFailed)
	assert.Equal(t, prior, result)
}

func TestExtractFromImageEmptyImage(t *testing.T) {
	svc := NewSlikService(nil, &fakeSlikRepo{}, &fakeExtractor{})

	_, err := svc.ExtractFromImage(context.Background(), slik.KTPData{}, nil, "image/jpeg")
	assert.ErrorIs(t, err, slik.ErrExtractionFailed)
}

func TestNormalizeFromJSONReplacesForm(t *testing.T) {
	svc := NewSlikService(nil, &fakeSlikRepo{}, &fakeExtractor{})

	prior := slik.KTPData{Alamat: "old address", NIK: "old"}
	result, err := svc.NormalizeFromJSON(context.Background(), slik.NormalizeJSONRequest{
		Prior:   prior,
		RawJSON: `{"NIK": "3201234567890001", "nama_lengkap": "SITI AMINAH"}`,
	})
	require.NoError(t, err)

	assert.Equal(t, "3201234567890001", result.NIK)
	assert.Equal(t, "SITI AMINAH", result.Nama)
	// Full replace: prior address is gone, defaults backfill the rest.
	assert.Equal(t, "", result.Alamat)
	assert.Equal(t, slik.DefaultKewarganegaraan, result.Kewarganegaraan)
	assert.Equal(t, slik.DefaultBerlakuHingga, result.BerlakuHingga)
}

func TestNormalizeFromJSONInvalidPayloadKeepsPrior(t *testing.T) {
	svc := NewSlikService(nil, &fakeSlikRepo{}, &fakeExtractor{})

	prior := slik.KTPData{NIK: "keep-me"}
	result, err := svc.NormalizeFromJSON(context.Background(), slik.NormalizeJSONRequest{
		Prior:   prior,
		RawJSON: "{not json",
	})
	require.ErrorIs(t, err, slik.ErrInvalidJSON)
	assert.EqualError(t, err, "invalid JSON, check formatting")
	assert.Equal(t, prior, result)
}

func TestFinalizeGate(t *testing.T) {
	repo := &fakeSlikRepo{}
	svc := NewSlikService(nil, repo, &fakeExtractor{})
	ctx := ctxWithProfile(t, "p1")

	_, err := svc.Finalize(ctx, slik.FinalizeRequest{Data: slik.KTPData{Nama: "no nik"}})
	assert.Error(t, err)

	_, err = svc.Finalize(ctx, slik.FinalizeRequest{Data: slik.KTPData{NIK: "123"}})
	assert.Error(t, err)

	assert.Empty(t, repo.rows)
}

func TestFinalizePersistsNormalizedRow(t *testing.T) {
	repo := &fakeSlikRepo{}
	svc := NewSlikService(nil, repo, &fakeExtractor{})

	resp, err := svc.Finalize(ctxWithProfile(t, "p1"), slik.FinalizeRequest{
		Data: slik.KTPData{
			NIK:             "3201234567890001",
			Nama:            "BUDI SANTOSO",
			TempatLahir:     "BOGOR",
			TanggalLahir:    "17-08-1990",
			RTRW:            "003/011",
			BerlakuHingga:   "SEUMUR HIDUP",
			Kewarganegaraan: "WNI",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "p1", resp.CreatedBy)
	assert.Equal(t, slik.StatusPending, resp.Status)
	require.NotNil(t, resp.BirthDate)
	assert.Equal(t, "1990-08-17", *resp.BirthDate)
	require.NotNil(t, resp.RT)
	assert.Equal(t, "003", *resp.RT)
	require.NotNil(t, resp.RW)
	assert.Equal(t, "011", *resp.RW)
	// Lifetime cards have no expiry date.
	assert.Nil(t, resp.ExpiryDate)
	require.Len(t, repo.rows, 1)
}

func TestSplitRTRW(t *testing.T) {
	rt, rw := splitRTRW("003/011")
	require.NotNil(t, rt)
	require.NotNil(t, rw)
	assert.Equal(t, "003", *rt)
	assert.Equal(t, "011", *rw)

	rt, rw = splitRTRW("007")
	require.NotNil(t, rt)
	assert.Equal(t, "007", *rt)
	assert.Nil(t, rw)

	rt, rw = splitRTRW("")
	assert.Nil(t, rt)
	assert.Nil(t, rw)
}

func TestListMine(t *testing.T) {
	repo := &fakeSlikRepo{}
	svc := NewSlikService(nil, repo, &fakeExtractor{})

	_, err := svc.Finalize(ctxWithProfile(t, "p1"), slik.FinalizeRequest{
		Data: slik.KTPData{NIK: "1", Nama: "A"},
	})
	require.NoError(t, err)
	_, err = svc.Finalize(ctxWithProfile(t, "p2"), slik.FinalizeRequest{
		Data: slik.KTPData{NIK: "2", Nama: "B"},
	})
	require.NoError(t, err)

	mine, err := svc.ListMine(ctxWithProfile(t, "p1"))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "1", mine[0].NIK)
}
