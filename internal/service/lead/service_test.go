package lead

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesops-id/salesops-backend-go/internal/domain/lead"
)

type fakeLeadRepo struct {
	seq  int
	rows map[string]*lead.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{rows: make(map[string]*lead.Lead)}
}

func (f *fakeLeadRepo) Create(_ context.Context, l lead.Lead) (lead.Lead, error) {
	f.seq++
	l.ID = fmt.Sprintf("lead-%d", f.seq)
	l.CreatedAt = time.Now()
	l.UpdatedAt = l.CreatedAt
	stored := l
	f.rows[l.ID] = &stored
	return l, nil
}

func (f *fakeLeadRepo) GetByID(_ context.Context, id string) (*lead.Lead, error) {
	if l, ok := f.rows[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeLeadRepo) List(_ context.Context, filter lead.LeadFilter) ([]lead.Lead, int64, error) {
	var out []lead.Lead
	for _, l := range f.rows {
		if filter.Status != nil && l.Status != *filter.Status {
			continue
		}
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

func (f *fakeLeadRepo) Update(_ context.Context, l lead.Lead) (lead.Lead, error) {
	if _, ok := f.rows[l.ID]; !ok {
		return lead.Lead{}, lead.ErrLeadNotFound
	}
	l.UpdatedAt = time.Now()
	stored := l
	f.rows[l.ID] = &stored
	return l, nil
}

func (f *fakeLeadRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return lead.ErrLeadNotFound
	}
	delete(f.rows, id)
	return nil
}

func testCtx(t *testing.T, profileID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{"profile_id": profileID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func strPtr(s string) *string { return &s }

func TestCreateLeadStartsAsNew(t *testing.T) {
	svc := NewLeadService(nil, newFakeLeadRepo())

	resp, err := svc.Create(testCtx(t, "p1"), lead.CreateLeadRequest{
		Name:  "Pak Joko",
		Phone: "081234567890",
	})
	require.NoError(t, err)
	assert.Equal(t, lead.StatusNew, resp.Status)
	assert.Equal(t, "p1", resp.CreatedBy)
}

func TestCreateLeadRejectsBadPhone(t *testing.T) {
	svc := NewLeadService(nil, newFakeLeadRepo())

	_, err := svc.Create(testCtx(t, "p1"), lead.CreateLeadRequest{
		Name:  "Pak Joko",
		Phone: "12345",
	})
	assert.Error(t, err)
}

func TestUpdateLeadPartial(t *testing.T) {
	svc := NewLeadService(nil, newFakeLeadRepo())

	created, err := svc.Create(testCtx(t, "p1"), lead.CreateLeadRequest{
		Name:  "Pak Joko",
		Phone: "081234567890",
		Notes: strPtr("sumber iklan FB"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(testCtx(t, "p1"), created.ID, lead.UpdateLeadRequest{
		Status: strPtr(lead.StatusContacted),
	})
	require.NoError(t, err)

	assert.Equal(t, lead.StatusContacted, updated.Status)
	// Untouched fields keep their stored values.
	assert.Equal(t, "Pak Joko", updated.Name)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "sumber iklan FB", *updated.Notes)
}

func TestUpdateLeadInvalidStatus(t *testing.T) {
	svc := NewLeadService(nil, newFakeLeadRepo())

	created, err := svc.Create(testCtx(t, "p1"), lead.CreateLeadRequest{
		Name:  "Pak Joko",
		Phone: "081234567890",
	})
	require.NoError(t, err)

	_, err = svc.Update(testCtx(t, "p1"), created.ID, lead.UpdateLeadRequest{
		Status: strPtr("bogus"),
	})
	assert.Error(t, err)
}

func TestGetMissingLead(t *testing.T) {
	svc := NewLeadService(nil, newFakeLeadRepo())

	_, err := svc.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, lead.ErrLeadNotFound)
}

func TestDeleteLead(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := NewLeadService(nil, repo)

	created, err := svc.Create(testCtx(t, "p1"), lead.CreateLeadRequest{
		Name:  "Pak Joko",
		Phone: "081234567890",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), lead.ErrLeadNotFound)
}
