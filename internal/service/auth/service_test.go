package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/salesops-id/salesops-backend-go/internal/domain/auth"
	"github.com/salesops-id/salesops-backend-go/internal/domain/profile"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/jwt"
)

type fakeProfileRepo struct {
	seq  int
	rows map[string]*profile.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{rows: make(map[string]*profile.Profile)}
}

func (f *fakeProfileRepo) Create(_ context.Context, p profile.Profile) (profile.Profile, error) {
	f.seq++
	p.ID = fmt.Sprintf("profile-%d", f.seq)
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	stored := p
	f.rows[p.ID] = &stored
	return p, nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*profile.Profile, error) {
	if p, ok := f.rows[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProfileRepo) GetByEmail(_ context.Context, email string) (*profile.Profile, error) {
	for _, p := range f.rows {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) GetByGoogleID(_ context.Context, googleID string) (*profile.Profile, error) {
	for _, p := range f.rows {
		if p.GoogleID != nil && *p.GoogleID == googleID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) Update(_ context.Context, p profile.Profile) (profile.Profile, error) {
	if _, ok := f.rows[p.ID]; !ok {
		return profile.Profile{}, profile.ErrProfileNotFound
	}
	stored := p
	f.rows[p.ID] = &stored
	return p, nil
}

func (f *fakeProfileRepo) UpdateTheme(_ context.Context, id, theme string) error {
	if p, ok := f.rows[id]; ok {
		p.Theme = theme
		return nil
	}
	return profile.ErrProfileNotFound
}

func (f *fakeProfileRepo) List(_ context.Context) ([]profile.Profile, error) {
	var out []profile.Profile
	for _, p := range f.rows {
		out = append(out, *p)
	}
	return out, nil
}

type fakeJWTRepo struct {
	tokens  map[string]string // token -> profile id
	revoked map[string]bool
}

func newFakeJWTRepo() *fakeJWTRepo {
	return &fakeJWTRepo{tokens: make(map[string]string), revoked: make(map[string]bool)}
}

func (f *fakeJWTRepo) CreateRefreshToken(_ context.Context, profileID, token string, _ int64, _ auth.SessionTrackingRequest) error {
	f.tokens[token] = profileID
	return nil
}

func (f *fakeJWTRepo) CheckRefreshToken(_ context.Context, token string) (string, bool, error) {
	profileID, ok := f.tokens[token]
	if !ok {
		return "", true, nil
	}
	return profileID, f.revoked[token], nil
}

func (f *fakeJWTRepo) RevokeRefreshToken(_ context.Context, token string) error {
	f.revoked[token] = true
	return nil
}

func hash(t *testing.T, password string) *string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(h)
	return &s
}

func newTestService(profiles *fakeProfileRepo, jwtRepo *fakeJWTRepo) *AuthServiceImpl {
	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	return &AuthServiceImpl{
		ProfileRepository: profiles,
		Service:           jwtService,
		JWTRepository:     jwtRepo,
	}
}

func TestLoginWrongPassword(t *testing.T) {
	profiles := newFakeProfileRepo()
	_, err := profiles.Create(context.Background(), profile.Profile{
		Email:    "budi@example.com",
		Password: hash(t, "correct-password"),
		IsActive: true,
	})
	require.NoError(t, err)

	svc := newTestService(profiles, newFakeJWTRepo())

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "budi@example.com",
		Password: "wrong-password",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(newFakeProfileRepo(), newFakeJWTRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginGoogleOnlyAccountHasNoPassword(t *testing.T) {
	profiles := newFakeProfileRepo()
	googleID := "g-123"
	_, err := profiles.Create(context.Background(), profile.Profile{
		Email:    "budi@example.com",
		GoogleID: &googleID,
		IsActive: true,
	})
	require.NoError(t, err)

	svc := newTestService(profiles, newFakeJWTRepo())

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "budi@example.com",
		Password: "any-password",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	profiles := newFakeProfileRepo()
	_, err := profiles.Create(context.Background(), profile.Profile{
		Email:    "budi@example.com",
		Password: hash(t, "correct-password"),
		IsActive: false,
	})
	require.NoError(t, err)

	svc := newTestService(profiles, newFakeJWTRepo())

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "budi@example.com",
		Password: "correct-password",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	profiles := newFakeProfileRepo()
	_, err := profiles.Create(context.Background(), profile.Profile{Email: "budi@example.com"})
	require.NoError(t, err)

	svc := newTestService(profiles, newFakeJWTRepo())

	_, err = svc.Register(context.Background(), auth.RegisterRequest{
		Email:           "budi@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		FullName:        "Budi Santoso",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, profile.ErrEmailTaken)
}

func TestRefreshTokenFlow(t *testing.T) {
	profiles := newFakeProfileRepo()
	created, err := profiles.Create(context.Background(), profile.Profile{
		Email:    "budi@example.com",
		Role:     profile.RoleMarketing,
		IsActive: true,
	})
	require.NoError(t, err)

	jwtRepo := newFakeJWTRepo()
	svc := newTestService(profiles, jwtRepo)

	refreshToken, expiresAt, err := svc.Service.GenerateRefreshToken(created.ID)
	require.NoError(t, err)
	require.NoError(t, jwtRepo.CreateRefreshToken(context.Background(), created.ID, refreshToken, expiresAt, auth.SessionTrackingRequest{}))

	resp, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: refreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	profiles := newFakeProfileRepo()
	created, err := profiles.Create(context.Background(), profile.Profile{
		Email:    "budi@example.com",
		IsActive: true,
	})
	require.NoError(t, err)

	svc := newTestService(profiles, newFakeJWTRepo())

	// An access token must not pass as a refresh token.
	accessToken, _, err := svc.Service.GenerateAccessToken(created.ID, created.Email, created.Role, false)
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: accessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshTokenRevoked(t *testing.T) {
	profiles := newFakeProfileRepo()
	created, err := profiles.Create(context.Background(), profile.Profile{
		Email:    "budi@example.com",
		IsActive: true,
	})
	require.NoError(t, err)

	jwtRepo := newFakeJWTRepo()
	svc := newTestService(profiles, jwtRepo)

	refreshToken, expiresAt, err := svc.Service.GenerateRefreshToken(created.ID)
	require.NoError(t, err)
	require.NoError(t, jwtRepo.CreateRefreshToken(context.Background(), created.ID, refreshToken, expiresAt, auth.SessionTrackingRequest{}))
	require.NoError(t, svc.Logout(context.Background(), refreshToken))

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: refreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
