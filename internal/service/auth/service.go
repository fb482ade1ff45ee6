package auth

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/salesops-id/salesops-backend-go/internal/domain/auth"
	"github.com/salesops-id/salesops-backend-go/internal/domain/profile"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/database"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/jwt"
	"github.com/salesops-id/salesops-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db *database.DB
	profile.ProfileRepository
	jwt.Service
	postgresql.JWTRepository
}

func NewAuthService(db *database.DB, profileRepository profile.ProfileRepository, jwtService jwt.Service, jwtRepository postgresql.JWTRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:                db,
		ProfileRepository: profileRepository,
		Service:           jwtService,
		JWTRepository:     jwtRepository,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// issueTokens generates an access/refresh pair and stores the refresh
// token inside a transaction.
func (a *AuthServiceImpl) issueTokens(ctx context.Context, p *profile.Profile, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(p.ID, p.Email, p.Role, p.IsAdmin())
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(p.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.CreateRefreshToken(txCtx, p.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionReq); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Register implements auth.AuthService. Self-registered accounts come in
// as marketers; admins are promoted manually.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	existing, err := a.ProfileRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to get profile by email: %w", err)
	}
	if existing != nil {
		return auth.TokenResponse{}, profile.ErrEmailTaken
	}

	hashed, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.ProfileRepository.Create(ctx, profile.Profile{
		Email:    req.Email,
		Password: &hashed,
		FullName: req.FullName,
		Role:     profile.RoleMarketing,
		Theme:    profile.ThemeLight,
		IsActive: true,
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return a.issueTokens(ctx, &created, sessionReq)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	profileData, err := a.ProfileRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to get profile by email: %w", err)
	}
	if profileData == nil || profileData.Password == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*profileData.Password), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !profileData.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	return a.issueTokens(ctx, profileData, sessionReq)
}

// LoginWithGoogle implements auth.AuthService. Matches by google_id
// first, then links by verified email, and finally provisions a fresh
// marketer profile.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, email string, googleID string, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	profileData, err := a.ProfileRepository.GetByGoogleID(ctx, googleID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to get profile by google id: %w", err)
	}

	if profileData == nil {
		profileData, err = a.ProfileRepository.GetByEmail(ctx, email)
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to get profile by email: %w", err)
		}
		if profileData != nil {
			profileData.GoogleID = &googleID
			updated, err := a.ProfileRepository.Update(ctx, *profileData)
			if err != nil {
				return auth.TokenResponse{}, fmt.Errorf("failed to link google id: %w", err)
			}
			profileData = &updated
		}
	}

	if profileData == nil {
		created, err := a.ProfileRepository.Create(ctx, profile.Profile{
			Email:    email,
			GoogleID: &googleID,
			FullName: email,
			Role:     profile.RoleMarketing,
			Theme:    profile.ThemeLight,
			IsActive: true,
		})
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to provision google profile: %w", err)
		}
		profileData = &created
	}

	if !profileData.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	return a.issueTokens(ctx, profileData, sessionReq)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := a.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	// Verify JWT signature and expiry before touching the database.
	token, err := jwtauth.VerifyToken(a.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	profileID, revoked, err := a.CheckRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if revoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	profileData, err := a.ProfileRepository.GetByID(ctx, profileID)
	if err != nil || profileData == nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	var resp auth.AccessTokenResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(profileData.ID, profileData.Email, profileData.Role, profileData.IsAdmin())
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return resp, nil
}
