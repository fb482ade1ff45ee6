package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/salesops-id/salesops-backend-go/internal/domain/profile"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/database"
)

type profileRepository struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) profile.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `
	id, email, password, google_id, full_name, phone, role, theme,
	avatar_url, is_active, created_at, updated_at
`

func scanProfile(row pgx.Row) (profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(
		&p.ID, &p.Email, &p.Password, &p.GoogleID, &p.FullName, &p.Phone,
		&p.Role, &p.Theme, &p.AvatarURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements profile.ProfileRepository.
func (r *profileRepository) Create(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO profiles (email, password, google_id, full_name, phone, role, theme, avatar_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + profileColumns

	created, err := scanProfile(q.QueryRow(ctx, query,
		p.Email, p.Password, p.GoogleID, p.FullName, p.Phone,
		p.Role, p.Theme, p.AvatarURL, p.IsActive,
	))
	if err != nil {
		return profile.Profile{}, fmt.Errorf("failed to insert profile: %w", err)
	}
	return created, nil
}

// GetByID implements profile.ProfileRepository.
func (r *profileRepository) GetByID(ctx context.Context, id string) (*profile.Profile, error) {
	return r.getBy(ctx, "id", id)
}

// GetByEmail implements profile.ProfileRepository.
func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	return r.getBy(ctx, "email", email)
}

// GetByGoogleID implements profile.ProfileRepository.
func (r *profileRepository) GetByGoogleID(ctx context.Context, googleID string) (*profile.Profile, error) {
	return r.getBy(ctx, "google_id", googleID)
}

func (r *profileRepository) getBy(ctx context.Context, column, value string) (*profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf("SELECT %s FROM profiles WHERE %s = $1", profileColumns, column)

	p, err := scanProfile(q.QueryRow(ctx, query, value))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile by %s: %w", column, err)
	}
	return &p, nil
}

// Update implements profile.ProfileRepository.
func (r *profileRepository) Update(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE profiles
		SET full_name = $2, phone = $3, avatar_url = $4, google_id = $5,
			password = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + profileColumns

	updated, err := scanProfile(q.QueryRow(ctx, query,
		p.ID, p.FullName, p.Phone, p.AvatarURL, p.GoogleID, p.Password, p.IsActive,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return profile.Profile{}, profile.ErrProfileNotFound
		}
		return profile.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return updated, nil
}

// UpdateTheme implements profile.ProfileRepository.
func (r *profileRepository) UpdateTheme(ctx context.Context, id, theme string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE profiles SET theme = $2, updated_at = NOW() WHERE id = $1`, id, theme)
	if err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrProfileNotFound
	}
	return nil
}

// List implements profile.ProfileRepository.
func (r *profileRepository) List(ctx context.Context) ([]profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var result []profile.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profile rows: %w", err)
	}
	return result, nil
}
