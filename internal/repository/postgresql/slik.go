package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/salesops-id/salesops-backend-go/internal/domain/slik"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/database"
)

type slikRepository struct {
	db *database.DB
}

func NewSlikRepository(db *database.DB) slik.SlikRepository {
	return &slikRepository{db: db}
}

const slikColumns = `
	id, created_by, nik, full_name, birth_place, birth_date, gender, blood_type,
	address, rt, rw, village, district, religion, marital_status, occupation,
	nationality, expiry_date, ktp_image_url, status, created_at, updated_at
`

func scanSlik(row pgx.Row) (slik.Slik, error) {
	var s slik.Slik
	err := row.Scan(
		&s.ID, &s.CreatedBy, &s.NIK, &s.FullName, &s.BirthPlace, &s.BirthDate, &s.Gender, &s.BloodType,
		&s.Address, &s.RT, &s.RW, &s.Village, &s.District, &s.Religion, &s.MaritalStatus, &s.Occupation,
		&s.Nationality, &s.ExpiryDate, &s.KTPImageURL, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements slik.SlikRepository.
func (r *slikRepository) Create(ctx context.Context, newSlik slik.Slik) (slik.Slik, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sliks (
			created_by, nik, full_name, birth_place, birth_date, gender, blood_type,
			address, rt, rw, village, district, religion, marital_status, occupation,
			nationality, expiry_date, ktp_image_url, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + slikColumns

	created, err := scanSlik(q.QueryRow(ctx, query,
		newSlik.CreatedBy, newSlik.NIK, newSlik.FullName, newSlik.BirthPlace, newSlik.BirthDate,
		newSlik.Gender, newSlik.BloodType, newSlik.Address, newSlik.RT, newSlik.RW,
		newSlik.Village, newSlik.District, newSlik.Religion, newSlik.MaritalStatus,
		newSlik.Occupation, newSlik.Nationality, newSlik.ExpiryDate, newSlik.KTPImageURL, newSlik.Status,
	))
	if err != nil {
		return slik.Slik{}, fmt.Errorf("failed to insert slik: %w", err)
	}
	return created, nil
}

// ListByCreator implements slik.SlikRepository.
func (r *slikRepository) ListByCreator(ctx context.Context, profileID string, limit int) ([]slik.Slik, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + slikColumns + `
		FROM sliks
		WHERE created_by = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sliks: %w", err)
	}
	defer rows.Close()

	var result []slik.Slik
	for rows.Next() {
		s, err := scanSlik(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan slik row: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate slik rows: %w", err)
	}
	return result, nil
}

// GetByID implements slik.SlikRepository.
func (r *slikRepository) GetByID(ctx context.Context, id string) (*slik.Slik, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + slikColumns + ` FROM sliks WHERE id = $1`

	s, err := scanSlik(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get slik by id: %w", err)
	}
	return &s, nil
}
