package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/salesops-id/salesops-backend-go/internal/domain/lead"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/database"
)

type leadRepository struct {
	db *database.DB
}

func NewLeadRepository(db *database.DB) lead.LeadRepository {
	return &leadRepository{db: db}
}

const leadColumns = `
	id, name, phone, source, status, notes, assigned_to, created_by, created_at, updated_at
`

func scanLead(row pgx.Row) (lead.Lead, error) {
	var l lead.Lead
	err := row.Scan(
		&l.ID, &l.Name, &l.Phone, &l.Source, &l.Status, &l.Notes,
		&l.AssignedTo, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// Create implements lead.LeadRepository.
func (r *leadRepository) Create(ctx context.Context, newLead lead.Lead) (lead.Lead, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO crm_leads (name, phone, source, status, notes, assigned_to, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + leadColumns

	created, err := scanLead(q.QueryRow(ctx, query,
		newLead.Name, newLead.Phone, newLead.Source, newLead.Status,
		newLead.Notes, newLead.AssignedTo, newLead.CreatedBy,
	))
	if err != nil {
		return lead.Lead{}, fmt.Errorf("failed to insert lead: %w", err)
	}
	return created, nil
}

// GetByID implements lead.LeadRepository.
func (r *leadRepository) GetByID(ctx context.Context, id string) (*lead.Lead, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leadColumns + ` FROM crm_leads WHERE id = $1`

	l, err := scanLead(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lead by id: %w", err)
	}
	return &l, nil
}

// List implements lead.LeadRepository.
func (r *leadRepository) List(ctx context.Context, filter lead.LeadFilter) ([]lead.Lead, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	var args []interface{}
	argPos := 1

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.AssignedTo != nil {
		conditions = append(conditions, fmt.Sprintf("assigned_to = $%d", argPos))
		args = append(args, *filter.AssignedTo)
		argPos++
	}
	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR phone ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+*filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM crm_leads WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leads: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM crm_leads
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, leadColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	var result []lead.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan lead row: %w", err)
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate lead rows: %w", err)
	}
	return result, total, nil
}

// Update implements lead.LeadRepository.
func (r *leadRepository) Update(ctx context.Context, l lead.Lead) (lead.Lead, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE crm_leads
		SET name = $2, phone = $3, source = $4, status = $5, notes = $6,
			assigned_to = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + leadColumns

	updated, err := scanLead(q.QueryRow(ctx, query,
		l.ID, l.Name, l.Phone, l.Source, l.Status, l.Notes, l.AssignedTo,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return lead.Lead{}, lead.ErrLeadNotFound
		}
		return lead.Lead{}, fmt.Errorf("failed to update lead: %w", err)
	}
	return updated, nil
}

// Delete implements lead.LeadRepository.
func (r *leadRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM crm_leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return lead.ErrLeadNotFound
	}
	return nil
}
