package database

import (
	"context"
	"database/sql"

	"github.com/michelrahaddad/sitevidah-sub000/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Upsert usa o telefone como chave: o mesmo visitante clicando no
// WhatsApp duas vezes atualiza o lead em vez de duplicar.
func (r *LeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (phone, name, email, plan_interest, source, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (phone)
		DO UPDATE SET
			name = COALESCE(EXCLUDED.name, leads.name),
			email = COALESCE(EXCLUDED.email, leads.email),
			plan_interest = COALESCE(EXCLUDED.plan_interest, leads.plan_interest),
			source = COALESCE(EXCLUDED.source, leads.source),
			updated_at = NOW()
		RETURNING id, created_at, updated_at, converted_at
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		lead.Phone,
		nullString(lead.Name),
		nullString(lead.Email),
		nullString(lead.PlanInterest),
		nullString(lead.Source),
	).Scan(
		&lead.ID,
		&lead.CreatedAt,
		&lead.UpdatedAt,
		&lead.ConvertedAt,
	)

	return err
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	query := `
		SELECT id, phone, COALESCE(name, ''), COALESCE(email, ''),
		       COALESCE(plan_interest, ''), COALESCE(source, ''),
		       converted_at, created_at, updated_at
		FROM leads
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		var lead entity.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.Phone,
			&lead.Name,
			&lead.Email,
			&lead.PlanInterest,
			&lead.Source,
			&lead.ConvertedAt,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, &lead)
	}

	return leads, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
