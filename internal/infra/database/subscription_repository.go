package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/michelrahaddad/sitevidah-sub000/internal/entity"
)

type SubscriptionRepository struct {
	DB *sql.DB
}

func NewSubscriptionRepository(db *sql.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (
			id,
			customer_id,
			plan_id,
			payment_method,
			installments,
			amount_cents,
			status,
			expires_at,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		sub.ID,
		sub.CustomerID,
		sub.PlanID,
		string(sub.PaymentMethod),
		sub.Installments,
		sub.AmountCents,
		sub.Status,
		sub.ExpiresAt,
		sub.CreatedAt,
		sub.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("falha ao criar assinatura: %w", err)
	}

	return nil
}

func (r *SubscriptionRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE subscriptions SET status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.DB.ExecContext(ctx, query, status, id)
	return err
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id string) (*entity.Subscription, error) {
	query := `
		SELECT id, customer_id, plan_id, payment_method, installments,
		       amount_cents, status, expires_at, created_at, updated_at
		FROM subscriptions
		WHERE id = $1
	`

	var sub entity.Subscription
	var method string

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&sub.ID,
		&sub.CustomerID,
		&sub.PlanID,
		&method,
		&sub.Installments,
		&sub.AmountCents,
		&sub.Status,
		&sub.ExpiresAt,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("assinatura não encontrada: %w", err)
	}

	sub.PaymentMethod = entity.PaymentMethod(method)
	return &sub, nil
}

// FindAll lista as assinaturas mais recentes para o painel interno.
func (r *SubscriptionRepository) FindAll(ctx context.Context, limit int) ([]*entity.Subscription, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, customer_id, plan_id, payment_method, installments,
		       amount_cents, status, expires_at, created_at, updated_at
		FROM subscriptions
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*entity.Subscription
	for rows.Next() {
		var sub entity.Subscription
		var method string
		if err := rows.Scan(
			&sub.ID,
			&sub.CustomerID,
			&sub.PlanID,
			&method,
			&sub.Installments,
			&sub.AmountCents,
			&sub.Status,
			&sub.ExpiresAt,
			&sub.CreatedAt,
			&sub.UpdatedAt,
		); err != nil {
			return nil, err
		}
		sub.PaymentMethod = entity.PaymentMethod(method)
		subs = append(subs, &sub)
	}

	return subs, rows.Err()
}
