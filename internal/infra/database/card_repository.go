package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/michelrahaddad/sitevidah-sub000/internal/entity"
)

type CardRepository struct {
	DB *sql.DB
}

func NewCardRepository(db *sql.DB) *CardRepository {
	return &CardRepository{DB: db}
}

func (r *CardRepository) Create(ctx context.Context, card *entity.DigitalCard) error {
	query := `
		INSERT INTO digital_cards (id, subscription_id, card_number, qr_code, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		card.ID,
		card.SubscriptionID,
		card.CardNumber,
		card.QRCode,
		card.IsActive,
		card.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("falha ao salvar cartão digital: %w", err)
	}

	return nil
}

func (r *CardRepository) FindBySubscriptionID(ctx context.Context, subscriptionID string) (*entity.DigitalCard, error) {
	return r.findOne(ctx, `SELECT id, subscription_id, card_number, qr_code, is_active, created_at FROM digital_cards WHERE subscription_id = $1`, subscriptionID)
}

func (r *CardRepository) FindByCardNumber(ctx context.Context, cardNumber string) (*entity.DigitalCard, error) {
	return r.findOne(ctx, `SELECT id, subscription_id, card_number, qr_code, is_active, created_at FROM digital_cards WHERE card_number = $1`, cardNumber)
}

func (r *CardRepository) findOne(ctx context.Context, query string, arg any) (*entity.DigitalCard, error) {
	var card entity.DigitalCard

	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&card.ID,
		&card.SubscriptionID,
		&card.CardNumber,
		&card.QRCode,
		&card.IsActive,
		&card.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}
