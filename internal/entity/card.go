package entity

import (
	"time"

	"github.com/google/uuid"
)

// DigitalCard é o comprovante de assinatura paga: 1:1 com uma
// Subscription em PAID. Nunca existe cartão para assinatura FAILED.
type DigitalCard struct {
	ID             string    `json:"id"`
	SubscriptionID string    `json:"subscription_id"`
	CardNumber     string    `json:"card_number"`
	QRCode         string    `json:"qr_code"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewDigitalCard(subscriptionID, cardNumber, qrCode string) *DigitalCard {
	return &DigitalCard{
		ID:             uuid.New().String(),
		SubscriptionID: subscriptionID,
		CardNumber:     cardNumber,
		QRCode:         qrCode,
		IsActive:       true,
		CreatedAt:      time.Now(),
	}
}
