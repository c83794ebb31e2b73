package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "PENDING"
	StatusPaid    = "PAID"
	StatusFailed  = "FAILED"
)

// Subscription nasce PENDING e termina em PAID ou FAILED. A transição é
// de mão única: FAILED não volta para PENDING, uma nova tentativa de
// compra cria uma nova assinatura.
type Subscription struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customer_id"`
	PlanID        int           `json:"plan_id"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Installments  int           `json:"installments"`

	// Snapshot do total cotado no checkout, em centavos. Nunca é
	// recalculado, mesmo que o catálogo mude de preço depois.
	AmountCents int64 `json:"amount_cents"`

	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSubscription cria a assinatura em PENDING com validade de 1 ano.
func NewSubscription(customerID string, planID int, method PaymentMethod, installments int, amountCents int64) *Subscription {
	now := time.Now()
	return &Subscription{
		ID:            uuid.New().String(),
		CustomerID:    customerID,
		PlanID:        planID,
		PaymentMethod: method,
		Installments:  installments,
		AmountCents:   amountCents,
		Status:        StatusPending,
		ExpiresAt:     now.AddDate(1, 0, 0),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// MarkPaid e MarkFailed são as únicas transições válidas.

func (s *Subscription) MarkPaid() error {
	if s.Status != StatusPending {
		return fmt.Errorf("assinatura %s não está PENDING (status atual: %s)", s.ID, s.Status)
	}
	s.Status = StatusPaid
	s.UpdatedAt = time.Now()
	return nil
}

func (s *Subscription) MarkFailed() error {
	if s.Status != StatusPending {
		return fmt.Errorf("assinatura %s não está PENDING (status atual: %s)", s.ID, s.Status)
	}
	s.Status = StatusFailed
	s.UpdatedAt = time.Now()
	return nil
}
