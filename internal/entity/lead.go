package entity

import (
	"context"
	"time"
)

// Lead é o contato capturado antes do redirect para o WhatsApp
// comercial. O telefone é a chave natural: o mesmo visitante clicando
// duas vezes atualiza o registro em vez de duplicar.
type Lead struct {
	ID           string     `json:"id"`
	Name         string     `json:"name,omitempty"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email,omitempty"`
	PlanInterest string     `json:"plan_interest,omitempty"`
	Source       string     `json:"source,omitempty"` // hero, pricing, footer...
	ConvertedAt  *time.Time `json:"converted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type LeadRepositoryInterface interface {
	Upsert(ctx context.Context, lead *Lead) error
	FindAll(ctx context.Context) ([]*Lead, error)
}
