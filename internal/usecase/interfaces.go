package usecase

import (
	"context"

	"github.com/michelrahaddad/sitevidah-sub000/internal/entity"
	"github.com/michelrahaddad/sitevidah-sub000/internal/infra/queue"
)

type CheckoutInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	CPF           string `json:"cpf"`
	Phone         string `json:"phone"`
	PlanID        int    `json:"plan_id"`
	PaymentMethod string `json:"payment_method"` // pix, credit, boleto
	Installments  int    `json:"installments"`   // 1..12, default 1
}

type CheckoutOutput struct {
	Subscription *entity.Subscription `json:"subscription"`
	Card         *entity.DigitalCard  `json:"card,omitempty"` // presente somente quando PAID
	Customer     *entity.Customer     `json:"customer"`
	Plan         *entity.Plan         `json:"plan"`
	Quote        PriceQuote           `json:"quote"`
}

// FindByEmail e FindByCPF devolvem (nil, nil) quando não há registro;
// erro é reservado para falha de infraestrutura.
type CustomerRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	FindByCPF(ctx context.Context, cpf string) (*entity.Customer, error)
	FindByID(ctx context.Context, id string) (*entity.Customer, error)
	Create(ctx context.Context, c *entity.Customer) error
	Delete(ctx context.Context, id string) error
}

type PlanCatalogInterface interface {
	FindByID(ctx context.Context, id int) (*entity.Plan, error)
	FindAll(ctx context.Context) ([]*entity.Plan, error)
}

type SubscriptionRepositoryInterface interface {
	Create(ctx context.Context, sub *entity.Subscription) error
	UpdateStatus(ctx context.Context, id, status string) error
	FindByID(ctx context.Context, id string) (*entity.Subscription, error)
}

type CardRepositoryInterface interface {
	Create(ctx context.Context, card *entity.DigitalCard) error
	FindBySubscriptionID(ctx context.Context, subscriptionID string) (*entity.DigitalCard, error)
}

// PaymentGateway é a fronteira com o meio de pagamento real. Recusa
// limpa é (false, nil); erro é reservado para indisponibilidade do
// gateway (timeout, rede). O timeout é política do adaptador, definido
// via configuração, não daqui.
type PaymentGateway interface {
	Charge(ctx context.Context, sub *entity.Subscription, method entity.PaymentMethod) (bool, error)
}

type EventPublisherInterface interface {
	PublishCardIssued(ctx context.Context, payload queue.CardIssuedPayload) error
}
