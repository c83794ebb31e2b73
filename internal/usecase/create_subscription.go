package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/michelrahaddad/sitevidah-sub000/internal/entity"
	"github.com/michelrahaddad/sitevidah-sub000/internal/infra/queue"
)

type CreateSubscriptionUseCase struct {
	Customers CustomerRepositoryInterface
	Plans     PlanCatalogInterface
	Subs      SubscriptionRepositoryInterface
	Cards     CardRepositoryInterface
	Gateway   PaymentGateway
	Producer  EventPublisherInterface // opcional: nil desliga a notificação
}

func NewCreateSubscriptionUseCase(
	customers CustomerRepositoryInterface,
	plans PlanCatalogInterface,
	subs SubscriptionRepositoryInterface,
	cards CardRepositoryInterface,
	gateway PaymentGateway,
	producer EventPublisherInterface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		Customers: customers,
		Plans:     plans,
		Subs:      subs,
		Cards:     cards,
		Gateway:   gateway,
		Producer:  producer,
	}
}

// Execute é o checkout completo: valida, resolve cliente e plano, cota,
// cria a assinatura em PENDING, cobra e encerra em PAID ou FAILED.
// Recusa limpa do gateway NÃO é erro: a saída volta com status FAILED e
// sem cartão. Indisponibilidade do gateway é erro técnico e deixa a
// assinatura em PENDING (o worker de expiração varre esses casos).
func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, input CheckoutInput) (*CheckoutOutput, error) {
	if input.Installments == 0 {
		input.Installments = 1
	}

	validationErrors := ValidateCheckoutInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: strings.TrimSuffix(errMsg, ", "),
		}
	}

	method := entity.PaymentMethod(strings.ToLower(input.PaymentMethod))
	email := strings.ToLower(strings.TrimSpace(input.Email))
	cpf := OnlyDigits(input.CPF)
	phone := OnlyDigits(input.Phone)

	plan, err := uc.Plans.FindByID(ctx, input.PlanID)
	if err != nil || !plan.IsActive {
		return nil, &DomainError{
			Code:    CodePlanNotFound,
			Message: "plano inválido",
		}
	}

	// Resolução idempotente do cliente: o mesmo e-mail resolve para o
	// mesmo registro; e-mail novo com CPF de outro cliente é recusado
	// antes de qualquer escrita.
	customer, err := uc.Customers.FindByEmail(ctx, email)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: "falha ao consultar cliente: " + err.Error()}
	}

	isNewCustomer := false
	if customer == nil {
		owner, err := uc.Customers.FindByCPF(ctx, cpf)
		if err != nil {
			return nil, &TechnicalError{Code: CodeDatabase, Message: "falha ao consultar cpf: " + err.Error()}
		}
		if owner != nil {
			return nil, &DomainError{
				Code:    CodeDuplicateCPF,
				Message: "cpf já pertence a outro cliente",
			}
		}

		customer, err = entity.NewCustomer(strings.TrimSpace(input.Name), email, cpf, phone)
		if err != nil {
			return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
		}
		isNewCustomer = true
	}

	quote := ComputeQuote(plan, method, input.Installments)
	sub := entity.NewSubscription(customer.ID, plan.ID, method, quote.Installments, quote.TotalCents)

	// Cliente e assinatura moram em tabelas sem vínculo transacional:
	// se a assinatura falhar, o cliente recém-criado é desfeito.
	txn := NewTransaction()
	if isNewCustomer {
		txn.AddOperation("create_customer", func(ctx context.Context) error {
			return uc.Customers.Create(ctx, customer)
		})
		txn.AddCompensation("delete_customer", func(ctx context.Context) error {
			return uc.Customers.Delete(ctx, customer.ID)
		})
	}
	txn.AddOperation("create_subscription", func(ctx context.Context) error {
		return uc.Subs.Create(ctx, sub)
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "failed to persist customer and subscription: " + err.Error(),
		}
	}

	approved, err := uc.Gateway.Charge(ctx, sub, method)
	if err != nil {
		// Assinatura fica PENDING de propósito: não sabemos se a
		// cobrança chegou do outro lado.
		return nil, &TechnicalError{
			Code:    CodeGatewayUnavailable,
			Message: "gateway de pagamento indisponível: " + err.Error(),
		}
	}

	output := &CheckoutOutput{
		Subscription: sub,
		Customer:     customer,
		Plan:         plan,
		Quote:        quote,
	}

	if !approved {
		if err := sub.MarkFailed(); err != nil {
			return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
		}
		if err := uc.Subs.UpdateStatus(ctx, sub.ID, entity.StatusFailed); err != nil {
			return nil, &TechnicalError{Code: CodeDatabase, Message: "falha ao registrar recusa: " + err.Error()}
		}
		log.Printf("💳 Pagamento recusado para assinatura %s (plano %d, %s)", sub.ID, plan.ID, method)
		return output, nil
	}

	if err := sub.MarkPaid(); err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}
	if err := uc.Subs.UpdateStatus(ctx, sub.ID, entity.StatusPaid); err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: "falha ao confirmar pagamento: " + err.Error()}
	}

	card := entity.NewDigitalCard(sub.ID, NewCardNumber(), EncodeCardQR(CardQRPayload{
		SubscriptionID: sub.ID,
		CustomerID:     customer.ID,
		IssuedAt:       time.Now().Unix(),
	}))
	if err := uc.Cards.Create(ctx, card); err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: "falha ao emitir cartão: " + err.Error()}
	}
	output.Card = card

	if uc.Producer != nil {
		payload := queue.CardIssuedPayload{
			SubscriptionID: sub.ID,
			CustomerID:     customer.ID,
			CardNumber:     card.CardNumber,
			PlanName:       plan.Name,
			Name:           customer.Name,
			Email:          customer.Email,
			Phone:          customer.Phone,
		}
		if err := uc.Producer.PublishCardIssued(ctx, payload); err != nil {
			// Cartão já está emitido e pago; a notificação não derruba o checkout.
			log.Printf("⚠️ Cartão emitido, mas falha na fila de notificação: %v", err)
		}
	}

	return output, nil
}
