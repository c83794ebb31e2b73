package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/michelrahaddad/sitevidah-sub000/internal/entity"
)

func validCheckoutInput() CheckoutInput {
	return CheckoutInput{
		Name:          "João Silva",
		Email:         "joao@example.com",
		CPF:           "529.982.247-25",
		Phone:         "(11) 98888-7777",
		PlanID:        1,
		PaymentMethod: "pix",
		Installments:  1,
	}
}

type checkoutMocks struct {
	customers *MockCustomerRepository
	plans     *MockPlanCatalog
	subs      *MockSubscriptionRepository
	cards     *MockCardRepository
	gateway   *MockPaymentGateway
	producer  *MockEventPublisher
}

func newCheckoutUC() (*CreateSubscriptionUseCase, checkoutMocks) {
	m := checkoutMocks{
		customers: new(MockCustomerRepository),
		plans:     new(MockPlanCatalog),
		subs:      new(MockSubscriptionRepository),
		cards:     new(MockCardRepository),
		gateway:   new(MockPaymentGateway),
		producer:  new(MockEventPublisher),
	}
	uc := NewCreateSubscriptionUseCase(m.customers, m.plans, m.subs, m.cards, m.gateway, m.producer)
	return uc, m
}

func TestCheckoutPixApprovedIssuesCard(t *testing.T) {
	ctx := context.Background()
	uc, m := newCheckoutUC()

	m.plans.On("FindByID", ctx, 1).Return(individualPlan(), nil)
	m.customers.On("FindByEmail", ctx, "joao@example.com").Return(nil, nil)
	m.customers.On("FindByCPF", ctx, "52998224725").Return(nil, nil)
	m.customers.On("Create", ctx, mock.Anything).Return(nil)
	m.subs.On("Create", ctx, mock.Anything).Return(nil)
	m.gateway.On("Charge", ctx, mock.Anything, entity.MethodPix).Return(true, nil)
	m.subs.On("UpdateStatus", ctx, mock.Anything, entity.StatusPaid).Return(nil)
	m.cards.On("Create", ctx, mock.Anything).Return(nil)
	m.producer.On("PublishCardIssued", ctx, mock.Anything).Return(nil)

	output, err := uc.Execute(ctx, validCheckoutInput())

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, output.Subscription.Status)
	assert.NotNil(t, output.Card)
	assert.Equal(t, output.Subscription.ID, output.Card.SubscriptionID)
	assert.Equal(t, int64(40692), output.Subscription.AmountCents)
	assert.Equal(t, 1, output.Subscription.Installments)
	assert.WithinDuration(t, time.Now().AddDate(1, 0, 0), output.Subscription.ExpiresAt, time.Minute)

	// QR decodifica de volta para a identidade da assinatura
	payload, err := DecodeCardQR(output.Card.QRCode)
	assert.NoError(t, err)
	assert.Equal(t, output.Subscription.ID, payload.SubscriptionID)
	assert.Equal(t, output.Customer.ID, payload.CustomerID)

	m.producer.AssertCalled(t, "PublishCardIssued", ctx, mock.Anything)
}

func TestCheckoutPixIgnoresRequestedInstallments(t *testing.T) {
	ctx := context.Background()
	uc, m := newCheckoutUC()

	input := validCheckoutInput()
	input.Installments = 12

	m.plans.On("FindByID", ctx, 1).Return(individualPlan(), nil)
	m.customers.On("FindByEmail", ctx, mock.Anything).Return(nil, nil)
	m.customers.On("FindByCPF", ctx, mock.Anything).Return(nil, nil)
	m.customers.On("Create", ctx, mock.Anything).Return(nil)
	m.subs.On("Create", ctx, mock.Anything).Return(nil)
	m.gateway.On("Charge", ctx, mock.Anything, entity.MethodPix).Return(true, nil)
	m.subs.On("UpdateStatus", ctx, mock.Anything, entity.StatusPaid).Return(nil)
	m.cards.On("Create", ctx, mock.Anything).Return(nil)
	m.producer.On("PublishCardIssued", ctx, mock.Anything).Return(nil)

	output, err := uc.Execute(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, 1, output.Subscription.Installments)
	assert.Equal(t, int64(40692), output.Subscription.AmountCents)
}

func TestCheckoutDeclinedIsTerminalWithoutCard(t *testing.T) {
	ctx := context.Background()
	uc, m := newCheckoutUC()

	input := validCheckoutInput()
	input.PaymentMethod = "boleto"
	input.Installments = 12

	m.plans.On("FindByID", ctx, 1).Return(individualPlan(), nil)
	m.customers.On("FindByEmail", ctx, mock.Anything).Return(nil, nil)
	m.customers.On("FindByCPF", ctx, mock.Anything).Return(nil, nil)
	m.customers.On("Create", ctx, mock.Anything).Return(nil)
	m.subs.On("Create", ctx, mock.Anything).Return(nil)
	m.gateway.On("Charge", ctx, mock.Anything, entity.MethodBoleto).Return(false, nil)
	m.subs.On("UpdateStatus", ctx, mock.Anything, entity.StatusFailed).Return(nil)

	output, err := uc.Execute(ctx, input)

	// Recusa limpa não é erro: é desfecho normal do checkout.
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusFailed, output.Subscription.Status)
	assert.Nil(t, output.Card)
	assert.Equal(t, int64(36480), output.Subscription.AmountCents) // 12 x 27,90 + adesão

	m.cards.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.producer.AssertNotCalled(t, "PublishCardIssued", mock.Anything, mock.Anything)
}

func TestCheckoutGatewayUnavailableLeavesPending(t *testing.T) {
	ctx := context.Background()
	uc, m := newCheckoutUC()

	m.plans.On("FindByID", ctx, 1).Return(individualPlan(), nil)
	m.customers.On("FindByEmail", ctx, mock.Anything).Return(nil, nil)
	m.customers.On("FindByCPF", ctx, mock.Anything).Return(nil, nil)
	m.customers.On("Create", ctx, mock.Anything).Return(nil)
	m.subs.On("Create", ctx, mock.Anything).Return(nil)
	m.gateway.On("Charge", ctx, mock.Anything, entity.MethodPix).Return(false, errors.New("timeout"))

	output, err := uc.Execute(ctx, validCheckoutInput())

	assert.Nil(t, output)
	assert.True(t, IsTechnicalError(err))
	assert.Equal(t, CodeGatewayUnavailable, ErrorCode(err))

	// Nenhuma transição gravada: a assinatura fica PENDING para o
	// worker de expiração resolver.
	m.subs.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	m.cards.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutReusesCustomerByEmail(t *testing.T) {
	ctx := context.Background()
	uc, m := newCheckoutUC()

	existing := &entity.Customer{
		ID:    "cust-123",
		Name:  "João Silva",
		Email: "joao@example.com",
		CPF:   "52998224725",
		Phone: "11988887777",
	}

	m.plans.On("FindByID", ctx, 1).Return(individualPlan(), nil)
	m.customers.On("FindByEmail", ctx, "joao@example.com").Return(existing, nil)
	m.subs.On("Create", ctx, mock.Anything).Return(nil)
	m.gateway.On("Charge", ctx, mock.Anything, entity.MethodPix).Return(true, nil)
	m.subs.On("UpdateStatus", ctx, mock.Anything, entity.StatusPaid).Return(nil)
	m.cards.On("Create", ctx, mock.Anything).Return(nil)
	m.producer.On("PublishCardIssued", ctx, mock.Anything).Return(nil)

	output, err := uc.Execute(ctx, validCheckoutInput())

	assert.NoError(t, err)
	assert.Equal(t, "cust-123", output.Customer.ID)
	assert.Equal(t, "cust-123", output.Subscription.CustomerID)

	m.customers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.customers.AssertNotCalled(t, "FindByCPF", mock.Anything, mock.Anything)
}

func TestCheckoutDuplicateCPFRejectedBeforePersistence(t *testing.T) {
	ctx := context.Background()
	uc, m := newCheckoutUC()

	owner := &entity.Customer{ID: "cust-999", Email: "outra@example.com", CPF: "52998224725"}

	m.plans.On("FindByID", ctx, 1).Return(individualPlan(), nil)
	m.customers.On("FindByEmail", ctx, "joao@example.com").Return(nil, nil)
	m.customers.On("FindByCPF", ctx, "52998224725").Return(owner, nil)

	output, err := uc.Execute(ctx, validCheckoutInput())

	assert.Nil(t, output)
	assert.True(t, IsDomainError(err))
	assert.Equal(t, CodeDuplicateCPF, ErrorCode(err))

	m.customers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.subs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutValidationRejectedBeforeAnyLookup(t *testing.T) {
	ctx := context.Background()
	uc, m := newCheckoutUC()

	input := validCheckoutInput()
	input.CPF = "52998224726" // checksum errado

	output, err := uc.Execute(ctx, input)

	assert.Nil(t, output)
	assert.True(t, IsDomainError(err))
	assert.Equal(t, CodeValidation, ErrorCode(err))

	m.customers.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	m.subs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutUnknownPlan(t *testing.T) {
	ctx := context.Background()
	uc, m := newCheckoutUC()

	input := validCheckoutInput()
	input.PlanID = 42

	m.plans.On("FindByID", ctx, 42).Return(nil, entity.ErrPlanNotFound)

	output, err := uc.Execute(ctx, input)

	assert.Nil(t, output)
	assert.Equal(t, CodePlanNotFound, ErrorCode(err))
	m.subs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutInstallmentsDefaultToOne(t *testing.T) {
	ctx := context.Background()
	uc, m := newCheckoutUC()

	input := validCheckoutInput()
	input.PaymentMethod = "credit"
	input.Installments = 0

	m.plans.On("FindByID", ctx, 1).Return(individualPlan(), nil)
	m.customers.On("FindByEmail", ctx, mock.Anything).Return(nil, nil)
	m.customers.On("FindByCPF", ctx, mock.Anything).Return(nil, nil)
	m.customers.On("Create", ctx, mock.Anything).Return(nil)
	m.subs.On("Create", ctx, mock.Anything).Return(nil)
	m.gateway.On("Charge", ctx, mock.Anything, entity.MethodCredit).Return(true, nil)
	m.subs.On("UpdateStatus", ctx, mock.Anything, entity.StatusPaid).Return(nil)
	m.cards.On("Create", ctx, mock.Anything).Return(nil)
	m.producer.On("PublishCardIssued", ctx, mock.Anything).Return(nil)

	output, err := uc.Execute(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, 1, output.Subscription.Installments)
	assert.Equal(t, int64(44880), output.Subscription.AmountCents) // anual + adesão
}

func TestCheckoutRollsBackNewCustomerWhenSubscriptionFails(t *testing.T) {
	ctx := context.Background()
	uc, m := newCheckoutUC()

	m.plans.On("FindByID", ctx, 1).Return(individualPlan(), nil)
	m.customers.On("FindByEmail", ctx, mock.Anything).Return(nil, nil)
	m.customers.On("FindByCPF", ctx, mock.Anything).Return(nil, nil)
	m.customers.On("Create", ctx, mock.Anything).Return(nil)
	m.customers.On("Delete", ctx, mock.Anything).Return(nil)
	m.subs.On("Create", ctx, mock.Anything).Return(errors.New("disk full"))

	output, err := uc.Execute(ctx, validCheckoutInput())

	assert.Nil(t, output)
	assert.Equal(t, CodeDatabase, ErrorCode(err))
	m.customers.AssertCalled(t, "Delete", ctx, mock.Anything)
	m.gateway.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutQueueFailureDoesNotFailCheckout(t *testing.T) {
	ctx := context.Background()
	uc, m := newCheckoutUC()

	m.plans.On("FindByID", ctx, 1).Return(individualPlan(), nil)
	m.customers.On("FindByEmail", ctx, mock.Anything).Return(nil, nil)
	m.customers.On("FindByCPF", ctx, mock.Anything).Return(nil, nil)
	m.customers.On("Create", ctx, mock.Anything).Return(nil)
	m.subs.On("Create", ctx, mock.Anything).Return(nil)
	m.gateway.On("Charge", ctx, mock.Anything, entity.MethodPix).Return(true, nil)
	m.subs.On("UpdateStatus", ctx, mock.Anything, entity.StatusPaid).Return(nil)
	m.cards.On("Create", ctx, mock.Anything).Return(nil)
	m.producer.On("PublishCardIssued", ctx, mock.Anything).Return(errors.New("broker down"))

	output, err := uc.Execute(ctx, validCheckoutInput())

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, output.Subscription.Status)
	assert.NotNil(t, output.Card)
}
