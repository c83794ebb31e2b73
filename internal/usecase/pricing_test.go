package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michelrahaddad/sitevidah-sub000/internal/entity"
)

func individualPlan() *entity.Plan {
	return &entity.Plan{
		ID:                1,
		Name:              "Cartão + Vidah Individual",
		Type:              entity.PlanIndividual,
		AnnualPriceCents:  41880,
		MonthlyPriceCents: 3490,
		AdhesionFeeCents:  3000,
		InstallmentRates: map[entity.PaymentMethod]int64{
			entity.MethodCredit: 3490,
			entity.MethodBoleto: 2790,
		},
		IsActive: true,
	}
}

func TestComputeQuotePix(t *testing.T) {
	// 418,80 - 10% = 376,92; + adesão 30,00 = 406,92
	quote := ComputeQuote(individualPlan(), entity.MethodPix, 1)

	assert.Equal(t, int64(37692), quote.PrincipalCents)
	assert.Equal(t, int64(3000), quote.AdhesionFeeCents)
	assert.Equal(t, int64(40692), quote.TotalCents)
	assert.Equal(t, 1, quote.Installments)
}

func TestComputeQuotePixForcesSingleInstallment(t *testing.T) {
	quote := ComputeQuote(individualPlan(), entity.MethodPix, 12)

	assert.Equal(t, 1, quote.Installments)
	assert.Equal(t, int64(37692), quote.PrincipalCents)
}

func TestComputeQuotePixRoundsHalfUp(t *testing.T) {
	plan := individualPlan()
	plan.AnnualPriceCents = 41885 // 90% = 37696,5 → 37697

	quote := ComputeQuote(plan, entity.MethodPix, 1)
	assert.Equal(t, int64(37697), quote.PrincipalCents)
}

func TestComputeQuoteCreditInstallments(t *testing.T) {
	// 12 x 34,90 = 418,80; + adesão = 448,80
	quote := ComputeQuote(individualPlan(), entity.MethodCredit, 12)

	assert.Equal(t, int64(41880), quote.PrincipalCents)
	assert.Equal(t, int64(44880), quote.TotalCents)
	assert.Equal(t, 12, quote.Installments)
}

func TestComputeQuoteCreditSinglePayment(t *testing.T) {
	// À vista no cartão não tem desconto: preço anual cheio.
	quote := ComputeQuote(individualPlan(), entity.MethodCredit, 1)

	assert.Equal(t, int64(41880), quote.PrincipalCents)
	assert.Equal(t, int64(44880), quote.TotalCents)
}

func TestComputeQuoteBoletoUsesPublishedRate(t *testing.T) {
	// A mensalidade de boleto do plano 1 (27,90) não deriva do anual.
	quote := ComputeQuote(individualPlan(), entity.MethodBoleto, 12)

	assert.Equal(t, int64(33480), quote.PrincipalCents)
	assert.Equal(t, int64(36480), quote.TotalCents)
}

func TestComputeQuoteBoletoSinglePayment(t *testing.T) {
	quote := ComputeQuote(individualPlan(), entity.MethodBoleto, 1)

	assert.Equal(t, int64(41880), quote.PrincipalCents)
}

func TestComputeQuoteMissingRateFallsBackToAnnual(t *testing.T) {
	plan := individualPlan()
	delete(plan.InstallmentRates, entity.MethodBoleto)

	quote := ComputeQuote(plan, entity.MethodBoleto, 12)

	assert.Equal(t, int64(41880), quote.PrincipalCents)
	assert.Equal(t, 1, quote.Installments)
}

func TestComputeQuoteNoAdhesionFee(t *testing.T) {
	plan := individualPlan()
	plan.AdhesionFeeCents = 0

	quote := ComputeQuote(plan, entity.MethodPix, 1)
	assert.Equal(t, quote.PrincipalCents, quote.TotalCents)
}

func TestDivRoundHalfUp(t *testing.T) {
	assert.Equal(t, int64(1), divRoundHalfUp(5, 10))  // 0,5 sobe
	assert.Equal(t, int64(0), divRoundHalfUp(4, 10))  // 0,4 desce
	assert.Equal(t, int64(2), divRoundHalfUp(15, 10)) // 1,5 sobe
}
