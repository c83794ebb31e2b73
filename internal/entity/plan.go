package entity

import "errors"

var ErrPlanNotFound = errors.New("plano não encontrado")

type PlanType string

const (
	PlanIndividual  PlanType = "individual"
	PlanFamiliar    PlanType = "familiar"
	PlanEmpresarial PlanType = "empresarial"
)

type PaymentMethod string

const (
	MethodPix    PaymentMethod = "pix"
	MethodCredit PaymentMethod = "credit"
	MethodBoleto PaymentMethod = "boleto"
)

// Plan é dado de referência imutável: carregado na subida do processo e
// nunca alterado depois.
type Plan struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Type              PlanType `json:"type"`
	AnnualPriceCents  int64    `json:"annual_price_cents"`
	MonthlyPriceCents int64    `json:"monthly_price_cents"` // 0 = sem mensalidade publicada
	AdhesionFeeCents  int64    `json:"adhesion_fee_cents"`
	MaxDependents     int      `json:"max_dependents"`

	// Mensalidade publicada por canal de pagamento, em centavos.
	// Preenchida na carga do catálogo; a calculadora nunca consulta
	// o ID do plano para decidir preço.
	InstallmentRates map[PaymentMethod]int64 `json:"installment_rates"`

	IsActive bool `json:"is_active"`
}

// InstallmentRate retorna a mensalidade publicada para o canal, se houver.
func (p *Plan) InstallmentRate(method PaymentMethod) (int64, bool) {
	rate, ok := p.InstallmentRates[method]
	return rate, ok && rate > 0
}

// DefaultPlans monta o catálogo do Cartão + Vidah. As mensalidades de
// boleto são as publicadas no material comercial, não derivadas do
// preço anual.
func DefaultPlans() []Plan {
	return []Plan{
		{
			ID:                1,
			Name:              "Cartão + Vidah Individual",
			Type:              PlanIndividual,
			AnnualPriceCents:  41880,
			MonthlyPriceCents: 3490,
			AdhesionFeeCents:  3000,
			MaxDependents:     0,
			InstallmentRates: map[PaymentMethod]int64{
				MethodCredit: 3490,
				MethodBoleto: 2790,
			},
			IsActive: true,
		},
		{
			ID:                2,
			Name:              "Cartão + Vidah Familiar",
			Type:              PlanFamiliar,
			AnnualPriceCents:  59880,
			MonthlyPriceCents: 4990,
			AdhesionFeeCents:  3000,
			MaxDependents:     4,
			InstallmentRates: map[PaymentMethod]int64{
				MethodCredit: 4990,
				MethodBoleto: 3790,
			},
			IsActive: true,
		},
		{
			ID:                3,
			Name:              "Cartão + Vidah Empresarial",
			Type:              PlanEmpresarial,
			AnnualPriceCents:  95880,
			MonthlyPriceCents: 7990,
			AdhesionFeeCents:  0,
			MaxDependents:     10,
			InstallmentRates: map[PaymentMethod]int64{
				MethodCredit: 7990,
				MethodBoleto: 3790,
			},
			IsActive: true,
		},
	}
}
