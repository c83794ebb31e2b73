package usecase

import "github.com/michelrahaddad/sitevidah-sub000/internal/entity"

// PriceQuote é o detalhamento de preço calculado a cada requisição.
// Nunca é persistido como entidade própria; a assinatura guarda só o
// snapshot do total.
type PriceQuote struct {
	PrincipalCents   int64                `json:"principal_cents"`
	AdhesionFeeCents int64                `json:"adhesion_fee_cents"`
	Installments     int                  `json:"installments"`
	TotalCents       int64                `json:"total_cents"`
	PaymentMethod    entity.PaymentMethod `json:"payment_method"`
}

const pixDiscountPercent = 10

// ComputeQuote é função pura: sem I/O, sem relógio, sem aleatoriedade.
// Regras por canal:
//   - pix: à vista com 10% de desconto sobre o anual; parcelas forçadas
//     para 1, ignorando o que o chamador pediu.
//   - credit/boleto parcelado: mensalidade publicada do plano vezes o
//     número de parcelas. A mensalidade NÃO é o anual dividido por 12;
//     cada canal tem preço de tabela próprio.
//   - à vista sem desconto (credit/boleto com 1 parcela): preço anual.
//
// O chamador garante installments em [1,12]; aqui só importa >1 ou não.
func ComputeQuote(plan *entity.Plan, method entity.PaymentMethod, installments int) PriceQuote {
	quote := PriceQuote{
		AdhesionFeeCents: plan.AdhesionFeeCents,
		Installments:     installments,
		PaymentMethod:    method,
	}

	switch {
	case method == entity.MethodPix:
		quote.PrincipalCents = divRoundHalfUp(plan.AnnualPriceCents*(100-pixDiscountPercent), 100)
		quote.Installments = 1

	case installments > 1:
		if rate, ok := plan.InstallmentRate(method); ok {
			quote.PrincipalCents = rate * int64(installments)
		} else {
			// Plano sem mensalidade publicada nesse canal: cai para
			// pagamento único pelo preço anual.
			quote.PrincipalCents = plan.AnnualPriceCents
			quote.Installments = 1
		}

	default:
		quote.PrincipalCents = plan.AnnualPriceCents
	}

	quote.TotalCents = quote.PrincipalCents + quote.AdhesionFeeCents
	return quote
}

// divRoundHalfUp divide inteiros arredondando meio para cima, o mesmo
// arredondamento dos valores monetários exportados.
func divRoundHalfUp(numerator, denominator int64) int64 {
	return (numerator + denominator/2) / denominator
}
