package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/michelrahaddad/sitevidah-sub000/internal/entity"
	"github.com/michelrahaddad/sitevidah-sub000/internal/infra/http/middleware"
	"github.com/michelrahaddad/sitevidah-sub000/internal/usecase"
)

type SubscriptionHandler struct {
	CheckoutUC     *usecase.CreateSubscriptionUseCase
	AddDependentUC *usecase.AddDependentUseCase
	Subs           usecase.SubscriptionRepositoryInterface
	Cards          usecase.CardRepositoryInterface
	Dependents     entity.DependentRepositoryInterface
}

func NewSubscriptionHandler(
	checkoutUC *usecase.CreateSubscriptionUseCase,
	addDependentUC *usecase.AddDependentUseCase,
	subs usecase.SubscriptionRepositoryInterface,
	cards usecase.CardRepositoryInterface,
	dependents entity.DependentRepositoryInterface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		CheckoutUC:     checkoutUC,
		AddDependentUC: addDependentUC,
		Subs:           subs,
		Cards:          cards,
		Dependents:     dependents,
	}
}

// HandleCheckout (POST /api/subscriptions)
func (h *SubscriptionHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var input usecase.CheckoutInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido: "+err.Error())
		return
	}

	output, err := h.CheckoutUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordCheckout(string(output.Subscription.PaymentMethod), output.Subscription.Status)
	if output.Card != nil {
		middleware.RecordCardIssued()
	}

	writeJSON(w, http.StatusCreated, output)
}

// HandleGet (GET /api/subscriptions/{id}) devolve a assinatura e, se
// houver, o cartão digital emitido para ela.
func (h *SubscriptionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sub, err := h.Subs.FindByID(r.Context(), id)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "assinatura não encontrada")
		return
	}

	card, err := h.Cards.FindBySubscriptionID(r.Context(), sub.ID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "falha ao consultar cartão")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"subscription": sub,
		"card":         card,
	})
}

// HandleAddDependent (POST /api/subscriptions/{id}/dependents)
func (h *SubscriptionHandler) HandleAddDependent(w http.ResponseWriter, r *http.Request) {
	var input usecase.AddDependentInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}
	input.SubscriptionID = chi.URLParam(r, "id")

	dependent, err := h.AddDependentUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dependent)
}

// HandleListDependents (GET /api/subscriptions/{id}/dependents)
func (h *SubscriptionHandler) HandleListDependents(w http.ResponseWriter, r *http.Request) {
	sub, err := h.Subs.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "assinatura não encontrada")
		return
	}

	dependents, err := h.Dependents.FindByCustomerID(r.Context(), sub.CustomerID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "falha ao listar dependentes")
		return
	}

	writeJSON(w, http.StatusOK, dependents)
}
