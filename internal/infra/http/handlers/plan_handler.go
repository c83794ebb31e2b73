package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/michelrahaddad/sitevidah-sub000/internal/entity"
	"github.com/michelrahaddad/sitevidah-sub000/internal/usecase"
)

type PlanHandler struct {
	Plans usecase.PlanCatalogInterface
}

func NewPlanHandler(plans usecase.PlanCatalogInterface) *PlanHandler {
	return &PlanHandler{Plans: plans}
}

// HandleList (GET /api/plans)
func (h *PlanHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	plans, err := h.Plans.FindAll(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "falha ao listar planos")
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

// HandleGet (GET /api/plans/{id})
func (h *PlanHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.resolvePlan(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

type quoteRequest struct {
	PaymentMethod string `json:"payment_method"`
	Installments  int    `json:"installments"`
}

// HandleQuote (POST /api/plans/{id}/quote) expõe a calculadora pura
// para o front montar o resumo do pedido antes do checkout.
func (h *PlanHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.resolvePlan(w, r)
	if !ok {
		return
	}

	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	method := entity.PaymentMethod(strings.ToLower(req.PaymentMethod))
	switch method {
	case entity.MethodPix, entity.MethodCredit, entity.MethodBoleto:
	default:
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeValidation, "payment_method must be pix, credit or boleto")
		return
	}

	if req.Installments == 0 {
		req.Installments = 1
	}
	if req.Installments < 1 || req.Installments > 12 {
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeValidation, "installments must be between 1 and 12")
		return
	}

	writeJSON(w, http.StatusOK, usecase.ComputeQuote(plan, method, req.Installments))
}

func (h *PlanHandler) resolvePlan(w http.ResponseWriter, r *http.Request) (*entity.Plan, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeValidation, "plan id must be a positive integer")
		return nil, false
	}

	plan, err := h.Plans.FindByID(r.Context(), id)
	if err != nil || !plan.IsActive {
		writeErrorResponse(w, http.StatusNotFound, usecase.CodePlanNotFound, "plano não encontrado")
		return nil, false
	}
	return plan, true
}
