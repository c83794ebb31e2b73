package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/michelrahaddad/sitevidah-sub000/internal/entity"
	"github.com/michelrahaddad/sitevidah-sub000/internal/infra/database"
)

// AdminHandler serve o painel interno: listagem e exportação de leads e
// assinaturas. Sem autenticação por decisão de escopo.
type AdminHandler struct {
	Leads entity.LeadRepositoryInterface
	Subs  *database.SubscriptionRepository
}

func NewAdminHandler(leads entity.LeadRepositoryInterface, subs *database.SubscriptionRepository) *AdminHandler {
	return &AdminHandler{Leads: leads, Subs: subs}
}

// HandleListLeads (GET /api/admin/leads)
func (h *AdminHandler) HandleListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.FindAll(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "falha ao listar leads")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total": len(leads),
		"leads": leads,
	})
}

// HandleExportLeads (GET /api/admin/leads/export?audience=ads|ops).
// O CSV tem dois formatos: "ads" é o layout de custom audience das
// plataformas de anúncio (só colunas de contato); "ops" é o dump
// completo para a operação.
func (h *AdminHandler) HandleExportLeads(w http.ResponseWriter, r *http.Request) {
	audience := r.URL.Query().Get("audience")
	if audience == "" {
		audience = "ops"
	}
	if audience != "ads" && audience != "ops" {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", "audience must be ads or ops")
		return
	}

	leads, err := h.Leads.FindAll(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "falha ao exportar leads")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=leads-%s.csv", audience))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if audience == "ads" {
		writer.Write([]string{"email", "phone", "fn"})
		for _, lead := range leads {
			writer.Write([]string{lead.Email, "+55" + lead.Phone, lead.Name})
		}
		return
	}

	writer.Write([]string{"nome", "telefone", "email", "plano_interesse", "origem", "criado_em", "convertido_em"})
	for _, lead := range leads {
		converted := ""
		if lead.ConvertedAt != nil {
			converted = lead.ConvertedAt.Format("02/01/2006 15:04")
		}
		writer.Write([]string{
			lead.Name,
			lead.Phone,
			lead.Email,
			lead.PlanInterest,
			lead.Source,
			lead.CreatedAt.Format("02/01/2006 15:04"),
			converted,
		})
	}
}

// HandleExportSubscriptions (GET /api/admin/subscriptions/export)
func (h *AdminHandler) HandleExportSubscriptions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	subs, err := h.Subs.FindAll(r.Context(), limit)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "falha ao exportar assinaturas")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=assinaturas.csv")

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write([]string{"id", "cliente", "plano", "forma_pagamento", "parcelas", "total", "status", "expira_em", "criado_em"})
	for _, sub := range subs {
		writer.Write([]string{
			sub.ID,
			sub.CustomerID,
			strconv.Itoa(sub.PlanID),
			string(sub.PaymentMethod),
			strconv.Itoa(sub.Installments),
			formatBRL(sub.AmountCents),
			sub.Status,
			sub.ExpiresAt.Format("02/01/2006"),
			sub.CreatedAt.Format("02/01/2006 15:04"),
		})
	}
}

// formatBRL formata centavos no padrão brasileiro: R$ 1.234,56.
func formatBRL(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	reais := cents / 100
	rest := cents % 100

	digits := strconv.FormatInt(reais, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped, rest)
}
