package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/michelrahaddad/sitevidah-sub000/internal/usecase"
)

type CardHandler struct {
	Subs usecase.SubscriptionRepositoryInterface
}

func NewCardHandler(subs usecase.SubscriptionRepositoryInterface) *CardHandler {
	return &CardHandler{Subs: subs}
}

type verifyCardRequest struct {
	QRCode string `json:"qr_code"`
}

// HandleVerify (POST /api/cards/verify): decodifica o QR apresentado
// no parceiro e confirma a identidade e a situação da assinatura.
func (h *CardHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.QRCode == "" {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "qr_code é obrigatório")
		return
	}

	payload, err := usecase.DecodeCardQR(req.QRCode)
	if err != nil {
		writeErrorResponse(w, http.StatusUnprocessableEntity, "INVALID_QR", err.Error())
		return
	}

	sub, err := h.Subs.FindByID(r.Context(), payload.SubscriptionID)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "assinatura do cartão não encontrada")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"subscription_id": payload.SubscriptionID,
		"customer_id":     payload.CustomerID,
		"issued_at":       payload.IssuedAt,
		"status":          sub.Status,
		"expires_at":      sub.ExpiresAt,
	})
}
