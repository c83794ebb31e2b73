package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/michelrahaddad/sitevidah-sub000/internal/entity"
	"github.com/michelrahaddad/sitevidah-sub000/internal/infra/http/middleware"
	"github.com/michelrahaddad/sitevidah-sub000/internal/usecase"
)

type LeadHandler struct {
	leadRepo    entity.LeadRepositoryInterface
	rateLimiter *RateLimiter
}

func NewLeadHandler(leadRepo entity.LeadRepositoryInterface) *LeadHandler {
	return &LeadHandler{
		leadRepo:    leadRepo,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

type CaptureLeadRequest struct {
	Name         string `json:"name,omitempty"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	PlanInterest string `json:"plan_interest,omitempty"`
	Source       string `json:"source,omitempty"`
}

type CaptureLeadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CaptureLead (POST /api/leads): registra o contato imediatamente antes
// do redirect para o WhatsApp comercial.
func (h *LeadHandler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, CaptureLeadResponse{
			Success: false,
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var req CaptureLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}

	if !usecase.IsValidPhone(req.Phone) {
		writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{
			Success: false,
			Message: "A valid phone is required",
		})
		return
	}

	lead := &entity.Lead{
		Name:         req.Name,
		Phone:        usecase.OnlyDigits(req.Phone),
		Email:        req.Email,
		PlanInterest: req.PlanInterest,
		Source:       req.Source,
	}

	if err := h.leadRepo.Upsert(ctx, lead); err != nil {
		writeJSON(w, http.StatusInternalServerError, CaptureLeadResponse{
			Success: false,
			Message: "Failed to capture lead",
		})
		return
	}

	middleware.RecordLeadCaptured()

	writeJSON(w, http.StatusOK, CaptureLeadResponse{
		Success: true,
	})
}
