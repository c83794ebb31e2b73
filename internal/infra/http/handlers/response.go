package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/michelrahaddad/sitevidah-sub000/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// writeUseCaseError traduz a taxonomia de erros dos use cases para
// status HTTP. Recusa de pagamento não passa por aqui: é saída normal.
func writeUseCaseError(w http.ResponseWriter, err error) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		switch de.Code {
		case usecase.CodePlanNotFound:
			writeErrorResponse(w, http.StatusNotFound, de.Code, de.Message)
		case usecase.CodeDuplicateCPF:
			writeErrorResponse(w, http.StatusConflict, de.Code, de.Message)
		default:
			writeErrorResponse(w, http.StatusBadRequest, de.Code, de.Message)
		}
		return
	}

	var te *usecase.TechnicalError
	if errors.As(err, &te) {
		if te.Code == usecase.CodeGatewayUnavailable {
			writeErrorResponse(w, http.StatusBadGateway, te.Code, te.Message)
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, te.Code, te.Message)
		return
	}

	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
