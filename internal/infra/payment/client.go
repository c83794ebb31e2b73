package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/michelrahaddad/sitevidah-sub000/internal/entity"
)

// Client é o adaptador HTTP do gateway de cobrança. Recusa limpa vira
// (false, nil); qualquer falha de transporte ou resposta inesperada
// vira erro, e o chamador decide o que fazer com a assinatura.
//
// O timeout vem de configuração: a política de espera é do operador,
// não do código.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type chargeRequest struct {
	Reference    string `json:"reference"` // ID da assinatura no nosso banco
	AmountCents  int64  `json:"amount_cents"`
	Method       string `json:"method"`
	Installments int    `json:"installments"`
}

type chargeResponse struct {
	Status string `json:"status"` // approved | declined
}

func (c *Client) Charge(ctx context.Context, sub *entity.Subscription, method entity.PaymentMethod) (bool, error) {
	url := fmt.Sprintf("%s/charges", c.baseURL)

	payload := chargeRequest{
		Reference:    sub.ID,
		AmountCents:  sub.AmountCents,
		Method:       string(method),
		Installments: sub.Installments,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return false, fmt.Errorf("erro ao marshal cobrança: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("access_token", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("erro request gateway: %w", err)
	}
	defer resp.Body.Close()

	// 402 é recusa limpa, não indisponibilidade.
	if resp.StatusCode == http.StatusPaymentRequired {
		return false, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("❌ ERRO GATEWAY (status %d): %s", resp.StatusCode, string(body))
		return false, fmt.Errorf("gateway respondeu status %d", resp.StatusCode)
	}

	var response chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return false, fmt.Errorf("erro decode gateway: %w", err)
	}

	return response.Status == "approved", nil
}
