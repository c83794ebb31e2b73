package usecase

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"
)

const cardNumberPrefix = "VDH"

// NewCardNumber gera o identificador do cartão digital: prefixo fixo +
// dígitos finais do relógio + sufixo aleatório. Unicidade é prática,
// não criptográfica.
func NewCardNumber() string {
	ts := time.Now().UnixMilli() % 1_0000_0000
	return fmt.Sprintf("%s%08d%04d", cardNumberPrefix, ts, rand.IntN(10000))
}

// CardQRPayload é o conteúdo decodificável do QR: o suficiente para o
// emissor reconstituir a identidade da assinatura.
type CardQRPayload struct {
	SubscriptionID string `json:"subscription_id"`
	CustomerID     string `json:"customer_id"`
	IssuedAt       int64  `json:"issued_at"`
}

func EncodeCardQR(payload CardQRPayload) string {
	body, _ := json.Marshal(payload)
	return base64.StdEncoding.EncodeToString(body)
}

func DecodeCardQR(qr string) (CardQRPayload, error) {
	var payload CardQRPayload

	body, err := base64.StdEncoding.DecodeString(qr)
	if err != nil {
		return payload, fmt.Errorf("qr code ilegível: %w", err)
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return payload, fmt.Errorf("payload do qr inválido: %w", err)
	}
	if payload.SubscriptionID == "" {
		return payload, fmt.Errorf("qr code sem identidade de assinatura")
	}
	return payload, nil
}
