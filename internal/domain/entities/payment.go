package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the provider outcome for a work order payment.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// Payment is a Mercado Pago payment collected for a concluded work order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (ordem_servico_id-index): ordem_servico_id
//
// MPPayloadRaw keeps the original provider response (JSON) for audit;
// MPPayload is the parsed representation kept for querying/debugging.
type Payment struct {
	ID             string        `json:"id"`
	OrdemServicoID string        `json:"ordem_servico_id"`
	Date           time.Time     `json:"date"`
	Status         PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
