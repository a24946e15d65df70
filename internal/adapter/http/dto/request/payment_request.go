package request

import "encoding/json"

// PaymentCreateRequest is the payload for the "cria e processa pagamento"
// route.
//
// `mp_payload` is forwarded as raw JSON to support varying Mercado Pago
// schemas; transaction_amount is always overwritten from the order total.

type PaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
