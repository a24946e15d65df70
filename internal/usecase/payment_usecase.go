package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrOrderNotConcluded          = errors.New("work order not concluded")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase collects payment for a concluded work order through the
// configured gateway and persists the approved payment.
type IPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, ordemServicoID string, mpPayload json.RawMessage) (entities.Payment, error)
	GetLatestByOrderID(ctx context.Context, ordemServicoID string) (entities.Payment, error)
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	orders  interfaces.IWorkOrderRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, orders interfaces.IWorkOrderRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, orders: orders, gateway: gateway}
}

// CreateAndApprove charges the order's frozen total. Only concluded orders
// carry a total, so pending orders are rejected before the gateway is called.
// The transaction amount always comes from the stored valor, never from the
// caller payload.
func (u *PaymentUseCase) CreateAndApprove(ctx context.Context, ordemServicoID string, mpPayload json.RawMessage) (entities.Payment, error) {
	ordemServicoID = strings.TrimSpace(ordemServicoID)
	if ordemServicoID == "" {
		return entities.Payment{}, ErrInvalidWorkOrderID
	}
	if u.gateway == nil {
		return entities.Payment{}, errors.New("payment gateway not configured")
	}

	if len(mpPayload) == 0 {
		mpPayload = json.RawMessage("{}")
	}
	if !json.Valid(mpPayload) {
		return entities.Payment{}, ErrInvalidMPPayload
	}

	o, err := u.orders.GetByID(ctx, ordemServicoID)
	if err != nil {
		return entities.Payment{}, err
	}
	if o.ID == "" {
		return entities.Payment{}, ErrWorkOrderNotFound
	}
	if !o.Concluded() || o.Valor == nil {
		return entities.Payment{}, ErrOrderNotConcluded
	}

	// Mercado Pago uses external_reference to reconcile provider events.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = ordemServicoID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Ordem de servico %s", ordemServicoID)
		}
		reqMap["transaction_amount"] = *o.Valor
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	log.Printf("[payment][usecase] calling payment gateway ordem_servico_id=%s amount=%.2f", ordemServicoID, *o.Valor)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed ordem_servico_id=%s err=%v", ordemServicoID, err)
		if isGatewayUnauthorized(err) {
			return entities.Payment{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.Payment{}, ErrPaymentGatewayBadRequest
		}
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] payment gateway success ordem_servico_id=%s provider_payment_id=%s provider_status=%s", ordemServicoID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed ordem_servico_id=%s err=%v", ordemServicoID, err)
	}

	p := entities.Payment{
		ID:             providerPaymentID,
		OrdemServicoID: ordemServicoID,
		Date:           time.Now().UTC(),
		Status:         entities.PaymentStatusAprovado,
		MPPayloadRaw:   providerResp,
		MPPayload:      parsed,
	}
	return u.repo.Create(ctx, p)
}

func (u *PaymentUseCase) GetLatestByOrderID(ctx context.Context, ordemServicoID string) (entities.Payment, error) {
	ordemServicoID = strings.TrimSpace(ordemServicoID)
	if ordemServicoID == "" {
		return entities.Payment{}, ErrInvalidWorkOrderID
	}

	payments, err := u.repo.ListByOrderID(ctx, ordemServicoID)
	if err != nil {
		return entities.Payment{}, err
	}
	if len(payments) == 0 {
		return entities.Payment{}, ErrPaymentNotFound
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
