package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	response "oficina_mecanica/internal/adapter/http/dto/response"
	"oficina_mecanica/internal/usecase"
	"oficina_mecanica/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment collection for concluded ordens de serviço.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment creates/approves a payment for the order in the path.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	ordemServicoID := c.Param("id")
	log.Printf("[payment][handler] create start ordem_servico_id=%s", ordemServicoID)
	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload ordem_servico_id=%s err=%v", ordemServicoID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload ordem_servico_id=%s err=%v", ordemServicoID, err)
			respondError(c, errInvalidPayload)
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), ordemServicoID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed ordem_servico_id=%s err=%v", ordemServicoID, err)
		respondError(c, mapPaymentError(err, ordemServicoID))
		return
	}
	log.Printf("[payment][handler] create success ordem_servico_id=%s payment_id=%s status=%s", ordemServicoID, created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// GetPayment returns the latest payment for the order in the path.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	ordemServicoID := c.Param("id")

	latest, err := h.usecase.GetLatestByOrderID(c.Request.Context(), ordemServicoID)
	if err != nil {
		respondError(c, mapPaymentError(err, ordemServicoID))
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error, ordemServicoID string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição de pagamento inválida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Provedor de pagamento não autorizado", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDEM_SERVICO_NOT_FOUND", fmt.Sprintf("Ordem de serviço %s não encontrada", ordemServicoID), http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotConcluded):
		return pkg.NewDomainErrorSimple("ORDEM_SERVICO_NOT_CONCLUDED", fmt.Sprintf("Ordem de serviço %s ainda não concluída", ordemServicoID), http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", fmt.Sprintf("Pagamento não encontrado para a ordem de serviço %s", ordemServicoID), http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
