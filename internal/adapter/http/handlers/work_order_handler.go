package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "oficina_mecanica/internal/adapter/http/dto/request"
	response "oficina_mecanica/internal/adapter/http/dto/response"
	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase"
	"oficina_mecanica/pkg"

	"github.com/gin-gonic/gin"
)

// WorkOrderHandler handles HTTP requests for ordens de serviço: lifecycle,
// service set and part line composition.

type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

func (h *WorkOrderHandler) Create(c *gin.Context) {
	var payload request.WorkOrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ClienteID, payload.MecanicoID)
	if err != nil {
		respondError(c, mapWorkOrderError(err, "", referenceID(err, payload.ClienteID, payload.MecanicoID)))
		return
	}
	log.Printf("[ordem_servico][handler] created id=%s cliente_id=%s mecanico_id=%s", created.ID, created.ClienteID, created.MecanicoID)

	c.JSON(http.StatusCreated, response.FromWorkOrder(created))
}

func (h *WorkOrderHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	detail, err := h.usecase.GetDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapWorkOrderError(err, id, ""))
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrderDetail(detail))
}

func (h *WorkOrderHandler) List(c *gin.Context) {
	var query request.WorkOrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Filtro de data inválido, use YYYY-MM-DD", http.StatusBadRequest))
		return
	}

	page, size := parsePagination(c)
	items, total, err := h.usecase.List(c.Request.Context(), filter, page, size)
	if err != nil {
		respondError(c, mapWorkOrderError(err, "", ""))
		return
	}

	c.JSON(http.StatusOK, response.NewPaginated(page, size, total, response.FromWorkOrderSummaries(items)))
}

func (h *WorkOrderHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var payload request.WorkOrderUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ClienteID, payload.MecanicoID)
	if err != nil {
		respondError(c, mapWorkOrderError(err, id, referenceID(err, payload.ClienteID, payload.MecanicoID)))
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(updated))
}

func (h *WorkOrderHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, mapWorkOrderError(err, id, ""))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *WorkOrderHandler) AddService(c *gin.Context) {
	id := c.Param("id")

	var payload request.WorkOrderServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.AddService(c.Request.Context(), id, payload.ServicoID)
	if err != nil {
		respondError(c, mapWorkOrderError(err, id, payload.ServicoID))
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(updated))
}

func (h *WorkOrderHandler) RemoveService(c *gin.Context) {
	id := c.Param("id")
	servicoID := c.Param("servico_id")

	updated, err := h.usecase.RemoveService(c.Request.Context(), id, servicoID)
	if err != nil {
		respondError(c, mapWorkOrderError(err, id, servicoID))
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(updated))
}

func (h *WorkOrderHandler) AddPart(c *gin.Context) {
	id := c.Param("id")

	var payload request.WorkOrderPartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.AddPart(c.Request.Context(), id, payload.PecaID, payload.Quantidade)
	if err != nil {
		respondError(c, mapWorkOrderError(err, id, payload.PecaID))
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(updated))
}

func (h *WorkOrderHandler) RemovePart(c *gin.Context) {
	id := c.Param("id")
	pecaID := c.Param("peca_id")

	updated, err := h.usecase.RemovePart(c.Request.Context(), id, pecaID)
	if err != nil {
		respondError(c, mapWorkOrderError(err, id, pecaID))
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(updated))
}

func (h *WorkOrderHandler) Conclude(c *gin.Context) {
	id := c.Param("id")

	concluded, err := h.usecase.Conclude(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapWorkOrderError(err, id, ""))
		return
	}
	log.Printf("[ordem_servico][handler] concluded id=%s valor=%.2f", concluded.ID, *concluded.Valor)

	c.JSON(http.StatusOK, response.FromWorkOrder(concluded))
}

// referenceID picks which payload id belongs in the error message when a
// create/update carries both.
func referenceID(err error, clienteID, mecanicoID string) string {
	if errors.Is(err, usecase.ErrMechanicNotFound) {
		return mecanicoID
	}
	return clienteID
}

func mapWorkOrderError(err error, orderID, refID string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Identificador de ordem de serviço inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDEM_SERVICO_NOT_FOUND", fmt.Sprintf("Ordem de serviço %s não encontrada", orderID), http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", fmt.Sprintf("Cliente %s não encontrado", refID), http.StatusNotFound)
	case errors.Is(err, usecase.ErrMechanicNotFound):
		return pkg.NewDomainErrorSimple("MECANICO_NOT_FOUND", fmt.Sprintf("Mecânico %s não encontrado", refID), http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICO_NOT_FOUND", fmt.Sprintf("Serviço %s não encontrado", refID), http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PECA_NOT_FOUND", fmt.Sprintf("Peça %s não encontrada", refID), http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartLineNotFound):
		return pkg.NewDomainErrorSimple("PECA_NOT_ON_ORDER", fmt.Sprintf("Peça %s não vinculada à ordem de serviço %s", refID, orderID), http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderConcluded):
		return pkg.NewDomainErrorSimple("ORDEM_SERVICO_CONCLUIDA", fmt.Sprintf("Ordem de serviço %s já concluída", orderID), http.StatusBadRequest)
	case errors.Is(err, entities.ErrDuplicateService):
		return pkg.NewDomainErrorSimple("SERVICO_DUPLICADO", fmt.Sprintf("Serviço %s já vinculado à ordem de serviço %s", refID, orderID), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Quantidade deve ser maior que zero", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno", err, http.StatusInternalServerError)
	}
}
