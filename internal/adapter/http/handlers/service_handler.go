package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "oficina_mecanica/internal/adapter/http/dto/request"
	response "oficina_mecanica/internal/adapter/http/dto/response"
	"oficina_mecanica/internal/usecase"
	"oficina_mecanica/pkg"

	"github.com/gin-gonic/gin"
)

// ServiceHandler handles HTTP requests for serviços.

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var payload request.ServiceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapServiceError(err, ""))
		return
	}

	c.JSON(http.StatusCreated, response.FromService(created))
}

func (h *ServiceHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	found, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapServiceError(err, id))
		return
	}

	c.JSON(http.StatusOK, response.FromService(found))
}

func (h *ServiceHandler) List(c *gin.Context) {
	page, size := parsePagination(c)

	items, total, err := h.usecase.List(c.Request.Context(), page, size)
	if err != nil {
		respondError(c, mapServiceError(err, ""))
		return
	}

	c.JSON(http.StatusOK, response.NewPaginated(page, size, total, response.FromServices(items)))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var payload request.ServiceUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		respondError(c, mapServiceError(err, id))
		return
	}

	c.JSON(http.StatusOK, response.FromService(updated))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, mapServiceError(err, id))
		return
	}

	c.Status(http.StatusNoContent)
}

func mapServiceError(err error, id string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Identificador de serviço inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNegativeServiceCost):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Valor do serviço não pode ser negativo", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICO_NOT_FOUND", fmt.Sprintf("Serviço %s não encontrado", id), http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceInUse):
		return pkg.NewDomainErrorSimple("SERVICO_IN_USE", fmt.Sprintf("Serviço %s vinculado a uma ordem de serviço", id), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno", err, http.StatusInternalServerError)
	}
}
