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

// CustomerHandler handles HTTP requests for clientes.

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var payload request.CustomerCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapCustomerError(err, ""))
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomer(created))
}

func (h *CustomerHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	found, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapCustomerError(err, id))
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(found))
}

func (h *CustomerHandler) List(c *gin.Context) {
	page, size := parsePagination(c)

	items, total, err := h.usecase.List(c.Request.Context(), page, size)
	if err != nil {
		respondError(c, mapCustomerError(err, ""))
		return
	}

	c.JSON(http.StatusOK, response.NewPaginated(page, size, total, response.FromCustomers(items)))
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var payload request.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		respondError(c, mapCustomerError(err, id))
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(updated))
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, mapCustomerError(err, id))
		return
	}

	c.Status(http.StatusNoContent)
}

func mapCustomerError(err error, id string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Identificador de cliente inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", fmt.Sprintf("Cliente %s não encontrado", id), http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerInUse):
		return pkg.NewDomainErrorSimple("CLIENTE_IN_USE", fmt.Sprintf("Cliente %s vinculado a uma ordem de serviço", id), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno", err, http.StatusInternalServerError)
	}
}
