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

// PartHandler handles HTTP requests for peças.

type PartHandler struct {
	usecase usecase.IPartUseCase
}

func NewPartHandler(uc usecase.IPartUseCase) *PartHandler {
	return &PartHandler{usecase: uc}
}

func (h *PartHandler) Create(c *gin.Context) {
	var payload request.PartCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapPartError(err, ""))
		return
	}

	c.JSON(http.StatusCreated, response.FromPart(created))
}

func (h *PartHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	found, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapPartError(err, id))
		return
	}

	c.JSON(http.StatusOK, response.FromPart(found))
}

func (h *PartHandler) List(c *gin.Context) {
	page, size := parsePagination(c)

	items, total, err := h.usecase.List(c.Request.Context(), page, size)
	if err != nil {
		respondError(c, mapPartError(err, ""))
		return
	}

	c.JSON(http.StatusOK, response.NewPaginated(page, size, total, response.FromParts(items)))
}

func (h *PartHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var payload request.PartUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		respondError(c, mapPartError(err, id))
		return
	}

	c.JSON(http.StatusOK, response.FromPart(updated))
}

func (h *PartHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, mapPartError(err, id))
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPartError(err error, id string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPartID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Identificador de peça inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNegativePartCost):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Valor da peça não pode ser negativo", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PECA_NOT_FOUND", fmt.Sprintf("Peça %s não encontrada", id), http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartInUse):
		return pkg.NewDomainErrorSimple("PECA_IN_USE", fmt.Sprintf("Peça %s vinculada a uma ordem de serviço", id), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno", err, http.StatusInternalServerError)
	}
}
