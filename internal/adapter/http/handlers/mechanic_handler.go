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

// MechanicHandler handles HTTP requests for mecânicos.

type MechanicHandler struct {
	usecase usecase.IMechanicUseCase
}

func NewMechanicHandler(uc usecase.IMechanicUseCase) *MechanicHandler {
	return &MechanicHandler{usecase: uc}
}

func (h *MechanicHandler) Create(c *gin.Context) {
	var payload request.MechanicCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapMechanicError(err, ""))
		return
	}

	c.JSON(http.StatusCreated, response.FromMechanic(created))
}

func (h *MechanicHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	found, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapMechanicError(err, id))
		return
	}

	c.JSON(http.StatusOK, response.FromMechanic(found))
}

func (h *MechanicHandler) List(c *gin.Context) {
	page, size := parsePagination(c)

	items, total, err := h.usecase.List(c.Request.Context(), page, size)
	if err != nil {
		respondError(c, mapMechanicError(err, ""))
		return
	}

	c.JSON(http.StatusOK, response.NewPaginated(page, size, total, response.FromMechanics(items)))
}

func (h *MechanicHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var payload request.MechanicUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		respondError(c, mapMechanicError(err, id))
		return
	}

	c.JSON(http.StatusOK, response.FromMechanic(updated))
}

func (h *MechanicHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, mapMechanicError(err, id))
		return
	}

	c.Status(http.StatusNoContent)
}

func mapMechanicError(err error, id string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMechanicID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Identificador de mecânico inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMechanicNotFound):
		return pkg.NewDomainErrorSimple("MECANICO_NOT_FOUND", fmt.Sprintf("Mecânico %s não encontrado", id), http.StatusNotFound)
	case errors.Is(err, usecase.ErrMechanicInUse):
		return pkg.NewDomainErrorSimple("MECANICO_IN_USE", fmt.Sprintf("Mecânico %s vinculado a uma ordem de serviço", id), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno", err, http.StatusInternalServerError)
	}
}
