package request

import (
	"errors"
	"time"

	"oficina_mecanica/internal/domain/entities"
)

var ErrInvalidDateFilter = errors.New("invalid date filter")

const filterDateLayout = "2006-01-02"

type WorkOrderCreateRequest struct {
	ClienteID  string `json:"cliente_id" binding:"required"`
	MecanicoID string `json:"mecanico_id" binding:"required"`
}

type WorkOrderUpdateRequest struct {
	ClienteID  string `json:"cliente_id" binding:"required"`
	MecanicoID string `json:"mecanico_id" binding:"required"`
}

type WorkOrderServiceRequest struct {
	ServicoID string `json:"servico_id" binding:"required"`
}

type WorkOrderPartRequest struct {
	PecaID     string `json:"peca_id" binding:"required"`
	Quantidade int    `json:"quantidade" binding:"required"`
}

// WorkOrderListQuery carries the optional list filters. Dates use YYYY-MM-DD;
// data_abertura_fim is inclusive until the end of that day.
type WorkOrderListQuery struct {
	ClienteID          string `form:"cliente_id"`
	MecanicoID         string `form:"mecanico_id"`
	DataAberturaInicio string `form:"data_abertura_inicio"`
	DataAberturaFim    string `form:"data_abertura_fim"`
}

func (q WorkOrderListQuery) ToFilter() (entities.WorkOrderFilter, error) {
	f := entities.WorkOrderFilter{
		ClienteID:  q.ClienteID,
		MecanicoID: q.MecanicoID,
	}
	if q.DataAberturaInicio != "" {
		t, err := time.Parse(filterDateLayout, q.DataAberturaInicio)
		if err != nil {
			return entities.WorkOrderFilter{}, ErrInvalidDateFilter
		}
		f.DataAberturaInicio = &t
	}
	if q.DataAberturaFim != "" {
		t, err := time.Parse(filterDateLayout, q.DataAberturaFim)
		if err != nil {
			return entities.WorkOrderFilter{}, ErrInvalidDateFilter
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		f.DataAberturaFim = &end
	}
	return f, nil
}
