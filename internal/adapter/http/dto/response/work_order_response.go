package response

import (
	"time"

	"oficina_mecanica/internal/domain/entities"
)

type PartLineResponse struct {
	PecaID     string `json:"peca_id"`
	Quantidade int    `json:"quantidade"`
}

// WorkOrderResponse is the flat order document, references by id only. It is
// the shape returned by create and by every order mutation.
type WorkOrderResponse struct {
	ID            string             `json:"id"`
	ClienteID     string             `json:"cliente_id"`
	MecanicoID    string             `json:"mecanico_id"`
	ServicoIDs    []string           `json:"servico_ids"`
	Pecas         []PartLineResponse `json:"pecas"`
	DataAbertura  time.Time          `json:"data_abertura"`
	DataConclusao *time.Time         `json:"data_conclusao,omitempty"`
	Situacao      string             `json:"situacao"`
	Valor         *float64           `json:"valor,omitempty"`
}

func FromWorkOrder(o entities.WorkOrder) WorkOrderResponse {
	lines := make([]PartLineResponse, 0, len(o.Pecas))
	for _, l := range o.Pecas {
		lines = append(lines, PartLineResponse{PecaID: l.PecaID, Quantidade: l.Quantidade})
	}
	ids := o.ServicoIDs
	if ids == nil {
		ids = []string{}
	}
	return WorkOrderResponse{
		ID:            o.ID,
		ClienteID:     o.ClienteID,
		MecanicoID:    o.MecanicoID,
		ServicoIDs:    ids,
		Pecas:         lines,
		DataAbertura:  o.DataAbertura,
		DataConclusao: o.DataConclusao,
		Situacao:      string(o.Situacao),
		Valor:         o.Valor,
	}
}

// WorkOrderSummaryResponse joins the customer and mechanic for list views.
type WorkOrderSummaryResponse struct {
	ID            string           `json:"id"`
	Cliente       CustomerResponse `json:"cliente"`
	Mecanico      MechanicResponse `json:"mecanico"`
	DataAbertura  time.Time        `json:"data_abertura"`
	DataConclusao *time.Time       `json:"data_conclusao,omitempty"`
	Situacao      string           `json:"situacao"`
	Valor         *float64         `json:"valor,omitempty"`
}

func FromWorkOrderSummary(s entities.WorkOrderSummary) WorkOrderSummaryResponse {
	return WorkOrderSummaryResponse{
		ID:            s.Order.ID,
		Cliente:       FromCustomer(s.Cliente),
		Mecanico:      FromMechanic(s.Mecanico),
		DataAbertura:  s.Order.DataAbertura,
		DataConclusao: s.Order.DataConclusao,
		Situacao:      string(s.Order.Situacao),
		Valor:         s.Order.Valor,
	}
}

func FromWorkOrderSummaries(ss []entities.WorkOrderSummary) []WorkOrderSummaryResponse {
	out := make([]WorkOrderSummaryResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromWorkOrderSummary(s))
	}
	return out
}

type WorkOrderPartResponse struct {
	PartResponse
	Quantidade int `json:"quantidade"`
}

// WorkOrderDetailResponse is the fully resolved order: services and part
// lines joined with their master records.
type WorkOrderDetailResponse struct {
	ID            string                  `json:"id"`
	Cliente       CustomerResponse        `json:"cliente"`
	Mecanico      MechanicResponse        `json:"mecanico"`
	Servicos      []ServiceResponse       `json:"servicos"`
	Pecas         []WorkOrderPartResponse `json:"pecas"`
	DataAbertura  time.Time               `json:"data_abertura"`
	DataConclusao *time.Time              `json:"data_conclusao,omitempty"`
	Situacao      string                  `json:"situacao"`
	Valor         *float64                `json:"valor,omitempty"`
}

func FromWorkOrderDetail(d entities.WorkOrderDetail) WorkOrderDetailResponse {
	pecas := make([]WorkOrderPartResponse, 0, len(d.Pecas))
	for _, p := range d.Pecas {
		pecas = append(pecas, WorkOrderPartResponse{
			PartResponse: FromPart(p.Part),
			Quantidade:   p.Quantidade,
		})
	}
	return WorkOrderDetailResponse{
		ID:            d.Order.ID,
		Cliente:       FromCustomer(d.Cliente),
		Mecanico:      FromMechanic(d.Mecanico),
		Servicos:      FromServices(d.Servicos),
		Pecas:         pecas,
		DataAbertura:  d.Order.DataAbertura,
		DataConclusao: d.Order.DataConclusao,
		Situacao:      string(d.Order.Situacao),
		Valor:         d.Order.Valor,
	}
}
