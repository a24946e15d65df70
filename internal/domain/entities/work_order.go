package entities

import (
	"errors"
	"time"
)

// WorkOrderStatus is the lifecycle of an ordem de serviço.
//
// The only transition is pendente -> concluida, driven by the conclude
// operation; there is no way out of concluida.
type WorkOrderStatus string

const (
	WorkOrderStatusPendente  WorkOrderStatus = "pendente"
	WorkOrderStatusConcluida WorkOrderStatus = "concluida"
)

var (
	ErrOrderConcluded   = errors.New("work order already concluded")
	ErrDuplicateService = errors.New("service already on work order")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)

// PartLine is a quantified attachment of one part to a work order.
// Quantidade is always >= 1; attaching the same part again accumulates.
type PartLine struct {
	PecaID     string `json:"peca_id"`
	Quantidade int    `json:"quantidade"`
}

// WorkOrder is the aggregate root of the workshop domain.
//
// Relations are held as id references (cliente, mecânico, serviços, part
// lines); cascade and ownership rules live here, not in the store.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariants:
//   - Situacao == concluida  <=>  DataConclusao != nil && Valor != nil
//   - Valor is written exactly once, at conclusion, and frozen after.
type WorkOrder struct {
	ID            string          `json:"id"`
	ClienteID     string          `json:"cliente_id"`
	MecanicoID    string          `json:"mecanico_id"`
	ServicoIDs    []string        `json:"servicos"`
	Pecas         []PartLine      `json:"pecas"`
	DataAbertura  time.Time       `json:"data_abertura"`
	DataConclusao *time.Time      `json:"data_conclusao,omitempty"`
	Situacao      WorkOrderStatus `json:"situacao"`
	Valor         *float64        `json:"valor,omitempty"`
}

func (o *WorkOrder) Concluded() bool {
	return o.Situacao == WorkOrderStatusConcluida
}

// AddService appends a service reference. Duplicates are an error, not a
// merge (unlike parts).
func (o *WorkOrder) AddService(servicoID string) error {
	if o.Concluded() {
		return ErrOrderConcluded
	}
	if o.HasService(servicoID) {
		return ErrDuplicateService
	}
	o.ServicoIDs = append(o.ServicoIDs, servicoID)
	return nil
}

// RemoveService filters the service out. Removing an id that is not on the
// order is not itself an error once the order is mutable.
func (o *WorkOrder) RemoveService(servicoID string) error {
	if o.Concluded() {
		return ErrOrderConcluded
	}
	kept := o.ServicoIDs[:0]
	for _, id := range o.ServicoIDs {
		if id != servicoID {
			kept = append(kept, id)
		}
	}
	o.ServicoIDs = kept
	return nil
}

func (o *WorkOrder) HasService(servicoID string) bool {
	for _, id := range o.ServicoIDs {
		if id == servicoID {
			return true
		}
	}
	return false
}

// AddPart merges by part identity: an existing line gets its quantity
// incremented, otherwise a new line is appended.
func (o *WorkOrder) AddPart(pecaID string, quantidade int) error {
	if o.Concluded() {
		return ErrOrderConcluded
	}
	if quantidade < 1 {
		return ErrInvalidQuantity
	}
	for i := range o.Pecas {
		if o.Pecas[i].PecaID == pecaID {
			o.Pecas[i].Quantidade += quantidade
			return nil
		}
	}
	o.Pecas = append(o.Pecas, PartLine{PecaID: pecaID, Quantidade: quantidade})
	return nil
}

// RemovePart drops the line for the part. The returned bool reports whether a
// line existed.
func (o *WorkOrder) RemovePart(pecaID string) (bool, error) {
	if o.Concluded() {
		return false, ErrOrderConcluded
	}
	for i := range o.Pecas {
		if o.Pecas[i].PecaID == pecaID {
			o.Pecas = append(o.Pecas[:i], o.Pecas[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (o *WorkOrder) PartLineFor(pecaID string) (PartLine, bool) {
	for _, l := range o.Pecas {
		if l.PecaID == pecaID {
			return l, true
		}
	}
	return PartLine{}, false
}

// WorkOrderSummary is a work order joined with its customer and mechanic,
// used by list responses.
type WorkOrderSummary struct {
	Order    WorkOrder
	Cliente  Customer
	Mecanico Mechanic
}

// PartDetail is a part joined with the quantity on the order.
type PartDetail struct {
	Part       Part
	Quantidade int
}

// WorkOrderDetail is the fully joined view returned by get-by-id.
type WorkOrderDetail struct {
	Order    WorkOrder
	Cliente  Customer
	Mecanico Mechanic
	Servicos []Service
	Pecas    []PartDetail
}

// WorkOrderFilter narrows work order listings.
type WorkOrderFilter struct {
	ClienteID          string
	MecanicoID         string
	DataAberturaInicio *time.Time
	DataAberturaFim    *time.Time
}
