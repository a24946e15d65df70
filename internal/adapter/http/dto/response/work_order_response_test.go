package response

import (
	"testing"
	"time"

	"oficina_mecanica/internal/domain/entities"
)

func TestFromWorkOrder(t *testing.T) {
	now := time.Now().UTC()
	valor := 21.5
	o := entities.WorkOrder{
		ID:            "os-1",
		ClienteID:     "c-1",
		MecanicoID:    "m-1",
		ServicoIDs:    []string{"s-1"},
		Pecas:         []entities.PartLine{{PecaID: "p-1", Quantidade: 2}},
		DataAbertura:  now.Add(-time.Hour),
		DataConclusao: &now,
		Situacao:      entities.WorkOrderStatusConcluida,
		Valor:         &valor,
	}

	res := FromWorkOrder(o)
	if res.ID != "os-1" || res.ClienteID != "c-1" || res.MecanicoID != "m-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Situacao != "concluida" || res.Valor == nil || *res.Valor != 21.5 {
		t.Fatalf("unexpected conclusion fields: %+v", res)
	}
	if len(res.Pecas) != 1 || res.Pecas[0].Quantidade != 2 {
		t.Fatalf("unexpected part lines: %+v", res.Pecas)
	}
}

func TestFromWorkOrder_NilSetsBecomeEmpty(t *testing.T) {
	res := FromWorkOrder(entities.WorkOrder{ID: "os-1", Situacao: entities.WorkOrderStatusPendente})
	if res.ServicoIDs == nil || res.Pecas == nil {
		t.Fatalf("expected empty slices, got %+v", res)
	}
	if res.Valor != nil || res.DataConclusao != nil {
		t.Fatalf("expected nil conclusion fields, got %+v", res)
	}
}

func TestNewPaginated(t *testing.T) {
	p := NewPaginated(2, 10, 35, []CustomerResponse{{ID: "c-1"}})
	if p.Pagination.Page != 2 || p.Pagination.Size != 10 || p.Pagination.Total != 35 {
		t.Fatalf("unexpected pagination: %+v", p.Pagination)
	}
	if len(p.Items) != 1 {
		t.Fatalf("unexpected items: %+v", p.Items)
	}

	empty := NewPaginated[CustomerResponse](1, 10, 0, nil)
	if empty.Items == nil {
		t.Fatalf("expected non-nil empty items")
	}
}
