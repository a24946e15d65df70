package entities

import (
	"errors"
	"testing"
	"time"
)

func pendingOrder() WorkOrder {
	return WorkOrder{
		ID:           "os-1",
		ClienteID:    "c-1",
		MecanicoID:   "m-1",
		DataAbertura: time.Now().UTC(),
		Situacao:     WorkOrderStatusPendente,
	}
}

func TestWorkOrder_AddPartMergesByIdentity(t *testing.T) {
	o := pendingOrder()

	if err := o.AddPart("p-1", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := o.AddPart("p-1", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(o.Pecas) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(o.Pecas))
	}
	if o.Pecas[0].Quantidade != 5 {
		t.Fatalf("expected quantity 5, got %d", o.Pecas[0].Quantidade)
	}
}

func TestWorkOrder_AddPartRejectsNonPositiveQuantity(t *testing.T) {
	o := pendingOrder()

	for _, qtd := range []int{0, -1} {
		if err := o.AddPart("p-1", qtd); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("quantity %d: expected ErrInvalidQuantity, got %v", qtd, err)
		}
	}
	if len(o.Pecas) != 0 {
		t.Fatalf("expected no lines, got %d", len(o.Pecas))
	}
}

func TestWorkOrder_AddServiceRejectsDuplicate(t *testing.T) {
	o := pendingOrder()

	if err := o.AddService("s-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := o.AddService("s-1"); !errors.Is(err, ErrDuplicateService) {
		t.Fatalf("expected ErrDuplicateService, got %v", err)
	}
	if len(o.ServicoIDs) != 1 {
		t.Fatalf("service set changed after rejected add: %v", o.ServicoIDs)
	}
}

func TestWorkOrder_RemoveServiceIsNoOpSafe(t *testing.T) {
	o := pendingOrder()
	o.ServicoIDs = []string{"s-1", "s-2"}

	if err := o.RemoveService("s-9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := o.RemoveService("s-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(o.ServicoIDs) != 1 || o.ServicoIDs[0] != "s-2" {
		t.Fatalf("unexpected service set: %v", o.ServicoIDs)
	}
}

func TestWorkOrder_RemovePart(t *testing.T) {
	o := pendingOrder()
	_ = o.AddPart("p-1", 1)
	_ = o.AddPart("p-2", 4)

	removed, err := o.RemovePart("p-1")
	if err != nil || !removed {
		t.Fatalf("expected removal, got removed=%v err=%v", removed, err)
	}
	removed, err = o.RemovePart("p-1")
	if err != nil || removed {
		t.Fatalf("expected no-op removal, got removed=%v err=%v", removed, err)
	}
	if _, ok := o.PartLineFor("p-2"); !ok {
		t.Fatalf("remaining line lost")
	}
}

func TestWorkOrder_ConcludedOrderIsFrozen(t *testing.T) {
	o := pendingOrder()
	now := time.Now().UTC()
	valor := 21.5
	o.Situacao = WorkOrderStatusConcluida
	o.DataConclusao = &now
	o.Valor = &valor

	if err := o.AddService("s-1"); !errors.Is(err, ErrOrderConcluded) {
		t.Fatalf("AddService: expected ErrOrderConcluded, got %v", err)
	}
	if err := o.RemoveService("s-1"); !errors.Is(err, ErrOrderConcluded) {
		t.Fatalf("RemoveService: expected ErrOrderConcluded, got %v", err)
	}
	if err := o.AddPart("p-1", 1); !errors.Is(err, ErrOrderConcluded) {
		t.Fatalf("AddPart: expected ErrOrderConcluded, got %v", err)
	}
	if _, err := o.RemovePart("p-1"); !errors.Is(err, ErrOrderConcluded) {
		t.Fatalf("RemovePart: expected ErrOrderConcluded, got %v", err)
	}
}
