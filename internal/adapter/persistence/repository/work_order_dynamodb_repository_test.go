package repository

import (
	"testing"
	"time"

	"oficina_mecanica/internal/domain/entities"
)

// DynamoDB compares S attributes bytewise, so chronological order must match
// lexicographic order of the stored strings. A variable-width fraction breaks
// that: "...T00:00:00.5Z" sorts before "...T00:00:00Z".
func TestStoredTimeLayoutOrdersBytewise(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	opened := time.Date(2024, 1, 1, 0, 0, 0, 500000000, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC)

	s := start.UTC().Format(storedTimeLayout)
	o := opened.UTC().Format(storedTimeLayout)
	e := end.UTC().Format(storedTimeLayout)

	if len(s) != len(o) || len(o) != len(e) {
		t.Fatalf("stored timestamps not fixed width: %q %q %q", s, o, e)
	}
	if o < s || o > e {
		t.Fatalf("in-range opening %q falls outside [%q, %q] bytewise", o, s, e)
	}
}

func TestWorkOrderItemDateRoundTrip(t *testing.T) {
	abertura := time.Date(2024, 1, 1, 0, 0, 0, 500000000, time.UTC)
	it := toWorkOrderItem(entities.WorkOrder{
		ID:           "os-1",
		ClienteID:    "c-1",
		MecanicoID:   "m-1",
		Situacao:     entities.WorkOrderStatusPendente,
		DataAbertura: abertura,
	})

	want := "2024-01-01T00:00:00.500000000Z"
	if it.DataAbertura != want {
		t.Fatalf("stored data_abertura = %q, want %q", it.DataAbertura, want)
	}

	back := fromWorkOrderItem(it)
	if !back.DataAbertura.Equal(abertura) {
		t.Fatalf("round-tripped data_abertura = %v, want %v", back.DataAbertura, abertura)
	}
}
