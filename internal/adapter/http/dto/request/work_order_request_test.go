package request

import (
	"errors"
	"testing"
	"time"
)

func TestWorkOrderListQuery_ToFilter(t *testing.T) {
	q := WorkOrderListQuery{
		ClienteID:          "c-1",
		DataAberturaInicio: "2024-01-01",
		DataAberturaFim:    "2024-01-31",
	}
	f, err := q.ToFilter()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.ClienteID != "c-1" || f.MecanicoID != "" {
		t.Fatalf("unexpected filter: %+v", f)
	}
	if f.DataAberturaInicio == nil || !f.DataAberturaInicio.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start: %v", f.DataAberturaInicio)
	}
	if f.DataAberturaFim == nil || f.DataAberturaFim.Day() != 31 || f.DataAberturaFim.Hour() != 23 {
		t.Fatalf("expected end of day, got %v", f.DataAberturaFim)
	}

	q2 := WorkOrderListQuery{DataAberturaInicio: "01/01/2024"}
	if _, err := q2.ToFilter(); !errors.Is(err, ErrInvalidDateFilter) {
		t.Fatalf("expected ErrInvalidDateFilter, got %v", err)
	}
}

func TestReportPeriodQuery_Parse(t *testing.T) {
	q := ReportPeriodQuery{DataInicio: "01/01/2024", DataFim: "31/01/2024"}
	start, end, err := q.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Day() != 1 || start.Month() != time.January {
		t.Fatalf("unexpected start: %v", start)
	}
	if end.Before(start) || end.Hour() != 23 {
		t.Fatalf("expected inclusive end of day, got %v", end)
	}

	q2 := ReportPeriodQuery{DataInicio: "2024-01-01", DataFim: "31/01/2024"}
	if _, _, err := q2.Parse(); !errors.Is(err, ErrInvalidReportPeriod) {
		t.Fatalf("expected ErrInvalidReportPeriod, got %v", err)
	}
}
