package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_mecanica/internal/domain/entities"
	mock_interfaces "oficina_mecanica/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type reportMocks struct {
	orders    *mock_interfaces.MockIWorkOrderRepository
	mechanics *mock_interfaces.MockIMechanicRepository
	services  *mock_interfaces.MockIServiceRepository
	parts     *mock_interfaces.MockIPartRepository
	generator *mock_interfaces.MockIReportGenerator
}

func newReportUseCaseForTest(ctrl *gomock.Controller) (*ReportUseCase, reportMocks) {
	m := reportMocks{
		orders:    mock_interfaces.NewMockIWorkOrderRepository(ctrl),
		mechanics: mock_interfaces.NewMockIMechanicRepository(ctrl),
		services:  mock_interfaces.NewMockIServiceRepository(ctrl),
		parts:     mock_interfaces.NewMockIPartRepository(ctrl),
		generator: mock_interfaces.NewMockIReportGenerator(ctrl),
	}
	return NewReportUseCase(m.orders, m.mechanics, m.services, m.parts, m.generator), m
}

func TestReportUseCase_OrderTotal(t *testing.T) {
	t.Run("rounds to two decimal places", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReportUseCaseForTest(ctrl)

		o := entities.WorkOrder{
			ID:         "os-1",
			ServicoIDs: []string{"s-1"},
			Pecas:      []entities.PartLine{{PecaID: "p-1", Quantidade: 3}},
		}
		m.services.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1", Valor: 19.99}, nil)
		m.parts.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{ID: "p-1", Valor: 0.10}, nil)

		total, err := uc.OrderTotal(context.Background(), o)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 20.29 {
			t.Fatalf("expected 20.29, got %v", total)
		}
	})

	t.Run("unresolved service reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReportUseCaseForTest(ctrl)

		o := entities.WorkOrder{ID: "os-1", ServicoIDs: []string{"s-gone"}}
		m.services.EXPECT().GetByID(gomock.Any(), "s-gone").Return(entities.Service{}, nil)

		_, err := uc.OrderTotal(context.Background(), o)
		if !errors.Is(err, ErrOrderTotal) {
			t.Fatalf("expected ErrOrderTotal, got %v", err)
		}
	})
}

func TestReportUseCase_MechanicProductivity(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("groups and sorts by count descending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReportUseCaseForTest(ctrl)

		m.orders.EXPECT().ListOpenedBetween(gomock.Any(), start, end).Return([]entities.WorkOrder{
			{ID: "os-1", MecanicoID: "m-b"},
			{ID: "os-2", MecanicoID: "m-a"},
			{ID: "os-3", MecanicoID: "m-a"},
			{ID: "os-4", MecanicoID: "m-a"},
		}, nil)
		m.mechanics.EXPECT().GetByID(gomock.Any(), "m-a").Return(entities.Mechanic{ID: "m-a", Nome: "Ana", Sobrenome: "Lima"}, nil)
		m.mechanics.EXPECT().GetByID(gomock.Any(), "m-b").Return(entities.Mechanic{ID: "m-b", Nome: "Bruno", Sobrenome: "Souza"}, nil)

		rows, err := uc.MechanicProductivity(context.Background(), start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		if rows[0].Nome != "Ana" || rows[0].TotalOrdens != 3 {
			t.Fatalf("unexpected first row: %+v", rows[0])
		}
		if rows[1].Nome != "Bruno" || rows[1].TotalOrdens != 1 {
			t.Fatalf("unexpected second row: %+v", rows[1])
		}
	})

	t.Run("inverted period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newReportUseCaseForTest(ctrl)

		_, err := uc.MechanicProductivity(context.Background(), end, start)
		if !errors.Is(err, ErrInvalidPeriod) {
			t.Fatalf("expected ErrInvalidPeriod, got %v", err)
		}
	})

	t.Run("drops mechanics that no longer resolve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReportUseCaseForTest(ctrl)

		m.orders.EXPECT().ListOpenedBetween(gomock.Any(), start, end).Return([]entities.WorkOrder{
			{ID: "os-1", MecanicoID: "m-gone"},
		}, nil)
		m.mechanics.EXPECT().GetByID(gomock.Any(), "m-gone").Return(entities.Mechanic{}, nil)

		rows, err := uc.MechanicProductivity(context.Background(), start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 0 {
			t.Fatalf("expected no rows, got %+v", rows)
		}
	})
}

func TestReportUseCase_MechanicReport(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("empty period yields no file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReportUseCaseForTest(ctrl)

		m.orders.EXPECT().ListOpenedBetween(gomock.Any(), start, end).Return([]entities.WorkOrder{}, nil)

		rows, filename, err := uc.MechanicReport(context.Background(), start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 0 || filename != "" {
			t.Fatalf("expected empty result, got rows=%v filename=%q", rows, filename)
		}
	})

	t.Run("renders file for populated period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReportUseCaseForTest(ctrl)

		m.orders.EXPECT().ListOpenedBetween(gomock.Any(), start, end).Return([]entities.WorkOrder{
			{ID: "os-1", MecanicoID: "m-a"},
		}, nil)
		m.mechanics.EXPECT().GetByID(gomock.Any(), "m-a").Return(entities.Mechanic{ID: "m-a", Nome: "Ana", Sobrenome: "Lima"}, nil)
		m.generator.EXPECT().MechanicReport(gomock.Any(), "01/01/2024", "31/01/2024").Return("relatorio-abc.pdf", nil)

		rows, filename, err := uc.MechanicReport(context.Background(), start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if filename != "relatorio-abc.pdf" || len(rows) != 1 {
			t.Fatalf("unexpected result: rows=%v filename=%q", rows, filename)
		}
	})

	t.Run("generator failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReportUseCaseForTest(ctrl)

		m.orders.EXPECT().ListOpenedBetween(gomock.Any(), start, end).Return([]entities.WorkOrder{
			{ID: "os-1", MecanicoID: "m-a"},
		}, nil)
		m.mechanics.EXPECT().GetByID(gomock.Any(), "m-a").Return(entities.Mechanic{ID: "m-a", Nome: "Ana", Sobrenome: "Lima"}, nil)
		m.generator.EXPECT().MechanicReport(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("disk full"))

		_, _, err := uc.MechanicReport(context.Background(), start, end)
		if !errors.Is(err, ErrReportGeneration) {
			t.Fatalf("expected ErrReportGeneration, got %v", err)
		}
	})
}
