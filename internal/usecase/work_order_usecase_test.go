package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_mecanica/internal/domain/entities"
	mock_interfaces "oficina_mecanica/internal/usecase/interfaces/mocks"
	"oficina_mecanica/pkg"

	"go.uber.org/mock/gomock"
)

type workOrderMocks struct {
	orders    *mock_interfaces.MockIWorkOrderRepository
	customers *mock_interfaces.MockICustomerRepository
	mechanics *mock_interfaces.MockIMechanicRepository
	services  *mock_interfaces.MockIServiceRepository
	parts     *mock_interfaces.MockIPartRepository
}

func newWorkOrderUseCaseForTest(ctrl *gomock.Controller) (*WorkOrderUseCase, workOrderMocks) {
	m := workOrderMocks{
		orders:    mock_interfaces.NewMockIWorkOrderRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		mechanics: mock_interfaces.NewMockIMechanicRepository(ctrl),
		services:  mock_interfaces.NewMockIServiceRepository(ctrl),
		parts:     mock_interfaces.NewMockIPartRepository(ctrl),
	}
	reports := NewReportUseCase(m.orders, m.mechanics, m.services, m.parts, nil)
	uc := NewWorkOrderUseCase(m.orders, m.customers, m.mechanics, m.services, m.parts, reports, pkg.NewKeyLock())
	return uc, m
}

func concludedOrder(id string) entities.WorkOrder {
	now := time.Now().UTC()
	valor := 100.0
	return entities.WorkOrder{
		ID:            id,
		ClienteID:     "c-1",
		MecanicoID:    "m-1",
		DataAbertura:  now.Add(-time.Hour),
		DataConclusao: &now,
		Situacao:      entities.WorkOrderStatusConcluida,
		Valor:         &valor,
	}
}

func TestWorkOrderUseCase_Create(t *testing.T) {
	t.Run("unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.Customer{}, nil)

		_, err := uc.Create(context.Background(), "c-9", "m-1")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("unknown mechanic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
		m.mechanics.EXPECT().GetByID(gomock.Any(), "m-9").Return(entities.Mechanic{}, nil)

		_, err := uc.Create(context.Background(), "c-1", "m-9")
		if !errors.Is(err, ErrMechanicNotFound) {
			t.Fatalf("expected ErrMechanicNotFound, got %v", err)
		}
	})

	t.Run("opens pending with empty sets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
		m.mechanics.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Mechanic{ID: "m-1"}, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
				if o.ID == "" || o.Situacao != entities.WorkOrderStatusPendente {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.Valor != nil || o.DataConclusao != nil {
					t.Fatalf("pending order must have nil valor and nil data_conclusao")
				}
				if o.DataAbertura.IsZero() {
					t.Fatalf("expected data_abertura set")
				}
				if len(o.ServicoIDs) != 0 || len(o.Pecas) != 0 {
					t.Fatalf("expected empty service/part sets")
				}
				return o, nil
			},
		)

		o, err := uc.Create(context.Background(), " c-1 ", "m-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ClienteID != "c-1" || o.MecanicoID != "m-1" {
			t.Fatalf("unexpected references: %+v", o)
		}
	})
}

func TestWorkOrderUseCase_AddPart(t *testing.T) {
	t.Run("same part twice merges quantities", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl)

		o := entities.WorkOrder{
			ID:       "os-1",
			Situacao: entities.WorkOrderStatusPendente,
			Pecas:    []entities.PartLine{{PecaID: "p-1", Quantidade: 2}},
		}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(o, nil)
		m.parts.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{ID: "p-1"}, nil)
		m.orders.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.WorkOrder) (entities.WorkOrder, error) {
				if len(saved.Pecas) != 1 {
					t.Fatalf("expected one merged line, got %d", len(saved.Pecas))
				}
				if saved.Pecas[0].Quantidade != 5 {
					t.Fatalf("expected quantity 5, got %d", saved.Pecas[0].Quantidade)
				}
				return saved, nil
			},
		)

		if _, err := uc.AddPart(context.Background(), "os-1", "p-1", 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("order deleted between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl)

		o := entities.WorkOrder{ID: "os-1", Situacao: entities.WorkOrderStatusPendente}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(o, nil)
		m.parts.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{ID: "p-1"}, nil)
		// The conditional write reports the vanished order as a zero value.
		m.orders.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.WorkOrder{}, nil)

		_, err := uc.AddPart(context.Background(), "os-1", "p-1", 1)
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl)

		o := entities.WorkOrder{ID: "os-1", Situacao: entities.WorkOrderStatusPendente}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(o, nil)
		m.parts.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{ID: "p-1"}, nil)

		_, err := uc.AddPart(context.Background(), "os-1", "p-1", 0)
		if !errors.Is(err, entities.ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("unknown part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl)

		o := entities.WorkOrder{ID: "os-1", Situacao: entities.WorkOrderStatusPendente}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(o, nil)
		m.parts.EXPECT().GetByID(gomock.Any(), "p-9").Return(entities.Part{}, nil)

		_, err := uc.AddPart(context.Background(), "os-1", "p-9", 1)
		if !errors.Is(err, ErrPartNotFound) {
			t.Fatalf("expected ErrPartNotFound, got %v", err)
		}
	})

	t.Run("concluded order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(concludedOrder("os-1"), nil)

		_, err := uc.AddPart(context.Background(), "os-1", "p-1", 1)
		if !errors.Is(err, entities.ErrOrderConcluded) {
			t.Fatalf("expected ErrOrderConcluded, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_RemovePart(t *testing.T) {
	t.Run("absent line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl)

		o := entities.WorkOrder{ID: "os-1", Situacao: entities.WorkOrderStatusPendente}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(o, nil)
		m.parts.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{ID: "p-1"}, nil)

		_, err := uc.RemovePart(context.Background(), "os-1", "p-1")
		if !errors.Is(err, ErrPartLineNotFound) {
			t.Fatalf("expected ErrPartLineNotFound, got %v", err)
		}
	})

	t.Run("removes the line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl)

		o := entities.WorkOrder{
			ID:       "os-1",
			Situacao: entities.WorkOrderStatusPendente,
			Pecas:    []entities.PartLine{{PecaID: "p-1", Quantidade: 2}},
		}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(o, nil)
		m.parts.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{ID: "p-1"}, nil)
		m.orders.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.WorkOrder) (entities.WorkOrder, error) {
				if len(saved.Pecas) != 0 {
					t.Fatalf("expected line removed, got %+v", saved.Pecas)
				}
				return saved, nil
			},
		)

		if _, err := uc.RemovePart(context.Background(), "os-1", "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkOrderUseCase_AddService(t *testing.T) {
	t.Run("duplicate service is rejected without merge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl)

		o := entities.WorkOrder{
			ID:         "os-1",
			Situacao:   entities.WorkOrderStatusPendente,
			ServicoIDs: []string{"s-1"},
		}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(o, nil)
		m.services.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1"}, nil)

		_, err := uc.AddService(context.Background(), "os-1", "s-1")
		if !errors.Is(err, entities.ErrDuplicateService) {
			t.Fatalf("expected ErrDuplicateService, got %v", err)
		}
	})

	t.Run("adds the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl)

		o := entities.WorkOrder{ID: "os-1", Situacao: entities.WorkOrderStatusPendente}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(o, nil)
		m.services.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1"}, nil)
		m.orders.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.WorkOrder) (entities.WorkOrder, error) {
				if len(saved.ServicoIDs) != 1 || saved.ServicoIDs[0] != "s-1" {
					t.Fatalf("unexpected services: %v", saved.ServicoIDs)
				}
				return saved, nil
			},
		)

		if _, err := uc.AddService(context.Background(), "os-1", "s-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkOrderUseCase_Update(t *testing.T) {
	t.Run("concluded order rejects reassignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(concludedOrder("os-1"), nil)

		_, err := uc.Update(context.Background(), "os-1", "c-2", "m-2")
		if !errors.Is(err, entities.ErrOrderConcluded) {
			t.Fatalf("expected ErrOrderConcluded, got %v", err)
		}
	})

	t.Run("reassigns validated references", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl)

		o := entities.WorkOrder{ID: "os-1", ClienteID: "c-1", MecanicoID: "m-1", Situacao: entities.WorkOrderStatusPendente}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(o, nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "c-2").Return(entities.Customer{ID: "c-2"}, nil)
		m.mechanics.EXPECT().GetByID(gomock.Any(), "m-2").Return(entities.Mechanic{ID: "m-2"}, nil)
		m.orders.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.WorkOrder) (entities.WorkOrder, error) {
				if saved.ClienteID != "c-2" || saved.MecanicoID != "m-2" {
					t.Fatalf("references not reassigned: %+v", saved)
				}
				return saved, nil
			},
		)

		if _, err := uc.Update(context.Background(), "os-1", "c-2", "m-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("order deleted between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl)

		o := entities.WorkOrder{ID: "os-1", ClienteID: "c-1", MecanicoID: "m-1", Situacao: entities.WorkOrderStatusPendente}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(o, nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "c-2").Return(entities.Customer{ID: "c-2"}, nil)
		m.mechanics.EXPECT().GetByID(gomock.Any(), "m-2").Return(entities.Mechanic{ID: "m-2"}, nil)
		m.orders.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.WorkOrder{}, nil)

		_, err := uc.Update(context.Background(), "os-1", "c-2", "m-2")
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_Conclude(t *testing.T) {
	t.Run("totals services and part lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl)

		o := entities.WorkOrder{
			ID:         "os-1",
			Situacao:   entities.WorkOrderStatusPendente,
			ServicoIDs: []string{"s-1", "s-2"},
			Pecas:      []entities.PartLine{{PecaID: "p-1", Quantidade: 2}},
		}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(o, nil)
		m.services.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1", Valor: 10.00}, nil)
		m.services.EXPECT().GetByID(gomock.Any(), "s-2").Return(entities.Service{ID: "s-2", Valor: 5.50}, nil)
		m.parts.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{ID: "p-1", Valor: 3.00}, nil)
		m.orders.EXPECT().Conclude(gomock.Any(), "os-1", 21.50, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, valor float64, at time.Time) (entities.WorkOrder, error) {
				o.Situacao = entities.WorkOrderStatusConcluida
				o.DataConclusao = &at
				o.Valor = &valor
				return o, nil
			},
		)

		concluded, err := uc.Conclude(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if concluded.Valor == nil || *concluded.Valor != 21.50 {
			t.Fatalf("expected valor 21.50, got %+v", concluded.Valor)
		}
		if concluded.DataConclusao == nil || concluded.Situacao != entities.WorkOrderStatusConcluida {
			t.Fatalf("expected concluded order, got %+v", concluded)
		}
	})

	t.Run("second conclude fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(concludedOrder("os-1"), nil)

		_, err := uc.Conclude(context.Background(), "os-1")
		if !errors.Is(err, entities.ErrOrderConcluded) {
			t.Fatalf("expected ErrOrderConcluded, got %v", err)
		}
	})

	t.Run("conditional write lost the race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl)

		o := entities.WorkOrder{ID: "os-1", Situacao: entities.WorkOrderStatusPendente}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(o, nil)
		m.orders.EXPECT().Conclude(gomock.Any(), "os-1", 0.0, gomock.Any()).Return(entities.WorkOrder{}, nil)

		_, err := uc.Conclude(context.Background(), "os-1")
		if !errors.Is(err, entities.ErrOrderConcluded) {
			t.Fatalf("expected ErrOrderConcluded, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_DeleteIgnoresStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newWorkOrderUseCaseForTest(ctrl)

	m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(concludedOrder("os-1"), nil)
	m.orders.EXPECT().Delete(gomock.Any(), "os-1").Return(nil)

	if err := uc.Delete(context.Background(), "os-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
