package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_mecanica/internal/domain/entities"
	mock_interfaces "oficina_mecanica/internal/usecase/interfaces/mocks"
	"oficina_mecanica/pkg"

	"go.uber.org/mock/gomock"
)

func TestPartUseCase_CreateRejectsNegativePrice(t *testing.T) {
	uc := NewPartUseCase(nil, nil, pkg.NewKeyLock())

	_, err := uc.Create(context.Background(), entities.Part{Nome: "Filtro", Valor: -1})
	if !errors.Is(err, ErrNegativePartCost) {
		t.Fatalf("expected ErrNegativePartCost, got %v", err)
	}
}

func TestPartUseCase_Delete(t *testing.T) {
	t.Run("blocked by part line reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		orders := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewPartUseCase(repo, orders, pkg.NewKeyLock())

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{ID: "p-1"}, nil)
		orders.EXPECT().ExistsReferencingPart(gomock.Any(), "p-1").Return(true, nil)

		err := uc.Delete(context.Background(), "p-1")
		if !errors.Is(err, ErrPartInUse) {
			t.Fatalf("expected ErrPartInUse, got %v", err)
		}
	})

	t.Run("unreferenced part deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		orders := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewPartUseCase(repo, orders, pkg.NewKeyLock())

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{ID: "p-1"}, nil)
		orders.EXPECT().ExistsReferencingPart(gomock.Any(), "p-1").Return(false, nil)
		repo.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)

		if err := uc.Delete(context.Background(), "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceUseCase_CreateForcesAtivo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIServiceRepository(ctrl)
	uc := NewServiceUseCase(repo, nil, pkg.NewKeyLock())

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.Service) (entities.Service, error) {
			if !s.Ativo {
				t.Fatalf("expected ativo forced true")
			}
			return s, nil
		},
	)

	created, err := uc.Create(context.Background(), entities.Service{Nome: "Troca de oleo", Valor: 80, Ativo: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.Ativo {
		t.Fatalf("expected ativo true on created service")
	}
}

func TestServiceUseCase_DeleteBlockedWhileReferenced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIServiceRepository(ctrl)
	orders := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
	uc := NewServiceUseCase(repo, orders, pkg.NewKeyLock())

	repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1"}, nil)
	orders.EXPECT().ExistsReferencingService(gomock.Any(), "s-1").Return(true, nil)

	err := uc.Delete(context.Background(), "s-1")
	if !errors.Is(err, ErrServiceInUse) {
		t.Fatalf("expected ErrServiceInUse, got %v", err)
	}
}
