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

func TestCustomerUseCase_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICustomerRepository(ctrl)
	uc := NewCustomerUseCase(repo, nil, pkg.NewKeyLock())

	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
		func(_ context.Context, c entities.Customer) (entities.Customer, error) {
			if c.ID == "" {
				t.Fatalf("expected generated id")
			}
			if c.Nome != "Ana" {
				t.Fatalf("unexpected customer: %+v", c)
			}
			return c, nil
		},
	)

	created, err := uc.Create(context.Background(), entities.Customer{Nome: "Ana", Sobrenome: "Souza"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected id on created customer")
	}
}

func TestCustomerUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil, pkg.NewKeyLock())
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil, pkg.NewKeyLock())

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{}, nil)

		_, err := uc.GetByID(context.Background(), "c-1")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})
}

func TestCustomerUseCase_UpdatePartial(t *testing.T) {
	t.Run("empty patch reads current", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil, pkg.NewKeyLock())

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1", Nome: "Ana"}, nil)

		got, err := uc.Update(context.Background(), "c-1", entities.CustomerPatch{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Nome != "Ana" {
			t.Fatalf("unexpected customer: %+v", got)
		}
	})

	t.Run("patch applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil, pkg.NewKeyLock())

		nome := "Maria"
		repo.EXPECT().Update(gomock.Any(), "c-1", gomock.Any()).Return(entities.Customer{ID: "c-1", Nome: "Maria"}, nil)

		got, err := uc.Update(context.Background(), "c-1", entities.CustomerPatch{Nome: &nome})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Nome != "Maria" {
			t.Fatalf("patch not applied: %+v", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil, pkg.NewKeyLock())

		nome := "Maria"
		repo.EXPECT().Update(gomock.Any(), "c-9", gomock.Any()).Return(entities.Customer{}, nil)

		_, err := uc.Update(context.Background(), "c-9", entities.CustomerPatch{Nome: &nome})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})
}

func TestCustomerUseCase_Delete(t *testing.T) {
	t.Run("blocked while referenced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		orders := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewCustomerUseCase(repo, orders, pkg.NewKeyLock())

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
		orders.EXPECT().ExistsReferencingCustomer(gomock.Any(), "c-1").Return(true, nil)

		err := uc.Delete(context.Background(), "c-1")
		if !errors.Is(err, ErrCustomerInUse) {
			t.Fatalf("expected ErrCustomerInUse, got %v", err)
		}
	})

	t.Run("unreferenced deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		orders := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewCustomerUseCase(repo, orders, pkg.NewKeyLock())

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
		orders.EXPECT().ExistsReferencingCustomer(gomock.Any(), "c-1").Return(false, nil)
		repo.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)

		if err := uc.Delete(context.Background(), "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("absent customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil, pkg.NewKeyLock())

		repo.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.Customer{}, nil)

		err := uc.Delete(context.Background(), "c-9")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})
}
