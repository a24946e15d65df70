package usecase

import (
	"context"
	"errors"
	"strings"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"
	"oficina_mecanica/pkg"

	"github.com/google/uuid"
)

var (
	ErrMechanicNotFound  = errors.New("mechanic not found")
	ErrInvalidMechanicID = errors.New("invalid mechanic id")
	ErrMechanicInUse     = errors.New("mechanic referenced by a work order")
)

type IMechanicUseCase interface {
	Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
	GetByID(ctx context.Context, id string) (entities.Mechanic, error)
	List(ctx context.Context, page, size int) ([]entities.Mechanic, int, error)
	Update(ctx context.Context, id string, patch entities.MechanicPatch) (entities.Mechanic, error)
	Delete(ctx context.Context, id string) error
}

type MechanicUseCase struct {
	repo   interfaces.IMechanicRepository
	orders interfaces.IWorkOrderRepository
	locks  *pkg.KeyLock
}

var _ IMechanicUseCase = (*MechanicUseCase)(nil)

func NewMechanicUseCase(repo interfaces.IMechanicRepository, orders interfaces.IWorkOrderRepository, locks *pkg.KeyLock) *MechanicUseCase {
	return &MechanicUseCase{repo: repo, orders: orders, locks: locks}
}

func (u *MechanicUseCase) Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	m.ID = uuid.NewString()
	return u.repo.Create(ctx, m)
}

func (u *MechanicUseCase) GetByID(ctx context.Context, id string) (entities.Mechanic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Mechanic{}, ErrInvalidMechanicID
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Mechanic{}, err
	}
	if m.ID == "" {
		return entities.Mechanic{}, ErrMechanicNotFound
	}
	return m, nil
}

func (u *MechanicUseCase) List(ctx context.Context, page, size int) ([]entities.Mechanic, int, error) {
	page, size = normalizePage(page, size)
	return u.repo.List(ctx, page, size)
}

func (u *MechanicUseCase) Update(ctx context.Context, id string, patch entities.MechanicPatch) (entities.Mechanic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Mechanic{}, ErrInvalidMechanicID
	}
	if patch.Empty() {
		return u.GetByID(ctx, id)
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Mechanic{}, err
	}
	if updated.ID == "" {
		return entities.Mechanic{}, ErrMechanicNotFound
	}
	return updated, nil
}

func (u *MechanicUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidMechanicID
	}

	u.locks.Lock("mecanico:" + id)
	defer u.locks.Unlock("mecanico:" + id)

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m.ID == "" {
		return ErrMechanicNotFound
	}

	related, err := u.orders.ExistsReferencingMechanic(ctx, id)
	if err != nil {
		return err
	}
	if related {
		return ErrMechanicInUse
	}

	return u.repo.Delete(ctx, id)
}
