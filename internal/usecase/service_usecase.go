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
	ErrServiceNotFound     = errors.New("service not found")
	ErrInvalidServiceID    = errors.New("invalid service id")
	ErrServiceInUse        = errors.New("service referenced by a work order")
	ErrNegativeServiceCost = errors.New("service price must not be negative")
)

type IServiceUseCase interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context, page, size int) ([]entities.Service, int, error)
	Update(ctx context.Context, id string, patch entities.ServicePatch) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}

type ServiceUseCase struct {
	repo   interfaces.IServiceRepository
	orders interfaces.IWorkOrderRepository
	locks  *pkg.KeyLock
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository, orders interfaces.IWorkOrderRepository, locks *pkg.KeyLock) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, orders: orders, locks: locks}
}

// Create stores the service with ativo forced true; deactivation only happens
// through update.
func (u *ServiceUseCase) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	if s.Valor < 0 {
		return entities.Service{}, ErrNegativeServiceCost
	}
	s.ID = uuid.NewString()
	s.Ativo = true
	return u.repo.Create(ctx, s)
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) List(ctx context.Context, page, size int) ([]entities.Service, int, error) {
	page, size = normalizePage(page, size)
	return u.repo.List(ctx, page, size)
}

func (u *ServiceUseCase) Update(ctx context.Context, id string, patch entities.ServicePatch) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	if patch.Valor != nil && *patch.Valor < 0 {
		return entities.Service{}, ErrNegativeServiceCost
	}
	if patch.Empty() {
		return u.GetByID(ctx, id)
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return updated, nil
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}

	u.locks.Lock("servico:" + id)
	defer u.locks.Unlock("servico:" + id)

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s.ID == "" {
		return ErrServiceNotFound
	}

	related, err := u.orders.ExistsReferencingService(ctx, id)
	if err != nil {
		return err
	}
	if related {
		return ErrServiceInUse
	}

	return u.repo.Delete(ctx, id)
}
