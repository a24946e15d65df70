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
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrCustomerInUse     = errors.New("customer referenced by a work order")
)

// ICustomerUseCase exposes cliente CRUD plus the referential-integrity guard
// on deletion.
type ICustomerUseCase interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context, page, size int) ([]entities.Customer, int, error)
	Update(ctx context.Context, id string, patch entities.CustomerPatch) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo   interfaces.ICustomerRepository
	orders interfaces.IWorkOrderRepository
	locks  *pkg.KeyLock
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, orders interfaces.IWorkOrderRepository, locks *pkg.KeyLock) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, orders: orders, locks: locks}
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.ID = uuid.NewString()
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context, page, size int) ([]entities.Customer, int, error) {
	page, size = normalizePage(page, size)
	return u.repo.List(ctx, page, size)
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, patch entities.CustomerPatch) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	if patch.Empty() {
		return u.GetByID(ctx, id)
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return updated, nil
}

// Delete blocks while any work order references the customer. The check and
// the delete run under a per-id lock; see pkg.KeyLock for the scope of that
// guarantee.
func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCustomerID
	}

	u.locks.Lock("cliente:" + id)
	defer u.locks.Unlock("cliente:" + id)

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrCustomerNotFound
	}

	related, err := u.orders.ExistsReferencingCustomer(ctx, id)
	if err != nil {
		return err
	}
	if related {
		return ErrCustomerInUse
	}

	return u.repo.Delete(ctx, id)
}

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	return page, size
}
