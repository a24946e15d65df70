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
	ErrPartNotFound     = errors.New("part not found")
	ErrInvalidPartID    = errors.New("invalid part id")
	ErrPartInUse        = errors.New("part referenced by a work order line")
	ErrNegativePartCost = errors.New("part price must not be negative")
)

type IPartUseCase interface {
	Create(ctx context.Context, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
	List(ctx context.Context, page, size int) ([]entities.Part, int, error)
	Update(ctx context.Context, id string, patch entities.PartPatch) (entities.Part, error)
	Delete(ctx context.Context, id string) error
}

type PartUseCase struct {
	repo   interfaces.IPartRepository
	orders interfaces.IWorkOrderRepository
	locks  *pkg.KeyLock
}

var _ IPartUseCase = (*PartUseCase)(nil)

func NewPartUseCase(repo interfaces.IPartRepository, orders interfaces.IWorkOrderRepository, locks *pkg.KeyLock) *PartUseCase {
	return &PartUseCase{repo: repo, orders: orders, locks: locks}
}

func (u *PartUseCase) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	if p.Valor < 0 {
		return entities.Part{}, ErrNegativePartCost
	}
	p.ID = uuid.NewString()
	return u.repo.Create(ctx, p)
}

func (u *PartUseCase) GetByID(ctx context.Context, id string) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidPartID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Part{}, err
	}
	if p.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return p, nil
}

func (u *PartUseCase) List(ctx context.Context, page, size int) ([]entities.Part, int, error) {
	page, size = normalizePage(page, size)
	return u.repo.List(ctx, page, size)
}

func (u *PartUseCase) Update(ctx context.Context, id string, patch entities.PartPatch) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidPartID
	}
	if patch.Valor != nil && *patch.Valor < 0 {
		return entities.Part{}, ErrNegativePartCost
	}
	if patch.Empty() {
		return u.GetByID(ctx, id)
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Part{}, err
	}
	if updated.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return updated, nil
}

// Delete blocks while any work order holds a part line for this part.
func (u *PartUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPartID
	}

	u.locks.Lock("peca:" + id)
	defer u.locks.Unlock("peca:" + id)

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrPartNotFound
	}

	related, err := u.orders.ExistsReferencingPart(ctx, id)
	if err != nil {
		return err
	}
	if related {
		return ErrPartInUse
	}

	return u.repo.Delete(ctx, id)
}
