package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"
	"oficina_mecanica/pkg"

	"github.com/google/uuid"
)

var (
	ErrWorkOrderNotFound  = errors.New("work order not found")
	ErrInvalidWorkOrderID = errors.New("invalid work order id")
	ErrPartLineNotFound   = errors.New("part line not on work order")
)

// IWorkOrderUseCase is the order lifecycle manager: creation with reference
// validation, service/part attachment, conclusion and deletion.
type IWorkOrderUseCase interface {
	Create(ctx context.Context, clienteID, mecanicoID string) (entities.WorkOrder, error)
	GetDetail(ctx context.Context, id string) (entities.WorkOrderDetail, error)
	List(ctx context.Context, filter entities.WorkOrderFilter, page, size int) ([]entities.WorkOrderSummary, int, error)
	Update(ctx context.Context, id, clienteID, mecanicoID string) (entities.WorkOrder, error)
	Delete(ctx context.Context, id string) error
	AddService(ctx context.Context, id, servicoID string) (entities.WorkOrder, error)
	RemoveService(ctx context.Context, id, servicoID string) (entities.WorkOrder, error)
	AddPart(ctx context.Context, id, pecaID string, quantidade int) (entities.WorkOrder, error)
	RemovePart(ctx context.Context, id, pecaID string) (entities.WorkOrder, error)
	Conclude(ctx context.Context, id string) (entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo      interfaces.IWorkOrderRepository
	customers interfaces.ICustomerRepository
	mechanics interfaces.IMechanicRepository
	services  interfaces.IServiceRepository
	parts     interfaces.IPartRepository
	reports   IReportUseCase
	locks     *pkg.KeyLock
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(
	repo interfaces.IWorkOrderRepository,
	customers interfaces.ICustomerRepository,
	mechanics interfaces.IMechanicRepository,
	services interfaces.IServiceRepository,
	parts interfaces.IPartRepository,
	reports IReportUseCase,
	locks *pkg.KeyLock,
) *WorkOrderUseCase {
	return &WorkOrderUseCase{
		repo:      repo,
		customers: customers,
		mechanics: mechanics,
		services:  services,
		parts:     parts,
		reports:   reports,
		locks:     locks,
	}
}

func (u *WorkOrderUseCase) Create(ctx context.Context, clienteID, mecanicoID string) (entities.WorkOrder, error) {
	clienteID = strings.TrimSpace(clienteID)
	mecanicoID = strings.TrimSpace(mecanicoID)

	if err := u.validateReferences(ctx, clienteID, mecanicoID); err != nil {
		return entities.WorkOrder{}, err
	}

	o := entities.WorkOrder{
		ID:           uuid.NewString(),
		ClienteID:    clienteID,
		MecanicoID:   mecanicoID,
		ServicoIDs:   []string{},
		Pecas:        []entities.PartLine{},
		DataAbertura: time.Now().UTC(),
		Situacao:     entities.WorkOrderStatusPendente,
	}
	return u.repo.Create(ctx, o)
}

func (u *WorkOrderUseCase) validateReferences(ctx context.Context, clienteID, mecanicoID string) error {
	if clienteID == "" {
		return ErrCustomerNotFound
	}
	c, err := u.customers.GetByID(ctx, clienteID)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrCustomerNotFound
	}

	if mecanicoID == "" {
		return ErrMechanicNotFound
	}
	m, err := u.mechanics.GetByID(ctx, mecanicoID)
	if err != nil {
		return err
	}
	if m.ID == "" {
		return ErrMechanicNotFound
	}
	return nil
}

func (u *WorkOrderUseCase) GetDetail(ctx context.Context, id string) (entities.WorkOrderDetail, error) {
	o, err := u.getExisting(ctx, id)
	if err != nil {
		return entities.WorkOrderDetail{}, err
	}

	detail := entities.WorkOrderDetail{Order: o}

	detail.Cliente, err = u.customers.GetByID(ctx, o.ClienteID)
	if err != nil {
		return entities.WorkOrderDetail{}, err
	}
	detail.Mecanico, err = u.mechanics.GetByID(ctx, o.MecanicoID)
	if err != nil {
		return entities.WorkOrderDetail{}, err
	}

	detail.Servicos = make([]entities.Service, 0, len(o.ServicoIDs))
	for _, servicoID := range o.ServicoIDs {
		s, err := u.services.GetByID(ctx, servicoID)
		if err != nil {
			return entities.WorkOrderDetail{}, err
		}
		if s.ID != "" {
			detail.Servicos = append(detail.Servicos, s)
		}
	}

	detail.Pecas = make([]entities.PartDetail, 0, len(o.Pecas))
	for _, line := range o.Pecas {
		p, err := u.parts.GetByID(ctx, line.PecaID)
		if err != nil {
			return entities.WorkOrderDetail{}, err
		}
		if p.ID != "" {
			detail.Pecas = append(detail.Pecas, entities.PartDetail{Part: p, Quantidade: line.Quantidade})
		}
	}

	return detail, nil
}

func (u *WorkOrderUseCase) List(ctx context.Context, filter entities.WorkOrderFilter, page, size int) ([]entities.WorkOrderSummary, int, error) {
	page, size = normalizePage(page, size)

	orders, total, err := u.repo.List(ctx, filter, page, size)
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]entities.WorkOrderSummary, 0, len(orders))
	for _, o := range orders {
		s := entities.WorkOrderSummary{Order: o}
		if s.Cliente, err = u.customers.GetByID(ctx, o.ClienteID); err != nil {
			return nil, 0, err
		}
		if s.Mecanico, err = u.mechanics.GetByID(ctx, o.MecanicoID); err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, s)
	}
	return summaries, total, nil
}

// Update reassigns the customer/mechanic references after re-validating both.
func (u *WorkOrderUseCase) Update(ctx context.Context, id, clienteID, mecanicoID string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	u.locks.Lock(id)
	defer u.locks.Unlock(id)

	o, err := u.getExisting(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if o.Concluded() {
		return entities.WorkOrder{}, entities.ErrOrderConcluded
	}

	clienteID = strings.TrimSpace(clienteID)
	mecanicoID = strings.TrimSpace(mecanicoID)
	if err := u.validateReferences(ctx, clienteID, mecanicoID); err != nil {
		return entities.WorkOrder{}, err
	}

	o.ClienteID = clienteID
	o.MecanicoID = mecanicoID
	return u.save(ctx, o)
}

// Delete is unconditional: concluded orders are deletable as well. That
// mirrors the reference behavior and is a recorded design choice, not an
// invariant.
func (u *WorkOrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidWorkOrderID
	}

	u.locks.Lock(id)
	defer u.locks.Unlock(id)

	if _, err := u.getExisting(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *WorkOrderUseCase) AddService(ctx context.Context, id, servicoID string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	servicoID = strings.TrimSpace(servicoID)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	u.locks.Lock(id)
	defer u.locks.Unlock(id)

	o, err := u.getExisting(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if o.Concluded() {
		return entities.WorkOrder{}, entities.ErrOrderConcluded
	}

	if err := u.requireService(ctx, servicoID); err != nil {
		return entities.WorkOrder{}, err
	}
	if err := o.AddService(servicoID); err != nil {
		return entities.WorkOrder{}, err
	}
	return u.save(ctx, o)
}

func (u *WorkOrderUseCase) RemoveService(ctx context.Context, id, servicoID string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	servicoID = strings.TrimSpace(servicoID)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	u.locks.Lock(id)
	defer u.locks.Unlock(id)

	o, err := u.getExisting(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if o.Concluded() {
		return entities.WorkOrder{}, entities.ErrOrderConcluded
	}

	if err := u.requireService(ctx, servicoID); err != nil {
		return entities.WorkOrder{}, err
	}
	// Removing a service that is not on the list is a safe no-op.
	if err := o.RemoveService(servicoID); err != nil {
		return entities.WorkOrder{}, err
	}
	return u.save(ctx, o)
}

func (u *WorkOrderUseCase) AddPart(ctx context.Context, id, pecaID string, quantidade int) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	pecaID = strings.TrimSpace(pecaID)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	u.locks.Lock(id)
	defer u.locks.Unlock(id)

	o, err := u.getExisting(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if o.Concluded() {
		return entities.WorkOrder{}, entities.ErrOrderConcluded
	}

	if err := u.requirePart(ctx, pecaID); err != nil {
		return entities.WorkOrder{}, err
	}
	if err := o.AddPart(pecaID, quantidade); err != nil {
		return entities.WorkOrder{}, err
	}
	return u.save(ctx, o)
}

func (u *WorkOrderUseCase) RemovePart(ctx context.Context, id, pecaID string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	pecaID = strings.TrimSpace(pecaID)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	u.locks.Lock(id)
	defer u.locks.Unlock(id)

	o, err := u.getExisting(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if o.Concluded() {
		return entities.WorkOrder{}, entities.ErrOrderConcluded
	}

	if err := u.requirePart(ctx, pecaID); err != nil {
		return entities.WorkOrder{}, err
	}

	removed, err := o.RemovePart(pecaID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if !removed {
		return entities.WorkOrder{}, ErrPartLineNotFound
	}
	return u.save(ctx, o)
}

// Conclude computes the total from the order's current references and runs
// the pendente -> concluida transition. The per-id lock keeps concurrent
// attach/detach from racing the total computation; the conditional write in
// the repository keeps the transition once-only across processes.
func (u *WorkOrderUseCase) Conclude(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	u.locks.Lock(id)
	defer u.locks.Unlock(id)

	o, err := u.getExisting(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if o.Concluded() {
		return entities.WorkOrder{}, entities.ErrOrderConcluded
	}

	total, err := u.reports.OrderTotal(ctx, o)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	concluded, err := u.repo.Conclude(ctx, id, total, time.Now().UTC())
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if concluded.ID == "" {
		return entities.WorkOrder{}, entities.ErrOrderConcluded
	}
	return concluded, nil
}

// save persists the order document. A zero-value result means the
// attribute_exists condition failed: the order was deleted by another process
// between the read and the write, which surfaces as not-found.
func (u *WorkOrderUseCase) save(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	saved, err := u.repo.Save(ctx, o)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if saved.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return saved, nil
}

func (u *WorkOrderUseCase) getExisting(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if o.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return o, nil
}

func (u *WorkOrderUseCase) requireService(ctx context.Context, servicoID string) error {
	if servicoID == "" {
		return ErrServiceNotFound
	}
	s, err := u.services.GetByID(ctx, servicoID)
	if err != nil {
		return err
	}
	if s.ID == "" {
		return ErrServiceNotFound
	}
	return nil
}

func (u *WorkOrderUseCase) requirePart(ctx context.Context, pecaID string) error {
	if pecaID == "" {
		return ErrPartNotFound
	}
	p, err := u.parts.GetByID(ctx, pecaID)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrPartNotFound
	}
	return nil
}
