package interfaces

import (
	"context"
	"time"

	"oficina_mecanica/internal/domain/entities"
)

//go:generate mockgen -source=work_order_repository_interface.go -destination=mocks/work_order_repository_mock.go -package=mock_interfaces

// IWorkOrderRepository abstracts DynamoDB persistence for WorkOrder.
//
// Save rewrites the mutable fields (references, service list, part lines) of
// an existing order. Conclude performs the pendente -> concluida transition as
// a single conditional write: a zero-value result means the order was absent
// or already concluded when the write ran.
//
// The ExistsReferencing* methods are the back-reference scans behind the
// referential-integrity guard on master-entity deletion.
type IWorkOrderRepository interface {
	Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	List(ctx context.Context, filter entities.WorkOrderFilter, page, size int) ([]entities.WorkOrder, int, error)
	Save(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error)
	Delete(ctx context.Context, id string) error
	Conclude(ctx context.Context, id string, valor float64, at time.Time) (entities.WorkOrder, error)
	ListOpenedBetween(ctx context.Context, start, end time.Time) ([]entities.WorkOrder, error)
	ExistsReferencingCustomer(ctx context.Context, clienteID string) (bool, error)
	ExistsReferencingMechanic(ctx context.Context, mecanicoID string) (bool, error)
	ExistsReferencingService(ctx context.Context, servicoID string) (bool, error)
	ExistsReferencingPart(ctx context.Context, pecaID string) (bool, error)
}
