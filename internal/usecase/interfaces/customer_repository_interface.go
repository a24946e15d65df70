package interfaces

import (
	"context"
	"oficina_mecanica/internal/domain/entities"
)

//go:generate mockgen -source=customer_repository_interface.go -destination=mocks/customer_repository_mock.go -package=mock_interfaces

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// Not-found is reported as a zero-value entity (empty ID), not an error; the
// use case decides how to surface it. List returns the page window plus the
// total count over the whole table.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context, page, size int) ([]entities.Customer, int, error)
	Update(ctx context.Context, id string, patch entities.CustomerPatch) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}
