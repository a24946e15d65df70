package interfaces

import (
	"context"
	"oficina_mecanica/internal/domain/entities"
)

//go:generate mockgen -source=service_repository_interface.go -destination=mocks/service_repository_mock.go -package=mock_interfaces

// IServiceRepository abstracts DynamoDB persistence for Service.
type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context, page, size int) ([]entities.Service, int, error)
	Update(ctx context.Context, id string, patch entities.ServicePatch) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}
