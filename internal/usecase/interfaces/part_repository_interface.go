package interfaces

import (
	"context"
	"oficina_mecanica/internal/domain/entities"
)

//go:generate mockgen -source=part_repository_interface.go -destination=mocks/part_repository_mock.go -package=mock_interfaces

// IPartRepository abstracts DynamoDB persistence for Part.
type IPartRepository interface {
	Create(ctx context.Context, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
	List(ctx context.Context, page, size int) ([]entities.Part, int, error)
	Update(ctx context.Context, id string, patch entities.PartPatch) (entities.Part, error)
	Delete(ctx context.Context, id string) error
}
