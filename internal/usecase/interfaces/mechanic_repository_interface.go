package interfaces

import (
	"context"
	"oficina_mecanica/internal/domain/entities"
)

//go:generate mockgen -source=mechanic_repository_interface.go -destination=mocks/mechanic_repository_mock.go -package=mock_interfaces

// IMechanicRepository abstracts DynamoDB persistence for Mechanic.
type IMechanicRepository interface {
	Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
	GetByID(ctx context.Context, id string) (entities.Mechanic, error)
	List(ctx context.Context, page, size int) ([]entities.Mechanic, int, error)
	Update(ctx context.Context, id string, patch entities.MechanicPatch) (entities.Mechanic, error)
	Delete(ctx context.Context, id string) error
}
