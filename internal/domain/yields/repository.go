package yields

import (
	"context"

	"dairy-records/internal/domain/records"
)

type Repository interface {
	Create(ctx context.Context, y Yield) error
	Update(ctx context.Context, y Yield) error
	GetByID(ctx context.Context, id string) (Yield, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f records.ListFilter) ([]Yield, error)
}

// AnimalChecker lo implementa animals.Service.
type AnimalChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}
