package vaccinations

import (
	"context"

	"dairy-records/internal/domain/records"
)

type Repository interface {
	Create(ctx context.Context, v Vaccination) error
	Update(ctx context.Context, v Vaccination) error
	GetByID(ctx context.Context, id string) (Vaccination, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f records.ListFilter) ([]Vaccination, error)
}

type AnimalChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}
