package calffeedings

import (
	"context"

	"dairy-records/internal/domain/records"
)

type Repository interface {
	Create(ctx context.Context, f Feeding) error
	Update(ctx context.Context, f Feeding) error
	GetByID(ctx context.Context, id string) (Feeding, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f records.ListFilter) ([]Feeding, error)
}

type AnimalChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}
