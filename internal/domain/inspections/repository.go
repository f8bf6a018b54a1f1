package inspections

import (
	"context"

	"dairy-records/internal/domain/records"
)

type Repository interface {
	Create(ctx context.Context, i Inspection) error
	Update(ctx context.Context, i Inspection) error
	GetByID(ctx context.Context, id string) (Inspection, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f records.ListFilter) ([]Inspection, error)
}
