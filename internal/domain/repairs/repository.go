package repairs

import (
	"context"

	"dairy-records/internal/domain/records"
)

type Repository interface {
	Create(ctx context.Context, r Repair) error
	Update(ctx context.Context, r Repair) error
	GetByID(ctx context.Context, id string) (Repair, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f records.ListFilter) ([]Repair, error)
}
