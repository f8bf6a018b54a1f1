package categories

import (
	"context"

	"dairy-records/internal/domain/records"
)

type Repository interface {
	Create(ctx context.Context, c Category) error
	Update(ctx context.Context, c Category) error
	GetByID(ctx context.Context, id string) (Category, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f records.ListFilter) ([]Category, error)
}
