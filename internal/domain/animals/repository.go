package animals

import (
	"context"

	"dairy-records/internal/domain/records"
)

type Repository interface {
	Create(ctx context.Context, a Animal) error
	Update(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f records.ListFilter) ([]Animal, error)
	IDs(ctx context.Context) ([]string, error)
}
