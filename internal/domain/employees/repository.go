package employees

import (
	"context"

	"dairy-records/internal/domain/records"
)

type Repository interface {
	Create(ctx context.Context, e Employee) error
	Update(ctx context.Context, e Employee) error
	GetByID(ctx context.Context, id string) (Employee, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f records.ListFilter) ([]Employee, error)
	IDs(ctx context.Context) ([]string, error)
}
