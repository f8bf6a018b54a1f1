package rejections

import (
	"context"

	"dairy-records/internal/domain/records"
)

type Repository interface {
	Create(ctx context.Context, r Rejection) error
	Update(ctx context.Context, r Rejection) error
	GetByID(ctx context.Context, id string) (Rejection, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f records.ListFilter) ([]Rejection, error)
}
