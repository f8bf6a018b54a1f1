package approvals

import (
	"context"

	"dairy-records/internal/domain/records"
)

type Repository interface {
	Create(ctx context.Context, a Approval) error
	Update(ctx context.Context, a Approval) error
	GetByID(ctx context.Context, id string) (Approval, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f records.ListFilter) ([]Approval, error)
}
