package postgres

import (
	"context"
	"database/sql"

	"dairy-records/internal/domain/approvals"
	"dairy-records/internal/domain/records"
)

type ApprovalsRepo struct {
	t table[approvals.Approval]
}

func NewApprovalsRepo(db *sql.DB) *ApprovalsRepo {
	return &ApprovalsRepo{t: table[approvals.Approval]{
		db:   db,
		name: "approvals",
		columns: []string{
			"id", "item", "vendor", "quantity", "unit", "unit_price", "total_cost",
			"requested_by", "requested_on", "status", "decided_by", "decided_at", "remarks",
		},
		dateCol: "requested_on",
		search:  []string{"item", "vendor", "requested_by", "remarks"},
		values: func(a approvals.Approval) []any {
			return append([]any{
				a.ID, a.Item, a.Vendor, a.Quantity, a.Unit, a.UnitPrice, a.TotalCost,
				a.RequestedBy, a.RequestedOn, string(a.Status), a.DecidedBy, a.DecidedAt, a.Remarks,
			}, metaValues(a.Meta)...)
		},
		scan: func(s scanner) (approvals.Approval, error) {
			var a approvals.Approval
			var status string
			dest := append([]any{
				&a.ID, &a.Item, &a.Vendor, &a.Quantity, &a.Unit, &a.UnitPrice, &a.TotalCost,
				&a.RequestedBy, &a.RequestedOn, &status, &a.DecidedBy, &a.DecidedAt, &a.Remarks,
			}, metaDest(&a.Meta)...)
			if err := s.Scan(dest...); err != nil {
				return approvals.Approval{}, err
			}
			a.Status = approvals.Status(status)
			return a, nil
		},
	}}
}

func (r *ApprovalsRepo) Create(ctx context.Context, a approvals.Approval) error {
	return r.t.create(ctx, a)
}
func (r *ApprovalsRepo) Update(ctx context.Context, a approvals.Approval) error {
	return r.t.update(ctx, a)
}
func (r *ApprovalsRepo) GetByID(ctx context.Context, id string) (approvals.Approval, error) {
	return r.t.get(ctx, id)
}
func (r *ApprovalsRepo) Delete(ctx context.Context, id string) error { return r.t.delete(ctx, id) }
func (r *ApprovalsRepo) List(ctx context.Context, f records.ListFilter) ([]approvals.Approval, error) {
	return r.t.list(ctx, f)
}
