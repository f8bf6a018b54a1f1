package postgres

import (
	"context"
	"database/sql"

	"dairy-records/internal/domain/records"
	"dairy-records/internal/domain/rejections"
)

type RejectionsRepo struct {
	t table[rejections.Rejection]
}

func NewRejectionsRepo(db *sql.DB) *RejectionsRepo {
	return &RejectionsRepo{t: table[rejections.Rejection]{
		db:   db,
		name: "rejections",
		columns: []string{
			"id", "rejected_on", "source", "quantity_liters", "reason", "fat_percent", "snf_percent",
			"rate_per_liter", "loss_amount", "rejected_by", "notes",
		},
		dateCol: "rejected_on",
		search:  []string{"source", "reason", "rejected_by", "notes"},
		values: func(x rejections.Rejection) []any {
			return append([]any{
				x.ID, x.RejectedOn, x.Source, x.QuantityLiters, string(x.Reason), x.FatPercent, x.SNFPercent,
				x.RatePerLiter, x.LossAmount, x.RejectedBy, x.Notes,
			}, metaValues(x.Meta)...)
		},
		scan: func(s scanner) (rejections.Rejection, error) {
			var x rejections.Rejection
			var reason string
			dest := append([]any{
				&x.ID, &x.RejectedOn, &x.Source, &x.QuantityLiters, &reason, &x.FatPercent, &x.SNFPercent,
				&x.RatePerLiter, &x.LossAmount, &x.RejectedBy, &x.Notes,
			}, metaDest(&x.Meta)...)
			if err := s.Scan(dest...); err != nil {
				return rejections.Rejection{}, err
			}
			x.Reason = rejections.Reason(reason)
			return x, nil
		},
	}}
}

func (r *RejectionsRepo) Create(ctx context.Context, x rejections.Rejection) error {
	return r.t.create(ctx, x)
}
func (r *RejectionsRepo) Update(ctx context.Context, x rejections.Rejection) error {
	return r.t.update(ctx, x)
}
func (r *RejectionsRepo) GetByID(ctx context.Context, id string) (rejections.Rejection, error) {
	return r.t.get(ctx, id)
}
func (r *RejectionsRepo) Delete(ctx context.Context, id string) error { return r.t.delete(ctx, id) }
func (r *RejectionsRepo) List(ctx context.Context, f records.ListFilter) ([]rejections.Rejection, error) {
	return r.t.list(ctx, f)
}
