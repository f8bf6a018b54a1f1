package postgres

import (
	"context"
	"database/sql"

	"dairy-records/internal/domain/records"
	"dairy-records/internal/domain/repairs"
)

type RepairsRepo struct {
	t table[repairs.Repair]
}

func NewRepairsRepo(db *sql.DB) *RepairsRepo {
	return &RepairsRepo{t: table[repairs.Repair]{
		db:      db,
		name:    "repairs",
		columns: []string{"id", "shed", "issue", "reported_on", "repaired_on", "technician", "cost", "notes"},
		dateCol: "reported_on",
		search:  []string{"shed", "issue", "technician", "notes"},
		values: func(x repairs.Repair) []any {
			return append([]any{
				x.ID, x.Shed, x.Issue, x.ReportedOn, x.RepairedOn, x.Technician, x.Cost, x.Notes,
			}, metaValues(x.Meta)...)
		},
		scan: func(s scanner) (repairs.Repair, error) {
			var x repairs.Repair
			dest := append([]any{
				&x.ID, &x.Shed, &x.Issue, &x.ReportedOn, &x.RepairedOn, &x.Technician, &x.Cost, &x.Notes,
			}, metaDest(&x.Meta)...)
			err := s.Scan(dest...)
			return x, err
		},
	}}
}

func (r *RepairsRepo) Create(ctx context.Context, x repairs.Repair) error { return r.t.create(ctx, x) }
func (r *RepairsRepo) Update(ctx context.Context, x repairs.Repair) error { return r.t.update(ctx, x) }
func (r *RepairsRepo) GetByID(ctx context.Context, id string) (repairs.Repair, error) {
	return r.t.get(ctx, id)
}
func (r *RepairsRepo) Delete(ctx context.Context, id string) error { return r.t.delete(ctx, id) }
func (r *RepairsRepo) List(ctx context.Context, f records.ListFilter) ([]repairs.Repair, error) {
	return r.t.list(ctx, f)
}
