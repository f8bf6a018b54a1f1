package postgres

import (
	"context"
	"database/sql"

	"dairy-records/internal/domain/inspections"
	"dairy-records/internal/domain/records"
)

type InspectionsRepo struct {
	t table[inspections.Inspection]
}

func NewInspectionsRepo(db *sql.DB) *InspectionsRepo {
	return &InspectionsRepo{t: table[inspections.Inspection]{
		db:   db,
		name: "inspections",
		columns: []string{
			"id", "kind", "source", "inspected_on", "inspector",
			"ph", "tds_ppm", "moisture_percent", "appearance", "remarks", "result",
		},
		dateCol: "inspected_on",
		search:  []string{"kind", "source", "inspector", "appearance", "remarks"},
		values: func(i inspections.Inspection) []any {
			return append([]any{
				i.ID, string(i.Kind), i.Source, i.InspectedOn, i.Inspector,
				i.PH, i.TDSPPM, i.MoisturePercent, i.Appearance, i.Remarks, string(i.Result),
			}, metaValues(i.Meta)...)
		},
		scan: func(s scanner) (inspections.Inspection, error) {
			var i inspections.Inspection
			var kind, result string
			dest := append([]any{
				&i.ID, &kind, &i.Source, &i.InspectedOn, &i.Inspector,
				&i.PH, &i.TDSPPM, &i.MoisturePercent, &i.Appearance, &i.Remarks, &result,
			}, metaDest(&i.Meta)...)
			if err := s.Scan(dest...); err != nil {
				return inspections.Inspection{}, err
			}
			i.Kind = inspections.Kind(kind)
			i.Result = inspections.Result(result)
			return i, nil
		},
	}}
}

func (r *InspectionsRepo) Create(ctx context.Context, i inspections.Inspection) error {
	return r.t.create(ctx, i)
}
func (r *InspectionsRepo) Update(ctx context.Context, i inspections.Inspection) error {
	return r.t.update(ctx, i)
}
func (r *InspectionsRepo) GetByID(ctx context.Context, id string) (inspections.Inspection, error) {
	return r.t.get(ctx, id)
}
func (r *InspectionsRepo) Delete(ctx context.Context, id string) error { return r.t.delete(ctx, id) }
func (r *InspectionsRepo) List(ctx context.Context, f records.ListFilter) ([]inspections.Inspection, error) {
	return r.t.list(ctx, f)
}
