package postgres

import (
	"context"
	"database/sql"

	"dairy-records/internal/domain/records"
	"dairy-records/internal/domain/vaccinations"
)

type VaccinationsRepo struct {
	t table[vaccinations.Vaccination]
}

func NewVaccinationsRepo(db *sql.DB) *VaccinationsRepo {
	return &VaccinationsRepo{t: table[vaccinations.Vaccination]{
		db:   db,
		name: "vaccinations",
		columns: []string{
			"id", "animal_id", "vaccine", "dose", "scheduled_on",
			"administered_on", "administered_by", "next_due_on", "notes",
		},
		dateCol: "scheduled_on",
		search:  []string{"animal_id", "vaccine", "administered_by", "notes"},
		values: func(v vaccinations.Vaccination) []any {
			return append([]any{
				v.ID, v.AnimalID, v.Vaccine, v.Dose, v.ScheduledOn,
				v.AdministeredOn, v.AdministeredBy, v.NextDueOn, v.Notes,
			}, metaValues(v.Meta)...)
		},
		scan: func(s scanner) (vaccinations.Vaccination, error) {
			var v vaccinations.Vaccination
			dest := append([]any{
				&v.ID, &v.AnimalID, &v.Vaccine, &v.Dose, &v.ScheduledOn,
				&v.AdministeredOn, &v.AdministeredBy, &v.NextDueOn, &v.Notes,
			}, metaDest(&v.Meta)...)
			err := s.Scan(dest...)
			return v, err
		},
	}}
}

func (r *VaccinationsRepo) Create(ctx context.Context, v vaccinations.Vaccination) error {
	return r.t.create(ctx, v)
}
func (r *VaccinationsRepo) Update(ctx context.Context, v vaccinations.Vaccination) error {
	return r.t.update(ctx, v)
}
func (r *VaccinationsRepo) GetByID(ctx context.Context, id string) (vaccinations.Vaccination, error) {
	return r.t.get(ctx, id)
}
func (r *VaccinationsRepo) Delete(ctx context.Context, id string) error { return r.t.delete(ctx, id) }
func (r *VaccinationsRepo) List(ctx context.Context, f records.ListFilter) ([]vaccinations.Vaccination, error) {
	return r.t.list(ctx, f)
}
