package postgres

import (
	"context"
	"database/sql"

	"dairy-records/internal/domain/animals"
	"dairy-records/internal/domain/records"
)

type AnimalsRepo struct {
	t table[animals.Animal]
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{t: table[animals.Animal]{
		db:      db,
		name:    "animals",
		columns: []string{"id", "name", "breed", "sex", "category", "birth_date", "acquired_on", "shed", "notes"},
		dateCol: "acquired_on",
		search:  []string{"id", "name", "breed", "shed", "notes"},
		values: func(a animals.Animal) []any {
			return append([]any{
				a.ID, a.Name, a.Breed, string(a.Sex), string(a.Category),
				a.BirthDate, a.AcquiredOn, a.Shed, a.Notes,
			}, metaValues(a.Meta)...)
		},
		scan: scanAnimal,
	}}
}

func scanAnimal(s scanner) (animals.Animal, error) {
	var a animals.Animal
	var sex, category string
	dest := append([]any{
		&a.ID, &a.Name, &a.Breed, &sex, &category,
		&a.BirthDate, &a.AcquiredOn, &a.Shed, &a.Notes,
	}, metaDest(&a.Meta)...)
	if err := s.Scan(dest...); err != nil {
		return animals.Animal{}, err
	}
	a.Sex = animals.Sex(sex)
	a.Category = animals.Category(category)
	return a, nil
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error { return r.t.create(ctx, a) }
func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error { return r.t.update(ctx, a) }
func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	return r.t.get(ctx, id)
}
func (r *AnimalsRepo) Delete(ctx context.Context, id string) error { return r.t.delete(ctx, id) }
func (r *AnimalsRepo) List(ctx context.Context, f records.ListFilter) ([]animals.Animal, error) {
	return r.t.list(ctx, f)
}
func (r *AnimalsRepo) IDs(ctx context.Context) ([]string, error) { return r.t.ids(ctx) }
