package postgres

import (
	"context"
	"database/sql"

	"dairy-records/internal/domain/categories"
	"dairy-records/internal/domain/records"
)

type CategoriesRepo struct {
	t table[categories.Category]
}

// El rango from/to de categorías es sobre la fecha de alta.
func NewCategoriesRepo(db *sql.DB) *CategoriesRepo {
	return &CategoriesRepo{t: table[categories.Category]{
		db:      db,
		name:    "categories",
		columns: []string{"id", "name", "description", "retention_months"},
		dateCol: "(created_at AT TIME ZONE 'UTC')::date",
		search:  []string{"name", "description"},
		values: func(c categories.Category) []any {
			return append([]any{c.ID, c.Name, c.Description, c.RetentionMonths}, metaValues(c.Meta)...)
		},
		scan: func(s scanner) (categories.Category, error) {
			var c categories.Category
			dest := append([]any{&c.ID, &c.Name, &c.Description, &c.RetentionMonths}, metaDest(&c.Meta)...)
			err := s.Scan(dest...)
			return c, err
		},
	}}
}

func (r *CategoriesRepo) Create(ctx context.Context, c categories.Category) error {
	return r.t.create(ctx, c)
}
func (r *CategoriesRepo) Update(ctx context.Context, c categories.Category) error {
	return r.t.update(ctx, c)
}
func (r *CategoriesRepo) GetByID(ctx context.Context, id string) (categories.Category, error) {
	return r.t.get(ctx, id)
}
func (r *CategoriesRepo) Delete(ctx context.Context, id string) error { return r.t.delete(ctx, id) }
func (r *CategoriesRepo) List(ctx context.Context, f records.ListFilter) ([]categories.Category, error) {
	return r.t.list(ctx, f)
}
