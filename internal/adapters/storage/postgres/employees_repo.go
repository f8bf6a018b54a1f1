package postgres

import (
	"context"
	"database/sql"

	"dairy-records/internal/domain/employees"
	"dairy-records/internal/domain/records"
)

type EmployeesRepo struct {
	t table[employees.Employee]
}

func NewEmployeesRepo(db *sql.DB) *EmployeesRepo {
	return &EmployeesRepo{t: table[employees.Employee]{
		db:      db,
		name:    "employees",
		columns: []string{"id", "name", "role", "phone", "email", "joined_on", "monthly_salary", "notes"},
		dateCol: "joined_on",
		search:  []string{"id", "name", "role", "phone", "email"},
		values: func(e employees.Employee) []any {
			return append([]any{
				e.ID, e.Name, e.Role, e.Phone, e.Email, e.JoinedOn, e.MonthlySalary, e.Notes,
			}, metaValues(e.Meta)...)
		},
		scan: func(s scanner) (employees.Employee, error) {
			var e employees.Employee
			dest := append([]any{
				&e.ID, &e.Name, &e.Role, &e.Phone, &e.Email, &e.JoinedOn, &e.MonthlySalary, &e.Notes,
			}, metaDest(&e.Meta)...)
			err := s.Scan(dest...)
			return e, err
		},
	}}
}

func (r *EmployeesRepo) Create(ctx context.Context, e employees.Employee) error {
	return r.t.create(ctx, e)
}
func (r *EmployeesRepo) Update(ctx context.Context, e employees.Employee) error {
	return r.t.update(ctx, e)
}
func (r *EmployeesRepo) GetByID(ctx context.Context, id string) (employees.Employee, error) {
	return r.t.get(ctx, id)
}
func (r *EmployeesRepo) Delete(ctx context.Context, id string) error { return r.t.delete(ctx, id) }
func (r *EmployeesRepo) List(ctx context.Context, f records.ListFilter) ([]employees.Employee, error) {
	return r.t.list(ctx, f)
}
func (r *EmployeesRepo) IDs(ctx context.Context) ([]string, error) { return r.t.ids(ctx) }
