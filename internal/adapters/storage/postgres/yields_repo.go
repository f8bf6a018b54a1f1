package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"dairy-records/internal/domain/records"
	"dairy-records/internal/domain/yields"

	"github.com/shopspring/decimal"
)

type YieldsRepo struct {
	t table[yields.Yield]
}

func NewYieldsRepo(db *sql.DB) *YieldsRepo {
	return &YieldsRepo{t: table[yields.Yield]{
		db:      db,
		name:    "yields",
		columns: []string{"id", "animal_id", "week_start", "daily", "total_yield", "average_daily", "notes"},
		dateCol: "week_start",
		search:  []string{"animal_id", "notes"},
		values: func(y yields.Yield) []any {
			// daily va como jsonb: ["12.5","13",...]
			daily, _ := json.Marshal(y.Daily)
			return append([]any{
				y.ID, y.AnimalID, y.WeekStart, string(daily), y.TotalYield, y.AverageDaily, y.Notes,
			}, metaValues(y.Meta)...)
		},
		scan: func(s scanner) (yields.Yield, error) {
			var y yields.Yield
			var daily []byte
			dest := append([]any{
				&y.ID, &y.AnimalID, &y.WeekStart, &daily, &y.TotalYield, &y.AverageDaily, &y.Notes,
			}, metaDest(&y.Meta)...)
			if err := s.Scan(dest...); err != nil {
				return yields.Yield{}, err
			}
			var values []decimal.Decimal
			if err := json.Unmarshal(daily, &values); err != nil {
				return yields.Yield{}, fmt.Errorf("yield %s daily: %w", y.ID, err)
			}
			y.Daily = values
			return y, nil
		},
	}}
}

func (r *YieldsRepo) Create(ctx context.Context, y yields.Yield) error { return r.t.create(ctx, y) }
func (r *YieldsRepo) Update(ctx context.Context, y yields.Yield) error { return r.t.update(ctx, y) }
func (r *YieldsRepo) GetByID(ctx context.Context, id string) (yields.Yield, error) {
	return r.t.get(ctx, id)
}
func (r *YieldsRepo) Delete(ctx context.Context, id string) error { return r.t.delete(ctx, id) }
func (r *YieldsRepo) List(ctx context.Context, f records.ListFilter) ([]yields.Yield, error) {
	return r.t.list(ctx, f)
}
