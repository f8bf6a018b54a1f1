package postgres

import (
	"context"
	"database/sql"

	"dairy-records/internal/domain/calffeedings"
	"dairy-records/internal/domain/records"
)

type CalfFeedingsRepo struct {
	t table[calffeedings.Feeding]
}

func NewCalfFeedingsRepo(db *sql.DB) *CalfFeedingsRepo {
	return &CalfFeedingsRepo{t: table[calffeedings.Feeding]{
		db:      db,
		name:    "calf_feedings",
		columns: []string{"id", "calf_id", "fed_on", "session", "feed_type", "quantity_liters", "fed_by", "notes"},
		dateCol: "fed_on",
		search:  []string{"calf_id", "feed_type", "fed_by", "notes"},
		values: func(f calffeedings.Feeding) []any {
			return append([]any{
				f.ID, f.CalfID, f.FedOn, string(f.Session), string(f.FeedType), f.QuantityLiters, f.FedBy, f.Notes,
			}, metaValues(f.Meta)...)
		},
		scan: func(s scanner) (calffeedings.Feeding, error) {
			var f calffeedings.Feeding
			var session, feedType string
			dest := append([]any{
				&f.ID, &f.CalfID, &f.FedOn, &session, &feedType, &f.QuantityLiters, &f.FedBy, &f.Notes,
			}, metaDest(&f.Meta)...)
			if err := s.Scan(dest...); err != nil {
				return calffeedings.Feeding{}, err
			}
			f.Session = calffeedings.Session(session)
			f.FeedType = calffeedings.FeedType(feedType)
			return f, nil
		},
	}}
}

func (r *CalfFeedingsRepo) Create(ctx context.Context, f calffeedings.Feeding) error {
	return r.t.create(ctx, f)
}
func (r *CalfFeedingsRepo) Update(ctx context.Context, f calffeedings.Feeding) error {
	return r.t.update(ctx, f)
}
func (r *CalfFeedingsRepo) GetByID(ctx context.Context, id string) (calffeedings.Feeding, error) {
	return r.t.get(ctx, id)
}
func (r *CalfFeedingsRepo) Delete(ctx context.Context, id string) error { return r.t.delete(ctx, id) }
func (r *CalfFeedingsRepo) List(ctx context.Context, f records.ListFilter) ([]calffeedings.Feeding, error) {
	return r.t.list(ctx, f)
}
