package categories

import (
	"context"
	"strings"
	"time"

	"dairy-records/internal/domain/records"
	"dairy-records/internal/platform/export"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"
)

// MaxRetentionMonths: 100 años.
const MaxRetentionMonths = 1200

type Service struct {
	repo  Repository
	clock clockwork.Clock
}

func NewService(repo Repository, clock clockwork.Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

type Input struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	RetentionMonths int    `json:"retention_months"`
}

func (s *Service) Create(ctx context.Context, actor string, in Input) (Category, error) {
	c, err := build(in)
	if err != nil {
		return Category{}, err
	}
	c.ID = uuid.NewString()
	if err := s.ensureUniqueName(ctx, c); err != nil {
		return Category{}, err
	}
	c.Meta = records.NewMeta(actor, s.clock.Now())

	if err := s.repo.Create(ctx, c); err != nil {
		return Category{}, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Category, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Category{}, err
	}
	c, err := build(in)
	if err != nil {
		return Category{}, err
	}
	c.ID = current.ID
	if err := s.ensureUniqueName(ctx, c); err != nil {
		return Category{}, err
	}
	c.Meta = current.Meta.Touch(s.clock.Now())

	if err := s.repo.Update(ctx, c); err != nil {
		return Category{}, err
	}
	return c, nil
}

func (s *Service) Toggle(ctx context.Context, id string) (Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Category{}, err
	}
	c.Meta = c.Meta.Toggle(s.clock.Now())
	if err := s.repo.Update(ctx, c); err != nil {
		return Category{}, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f records.ListFilter) ([]Category, error) {
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return records.Page(items, f.Limit), nil
}

// Retention es la respuesta de retain-until.
type Retention struct {
	CategoryID  string
	Date        time.Time
	RetainUntil time.Time
}

// RetainUntil: fecha hasta la que hay que conservar un registro de la categoría fechado en date.
// date vacío => hoy.
func (s *Service) RetainUntil(ctx context.Context, id, date string) (Retention, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Retention{}, err
	}
	d := records.Today(s.clock)
	if strings.TrimSpace(date) != "" {
		if d, err = records.ParseRequiredDate("date", date); err != nil {
			return Retention{}, err
		}
	}
	return Retention{CategoryID: c.ID, Date: d, RetainUntil: c.RetainUntil(d)}, nil
}

func (s *Service) Table(ctx context.Context, f records.ListFilter) (export.Table, error) {
	items, err := s.List(ctx, f)
	if err != nil {
		return export.Table{}, err
	}

	t := export.Table{
		Name: "categories",
		Columns: []export.Column{
			{Title: "Name"},
			{Title: "Description"},
			{Title: "Retention (months)", Kind: export.KindNumber},
			{Title: "Created on", Kind: export.KindDate},
			{Title: "Created by"},
			{Title: "Active"},
		},
	}
	for _, c := range items {
		t.Rows = append(t.Rows, []any{c.Name, c.Description, c.RetentionMonths, c.CreatedAt, c.CreatedBy, c.Active})
	}
	return t, nil
}

func (s *Service) ensureUniqueName(ctx context.Context, c Category) error {
	all, err := s.repo.List(ctx, records.ListFilter{})
	if err != nil {
		return err
	}
	if lo.ContainsBy(all, func(o Category) bool { return o.ID != c.ID && strings.EqualFold(o.Name, c.Name) }) {
		return records.Conflict("category %q already exists", c.Name)
	}
	return nil
}

func build(in Input) (Category, error) {
	if err := records.Required("name", in.Name); err != nil {
		return Category{}, err
	}
	if in.RetentionMonths <= 0 {
		return Category{}, records.Invalid("retention_months must be greater than 0")
	}
	if in.RetentionMonths > MaxRetentionMonths {
		return Category{}, records.Invalid("retention_months must be at most %d", MaxRetentionMonths)
	}
	return Category{
		Name:            strings.TrimSpace(in.Name),
		Description:     strings.TrimSpace(in.Description),
		RetentionMonths: in.RetentionMonths,
	}, nil
}
