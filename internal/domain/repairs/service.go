package repairs

import (
	"context"
	"strings"
	"time"

	"dairy-records/internal/domain/records"
	"dairy-records/internal/platform/export"
	"dairy-records/internal/platform/money"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type Service struct {
	repo  Repository
	clock clockwork.Clock
}

func NewService(repo Repository, clock clockwork.Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

type Input struct {
	Shed       string          `json:"shed"`
	Issue      string          `json:"issue"`
	ReportedOn string          `json:"reported_on"`
	RepairedOn string          `json:"repaired_on"`
	Technician string          `json:"technician"`
	Cost       decimal.Decimal `json:"cost"`
	Notes      string          `json:"notes"`
}

// CompleteInput cierra un registro abierto. repaired_on vacío => hoy; cost vacío => se mantiene.
type CompleteInput struct {
	RepairedOn string              `json:"repaired_on"`
	Cost       decimal.NullDecimal `json:"cost" swaggertype:"number"`
	Technician string              `json:"technician"`
	Notes      string              `json:"notes"`
}

func (s *Service) Create(ctx context.Context, actor string, in Input) (Repair, error) {
	r, err := s.build(in)
	if err != nil {
		return Repair{}, err
	}
	r.ID = uuid.NewString()
	r.Meta = records.NewMeta(actor, s.clock.Now())

	if err := s.repo.Create(ctx, r); err != nil {
		return Repair{}, err
	}
	return r, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Repair, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Repair{}, err
	}
	r, err := s.build(in)
	if err != nil {
		return Repair{}, err
	}
	r.ID = current.ID
	r.Meta = current.Meta.Touch(s.clock.Now())

	if err := s.repo.Update(ctx, r); err != nil {
		return Repair{}, err
	}
	return r, nil
}

// Complete cierra un registro abierto (409 si ya estaba completado).
func (s *Service) Complete(ctx context.Context, id, actor string, in CompleteInput) (Repair, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Repair{}, err
	}
	if r.Status() == StatusCompleted {
		return Repair{}, records.BadState("repair was already completed on %s", records.FormatDate(*r.RepairedOn))
	}

	today := records.Today(s.clock)
	repaired := today
	if strings.TrimSpace(in.RepairedOn) != "" {
		if repaired, err = records.ParseRequiredDate("repaired_on", in.RepairedOn); err != nil {
			return Repair{}, err
		}
	}
	if err := checkRepairedOn(r.ReportedOn, repaired, today); err != nil {
		return Repair{}, err
	}
	if in.Cost.Valid {
		if in.Cost.Decimal.IsNegative() {
			return Repair{}, records.Invalid("cost cannot be negative")
		}
		r.Cost = money.Round(in.Cost.Decimal)
	}

	r.RepairedOn = &repaired
	if t := strings.TrimSpace(in.Technician); t != "" {
		r.Technician = t
	} else if r.Technician == "" {
		r.Technician = strings.TrimSpace(actor)
	}
	if n := strings.TrimSpace(in.Notes); n != "" {
		r.Notes = n
	}
	r.Meta = r.Meta.Touch(s.clock.Now())

	if err := s.repo.Update(ctx, r); err != nil {
		return Repair{}, err
	}
	return r, nil
}

func (s *Service) Toggle(ctx context.Context, id string) (Repair, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Repair{}, err
	}
	r.Meta = r.Meta.Toggle(s.clock.Now())
	if err := s.repo.Update(ctx, r); err != nil {
		return Repair{}, err
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Repair, error) {
	return s.repo.GetByID(ctx, id)
}

// List acepta status (open | completed).
func (s *Service) List(ctx context.Context, f records.ListFilter) ([]Repair, error) {
	status := Status(strings.ToLower(f.Status))
	if status != "" {
		if err := records.OneOf("status", status, StatusOpen, StatusCompleted); err != nil {
			return nil, err
		}
	}

	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if status != "" {
		items = lo.Filter(items, func(r Repair, _ int) bool { return r.Status() == status })
	}
	return records.Page(items, f.Limit), nil
}

func (s *Service) Table(ctx context.Context, f records.ListFilter) (export.Table, error) {
	items, err := s.List(ctx, f)
	if err != nil {
		return export.Table{}, err
	}

	today := records.Today(s.clock)
	t := export.Table{
		Name: "repairs",
		Columns: []export.Column{
			{Title: "Reported on", Kind: export.KindDate},
			{Title: "Shed"},
			{Title: "Issue"},
			{Title: "Status"},
			{Title: "Repaired on", Kind: export.KindDate},
			{Title: "Days open", Kind: export.KindNumber},
			{Title: "Technician"},
			{Title: "Cost", Kind: export.KindMoney},
			{Title: "Notes"},
			{Title: "Active"},
		},
	}
	for _, r := range items {
		t.Rows = append(t.Rows, []any{
			r.ReportedOn, r.Shed, r.Issue, string(r.Status()), r.RepairedOn, r.DaysOpen(today),
			r.Technician, r.Cost, r.Notes, r.Active,
		})
	}
	return t, nil
}

func (s *Service) build(in Input) (Repair, error) {
	if err := records.Required("shed", in.Shed); err != nil {
		return Repair{}, err
	}
	if err := records.Required("issue", in.Issue); err != nil {
		return Repair{}, err
	}
	if in.Cost.IsNegative() {
		return Repair{}, records.Invalid("cost cannot be negative")
	}

	today := records.Today(s.clock)
	reported := today
	if strings.TrimSpace(in.ReportedOn) != "" {
		t, err := records.ParseRequiredDate("reported_on", in.ReportedOn)
		if err != nil {
			return Repair{}, err
		}
		reported = t
	}
	repaired, err := records.ParseOptionalDate("repaired_on", in.RepairedOn)
	if err != nil {
		return Repair{}, err
	}
	if repaired != nil {
		if err := checkRepairedOn(reported, *repaired, today); err != nil {
			return Repair{}, err
		}
	}

	return Repair{
		Shed:       strings.TrimSpace(in.Shed),
		Issue:      strings.TrimSpace(in.Issue),
		ReportedOn: reported,
		RepairedOn: repaired,
		Technician: strings.TrimSpace(in.Technician),
		Cost:       money.Round(in.Cost),
		Notes:      strings.TrimSpace(in.Notes),
	}, nil
}

func checkRepairedOn(reported, repaired, today time.Time) error {
	if repaired.Before(reported) {
		return records.Invalid("repaired_on cannot be before reported_on")
	}
	if repaired.After(today) {
		return records.Invalid("repaired_on cannot be in the future")
	}
	return nil
}
