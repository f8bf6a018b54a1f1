package inspections

import (
	"context"
	"strings"

	"dairy-records/internal/domain/records"
	"dairy-records/internal/platform/export"

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
	Kind            Kind                `json:"kind"`
	Source          string              `json:"source"`
	InspectedOn     string              `json:"inspected_on"`
	Inspector       string              `json:"inspector"`
	PH              decimal.NullDecimal `json:"ph" swaggertype:"number"`
	TDSPPM          decimal.NullDecimal `json:"tds_ppm" swaggertype:"number"`
	MoisturePercent decimal.NullDecimal `json:"moisture_percent" swaggertype:"number"`
	Appearance      string              `json:"appearance"`
	Remarks         string              `json:"remarks"`
}

func (s *Service) Create(ctx context.Context, actor string, in Input) (Inspection, error) {
	i, err := s.build(in)
	if err != nil {
		return Inspection{}, err
	}
	if i.Inspector == "" {
		i.Inspector = strings.TrimSpace(actor)
	}
	i.ID = uuid.NewString()
	i.Meta = records.NewMeta(actor, s.clock.Now())

	if err := s.repo.Create(ctx, i); err != nil {
		return Inspection{}, err
	}
	return i, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Inspection, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Inspection{}, err
	}
	i, err := s.build(in)
	if err != nil {
		return Inspection{}, err
	}
	if i.Inspector == "" {
		i.Inspector = current.Inspector
	}
	i.ID = current.ID
	i.Meta = current.Meta.Touch(s.clock.Now())

	if err := s.repo.Update(ctx, i); err != nil {
		return Inspection{}, err
	}
	return i, nil
}

func (s *Service) Toggle(ctx context.Context, id string) (Inspection, error) {
	i, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Inspection{}, err
	}
	i.Meta = i.Meta.Toggle(s.clock.Now())
	if err := s.repo.Update(ctx, i); err != nil {
		return Inspection{}, err
	}
	return i, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Inspection, error) {
	return s.repo.GetByID(ctx, id)
}

// List acepta status = result (pass | fail).
func (s *Service) List(ctx context.Context, f records.ListFilter) ([]Inspection, error) {
	result := Result(strings.ToLower(f.Status))
	if result != "" {
		if err := records.OneOf("status", result, ResultPass, ResultFail); err != nil {
			return nil, err
		}
	}

	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if result != "" {
		items = lo.Filter(items, func(i Inspection, _ int) bool { return i.Result == result })
	}
	return records.Page(items, f.Limit), nil
}

func (s *Service) Table(ctx context.Context, f records.ListFilter) (export.Table, error) {
	items, err := s.List(ctx, f)
	if err != nil {
		return export.Table{}, err
	}

	t := export.Table{
		Name: "inspections",
		Columns: []export.Column{
			{Title: "Inspected on", Kind: export.KindDate},
			{Title: "Kind"},
			{Title: "Source"},
			{Title: "Inspector"},
			{Title: "pH", Kind: export.KindNumber},
			{Title: "TDS (ppm)", Kind: export.KindNumber},
			{Title: "Moisture (%)", Kind: export.KindNumber},
			{Title: "Appearance"},
			{Title: "Result"},
			{Title: "Findings"},
			{Title: "Remarks"},
			{Title: "Active"},
		},
	}
	for _, i := range items {
		t.Rows = append(t.Rows, []any{
			i.InspectedOn, string(i.Kind), i.Source, i.Inspector, i.PH, i.TDSPPM, i.MoisturePercent,
			i.Appearance, string(i.Result), strings.Join(i.Findings(), "; "), i.Remarks, i.Active,
		})
	}
	return t, nil
}

func (s *Service) build(in Input) (Inspection, error) {
	if err := records.OneOf("kind", in.Kind, KindFeed, KindWater); err != nil {
		return Inspection{}, err
	}
	if err := records.Required("source", in.Source); err != nil {
		return Inspection{}, err
	}

	inspected := records.Today(s.clock)
	if strings.TrimSpace(in.InspectedOn) != "" {
		t, err := records.ParseRequiredDate("inspected_on", in.InspectedOn)
		if err != nil {
			return Inspection{}, err
		}
		inspected = t
	}

	i := Inspection{
		Kind:        in.Kind,
		Source:      strings.TrimSpace(in.Source),
		InspectedOn: inspected,
		Inspector:   strings.TrimSpace(in.Inspector),
		Appearance:  strings.TrimSpace(in.Appearance),
		Remarks:     strings.TrimSpace(in.Remarks),
	}

	switch in.Kind {
	case KindWater:
		if !in.PH.Valid {
			return Inspection{}, records.Invalid("ph is required for water inspections")
		}
		if !in.TDSPPM.Valid {
			return Inspection{}, records.Invalid("tds_ppm is required for water inspections")
		}
		if in.PH.Decimal.IsNegative() || in.PH.Decimal.GreaterThan(decimal.NewFromInt(14)) {
			return Inspection{}, records.Invalid("ph must be between 0 and 14")
		}
		if in.TDSPPM.Decimal.IsNegative() {
			return Inspection{}, records.Invalid("tds_ppm cannot be negative")
		}
		i.PH, i.TDSPPM = in.PH, in.TDSPPM
	case KindFeed:
		if !in.MoisturePercent.Valid {
			return Inspection{}, records.Invalid("moisture_percent is required for feed inspections")
		}
		m := in.MoisturePercent.Decimal
		if m.IsNegative() || m.GreaterThan(decimal.NewFromInt(100)) {
			return Inspection{}, records.Invalid("moisture_percent must be between 0 and 100")
		}
		i.MoisturePercent = in.MoisturePercent
	}

	i.Result = Classify(i)
	return i, nil
}
