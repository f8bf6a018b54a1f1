package yields

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
	repo    Repository
	animals AnimalChecker
	clock   clockwork.Clock
}

func NewService(repo Repository, animals AnimalChecker, clock clockwork.Clock) *Service {
	return &Service{repo: repo, animals: animals, clock: clock}
}

type Input struct {
	AnimalID string `json:"animal_id"`
	// WeekStart puede ser cualquier día; se normaliza al lunes.
	WeekStart string            `json:"week_start"`
	Daily     []decimal.Decimal `json:"daily" swaggertype:"array,number"`
	Notes     string            `json:"notes"`
}

func (s *Service) Create(ctx context.Context, actor string, in Input) (Yield, error) {
	y, err := s.build(ctx, in)
	if err != nil {
		return Yield{}, err
	}
	y.ID = uuid.NewString()
	if err := s.ensureUnique(ctx, y); err != nil {
		return Yield{}, err
	}
	y.Meta = records.NewMeta(actor, s.clock.Now())

	if err := s.repo.Create(ctx, y); err != nil {
		return Yield{}, err
	}
	return y, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Yield, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Yield{}, err
	}
	y, err := s.build(ctx, in)
	if err != nil {
		return Yield{}, err
	}
	y.ID = current.ID
	if err := s.ensureUnique(ctx, y); err != nil {
		return Yield{}, err
	}
	y.Meta = current.Meta.Touch(s.clock.Now())

	if err := s.repo.Update(ctx, y); err != nil {
		return Yield{}, err
	}
	return y, nil
}

func (s *Service) Toggle(ctx context.Context, id string) (Yield, error) {
	y, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Yield{}, err
	}
	y.Meta = y.Meta.Toggle(s.clock.Now())
	if err := s.repo.Update(ctx, y); err != nil {
		return Yield{}, err
	}
	return y, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Yield, error) {
	return s.repo.GetByID(ctx, id)
}

// List acepta animal_id.
func (s *Service) List(ctx context.Context, f records.ListFilter) ([]Yield, error) {
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if animalID := strings.TrimSpace(f.AnimalID); animalID != "" {
		items = lo.Filter(items, func(y Yield, _ int) bool { return strings.EqualFold(y.AnimalID, animalID) })
	}
	return records.Page(items, f.Limit), nil
}

func (s *Service) Table(ctx context.Context, f records.ListFilter) (export.Table, error) {
	items, err := s.List(ctx, f)
	if err != nil {
		return export.Table{}, err
	}

	cols := []export.Column{
		{Title: "Week start", Kind: export.KindDate},
		{Title: "Animal"},
	}
	for _, d := range Weekdays {
		cols = append(cols, export.Column{Title: d, Kind: export.KindNumber})
	}
	cols = append(cols,
		export.Column{Title: "Total (L)", Kind: export.KindNumber},
		export.Column{Title: "Average daily (L)", Kind: export.KindNumber},
		export.Column{Title: "Notes"},
		export.Column{Title: "Active"},
	)

	t := export.Table{Name: "yields", Columns: cols}
	for _, y := range items {
		row := []any{y.WeekStart, y.AnimalID}
		for _, v := range y.Daily {
			row = append(row, v)
		}
		row = append(row, y.TotalYield, y.AverageDaily, y.Notes, y.Active)
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// ensureUnique: un registro por (animal, semana).
func (s *Service) ensureUnique(ctx context.Context, y Yield) error {
	week := y.WeekStart
	same, err := s.repo.List(ctx, records.ListFilter{From: &week, To: &week})
	if err != nil {
		return err
	}
	if lo.ContainsBy(same, func(o Yield) bool {
		return o.ID != y.ID && strings.EqualFold(o.AnimalID, y.AnimalID) && o.WeekStart.Equal(week)
	}) {
		return records.Conflict("yield for %s in week of %s already exists", y.AnimalID, records.FormatDate(week))
	}
	return nil
}

func (s *Service) build(ctx context.Context, in Input) (Yield, error) {
	animalID := strings.ToUpper(strings.TrimSpace(in.AnimalID))
	if animalID == "" {
		return Yield{}, records.Invalid("animal_id is required")
	}
	week, err := records.ParseRequiredDate("week_start", in.WeekStart)
	if err != nil {
		return Yield{}, err
	}
	if len(in.Daily) != DaysPerWeek {
		return Yield{}, records.Invalid("daily must have exactly %d values (Mon..Sun)", DaysPerWeek)
	}
	for i, v := range in.Daily {
		if v.IsNegative() {
			return Yield{}, records.Invalid("daily value for %s cannot be negative", Weekdays[i])
		}
	}

	ok, err := s.animals.Exists(ctx, animalID)
	if err != nil {
		return Yield{}, err
	}
	if !ok {
		return Yield{}, records.Invalid("animal %s does not exist", animalID)
	}

	daily := make([]decimal.Decimal, DaysPerWeek)
	copy(daily, in.Daily)
	total, avg := Totals(daily)

	return Yield{
		AnimalID:     animalID,
		WeekStart:    WeekStart(week),
		Daily:        daily,
		TotalYield:   total,
		AverageDaily: avg,
		Notes:        strings.TrimSpace(in.Notes),
	}, nil
}
