package calffeedings

import (
	"context"
	"sort"
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
	CalfID         string          `json:"calf_id"`
	FedOn          string          `json:"fed_on"`
	Session        Session         `json:"session"`
	FeedType       FeedType        `json:"feed_type"`
	QuantityLiters decimal.Decimal `json:"quantity_liters"`
	FedBy          string          `json:"fed_by"`
	Notes          string          `json:"notes"`
}

func (s *Service) Create(ctx context.Context, actor string, in Input) (Feeding, error) {
	f, err := s.build(ctx, in)
	if err != nil {
		return Feeding{}, err
	}
	if f.FedBy == "" {
		f.FedBy = strings.TrimSpace(actor)
	}
	f.ID = uuid.NewString()
	f.Meta = records.NewMeta(actor, s.clock.Now())

	if err := s.repo.Create(ctx, f); err != nil {
		return Feeding{}, err
	}
	return f, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Feeding, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Feeding{}, err
	}
	f, err := s.build(ctx, in)
	if err != nil {
		return Feeding{}, err
	}
	if f.FedBy == "" {
		f.FedBy = current.FedBy
	}
	f.ID = current.ID
	f.Meta = current.Meta.Touch(s.clock.Now())

	if err := s.repo.Update(ctx, f); err != nil {
		return Feeding{}, err
	}
	return f, nil
}

func (s *Service) Toggle(ctx context.Context, id string) (Feeding, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Feeding{}, err
	}
	f.Meta = f.Meta.Toggle(s.clock.Now())
	if err := s.repo.Update(ctx, f); err != nil {
		return Feeding{}, err
	}
	return f, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Feeding, error) {
	return s.repo.GetByID(ctx, id)
}

// List acepta animal_id (ternero) y status = feed_type.
func (s *Service) List(ctx context.Context, f records.ListFilter) ([]Feeding, error) {
	feedType := FeedType(strings.ToLower(f.Status))
	if feedType != "" {
		if err := records.OneOf("status", feedType, FeedTypes...); err != nil {
			return nil, err
		}
	}

	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	calfID := strings.TrimSpace(f.AnimalID)
	items = lo.Filter(items, func(it Feeding, _ int) bool {
		if calfID != "" && !strings.EqualFold(it.CalfID, calfID) {
			return false
		}
		return feedType == "" || it.FeedType == feedType
	})
	return records.Page(items, f.Limit), nil
}

// Summary suma litros por día y el total de calostro de un ternero (solo filas activas).
// from/to del filtro acotan el período.
func (s *Service) Summary(ctx context.Context, calfID string, f records.ListFilter) (Summary, error) {
	calfID = strings.ToUpper(strings.TrimSpace(calfID))
	if calfID == "" {
		return Summary{}, records.Invalid("calf_id is required")
	}

	f.AnimalID = calfID
	f.Status = ""
	f.Active = lo.ToPtr(true)
	f.Limit = 0
	items, err := s.List(ctx, f)
	if err != nil {
		return Summary{}, err
	}

	out := Summary{CalfID: calfID, Days: []DayTotal{}, TotalLiters: decimal.Zero, ColostrumTotal: decimal.Zero}
	byDay := lo.GroupBy(items, func(it Feeding) int64 { return records.DateOf(it.FedOn).Unix() })
	for _, rows := range byDay {
		day := DayTotal{Date: records.DateOf(rows[0].FedOn), Liters: decimal.Zero}
		for _, it := range rows {
			day.Liters = day.Liters.Add(it.QuantityLiters)
			if it.FeedType == FeedColostrum {
				out.ColostrumTotal = out.ColostrumTotal.Add(it.QuantityLiters)
			}
		}
		out.TotalLiters = out.TotalLiters.Add(day.Liters)
		out.Days = append(out.Days, day)
	}
	sort.Slice(out.Days, func(i, j int) bool { return out.Days[i].Date.After(out.Days[j].Date) })
	return out, nil
}

func (s *Service) Table(ctx context.Context, f records.ListFilter) (export.Table, error) {
	items, err := s.List(ctx, f)
	if err != nil {
		return export.Table{}, err
	}

	t := export.Table{
		Name: "calffeedings",
		Columns: []export.Column{
			{Title: "Fed on", Kind: export.KindDate},
			{Title: "Calf"},
			{Title: "Session"},
			{Title: "Feed type"},
			{Title: "Quantity (L)", Kind: export.KindNumber},
			{Title: "Fed by"},
			{Title: "Notes"},
			{Title: "Active"},
		},
	}
	for _, it := range items {
		t.Rows = append(t.Rows, []any{
			it.FedOn, it.CalfID, string(it.Session), string(it.FeedType), it.QuantityLiters, it.FedBy, it.Notes, it.Active,
		})
	}
	return t, nil
}

func (s *Service) build(ctx context.Context, in Input) (Feeding, error) {
	calfID := strings.ToUpper(strings.TrimSpace(in.CalfID))
	if calfID == "" {
		return Feeding{}, records.Invalid("calf_id is required")
	}
	if err := records.OneOf("session", in.Session, SessionMorning, SessionNoon, SessionEvening, SessionNight); err != nil {
		return Feeding{}, err
	}
	if err := records.OneOf("feed_type", in.FeedType, FeedTypes...); err != nil {
		return Feeding{}, err
	}
	if !in.QuantityLiters.IsPositive() {
		return Feeding{}, records.Invalid("quantity_liters must be greater than 0")
	}

	fed := records.Today(s.clock)
	if strings.TrimSpace(in.FedOn) != "" {
		t, err := records.ParseRequiredDate("fed_on", in.FedOn)
		if err != nil {
			return Feeding{}, err
		}
		fed = t
	}

	ok, err := s.animals.Exists(ctx, calfID)
	if err != nil {
		return Feeding{}, err
	}
	if !ok {
		return Feeding{}, records.Invalid("calf %s does not exist", calfID)
	}

	return Feeding{
		CalfID:         calfID,
		FedOn:          fed,
		Session:        in.Session,
		FeedType:       in.FeedType,
		QuantityLiters: in.QuantityLiters,
		FedBy:          strings.TrimSpace(in.FedBy),
		Notes:          strings.TrimSpace(in.Notes),
	}, nil
}
