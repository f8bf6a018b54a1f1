package rejections

import (
	"context"
	"strings"

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
	RejectedOn     string              `json:"rejected_on"`
	Source         string              `json:"source"`
	QuantityLiters decimal.Decimal     `json:"quantity_liters"`
	Reason         Reason              `json:"reason"`
	FatPercent     decimal.NullDecimal `json:"fat_percent" swaggertype:"number"`
	SNFPercent     decimal.NullDecimal `json:"snf_percent" swaggertype:"number"`
	RatePerLiter   decimal.Decimal     `json:"rate_per_liter"`
	RejectedBy     string              `json:"rejected_by"`
	Notes          string              `json:"notes"`
}

// ReasonTotal es una fila del resumen por motivo.
type ReasonTotal struct {
	Reason     Reason          `json:"reason"`
	Count      int             `json:"count"`
	Liters     decimal.Decimal `json:"liters"`
	LossAmount decimal.Decimal `json:"loss_amount"`
}

func (s *Service) Create(ctx context.Context, actor string, in Input) (Rejection, error) {
	r, err := s.build(in)
	if err != nil {
		return Rejection{}, err
	}
	if r.RejectedBy == "" {
		r.RejectedBy = strings.TrimSpace(actor)
	}
	r.ID = uuid.NewString()
	r.Meta = records.NewMeta(actor, s.clock.Now())

	if err := s.repo.Create(ctx, r); err != nil {
		return Rejection{}, err
	}
	return r, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Rejection, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Rejection{}, err
	}
	r, err := s.build(in)
	if err != nil {
		return Rejection{}, err
	}
	if r.RejectedBy == "" {
		r.RejectedBy = current.RejectedBy
	}
	r.ID = current.ID
	r.Meta = current.Meta.Touch(s.clock.Now())

	if err := s.repo.Update(ctx, r); err != nil {
		return Rejection{}, err
	}
	return r, nil
}

func (s *Service) Toggle(ctx context.Context, id string) (Rejection, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Rejection{}, err
	}
	r.Meta = r.Meta.Toggle(s.clock.Now())
	if err := s.repo.Update(ctx, r); err != nil {
		return Rejection{}, err
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Rejection, error) {
	return s.repo.GetByID(ctx, id)
}

// List acepta status = reason.
func (s *Service) List(ctx context.Context, f records.ListFilter) ([]Rejection, error) {
	reason := Reason(strings.ToLower(f.Status))
	if reason != "" {
		if err := records.OneOf("status", reason, Reasons...); err != nil {
			return nil, err
		}
	}

	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if reason != "" {
		items = lo.Filter(items, func(r Rejection, _ int) bool { return r.Reason == reason })
	}
	return records.Page(items, f.Limit), nil
}

// Summary suma litros y pérdida por motivo para las filas activas del filtro.
// Devuelve los motivos en el orden de Reasons, omitiendo los que no tienen filas.
func (s *Service) Summary(ctx context.Context, f records.ListFilter) ([]ReasonTotal, error) {
	f.Limit = 0
	items, err := s.List(ctx, f)
	if err != nil {
		return nil, err
	}

	byReason := lo.GroupBy(lo.Filter(items, func(r Rejection, _ int) bool { return r.Active }),
		func(r Rejection) Reason { return r.Reason })

	out := make([]ReasonTotal, 0, len(byReason))
	for _, reason := range Reasons {
		rows, ok := byReason[reason]
		if !ok {
			continue
		}
		t := ReasonTotal{Reason: reason, Count: len(rows), Liters: decimal.Zero, LossAmount: decimal.Zero}
		for _, r := range rows {
			t.Liters = t.Liters.Add(r.QuantityLiters)
			t.LossAmount = t.LossAmount.Add(r.LossAmount)
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *Service) Table(ctx context.Context, f records.ListFilter) (export.Table, error) {
	items, err := s.List(ctx, f)
	if err != nil {
		return export.Table{}, err
	}

	t := export.Table{
		Name: "rejections",
		Columns: []export.Column{
			{Title: "Rejected on", Kind: export.KindDate},
			{Title: "Source"},
			{Title: "Quantity (L)", Kind: export.KindNumber},
			{Title: "Reason"},
			{Title: "Fat (%)", Kind: export.KindNumber},
			{Title: "SNF (%)", Kind: export.KindNumber},
			{Title: "Rate per liter", Kind: export.KindMoney},
			{Title: "Loss amount", Kind: export.KindMoney},
			{Title: "Rejected by"},
			{Title: "Notes"},
			{Title: "Active"},
		},
	}
	for _, r := range items {
		t.Rows = append(t.Rows, []any{
			r.RejectedOn, r.Source, r.QuantityLiters, string(r.Reason), r.FatPercent, r.SNFPercent,
			r.RatePerLiter, r.LossAmount, r.RejectedBy, r.Notes, r.Active,
		})
	}
	return t, nil
}

func (s *Service) build(in Input) (Rejection, error) {
	if err := records.Required("source", in.Source); err != nil {
		return Rejection{}, err
	}
	if !in.QuantityLiters.IsPositive() {
		return Rejection{}, records.Invalid("quantity_liters must be greater than 0")
	}
	if err := records.OneOf("reason", in.Reason, Reasons...); err != nil {
		return Rejection{}, err
	}
	if in.RatePerLiter.IsNegative() {
		return Rejection{}, records.Invalid("rate_per_liter cannot be negative")
	}
	if err := percent("fat_percent", in.FatPercent); err != nil {
		return Rejection{}, err
	}
	if err := percent("snf_percent", in.SNFPercent); err != nil {
		return Rejection{}, err
	}

	rejected := records.Today(s.clock)
	if strings.TrimSpace(in.RejectedOn) != "" {
		t, err := records.ParseRequiredDate("rejected_on", in.RejectedOn)
		if err != nil {
			return Rejection{}, err
		}
		rejected = t
	}

	return Rejection{
		RejectedOn:     rejected,
		Source:         strings.TrimSpace(in.Source),
		QuantityLiters: in.QuantityLiters,
		Reason:         in.Reason,
		FatPercent:     in.FatPercent,
		SNFPercent:     in.SNFPercent,
		RatePerLiter:   in.RatePerLiter,
		LossAmount:     money.Mul(in.QuantityLiters, in.RatePerLiter),
		RejectedBy:     strings.TrimSpace(in.RejectedBy),
		Notes:          strings.TrimSpace(in.Notes),
	}, nil
}

func percent(field string, p decimal.NullDecimal) error {
	if p.Valid && (p.Decimal.IsNegative() || p.Decimal.GreaterThan(decimal.NewFromInt(100))) {
		return records.Invalid("%s must be between 0 and 100", field)
	}
	return nil
}
