package approvals

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
	Item        string          `json:"item"`
	Vendor      string          `json:"vendor"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	RequestedBy string          `json:"requested_by"`
	RequestedOn string          `json:"requested_on"`
	Remarks     string          `json:"remarks"`
}

type DecisionInput struct {
	Decision Status `json:"decision"`
	Remarks  string `json:"remarks"`
}

func (s *Service) Create(ctx context.Context, actor string, in Input) (Approval, error) {
	a, err := s.build(in)
	if err != nil {
		return Approval{}, err
	}
	if a.RequestedBy == "" {
		a.RequestedBy = strings.TrimSpace(actor)
	}
	a.ID = uuid.NewString()
	a.Status = StatusPending
	a.Meta = records.NewMeta(actor, s.clock.Now())

	if err := s.repo.Create(ctx, a); err != nil {
		return Approval{}, err
	}
	return a, nil
}

// Update solo aplica a solicitudes pendientes: una vez decidida queda congelada.
func (s *Service) Update(ctx context.Context, id string, in Input) (Approval, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Approval{}, err
	}
	if current.Decided() {
		return Approval{}, records.BadState("approval is already %s", current.Status)
	}

	a, err := s.build(in)
	if err != nil {
		return Approval{}, err
	}
	if a.RequestedBy == "" {
		a.RequestedBy = current.RequestedBy
	}
	a.ID = current.ID
	a.Status = current.Status
	a.Meta = current.Meta.Touch(s.clock.Now())

	if err := s.repo.Update(ctx, a); err != nil {
		return Approval{}, err
	}
	return a, nil
}

// Decide aprueba o rechaza una solicitud pendiente y registra quién y cuándo.
func (s *Service) Decide(ctx context.Context, id, actor string, in DecisionInput) (Approval, error) {
	if err := records.OneOf("decision", in.Decision, StatusApproved, StatusRejected); err != nil {
		return Approval{}, err
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Approval{}, err
	}
	if a.Decided() {
		return Approval{}, records.BadState("approval is already %s", a.Status)
	}

	now := s.clock.Now()
	a.Status = in.Decision
	a.DecidedBy = strings.TrimSpace(actor)
	a.DecidedAt = &now
	if r := strings.TrimSpace(in.Remarks); r != "" {
		a.Remarks = r
	}
	a.Meta = a.Meta.Touch(now)

	if err := s.repo.Update(ctx, a); err != nil {
		return Approval{}, err
	}
	return a, nil
}

func (s *Service) Toggle(ctx context.Context, id string) (Approval, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Approval{}, err
	}
	a.Meta = a.Meta.Toggle(s.clock.Now())
	if err := s.repo.Update(ctx, a); err != nil {
		return Approval{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Approval, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f records.ListFilter) ([]Approval, error) {
	status := Status(strings.ToLower(f.Status))
	if status != "" {
		if err := records.OneOf("status", status, StatusPending, StatusApproved, StatusRejected); err != nil {
			return nil, err
		}
	}

	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if status != "" {
		items = lo.Filter(items, func(a Approval, _ int) bool { return a.Status == status })
	}
	return records.Page(items, f.Limit), nil
}

func (s *Service) Table(ctx context.Context, f records.ListFilter) (export.Table, error) {
	items, err := s.List(ctx, f)
	if err != nil {
		return export.Table{}, err
	}

	t := export.Table{
		Name: "approvals",
		Columns: []export.Column{
			{Title: "Requested on", Kind: export.KindDate},
			{Title: "Item"},
			{Title: "Vendor"},
			{Title: "Quantity", Kind: export.KindNumber},
			{Title: "Unit"},
			{Title: "Unit price", Kind: export.KindMoney},
			{Title: "Total cost", Kind: export.KindMoney},
			{Title: "Requested by"},
			{Title: "Status"},
			{Title: "Decided by"},
			{Title: "Decided at", Kind: export.KindDate},
			{Title: "Remarks"},
			{Title: "Active"},
		},
	}
	for _, a := range items {
		t.Rows = append(t.Rows, []any{
			a.RequestedOn, a.Item, a.Vendor, a.Quantity, a.Unit, a.UnitPrice, a.TotalCost,
			a.RequestedBy, string(a.Status), a.DecidedBy, a.DecidedAt, a.Remarks, a.Active,
		})
	}
	return t, nil
}

// Summary agrupa el total comprometido por estado (solo filas activas).
func (s *Service) Summary(ctx context.Context, f records.ListFilter) (map[Status]decimal.Decimal, error) {
	f.Limit = 0
	items, err := s.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := map[Status]decimal.Decimal{
		StatusPending:  decimal.Zero,
		StatusApproved: decimal.Zero,
		StatusRejected: decimal.Zero,
	}
	for _, a := range items {
		if a.Active {
			out[a.Status] = out[a.Status].Add(a.TotalCost)
		}
	}
	return out, nil
}

func (s *Service) build(in Input) (Approval, error) {
	if err := records.Required("item", in.Item); err != nil {
		return Approval{}, err
	}
	if !in.Quantity.IsPositive() {
		return Approval{}, records.Invalid("quantity must be greater than 0")
	}
	if in.UnitPrice.IsNegative() {
		return Approval{}, records.Invalid("unit_price cannot be negative")
	}

	requestedOn := records.Today(s.clock)
	if strings.TrimSpace(in.RequestedOn) != "" {
		t, err := records.ParseRequiredDate("requested_on", in.RequestedOn)
		if err != nil {
			return Approval{}, err
		}
		requestedOn = t
	}

	return Approval{
		Item:        strings.TrimSpace(in.Item),
		Vendor:      strings.TrimSpace(in.Vendor),
		Quantity:    in.Quantity,
		Unit:        strings.TrimSpace(in.Unit),
		UnitPrice:   in.UnitPrice,
		TotalCost:   money.Mul(in.Quantity, in.UnitPrice),
		RequestedBy: strings.TrimSpace(in.RequestedBy),
		RequestedOn: requestedOn,
		Remarks:     strings.TrimSpace(in.Remarks),
	}, nil
}
