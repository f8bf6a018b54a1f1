package employees

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"dairy-records/internal/domain/records"
	"dairy-records/internal/platform/export"
	"dairy-records/internal/platform/idgen"
	"dairy-records/internal/platform/money"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
)

const IDPrefix = "EMP"

const createAttempts = 3

type Service struct {
	repo  Repository
	clock clockwork.Clock
}

func NewService(repo Repository, clock clockwork.Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

type Input struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Role          string          `json:"role"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	JoinedOn      string          `json:"joined_on"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	Notes         string          `json:"notes"`
}

func (s *Service) NextID(ctx context.Context) (string, error) {
	ids, err := s.repo.IDs(ctx)
	if err != nil {
		return "", err
	}
	return idgen.Next(IDPrefix, idgen.DefaultWidth, ids), nil
}

func (s *Service) Create(ctx context.Context, actor string, in Input) (Employee, error) {
	e, err := s.build(in)
	if err != nil {
		return Employee{}, err
	}
	e.Meta = records.NewMeta(actor, s.clock.Now())

	if id := idgen.Normalize(in.ID); id != "" {
		e.ID = id
		if err := s.repo.Create(ctx, e); err != nil {
			return Employee{}, err
		}
		return e, nil
	}

	for attempt := 1; ; attempt++ {
		if e.ID, err = s.NextID(ctx); err != nil {
			return Employee{}, err
		}
		err = s.repo.Create(ctx, e)
		if err == nil {
			return e, nil
		}
		if !errors.Is(err, records.ErrConflict) || attempt == createAttempts {
			return Employee{}, err
		}
	}
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Employee, error) {
	current, err := s.repo.GetByID(ctx, idgen.Normalize(id))
	if err != nil {
		return Employee{}, err
	}
	e, err := s.build(in)
	if err != nil {
		return Employee{}, err
	}
	e.ID = current.ID
	e.Meta = current.Meta.Touch(s.clock.Now())

	if err := s.repo.Update(ctx, e); err != nil {
		return Employee{}, err
	}
	return e, nil
}

func (s *Service) Toggle(ctx context.Context, id string) (Employee, error) {
	e, err := s.repo.GetByID(ctx, idgen.Normalize(id))
	if err != nil {
		return Employee{}, err
	}
	e.Meta = e.Meta.Toggle(s.clock.Now())
	if err := s.repo.Update(ctx, e); err != nil {
		return Employee{}, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, idgen.Normalize(id))
}

func (s *Service) GetByID(ctx context.Context, id string) (Employee, error) {
	return s.repo.GetByID(ctx, idgen.Normalize(id))
}

func (s *Service) List(ctx context.Context, f records.ListFilter) ([]Employee, error) {
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return records.Page(items, f.Limit), nil
}

func (s *Service) Table(ctx context.Context, f records.ListFilter) (export.Table, error) {
	items, err := s.List(ctx, f)
	if err != nil {
		return export.Table{}, err
	}

	t := export.Table{
		Name: "employees",
		Columns: []export.Column{
			{Title: "ID"},
			{Title: "Name"},
			{Title: "Role"},
			{Title: "Phone"},
			{Title: "Email"},
			{Title: "Joined on", Kind: export.KindDate},
			{Title: "Monthly salary", Kind: export.KindMoney},
			{Title: "Notes"},
			{Title: "Active"},
		},
	}
	for _, e := range items {
		t.Rows = append(t.Rows, []any{
			e.ID, e.Name, e.Role, e.Phone, e.Email, e.JoinedOn, e.MonthlySalary, e.Notes, e.Active,
		})
	}
	return t, nil
}

func (s *Service) build(in Input) (Employee, error) {
	if err := records.Required("name", in.Name); err != nil {
		return Employee{}, err
	}
	if err := records.Required("role", in.Role); err != nil {
		return Employee{}, err
	}
	email := strings.TrimSpace(in.Email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return Employee{}, records.Invalid("email is not valid")
		}
	}
	if in.MonthlySalary.IsNegative() {
		return Employee{}, records.Invalid("monthly_salary cannot be negative")
	}

	joined := records.Today(s.clock)
	if strings.TrimSpace(in.JoinedOn) != "" {
		t, err := records.ParseRequiredDate("joined_on", in.JoinedOn)
		if err != nil {
			return Employee{}, err
		}
		joined = t
	}

	return Employee{
		Name:          strings.TrimSpace(in.Name),
		Role:          strings.TrimSpace(in.Role),
		Phone:         strings.TrimSpace(in.Phone),
		Email:         email,
		JoinedOn:      joined,
		MonthlySalary: money.Round(in.MonthlySalary),
		Notes:         strings.TrimSpace(in.Notes),
	}, nil
}
