package vaccinations

import (
	"context"
	"strings"

	"dairy-records/internal/domain/records"
	"dairy-records/internal/platform/export"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"
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
	AnimalID       string `json:"animal_id"`
	Vaccine        string `json:"vaccine"`
	Dose           string `json:"dose"`
	ScheduledOn    string `json:"scheduled_on"`
	AdministeredOn string `json:"administered_on"`
	AdministeredBy string `json:"administered_by"`
	NextDueOn      string `json:"next_due_on"`
	Notes          string `json:"notes"`
}

type AdministerInput struct {
	AdministeredOn string `json:"administered_on"`
	AdministeredBy string `json:"administered_by"`
	NextDueOn      string `json:"next_due_on"`
	Notes          string `json:"notes"`
}

func (s *Service) Create(ctx context.Context, actor string, in Input) (Vaccination, error) {
	v, err := s.build(ctx, in)
	if err != nil {
		return Vaccination{}, err
	}
	v.ID = uuid.NewString()
	v.Meta = records.NewMeta(actor, s.clock.Now())

	if err := s.repo.Create(ctx, v); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Vaccination, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Vaccination{}, err
	}
	v, err := s.build(ctx, in)
	if err != nil {
		return Vaccination{}, err
	}
	v.ID = current.ID
	v.Meta = current.Meta.Touch(s.clock.Now())

	if err := s.repo.Update(ctx, v); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

// Administer registra la aplicación de una vacuna pendiente (409 si ya estaba aplicada).
func (s *Service) Administer(ctx context.Context, id, actor string, in AdministerInput) (Vaccination, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Vaccination{}, err
	}
	if v.AdministeredOn != nil {
		return Vaccination{}, records.BadState("vaccination was already administered on %s", records.FormatDate(*v.AdministeredOn))
	}

	today := records.Today(s.clock)
	given := today
	if strings.TrimSpace(in.AdministeredOn) != "" {
		if given, err = records.ParseRequiredDate("administered_on", in.AdministeredOn); err != nil {
			return Vaccination{}, err
		}
	}
	if given.After(today) {
		return Vaccination{}, records.Invalid("administered_on cannot be in the future")
	}

	next, err := records.ParseOptionalDate("next_due_on", in.NextDueOn)
	if err != nil {
		return Vaccination{}, err
	}
	if next != nil {
		if !next.After(v.ScheduledOn) {
			return Vaccination{}, records.Invalid("next_due_on must be after scheduled_on")
		}
		v.NextDueOn = next
	}

	v.AdministeredOn = &given
	v.AdministeredBy = strings.TrimSpace(in.AdministeredBy)
	if v.AdministeredBy == "" {
		v.AdministeredBy = strings.TrimSpace(actor)
	}
	if n := strings.TrimSpace(in.Notes); n != "" {
		v.Notes = n
	}
	v.Meta = v.Meta.Touch(s.clock.Now())

	if err := s.repo.Update(ctx, v); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

func (s *Service) Toggle(ctx context.Context, id string) (Vaccination, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Vaccination{}, err
	}
	v.Meta = v.Meta.Toggle(s.clock.Now())
	if err := s.repo.Update(ctx, v); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Vaccination, error) {
	return s.repo.GetByID(ctx, id)
}

// Status expone el estado calculado con el reloj del servicio.
func (s *Service) Status(v Vaccination) Status {
	return v.Status(records.Today(s.clock))
}

// List acepta status (scheduled | due | overdue | completed) y animal_id.
func (s *Service) List(ctx context.Context, f records.ListFilter) ([]Vaccination, error) {
	status := Status(strings.ToLower(f.Status))
	if status != "" {
		if err := records.OneOf("status", status, StatusScheduled, StatusDue, StatusOverdue, StatusCompleted); err != nil {
			return nil, err
		}
	}

	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	today := records.Today(s.clock)
	animalID := strings.TrimSpace(f.AnimalID)
	items = lo.Filter(items, func(v Vaccination, _ int) bool {
		if animalID != "" && !strings.EqualFold(v.AnimalID, animalID) {
			return false
		}
		return status == "" || v.Status(today) == status
	})
	return records.Page(items, f.Limit), nil
}

func (s *Service) Table(ctx context.Context, f records.ListFilter) (export.Table, error) {
	items, err := s.List(ctx, f)
	if err != nil {
		return export.Table{}, err
	}

	today := records.Today(s.clock)
	t := export.Table{
		Name: "vaccinations",
		Columns: []export.Column{
			{Title: "Scheduled on", Kind: export.KindDate},
			{Title: "Animal"},
			{Title: "Vaccine"},
			{Title: "Dose"},
			{Title: "Status"},
			{Title: "Administered on", Kind: export.KindDate},
			{Title: "Administered by"},
			{Title: "Next due on", Kind: export.KindDate},
			{Title: "Notes"},
			{Title: "Active"},
		},
	}
	for _, v := range items {
		t.Rows = append(t.Rows, []any{
			v.ScheduledOn, v.AnimalID, v.Vaccine, v.Dose, string(v.Status(today)),
			v.AdministeredOn, v.AdministeredBy, v.NextDueOn, v.Notes, v.Active,
		})
	}
	return t, nil
}

func (s *Service) build(ctx context.Context, in Input) (Vaccination, error) {
	animalID := strings.ToUpper(strings.TrimSpace(in.AnimalID))
	if animalID == "" {
		return Vaccination{}, records.Invalid("animal_id is required")
	}
	if err := records.Required("vaccine", in.Vaccine); err != nil {
		return Vaccination{}, err
	}
	scheduled, err := records.ParseRequiredDate("scheduled_on", in.ScheduledOn)
	if err != nil {
		return Vaccination{}, err
	}
	given, err := records.ParseOptionalDate("administered_on", in.AdministeredOn)
	if err != nil {
		return Vaccination{}, err
	}
	if given != nil && given.After(records.Today(s.clock)) {
		return Vaccination{}, records.Invalid("administered_on cannot be in the future")
	}
	next, err := records.ParseOptionalDate("next_due_on", in.NextDueOn)
	if err != nil {
		return Vaccination{}, err
	}
	if next != nil && !next.After(scheduled) {
		return Vaccination{}, records.Invalid("next_due_on must be after scheduled_on")
	}

	ok, err := s.animals.Exists(ctx, animalID)
	if err != nil {
		return Vaccination{}, err
	}
	if !ok {
		return Vaccination{}, records.Invalid("animal %s does not exist", animalID)
	}

	return Vaccination{
		AnimalID:       animalID,
		Vaccine:        strings.TrimSpace(in.Vaccine),
		Dose:           strings.TrimSpace(in.Dose),
		ScheduledOn:    scheduled,
		AdministeredOn: given,
		AdministeredBy: strings.TrimSpace(in.AdministeredBy),
		NextDueOn:      next,
		Notes:          strings.TrimSpace(in.Notes),
	}, nil
}
