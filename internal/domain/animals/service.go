package animals

import (
	"context"
	"errors"
	"strings"

	"dairy-records/internal/domain/records"
	"dairy-records/internal/platform/export"
	"dairy-records/internal/platform/idgen"

	"github.com/jonboulle/clockwork"
)

const IDPrefix = "ANM"

// Reintentos cuando dos altas concurrentes calculan el mismo id.
const createAttempts = 3

type Service struct {
	repo  Repository
	clock clockwork.Clock
}

func NewService(repo Repository, clock clockwork.Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

// Input es el body de alta/edición. Fechas en YYYY-MM-DD.
type Input struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Breed      string   `json:"breed"`
	Sex        Sex      `json:"sex"`
	Category   Category `json:"category"`
	BirthDate  string   `json:"birth_date"`
	AcquiredOn string   `json:"acquired_on"`
	Shed       string   `json:"shed"`
	Notes      string   `json:"notes"`
}

// NextID devuelve el id que recibiría la próxima alta sin id explícito.
func (s *Service) NextID(ctx context.Context) (string, error) {
	ids, err := s.repo.IDs(ctx)
	if err != nil {
		return "", err
	}
	return idgen.Next(IDPrefix, idgen.DefaultWidth, ids), nil
}

func (s *Service) Create(ctx context.Context, actor string, in Input) (Animal, error) {
	a, err := s.build(in)
	if err != nil {
		return Animal{}, err
	}
	a.Meta = records.NewMeta(actor, s.clock.Now())

	if id := idgen.Normalize(in.ID); id != "" {
		a.ID = id
		if err := s.repo.Create(ctx, a); err != nil {
			return Animal{}, err
		}
		return a, nil
	}

	for attempt := 1; ; attempt++ {
		if a.ID, err = s.NextID(ctx); err != nil {
			return Animal{}, err
		}
		err = s.repo.Create(ctx, a)
		if err == nil {
			return a, nil
		}
		if !errors.Is(err, records.ErrConflict) || attempt == createAttempts {
			return Animal{}, err
		}
	}
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Animal, error) {
	current, err := s.repo.GetByID(ctx, idgen.Normalize(id))
	if err != nil {
		return Animal{}, err
	}

	a, err := s.build(in)
	if err != nil {
		return Animal{}, err
	}
	a.ID = current.ID
	a.Meta = current.Meta.Touch(s.clock.Now())

	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) Toggle(ctx context.Context, id string) (Animal, error) {
	a, err := s.repo.GetByID(ctx, idgen.Normalize(id))
	if err != nil {
		return Animal{}, err
	}
	a.Meta = a.Meta.Toggle(s.clock.Now())
	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, idgen.Normalize(id))
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	return s.repo.GetByID(ctx, idgen.Normalize(id))
}

// Exists lo usan los módulos que referencian un animal (yields, vaccinations, calffeedings).
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.repo.GetByID(ctx, idgen.Normalize(id))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, records.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (s *Service) List(ctx context.Context, f records.ListFilter) ([]Animal, error) {
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
		Name: "animals",
		Columns: []export.Column{
			{Title: "ID"},
			{Title: "Name"},
			{Title: "Breed"},
			{Title: "Sex"},
			{Title: "Category"},
			{Title: "Birth date", Kind: export.KindDate},
			{Title: "Acquired on", Kind: export.KindDate},
			{Title: "Shed"},
			{Title: "Notes"},
			{Title: "Active"},
		},
	}
	for _, a := range items {
		t.Rows = append(t.Rows, []any{
			a.ID, a.Name, a.Breed, string(a.Sex), string(a.Category),
			a.BirthDate, a.AcquiredOn, a.Shed, a.Notes, a.Active,
		})
	}
	return t, nil
}

func (s *Service) build(in Input) (Animal, error) {
	if err := records.Required("name", in.Name); err != nil {
		return Animal{}, err
	}
	if err := records.OneOf("sex", in.Sex, SexFemale, SexMale); err != nil {
		return Animal{}, err
	}
	if err := records.OneOf("category", in.Category, CategoryCow, CategoryHeifer, CategoryCalf, CategoryBull); err != nil {
		return Animal{}, err
	}

	today := records.Today(s.clock)

	acquired := today
	if strings.TrimSpace(in.AcquiredOn) != "" {
		t, err := records.ParseRequiredDate("acquired_on", in.AcquiredOn)
		if err != nil {
			return Animal{}, err
		}
		acquired = t
	}

	birth, err := records.ParseOptionalDate("birth_date", in.BirthDate)
	if err != nil {
		return Animal{}, err
	}
	if birth != nil {
		if birth.After(today) {
			return Animal{}, records.Invalid("birth_date cannot be in the future")
		}
		if birth.After(acquired) {
			return Animal{}, records.Invalid("birth_date cannot be after acquired_on")
		}
	}

	return Animal{
		Name:       strings.TrimSpace(in.Name),
		Breed:      strings.TrimSpace(in.Breed),
		Sex:        in.Sex,
		Category:   in.Category,
		BirthDate:  birth,
		AcquiredOn: acquired,
		Shed:       strings.TrimSpace(in.Shed),
		Notes:      strings.TrimSpace(in.Notes),
	}, nil
}
