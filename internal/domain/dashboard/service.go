// Package dashboard junta los contadores de la pantalla principal.
package dashboard

import (
	"context"
	"fmt"

	"dairy-records/internal/domain/records"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

// Counter cuenta filas de un módulo.
type Counter func(ctx context.Context) (int, error)

// Count arma un Counter a partir del List de un servicio y un filtro fijo (sin límite).
func Count[T any](list func(context.Context, records.ListFilter) ([]T, error), f records.ListFilter) Counter {
	f.Limit = 0
	return func(ctx context.Context) (int, error) {
		items, err := list(ctx, f)
		if err != nil {
			return 0, err
		}
		return len(items), nil
	}
}

type Sources struct {
	ActiveAnimals       Counter
	ActiveEmployees     Counter
	PendingApprovals    Counter
	FailedInspections   Counter
	OverdueVaccinations Counter
	OpenRepairs         Counter
}

type Counts struct {
	ActiveAnimals       int `json:"active_animals"`
	ActiveEmployees     int `json:"active_employees"`
	PendingApprovals    int `json:"pending_approvals"`
	FailedInspections   int `json:"failed_inspections"`
	OverdueVaccinations int `json:"overdue_vaccinations"`
	OpenRepairs         int `json:"open_repairs"`
	// AsOf es la fecha del reloj del servicio (overdue depende de ella).
	AsOf string `json:"as_of"`
}

type Service struct {
	src   Sources
	clock clockwork.Clock
}

func NewService(src Sources, clock clockwork.Clock) *Service {
	return &Service{src: src, clock: clock}
}

// Counts consulta todos los contadores en paralelo; el primer error cancela el resto.
func (s *Service) Counts(ctx context.Context) (Counts, error) {
	out := Counts{AsOf: records.FormatDate(records.Today(s.clock))}

	g, ctx := errgroup.WithContext(ctx)
	run := func(name string, c Counter, dst *int) {
		if c == nil {
			return
		}
		g.Go(func() error {
			n, err := c(ctx)
			if err != nil {
				return fmt.Errorf("count %s: %w", name, err)
			}
			*dst = n
			return nil
		})
	}

	run("animals", s.src.ActiveAnimals, &out.ActiveAnimals)
	run("employees", s.src.ActiveEmployees, &out.ActiveEmployees)
	run("approvals", s.src.PendingApprovals, &out.PendingApprovals)
	run("inspections", s.src.FailedInspections, &out.FailedInspections)
	run("vaccinations", s.src.OverdueVaccinations, &out.OverdueVaccinations)
	run("repairs", s.src.OpenRepairs, &out.OpenRepairs)

	if err := g.Wait(); err != nil {
		return Counts{}, err
	}
	return out, nil
}
