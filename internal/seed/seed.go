// Package seed carga datos de demo a través de los servicios (mismas validaciones
// que la API), con gofakeit.
package seed

import (
	"context"
	"fmt"
	"time"

	"dairy-records/internal/domain/animals"
	"dairy-records/internal/domain/approvals"
	"dairy-records/internal/domain/calffeedings"
	"dairy-records/internal/domain/categories"
	"dairy-records/internal/domain/employees"
	"dairy-records/internal/domain/inspections"
	"dairy-records/internal/domain/records"
	"dairy-records/internal/domain/rejections"
	"dairy-records/internal/domain/repairs"
	"dairy-records/internal/domain/vaccinations"
	"dairy-records/internal/domain/yields"
	"dairy-records/internal/router"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const Actor = "seed"

var (
	breeds   = []string{"Gir", "Sahiwal", "Holstein Friesian", "Jersey", "Red Sindhi", "Tharparkar"}
	sheds    = []string{"A", "B", "C", "Calf pen"}
	roles    = []string{"Milker", "Feeder", "Veterinary assistant", "Supervisor", "Driver"}
	items    = []string{"Cattle feed", "Mineral mixture", "Dry fodder", "Teat dip", "Milking liners", "Silage bags"}
	vaccines = []string{"FMD", "HS", "BQ", "Brucellosis", "Theileriosis"}
	issues   = []string{"Broken gate", "Leaking roof", "Clogged drain", "Damaged feeder", "Faulty water trough"}
)

type Options struct {
	Animals   int
	Employees int
	// Weeks de producción por vaca, hacia atrás desde la semana actual.
	Weeks int
	Rows  int
}

func (o Options) withDefaults() Options {
	if o.Animals <= 0 {
		o.Animals = 20
	}
	if o.Employees <= 0 {
		o.Employees = 8
	}
	if o.Weeks <= 0 {
		o.Weeks = 4
	}
	if o.Rows <= 0 {
		o.Rows = 10
	}
	return o
}

// Report cuenta filas creadas por recurso.
type Report map[string]int

type seeder struct {
	svc   router.Services
	f     *gofakeit.Faker
	today time.Time
	out   Report
}

func Run(ctx context.Context, svc router.Services, f *gofakeit.Faker, today time.Time, opts Options, log *zap.Logger) (Report, error) {
	opts = opts.withDefaults()
	s := &seeder{svc: svc, f: f, today: records.DateOf(today), out: Report{}}

	steps := []struct {
		name string
		run  func(context.Context, Options) error
	}{
		{"animals", s.animals},
		{"employees", s.employees},
		{"categories", s.categories},
		{"approvals", s.approvals},
		{"inspections", s.inspections},
		{"rejections", s.rejections},
		{"repairs", s.repairs},
		{"yields", s.yields},
		{"vaccinations", s.vaccinations},
		{"calffeedings", s.calfFeedings},
	}
	for _, st := range steps {
		if err := st.run(ctx, opts); err != nil {
			return s.out, fmt.Errorf("seed %s: %w", st.name, err)
		}
		log.Info("seeded", zap.String("resource", st.name), zap.Int("rows", s.out[st.name]))
	}
	return s.out, nil
}

func (s *seeder) daysAgo(max int) string {
	return records.FormatDate(s.today.AddDate(0, 0, -s.f.IntRange(0, max)))
}

func (s *seeder) dec(min, max float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(s.f.Float64Range(min, max)).Round(places)
}

func (s *seeder) animals(ctx context.Context, o Options) error {
	for i := 0; i < o.Animals; i++ {
		category := s.f.RandomString([]string{"cow", "cow", "cow", "heifer", "calf", "bull"})
		sex := animals.SexFemale
		if category == "bull" {
			sex = animals.SexMale
		}
		ageDays := map[string][2]int{"cow": {1100, 3000}, "heifer": {400, 1000}, "calf": {2, 120}, "bull": {900, 2500}}[category]
		birth := s.today.AddDate(0, 0, -s.f.IntRange(ageDays[0], ageDays[1]))

		_, err := s.svc.Animals.Create(ctx, Actor, animals.Input{
			Name:       s.f.FirstName(),
			Breed:      s.f.RandomString(breeds),
			Sex:        sex,
			Category:   animals.Category(category),
			BirthDate:  records.FormatDate(birth),
			AcquiredOn: records.FormatDate(birth.AddDate(0, 0, s.f.IntRange(0, 1))),
			Shed:       s.f.RandomString(sheds),
		})
		if err != nil {
			return err
		}
		s.out["animals"]++
	}
	return nil
}

func (s *seeder) employees(ctx context.Context, o Options) error {
	for i := 0; i < o.Employees; i++ {
		_, err := s.svc.Employees.Create(ctx, Actor, employees.Input{
			Name:          s.f.Name(),
			Role:          s.f.RandomString(roles),
			Phone:         s.f.Phone(),
			Email:         s.f.Email(),
			JoinedOn:      s.daysAgo(1500),
			MonthlySalary: s.dec(12000, 35000, 0),
		})
		if err != nil {
			return err
		}
		s.out["employees"]++
	}
	return nil
}

func (s *seeder) categories(ctx context.Context, _ Options) error {
	defs := []categories.Input{
		{Name: "Milk collection slips", Description: "Daily collection receipts", RetentionMonths: 12},
		{Name: "Veterinary records", Description: "Treatments and vaccinations", RetentionMonths: 60},
		{Name: "Purchase invoices", Description: "Feed and supplies", RetentionMonths: 96},
		{Name: "Payroll", Description: "Salary registers", RetentionMonths: 84},
	}
	for _, in := range defs {
		if _, err := s.svc.Categories.Create(ctx, Actor, in); err != nil {
			return err
		}
		s.out["categories"]++
	}
	return nil
}

func (s *seeder) approvals(ctx context.Context, o Options) error {
	for i := 0; i < o.Rows; i++ {
		a, err := s.svc.Approvals.Create(ctx, Actor, approvals.Input{
			Item:        s.f.RandomString(items),
			Vendor:      s.f.Company(),
			Quantity:    decimal.NewFromInt(int64(s.f.IntRange(1, 50))),
			Unit:        s.f.RandomString([]string{"bag", "kg", "pcs", "roll"}),
			UnitPrice:   s.dec(50, 2500, 2),
			RequestedBy: s.f.Name(),
			RequestedOn: s.daysAgo(60),
		})
		if err != nil {
			return err
		}
		s.out["approvals"]++

		// un tercio queda pendiente
		switch i % 3 {
		case 1:
			_, err = s.svc.Approvals.Decide(ctx, a.ID, Actor, approvals.DecisionInput{Decision: approvals.StatusApproved})
		case 2:
			_, err = s.svc.Approvals.Decide(ctx, a.ID, Actor, approvals.DecisionInput{Decision: approvals.StatusRejected, Remarks: "over budget"})
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) inspections(ctx context.Context, o Options) error {
	for i := 0; i < o.Rows; i++ {
		in := inspections.Input{
			InspectedOn: s.daysAgo(90),
			Inspector:   s.f.Name(),
			Appearance:  s.f.RandomString([]string{"clear", "slightly turbid", "normal", "mouldy spots"}),
		}
		if i%2 == 0 {
			in.Kind = inspections.KindWater
			in.Source = s.f.RandomString([]string{"Borewell 1", "Borewell 2", "Overhead tank"})
			in.PH = decimal.NewNullDecimal(s.dec(5.5, 9, 1))
			in.TDSPPM = decimal.NewNullDecimal(s.dec(300, 3500, 0))
		} else {
			in.Kind = inspections.KindFeed
			in.Source = s.f.RandomString([]string{"Silage pit A", "Silage pit B", "Concentrate store"})
			in.MoisturePercent = decimal.NewNullDecimal(s.dec(8, 18, 1))
		}
		if _, err := s.svc.Inspections.Create(ctx, Actor, in); err != nil {
			return err
		}
		s.out["inspections"]++
	}
	return nil
}

func (s *seeder) rejections(ctx context.Context, o Options) error {
	for i := 0; i < o.Rows; i++ {
		_, err := s.svc.Rejections.Create(ctx, Actor, rejections.Input{
			RejectedOn:     s.daysAgo(60),
			Source:         s.f.Company(),
			QuantityLiters: s.dec(5, 200, 1),
			Reason:         rejections.Reasons[s.f.IntRange(0, len(rejections.Reasons)-1)],
			FatPercent:     decimal.NewNullDecimal(s.dec(2.5, 5, 1)),
			SNFPercent:     decimal.NewNullDecimal(s.dec(7, 9, 1)),
			RatePerLiter:   s.dec(30, 55, 2),
			RejectedBy:     s.f.Name(),
		})
		if err != nil {
			return err
		}
		s.out["rejections"]++
	}
	return nil
}

func (s *seeder) repairs(ctx context.Context, o Options) error {
	for i := 0; i < o.Rows; i++ {
		reported := s.today.AddDate(0, 0, -s.f.IntRange(0, 45))
		r, err := s.svc.Repairs.Create(ctx, Actor, repairs.Input{
			Shed:       s.f.RandomString(sheds),
			Issue:      s.f.RandomString(issues),
			ReportedOn: records.FormatDate(reported),
		})
		if err != nil {
			return err
		}
		s.out["repairs"]++

		if i%2 == 0 {
			done := reported.AddDate(0, 0, s.f.IntRange(0, int(s.today.Sub(reported).Hours()/24)))
			_, err = s.svc.Repairs.Complete(ctx, r.ID, Actor, repairs.CompleteInput{
				RepairedOn: records.FormatDate(done),
				Cost:       decimal.NewNullDecimal(s.dec(200, 15000, 2)),
				Technician: s.f.Name(),
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *seeder) herd(ctx context.Context, category animals.Category) ([]animals.Animal, error) {
	all, err := s.svc.Animals.List(ctx, records.ListFilter{})
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(a animals.Animal, _ int) bool { return a.Category == category }), nil
}

func (s *seeder) yields(ctx context.Context, o Options) error {
	cows, err := s.herd(ctx, animals.CategoryCow)
	if err != nil {
		return err
	}
	thisWeek := yields.WeekStart(s.today)
	for _, cow := range cows {
		for w := 1; w <= o.Weeks; w++ {
			daily := make([]decimal.Decimal, yields.DaysPerWeek)
			for d := range daily {
				daily[d] = s.dec(6, 18, 1)
			}
			_, err := s.svc.Yields.Create(ctx, Actor, yields.Input{
				AnimalID:  cow.ID,
				WeekStart: records.FormatDate(thisWeek.AddDate(0, 0, -7*w)),
				Daily:     daily,
			})
			if err != nil {
				return err
			}
			s.out["yields"]++
		}
	}
	return nil
}

func (s *seeder) vaccinations(ctx context.Context, o Options) error {
	all, err := s.svc.Animals.List(ctx, records.ListFilter{})
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return nil
	}
	for i := 0; i < o.Rows; i++ {
		a := all[s.f.IntRange(0, len(all)-1)]
		_, err := s.svc.Vaccinations.Create(ctx, Actor, vaccinations.Input{
			AnimalID:    a.ID,
			Vaccine:     s.f.RandomString(vaccines),
			Dose:        s.f.RandomString([]string{"2 ml", "5 ml", "1 dose"}),
			ScheduledOn: records.FormatDate(s.today.AddDate(0, 0, s.f.IntRange(-20, 30))),
		})
		if err != nil {
			return err
		}
		s.out["vaccinations"]++
	}
	return nil
}

func (s *seeder) calfFeedings(ctx context.Context, _ Options) error {
	calves, err := s.herd(ctx, animals.CategoryCalf)
	if err != nil {
		return err
	}
	sessions := []calffeedings.Session{calffeedings.SessionMorning, calffeedings.SessionEvening}
	for _, calf := range calves {
		for d := 0; d < 3; d++ {
			feed := calffeedings.FeedWholeMilk
			if d == 0 {
				feed = calffeedings.FeedColostrum
			}
			for _, session := range sessions {
				_, err := s.svc.CalfFeedings.Create(ctx, Actor, calffeedings.Input{
					CalfID:         calf.ID,
					FedOn:          records.FormatDate(s.today.AddDate(0, 0, -d)),
					Session:        session,
					FeedType:       feed,
					QuantityLiters: s.dec(1, 3, 1),
					FedBy:          s.f.FirstName(),
				})
				if err != nil {
					return err
				}
				s.out["calffeedings"]++
			}
		}
	}
	return nil
}
