package router

import (
	"database/sql"
	"fmt"
	"net/http"

	mem "dairy-records/internal/adapters/storage/memory"
	pg "dairy-records/internal/adapters/storage/postgres"
	"dairy-records/internal/domain/animals"
	"dairy-records/internal/domain/approvals"
	"dairy-records/internal/domain/calffeedings"
	"dairy-records/internal/domain/categories"
	"dairy-records/internal/domain/dashboard"
	"dairy-records/internal/domain/employees"
	"dairy-records/internal/domain/inspections"
	"dairy-records/internal/domain/records"
	"dairy-records/internal/domain/rejections"
	"dairy-records/internal/domain/repairs"
	"dairy-records/internal/domain/vaccinations"
	"dairy-records/internal/domain/yields"
	"dairy-records/internal/middleware"
	"dairy-records/internal/platform/metrics"
	"dairy-records/internal/ports/auth"
	"dairy-records/internal/web"

	_ "dairy-records/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Defaults: reloj real, zap.NewNop, "$" y un registry nuevo.
	Clock          clockwork.Clock
	Logger         *zap.Logger
	CurrencySymbol string
	Registry       *prometheus.Registry
}

type repositories struct {
	animals      animals.Repository
	employees    employees.Repository
	approvals    approvals.Repository
	inspections  inspections.Repository
	rejections   rejections.Repository
	yields       yields.Repository
	categories   categories.Repository
	repairs      repairs.Repository
	vaccinations vaccinations.Repository
	calfFeedings calffeedings.Repository
}

func memoryRepos() repositories {
	return repositories{
		animals:      mem.NewStore[animals.Animal](),
		employees:    mem.NewStore[employees.Employee](),
		approvals:    mem.NewStore[approvals.Approval](),
		inspections:  mem.NewStore[inspections.Inspection](),
		rejections:   mem.NewStore[rejections.Rejection](),
		yields:       mem.NewStore(mem.WithUniqueKey(yields.UniqueKey)),
		categories:   mem.NewStore(mem.WithUniqueKey(categories.UniqueKey)),
		repairs:      mem.NewStore[repairs.Repair](),
		vaccinations: mem.NewStore[vaccinations.Vaccination](),
		calfFeedings: mem.NewStore[calffeedings.Feeding](),
	}
}

func postgresRepos(db *sql.DB) repositories {
	return repositories{
		animals:      pg.NewAnimalsRepo(db),
		employees:    pg.NewEmployeesRepo(db),
		approvals:    pg.NewApprovalsRepo(db),
		inspections:  pg.NewInspectionsRepo(db),
		rejections:   pg.NewRejectionsRepo(db),
		yields:       pg.NewYieldsRepo(db),
		categories:   pg.NewCategoriesRepo(db),
		repairs:      pg.NewRepairsRepo(db),
		vaccinations: pg.NewVaccinationsRepo(db),
		calfFeedings: pg.NewCalfFeedingsRepo(db),
	}
}

// Services son los servicios de todos los módulos sobre el mismo storage.
type Services struct {
	Animals      *animals.Service
	Employees    *employees.Service
	Approvals    *approvals.Service
	Inspections  *inspections.Service
	Rejections   *rejections.Service
	Yields       *yields.Service
	Categories   *categories.Service
	Repairs      *repairs.Service
	Vaccinations *vaccinations.Service
	CalfFeedings *calffeedings.Service
}

// NewServices arma los servicios sobre Postgres si db != nil, si no in-memory.
func NewServices(db *sql.DB, clock clockwork.Clock) Services {
	repos := memoryRepos()
	if db != nil {
		repos = postgresRepos(db)
	}

	animalsSvc := animals.NewService(repos.animals, clock)
	return Services{
		Animals:      animalsSvc,
		Employees:    employees.NewService(repos.employees, clock),
		Approvals:    approvals.NewService(repos.approvals, clock),
		Inspections:  inspections.NewService(repos.inspections, clock),
		Rejections:   rejections.NewService(repos.rejections, clock),
		Yields:       yields.NewService(repos.yields, animalsSvc, clock),
		Categories:   categories.NewService(repos.categories, clock),
		Repairs:      repairs.NewService(repos.repairs, clock),
		Vaccinations: vaccinations.NewService(repos.vaccinations, animalsSvc, clock),
		CalfFeedings: calffeedings.NewService(repos.calfFeedings, animalsSvc, clock),
	}
}

func NewRouter(opts Options) (http.Handler, error) {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	symbol := opts.CurrencySymbol
	if symbol == "" {
		symbol = "$"
	}
	reg := opts.Registry
	if reg == nil {
		reg = metrics.NewRegistry()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	// AuthContext antes del logger para que el log lleve user_id
	r.Use(middleware.AuthContext(opts.AuthVerifier))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover)
	r.Use(metrics.NewHTTPMetrics(reg).Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler(reg))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	svc := NewServices(opts.DB, clock)

	active := true
	dashboardSvc := dashboard.NewService(dashboard.Sources{
		ActiveAnimals:       dashboard.Count(svc.Animals.List, records.ListFilter{Active: &active}),
		ActiveEmployees:     dashboard.Count(svc.Employees.List, records.ListFilter{Active: &active}),
		PendingApprovals:    dashboard.Count(svc.Approvals.List, records.ListFilter{Active: &active, Status: string(approvals.StatusPending)}),
		FailedInspections:   dashboard.Count(svc.Inspections.List, records.ListFilter{Active: &active, Status: string(inspections.ResultFail)}),
		OverdueVaccinations: dashboard.Count(svc.Vaccinations.List, records.ListFilter{Active: &active, Status: string(vaccinations.StatusOverdue)}),
		OpenRepairs:         dashboard.Count(svc.Repairs.List, records.ListFilter{Active: &active, Status: string(repairs.StatusOpen)}),
	}, clock)

	pages, err := web.New([]records.Source{
		{Name: "animals", Title: "Animals", Table: svc.Animals.Table},
		{Name: "employees", Title: "Employees", Table: svc.Employees.Table},
		{Name: "approvals", Title: "Purchase approvals", Table: svc.Approvals.Table},
		{Name: "inspections", Title: "Feed & water inspections", Table: svc.Inspections.Table},
		{Name: "rejections", Title: "Milk rejections", Table: svc.Rejections.Table},
		{Name: "yields", Title: "Weekly milk yield", Table: svc.Yields.Table},
		{Name: "categories", Title: "Retention categories", Table: svc.Categories.Table},
		{Name: "repairs", Title: "Shed repairs", Table: svc.Repairs.Table},
		{Name: "vaccinations", Title: "Vaccinations", Table: svc.Vaccinations.Table},
		{Name: "calffeedings", Title: "Calf feeding", Table: svc.CalfFeedings.Table},
	}, symbol, dashboardSvc.Counts)
	if err != nil {
		return nil, fmt.Errorf("web pages: %w", err)
	}

	// Rutas por módulo: todas requieren identidad
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)

		animals.RegisterRoutes(r, svc.Animals)
		employees.RegisterRoutes(r, svc.Employees)
		approvals.RegisterRoutes(r, svc.Approvals)
		inspections.RegisterRoutes(r, svc.Inspections)
		rejections.RegisterRoutes(r, svc.Rejections)
		yields.RegisterRoutes(r, svc.Yields)
		categories.RegisterRoutes(r, svc.Categories)
		repairs.RegisterRoutes(r, svc.Repairs)
		vaccinations.RegisterRoutes(r, svc.Vaccinations)
		calffeedings.RegisterRoutes(r, svc.CalfFeedings)
		dashboard.RegisterRoutes(r, dashboardSvc)
		web.RegisterRoutes(r, pages)
	})

	return r, nil
}
