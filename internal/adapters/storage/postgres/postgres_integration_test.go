//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"dairy-records/internal/domain/animals"
	"dairy-records/internal/domain/categories"
	"dairy-records/internal/domain/records"
	"dairy-records/internal/domain/vaccinations"
	"dairy-records/internal/domain/yields"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

var testDB *sql.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:17-alpine",
		tcpostgres.WithDatabase("dairy"),
		tcpostgres.WithUsername("dairy"),
		tcpostgres.WithPassword("dairy"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "start postgres container: %v\n", err)
		os.Exit(1)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Fprintf(os.Stderr, "connection string: %v\n", err)
		os.Exit(1)
	}

	if err := Migrate(ctx, dsn, zap.NewNop()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
	// segunda corrida: no hay nada pendiente
	if err := Migrate(ctx, dsn, zap.NewNop()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate again: %v\n", err)
		os.Exit(1)
	}

	testDB, err = Open(dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	_ = testDB.Close()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	t.Cleanup(func() {
		_, err := testDB.Exec(`TRUNCATE animals, employees, approvals, inspections, rejections,
			yields, categories, repairs, vaccinations, calf_feedings`)
		if err != nil {
			t.Logf("truncate: %v", err)
		}
	})
	return testDB
}

func date(s string) time.Time {
	d, err := records.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

var created = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func TestAnimalsRepo_CRUD(t *testing.T) {
	repo := NewAnimalsRepo(setupTestDB(t))
	ctx := context.Background()

	birth := date("2022-03-15")
	a := animals.Animal{
		Meta:       records.NewMeta("sup-1", created),
		ID:         "ANM001",
		Name:       "Lakshmi",
		Breed:      "Gir",
		Sex:        animals.SexFemale,
		Category:   animals.CategoryCow,
		BirthDate:  &birth,
		AcquiredOn: date("2023-01-10"),
		Shed:       "B",
	}
	require.NoError(t, repo.Create(ctx, a))

	err := repo.Create(ctx, a)
	assert.ErrorIs(t, err, records.ErrConflict)

	got, err := repo.GetByID(ctx, " ANM001 ")
	require.NoError(t, err)
	assert.Equal(t, "Lakshmi", got.Name)
	assert.Equal(t, animals.CategoryCow, got.Category)
	require.NotNil(t, got.BirthDate)
	assert.True(t, birth.Equal(*got.BirthDate))
	assert.True(t, got.Active)
	assert.True(t, created.Equal(got.CreatedAt))

	got.Shed = "C"
	got.Meta = got.Meta.Toggle(created.Add(time.Hour))
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByID(ctx, "ANM001")
	require.NoError(t, err)
	assert.Equal(t, "C", got.Shed)
	assert.False(t, got.Active)
	assert.Equal(t, "sup-1", got.CreatedBy)

	assert.ErrorIs(t, repo.Update(ctx, animals.Animal{ID: "ANM999", Meta: records.NewMeta("x", created)}), records.ErrNotFound)

	ids, err := repo.IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ANM001"}, ids)

	require.NoError(t, repo.Delete(ctx, "ANM001"))
	assert.ErrorIs(t, repo.Delete(ctx, "ANM001"), records.ErrNotFound)
	_, err = repo.GetByID(ctx, "ANM001")
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestAnimalsRepo_ListFiltersAndOrder(t *testing.T) {
	repo := NewAnimalsRepo(setupTestDB(t))
	ctx := context.Background()

	add := func(id, name, acquired string, active bool) {
		a := animals.Animal{
			Meta: records.NewMeta("sup-1", created), ID: id, Name: name,
			Sex: animals.SexFemale, Category: animals.CategoryHeifer, AcquiredOn: date(acquired),
		}
		a.Active = active
		require.NoError(t, repo.Create(ctx, a))
	}
	add("ANM003", "Ganga", "2025-02-01", true)
	add("ANM001", "Kamdhenu", "2025-01-01", true)
	add("ANM002", "Nandini 50%_x", "2025-01-01", false)

	all, err := repo.List(ctx, records.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"ANM003", "ANM001", "ANM002"}, lo.Map(all, func(a animals.Animal, _ int) string { return a.ID }))

	from, to := date("2025-01-01"), date("2025-01-01")
	active := true
	got, err := repo.List(ctx, records.ListFilter{From: &from, To: &to, Active: &active})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ANM001", got[0].ID)

	got, err = repo.List(ctx, records.ListFilter{Query: "50%_"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ANM002", got[0].ID)

	got, err = repo.List(ctx, records.ListFilter{Query: "%"})
	require.NoError(t, err)
	assert.Len(t, got, 1, "wildcards are literal")
}

func TestYieldsRepo_DailyAndUniqueWeek(t *testing.T) {
	repo := NewYieldsRepo(setupTestDB(t))
	ctx := context.Background()

	daily := lo.Map([]string{"10", "10.5", "11", "9.75", "10", "10", "12"}, func(s string, _ int) decimal.Decimal {
		return decimal.RequireFromString(s)
	})
	total, avg := yields.Totals(daily)
	y := yields.Yield{
		Meta: records.NewMeta("sup-1", created), ID: "y-1", AnimalID: "ANM001",
		WeekStart: date("2025-06-02"), Daily: daily, TotalYield: total, AverageDaily: avg,
	}
	require.NoError(t, repo.Create(ctx, y))

	got, err := repo.GetByID(ctx, "y-1")
	require.NoError(t, err)
	require.Len(t, got.Daily, yields.DaysPerWeek)
	assert.True(t, got.Daily[3].Equal(decimal.RequireFromString("9.75")))
	assert.True(t, got.TotalYield.Equal(decimal.RequireFromString("73.25")))

	dup := y
	dup.ID = "y-2"
	dup.AnimalID = "anm001"
	assert.ErrorIs(t, repo.Create(ctx, dup), records.ErrConflict)
}

func TestCategoriesRepo_UniqueNameAndCreatedAtRange(t *testing.T) {
	repo := NewCategoriesRepo(setupTestDB(t))
	ctx := context.Background()

	c := categories.Category{Meta: records.NewMeta("sup-1", created), ID: "c-1", Name: "Milk slips", RetentionMonths: 12}
	require.NoError(t, repo.Create(ctx, c))

	dup := c
	dup.ID = "c-2"
	dup.Name = "MILK SLIPS"
	assert.ErrorIs(t, repo.Create(ctx, dup), records.ErrConflict)

	day := records.DateOf(created)
	got, err := repo.List(ctx, records.ListFilter{From: &day, To: &day})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestVaccinationsRepo_NullableDates(t *testing.T) {
	repo := NewVaccinationsRepo(setupTestDB(t))
	ctx := context.Background()

	v := vaccinations.Vaccination{
		Meta: records.NewMeta("vet-1", created), ID: "v-1", AnimalID: "ANM001",
		Vaccine: "FMD", ScheduledOn: date("2025-06-10"),
	}
	require.NoError(t, repo.Create(ctx, v))

	got, err := repo.GetByID(ctx, "v-1")
	require.NoError(t, err)
	assert.Nil(t, got.AdministeredOn)
	assert.Nil(t, got.NextDueOn)

	given, next := date("2025-06-10"), date("2025-12-10")
	got.AdministeredOn, got.NextDueOn, got.AdministeredBy = &given, &next, "vet-1"
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByID(ctx, "v-1")
	require.NoError(t, err)
	require.NotNil(t, got.AdministeredOn)
	assert.True(t, given.Equal(*got.AdministeredOn))
	assert.Equal(t, vaccinations.StatusCompleted, got.Status(date("2025-06-11")))
}
