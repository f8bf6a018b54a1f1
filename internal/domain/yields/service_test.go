package yields

import (
	"context"
	"sync"
	"testing"
	"time"

	"dairy-records/internal/adapters/storage/memory"
	"dairy-records/internal/domain/records"

	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type knownAnimals map[string]bool

func (k knownAnimals) Exists(_ context.Context, id string) (bool, error) {
	return k[id], nil
}

func newTestService() *Service {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 20, 8, 0, 0, 0, time.UTC))
	return NewService(memory.NewStore[Yield](), knownAnimals{"ANM001": true, "ANM002": true}, clock)
}

func liters(vs ...string) []decimal.Decimal {
	return lo.Map(vs, func(v string, _ int) decimal.Decimal { return decimal.RequireFromString(v) })
}

func week(animal, day string) Input {
	return Input{
		AnimalID:  animal,
		WeekStart: day,
		Daily:     liters("12.5", "13", "12.8", "11.9", "12", "13.4", "12.7"),
	}
}

func TestWeekStart(t *testing.T) {
	cases := map[string]string{
		"2025-03-17": "2025-03-17", // lunes
		"2025-03-20": "2025-03-17",
		"2025-03-23": "2025-03-17", // domingo
		"2025-03-24": "2025-03-24",
	}
	for in, want := range cases {
		d, err := records.ParseDate(in)
		require.NoError(t, err)
		assert.Equal(t, want, records.FormatDate(WeekStart(d)), in)
	}
}

func TestService_Create_DerivesTotals(t *testing.T) {
	svc := newTestService()

	y, err := svc.Create(context.Background(), "sup-1", week("anm001", "2025-03-20"))
	require.NoError(t, err)
	assert.Equal(t, "ANM001", y.AnimalID)
	assert.Equal(t, "2025-03-17", records.FormatDate(y.WeekStart))
	assert.Equal(t, "88.3", y.TotalYield.String())
	assert.Equal(t, "12.61", y.AverageDaily.String())
}

func TestService_Create_Validation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	in := week("ANM001", "2025-03-17")
	in.Daily = in.Daily[:6]
	_, err := svc.Create(ctx, "sup-1", in)
	assert.ErrorContains(t, err, "daily must have exactly 7 values")

	in = week("ANM001", "2025-03-17")
	in.Daily[2] = decimal.NewFromInt(-1)
	_, err = svc.Create(ctx, "sup-1", in)
	assert.ErrorContains(t, err, "daily value for Wed cannot be negative")

	_, err = svc.Create(ctx, "sup-1", week("ANM999", "2025-03-17"))
	assert.ErrorContains(t, err, "animal ANM999 does not exist")

	_, err = svc.Create(ctx, "sup-1", week("ANM001", ""))
	assert.ErrorContains(t, err, "week_start is required")
}

func TestService_OnePerAnimalAndWeek(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, "sup-1", week("ANM001", "2025-03-17"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, "sup-1", week("ANM001", "2025-03-21"))
	assert.ErrorIs(t, err, records.ErrConflict, "same week, other weekday")

	_, err = svc.Create(ctx, "sup-1", week("ANM002", "2025-03-17"))
	require.NoError(t, err)
	other, err := svc.Create(ctx, "sup-1", week("ANM001", "2025-03-24"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, first.ID, week("ANM001", "2025-03-18"))
	require.NoError(t, err, "re-saving the same week is not a duplicate")

	_, err = svc.Update(ctx, other.ID, week("ANM001", "2025-03-17"))
	assert.ErrorIs(t, err, records.ErrConflict)

	mine, err := svc.List(ctx, records.ListFilter{AnimalID: "anm001"})
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestService_Table(t *testing.T) {
	svc := newTestService()
	_, err := svc.Create(context.Background(), "sup-1", week("ANM001", "2025-03-17"))
	require.NoError(t, err)

	tbl, err := svc.Table(context.Background(), records.ListFilter{})
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	assert.Len(t, tbl.Rows[0], len(tbl.Columns))
}

// slowStore retrasa la escritura para que las altas concurrentes pasen todas el chequeo previo.
type slowStore struct {
	*memory.Store[Yield]
}

func (s slowStore) Create(ctx context.Context, y Yield) error {
	time.Sleep(time.Millisecond)
	return s.Store.Create(ctx, y)
}

func TestService_OnePerAnimalAndWeek_Concurrent(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 20, 8, 0, 0, 0, time.UTC))
	repo := slowStore{memory.NewStore(memory.WithUniqueKey(UniqueKey))}
	svc := NewService(repo, knownAnimals{"ANM001": true}, clock)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, "sup-1", week("ANM001", "2025-03-19"))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, records.ErrConflict)
	}
	assert.Equal(t, 1, ok)

	all, err := svc.List(ctx, records.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
