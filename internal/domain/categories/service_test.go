package categories

import (
	"context"
	"sync"
	"testing"
	"time"

	"dairy-records/internal/adapters/storage/memory"
	"dairy-records/internal/domain/records"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC))
	return NewService(memory.NewStore[Category](), clock), clock
}

func TestCategory_RetainUntil(t *testing.T) {
	cases := []struct {
		months   int
		from, to string
	}{
		{12, "2025-03-15", "2026-03-15"},
		{1, "2025-01-31", "2025-02-28"},
		{13, "2023-01-31", "2024-02-29"},
		{84, "2025-06-30", "2032-06-30"},
	}
	for _, tc := range cases {
		d, err := records.ParseDate(tc.from)
		require.NoError(t, err)
		got := Category{RetentionMonths: tc.months}.RetainUntil(d)
		assert.Equal(t, tc.to, records.FormatDate(got), "%s + %d", tc.from, tc.months)
	}
}

func TestService_UniqueNameCaseInsensitive(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	c, err := svc.Create(ctx, "sup-1", Input{Name: "Milk Sales", RetentionMonths: 96})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "sup-1", Input{Name: " milk sales ", RetentionMonths: 12})
	assert.ErrorIs(t, err, records.ErrConflict)

	_, err = svc.Update(ctx, c.ID, Input{Name: "MILK SALES", Description: "invoices", RetentionMonths: 84})
	require.NoError(t, err, "renaming to its own name is allowed")

	other, err := svc.Create(ctx, "sup-1", Input{Name: "Vet bills", RetentionMonths: 36})
	require.NoError(t, err)
	_, err = svc.Update(ctx, other.ID, Input{Name: "milk sales", RetentionMonths: 36})
	assert.ErrorIs(t, err, records.ErrConflict)
}

func TestService_Validation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "sup-1", Input{Name: "Payroll", RetentionMonths: 0})
	assert.ErrorContains(t, err, "retention_months must be greater than 0")

	_, err = svc.Create(ctx, "sup-1", Input{Name: "", RetentionMonths: 3})
	assert.ErrorContains(t, err, "name is required")
}

func TestService_RetainUntil(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	c, err := svc.Create(ctx, "sup-1", Input{Name: "Payroll", RetentionMonths: 6})
	require.NoError(t, err)

	ret, err := svc.RetainUntil(ctx, c.ID, "2025-08-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", records.FormatDate(ret.RetainUntil))

	ret, err = svc.RetainUntil(ctx, c.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-10", records.FormatDate(ret.Date))
	assert.Equal(t, "2025-07-10", records.FormatDate(ret.RetainUntil))

	_, err = svc.RetainUntil(ctx, c.ID, "31-08-2025")
	assert.ErrorIs(t, err, records.ErrInvalidInput)

	_, err = svc.RetainUntil(ctx, "missing", "")
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestService_RecordDateIsCreation(t *testing.T) {
	svc, clock := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "sup-1", Input{Name: "Old", RetentionMonths: 1})
	require.NoError(t, err)
	clock.Advance(40 * 24 * time.Hour)
	_, err = svc.Create(ctx, "sup-1", Input{Name: "New", RetentionMonths: 1})
	require.NoError(t, err)

	from, _ := records.ParseDate("2025-02-01")
	got, err := svc.List(ctx, records.ListFilter{From: &from})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "New", got[0].Name)
}

func TestService_RecordDateUsesUTC(t *testing.T) {
	// 2025-02-01 02:00 en IST es 2025-01-31 20:30 UTC.
	ist := time.FixedZone("IST", 5*3600+1800)
	clock := clockwork.NewFakeClockAt(time.Date(2025, 2, 1, 2, 0, 0, 0, ist))
	svc := NewService(memory.NewStore[Category](), clock)
	ctx := context.Background()

	c, err := svc.Create(ctx, "sup-1", Input{Name: "Payroll", RetentionMonths: 84})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-31", records.FormatDate(c.RecordDate()))

	day, _ := records.ParseDate("2025-01-31")
	got, err := svc.List(ctx, records.ListFilter{From: &day, To: &day})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	next, _ := records.ParseDate("2025-02-01")
	got, err = svc.List(ctx, records.ListFilter{From: &next})
	require.NoError(t, err)
	assert.Empty(t, got)
}

type slowStore struct {
	*memory.Store[Category]
}

func (s slowStore) Create(ctx context.Context, c Category) error {
	time.Sleep(time.Millisecond)
	return s.Store.Create(ctx, c)
}

func TestService_UniqueName_Concurrent(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC))
	svc := NewService(slowStore{memory.NewStore(memory.WithUniqueKey(UniqueKey))}, clock)
	ctx := context.Background()

	names := []string{"Payroll", "payroll", " PAYROLL ", "PayRoll", "payroll", "Payroll", "pAYROLL", "payroll"}
	var wg sync.WaitGroup
	errs := make(chan error, len(names))
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			_, err := svc.Create(ctx, "sup-1", Input{Name: name, RetentionMonths: 84})
			errs <- err
		}(name)
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
}
