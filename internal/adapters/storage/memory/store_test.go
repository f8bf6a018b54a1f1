package memory

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"dairy-records/internal/domain/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	records.Meta
	ID   string
	Day  time.Time
	Text string
}

func (i item) RecordID() string      { return i.ID }
func (i item) RecordDate() time.Time { return i.Day }
func (i item) SearchText() string    { return i.Text }

func date(s string) time.Time {
	t, _ := records.ParseDate(s)
	return t
}

func TestStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := NewStore[item]()

	a := item{Meta: records.Meta{Active: true}, ID: "a", Day: date("2025-01-02"), Text: "Shed A roof"}
	require.NoError(t, s.Create(ctx, a))
	assert.ErrorIs(t, s.Create(ctx, a), records.ErrConflict)
	assert.ErrorIs(t, s.Create(ctx, item{}), records.ErrInvalidInput)

	a.Text = "Shed A gutter"
	require.NoError(t, s.Update(ctx, a))
	got, err := s.GetByID(ctx, " a ")
	require.NoError(t, err)
	assert.Equal(t, "Shed A gutter", got.Text)

	assert.ErrorIs(t, s.Update(ctx, item{ID: "zz"}), records.ErrNotFound)

	require.NoError(t, s.Delete(ctx, "a"))
	assert.ErrorIs(t, s.Delete(ctx, "a"), records.ErrNotFound)
	_, err = s.GetByID(ctx, "a")
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestStore_ListFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	s := NewStore[item]()
	for _, it := range []item{
		{Meta: records.Meta{Active: true}, ID: "2", Day: date("2025-03-01"), Text: "feed"},
		{Meta: records.Meta{Active: false}, ID: "1", Day: date("2025-03-01"), Text: "water"},
		{Meta: records.Meta{Active: true}, ID: "3", Day: date("2025-04-01"), Text: "feed"},
	} {
		require.NoError(t, s.Create(ctx, it))
	}

	all, err := s.List(ctx, records.ListFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, all, 3, "the store never applies the limit")
	assert.Equal(t, []string{"3", "1", "2"}, []string{all[0].ID, all[1].ID, all[2].ID})

	active := true
	to := date("2025-03-31")
	got, err := s.List(ctx, records.ListFilter{Query: "FEED", Active: &active, To: &to})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	ids, err := s.IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "2", "3"}, ids)
}

func TestStore_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	s := NewStore[item]()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.Create(ctx, item{ID: "same"})
		}()
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
		}
	}
	assert.Equal(t, 1, ok)
}

func byText(i item) string { return strings.ToLower(i.Text) }

func TestStore_UniqueKey(t *testing.T) {
	ctx := context.Background()
	s := NewStore(WithUniqueKey(byText))

	require.NoError(t, s.Create(ctx, item{ID: "1", Text: "Payroll"}))
	assert.ErrorIs(t, s.Create(ctx, item{ID: "2", Text: "PAYROLL"}), records.ErrConflict)
	require.NoError(t, s.Create(ctx, item{ID: "2", Text: "Invoices"}))

	assert.ErrorIs(t, s.Update(ctx, item{ID: "2", Text: "payroll"}), records.ErrConflict)
	require.NoError(t, s.Update(ctx, item{ID: "1", Text: "payroll"}), "same row keeps its key")

	got, err := s.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Invoices", got.Text)

	// clave vacía no participa
	require.NoError(t, s.Create(ctx, item{ID: "3"}))
	require.NoError(t, s.Create(ctx, item{ID: "4"}))
}

func TestStore_UniqueKeyConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	s := NewStore(WithUniqueKey(byText))

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- s.Create(ctx, item{ID: strconv.Itoa(i), Text: "ANM001|2025-03-17"})
		}(i)
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, records.ErrConflict)
		}
	}
	assert.Equal(t, 1, ok)

	ids, err := s.IDs(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}
