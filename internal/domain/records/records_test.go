package records

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	id     string
	date   time.Time
	text   string
	active bool
}

func (r row) RecordID() string      { return r.id }
func (r row) RecordDate() time.Time { return r.date }
func (r row) SearchText() string    { return r.text }
func (r row) IsActive() bool        { return r.active }

func day(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseListFilter_Defaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/animals", nil)
	f, err := ParseListFilter(req)
	require.NoError(t, err)

	assert.Equal(t, DefaultLimit, f.Limit)
	assert.Nil(t, f.From)
	assert.Nil(t, f.To)
	assert.Nil(t, f.Active)
}

func TestParseListFilter_AllParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet,
		"/vaccinations?q=%20FMD%20&from=2025-01-01&to=2025-01-31T18:30:00Z&active=false&status=overdue&animal_id=ANM001&limit=5000", nil)
	f, err := ParseListFilter(req)
	require.NoError(t, err)

	assert.Equal(t, "FMD", f.Query)
	assert.Equal(t, day("2025-01-01"), *f.From)
	assert.Equal(t, day("2025-01-31"), *f.To)
	require.NotNil(t, f.Active)
	assert.False(t, *f.Active)
	assert.Equal(t, "overdue", f.Status)
	assert.Equal(t, "ANM001", f.AnimalID)
	assert.Equal(t, DefaultLimit, f.Limit, "limit over max falls back to default")
}

func TestParseListFilter_Errors(t *testing.T) {
	for _, qs := range []string{"from=01/02/2025", "to=yesterday", "active=maybe", "from=2025-02-01&to=2025-01-01"} {
		req := httptest.NewRequest(http.MethodGet, "/x?"+qs, nil)
		_, err := ParseListFilter(req)
		assert.ErrorIs(t, err, ErrInvalidInput, qs)
	}
}

func TestMatches(t *testing.T) {
	r := row{id: "1", date: day("2025-03-10"), text: "Gir cow shed B", active: true}
	from, to := day("2025-03-10"), day("2025-03-10")
	inactive := false

	assert.True(t, Matches(r, ListFilter{}))
	assert.True(t, Matches(r, ListFilter{Query: "SHED b", From: &from, To: &to}), "bounds are inclusive")
	assert.False(t, Matches(r, ListFilter{Query: "jersey"}))
	assert.False(t, Matches(r, ListFilter{Active: &inactive}))

	later := day("2025-03-11")
	assert.False(t, Matches(r, ListFilter{From: &later}))
}

func TestSortAndPage(t *testing.T) {
	items := []row{
		{id: "b", date: day("2025-01-01")},
		{id: "c", date: day("2025-02-01")},
		{id: "a", date: day("2025-01-01")},
	}
	Sort(items)

	assert.Equal(t, []string{"c", "a", "b"}, []string{items[0].id, items[1].id, items[2].id})
	assert.Len(t, Page(items, 2), 2)
	assert.Len(t, Page(items, 0), 3)
}

func TestMeta_Toggle(t *testing.T) {
	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	m := NewMeta(" sup-1 ", now)
	assert.True(t, m.Active)
	assert.Equal(t, "sup-1", m.CreatedBy)

	later := now.Add(time.Hour)
	m = m.Toggle(later)
	assert.False(t, m.Active)
	assert.Equal(t, now, m.CreatedAt)
	assert.Equal(t, later, m.UpdatedAt)
}

func TestWriteError_StatusMapping(t *testing.T) {
	cases := map[error]int{
		Invalid("name is required"):       http.StatusBadRequest,
		ErrNotFound:                       http.StatusNotFound,
		Conflict("id ANM001 exists"):      http.StatusConflict,
		BadState("approval already done"): http.StatusConflict,
		errors.New("db down"):             http.StatusInternalServerError,
	}
	for err, want := range cases {
		rec := httptest.NewRecorder()
		WriteError(rec, httptest.NewRequest(http.MethodGet, "/", nil), err)
		assert.Equal(t, want, rec.Code, err.Error())
	}

	rec := httptest.NewRecorder()
	WriteError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("secret dsn"))
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestOneOf(t *testing.T) {
	type sex string
	assert.NoError(t, OneOf("sex", sex("female"), "female", "male"))
	assert.ErrorContains(t, OneOf("sex", sex("x"), "female", "male"), "sex must be one of female, male")
}
