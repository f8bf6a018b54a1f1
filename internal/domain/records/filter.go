package records

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000

	dateLayout = "2006-01-02"
)

type ListFilter struct {
	Query string
	// From / To son fechas (medianoche UTC), ambas inclusivas.
	From   *time.Time
	To     *time.Time
	Active *bool
	// Status depende del módulo (approval status, inspection result, etc).
	Status   string
	AnimalID string
	Limit    int
}

// ParseListFilter lee q, from, to, active, status, animal_id y limit del query string.
func ParseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()

	limit := DefaultLimit
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= MaxLimit {
			limit = n
		}
	}

	f := ListFilter{
		Query:    strings.TrimSpace(q.Get("q")),
		Status:   strings.TrimSpace(q.Get("status")),
		AnimalID: strings.TrimSpace(q.Get("animal_id")),
		Limit:    limit,
	}

	if v := strings.TrimSpace(q.Get("from")); v != "" {
		t, err := ParseDate(v)
		if err != nil {
			return ListFilter{}, Invalid("from must be YYYY-MM-DD or RFC3339")
		}
		f.From = &t
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		t, err := ParseDate(v)
		if err != nil {
			return ListFilter{}, Invalid("to must be YYYY-MM-DD or RFC3339")
		}
		f.To = &t
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return ListFilter{}, Invalid("from must not be after to")
	}

	switch v := strings.ToLower(strings.TrimSpace(q.Get("active"))); v {
	case "", "all":
	case "true", "1", "yes":
		f.Active = lo.ToPtr(true)
	case "false", "0", "no":
		f.Active = lo.ToPtr(false)
	default:
		return ListFilter{}, Invalid("active must be true, false or all")
	}

	return f, nil
}

// ParseDate acepta YYYY-MM-DD o RFC3339 y devuelve la fecha (medianoche UTC).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// ParseOptionalDate: "" => nil.
func ParseOptionalDate(field, s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, Invalid("%s must be YYYY-MM-DD", field)
	}
	return &t, nil
}

// ParseRequiredDate: "" => error del campo.
func ParseRequiredDate(field, s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, Invalid("%s is required", field)
	}
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, Invalid("%s must be YYYY-MM-DD", field)
	}
	return t, nil
}

// DateOf trunca a la fecha calendario, conservando año/mes/día de la zona de t.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Today(clock clockwork.Clock) time.Time {
	return DateOf(clock.Now())
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}
