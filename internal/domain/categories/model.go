package categories

import (
	"strings"
	"time"

	"dairy-records/internal/domain/records"
)

// Category define cuánto tiempo se conservan los registros de un tipo.
type Category struct {
	records.Meta

	ID              string
	Name            string
	Description     string
	RetentionMonths int
}

func (c Category) RecordID() string { return c.ID }

// RecordDate: fecha UTC de created_at, igual que el filtro en Postgres.
func (c Category) RecordDate() time.Time { return records.DateOf(c.CreatedAt.UTC()) }

func (c Category) SearchText() string { return records.JoinSearch(c.Name, c.Description) }

// UniqueKey: el nombre es único sin distinguir mayúsculas.
func UniqueKey(c Category) string { return strings.ToLower(strings.TrimSpace(c.Name)) }

// RetainUntil suma RetentionMonths a la fecha. Si el día no existe en el mes destino
// (31 de enero + 1 mes) se usa el último día de ese mes.
func (c Category) RetainUntil(date time.Time) time.Time {
	d := records.DateOf(date)
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, c.RetentionMonths, 0)
	lastDay := first.AddDate(0, 1, -1).Day()
	day := d.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
