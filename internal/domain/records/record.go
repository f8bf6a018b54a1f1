// Package records junta lo que comparten todos los módulos de registros:
// filtro de listas, fechas, errores y helpers HTTP/export.
package records

import (
	"sort"
	"strings"
	"time"
)

// Record es lo mínimo que un storage necesita para filtrar y ordenar una fila.
type Record interface {
	RecordID() string
	// RecordDate es la fecha usada para rango from/to y orden.
	RecordDate() time.Time
	// SearchText concatena los campos buscables con q.
	SearchText() string
	IsActive() bool
}

// Meta son los campos comunes de todas las filas.
type Meta struct {
	Active    bool
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewMeta(actor string, now time.Time) Meta {
	return Meta{
		Active:    true,
		CreatedBy: strings.TrimSpace(actor),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (m Meta) IsActive() bool { return m.Active }

// MetaResponse se embebe en las respuestas JSON de cada módulo.
type MetaResponse struct {
	Active    bool      `json:"active"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m Meta) Response() MetaResponse {
	return MetaResponse{
		Active:    m.Active,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// Touch conserva los campos de alta y actualiza updated_at.
func (m Meta) Touch(now time.Time) Meta {
	m.UpdatedAt = now
	return m
}

// Toggle invierte active (soft-toggle).
func (m Meta) Toggle(now time.Time) Meta {
	m.Active = !m.Active
	m.UpdatedAt = now
	return m
}

// Matches aplica q / from / to / active. Status y animal_id los filtra cada servicio.
func Matches(r Record, f ListFilter) bool {
	if f.Active != nil && r.IsActive() != *f.Active {
		return false
	}
	d := DateOf(r.RecordDate())
	if f.From != nil && d.Before(*f.From) {
		return false
	}
	if f.To != nil && d.After(*f.To) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(r.SearchText()), q) {
			return false
		}
	}
	return true
}

// Sort ordena por fecha desc y luego id asc (mismo orden que el storage postgres).
func Sort[T Record](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := DateOf(items[i].RecordDate()), DateOf(items[j].RecordDate())
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return items[i].RecordID() < items[j].RecordID()
	})
}

// Page recorta al límite del filtro (0 = sin límite).
func Page[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// JoinSearch arma SearchText con los campos no vacíos.
func JoinSearch(fields ...string) string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return strings.Join(out, " ")
}
