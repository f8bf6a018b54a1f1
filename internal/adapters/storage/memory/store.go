// Package memory guarda filas en mapas protegidos por mutex. Se usa cuando no hay DB_DSN
// (dev y tests).
package memory

import (
	"context"
	"strings"
	"sync"

	"dairy-records/internal/domain/records"
)

// Store es un repo genérico: satisface el Repository de cualquier módulo de registros.
type Store[T records.Record] struct {
	mu   sync.RWMutex
	byID map[string]T

	// uniqueKey cumple el rol de un índice único de Postgres; "" no participa.
	uniqueKey func(T) string
}

type Option[T records.Record] func(*Store[T])

// WithUniqueKey rechaza con conflicto dos filas con la misma clave. Se valida bajo el
// mismo lock que la escritura.
func WithUniqueKey[T records.Record](key func(T) string) Option[T] {
	return func(s *Store[T]) { s.uniqueKey = key }
}

func NewStore[T records.Record](opts ...Option[T]) *Store[T] {
	s := &Store[T]{byID: make(map[string]T)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// checkUnique se llama con s.mu tomado.
func (s *Store[T]) checkUnique(item T) error {
	if s.uniqueKey == nil {
		return nil
	}
	key := s.uniqueKey(item)
	if key == "" {
		return nil
	}
	for id, other := range s.byID {
		if id != item.RecordID() && s.uniqueKey(other) == key {
			return records.Conflict("duplicate key %s", key)
		}
	}
	return nil
}

func (s *Store[T]) Create(_ context.Context, item T) error {
	id := item.RecordID()
	if strings.TrimSpace(id) == "" {
		return records.Invalid("id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; exists {
		return records.Conflict("id %s already exists", id)
	}
	if err := s.checkUnique(item); err != nil {
		return err
	}
	s.byID[id] = item
	return nil
}

func (s *Store[T]) Update(_ context.Context, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := item.RecordID()
	if _, exists := s.byID[id]; !exists {
		return records.ErrNotFound
	}
	if err := s.checkUnique(item); err != nil {
		return err
	}
	s.byID[id] = item
	return nil
}

func (s *Store[T]) GetByID(_ context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		var zero T
		return zero, records.ErrNotFound
	}
	return item, nil
}

func (s *Store[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id = strings.TrimSpace(id)
	if _, ok := s.byID[id]; !ok {
		return records.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

// List aplica q/from/to/active y ordena; el límite lo corta el servicio.
func (s *Store[T]) List(_ context.Context, f records.ListFilter) ([]T, error) {
	s.mu.RLock()
	out := make([]T, 0, len(s.byID))
	for _, item := range s.byID {
		if records.Matches(item, f) {
			out = append(out, item)
		}
	}
	s.mu.RUnlock()

	records.Sort(out)
	return out, nil
}

// IDs devuelve todos los ids (para generar el siguiente id natural).
func (s *Store[T]) IDs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.byID))
	for id := range s.byID {
		out = append(out, id)
	}
	return out, nil
}
