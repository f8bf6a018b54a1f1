package records

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

// Los handlers CRUD son iguales en todos los módulos; cada módulo los envuelve con su
// documentación swagger y su función de vista (modelo -> JSON).

func ListHandler[T, R any](list func(context.Context, ListFilter) ([]T, error), view func(T) R) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := ParseListFilter(r)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		items, err := list(r.Context(), f)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, lo.Map(items, func(it T, _ int) R { return view(it) }))
	}
}

func GetHandler[T, R any](get func(context.Context, string) (T, error), view func(T) R) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			WriteError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, view(item))
	}
}

func CreateHandler[I, T, R any](create func(ctx context.Context, actor string, in I) (T, error), view func(T) R) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in I
		if err := DecodeJSON(r, &in); err != nil {
			WriteError(w, r, err)
			return
		}
		item, err := create(r.Context(), Actor(r), in)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusCreated, view(item))
	}
}

// UpdateHandler: PUT con reemplazo completo de los campos editables.
func UpdateHandler[I, T, R any](update func(ctx context.Context, id string, in I) (T, error), view func(T) R) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in I
		if err := DecodeJSON(r, &in); err != nil {
			WriteError(w, r, err)
			return
		}
		item, err := update(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, view(item))
	}
}

// ActionHandler es para POST /{id}/<acción> (decision, complete, administer).
func ActionHandler[I, T, R any](act func(ctx context.Context, id, actor string, in I) (T, error), view func(T) R) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in I
		if err := DecodeJSON(r, &in); err != nil {
			WriteError(w, r, err)
			return
		}
		item, err := act(r.Context(), chi.URLParam(r, "id"), Actor(r), in)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, view(item))
	}
}

func ToggleHandler[T, R any](toggle func(context.Context, string) (T, error), view func(T) R) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := toggle(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			WriteError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, view(item))
	}
}

func DeleteHandler(del func(context.Context, string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := del(r.Context(), chi.URLParam(r, "id")); err != nil {
			WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
