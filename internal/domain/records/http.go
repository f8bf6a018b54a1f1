package records

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"dairy-records/internal/middleware"
	"dairy-records/internal/platform/export"
	"dairy-records/internal/platform/logger"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Antes writeJSON estaba duplicado por módulo; con diez módulos de registros ya conviene
// tenerlo en un solo lugar.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError mapea los errores de dominio a status + texto plano (la UI lo muestra inline).
// Los 500 se loguean y no exponen detalle.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, export.ErrUnknownFormat):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrConflict), errors.Is(err, ErrBadState):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		logger.FromContext(r.Context()).Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// DecodeJSON decodifica el body rechazando campos desconocidos.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return Invalid("invalid json: %v", err)
	}
	return nil
}

// Actor devuelve el user id del request. Las rutas de registros pasan por
// middleware.RequireUser, así que acá siempre hay claims.
func Actor(r *http.Request) string {
	c, _ := middleware.GetClaims(r.Context())
	return strings.TrimSpace(c.UserID)
}

// TableFunc arma la tabla exportable de un módulo para un filtro.
type TableFunc func(ctx context.Context, f ListFilter) (export.Table, error)

// Source describe una pantalla: nombre de recurso, título y su tabla.
type Source struct {
	Name  string
	Title string
	Table TableFunc
}

// ExportHandler sirve /{resource}/export?format=xlsx|csv con los mismos filtros que la lista.
func ExportHandler(name string, table TableFunc, clock clockwork.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, err := export.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			WriteError(w, r, err)
			return
		}
		filter, err := ParseListFilter(r)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		filter.Limit = 0 // export completo

		t, err := table(r.Context(), filter)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(name, format, clock.Now())+`"`)
		if err := export.Write(w, t, format); err != nil {
			// headers ya enviados: solo log
			logger.FromContext(r.Context()).Error("export failed", zap.String("resource", name), zap.Error(err))
		}
	}
}
