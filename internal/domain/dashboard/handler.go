package dashboard

import (
	"net/http"

	"dairy-records/internal/domain/records"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/dashboard", countsHandler(svc))
}

// countsHandler godoc
// @Summary Contadores del tablero
// @Description Animales y empleados activos, compras pendientes, inspecciones fallidas, vacunas vencidas y reparaciones abiertas (solo filas activas).
// @Tags dashboard
// @Produce json
// @Success 200 {object} Counts
// @Failure 401 {string} string "unauthorized"
// @Router /dashboard [get]
func countsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Counts(r.Context())
		if err != nil {
			records.WriteError(w, r, err)
			return
		}
		records.WriteJSON(w, http.StatusOK, c)
	}
}
