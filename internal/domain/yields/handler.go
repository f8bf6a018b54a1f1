package yields

import (
	"net/http"

	"dairy-records/internal/domain/records"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/yields", func(yr chi.Router) {
		yr.Get("/", listYieldsHandler(svc))
		yr.Post("/", createYieldHandler(svc))
		yr.Get("/export", records.ExportHandler("yields", svc.Table, svc.clock))

		yr.Get("/{id}", getYieldHandler(svc))
		yr.Put("/{id}", updateYieldHandler(svc))
		yr.Post("/{id}/toggle", toggleYieldHandler(svc))
		yr.Delete("/{id}", deleteYieldHandler(svc))
	})
}

type yieldResponse struct {
	ID           string            `json:"id"`
	AnimalID     string            `json:"animal_id"`
	WeekStart    string            `json:"week_start"`
	Daily        []decimal.Decimal `json:"daily" swaggertype:"array,string"`
	TotalYield   decimal.Decimal   `json:"total_yield" swaggertype:"string"`
	AverageDaily decimal.Decimal   `json:"average_daily" swaggertype:"string"`
	Notes        string            `json:"notes"`
	records.MetaResponse
}

func toYieldResponse(y Yield) yieldResponse {
	return yieldResponse{
		ID:           y.ID,
		AnimalID:     y.AnimalID,
		WeekStart:    records.FormatDate(y.WeekStart),
		Daily:        y.Daily,
		TotalYield:   y.TotalYield,
		AverageDaily: y.AverageDaily,
		Notes:        y.Notes,
		MetaResponse: y.Meta.Response(),
	}
}

// listYieldsHandler godoc
// @Summary Listar producción semanal
// @Tags yields
// @Produce json
// @Param q query string false "Busca en animal y notas"
// @Param from query string false "week_start mínimo (YYYY-MM-DD)"
// @Param to query string false "week_start máximo (YYYY-MM-DD)"
// @Param animal_id query string false "Tag del animal"
// @Param active query string false "true, false o all"
// @Param limit query int false "1-1000, por defecto 100"
// @Success 200 {array} yieldResponse
// @Router /yields [get]
func listYieldsHandler(svc *Service) http.HandlerFunc {
	return records.ListHandler(svc.List, toYieldResponse)
}

// createYieldHandler godoc
// @Summary Registrar semana de producción
// @Description daily: 7 valores en litros (lunes a domingo). week_start se lleva al lunes. Un registro por animal y semana.
// @Tags yields
// @Accept json
// @Produce json
// @Param payload body Input true "Semana"
// @Success 201 {object} yieldResponse
// @Failure 400 {string} string "validación / animal inexistente"
// @Failure 409 {string} string "semana duplicada"
// @Router /yields [post]
func createYieldHandler(svc *Service) http.HandlerFunc {
	return records.CreateHandler(svc.Create, toYieldResponse)
}

// @Summary Obtener semana de producción
// @Tags yields
// @Param id path string true "ID"
// @Success 200 {object} yieldResponse
// @Router /yields/{id} [get]
func getYieldHandler(svc *Service) http.HandlerFunc {
	return records.GetHandler(svc.GetByID, toYieldResponse)
}

// @Summary Editar semana de producción
// @Tags yields
// @Accept json
// @Param id path string true "ID"
// @Param payload body Input true "Semana"
// @Success 200 {object} yieldResponse
// @Failure 409 {string} string "semana duplicada"
// @Router /yields/{id} [put]
func updateYieldHandler(svc *Service) http.HandlerFunc {
	return records.UpdateHandler(svc.Update, toYieldResponse)
}

// @Summary Activar / desactivar semana
// @Tags yields
// @Param id path string true "ID"
// @Success 200 {object} yieldResponse
// @Router /yields/{id}/toggle [post]
func toggleYieldHandler(svc *Service) http.HandlerFunc {
	return records.ToggleHandler(svc.Toggle, toYieldResponse)
}

// @Summary Borrar semana
// @Tags yields
// @Param id path string true "ID"
// @Success 204
// @Router /yields/{id} [delete]
func deleteYieldHandler(svc *Service) http.HandlerFunc {
	return records.DeleteHandler(svc.Delete)
}
