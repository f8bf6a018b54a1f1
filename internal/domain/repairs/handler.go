package repairs

import (
	"net/http"

	"dairy-records/internal/domain/records"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/repairs", func(rr chi.Router) {
		rr.Get("/", listRepairsHandler(svc))
		rr.Post("/", createRepairHandler(svc))
		rr.Get("/export", records.ExportHandler("repairs", svc.Table, svc.clock))

		rr.Get("/{id}", getRepairHandler(svc))
		rr.Put("/{id}", updateRepairHandler(svc))
		rr.Post("/{id}/complete", completeRepairHandler(svc))
		rr.Post("/{id}/toggle", toggleRepairHandler(svc))
		rr.Delete("/{id}", deleteRepairHandler(svc))
	})
}

type repairResponse struct {
	ID         string          `json:"id"`
	Shed       string          `json:"shed"`
	Issue      string          `json:"issue"`
	ReportedOn string          `json:"reported_on"`
	RepairedOn *string         `json:"repaired_on,omitempty"`
	Status     Status          `json:"status"`
	DaysOpen   int             `json:"days_open"`
	Technician string          `json:"technician"`
	Cost       decimal.Decimal `json:"cost" swaggertype:"string"`
	Notes      string          `json:"notes"`
	records.MetaResponse
}

func (s *Service) view(r Repair) repairResponse {
	return repairResponse{
		ID:           r.ID,
		Shed:         r.Shed,
		Issue:        r.Issue,
		ReportedOn:   records.FormatDate(r.ReportedOn),
		RepairedOn:   records.FormatDatePtr(r.RepairedOn),
		Status:       r.Status(),
		DaysOpen:     r.DaysOpen(records.Today(s.clock)),
		Technician:   r.Technician,
		Cost:         r.Cost,
		Notes:        r.Notes,
		MetaResponse: r.Meta.Response(),
	}
}

// listRepairsHandler godoc
// @Summary Listar reparaciones de galpones
// @Tags repairs
// @Produce json
// @Param q query string false "Busca en galpón, problema, técnico y notas"
// @Param from query string false "reported_on mínimo (YYYY-MM-DD)"
// @Param to query string false "reported_on máximo (YYYY-MM-DD)"
// @Param status query string false "open o completed"
// @Param active query string false "true, false o all"
// @Param limit query int false "1-1000, por defecto 100"
// @Success 200 {array} repairResponse
// @Router /repairs [get]
func listRepairsHandler(svc *Service) http.HandlerFunc {
	return records.ListHandler(svc.List, svc.view)
}

// createRepairHandler godoc
// @Summary Reportar reparación
// @Tags repairs
// @Accept json
// @Produce json
// @Param payload body Input true "Reparación"
// @Success 201 {object} repairResponse
// @Failure 400 {string} string "validación"
// @Router /repairs [post]
func createRepairHandler(svc *Service) http.HandlerFunc {
	return records.CreateHandler(svc.Create, svc.view)
}

// completeRepairHandler godoc
// @Summary Cerrar reparación
// @Tags repairs
// @Accept json
// @Produce json
// @Param id path string true "ID"
// @Param payload body CompleteInput true "Fecha y costo final"
// @Success 200 {object} repairResponse
// @Failure 400 {string} string "validación"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "ya completada"
// @Router /repairs/{id}/complete [post]
func completeRepairHandler(svc *Service) http.HandlerFunc {
	return records.ActionHandler(svc.Complete, svc.view)
}

// @Summary Obtener reparación
// @Tags repairs
// @Param id path string true "ID"
// @Success 200 {object} repairResponse
// @Router /repairs/{id} [get]
func getRepairHandler(svc *Service) http.HandlerFunc {
	return records.GetHandler(svc.GetByID, svc.view)
}

// @Summary Editar reparación
// @Tags repairs
// @Accept json
// @Param id path string true "ID"
// @Param payload body Input true "Reparación"
// @Success 200 {object} repairResponse
// @Router /repairs/{id} [put]
func updateRepairHandler(svc *Service) http.HandlerFunc {
	return records.UpdateHandler(svc.Update, svc.view)
}

// @Summary Activar / desactivar reparación
// @Tags repairs
// @Param id path string true "ID"
// @Success 200 {object} repairResponse
// @Router /repairs/{id}/toggle [post]
func toggleRepairHandler(svc *Service) http.HandlerFunc {
	return records.ToggleHandler(svc.Toggle, svc.view)
}

// @Summary Borrar reparación
// @Tags repairs
// @Param id path string true "ID"
// @Success 204
// @Router /repairs/{id} [delete]
func deleteRepairHandler(svc *Service) http.HandlerFunc {
	return records.DeleteHandler(svc.Delete)
}
