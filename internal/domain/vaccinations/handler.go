package vaccinations

import (
	"net/http"

	"dairy-records/internal/domain/records"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vaccinations", func(vr chi.Router) {
		vr.Get("/", listVaccinationsHandler(svc))
		vr.Post("/", createVaccinationHandler(svc))
		vr.Get("/export", records.ExportHandler("vaccinations", svc.Table, svc.clock))

		vr.Get("/{id}", getVaccinationHandler(svc))
		vr.Put("/{id}", updateVaccinationHandler(svc))
		vr.Post("/{id}/administer", administerHandler(svc))
		vr.Post("/{id}/toggle", toggleVaccinationHandler(svc))
		vr.Delete("/{id}", deleteVaccinationHandler(svc))
	})
}

type vaccinationResponse struct {
	ID             string  `json:"id"`
	AnimalID       string  `json:"animal_id"`
	Vaccine        string  `json:"vaccine"`
	Dose           string  `json:"dose"`
	ScheduledOn    string  `json:"scheduled_on"`
	AdministeredOn *string `json:"administered_on,omitempty"`
	AdministeredBy string  `json:"administered_by"`
	NextDueOn      *string `json:"next_due_on,omitempty"`
	Notes          string  `json:"notes"`
	Status         Status  `json:"status"`
	records.MetaResponse
}

func (s *Service) view(v Vaccination) vaccinationResponse {
	return vaccinationResponse{
		ID:             v.ID,
		AnimalID:       v.AnimalID,
		Vaccine:        v.Vaccine,
		Dose:           v.Dose,
		ScheduledOn:    records.FormatDate(v.ScheduledOn),
		AdministeredOn: records.FormatDatePtr(v.AdministeredOn),
		AdministeredBy: v.AdministeredBy,
		NextDueOn:      records.FormatDatePtr(v.NextDueOn),
		Notes:          v.Notes,
		Status:         s.Status(v),
		MetaResponse:   v.Meta.Response(),
	}
}

// listVaccinationsHandler godoc
// @Summary Listar calendario de vacunación
// @Description status se calcula con la fecha de hoy: completed, overdue, due (próximos 7 días) o scheduled.
// @Tags vaccinations
// @Produce json
// @Param q query string false "Busca en animal, vacuna, aplicador y notas"
// @Param from query string false "scheduled_on mínimo (YYYY-MM-DD)"
// @Param to query string false "scheduled_on máximo (YYYY-MM-DD)"
// @Param status query string false "scheduled, due, overdue o completed"
// @Param animal_id query string false "Tag del animal"
// @Param active query string false "true, false o all"
// @Param limit query int false "1-1000, por defecto 100"
// @Success 200 {array} vaccinationResponse
// @Router /vaccinations [get]
func listVaccinationsHandler(svc *Service) http.HandlerFunc {
	return records.ListHandler(svc.List, svc.view)
}

// createVaccinationHandler godoc
// @Summary Programar vacunación
// @Tags vaccinations
// @Accept json
// @Produce json
// @Param payload body Input true "Vacunación"
// @Success 201 {object} vaccinationResponse
// @Failure 400 {string} string "validación / animal inexistente"
// @Router /vaccinations [post]
func createVaccinationHandler(svc *Service) http.HandlerFunc {
	return records.CreateHandler(svc.Create, svc.view)
}

// administerHandler godoc
// @Summary Registrar aplicación
// @Tags vaccinations
// @Accept json
// @Produce json
// @Param id path string true "ID"
// @Param payload body AdministerInput true "Fecha y aplicador; administered_on vacío = hoy"
// @Success 200 {object} vaccinationResponse
// @Failure 400 {string} string "validación"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "ya aplicada"
// @Router /vaccinations/{id}/administer [post]
func administerHandler(svc *Service) http.HandlerFunc {
	return records.ActionHandler(svc.Administer, svc.view)
}

// @Summary Obtener vacunación
// @Tags vaccinations
// @Param id path string true "ID"
// @Success 200 {object} vaccinationResponse
// @Router /vaccinations/{id} [get]
func getVaccinationHandler(svc *Service) http.HandlerFunc {
	return records.GetHandler(svc.GetByID, svc.view)
}

// @Summary Editar vacunación
// @Tags vaccinations
// @Accept json
// @Param id path string true "ID"
// @Param payload body Input true "Vacunación"
// @Success 200 {object} vaccinationResponse
// @Router /vaccinations/{id} [put]
func updateVaccinationHandler(svc *Service) http.HandlerFunc {
	return records.UpdateHandler(svc.Update, svc.view)
}

// @Summary Activar / desactivar vacunación
// @Tags vaccinations
// @Param id path string true "ID"
// @Success 200 {object} vaccinationResponse
// @Router /vaccinations/{id}/toggle [post]
func toggleVaccinationHandler(svc *Service) http.HandlerFunc {
	return records.ToggleHandler(svc.Toggle, svc.view)
}

// @Summary Borrar vacunación
// @Tags vaccinations
// @Param id path string true "ID"
// @Success 204
// @Router /vaccinations/{id} [delete]
func deleteVaccinationHandler(svc *Service) http.HandlerFunc {
	return records.DeleteHandler(svc.Delete)
}
