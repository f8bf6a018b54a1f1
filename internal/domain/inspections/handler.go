package inspections

import (
	"net/http"

	"dairy-records/internal/domain/records"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/inspections", func(ir chi.Router) {
		ir.Get("/", listInspectionsHandler(svc))
		ir.Post("/", createInspectionHandler(svc))
		ir.Get("/export", records.ExportHandler("inspections", svc.Table, svc.clock))

		ir.Get("/{id}", getInspectionHandler(svc))
		ir.Put("/{id}", updateInspectionHandler(svc))
		ir.Post("/{id}/toggle", toggleInspectionHandler(svc))
		ir.Delete("/{id}", deleteInspectionHandler(svc))
	})
}

type inspectionResponse struct {
	ID              string              `json:"id"`
	Kind            Kind                `json:"kind"`
	Source          string              `json:"source"`
	InspectedOn     string              `json:"inspected_on"`
	Inspector       string              `json:"inspector"`
	PH              decimal.NullDecimal `json:"ph" swaggertype:"string"`
	TDSPPM          decimal.NullDecimal `json:"tds_ppm" swaggertype:"string"`
	MoisturePercent decimal.NullDecimal `json:"moisture_percent" swaggertype:"string"`
	Appearance      string              `json:"appearance"`
	Remarks         string              `json:"remarks"`
	Result          Result              `json:"result"`
	Findings        []string            `json:"findings"`
	records.MetaResponse
}

func toInspectionResponse(i Inspection) inspectionResponse {
	findings := i.Findings()
	if findings == nil {
		findings = []string{}
	}
	return inspectionResponse{
		ID:              i.ID,
		Kind:            i.Kind,
		Source:          i.Source,
		InspectedOn:     records.FormatDate(i.InspectedOn),
		Inspector:       i.Inspector,
		PH:              i.PH,
		TDSPPM:          i.TDSPPM,
		MoisturePercent: i.MoisturePercent,
		Appearance:      i.Appearance,
		Remarks:         i.Remarks,
		Result:          i.Result,
		Findings:        findings,
		MetaResponse:    i.Meta.Response(),
	}
}

// listInspectionsHandler godoc
// @Summary Listar inspecciones de agua y alimento
// @Tags inspections
// @Produce json
// @Param q query string false "Busca en tipo, fuente, inspector, aspecto y observaciones"
// @Param from query string false "inspected_on mínimo (YYYY-MM-DD)"
// @Param to query string false "inspected_on máximo (YYYY-MM-DD)"
// @Param status query string false "pass o fail"
// @Param active query string false "true, false o all"
// @Param limit query int false "1-1000, por defecto 100"
// @Success 200 {array} inspectionResponse
// @Failure 400 {string} string "filtro inválido"
// @Router /inspections [get]
func listInspectionsHandler(svc *Service) http.HandlerFunc {
	return records.ListHandler(svc.List, toInspectionResponse)
}

// createInspectionHandler godoc
// @Summary Registrar inspección
// @Description water requiere ph y tds_ppm; feed requiere moisture_percent. result se calcula.
// @Tags inspections
// @Accept json
// @Produce json
// @Param payload body Input true "Inspección"
// @Success 201 {object} inspectionResponse
// @Failure 400 {string} string "validación"
// @Router /inspections [post]
func createInspectionHandler(svc *Service) http.HandlerFunc {
	return records.CreateHandler(svc.Create, toInspectionResponse)
}

// getInspectionHandler godoc
// @Summary Obtener inspección
// @Tags inspections
// @Produce json
// @Param id path string true "ID"
// @Success 200 {object} inspectionResponse
// @Failure 404 {string} string "not found"
// @Router /inspections/{id} [get]
func getInspectionHandler(svc *Service) http.HandlerFunc {
	return records.GetHandler(svc.GetByID, toInspectionResponse)
}

// updateInspectionHandler godoc
// @Summary Editar inspección
// @Tags inspections
// @Accept json
// @Produce json
// @Param id path string true "ID"
// @Param payload body Input true "Inspección"
// @Success 200 {object} inspectionResponse
// @Router /inspections/{id} [put]
func updateInspectionHandler(svc *Service) http.HandlerFunc {
	return records.UpdateHandler(svc.Update, toInspectionResponse)
}

// @Summary Activar / desactivar inspección
// @Tags inspections
// @Param id path string true "ID"
// @Success 200 {object} inspectionResponse
// @Router /inspections/{id}/toggle [post]
func toggleInspectionHandler(svc *Service) http.HandlerFunc {
	return records.ToggleHandler(svc.Toggle, toInspectionResponse)
}

// @Summary Borrar inspección
// @Tags inspections
// @Param id path string true "ID"
// @Success 204
// @Router /inspections/{id} [delete]
func deleteInspectionHandler(svc *Service) http.HandlerFunc {
	return records.DeleteHandler(svc.Delete)
}
