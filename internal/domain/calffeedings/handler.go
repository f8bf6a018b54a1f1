package calffeedings

import (
	"net/http"

	"dairy-records/internal/domain/records"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/calffeedings", func(cr chi.Router) {
		cr.Get("/", listFeedingsHandler(svc))
		cr.Post("/", createFeedingHandler(svc))
		cr.Get("/export", records.ExportHandler("calffeedings", svc.Table, svc.clock))
		cr.Get("/summary", summaryHandler(svc))

		cr.Get("/{id}", getFeedingHandler(svc))
		cr.Put("/{id}", updateFeedingHandler(svc))
		cr.Post("/{id}/toggle", toggleFeedingHandler(svc))
		cr.Delete("/{id}", deleteFeedingHandler(svc))
	})
}

type feedingResponse struct {
	ID             string          `json:"id"`
	CalfID         string          `json:"calf_id"`
	FedOn          string          `json:"fed_on"`
	Session        Session         `json:"session"`
	FeedType       FeedType        `json:"feed_type"`
	QuantityLiters decimal.Decimal `json:"quantity_liters" swaggertype:"string"`
	FedBy          string          `json:"fed_by"`
	Notes          string          `json:"notes"`
	records.MetaResponse
}

type dayTotalResponse struct {
	Date   string          `json:"date"`
	Liters decimal.Decimal `json:"liters" swaggertype:"string"`
}

type summaryResponse struct {
	CalfID         string             `json:"calf_id"`
	Days           []dayTotalResponse `json:"days"`
	TotalLiters    decimal.Decimal    `json:"total_liters" swaggertype:"string"`
	ColostrumTotal decimal.Decimal    `json:"colostrum_total" swaggertype:"string"`
}

func toFeedingResponse(f Feeding) feedingResponse {
	return feedingResponse{
		ID:             f.ID,
		CalfID:         f.CalfID,
		FedOn:          records.FormatDate(f.FedOn),
		Session:        f.Session,
		FeedType:       f.FeedType,
		QuantityLiters: f.QuantityLiters,
		FedBy:          f.FedBy,
		Notes:          f.Notes,
		MetaResponse:   f.Meta.Response(),
	}
}

// listFeedingsHandler godoc
// @Summary Listar alimentación de terneros
// @Tags calffeedings
// @Produce json
// @Param q query string false "Busca en ternero, tipo de alimento, responsable y notas"
// @Param from query string false "fed_on mínimo (YYYY-MM-DD)"
// @Param to query string false "fed_on máximo (YYYY-MM-DD)"
// @Param animal_id query string false "Tag del ternero"
// @Param status query string false "Tipo de alimento"
// @Param active query string false "true, false o all"
// @Param limit query int false "1-1000, por defecto 100"
// @Success 200 {array} feedingResponse
// @Router /calffeedings [get]
func listFeedingsHandler(svc *Service) http.HandlerFunc {
	return records.ListHandler(svc.List, toFeedingResponse)
}

// createFeedingHandler godoc
// @Summary Registrar toma
// @Tags calffeedings
// @Accept json
// @Produce json
// @Param payload body Input true "Toma"
// @Success 201 {object} feedingResponse
// @Failure 400 {string} string "validación / ternero inexistente"
// @Router /calffeedings [post]
func createFeedingHandler(svc *Service) http.HandlerFunc {
	return records.CreateHandler(svc.Create, toFeedingResponse)
}

// summaryHandler godoc
// @Summary Resumen por ternero
// @Description Litros por día y total de calostro (solo registros activos).
// @Tags calffeedings
// @Produce json
// @Param calf_id query string true "Tag del ternero"
// @Param from query string false "fed_on mínimo (YYYY-MM-DD)"
// @Param to query string false "fed_on máximo (YYYY-MM-DD)"
// @Success 200 {object} summaryResponse
// @Failure 400 {string} string "calf_id requerido"
// @Router /calffeedings/summary [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := records.ParseListFilter(r)
		if err != nil {
			records.WriteError(w, r, err)
			return
		}
		sum, err := svc.Summary(r.Context(), r.URL.Query().Get("calf_id"), f)
		if err != nil {
			records.WriteError(w, r, err)
			return
		}
		records.WriteJSON(w, http.StatusOK, summaryResponse{
			CalfID: sum.CalfID,
			Days: lo.Map(sum.Days, func(d DayTotal, _ int) dayTotalResponse {
				return dayTotalResponse{Date: records.FormatDate(d.Date), Liters: d.Liters}
			}),
			TotalLiters:    sum.TotalLiters,
			ColostrumTotal: sum.ColostrumTotal,
		})
	}
}

// @Summary Obtener toma
// @Tags calffeedings
// @Param id path string true "ID"
// @Success 200 {object} feedingResponse
// @Router /calffeedings/{id} [get]
func getFeedingHandler(svc *Service) http.HandlerFunc {
	return records.GetHandler(svc.GetByID, toFeedingResponse)
}

// @Summary Editar toma
// @Tags calffeedings
// @Accept json
// @Param id path string true "ID"
// @Param payload body Input true "Toma"
// @Success 200 {object} feedingResponse
// @Router /calffeedings/{id} [put]
func updateFeedingHandler(svc *Service) http.HandlerFunc {
	return records.UpdateHandler(svc.Update, toFeedingResponse)
}

// @Summary Activar / desactivar toma
// @Tags calffeedings
// @Param id path string true "ID"
// @Success 200 {object} feedingResponse
// @Router /calffeedings/{id}/toggle [post]
func toggleFeedingHandler(svc *Service) http.HandlerFunc {
	return records.ToggleHandler(svc.Toggle, toFeedingResponse)
}

// @Summary Borrar toma
// @Tags calffeedings
// @Param id path string true "ID"
// @Success 204
// @Router /calffeedings/{id} [delete]
func deleteFeedingHandler(svc *Service) http.HandlerFunc {
	return records.DeleteHandler(svc.Delete)
}
