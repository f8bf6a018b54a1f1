package rejections

import (
	"net/http"

	"dairy-records/internal/domain/records"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/rejections", func(rr chi.Router) {
		rr.Get("/", listRejectionsHandler(svc))
		rr.Post("/", createRejectionHandler(svc))
		rr.Get("/export", records.ExportHandler("rejections", svc.Table, svc.clock))
		rr.Get("/summary", summaryHandler(svc))

		rr.Get("/{id}", getRejectionHandler(svc))
		rr.Put("/{id}", updateRejectionHandler(svc))
		rr.Post("/{id}/toggle", toggleRejectionHandler(svc))
		rr.Delete("/{id}", deleteRejectionHandler(svc))
	})
}

type rejectionResponse struct {
	ID             string              `json:"id"`
	RejectedOn     string              `json:"rejected_on"`
	Source         string              `json:"source"`
	QuantityLiters decimal.Decimal     `json:"quantity_liters" swaggertype:"string"`
	Reason         Reason              `json:"reason"`
	FatPercent     decimal.NullDecimal `json:"fat_percent" swaggertype:"string"`
	SNFPercent     decimal.NullDecimal `json:"snf_percent" swaggertype:"string"`
	RatePerLiter   decimal.Decimal     `json:"rate_per_liter" swaggertype:"string"`
	LossAmount     decimal.Decimal     `json:"loss_amount" swaggertype:"string"`
	RejectedBy     string              `json:"rejected_by"`
	Notes          string              `json:"notes"`
	records.MetaResponse
}

func toRejectionResponse(r Rejection) rejectionResponse {
	return rejectionResponse{
		ID:             r.ID,
		RejectedOn:     records.FormatDate(r.RejectedOn),
		Source:         r.Source,
		QuantityLiters: r.QuantityLiters,
		Reason:         r.Reason,
		FatPercent:     r.FatPercent,
		SNFPercent:     r.SNFPercent,
		RatePerLiter:   r.RatePerLiter,
		LossAmount:     r.LossAmount,
		RejectedBy:     r.RejectedBy,
		Notes:          r.Notes,
		MetaResponse:   r.Meta.Response(),
	}
}

// listRejectionsHandler godoc
// @Summary Listar rechazos de leche
// @Tags rejections
// @Produce json
// @Param q query string false "Busca en fuente, motivo, responsable y notas"
// @Param from query string false "rejected_on mínimo (YYYY-MM-DD)"
// @Param to query string false "rejected_on máximo (YYYY-MM-DD)"
// @Param status query string false "Motivo (high_acidity, low_fat, ...)"
// @Param active query string false "true, false o all"
// @Param limit query int false "1-1000, por defecto 100"
// @Success 200 {array} rejectionResponse
// @Router /rejections [get]
func listRejectionsHandler(svc *Service) http.HandlerFunc {
	return records.ListHandler(svc.List, toRejectionResponse)
}

// createRejectionHandler godoc
// @Summary Registrar rechazo
// @Description loss_amount = quantity_liters x rate_per_liter (2 decimales).
// @Tags rejections
// @Accept json
// @Produce json
// @Param payload body Input true "Rechazo"
// @Success 201 {object} rejectionResponse
// @Failure 400 {string} string "validación"
// @Router /rejections [post]
func createRejectionHandler(svc *Service) http.HandlerFunc {
	return records.CreateHandler(svc.Create, toRejectionResponse)
}

// summaryHandler godoc
// @Summary Litros y pérdida por motivo
// @Tags rejections
// @Produce json
// @Param from query string false "rejected_on mínimo (YYYY-MM-DD)"
// @Param to query string false "rejected_on máximo (YYYY-MM-DD)"
// @Success 200 {array} ReasonTotal
// @Router /rejections/summary [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := records.ParseListFilter(r)
		if err != nil {
			records.WriteError(w, r, err)
			return
		}
		out, err := svc.Summary(r.Context(), f)
		if err != nil {
			records.WriteError(w, r, err)
			return
		}
		records.WriteJSON(w, http.StatusOK, out)
	}
}

// @Summary Obtener rechazo
// @Tags rejections
// @Param id path string true "ID"
// @Success 200 {object} rejectionResponse
// @Failure 404 {string} string "not found"
// @Router /rejections/{id} [get]
func getRejectionHandler(svc *Service) http.HandlerFunc {
	return records.GetHandler(svc.GetByID, toRejectionResponse)
}

// @Summary Editar rechazo
// @Tags rejections
// @Accept json
// @Param id path string true "ID"
// @Param payload body Input true "Rechazo"
// @Success 200 {object} rejectionResponse
// @Router /rejections/{id} [put]
func updateRejectionHandler(svc *Service) http.HandlerFunc {
	return records.UpdateHandler(svc.Update, toRejectionResponse)
}

// @Summary Activar / desactivar rechazo
// @Tags rejections
// @Param id path string true "ID"
// @Success 200 {object} rejectionResponse
// @Router /rejections/{id}/toggle [post]
func toggleRejectionHandler(svc *Service) http.HandlerFunc {
	return records.ToggleHandler(svc.Toggle, toRejectionResponse)
}

// @Summary Borrar rechazo
// @Tags rejections
// @Param id path string true "ID"
// @Success 204
// @Router /rejections/{id} [delete]
func deleteRejectionHandler(svc *Service) http.HandlerFunc {
	return records.DeleteHandler(svc.Delete)
}
