package approvals

import (
	"net/http"
	"time"

	"dairy-records/internal/domain/records"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/approvals", func(ar chi.Router) {
		ar.Get("/", listApprovalsHandler(svc))
		ar.Post("/", createApprovalHandler(svc))
		ar.Get("/export", records.ExportHandler("approvals", svc.Table, svc.clock))
		ar.Get("/summary", summaryHandler(svc))

		ar.Get("/{id}", getApprovalHandler(svc))
		ar.Put("/{id}", updateApprovalHandler(svc))
		ar.Post("/{id}/decision", decideApprovalHandler(svc))
		ar.Post("/{id}/toggle", toggleApprovalHandler(svc))
		ar.Delete("/{id}", deleteApprovalHandler(svc))
	})
}

type approvalResponse struct {
	ID          string          `json:"id"`
	Item        string          `json:"item"`
	Vendor      string          `json:"vendor"`
	Quantity    decimal.Decimal `json:"quantity" swaggertype:"string"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"string"`
	TotalCost   decimal.Decimal `json:"total_cost" swaggertype:"string"`
	RequestedBy string          `json:"requested_by"`
	RequestedOn string          `json:"requested_on"`
	Status      Status          `json:"status"`
	DecidedBy   string          `json:"decided_by,omitempty"`
	DecidedAt   *time.Time      `json:"decided_at,omitempty"`
	Remarks     string          `json:"remarks"`
	records.MetaResponse
}

func toApprovalResponse(a Approval) approvalResponse {
	return approvalResponse{
		ID:           a.ID,
		Item:         a.Item,
		Vendor:       a.Vendor,
		Quantity:     a.Quantity,
		Unit:         a.Unit,
		UnitPrice:    a.UnitPrice,
		TotalCost:    a.TotalCost,
		RequestedBy:  a.RequestedBy,
		RequestedOn:  records.FormatDate(a.RequestedOn),
		Status:       a.Status,
		DecidedBy:    a.DecidedBy,
		DecidedAt:    a.DecidedAt,
		Remarks:      a.Remarks,
		MetaResponse: a.Meta.Response(),
	}
}

// listApprovalsHandler godoc
// @Summary Listar solicitudes de compra
// @Tags approvals
// @Produce json
// @Param q query string false "Busca en item, proveedor, solicitante y observaciones"
// @Param from query string false "requested_on mínimo (YYYY-MM-DD)"
// @Param to query string false "requested_on máximo (YYYY-MM-DD)"
// @Param status query string false "pending, approved o rejected"
// @Param active query string false "true, false o all"
// @Param limit query int false "1-1000, por defecto 100"
// @Success 200 {array} approvalResponse
// @Failure 400 {string} string "filtro inválido"
// @Router /approvals [get]
func listApprovalsHandler(svc *Service) http.HandlerFunc {
	return records.ListHandler(svc.List, toApprovalResponse)
}

// createApprovalHandler godoc
// @Summary Nueva solicitud de compra
// @Description total_cost se calcula como quantity x unit_price. Siempre nace pending.
// @Tags approvals
// @Accept json
// @Produce json
// @Param payload body Input true "Solicitud"
// @Success 201 {object} approvalResponse
// @Failure 400 {string} string "validación"
// @Router /approvals [post]
func createApprovalHandler(svc *Service) http.HandlerFunc {
	return records.CreateHandler(svc.Create, toApprovalResponse)
}

// summaryHandler godoc
// @Summary Total comprometido por estado
// @Tags approvals
// @Produce json
// @Success 200 {object} map[string]string
// @Router /approvals/summary [get]
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

// getApprovalHandler godoc
// @Summary Obtener solicitud
// @Tags approvals
// @Produce json
// @Param id path string true "ID de la solicitud"
// @Success 200 {object} approvalResponse
// @Failure 404 {string} string "not found"
// @Router /approvals/{id} [get]
func getApprovalHandler(svc *Service) http.HandlerFunc {
	return records.GetHandler(svc.GetByID, toApprovalResponse)
}

// updateApprovalHandler godoc
// @Summary Editar solicitud pendiente
// @Tags approvals
// @Accept json
// @Produce json
// @Param id path string true "ID de la solicitud"
// @Param payload body Input true "Solicitud"
// @Success 200 {object} approvalResponse
// @Failure 400 {string} string "validación"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "ya decidida"
// @Router /approvals/{id} [put]
func updateApprovalHandler(svc *Service) http.HandlerFunc {
	return records.UpdateHandler(svc.Update, toApprovalResponse)
}

// decideApprovalHandler godoc
// @Summary Aprobar o rechazar
// @Tags approvals
// @Accept json
// @Produce json
// @Param id path string true "ID de la solicitud"
// @Param payload body DecisionInput true "decision: approved | rejected"
// @Success 200 {object} approvalResponse
// @Failure 400 {string} string "decision inválida"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "ya decidida"
// @Router /approvals/{id}/decision [post]
func decideApprovalHandler(svc *Service) http.HandlerFunc {
	return records.ActionHandler(svc.Decide, toApprovalResponse)
}

// toggleApprovalHandler godoc
// @Summary Activar / desactivar solicitud
// @Tags approvals
// @Produce json
// @Param id path string true "ID de la solicitud"
// @Success 200 {object} approvalResponse
// @Router /approvals/{id}/toggle [post]
func toggleApprovalHandler(svc *Service) http.HandlerFunc {
	return records.ToggleHandler(svc.Toggle, toApprovalResponse)
}

// deleteApprovalHandler godoc
// @Summary Borrar solicitud
// @Tags approvals
// @Param id path string true "ID de la solicitud"
// @Success 204
// @Router /approvals/{id} [delete]
func deleteApprovalHandler(svc *Service) http.HandlerFunc {
	return records.DeleteHandler(svc.Delete)
}
