package categories

import (
	"net/http"

	"dairy-records/internal/domain/records"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/categories", func(cr chi.Router) {
		cr.Get("/", listCategoriesHandler(svc))
		cr.Post("/", createCategoryHandler(svc))
		cr.Get("/export", records.ExportHandler("categories", svc.Table, svc.clock))

		cr.Get("/{id}", getCategoryHandler(svc))
		cr.Get("/{id}/retain-until", retainUntilHandler(svc))
		cr.Put("/{id}", updateCategoryHandler(svc))
		cr.Post("/{id}/toggle", toggleCategoryHandler(svc))
		cr.Delete("/{id}", deleteCategoryHandler(svc))
	})
}

type categoryResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	RetentionMonths int    `json:"retention_months"`
	records.MetaResponse
}

type retainUntilResponse struct {
	CategoryID  string `json:"category_id"`
	Date        string `json:"date"`
	RetainUntil string `json:"retain_until"`
}

func toCategoryResponse(c Category) categoryResponse {
	return categoryResponse{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		RetentionMonths: c.RetentionMonths,
		MetaResponse:    c.Meta.Response(),
	}
}

// listCategoriesHandler godoc
// @Summary Listar categorías de retención
// @Tags categories
// @Produce json
// @Param q query string false "Busca en nombre y descripción"
// @Param from query string false "Creadas desde (YYYY-MM-DD)"
// @Param to query string false "Creadas hasta (YYYY-MM-DD)"
// @Param active query string false "true, false o all"
// @Success 200 {array} categoryResponse
// @Router /categories [get]
func listCategoriesHandler(svc *Service) http.HandlerFunc {
	return records.ListHandler(svc.List, toCategoryResponse)
}

// createCategoryHandler godoc
// @Summary Crear categoría
// @Tags categories
// @Accept json
// @Produce json
// @Param payload body Input true "Categoría"
// @Success 201 {object} categoryResponse
// @Failure 400 {string} string "validación"
// @Failure 409 {string} string "nombre duplicado"
// @Router /categories [post]
func createCategoryHandler(svc *Service) http.HandlerFunc {
	return records.CreateHandler(svc.Create, toCategoryResponse)
}

// retainUntilHandler godoc
// @Summary Fecha de retención
// @Description Devuelve date + retention_months (fin de mes si el día no existe).
// @Tags categories
// @Produce json
// @Param id path string true "ID de la categoría"
// @Param date query string false "Fecha del registro (YYYY-MM-DD), por defecto hoy"
// @Success 200 {object} retainUntilResponse
// @Failure 400 {string} string "fecha inválida"
// @Failure 404 {string} string "not found"
// @Router /categories/{id}/retain-until [get]
func retainUntilHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ret, err := svc.RetainUntil(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("date"))
		if err != nil {
			records.WriteError(w, r, err)
			return
		}
		records.WriteJSON(w, http.StatusOK, retainUntilResponse{
			CategoryID:  ret.CategoryID,
			Date:        records.FormatDate(ret.Date),
			RetainUntil: records.FormatDate(ret.RetainUntil),
		})
	}
}

// @Summary Obtener categoría
// @Tags categories
// @Param id path string true "ID"
// @Success 200 {object} categoryResponse
// @Router /categories/{id} [get]
func getCategoryHandler(svc *Service) http.HandlerFunc {
	return records.GetHandler(svc.GetByID, toCategoryResponse)
}

// @Summary Editar categoría
// @Tags categories
// @Accept json
// @Param id path string true "ID"
// @Param payload body Input true "Categoría"
// @Success 200 {object} categoryResponse
// @Failure 409 {string} string "nombre duplicado"
// @Router /categories/{id} [put]
func updateCategoryHandler(svc *Service) http.HandlerFunc {
	return records.UpdateHandler(svc.Update, toCategoryResponse)
}

// @Summary Activar / desactivar categoría
// @Tags categories
// @Param id path string true "ID"
// @Success 200 {object} categoryResponse
// @Router /categories/{id}/toggle [post]
func toggleCategoryHandler(svc *Service) http.HandlerFunc {
	return records.ToggleHandler(svc.Toggle, toCategoryResponse)
}

// @Summary Borrar categoría
// @Tags categories
// @Param id path string true "ID"
// @Success 204
// @Router /categories/{id} [delete]
func deleteCategoryHandler(svc *Service) http.HandlerFunc {
	return records.DeleteHandler(svc.Delete)
}
