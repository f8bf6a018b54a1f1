package animals

import (
	"net/http"

	"dairy-records/internal/domain/records"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc))
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/next-id", nextIDHandler(svc))
		ar.Get("/export", records.ExportHandler("animals", svc.Table, svc.clock))

		ar.Get("/{id}", getAnimalHandler(svc))
		ar.Put("/{id}", updateAnimalHandler(svc))
		ar.Post("/{id}/toggle", toggleAnimalHandler(svc))
		ar.Delete("/{id}", deleteAnimalHandler(svc))
	})
}

type animalResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Breed      string   `json:"breed"`
	Sex        Sex      `json:"sex"`
	Category   Category `json:"category"`
	BirthDate  *string  `json:"birth_date,omitempty"`
	AgeMonths  int      `json:"age_months"`
	AcquiredOn string   `json:"acquired_on"`
	Shed       string   `json:"shed"`
	Notes      string   `json:"notes"`
	records.MetaResponse
}

type nextIDResponse struct {
	ID string `json:"id"`
}

func (s *Service) view(a Animal) animalResponse {
	return animalResponse{
		ID:           a.ID,
		Name:         a.Name,
		Breed:        a.Breed,
		Sex:          a.Sex,
		Category:     a.Category,
		BirthDate:    records.FormatDatePtr(a.BirthDate),
		AgeMonths:    a.AgeMonths(records.Today(s.clock)),
		AcquiredOn:   records.FormatDate(a.AcquiredOn),
		Shed:         a.Shed,
		Notes:        a.Notes,
		MetaResponse: a.Meta.Response(),
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Filtros comunes: q (id, nombre, raza, galpón, notas), from/to sobre acquired_on, active y limit.
// @Tags animals
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param q query string false "Búsqueda libre"
// @Param from query string false "Fecha mínima (YYYY-MM-DD)"
// @Param to query string false "Fecha máxima (YYYY-MM-DD)"
// @Param active query string false "true, false o all"
// @Param limit query int false "1-1000, por defecto 100"
// @Success 200 {array} animalResponse
// @Failure 400 {string} string "filtro inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return records.ListHandler(svc.List, svc.view)
}

// createAnimalHandler godoc
// @Summary Alta de animal
// @Description Si no se envía id, se asigna el siguiente ANMnnn.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body Input true "Datos del animal"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "validación"
// @Failure 409 {string} string "id duplicado"
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return records.CreateHandler(svc.Create, svc.view)
}

// nextIDHandler godoc
// @Summary Próximo id de animal
// @Tags animals
// @Produce json
// @Success 200 {object} nextIDResponse
// @Router /animals/next-id [get]
func nextIDHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := svc.NextID(r.Context())
		if err != nil {
			records.WriteError(w, r, err)
			return
		}
		records.WriteJSON(w, http.StatusOK, nextIDResponse{ID: id})
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal
// @Tags animals
// @Produce json
// @Param id path string true "Tag del animal"
// @Success 200 {object} animalResponse
// @Failure 404 {string} string "not found"
// @Router /animals/{id} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return records.GetHandler(svc.GetByID, svc.view)
}

// updateAnimalHandler godoc
// @Summary Editar animal
// @Description Reemplaza todos los campos editables (el id del body se ignora).
// @Tags animals
// @Accept json
// @Produce json
// @Param id path string true "Tag del animal"
// @Param payload body Input true "Datos del animal"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "validación"
// @Failure 404 {string} string "not found"
// @Router /animals/{id} [put]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return records.UpdateHandler(svc.Update, svc.view)
}

// toggleAnimalHandler godoc
// @Summary Activar / desactivar animal
// @Tags animals
// @Produce json
// @Param id path string true "Tag del animal"
// @Success 200 {object} animalResponse
// @Failure 404 {string} string "not found"
// @Router /animals/{id}/toggle [post]
func toggleAnimalHandler(svc *Service) http.HandlerFunc {
	return records.ToggleHandler(svc.Toggle, svc.view)
}

// deleteAnimalHandler godoc
// @Summary Borrar animal
// @Tags animals
// @Param id path string true "Tag del animal"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /animals/{id} [delete]
func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return records.DeleteHandler(svc.Delete)
}
