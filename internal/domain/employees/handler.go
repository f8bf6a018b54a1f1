package employees

import (
	"net/http"

	"dairy-records/internal/domain/records"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/employees", func(er chi.Router) {
		er.Get("/", listEmployeesHandler(svc))
		er.Post("/", createEmployeeHandler(svc))
		er.Get("/next-id", nextIDHandler(svc))
		er.Get("/export", records.ExportHandler("employees", svc.Table, svc.clock))

		er.Get("/{id}", getEmployeeHandler(svc))
		er.Put("/{id}", updateEmployeeHandler(svc))
		er.Post("/{id}/toggle", toggleEmployeeHandler(svc))
		er.Delete("/{id}", deleteEmployeeHandler(svc))
	})
}

type employeeResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Role          string          `json:"role"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	JoinedOn      string          `json:"joined_on"`
	MonthlySalary decimal.Decimal `json:"monthly_salary" swaggertype:"string"`
	Notes         string          `json:"notes"`
	records.MetaResponse
}

type nextIDResponse struct {
	ID string `json:"id"`
}

func toEmployeeResponse(e Employee) employeeResponse {
	return employeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		Role:          e.Role,
		Phone:         e.Phone,
		Email:         e.Email,
		JoinedOn:      records.FormatDate(e.JoinedOn),
		MonthlySalary: e.MonthlySalary,
		Notes:         e.Notes,
		MetaResponse:  e.Meta.Response(),
	}
}

// listEmployeesHandler godoc
// @Summary Listar empleados
// @Description q busca en id, nombre, rol, teléfono y email; from/to sobre joined_on.
// @Tags employees
// @Produce json
// @Param q query string false "Búsqueda libre"
// @Param from query string false "Fecha mínima (YYYY-MM-DD)"
// @Param to query string false "Fecha máxima (YYYY-MM-DD)"
// @Param active query string false "true, false o all"
// @Param limit query int false "1-1000, por defecto 100"
// @Success 200 {array} employeeResponse
// @Failure 400 {string} string "filtro inválido"
// @Router /employees [get]
func listEmployeesHandler(svc *Service) http.HandlerFunc {
	return records.ListHandler(svc.List, toEmployeeResponse)
}

// createEmployeeHandler godoc
// @Summary Alta de empleado
// @Tags employees
// @Accept json
// @Produce json
// @Param payload body Input true "Datos del empleado; sin id se asigna EMPnnn"
// @Success 201 {object} employeeResponse
// @Failure 400 {string} string "validación"
// @Failure 409 {string} string "id duplicado"
// @Router /employees [post]
func createEmployeeHandler(svc *Service) http.HandlerFunc {
	return records.CreateHandler(svc.Create, toEmployeeResponse)
}

// nextIDHandler godoc
// @Summary Próximo id de empleado
// @Tags employees
// @Produce json
// @Success 200 {object} nextIDResponse
// @Router /employees/next-id [get]
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

// getEmployeeHandler godoc
// @Summary Obtener empleado
// @Tags employees
// @Produce json
// @Param id path string true "ID del empleado"
// @Success 200 {object} employeeResponse
// @Failure 404 {string} string "not found"
// @Router /employees/{id} [get]
func getEmployeeHandler(svc *Service) http.HandlerFunc {
	return records.GetHandler(svc.GetByID, toEmployeeResponse)
}

// updateEmployeeHandler godoc
// @Summary Editar empleado
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "ID del empleado"
// @Param payload body Input true "Datos del empleado"
// @Success 200 {object} employeeResponse
// @Failure 400 {string} string "validación"
// @Failure 404 {string} string "not found"
// @Router /employees/{id} [put]
func updateEmployeeHandler(svc *Service) http.HandlerFunc {
	return records.UpdateHandler(svc.Update, toEmployeeResponse)
}

// toggleEmployeeHandler godoc
// @Summary Activar / desactivar empleado
// @Tags employees
// @Produce json
// @Param id path string true "ID del empleado"
// @Success 200 {object} employeeResponse
// @Router /employees/{id}/toggle [post]
func toggleEmployeeHandler(svc *Service) http.HandlerFunc {
	return records.ToggleHandler(svc.Toggle, toEmployeeResponse)
}

// deleteEmployeeHandler godoc
// @Summary Borrar empleado
// @Tags employees
// @Param id path string true "ID del empleado"
// @Success 204
// @Router /employees/{id} [delete]
func deleteEmployeeHandler(svc *Service) http.HandlerFunc {
	return records.DeleteHandler(svc.Delete)
}
