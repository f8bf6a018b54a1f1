package repairs

import (
	"time"

	"dairy-records/internal/domain/records"

	"github.com/shopspring/decimal"
)

// Status derivado de repaired_on.
// @Enum open, completed
type Status string

const (
	StatusOpen      Status = "open"
	StatusCompleted Status = "completed"
)

// Repair es un registro de reparación de galpón.
type Repair struct {
	records.Meta

	ID    string
	Shed  string
	Issue string

	ReportedOn time.Time
	RepairedOn *time.Time

	Technician string
	Cost       decimal.Decimal
	Notes      string
}

func (r Repair) RecordID() string      { return r.ID }
func (r Repair) RecordDate() time.Time { return r.ReportedOn }
func (r Repair) SearchText() string {
	return records.JoinSearch(r.Shed, r.Issue, r.Technician, r.Notes)
}

func (r Repair) Status() Status {
	if r.RepairedOn != nil {
		return StatusCompleted
	}
	return StatusOpen
}

// DaysOpen: días entre el reporte y la reparación (o hoy si sigue abierta).
func (r Repair) DaysOpen(today time.Time) int {
	end := records.DateOf(today)
	if r.RepairedOn != nil {
		end = *r.RepairedOn
	}
	days := int(end.Sub(r.ReportedOn).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
