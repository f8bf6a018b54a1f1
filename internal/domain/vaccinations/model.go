package vaccinations

import (
	"time"

	"dairy-records/internal/domain/records"
)

// Status se calcula al leer, contra el reloj del servicio.
// @Enum scheduled, due, overdue, completed
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusDue       Status = "due"
	StatusOverdue   Status = "overdue"
	StatusCompleted Status = "completed"
)

// DueWindowDays: una vacuna programada dentro de esta ventana está "due".
const DueWindowDays = 7

type Vaccination struct {
	records.Meta

	ID       string
	AnimalID string
	Vaccine  string
	Dose     string

	ScheduledOn    time.Time
	AdministeredOn *time.Time
	AdministeredBy string
	NextDueOn      *time.Time

	Notes string
}

func (v Vaccination) RecordID() string      { return v.ID }
func (v Vaccination) RecordDate() time.Time { return v.ScheduledOn }
func (v Vaccination) SearchText() string {
	return records.JoinSearch(v.AnimalID, v.Vaccine, v.AdministeredBy, v.Notes)
}

func (v Vaccination) Status(today time.Time) Status {
	today = records.DateOf(today)
	switch {
	case v.AdministeredOn != nil:
		return StatusCompleted
	case v.ScheduledOn.Before(today):
		return StatusOverdue
	case !v.ScheduledOn.After(today.AddDate(0, 0, DueWindowDays)):
		return StatusDue
	default:
		return StatusScheduled
	}
}
