package employees

import (
	"time"

	"dairy-records/internal/domain/records"

	"github.com/shopspring/decimal"
)

// Employee es una fila del registro de personal (id EMP001...).
type Employee struct {
	records.Meta

	ID    string
	Name  string
	Role  string
	Phone string
	Email string

	JoinedOn      time.Time
	MonthlySalary decimal.Decimal

	Notes string
}

func (e Employee) RecordID() string      { return e.ID }
func (e Employee) RecordDate() time.Time { return e.JoinedOn }
func (e Employee) SearchText() string {
	return records.JoinSearch(e.ID, e.Name, e.Role, e.Phone, e.Email)
}
