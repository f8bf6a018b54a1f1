package approvals

import (
	"time"

	"dairy-records/internal/domain/records"

	"github.com/shopspring/decimal"
)

// Status de una solicitud de compra.
// @Enum pending, approved, rejected
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Approval es una solicitud de compra (alimento, insumos, repuestos) pendiente de aprobación.
type Approval struct {
	records.Meta

	ID     string
	Item   string
	Vendor string

	Quantity  decimal.Decimal
	Unit      string
	UnitPrice decimal.Decimal
	// TotalCost = Quantity * UnitPrice redondeado a 2; se recalcula en cada escritura.
	TotalCost decimal.Decimal

	RequestedBy string
	RequestedOn time.Time

	Status    Status
	DecidedBy string
	DecidedAt *time.Time

	Remarks string
}

func (a Approval) RecordID() string      { return a.ID }
func (a Approval) RecordDate() time.Time { return a.RequestedOn }
func (a Approval) SearchText() string {
	return records.JoinSearch(a.Item, a.Vendor, a.RequestedBy, a.Remarks)
}

func (a Approval) Decided() bool { return a.Status != StatusPending }
