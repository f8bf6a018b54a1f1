package rejections

import (
	"time"

	"dairy-records/internal/domain/records"

	"github.com/shopspring/decimal"
)

// Reason de rechazo de leche.
// @Enum high_acidity, low_fat, low_snf, adulteration, antibiotic_residue, contamination, other
type Reason string

const (
	ReasonHighAcidity       Reason = "high_acidity"
	ReasonLowFat            Reason = "low_fat"
	ReasonLowSNF            Reason = "low_snf"
	ReasonAdulteration      Reason = "adulteration"
	ReasonAntibioticResidue Reason = "antibiotic_residue"
	ReasonContamination     Reason = "contamination"
	ReasonOther             Reason = "other"
)

var Reasons = []Reason{
	ReasonHighAcidity,
	ReasonLowFat,
	ReasonLowSNF,
	ReasonAdulteration,
	ReasonAntibioticResidue,
	ReasonContamination,
	ReasonOther,
}

type Rejection struct {
	records.Meta

	ID         string
	RejectedOn time.Time
	// Source es el proveedor o el tag del animal.
	Source string

	QuantityLiters decimal.Decimal
	Reason         Reason
	FatPercent     decimal.NullDecimal
	SNFPercent     decimal.NullDecimal

	RatePerLiter decimal.Decimal
	LossAmount   decimal.Decimal

	RejectedBy string
	Notes      string
}

func (r Rejection) RecordID() string      { return r.ID }
func (r Rejection) RecordDate() time.Time { return r.RejectedOn }
func (r Rejection) SearchText() string {
	return records.JoinSearch(r.Source, string(r.Reason), r.RejectedBy, r.Notes)
}
