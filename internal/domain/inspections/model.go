package inspections

import (
	"fmt"
	"time"

	"dairy-records/internal/domain/records"

	"github.com/shopspring/decimal"
)

// Kind de inspección.
// @Enum feed, water
type Kind string

const (
	KindFeed  Kind = "feed"
	KindWater Kind = "water"
)

// Result derivado de las mediciones.
// @Enum pass, fail
type Result string

const (
	ResultPass Result = "pass"
	ResultFail Result = "fail"
)

// Límites de calidad.
var (
	WaterMinPH      = decimal.RequireFromString("6.0")
	WaterMaxPH      = decimal.RequireFromString("8.5")
	WaterMaxTDS     = decimal.NewFromInt(3000)
	FeedMaxMoisture = decimal.NewFromInt(14)
)

// Inspection es un control de calidad de agua o alimento. Solo se guardan las
// mediciones que corresponden al kind.
type Inspection struct {
	records.Meta

	ID          string
	Kind        Kind
	Source      string
	InspectedOn time.Time
	Inspector   string

	PH              decimal.NullDecimal
	TDSPPM          decimal.NullDecimal
	MoisturePercent decimal.NullDecimal

	Appearance string
	Remarks    string

	Result Result
}

func (i Inspection) RecordID() string      { return i.ID }
func (i Inspection) RecordDate() time.Time { return i.InspectedOn }
func (i Inspection) SearchText() string {
	return records.JoinSearch(string(i.Kind), i.Source, i.Inspector, i.Appearance, i.Remarks)
}

// Findings lista las mediciones fuera de rango (vacío => pass).
func (i Inspection) Findings() []string {
	var out []string
	switch i.Kind {
	case KindWater:
		if i.PH.Valid && (i.PH.Decimal.LessThan(WaterMinPH) || i.PH.Decimal.GreaterThan(WaterMaxPH)) {
			out = append(out, fmt.Sprintf("pH %s outside %s-%s", i.PH.Decimal, WaterMinPH.StringFixed(1), WaterMaxPH.StringFixed(1)))
		}
		if i.TDSPPM.Valid && i.TDSPPM.Decimal.GreaterThan(WaterMaxTDS) {
			out = append(out, fmt.Sprintf("TDS %s ppm above %s", i.TDSPPM.Decimal, WaterMaxTDS))
		}
	case KindFeed:
		if i.MoisturePercent.Valid && i.MoisturePercent.Decimal.GreaterThan(FeedMaxMoisture) {
			out = append(out, fmt.Sprintf("moisture %s%% above %s%%", i.MoisturePercent.Decimal, FeedMaxMoisture))
		}
	}
	return out
}

// Classify: water pasa con 6.0 <= pH <= 8.5 y TDS <= 3000 ppm; feed con humedad <= 14 %.
func Classify(i Inspection) Result {
	if len(i.Findings()) > 0 {
		return ResultFail
	}
	return ResultPass
}
