package calffeedings

import (
	"time"

	"dairy-records/internal/domain/records"

	"github.com/shopspring/decimal"
)

// Session del día.
// @Enum morning, noon, evening, night
type Session string

const (
	SessionMorning Session = "morning"
	SessionNoon    Session = "noon"
	SessionEvening Session = "evening"
	SessionNight   Session = "night"
)

// FeedType.
// @Enum colostrum, whole_milk, milk_replacer, starter
type FeedType string

const (
	FeedColostrum    FeedType = "colostrum"
	FeedWholeMilk    FeedType = "whole_milk"
	FeedMilkReplacer FeedType = "milk_replacer"
	FeedStarter      FeedType = "starter"
)

var FeedTypes = []FeedType{FeedColostrum, FeedWholeMilk, FeedMilkReplacer, FeedStarter}

type Feeding struct {
	records.Meta

	ID     string
	CalfID string
	FedOn  time.Time

	Session        Session
	FeedType       FeedType
	QuantityLiters decimal.Decimal

	FedBy string
	Notes string
}

func (f Feeding) RecordID() string      { return f.ID }
func (f Feeding) RecordDate() time.Time { return f.FedOn }
func (f Feeding) SearchText() string {
	return records.JoinSearch(f.CalfID, string(f.FeedType), f.FedBy, f.Notes)
}

// DayTotal: litros de un día.
type DayTotal struct {
	Date   time.Time
	Liters decimal.Decimal
}

// Summary de un ternero: totales por día (más reciente primero) y total de calostro.
type Summary struct {
	CalfID         string
	Days           []DayTotal
	TotalLiters    decimal.Decimal
	ColostrumTotal decimal.Decimal
}
