package yields

import (
	"strings"
	"time"

	"dairy-records/internal/domain/records"

	"github.com/shopspring/decimal"
)

const DaysPerWeek = 7

var Weekdays = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Yield es la producción semanal de un animal: un valor en litros por día, lunes a domingo.
type Yield struct {
	records.Meta

	ID        string
	AnimalID  string
	WeekStart time.Time
	Daily     []decimal.Decimal

	TotalYield   decimal.Decimal
	AverageDaily decimal.Decimal

	Notes string
}

func (y Yield) RecordID() string      { return y.ID }
func (y Yield) RecordDate() time.Time { return y.WeekStart }
func (y Yield) SearchText() string    { return records.JoinSearch(y.AnimalID, y.Notes) }

// UniqueKey identifica la semana de un animal: una fila por (animal, semana).
func UniqueKey(y Yield) string {
	return strings.ToUpper(y.AnimalID) + "|" + records.FormatDate(y.WeekStart)
}

// WeekStart devuelve el lunes de la semana de d.
func WeekStart(d time.Time) time.Time {
	d = records.DateOf(d)
	offset := (int(d.Weekday()) + 6) % 7 // lunes = 0
	return d.AddDate(0, 0, -offset)
}

// Totals: suma de la semana y promedio diario (/7, 2 decimales).
func Totals(daily []decimal.Decimal) (total, average decimal.Decimal) {
	total = decimal.Sum(decimal.Zero, daily...)
	return total, total.Div(decimal.NewFromInt(DaysPerWeek)).Round(2)
}
