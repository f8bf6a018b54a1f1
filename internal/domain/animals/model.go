package animals

import (
	"time"

	"dairy-records/internal/domain/records"
)

// Sex del animal.
// @Enum female, male
type Sex string

const (
	SexFemale Sex = "female"
	SexMale   Sex = "male"
)

// Category según etapa productiva.
// @Enum cow, heifer, calf, bull
type Category string

const (
	CategoryCow    Category = "cow"
	CategoryHeifer Category = "heifer"
	CategoryCalf   Category = "calf"
	CategoryBull   Category = "bull"
)

// Animal es una fila del registro de animales. El id es el tag (ANM001...).
type Animal struct {
	records.Meta

	ID       string
	Name     string
	Breed    string
	Sex      Sex
	Category Category

	BirthDate  *time.Time
	AcquiredOn time.Time

	Shed  string
	Notes string
}

func (a Animal) RecordID() string      { return a.ID }
func (a Animal) RecordDate() time.Time { return a.AcquiredOn }
func (a Animal) SearchText() string {
	return records.JoinSearch(a.ID, a.Name, a.Breed, a.Shed, a.Notes)
}

// AgeMonths: meses completos a la fecha dada (0 sin birth_date).
func (a Animal) AgeMonths(at time.Time) int {
	if a.BirthDate == nil {
		return 0
	}
	b := *a.BirthDate
	months := (at.Year()-b.Year())*12 + int(at.Month()) - int(b.Month())
	if at.Day() < b.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
