package models

// DefaultInstrument is the currency used when none is supplied.
const DefaultInstrument = "EUR"

// Amount is a monetary value in a given currency ("instrument").
// Values are plain float64 on purpose: totals must match what the
// aggregation produced historically, without introducing rounding.
type Amount struct {
	Value      float64 `gorm:"column:value" json:"value"`
	Instrument string  `gorm:"column:instrument" json:"instrument"`
}
