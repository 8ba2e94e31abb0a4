package model

import (
	"math"
	"strconv"
)

// Cents is a fixed-point monetary amount in the smallest currency unit.
// All arithmetic in the service is done on cents; float64 dollar values
// only appear at the JSON boundary.
type Cents int64

// CentsFromDollars converts a dollar amount to cents with half-up rounding.
func CentsFromDollars(dollars float64) Cents {
	return Cents(math.Round(dollars * 100))
}

// Dollars returns the amount as a float64 dollar value for display.
func (c Cents) Dollars() float64 {
	return float64(c) / 100.0
}

// MarshalJSON renders the amount as a dollar value with two decimals; the
// JSON boundary speaks dollars while everything internal stays in cents.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(c.Dollars(), 'f', 2, 64)), nil
}

func (c *Cents) UnmarshalJSON(data []byte) error {
	dollars, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*c = CentsFromDollars(dollars)
	return nil
}
