package models

import (
	"fmt"
	"strconv"
)

// OddsFormat represents the quoting convention of a price
type OddsFormat string

const (
	OddsFormatAmerican OddsFormat = "american"
	OddsFormatDecimal  OddsFormat = "decimal"
)

// Odds represents a bookmaker price in either American or decimal format.
// Validity (American != 0, decimal > 1.0) is checked by the odds package when the
// price is converted, so a zero value never silently prices as even money.
type Odds struct {
	Format   OddsFormat `json:"format" validate:"required,oneof=american decimal"`
	American int        `json:"american,omitempty"`
	Decimal  float64    `json:"decimal,omitempty"`
}

// AmericanOdds creates odds quoted in American format (e.g. -140, +120)
func AmericanOdds(american int) Odds {
	return Odds{Format: OddsFormatAmerican, American: american}
}

// DecimalOdds creates odds quoted in decimal format (e.g. 1.71)
func DecimalOdds(decimal float64) Odds {
	return Odds{Format: OddsFormatDecimal, Decimal: decimal}
}

// IsAmerican reports whether the odds are quoted in American format
func (o Odds) IsAmerican() bool {
	return o.Format == OddsFormatAmerican
}

// String returns the price as it was quoted
func (o Odds) String() string {
	switch o.Format {
	case OddsFormatAmerican:
		if o.American > 0 {
			return "+" + strconv.Itoa(o.American)
		}
		return strconv.Itoa(o.American)
	case OddsFormatDecimal:
		return strconv.FormatFloat(o.Decimal, 'f', -1, 64)
	default:
		return fmt.Sprintf("unknown(%q)", string(o.Format))
	}
}
