package models

// MarketType represents the kind of market a leg is drawn from
type MarketType string

const (
	MarketTypeMoneyline MarketType = "moneyline"
	MarketTypeSpread    MarketType = "spread"
	MarketTypeTotal     MarketType = "total"
	MarketTypeProp      MarketType = "prop"
)

// IsSideMarket reports whether the market picks a side of the game (moneyline or
// spread) rather than a total or a player/team prop
func (m MarketType) IsSideMarket() bool {
	return m == MarketTypeMoneyline || m == MarketTypeSpread
}

// IsValid reports whether the market type is one of the known markets
func (m MarketType) IsValid() bool {
	switch m {
	case MarketTypeMoneyline, MarketTypeSpread, MarketTypeTotal, MarketTypeProp:
		return true
	default:
		return false
	}
}

// Leg represents a single selection, either bet alone or as part of a parlay.
// Legs are values; nothing in the engine mutates one after it is created.
type Leg struct {
	ID              string     `json:"id" validate:"required"`
	Odds            Odds       `json:"odds"`
	TrueProbability float64    `json:"true_probability" validate:"gt=0,lte=1"`
	GroupKey        string     `json:"group_key"` // game id
	Sport           string     `json:"sport"`
	Market          MarketType `json:"market" validate:"required,oneof=moneyline spread total prop"`
}

// SameGame reports whether both legs belong to the same game
func (l Leg) SameGame(other Leg) bool {
	return l.GroupKey != "" && l.GroupKey == other.GroupKey
}

// SameSport reports whether both legs carry the same, known sport
func (l Leg) SameSport(other Leg) bool {
	return l.Sport != "" && l.Sport == other.Sport
}
