package types

import (
	"github.com/shopspring/decimal"
)

// PortfolioView is a read-only render model of the portfolio. The menu loop
// consumes it; mutating a view never touches portfolio state.
type PortfolioView struct {
	Cash      decimal.Decimal
	Positions []PositionSnapshot
}

type PositionSnapshot struct {
	ID       int
	Name     string
	Price    decimal.Decimal
	Risk     RiskTier
	Day      int
	Quantity int64
	Value    decimal.Decimal
}
