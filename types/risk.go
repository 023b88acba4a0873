package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type RiskTier string

const (
	RiskLow    RiskTier = "Low"
	RiskMedium RiskTier = "Medium"
	RiskHigh   RiskTier = "High"
)

var tierVolatility = map[RiskTier]decimal.Decimal{
	RiskLow:    decimal.RequireFromString("0.05"),
	RiskMedium: decimal.RequireFromString("0.1"),
	RiskHigh:   decimal.RequireFromString("0.2"),
}

// Volatility returns the daily swing coefficient for the tier.
// Tiers other than Medium and High fall back to the Low coefficient.
func (r RiskTier) Volatility() decimal.Decimal {
	if v, ok := tierVolatility[r]; ok {
		return v
	}
	return tierVolatility[RiskLow]
}

func ParseRiskTier(s string) (RiskTier, error) {
	switch RiskTier(s) {
	case RiskLow, RiskMedium, RiskHigh:
		return RiskTier(s), nil
	}
	return "", fmt.Errorf("unknown risk tier %q", s)
}
