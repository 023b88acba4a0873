package types

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRiskTierVolatility(t *testing.T) {
	tests := []struct {
		tier RiskTier
		want string
	}{
		{tier: RiskLow, want: "0.05"},
		{tier: RiskMedium, want: "0.1"},
		{tier: RiskHigh, want: "0.2"},
		{tier: RiskTier("whatever"), want: "0.05"},
	}

	for _, tt := range tests {
		if got := tt.tier.Volatility(); !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("%s volatility = %s, want %s", tt.tier, got, tt.want)
		}
	}
}

func TestParseRiskTier(t *testing.T) {
	for _, ok := range []string{"Low", "Medium", "High"} {
		if _, err := ParseRiskTier(ok); err != nil {
			t.Errorf("ParseRiskTier(%q) unexpected err: %v", ok, err)
		}
	}
	for _, bad := range []string{"", "low", "HIGH", "Extreme"} {
		if _, err := ParseRiskTier(bad); err == nil {
			t.Errorf("ParseRiskTier(%q) accepted invalid tier", bad)
		}
	}
}
