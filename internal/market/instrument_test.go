package market

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/SofiiaHutsuliak/stocksim/types"
)

func TestAdvanceOneDayNeverDropsBelowFloor(t *testing.T) {
	tests := []struct {
		name  string
		price decimal.Decimal
		risk  types.RiskTier
		days  int
	}{
		{name: "high risk from the floor", price: decimal.NewFromInt(1), risk: types.RiskHigh, days: 500},
		{name: "high risk from a low price", price: decimal.NewFromFloat(1.5), risk: types.RiskHigh, days: 500},
		{name: "low risk long run", price: decimal.NewFromInt(60), risk: types.RiskLow, days: 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			inst := NewInstrument(1, "ACME", tt.price, tt.risk, rng)
			for d := 0; d < tt.days; d++ {
				inst.AdvanceOneDay()
				if inst.Price().LessThan(decimal.NewFromInt(1)) {
					t.Fatalf("day %d: price %s dropped below 1.0", d+1, inst.Price())
				}
			}
		})
	}
}

func TestAdvanceOneDayHistoryGrowth(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	inst := NewInstrument(1, "ACME", decimal.NewFromInt(100), types.RiskMedium, rng)

	if got := len(inst.History()); got != 1 {
		t.Fatalf("fresh instrument history length = %d, want 1", got)
	}
	if !inst.History()[0].Equal(decimal.NewFromInt(100)) {
		t.Fatalf("history seed = %s, want listing price 100", inst.History()[0])
	}

	const days = 30
	for d := 0; d < days; d++ {
		inst.AdvanceOneDay()
	}
	if got := len(inst.History()); got != days+1 {
		t.Errorf("history length after %d days = %d, want %d", days, got, days+1)
	}
	if got := inst.Day(); got != days+1 {
		t.Errorf("day counter = %d, want %d", got, days+1)
	}
	if last := inst.History()[days]; !last.Equal(inst.Price()) {
		t.Errorf("last history entry %s != current price %s", last, inst.Price())
	}
}

func TestAdvanceOneDayIsDeterministicPerSeed(t *testing.T) {
	walk := func(seed int64) []decimal.Decimal {
		rng := rand.New(rand.NewSource(seed))
		inst := NewInstrument(3, "Amazon", decimal.NewFromInt(205), types.RiskHigh, rng)
		for d := 0; d < 50; d++ {
			inst.AdvanceOneDay()
		}
		return inst.History()
	}

	a, b := walk(99), walk(99)
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Fatalf("day %d: walks with the same seed diverged: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestCloneStartsAFreshWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	inst := NewInstrument(6, "Tesla", decimal.NewFromInt(342), types.RiskHigh, rng)
	for d := 0; d < 5; d++ {
		inst.AdvanceOneDay()
	}

	clone := inst.Clone()
	if clone.ID() != inst.ID() || clone.Name() != inst.Name() || clone.Risk() != inst.Risk() {
		t.Fatalf("clone identity mismatch: got %d/%s/%s", clone.ID(), clone.Name(), clone.Risk())
	}
	if !clone.Price().Equal(inst.Price()) {
		t.Fatalf("clone price %s != source price %s", clone.Price(), inst.Price())
	}
	if got := clone.Day(); got != 1 {
		t.Fatalf("clone day counter = %d, want 1 (fresh history)", got)
	}

	// The walks are independent from the snapshot moment on.
	priceBefore := clone.Price()
	inst.AdvanceOneDay()
	if !clone.Price().Equal(priceBefore) {
		t.Errorf("advancing the source moved the clone price")
	}
	if got := clone.Day(); got != 1 {
		t.Errorf("advancing the source grew the clone history to %d", got)
	}
}
