package market

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/SofiiaHutsuliak/stocksim/types"
)

var minPrice = decimal.NewFromInt(1)

var oneHundred = decimal.NewFromInt(100)

// Instrument is a simulated tradable stock. Its price follows a bounded
// random walk; the full walk is retained in an append-only history whose
// first element is the listing price.
type Instrument struct {
	id      int
	name    string
	price   decimal.Decimal
	risk    types.RiskTier
	history []decimal.Decimal
	rng     *rand.Rand
}

// NewInstrument lists an instrument at the given price. The rng is shared
// across the process and must be seeded exactly once.
func NewInstrument(id int, name string, price decimal.Decimal, risk types.RiskTier, rng *rand.Rand) *Instrument {
	return &Instrument{
		id:      id,
		name:    name,
		price:   price,
		risk:    risk,
		history: []decimal.Decimal{price},
		rng:     rng,
	}
}

// AdvanceOneDay moves the price one random-walk step: a uniform draw from
// [-100, 100] scaled to ±1.0, times the tier volatility, times the current
// price. The result is floored at 1.0 and appended to the history.
func (i *Instrument) AdvanceOneDay() {
	draw := decimal.NewFromInt(int64(i.rng.Intn(201) - 100))
	change := i.price.Mul(i.risk.Volatility()).Mul(draw).Div(oneHundred)

	i.price = i.price.Add(change)
	if i.price.LessThan(minPrice) {
		i.price = minPrice
	}
	i.history = append(i.history, i.price)
}

// Clone snapshots the instrument: same identity and price, fresh history
// seeded with the current price. The clone's walk evolves independently of
// the original from this point on.
func (i *Instrument) Clone() *Instrument {
	return NewInstrument(i.id, i.name, i.price, i.risk, i.rng)
}

func (i *Instrument) ID() int { return i.id }

func (i *Instrument) Name() string { return i.name }

func (i *Instrument) Price() decimal.Decimal { return i.price }

func (i *Instrument) Risk() types.RiskTier { return i.risk }

// Day is the current simulated day counter, i.e. the history length.
func (i *Instrument) Day() int { return len(i.history) }

func (i *Instrument) History() []decimal.Decimal { return i.history }
