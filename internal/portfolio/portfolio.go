package portfolio

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/SofiiaHutsuliak/stocksim/internal/logger"
	"github.com/SofiiaHutsuliak/stocksim/internal/market"
	"github.com/SofiiaHutsuliak/stocksim/types"
)

var InsufficientBalanceErr = errors.New("insufficient balance for buy")
var InsufficientQuantityErr = errors.New("not enough quantity to sell")
var UnknownPositionErr = errors.New("no position with that name")

// Position is an owned holding: an instrument snapshot taken at first buy
// plus the quantity held. The snapshot's price walks on its own after
// purchase and does not track the market instrument it was copied from.
type Position struct {
	inst     *market.Instrument
	quantity int64
}

func (p *Position) Quantity() int64 { return p.quantity }

func (p *Position) Instrument() *market.Instrument { return p.inst }

// Portfolio holds the cash balance and the owned positions, keyed by
// instrument name. Insertion order is kept so views render deterministically.
type Portfolio struct {
	log logger.Logger

	cash      decimal.Decimal
	positions map[string]*Position
	order     []string
}

func NewPortfolio(initialCash decimal.Decimal, log logger.Logger) *Portfolio {
	return &Portfolio{
		log:       log,
		cash:      initialCash,
		positions: make(map[string]*Position),
	}
}

func (p *Portfolio) Balance() decimal.Decimal {
	return p.cash
}

// Buy debits price*quantity and adds the shares to the position matching the
// instrument's name, snapshotting the instrument on first buy. Returns
// InsufficientBalanceErr, with no state change, when the cost exceeds the
// balance.
func (p *Portfolio) Buy(inst *market.Instrument, quantity int64) error {
	cost := inst.Price().Mul(decimal.NewFromInt(quantity))
	if cost.GreaterThan(p.cash) {
		p.log.Debugf("buy %d x %s rejected: cost %s over balance %s",
			quantity, inst.Name(), cost.StringFixed(2), p.cash.StringFixed(2))
		return InsufficientBalanceErr
	}
	p.cash = p.cash.Sub(cost)

	if pos, ok := p.positions[inst.Name()]; ok {
		pos.quantity += quantity
	} else {
		p.positions[inst.Name()] = &Position{inst: inst.Clone(), quantity: quantity}
		p.order = append(p.order, inst.Name())
	}
	p.log.Infof("bought %d x %s at %s", quantity, inst.Name(), inst.Price().StringFixed(2))
	return nil
}

// Sell credits quantity times the position's own current price and removes
// the position entirely when its quantity reaches zero. State is unchanged
// on UnknownPositionErr and InsufficientQuantityErr.
func (p *Portfolio) Sell(name string, quantity int64) error {
	pos, ok := p.positions[name]
	if !ok {
		return UnknownPositionErr
	}
	if quantity > pos.quantity {
		return InsufficientQuantityErr
	}

	proceeds := pos.inst.Price().Mul(decimal.NewFromInt(quantity))
	p.cash = p.cash.Add(proceeds)
	pos.quantity -= quantity

	if pos.quantity == 0 {
		delete(p.positions, name)
		p.order = removeName(p.order, name)
	}
	p.log.Infof("sold %d x %s for %s", quantity, name, proceeds.StringFixed(2))
	return nil
}

// AdvancePrices walks every owned position one day. Positions drift
// independently of the market instruments they were bought from.
func (p *Portfolio) AdvancePrices() {
	for _, pos := range p.positions {
		pos.inst.AdvanceOneDay()
	}
}

// Snapshot builds the render model in buy order.
func (p *Portfolio) Snapshot() types.PortfolioView {
	view := types.PortfolioView{
		Cash:      p.cash,
		Positions: make([]types.PositionSnapshot, 0, len(p.positions)),
	}
	for _, name := range p.order {
		pos := p.positions[name]
		inst := pos.inst
		view.Positions = append(view.Positions, types.PositionSnapshot{
			ID:       inst.ID(),
			Name:     inst.Name(),
			Price:    inst.Price(),
			Risk:     inst.Risk(),
			Day:      inst.Day(),
			Quantity: pos.quantity,
			Value:    inst.Price().Mul(decimal.NewFromInt(pos.quantity)),
		})
	}
	return view
}

func removeName(names []string, name string) []string {
	for i, n := range names {
		if n == name {
			return append(names[:i], names[i+1:]...)
		}
	}
	return names
}
