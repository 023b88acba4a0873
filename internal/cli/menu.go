package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SofiiaHutsuliak/stocksim/internal/logger"
	"github.com/SofiiaHutsuliak/stocksim/internal/market"
	"github.com/SofiiaHutsuliak/stocksim/internal/portfolio"
	"github.com/SofiiaHutsuliak/stocksim/types"
)

// Menu is the interactive session loop: print menu, read a choice, dispatch,
// repeat until exit. Input is line-oriented so stock names may contain
// spaces.
type Menu struct {
	in  *bufio.Scanner
	out io.Writer
	mkt *market.Market
	pf  *portfolio.Portfolio
	log logger.Logger
}

func NewMenu(in io.Reader, out io.Writer, mkt *market.Market, pf *portfolio.Portfolio, log logger.Logger) *Menu {
	return &Menu{
		in:  bufio.NewScanner(in),
		out: out,
		mkt: mkt,
		pf:  pf,
		log: log,
	}
}

// Run blocks until the user picks exit or input ends.
func (m *Menu) Run() error {
	for {
		m.printMenu()
		line, ok := m.readLine()
		if !ok {
			return m.in.Err()
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid option.")
			continue
		}

		switch choice {
		case 1:
			fmt.Fprintln(m.out, "\n~ Market Stocks ~")
			m.listMarket()
		case 2:
			m.buy()
		case 3:
			m.sell()
		case 4:
			m.showPortfolio()
		case 5:
			m.simulateDay()
		case 0:
			fmt.Fprintln(m.out, "Goodbye! Please return later!")
			m.log.Infof("session closed")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option.")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprint(m.out, "\n~ This is investment simulator ~\n"+
		"1. Show market\n"+
		"2. Buy stock\n"+
		"3. Sell stock\n"+
		"4. Show portfolio\n"+
		"5. Simulate next day\n"+
		"0. Exit\n"+
		"Please, choose an action(number): ")
}

func (m *Menu) listMarket() {
	for _, inst := range m.mkt.Instruments() {
		fmt.Fprintf(m.out, "%2d. %-12s | $%8s | Risk: %s | Day %d\n",
			inst.ID(), inst.Name(), inst.Price().StringFixed(2), inst.Risk(), inst.Day())
	}
}

func (m *Menu) buy() {
	fmt.Fprintln(m.out, "Enter stock ID to buy: ")
	m.listMarket()

	id, ok := m.readInt()
	if !ok {
		fmt.Fprintln(m.out, "Invalid ID.")
		return
	}
	inst, err := m.mkt.ByIndex(id)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid ID.")
		return
	}

	fmt.Fprint(m.out, "Enter quantity: ")
	qty, ok := m.readInt()
	if !ok || qty <= 0 {
		fmt.Fprintln(m.out, "Invalid quantity.")
		return
	}

	if err := m.pf.Buy(inst, int64(qty)); err != nil {
		fmt.Fprintln(m.out, errMessage(err))
	}
}

func (m *Menu) sell() {
	fmt.Fprint(m.out, "Enter stock name to sell: ")
	name, ok := m.readLine()
	if !ok {
		return
	}

	fmt.Fprint(m.out, "Enter quantity: ")
	qty, ok := m.readInt()
	if !ok || qty <= 0 {
		fmt.Fprintln(m.out, "Invalid quantity.")
		return
	}

	if err := m.pf.Sell(name, int64(qty)); err != nil {
		fmt.Fprintln(m.out, errMessage(err))
	}
}

func (m *Menu) showPortfolio() {
	m.renderPortfolio(m.pf.Snapshot())
}

func (m *Menu) simulateDay() {
	fmt.Fprintln(m.out, "Simulating next day...")

	m.mkt.AdvanceDay()
	m.pf.AdvancePrices()
	m.log.Infof("advanced one simulated day")

	fmt.Fprintln(m.out, "Changes simulated! Here's your updated portfolio:")
	m.renderPortfolio(m.pf.Snapshot())
}

func (m *Menu) renderPortfolio(view types.PortfolioView) {
	fmt.Fprintln(m.out, "\n~ This is Your Portfolio ~")
	fmt.Fprintf(m.out, "Balance: $%s\n", view.Cash.StringFixed(2))
	if len(view.Positions) == 0 {
		fmt.Fprintln(m.out, "No stocks owned yet")
		return
	}
	for _, pos := range view.Positions {
		fmt.Fprintf(m.out, "%2d. %-12s | $%8s | Risk: %s | Day %d | Quantity: %d | Value: $%s\n",
			pos.ID, pos.Name, pos.Price.StringFixed(2), pos.Risk, pos.Day, pos.Quantity, pos.Value.StringFixed(2))
	}
}

// readLine returns the next input line with surrounding whitespace trimmed;
// internal whitespace is preserved. ok is false once input ends.
func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) readInt() (int, bool) {
	line, ok := m.readLine()
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, false
	}
	return n, true
}

func errMessage(err error) string {
	switch {
	case errors.Is(err, portfolio.InsufficientBalanceErr):
		return "Insufficient balance."
	case errors.Is(err, portfolio.InsufficientQuantityErr):
		return "Not enough quantity."
	case errors.Is(err, portfolio.UnknownPositionErr):
		return "Stock not found in portfolio."
	case errors.Is(err, market.InvalidInstrumentIdErr):
		return "Invalid ID."
	}
	return err.Error()
}
