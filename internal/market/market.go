package market

import (
	"errors"

	"github.com/schollz/progressbar/v3"
)

var InvalidInstrumentIdErr = errors.New("instrument id outside market range")

// Market owns the canonical ordered instrument list for the process
// lifetime. Instruments are seeded once and only mutated through AdvanceDay.
type Market struct {
	instruments []*Instrument
}

func NewMarket(instruments ...*Instrument) *Market {
	return &Market{instruments: instruments}
}

func (m *Market) Size() int {
	return len(m.instruments)
}

// ByIndex resolves the 1-based display index shown in the menu.
func (m *Market) ByIndex(idx int) (*Instrument, error) {
	if idx < 1 || idx > len(m.instruments) {
		return nil, InvalidInstrumentIdErr
	}
	return m.instruments[idx-1], nil
}

func (m *Market) Instruments() []*Instrument {
	return m.instruments
}

// AdvanceDay moves every instrument one random-walk step.
func (m *Market) AdvanceDay() {
	for _, inst := range m.instruments {
		inst.AdvanceOneDay()
	}
}

// Warmup pre-simulates the given number of days before the session opens so
// prices start with some drift in their histories. Runs before any position
// exists.
func (m *Market) Warmup(days int) {
	if days <= 0 {
		return
	}
	bar := initProgressBar(days)
	for d := 0; d < days; d++ {
		m.AdvanceDay()
		bar.Add(1)
	}
}

func initProgressBar(maxTicks int) *progressbar.ProgressBar {
	return progressbar.NewOptions(maxTicks,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetDescription("Warming up market..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
