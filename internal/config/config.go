package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SofiiaHutsuliak/stocksim/types"
)

const (
	_startingBalanceDefault = 3000.0

	// EnvConfigPath overrides the config file location.
	EnvConfigPath      = "STOCKSIM_CONFIG"
	DefaultConfigPath  = "./configs/simulator.yaml"
	_minInstrumentCost = 1.0
)

type InstrumentSpec struct {
	ID    int     `yaml:"id"`
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
	Risk  string  `yaml:"risk"`
}

type SimulatorConfig struct {
	StartingBalance float64          `yaml:"starting_balance"`
	WarmupDays      int              `yaml:"warmup_days"`
	Instruments     []InstrumentSpec `yaml:"instruments"`
}

// DefaultConfig is the reference scenario: nine large caps and a 3000.0
// starting balance.
func DefaultConfig() SimulatorConfig {
	return SimulatorConfig{
		StartingBalance: _startingBalanceDefault,
		Instruments: []InstrumentSpec{
			{ID: 1, Name: "Apple", Price: 211.0, Risk: "Medium"},
			{ID: 2, Name: "Google", Price: 165.0, Risk: "Medium"},
			{ID: 3, Name: "Amazon", Price: 205.0, Risk: "High"},
			{ID: 4, Name: "McDonald's", Price: 314.0, Risk: "Low"},
			{ID: 5, Name: "UnitedHealth", Price: 60.0, Risk: "Low"},
			{ID: 6, Name: "Tesla", Price: 342.0, Risk: "High"},
			{ID: 7, Name: "NVDA", Price: 134.0, Risk: "High"},
			{ID: 8, Name: "Microsoft", Price: 453.0, Risk: "Medium"},
			{ID: 9, Name: "META", Price: 643.0, Risk: "High"},
		},
	}
}

// ResolvePath picks the config file location: the env override when set,
// otherwise the conventional path.
func ResolvePath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultConfigPath
}

// Load reads the YAML config at path. A missing file is not an error: the
// embedded reference scenario is returned instead, with found=false so the
// caller can log the fallback.
func Load(path string) (cfg SimulatorConfig, found bool, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), false, nil
		}
		return SimulatorConfig{}, false, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return SimulatorConfig{}, false, fmt.Errorf("parse config: %w", err)
	}
	return cfg, true, nil
}

// Setup fills unset fields with the reference scenario values.
func (c *SimulatorConfig) Setup() {
	if c.StartingBalance <= 0 {
		c.StartingBalance = _startingBalanceDefault
	}
	if len(c.Instruments) == 0 {
		c.Instruments = DefaultConfig().Instruments
	}
}

func (c SimulatorConfig) Validate() error {
	if c.StartingBalance < 0 {
		return fmt.Errorf("starting balance %f is negative", c.StartingBalance)
	}
	if c.WarmupDays < 0 {
		return fmt.Errorf("warmup days %d is negative", c.WarmupDays)
	}
	if len(c.Instruments) == 0 {
		return fmt.Errorf("no instruments configured")
	}

	ids := make(map[int]struct{}, len(c.Instruments))
	names := make(map[string]struct{}, len(c.Instruments))
	for _, spec := range c.Instruments {
		if spec.ID <= 0 {
			return fmt.Errorf("instrument %q: id %d must be positive", spec.Name, spec.ID)
		}
		if spec.Name == "" {
			return fmt.Errorf("instrument id %d: empty name", spec.ID)
		}
		if spec.Price < _minInstrumentCost {
			return fmt.Errorf("instrument %q: price %f below minimum %.1f", spec.Name, spec.Price, _minInstrumentCost)
		}
		if _, err := types.ParseRiskTier(spec.Risk); err != nil {
			return fmt.Errorf("instrument %q: %w", spec.Name, err)
		}
		if _, ok := ids[spec.ID]; ok {
			return fmt.Errorf("duplicate instrument id %d", spec.ID)
		}
		if _, ok := names[spec.Name]; ok {
			return fmt.Errorf("duplicate instrument name %q", spec.Name)
		}
		ids[spec.ID] = struct{}{}
		names[spec.Name] = struct{}{}
	}
	return nil
}
