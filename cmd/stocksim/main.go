package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/SofiiaHutsuliak/stocksim/internal/cli"
	"github.com/SofiiaHutsuliak/stocksim/internal/config"
	"github.com/SofiiaHutsuliak/stocksim/internal/logger"
	"github.com/SofiiaHutsuliak/stocksim/internal/market"
	"github.com/SofiiaHutsuliak/stocksim/internal/portfolio"
	"github.com/SofiiaHutsuliak/stocksim/types"
)

func main() {
	zapLogger, loggerSync, err := logger.NewZapLogger(logger.Warn)
	if err != nil {
		log.Fatalf("%s: can't init logger", err)
	}
	defer loggerSync()

	if err := godotenv.Load(); err != nil {
		zapLogger.Debugf("can't detect .env file")
	}

	cfgPath := config.ResolvePath()
	cfg, found, err := config.Load(cfgPath)
	if err != nil {
		zapLogger.Fatalf("%s: can't load config", err)
	}
	if !found {
		zapLogger.Warnf("config %s not found, using reference scenario", cfgPath)
	}
	cfg.Setup()
	if err := cfg.Validate(); err != nil {
		zapLogger.Fatalf("%s: config validation failed", err)
	}

	// One rng per process; every instrument and position copy walks off it.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	instruments := make([]*market.Instrument, 0, len(cfg.Instruments))
	for _, spec := range cfg.Instruments {
		risk, err := types.ParseRiskTier(spec.Risk)
		if err != nil {
			zapLogger.Fatalf("%s: bad instrument config", err)
		}
		instruments = append(instruments,
			market.NewInstrument(spec.ID, spec.Name, decimal.NewFromFloat(spec.Price), risk, rng))
	}

	mkt := market.NewMarket(instruments...)
	mkt.Warmup(cfg.WarmupDays)

	pf := portfolio.NewPortfolio(decimal.NewFromFloat(cfg.StartingBalance), zapLogger)

	menu := cli.NewMenu(os.Stdin, os.Stdout, mkt, pf, zapLogger)
	if err := menu.Run(); err != nil {
		zapLogger.Fatalf("%s: reading input failed", err)
	}
}
