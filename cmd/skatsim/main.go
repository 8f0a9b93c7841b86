package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"skat-lite/internal/config"
	"skat-lite/skat"
	"skat-lite/skat/npc"
)

func main() {
	configPath := flag.String("config", "", "path to a yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("simulation failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(c config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

type summary struct {
	hands      int
	declared   [skat.NumPlayers]int
	won        [skat.NumPlayers]int
	forcedLoss int
	totals     [skat.NumPlayers]float64
	byContract map[skat.Contract]int
}

func run(cfg *config.Config, logger *zap.Logger) error {
	registry := npc.DefaultRegistry()
	if cfg.Sim.Personas != "" {
		if err := registry.LoadFromFile(cfg.Sim.Personas); err != nil {
			return err
		}
	}

	manager := npc.NewManager(registry, cfg.Sim.Seed, logger)
	var ids [skat.NumPlayers]string
	copy(ids[:], cfg.Sim.Brains)
	table, err := manager.NewTable(ids)
	if err != nil {
		return err
	}

	gameCfg := skat.Config{Seed: cfg.Sim.Seed, Logger: logger}
	if cfg.Sim.Dealer >= 0 {
		dealer := cfg.Sim.Dealer
		gameCfg.ForcedDealer = &dealer
	}
	game, err := skat.NewGame(gameCfg)
	if err != nil {
		return err
	}

	sum := summary{byContract: make(map[skat.Contract]int, skat.NumContracts)}
	for i := 0; i < cfg.Sim.Hands; i++ {
		s, err := table.PlayHand(game)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		sum.hands++
		sum.declared[s.Declarer]++
		sum.byContract[s.Contract]++
		if s.Won {
			sum.won[s.Declarer]++
		}
		if s.ForcedLoss {
			sum.forcedLoss++
		}
		for seat, p := range s.Payoffs {
			sum.totals[seat] += p
		}
	}

	logger.Info("simulation finished",
		zap.Int("hands", sum.hands),
		zap.Int("forced_losses", sum.forcedLoss),
		zap.Float64s("totals", sum.totals[:]))

	fmt.Printf("%d hands\n", sum.hands)
	for seat := 0; seat < skat.NumPlayers; seat++ {
		fmt.Printf("P%d %-8s declared %3d won %3d total %+8.1f\n",
			seat, table.Brain(seat).Name(), sum.declared[seat], sum.won[seat], sum.totals[seat])
	}
	for c := skat.ContractDiamonds; c <= skat.ContractNull; c++ {
		fmt.Printf("%s:%d ", c, sum.byContract[c])
	}
	fmt.Println()
	return nil
}
