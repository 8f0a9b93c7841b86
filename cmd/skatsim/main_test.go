package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"skat-lite/internal/config"
)

func TestRun_PlaysConfiguredHands(t *testing.T) {
	cfg := &config.Config{
		Sim: config.SimConfig{
			Hands:  20,
			Seed:   7,
			Brains: []string{"steady", "random", "rock"},
			Dealer: 1,
		},
		Log: config.LogConfig{Level: "info"},
	}
	require.NoError(t, run(cfg, zap.NewNop()))
}

func TestRun_UnknownPersona(t *testing.T) {
	cfg := &config.Config{
		Sim: config.SimConfig{Hands: 1, Seed: 1, Brains: []string{"steady", "nobody", "rock"}, Dealer: -1},
	}
	err := run(cfg, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nobody")
}

func TestNewLogger_RejectsUnknownLevel(t *testing.T) {
	_, err := newLogger(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}
