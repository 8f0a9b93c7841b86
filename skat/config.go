package skat

import (
	"fmt"

	"go.uber.org/zap"

	"skat-lite/card"
)

type Config struct {
	// RNG seed (0 => time-based)
	Seed int64

	// Dealer seat of the first hand; nil draws it from the RNG.
	ForcedDealer *int

	// Fixed deal order (a permutation of the 32 cards); empty shuffles.
	DeckOverride []card.Card

	// nil => zap.NewNop()
	Logger *zap.Logger
}

func (c Config) validate() error {
	if c.ForcedDealer != nil && (*c.ForcedDealer < 0 || *c.ForcedDealer >= NumPlayers) {
		return fmt.Errorf("ForcedDealer must be in [0,%d): %d", NumPlayers, *c.ForcedDealer)
	}
	if len(c.DeckOverride) == 0 {
		return nil
	}
	if len(c.DeckOverride) != card.NumCards {
		return fmt.Errorf("DeckOverride must hold %d cards, got %d", card.NumCards, len(c.DeckOverride))
	}
	var seen card.Set
	for i, x := range c.DeckOverride {
		if !x.Valid() {
			return fmt.Errorf("DeckOverride[%d]: invalid card %d", i, uint8(x))
		}
		if seen.Has(x) {
			return fmt.Errorf("DeckOverride[%d]: duplicate card %s", i, x)
		}
		seen = seen.With(x)
	}
	return nil
}
