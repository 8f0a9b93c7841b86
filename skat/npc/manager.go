package npc

import (
	"fmt"
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"skat-lite/skat"
)

// RandomPersonaID selects a RandomBrain instead of a RuleBrain.
const RandomPersonaID = "random"

// Manager builds brains from the persona registry.
type Manager struct {
	registry *PersonaRegistry
	logger   *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewManager creates an NPC manager with the given persona registry. Brain seeds are drawn
// from seed so a whole simulation is reproducible.
func NewManager(registry *PersonaRegistry, seed int64, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		registry: registry,
		logger:   logger,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Registry returns the underlying PersonaRegistry.
func (m *Manager) Registry() *PersonaRegistry {
	return m.registry
}

// Brain creates a fresh brain for a persona id.
func (m *Manager) Brain(personaID string) (BrainDecider, error) {
	m.mu.Lock()
	seed := m.rng.Int63()
	m.mu.Unlock()

	if personaID == RandomPersonaID {
		return NewRandomBrain(seed), nil
	}
	persona := m.registry.Get(personaID)
	if persona == nil {
		return nil, fmt.Errorf("unknown persona %q", personaID)
	}
	return NewRuleBrain(persona, seed), nil
}

// NewTable seats one brain per persona id, in seat order.
func (m *Manager) NewTable(personaIDs [skat.NumPlayers]string) (*Table, error) {
	var brains [skat.NumPlayers]BrainDecider
	for seat, id := range personaIDs {
		b, err := m.Brain(id)
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w", seat, err)
		}
		brains[seat] = b
	}
	return NewTable(brains, m.logger), nil
}

// Table drives whole hands with one brain per seat.
type Table struct {
	brains [skat.NumPlayers]BrainDecider
	logger *zap.Logger
}

func NewTable(brains [skat.NumPlayers]BrainDecider, logger *zap.Logger) *Table {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Table{brains: brains, logger: logger}
}

func (t *Table) Brain(seat int) BrainDecider { return t.brains[seat] }

// PlayHand deals a new hand on g and plays it to the end.
func (t *Table) PlayHand(g *skat.Game) (*skat.Settlement, error) {
	if _, _, err := g.Init(); err != nil {
		return nil, err
	}
	for !g.IsOver() {
		view := BuildGameView(g)
		brain := t.brains[view.Seat]
		d := brain.Decide(view)
		if d.Action == nil {
			return nil, fmt.Errorf("%s (P%d) returned no action", brain.Name(), view.Seat)
		}
		if err := g.Act(view.Seat, d.Action); err != nil {
			return nil, fmt.Errorf("%s (P%d) %s: %w", brain.Name(), view.Seat, d.Action, err)
		}
		t.logger.Debug("npc decided",
			zap.String("brain", brain.Name()),
			zap.Int("seat", view.Seat),
			zap.Stringer("action", d.Action))
	}
	return g.Settlement(), nil
}
