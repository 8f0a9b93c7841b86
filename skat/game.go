package skat

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Game drives a sequence of hands for three fixed seats: it deals each Round, rotates the
// dealer, dispatches actions and settles finished hands. All methods are safe for concurrent
// use; a single mutex serializes access to the round.
type Game struct {
	cfg    Config
	rng    *rand.Rand
	logger *zap.Logger

	mu sync.Mutex

	handNo     int
	handID     uuid.UUID
	dealerSeat int
	round      *Round
	judger     Judger
	judge      func(*Round) (*Settlement, error)

	settlement *Settlement
}

func NewGame(cfg Config) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(seed)),
		logger:     logger,
		dealerSeat: -1,
	}
	g.judge = g.judger.JudgePayoffs
	return g, nil
}

// Init deals a new hand and returns the state of the first player to act (middlehand).
func (g *Game) Init() (State, int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch {
	case g.handNo > 0:
		g.dealerSeat = (g.dealerSeat + 1) % NumPlayers
	case g.cfg.ForcedDealer != nil:
		g.dealerSeat = *g.cfg.ForcedDealer
	default:
		g.dealerSeat = g.rng.Intn(NumPlayers)
	}
	g.handNo++
	g.handID = uuid.New()
	g.settlement = nil

	r, err := NewRound(g.dealerSeat, g.rng, g.cfg.DeckOverride,
		g.logger.With(zap.Stringer("hand", g.handID)))
	if err != nil {
		return State{}, 0, err
	}
	g.round = r

	g.logger.Info("hand started",
		zap.Stringer("hand", g.handID),
		zap.Int("number", g.handNo),
		zap.Int("dealer", g.dealerSeat))

	cur := r.CurrentPlayerID()
	return g.stateLocked(cur), cur, nil
}

// Step applies a for the current player and returns the next player's state.
func (g *Game) Step(a Action) (State, int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.stepLocked(a); err != nil {
		return State{}, 0, err
	}
	cur := g.round.CurrentPlayerID()
	return g.stateLocked(cur), cur, nil
}

// StepID decodes and applies an action id.
func (g *Game) StepID(id ActionID) (State, int, error) {
	a, err := DecodeAction(id)
	if err != nil {
		return State{}, 0, err
	}
	return g.Step(a)
}

// Act is Step with a seat check: it rejects actions submitted by anyone but the current
// player with ErrOutOfTurn.
func (g *Game) Act(seat int, a Action) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.round != nil && !g.round.IsOver() && g.round.Aborted() == nil {
		if cur := g.round.CurrentPlayerID(); seat != cur {
			return fmt.Errorf("%w: P%d acted, P%d to act", ErrOutOfTurn, seat, cur)
		}
	}
	return g.stepLocked(a)
}

func (g *Game) stepLocked(a Action) error {
	r := g.round
	if r == nil {
		return ErrHandNotStarted
	}
	if r.Aborted() != nil {
		return ErrHandAborted
	}
	if r.IsOver() {
		return ErrHandEnded
	}
	before := r.Phase()

	var err error
	switch x := a.(type) {
	case Bid, Pass:
		err = r.placeBid(x)
	case DeclareContract, DeclareModifier, FinishContract:
		err = r.declare(x)
	case PlayCard:
		err = r.playCard(x)
	default:
		err = fmt.Errorf("%w: unknown action %T", ErrIllegalAction, a)
	}
	if err != nil {
		return err
	}

	after := r.Phase()
	if after == before {
		return nil
	}
	switch after {
	case PhaseDeclare:
		decl, _ := r.Declarer()
		g.logger.Info("auction finished",
			zap.Stringer("hand", g.handID),
			zap.Int("declarer", decl),
			zap.Int("top_bid", r.TopBid()))
	case PhasePlay:
		g.logger.Info("contract finished",
			zap.Stringer("hand", g.handID),
			zap.Any("contract", r.Contract()),
			zap.Int("contract_score", r.ContractScore()),
			zap.Int("game_modifier", r.GameModifier()))
	case PhaseOver:
		s, err := g.judge(r)
		if err != nil {
			// the last card is already in the history; the hand cannot be settled
			return r.abort(err)
		}
		g.settlement = s
		g.logger.Info("hand settled",
			zap.Stringer("hand", g.handID),
			zap.Int("declarer", s.Declarer),
			zap.Int("final_value", s.FinalValue),
			zap.Bool("won", s.Won),
			zap.Bool("forced_loss", s.ForcedLoss),
			zap.Float64s("payoffs", s.Payoffs[:]))
	}
	return nil
}

func (g *Game) IsOver() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.round != nil && g.round.IsOver()
}

// PlayerID is the seat to act.
func (g *Game) PlayerID() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.round == nil {
		return -1
	}
	return g.round.CurrentPlayerID()
}

func (g *Game) NumPlayers() int { return NumPlayers }
func (g *Game) NumActions() int { return NumActions }

func (g *Game) HandID() uuid.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.handID
}

func (g *Game) DealerSeat() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.dealerSeat
}

// Round exposes the current round for read-only inspection. Its accessors do not take the
// game lock, so callers must not read it concurrently with Step or Act.
func (g *Game) Round() *Round {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.round
}

// LegalActions is a pure projection of current state.
func (g *Game) LegalActions() []Action {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.round == nil {
		return nil
	}
	return g.judger.LegalActions(g.round)
}

func (g *Game) LegalActionIDs() []ActionID {
	return ActionIDs(g.LegalActions())
}

// Payoffs returns the per-seat payoff of the finished hand.
func (g *Game) Payoffs() ([NumPlayers]float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.round == nil {
		return [NumPlayers]float64{}, ErrHandNotStarted
	}
	if g.round.Aborted() != nil {
		return [NumPlayers]float64{}, ErrHandAborted
	}
	if g.settlement == nil {
		return [NumPlayers]float64{}, ErrHandNotOver
	}
	return g.settlement.Payoffs, nil
}

// Settlement is nil until the hand is over.
func (g *Game) Settlement() *Settlement {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.settlement
}

// State returns the observation of seat.
func (g *Game) State(seat int) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.round == nil {
		return State{}, ErrHandNotStarted
	}
	if seat < 0 || seat >= NumPlayers {
		return State{}, fmt.Errorf("invalid seat %d", seat)
	}
	return g.stateLocked(seat), nil
}

func (g *Game) PerfectInfo() (PerfectInfo, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.round == nil {
		return PerfectInfo{}, ErrHandNotStarted
	}
	return g.round.PerfectInfo(), nil
}

// History returns the moves of the current hand.
func (g *Game) History() []Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.round == nil {
		return nil
	}
	return g.round.History()
}
