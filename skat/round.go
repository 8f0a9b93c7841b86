package skat

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"skat-lite/card"
)

// Round is the state machine of one hand. Besides the hands, the only stored state is the
// append-only move history; phase, auction, contract and scores are folded from it on
// demand (see view). Moves are applied only through Game, which serializes them and
// settles the finished hand.
type Round struct {
	dealerSeat int
	dealer     *Dealer
	players    [NumPlayers]*Player
	history    []Move

	judger  Judger
	aborted error
	logger  *zap.Logger
}

// NewRound creates the players and deals a hand. deck, when non-empty, replaces the shuffle.
func NewRound(dealerSeat int, rng *rand.Rand, deck []card.Card, logger *zap.Logger) (*Round, error) {
	if dealerSeat < 0 || dealerSeat >= NumPlayers {
		return nil, fmt.Errorf("invalid dealer seat %d", dealerSeat)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Round{
		dealerSeat: dealerSeat,
		history:    make([]Move, 0, 64),
		logger:     logger,
	}
	for i := range r.players {
		r.players[i] = newPlayer(i)
	}
	r.dealer = NewDealer(dealerSeat, rng, deck)
	if err := r.dealer.DealHand(r.players); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Round) DealerSeat() int { return r.dealerSeat }
func (r *Round) Dealer() *Dealer { return r.dealer }
func (r *Round) Forehand() int   { return (r.dealerSeat + 1) % NumPlayers }
func (r *Round) Middlehand() int { return (r.dealerSeat + 2) % NumPlayers }
func (r *Round) Backhand() int   { return r.dealerSeat }

// RoleOf backhand = dealer, forehand = dealer+1, middlehand = dealer+2.
func (r *Round) RoleOf(seat int) Role {
	return Role((seat - r.dealerSeat + 2) % NumPlayers)
}

// seniorTo reports whether seat a may hold (match) a bid made by seat b.
func (r *Round) seniorTo(a, b int) bool {
	if b < 0 || a == b {
		return false
	}
	return r.RoleOf(a) < r.RoleOf(b)
}

func (r *Round) Player(seat int) *Player {
	if seat < 0 || seat >= NumPlayers {
		return nil
	}
	return r.players[seat]
}

// History returns a copy of the move log.
func (r *Round) History() []Move {
	return append([]Move{}, r.history...)
}

func (r *Round) Aborted() error { return r.aborted }

type roundView struct {
	phase   Phase
	current int

	topBid    int
	topBidder int
	passes    int
	declarer  int

	hasContract   bool
	contract      Contract
	modifiers     []Modifier
	contractScore int
	gameModifier  int
	matadors      int
	finished      bool

	cardsPlayed int
	trick       []Move
	lastTrick   []Move
	tricksWon   [NumPlayers][][]Move
	scores      [NumPlayers]int
}

func (v roundView) hasModifier(m Modifier) bool {
	for _, x := range v.modifiers {
		if x == m {
			return true
		}
	}
	return false
}

func (v roundView) tokens() []Token {
	if !v.hasContract {
		return nil
	}
	out := make([]Token, 0, 1+len(v.modifiers))
	out = append(out, v.contract.Token())
	for _, m := range v.modifiers {
		out = append(out, m.Token())
	}
	return out
}

// view folds the move history into the derived round state.
func (r *Round) view() roundView {
	v := roundView{
		current:      r.Middlehand(),
		topBidder:    -1,
		declarer:     -1,
		gameModifier: 1,
	}
	for _, m := range r.history {
		switch a := m.Action.(type) {
		case Bid:
			prev := v.topBidder
			v.topBid, v.topBidder = a.Amount, m.Seat
			if prev < 0 {
				v.current = r.Forehand()
			} else {
				v.current = prev
			}
		case Pass:
			v.passes++
			next := r.nextBidderAfterPass(m.Seat, v.topBidder)
			if next < 0 || v.passes >= 2 {
				v.declarer = v.topBidder
				if v.declarer < 0 {
					v.declarer = r.Forehand()
				}
				v.current = v.declarer
			} else {
				v.current = next
			}
		case DeclareContract:
			v.hasContract = true
			v.contract = a.Contract
			v.contractScore = a.Contract.BaseScore()
		case DeclareModifier:
			v.modifiers = append(v.modifiers, a.Modifier)
			if v.contract == ContractNull {
				switch a.Modifier {
				case ModifierHand:
					v.contractScore += 13
				case ModifierOpen:
					v.contractScore += 23
				}
				break
			}
			if a.Modifier != ModifierSkat {
				v.gameModifier++
			}
			if a.Modifier == ModifierHand {
				v.gameModifier++
			}
		case FinishContract:
			v.finished = true
			if v.contract != ContractNull {
				v.matadors = Matadors(v.contract, r.declarerCards(v.declarer))
				v.gameModifier += v.matadors
			}
			v.current = r.Forehand()
		case PlayCard:
			v.cardsPlayed++
			v.trick = append(v.trick, m)
			if len(v.trick) < NumPlayers {
				v.current = (m.Seat + 1) % NumPlayers
				break
			}
			cards := trickCards(v.trick)
			w, _ := TrickWinner(v.contract, cards)
			winner := v.trick[w].Seat
			v.tricksWon[winner] = append(v.tricksWon[winner], v.trick)
			v.scores[winner] += PointsOf(cards)
			v.current = winner
			v.lastTrick = v.trick
			v.trick = nil
		}
	}

	switch {
	case v.hasContract && r.handsEmpty():
		v.phase = PhaseOver
	case v.finished:
		v.phase = PhasePlay
	case v.passes >= 2 || v.hasContract || len(v.modifiers) > 0:
		v.phase = PhaseDeclare
	default:
		v.phase = PhaseBid
	}
	return v
}

// nextBidderAfterPass returns the seat that bids next, or -1 when the auction ends.
func (r *Round) nextBidderAfterPass(seat, topBidder int) int {
	switch seat {
	case r.Middlehand():
		if topBidder == r.Backhand() {
			return -1
		}
		return r.Backhand()
	case r.Backhand():
		return -1
	case r.Forehand():
		if topBidder == r.Middlehand() {
			return r.Backhand()
		}
		return -1
	}
	return -1
}

// declarerCards is the declarer's dealt hand plus the skat.
func (r *Round) declarerCards(seat int) card.Set {
	if seat < 0 || seat >= NumPlayers {
		return 0
	}
	held := r.players[seat].HandSet().Union(card.SetOf(r.dealer.skat...))
	for _, m := range r.history {
		if pc, ok := m.Action.(PlayCard); ok && m.Seat == seat {
			held = held.With(pc.Card)
		}
	}
	return held
}

func (r *Round) handsEmpty() bool {
	for _, p := range r.players {
		if p.HandSize() > 0 {
			return false
		}
	}
	return true
}

func trickCards(moves []Move) []card.Card {
	out := make([]card.Card, 0, len(moves))
	for _, m := range moves {
		if pc, ok := m.Action.(PlayCard); ok {
			out = append(out, pc.Card)
		}
	}
	return out
}

func (r *Round) Phase() Phase            { return r.view().phase }
func (r *Round) CurrentPlayerID() int    { return r.view().current }
func (r *Round) TopBid() int             { return r.view().topBid }
func (r *Round) ContractScore() int      { return r.view().contractScore }
func (r *Round) GameModifier() int       { return r.view().gameModifier }
func (r *Round) Matadors() int           { return r.view().matadors }
func (r *Round) CardsPlayed() int        { return r.view().cardsPlayed }
func (r *Round) Contract() []Token       { return r.view().tokens() }
func (r *Round) RoundScores() [3]int     { return r.view().scores }
func (r *Round) IsOver() bool            { return r.view().phase == PhaseOver }
func (r *Round) CurrentTrick() []Move    { return append([]Move{}, r.view().trick...) }
func (r *Round) LastTrick() []Move       { return append([]Move{}, r.view().lastTrick...) }
func (r *Round) Modifiers() []Modifier   { return append([]Modifier{}, r.view().modifiers...) }
func (r *Round) TricksWon(seat int) [][]Move {
	if seat < 0 || seat >= NumPlayers {
		return nil
	}
	return r.view().tricksWon[seat]
}

// TopBidder returns the seat holding the top bid.
func (r *Round) TopBidder() (int, bool) {
	v := r.view()
	return v.topBidder, v.topBidder >= 0
}

// Declarer is known once the auction is over.
func (r *Round) Declarer() (int, bool) {
	v := r.view()
	return v.declarer, v.declarer >= 0
}

// ContractType returns the declared contract type, if any.
func (r *Round) ContractType() (Contract, bool) {
	v := r.view()
	return v.contract, v.hasContract
}

// placeBid applies a Bid or Pass for the current player.
func (r *Round) placeBid(a Action) error {
	switch a.(type) {
	case Bid, Pass:
		return r.apply(a, PhaseBid)
	}
	return fmt.Errorf("%w: %s is not a bidding action", ErrIllegalAction, a)
}

// declare applies a contract, modifier or finish declaration for the declarer.
func (r *Round) declare(a Action) error {
	switch a.(type) {
	case DeclareContract, DeclareModifier, FinishContract:
		return r.apply(a, PhaseDeclare)
	}
	return fmt.Errorf("%w: %s is not a declaration", ErrIllegalAction, a)
}

// playCard plays a card from the current player's hand.
func (r *Round) playCard(a PlayCard) error {
	return r.apply(a, PhasePlay)
}

// apply validates a against the legal set and then commits it; nothing is mutated when
// validation fails.
func (r *Round) apply(a Action, want Phase) error {
	if r.aborted != nil {
		return ErrHandAborted
	}
	v := r.view()
	if v.phase != want {
		return fmt.Errorf("%w: %s during %s phase", ErrIllegalAction, a, v.phase)
	}
	if !r.judger.isLegal(r, v, a) {
		return fmt.Errorf("%w: %s for P%d", ErrIllegalAction, a, v.current)
	}

	seat := v.current
	if pc, ok := a.(PlayCard); ok {
		if !r.players[seat].removeCard(pc.Card) {
			return r.abort(ErrInvalidState(fmt.Sprintf("card %s not in hand of P%d", pc.Card, seat)))
		}
	}
	r.history = append(r.history, Move{Seat: seat, Action: a})

	if _, ok := a.(PlayCard); ok {
		if err := r.checkTrick(); err != nil {
			return r.abort(err)
		}
	}
	if err := r.checkConservation(); err != nil {
		return r.abort(err)
	}

	r.logger.Debug("action applied",
		zap.Int("seat", seat),
		zap.Stringer("action", a),
		zap.Int("move", len(r.history)))
	return nil
}

func (r *Round) abort(err error) error {
	r.aborted = err
	r.logger.Error("round aborted", zap.Error(err))
	return err
}

// trickMoves returns the k most recent moves, k = cards played mod 3 (3 on a boundary).
// Each of them must be a PlayCard.
func (r *Round) trickMoves() ([]Move, error) {
	played := 0
	for _, m := range r.history {
		if _, ok := m.Action.(PlayCard); ok {
			played++
		}
	}
	if played == 0 {
		return nil, nil
	}
	k := played % NumPlayers
	if k == 0 {
		k = NumPlayers
	}
	if k > len(r.history) {
		return nil, ErrInvalidState(fmt.Sprintf("trick of %d cards exceeds history", k))
	}
	moves := r.history[len(r.history)-k:]
	for _, m := range moves {
		if _, ok := m.Action.(PlayCard); !ok {
			return nil, ErrInvalidState(fmt.Sprintf("trick contains non-play move %s", m))
		}
	}
	return moves, nil
}

func (r *Round) checkTrick() error {
	moves, err := r.trickMoves()
	if err != nil {
		return err
	}
	seen := make(map[int]struct{}, NumPlayers)
	for _, m := range moves {
		if _, dup := seen[m.Seat]; dup {
			return ErrInvalidState(fmt.Sprintf("P%d played twice to one trick", m.Seat))
		}
		seen[m.Seat] = struct{}{}
	}
	return nil
}

// checkConservation: hands + skat + played cards must always be the 32-card deck.
func (r *Round) checkConservation() error {
	total := r.dealer.Remaining() + len(r.dealer.skat)
	all := card.SetOf(r.dealer.skat...).Union(card.SetOf(r.dealer.deck...))
	for _, p := range r.players {
		total += p.HandSize()
		all = all.Union(p.HandSet())
	}
	for _, m := range r.history {
		if pc, ok := m.Action.(PlayCard); ok {
			total++
			all = all.With(pc.Card)
		}
	}
	if total != card.NumCards || all != card.Full {
		return ErrInvalidState(fmt.Sprintf("card conservation broken: %d cards, %d distinct", total, all.Len()))
	}
	return nil
}

// PerfectInfo is the full, unhidden view of a round.
type PerfectInfo struct {
	MoveCount       int
	CurrentPlayerID int
	Phase           Phase
	TopBid          int
	TopBidder       int
	Declarer        int
	Contract        []Token
	ContractValue   int
	Hands           [NumPlayers][]card.Card
	Skat            []card.Card
	Scores          [NumPlayers]int
	TrickMoves      [NumPlayers]*card.Card
}

func (r *Round) PerfectInfo() PerfectInfo {
	v := r.view()
	info := PerfectInfo{
		MoveCount:       len(r.history),
		CurrentPlayerID: v.current,
		Phase:           v.phase,
		TopBid:          v.topBid,
		TopBidder:       v.topBidder,
		Declarer:        v.declarer,
		Contract:        v.tokens(),
		ContractValue:   v.contractScore * v.gameModifier,
		Skat:            r.dealer.Skat(),
		Scores:          v.scores,
	}
	for i, p := range r.players {
		info.Hands[i] = p.Hand()
	}
	for _, m := range v.trick {
		c := m.Action.(PlayCard).Card
		info.TrickMoves[m.Seat] = &c
	}
	return info
}
