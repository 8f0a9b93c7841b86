package skat

import (
	"github.com/google/uuid"

	"skat-lite/card"
)

// State is what one seat observes. One-hot blocks use a fixed width so a State can be
// flattened into a feature vector (see Features).
type State struct {
	HandID    uuid.UUID
	Seat      int
	MoveCount int

	Hand         []card.Card
	CurrentTrick []Move
	WonTricks    [NumPlayers]card.Set
	// Hidden cards: neither in this hand nor played yet (includes the skat).
	Hidden card.Set

	Contract  [NumContracts]bool
	Modifiers [NumModifiers]bool
	// Bid[0] means no bid yet; Bid[i] is BidTable[i-1].
	Bid     [len(BidTable) + 1]bool
	Dealer  [NumPlayers]bool
	Current [NumPlayers]bool
	Phase   [NumPhases]bool

	LegalActions []ActionID
	// LegalMask[id-1] is set for each legal id.
	LegalMask [NumActions]bool
}

// FeatureSize is the length of State.Features.
const FeatureSize = card.NumCards*(3+NumPlayers) + NumContracts + NumModifiers + len(BidTable) + 1 +
	2*NumPlayers + NumPhases

func (g *Game) stateLocked(seat int) State {
	r := g.round
	v := r.view()
	p := r.players[seat]

	s := State{
		HandID:       g.handID,
		Seat:         seat,
		MoveCount:    len(r.history),
		Hand:         p.Hand(),
		CurrentTrick: append([]Move{}, v.trick...),
	}

	played := card.Set(0)
	for _, m := range r.history {
		if pc, ok := m.Action.(PlayCard); ok {
			played = played.With(pc.Card)
		}
	}
	s.Hidden = card.Full.Minus(p.HandSet()).Minus(played)
	for i, tricks := range v.tricksWon {
		for _, t := range tricks {
			s.WonTricks[i] = s.WonTricks[i].Union(card.SetOf(trickCards(t)...))
		}
	}

	if v.hasContract {
		s.Contract[v.contract] = true
	}
	for _, m := range v.modifiers {
		s.Modifiers[m] = true
	}
	s.Bid[bidIndex(v.topBid)+1] = true
	s.Dealer[r.dealerSeat] = true
	s.Current[v.current] = true
	s.Phase[v.phase] = true

	if v.phase != PhaseOver && r.aborted == nil && seat == v.current {
		legal := g.judger.legalActions(r, v)
		s.LegalActions = ActionIDs(legal)
		s.LegalMask = ActionMask(legal)
	}
	return s
}

// Features flattens the state: own hand, hidden cards, won cards per seat, current trick
// (each a 32-slot presence vector), then the one-hot blocks.
func (s State) Features() []float32 {
	out := make([]float32, 0, FeatureSize)
	addSet := func(set card.Set) {
		for _, b := range set.Vector() {
			out = append(out, float32(b))
		}
	}
	addBools := func(bs []bool) {
		for _, b := range bs {
			if b {
				out = append(out, 1)
			} else {
				out = append(out, 0)
			}
		}
	}

	addSet(card.SetOf(s.Hand...))
	addSet(s.Hidden)
	for _, w := range s.WonTricks {
		addSet(w)
	}
	addSet(card.SetOf(trickCards(s.CurrentTrick)...))
	addBools(s.Contract[:])
	addBools(s.Modifiers[:])
	addBools(s.Bid[:])
	addBools(s.Dealer[:])
	addBools(s.Current[:])
	addBools(s.Phase[:])
	return out
}
