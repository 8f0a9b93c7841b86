package npc

import (
	"skat-lite/card"
	"skat-lite/skat"
)

// GameView is a read-only projection of the round visible to one seat.
type GameView struct {
	Seat  int
	Role  skat.Role
	Phase skat.Phase

	Hand       []card.Card
	Trick      []card.Card // current trick in play order
	TrickSeats []int

	TopBid    int
	TopBidder int // -1 when nobody has bid
	Declarer  int // -1 during the auction

	HasContract bool
	Contract    skat.Contract
	Modifiers   []skat.Modifier

	LegalActions []skat.Action
}

// Decision is what a BrainDecider returns.
type Decision struct {
	Action skat.Action
}

// BrainDecider is the core interface all NPC types implement.
type BrainDecider interface {
	// Decide is called when it's the NPC's turn.
	Decide(view GameView) Decision
	// Name returns a human-readable identifier for debugging.
	Name() string
}

// BuildGameView projects the game for the seat to act.
func BuildGameView(g *skat.Game) GameView {
	r := g.Round()
	seat := r.CurrentPlayerID()
	view := GameView{
		Seat:         seat,
		Role:         r.RoleOf(seat),
		Phase:        r.Phase(),
		Hand:         r.Player(seat).Hand(),
		TopBid:       r.TopBid(),
		TopBidder:    -1,
		Declarer:     -1,
		Modifiers:    r.Modifiers(),
		LegalActions: g.LegalActions(),
	}
	if tb, ok := r.TopBidder(); ok {
		view.TopBidder = tb
	}
	if d, ok := r.Declarer(); ok {
		view.Declarer = d
	}
	view.Contract, view.HasContract = r.ContractType()
	for _, m := range r.CurrentTrick() {
		if pc, ok := m.Action.(skat.PlayCard); ok {
			view.Trick = append(view.Trick, pc.Card)
			view.TrickSeats = append(view.TrickSeats, m.Seat)
		}
	}
	return view
}
