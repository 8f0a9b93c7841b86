package npc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skat-lite/card"
	"skat-lite/skat"
)

func hand(t *testing.T, strs ...string) []card.Card {
	t.Helper()
	out, err := card.ParseList(strs)
	require.NoError(t, err)
	return out
}

func allBids() []skat.Action {
	out := make([]skat.Action, 0, len(skat.BidTable)+1)
	for _, b := range skat.BidTable {
		out = append(out, skat.Bid{Amount: b})
	}
	return append(out, skat.Pass{})
}

func steadyPersona(aggression, caution float64) *NPCPersona {
	return &NPCPersona{
		ID:    "test",
		Name:  "TEST",
		Brain: PersonalityProfile{Aggression: aggression, Caution: caution, Randomness: 0},
	}
}

func TestRuleBrain_CautiousPassesWeakHand(t *testing.T) {
	brain := NewRuleBrain(steadyPersona(0.1, 0.85), 1)
	view := GameView{
		Phase:        skat.PhaseBid,
		Hand:         hand(t, "7D", "8D", "QD", "KD", "7H", "QH", "KH", "7S", "QS", "KS"),
		TopBidder:    -1,
		Declarer:     -1,
		LegalActions: allBids(),
	}
	assert.Equal(t, skat.Pass{}, brain.Decide(view).Action)
}

func TestRuleBrain_StrongHandBidsAndDeclaresGrand(t *testing.T) {
	brain := NewRuleBrain(steadyPersona(0.9, 0.2), 1)
	strong := hand(t, "JC", "JS", "JH", "JD", "AC", "AS", "TC", "KC", "9C", "8C")

	ev := evaluateHand(strong)
	assert.Equal(t, skat.ContractGrand, ev.contract)
	assert.Equal(t, 24*5, ev.value)

	view := GameView{Phase: skat.PhaseBid, Hand: strong, TopBidder: -1, Declarer: -1, LegalActions: allBids()}
	assert.Equal(t, skat.Bid{Amount: 18}, brain.Decide(view).Action)

	var contracts []skat.Action
	for c := skat.ContractDiamonds; c <= skat.ContractNull; c++ {
		contracts = append(contracts, skat.DeclareContract{Contract: c})
	}
	view = GameView{Phase: skat.PhaseDeclare, Hand: strong, Declarer: 0, LegalActions: contracts}
	assert.Equal(t, skat.DeclareContract{Contract: skat.ContractGrand}, brain.Decide(view).Action)

	view.HasContract = true
	view.Contract = skat.ContractGrand
	view.LegalActions = []skat.Action{
		skat.DeclareModifier{Modifier: skat.ModifierSkat},
		skat.DeclareModifier{Modifier: skat.ModifierHand},
	}
	assert.Equal(t, skat.DeclareModifier{Modifier: skat.ModifierHand}, brain.Decide(view).Action)
}

func playActions(cards []card.Card) []skat.Action {
	out := make([]skat.Action, 0, len(cards))
	for _, c := range cards {
		out = append(out, skat.PlayCard{Card: c})
	}
	return out
}

func TestRuleBrain_PlaysForPartnerAndWinsCheaply(t *testing.T) {
	brain := NewRuleBrain(steadyPersona(0.5, 0.5), 1)

	// defender behind a partner's winning ace adds the ten
	view := GameView{
		Seat:         2,
		Phase:        skat.PhasePlay,
		Declarer:     1,
		HasContract:  true,
		Contract:     skat.ContractGrand,
		Trick:        hand(t, "AH"),
		TrickSeats:   []int{0},
		LegalActions: playActions(hand(t, "7H", "TH")),
	}
	assert.Equal(t, skat.PlayCard{Card: card.CardHeartT}, brain.Decide(view).Action)

	// declarer takes the king with the ten rather than the ace
	view = GameView{
		Seat:         1,
		Phase:        skat.PhasePlay,
		Declarer:     1,
		HasContract:  true,
		Contract:     skat.ContractGrand,
		Trick:        hand(t, "KH"),
		TrickSeats:   []int{0},
		LegalActions: playActions(hand(t, "7H", "TH", "AH")),
	}
	assert.Equal(t, skat.PlayCard{Card: card.CardHeartT}, brain.Decide(view).Action)

	// declarer leads the top trump
	view.Trick, view.TrickSeats = nil, nil
	view.LegalActions = playActions(hand(t, "JD", "JC", "AS"))
	assert.Equal(t, skat.PlayCard{Card: card.CardClubJ}, brain.Decide(view).Action)
}

func TestRuleBrain_NullDeclarerDucks(t *testing.T) {
	brain := NewRuleBrain(steadyPersona(0.5, 0.5), 1)
	view := GameView{
		Seat:         0,
		Phase:        skat.PhasePlay,
		Declarer:     0,
		HasContract:  true,
		Contract:     skat.ContractNull,
		Trick:        hand(t, "JS"),
		TrickSeats:   []int{2},
		LegalActions: playActions(hand(t, "7S", "TS", "QS")),
	}
	// TS is the highest spade below the jack in Null order
	assert.Equal(t, skat.PlayCard{Card: card.CardSpadeT}, brain.Decide(view).Action)
}

func TestTable_PlaysWholeHands(t *testing.T) {
	m := NewManager(DefaultRegistry(), 11, nil)
	seatings := [][skat.NumPlayers]string{
		{"steady", "gambler", "rock"},
		{"novice", RandomPersonaID, "steady"},
		{RandomPersonaID, RandomPersonaID, RandomPersonaID},
	}
	for _, ids := range seatings {
		table, err := m.NewTable(ids)
		require.NoError(t, err)
		g, err := skat.NewGame(skat.Config{Seed: 5})
		require.NoError(t, err)

		for i := 0; i < 30; i++ {
			s, err := table.PlayHand(g)
			require.NoError(t, err, "seating %v hand %d", ids, i)
			require.NotNil(t, s)
			assert.InDelta(t, 0, s.Payoffs[0]+s.Payoffs[1]+s.Payoffs[2], 1e-9)
		}
	}
}

func TestManager_UnknownPersona(t *testing.T) {
	m := NewManager(NewRegistry(), 1, nil)
	_, err := m.NewTable([skat.NumPlayers]string{"steady", "x", "y"})
	assert.Error(t, err)
}
