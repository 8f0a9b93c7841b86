package skat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skat-lite/card"
)

func cards(t *testing.T, strs ...string) []card.Card {
	t.Helper()
	out, err := card.ParseList(strs)
	require.NoError(t, err)
	return out
}

func TestCardValues_SumTo120(t *testing.T) {
	assert.Equal(t, TotalPoints, PointsOf(card.All()))
	assert.Equal(t, 11, CardValue(card.CardHeartA))
	assert.Equal(t, 10, CardValue(card.CardSpadeT))
	assert.Equal(t, 2, CardValue(card.CardClubJ))
	assert.Equal(t, 0, CardValue(card.CardDiamond9))
}

func TestTrumpSuit_Lengths(t *testing.T) {
	for c := ContractDiamonds; c <= ContractClubs; c++ {
		trump := TrumpSuit(c)
		require.Len(t, trump, 11, "contract %s", c)
		// jacks are the four highest trumps, in D H S C order
		assert.Equal(t, card.OfRank(card.Jack), trump[7:], "contract %s", c)
	}
	assert.Equal(t, card.OfRank(card.Jack), TrumpSuit(ContractGrand))
	assert.Empty(t, TrumpSuit(ContractNull))
}

func TestTrumpSuit_TenBelowAce(t *testing.T) {
	assert.Equal(t,
		cards(t, "7H", "8H", "9H", "QH", "KH", "TH", "AH", "JD", "JH", "JS", "JC"),
		TrumpSuit(ContractHearts))
}

func TestTrickSuit(t *testing.T) {
	// trump lead follows the trump order
	assert.Equal(t, TrumpSuit(ContractClubs), TrickSuit(ContractClubs, card.CardDiamondJ))
	assert.Equal(t, TrumpSuit(ContractClubs), TrickSuit(ContractClubs, card.CardClub7))
	// plain lead drops the jack and moves the ten
	assert.Equal(t, cards(t, "7S", "8S", "9S", "QS", "KS", "TS", "AS"), TrickSuit(ContractGrand, card.CardSpadeK))
	// Null keeps natural order and the jack
	assert.Equal(t, card.OfSuit(card.Spades), TrickSuit(ContractNull, card.CardSpadeJ))
}

func TestIsTrump(t *testing.T) {
	assert.True(t, IsTrump(ContractHearts, card.CardClubJ))
	assert.True(t, IsTrump(ContractHearts, card.CardHeart7))
	assert.False(t, IsTrump(ContractHearts, card.CardSpadeA))
	assert.True(t, IsTrump(ContractGrand, card.CardDiamondJ))
	assert.False(t, IsTrump(ContractGrand, card.CardClubA))
	assert.False(t, IsTrump(ContractNull, card.CardClubJ))
}

func TestTrickWinner(t *testing.T) {
	tests := []struct {
		name     string
		contract Contract
		trick    []string
		want     int
	}{
		{"jack lead beats everything", ContractClubs, []string{"JD", "AC", "TC"}, 0},
		{"higher jack wins", ContractClubs, []string{"JD", "7C", "JC"}, 2},
		{"trump beats led suit", ContractClubs, []string{"AS", "TS", "7C"}, 2},
		{"ten beats king in suit", ContractGrand, []string{"KH", "TH", "9H"}, 1},
		{"off-suit never wins", ContractGrand, []string{"7H", "AS", "AD"}, 0},
		{"jack trumps in grand", ContractGrand, []string{"AH", "TH", "JD"}, 2},
		{"null natural order", ContractNull, []string{"TH", "JH", "9H"}, 1},
		{"null jack is not trump", ContractNull, []string{"7S", "JC", "8S"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TrickWinner(tt.contract, cards(t, tt.trick...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := TrickWinner(ContractGrand, nil)
	assert.Error(t, err)
}

func TestLegalPlays_FollowRule(t *testing.T) {
	hand := cards(t, "JC", "7H", "AS", "TS", "8D")

	assert.Equal(t, hand, LegalPlays(ContractHearts, hand, nil))
	// trump lead: jacks and hearts follow
	assert.Equal(t, cards(t, "JC", "7H"), LegalPlays(ContractHearts, hand, cards(t, "KH")))
	// spade lead in a heart game: the jack is not a spade
	assert.Equal(t, cards(t, "AS", "TS"), LegalPlays(ContractHearts, hand, cards(t, "7S")))
	// no clubs held: anything goes
	assert.Equal(t, hand, LegalPlays(ContractHearts, hand, cards(t, "7C")))
	// Null: the club jack follows clubs
	assert.Equal(t, cards(t, "JC"), LegalPlays(ContractNull, hand, cards(t, "7C")))
}

func TestMatadors(t *testing.T) {
	with2 := card.SetOf(cards(t, "JC", "JS", "AC", "7H")...)
	assert.Equal(t, 2, Matadors(ContractClubs, with2))
	assert.Equal(t, 2, Matadors(ContractGrand, with2))

	without3 := card.SetOf(cards(t, "JD", "AC", "TC")...)
	// missing JC JS JH
	assert.Equal(t, 3, Matadors(ContractGrand, without3))
	// JC JS JH missing, JD held
	assert.Equal(t, 3, Matadors(ContractClubs, without3))

	allJacks := card.SetOf(card.OfRank(card.Jack)...)
	assert.Equal(t, 4, Matadors(ContractGrand, allJacks))
	assert.Equal(t, 0, Matadors(ContractNull, allJacks))
}

func TestContractValidity(t *testing.T) {
	assert.True(t, IsValidContract([]Token{"G", "Hand", "Schneider"}))
	assert.False(t, IsValidContract([]Token{"Hand"}))
	assert.False(t, IsValidContract([]Token{"G", "C"}))
	assert.False(t, IsValidContract([]Token{"N", "Open", "Open"}))
	assert.False(t, IsValidContract([]Token{"N", "Contra"}))

	assert.Equal(t, int(ContractGrand), ContractIndex([]Token{"Hand", "G"}))
	assert.Equal(t, -1, ContractIndex([]Token{"G", "G"}))
	assert.Equal(t, int(ModifierSchwarz), ModifierIndex("Schwarz"))
	assert.Equal(t, -1, ModifierIndex("Kontra"))
}
