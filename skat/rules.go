package skat

import (
	"fmt"

	"skat-lite/card"
)

var cardValues = [8]int{
	card.Seven: 0,
	card.Eight: 0,
	card.Nine:  0,
	card.Ten:   10,
	card.Jack:  2,
	card.Queen: 3,
	card.King:  4,
	card.Ace:   11,
}

// TotalPoints is the sum of all card values in the deck.
const TotalPoints = 120

// NumTricks per hand.
const NumTricks = 10

// CardValue J=2 A=11 T=10 K=4 Q=3, 9/8/7=0, independent of suit.
func CardValue(c card.Card) int {
	if !c.Valid() {
		return 0
	}
	return cardValues[c.Rank()]
}

func PointsOf(cards []card.Card) int {
	total := 0
	for _, c := range cards {
		total += CardValue(c)
	}
	return total
}

// gameOrder is a suit without its jack, ten moved just below the ace: 7 8 9 Q K T A.
func gameOrder(s card.Suit) []card.Card {
	natural := card.OfSuit(s)
	out := make([]card.Card, 0, 7)
	for _, c := range natural {
		if c.Rank() == card.Jack || c.Rank() == card.Ten {
			continue
		}
		if c.Rank() == card.Ace {
			out = append(out, card.New(s, card.Ten))
		}
		out = append(out, c)
	}
	return out
}

// TrumpSuit returns the trump cards in ascending strength. Suit games: the suit's seven
// non-jack cards followed by the four jacks (11). Grand: the jacks (4). Null: none.
func TrumpSuit(c Contract) []card.Card {
	switch {
	case c.IsSuit():
		s, _ := c.Suit()
		return append(gameOrder(s), card.OfRank(card.Jack)...)
	case c == ContractGrand:
		return card.OfRank(card.Jack)
	}
	return nil
}

// IsTrump reports whether a card belongs to the trump suit of the contract.
func IsTrump(c Contract, x card.Card) bool {
	switch {
	case c == ContractNull:
		return false
	case x.IsJack():
		return true
	case c.IsSuit():
		s, _ := c.Suit()
		return x.Suit() == s
	}
	return false
}

// TrickSuit returns the ordered cards that follow the lead card. A trump lead yields the
// trump order; otherwise the lead's suit, jack removed and ten relocated below the ace for
// suit/Grand games, natural order for Null.
func TrickSuit(c Contract, lead card.Card) []card.Card {
	if IsTrump(c, lead) {
		return TrumpSuit(c)
	}
	if c == ContractNull {
		return card.OfSuit(lead.Suit())
	}
	return gameOrder(lead.Suit())
}

func indexOf(cards []card.Card, x card.Card) int {
	for i, c := range cards {
		if c == x {
			return i
		}
	}
	return -1
}

// TrickWinner returns the index (into trick) of the winning card. The lead fixes the
// trick suit; a trump beats any non-trump; among trumps, and among cards of the trick
// suit, the higher order wins. Off-suit non-trumps never win.
func TrickWinner(c Contract, trick []card.Card) (int, error) {
	if len(trick) == 0 {
		return -1, fmt.Errorf("empty trick")
	}
	trump := TrumpSuit(c)
	follow := TrickSuit(c, trick[0])

	winner := 0
	for i := 1; i < len(trick); i++ {
		cur, best := trick[i], trick[winner]
		ct, bt := indexOf(trump, cur), indexOf(trump, best)
		switch {
		case ct >= 0 && bt < 0:
			winner = i
		case ct >= 0 && bt >= 0:
			if ct > bt {
				winner = i
			}
		case ct < 0 && bt < 0:
			cf, bf := indexOf(follow, cur), indexOf(follow, best)
			if cf >= 0 && bf >= 0 && cf > bf {
				winner = i
			}
		}
	}
	return winner, nil
}

// LegalPlays applies the follow rule: an empty trick allows any card; otherwise cards of
// the trick suit must be played when held, and only without them is any card allowed.
func LegalPlays(c Contract, hand []card.Card, trick []card.Card) []card.Card {
	out := make([]card.Card, 0, len(hand))
	if len(trick) == 0 {
		return append(out, hand...)
	}
	follow := card.SetOf(TrickSuit(c, trick[0])...)
	for _, x := range hand {
		if follow.Has(x) {
			out = append(out, x)
		}
	}
	if len(out) == 0 {
		out = append(out, hand...)
	}
	return out
}

// Matadors counts "with" or "without" from the top trump down over the held cards: when the
// highest trump is held, the run of consecutive held trumps; otherwise the run of consecutive
// missing trumps. Null games have no matadors.
func Matadors(c Contract, held card.Set) int {
	trump := TrumpSuit(c)
	if len(trump) == 0 {
		return 0
	}
	with := held.Has(trump[len(trump)-1])
	n := 0
	for i := len(trump) - 1; i >= 0; i-- {
		if held.Has(trump[i]) != with {
			break
		}
		n++
	}
	return n
}

// ContractIndex returns the index of the contract type in ContractTable, or -1 when the
// token sequence is not a valid contract.
func ContractIndex(tokens []Token) int {
	if !IsValidContract(tokens) {
		return -1
	}
	for _, t := range tokens {
		if c, err := ParseContract(string(t)); err == nil {
			return int(c)
		}
	}
	return -1
}

// ModifierIndex returns the index of name in ModifierTable, or -1.
func ModifierIndex(name string) int {
	m, err := ParseModifier(name)
	if err != nil {
		return -1
	}
	return int(m)
}

// IsValidContract requires exactly one contract-type token, known modifiers and no
// duplicate tokens.
func IsValidContract(tokens []Token) bool {
	seen := make(map[Token]struct{}, len(tokens))
	contracts := 0
	for _, t := range tokens {
		if _, dup := seen[t]; dup {
			return false
		}
		seen[t] = struct{}{}
		if _, err := ParseContract(string(t)); err == nil {
			contracts++
			continue
		}
		if ModifierIndex(string(t)) < 0 {
			return false
		}
	}
	return contracts == 1
}
