package card

import (
	"fmt"
	"strings"
)

// Card 牌 id
//
// 编码规则: id = rank + 8*suit
// - suit: 0:Diamonds, 1:Hearts, 2:Spades, 3:Clubs
// - rank: 0:7, 1:8, 2:9, 3:T, 4:J, 5:Q, 6:K, 7:A
type Card uint8

const (
	// NumCards is the size of the Skat deck.
	NumCards = 32

	CardInvalid Card = 0xFF
)

// New builds the card for a suit and rank.
func New(s Suit, r Rank) Card {
	if !s.Valid() || !r.Valid() {
		return CardInvalid
	}
	return Card(uint8(r) + 8*uint8(s))
}

// FromID returns the catalog card with the given dense id.
func FromID(id int) (Card, error) {
	if id < 0 || id >= NumCards {
		return CardInvalid, fmt.Errorf("invalid card id: %d", id)
	}
	return catalog().cards[id], nil
}

func (c Card) Valid() bool { return c < NumCards }

// ID 0..31
func (c Card) ID() int { return int(c) }

func (c Card) Suit() Suit {
	if !c.Valid() {
		return SuitInvalid
	}
	return Suit(c / 8)
}

func (c Card) Rank() Rank {
	if !c.Valid() {
		return RankInvalid
	}
	return Rank(c % 8)
}

func (c Card) IsJack() bool { return c.Valid() && c.Rank() == Jack }

func (c Card) String() string {
	if !c.Valid() {
		return "Invalid"
	}
	return c.Rank().String() + c.Suit().String()
}

// Parse 将字符串 (如 "JC", "Td", "10h", "7S") 转换为 Card
func Parse(cardStr string) (Card, error) {
	cardStr = strings.TrimSpace(cardStr)
	if len(cardStr) < 2 {
		return CardInvalid, fmt.Errorf("invalid card string: %s", cardStr)
	}

	var s Suit
	switch cardStr[len(cardStr)-1] {
	case 'd', 'D':
		s = Diamonds
	case 'h', 'H':
		s = Hearts
	case 's', 'S':
		s = Spades
	case 'c', 'C':
		s = Clubs
	default:
		return CardInvalid, fmt.Errorf("invalid suit: %c", cardStr[len(cardStr)-1])
	}

	var r Rank
	switch strings.ToUpper(cardStr[:len(cardStr)-1]) {
	case "7":
		r = Seven
	case "8":
		r = Eight
	case "9":
		r = Nine
	case "T", "10":
		r = Ten
	case "J":
		r = Jack
	case "Q":
		r = Queen
	case "K":
		r = King
	case "A":
		r = Ace
	default:
		return CardInvalid, fmt.Errorf("invalid rank: %s", cardStr[:len(cardStr)-1])
	}
	return New(s, r), nil
}

// MustParse is Parse for literals in tests and tables.
func MustParse(cardStr string) Card {
	c, err := Parse(cardStr)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseList parses every entry and rejects duplicates.
func ParseList(strs []string) ([]Card, error) {
	out := make([]Card, 0, len(strs))
	var seen Set
	for _, s := range strs {
		c, err := Parse(s)
		if err != nil {
			return nil, err
		}
		if seen.Has(c) {
			return nil, fmt.Errorf("duplicate card: %s", c)
		}
		seen = seen.With(c)
		out = append(out, c)
	}
	return out, nil
}
