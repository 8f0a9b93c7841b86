package skat

import (
	"fmt"
	"math/rand"

	"skat-lite/card"
)

// Dealer is the one-shot dealing service of a hand. It owns the shuffled copy of the
// catalog and the skat.
type Dealer struct {
	seat int

	shuffled card.CardList
	deck     card.CardList
	skat     card.CardList
}

// NewDealer shuffles the catalog with rng, or uses override verbatim when given (it must
// already be validated as a permutation of the deck).
func NewDealer(seat int, rng *rand.Rand, override []card.Card) *Dealer {
	d := &Dealer{seat: seat}
	if len(override) > 0 {
		d.shuffled.Init(override)
	} else {
		d.shuffled.Init(card.All())
		d.shuffled.Shuffle(rng)
	}
	d.deck.Init(d.shuffled)
	return d
}

func (d *Dealer) Seat() int { return d.seat }

// ShuffledDeck is the deck order this hand was dealt from.
func (d *Dealer) ShuffledDeck() []card.Card {
	return append([]card.Card{}, d.shuffled...)
}

func (d *Dealer) Skat() []card.Card {
	return append([]card.Card{}, d.skat...)
}

func (d *Dealer) Remaining() int { return d.deck.Count() }

// Deal moves n cards from the front of the deck into the player's hand.
func (d *Dealer) Deal(p *Player, n int) error {
	cards, ok := d.deck.PopCards(n)
	if !ok {
		return ErrInvalidState(fmt.Sprintf("deck underflow: want %d, have %d", n, d.deck.Count()))
	}
	p.AddHandCard(cards...)
	return nil
}

// MakeSkat sets aside the two skat cards.
func (d *Dealer) MakeSkat() error {
	cards, ok := d.deck.PopCards(2)
	if !ok {
		return ErrInvalidState("deck underflow while making skat")
	}
	d.skat.Add(cards...)
	return nil
}

// DealHand deals 3 each, the skat, 4 each, 3 each, going round from forehand.
func (d *Dealer) DealHand(players [NumPlayers]*Player) error {
	forehand := (d.seat + 1) % NumPlayers
	for cycle, n := range []int{3, 4, 3} {
		if cycle == 1 {
			if err := d.MakeSkat(); err != nil {
				return err
			}
		}
		for i := 0; i < NumPlayers; i++ {
			if err := d.Deal(players[(forehand+i)%NumPlayers], n); err != nil {
				return err
			}
		}
	}
	if d.deck.Count() != 0 {
		return ErrInvalidState(fmt.Sprintf("deck not exhausted after dealing: %d left", d.deck.Count()))
	}
	return nil
}
