package skat

import "skat-lite/card"

// Player is a seat with its hand. Hand order is the deal order, which keeps iteration
// stable for display and tests.
type Player struct {
	ID int

	handCards card.CardList
}

func newPlayer(id int) *Player {
	return &Player{ID: id, handCards: make(card.CardList, 0, 12)}
}

func (p *Player) Hand() []card.Card {
	return append([]card.Card{}, p.handCards...)
}

func (p *Player) HandSet() card.Set { return p.handCards.Set() }

func (p *Player) HandSize() int { return p.handCards.Count() }

func (p *Player) HasCard(c card.Card) bool { return p.handCards.Contains(c) }

func (p *Player) AddHandCard(cards ...card.Card) {
	p.handCards.Add(cards...)
}

func (p *Player) removeCard(c card.Card) bool {
	return p.handCards.Remove(c)
}
