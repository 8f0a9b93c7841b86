package card

import "math/bits"

// Set is a 32-bit presence vector indexed by card id.
type Set uint32

func SetOf(cards ...Card) Set {
	var s Set
	for _, c := range cards {
		s = s.With(c)
	}
	return s
}

func (s Set) Has(c Card) bool {
	return c.Valid() && s&(1<<c) != 0
}

func (s Set) With(c Card) Set {
	if !c.Valid() {
		return s
	}
	return s | 1<<c
}

func (s Set) Without(c Card) Set {
	if !c.Valid() {
		return s
	}
	return s &^ (1 << c)
}

func (s Set) Union(o Set) Set     { return s | o }
func (s Set) Intersect(o Set) Set { return s & o }
func (s Set) Minus(o Set) Set     { return s &^ o }
func (s Set) Len() int            { return bits.OnesCount32(uint32(s)) }
func (s Set) Empty() bool         { return s == 0 }

// Cards lists the members in ascending id order.
func (s Set) Cards() []Card {
	out := make([]Card, 0, s.Len())
	for v := uint32(s); v != 0; v &= v - 1 {
		out = append(out, Card(bits.TrailingZeros32(v)))
	}
	return out
}

// Vector expands the set into a 0/1 slot per card id.
func (s Set) Vector() [NumCards]uint8 {
	var out [NumCards]uint8
	for i := 0; i < NumCards; i++ {
		if s&(1<<i) != 0 {
			out[i] = 1
		}
	}
	return out
}

// Full is the whole deck.
const Full Set = 1<<NumCards - 1
