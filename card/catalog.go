package card

import "sync"

type catalogTable struct {
	cards  [NumCards]Card
	bySuit [4][8]Card
	byRank [8][4]Card
}

var (
	catalogOnce sync.Once
	catalogData *catalogTable
)

// catalog builds the 32-card table once; it is never mutated afterwards.
func catalog() *catalogTable {
	catalogOnce.Do(func() {
		t := &catalogTable{}
		for _, s := range Suits {
			for r := Seven; r <= Ace; r++ {
				c := New(s, r)
				t.cards[c] = c
				t.bySuit[s][r] = c
				t.byRank[r][s] = c
			}
		}
		catalogData = t
	})
	return catalogData
}

// All returns the unshuffled deck in id order.
func All() []Card {
	t := catalog()
	out := make([]Card, NumCards)
	copy(out, t.cards[:])
	return out
}

// OfSuit returns the 8 cards of a suit in natural rank order (7..A).
func OfSuit(s Suit) []Card {
	if !s.Valid() {
		return nil
	}
	t := catalog()
	out := make([]Card, 8)
	copy(out, t.bySuit[s][:])
	return out
}

// OfRank returns the 4 cards of a rank ordered D, H, S, C.
func OfRank(r Rank) []Card {
	if !r.Valid() {
		return nil
	}
	t := catalog()
	out := make([]Card, 4)
	copy(out, t.byRank[r][:])
	return out
}
