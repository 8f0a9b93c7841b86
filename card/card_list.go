package card

import (
	"math/rand"
	"sort"
)

type CardList []Card

func (ds *CardList) Init(cards []Card) {
	*ds = make([]Card, len(cards))
	copy(*ds, cards)
}

// Count 获取总牌数
func (ds CardList) Count() int {
	return len(ds)
}

func (ds CardList) IDs() []int {
	return IDs(ds)
}

func (ds CardList) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(ds), func(i, j int) {
		ds[i], ds[j] = ds[j], ds[i]
	})
}

func (ds *CardList) Add(cards ...Card) {
	*ds = append(*ds, cards...)
}

// PopCards takes size cards from the front.
func (ds *CardList) PopCards(size int) ([]Card, bool) {
	if size < 0 || size > ds.Count() {
		return nil, false
	}
	cards := make([]Card, size)
	copy(cards, (*ds)[:size])
	*ds = (*ds)[size:]
	return cards, true
}

func (ds CardList) Index(c Card) int {
	for i, cc := range ds {
		if cc == c {
			return i
		}
	}
	return -1
}

func (ds CardList) Contains(c Card) bool { return ds.Index(c) >= 0 }

// Remove deletes c keeping the order of the rest.
func (ds *CardList) Remove(c Card) bool {
	i := ds.Index(c)
	if i < 0 {
		return false
	}
	*ds = append((*ds)[:i], (*ds)[i+1:]...)
	return true
}

func (ds CardList) Set() Set { return SetOf(ds...) }

// Sorted returns a copy ordered by id.
func (ds CardList) Sorted() CardList {
	out := make(CardList, len(ds))
	copy(out, ds)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (ds CardList) Strings() []string {
	out := make([]string, 0, len(ds))
	for _, c := range ds {
		out = append(out, c.String())
	}
	return out
}
