package npc

import (
	"math/rand"

	"skat-lite/card"
	"skat-lite/skat"
)

// RuleBrain makes decisions based on a PersonalityProfile with tunable parameters.
type RuleBrain struct {
	Persona *NPCPersona
	rng     *rand.Rand
}

// NewRuleBrain creates a RuleBrain from a persona definition.
func NewRuleBrain(persona *NPCPersona, seed int64) *RuleBrain {
	return &RuleBrain{
		Persona: persona,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (b *RuleBrain) Name() string { return b.Persona.Name }

// Decide implements BrainDecider. The returned action is always one of view.LegalActions.
func (b *RuleBrain) Decide(view GameView) Decision {
	legal := view.LegalActions
	if len(legal) == 0 {
		return Decision{}
	}
	p := b.Persona.Brain

	// Noise: occasionally just pick anything legal
	if b.rng.Float64() < p.Randomness*0.3 {
		return Decision{Action: legal[b.rng.Intn(len(legal))]}
	}
	aggression := clamp01(p.Aggression + (b.rng.Float64()-0.5)*p.Randomness*0.4)
	caution := clamp01(p.Caution + (b.rng.Float64()-0.5)*p.Randomness*0.3)

	switch view.Phase {
	case skat.PhaseBid:
		return b.decideBid(view, aggression, caution)
	case skat.PhaseDeclare:
		return b.decideDeclare(view, aggression)
	case skat.PhasePlay:
		return Decision{Action: skat.PlayCard{Card: b.choosePlay(view)}}
	}
	return Decision{Action: legal[0]}
}

// handEval is the brain's estimate of what its hand can play.
type handEval struct {
	contract skat.Contract
	strength float64 // 0.0–1.0
	value    int     // game value at one "with/without" level plus game
}

func evaluateHand(hand []card.Card) handEval {
	held := card.SetOf(hand...)
	var jacks, aces, tens, low int
	var suitLen [4]int
	for _, c := range hand {
		switch c.Rank() {
		case card.Jack:
			jacks++
			continue
		case card.Ace:
			aces++
		case card.Ten:
			tens++
		case card.Seven, card.Eight, card.Nine:
			low++
		}
		suitLen[c.Suit()]++
	}
	longest := card.Diamonds
	for _, s := range card.Suits {
		if suitLen[s] >= suitLen[longest] {
			longest = s
		}
	}

	ev := handEval{
		contract: skat.Contract(longest),
		strength: clamp01((float64(jacks)*2 + float64(aces)*1.2 + float64(tens)*0.6 +
			float64(suitLen[longest]+jacks)*0.6) / 16),
	}
	switch {
	case jacks >= 3 && aces >= 2:
		ev.contract = skat.ContractGrand
	case jacks == 0 && aces == 0 && low >= 6:
		ev.contract = skat.ContractNull
		ev.strength = clamp01(float64(low) / 8)
	}
	if ev.contract == skat.ContractNull {
		ev.value = ev.contract.BaseScore()
	} else {
		ev.value = ev.contract.BaseScore() * (skat.Matadors(ev.contract, held) + 1)
	}
	return ev
}

func (b *RuleBrain) decideBid(view GameView, aggression, caution float64) Decision {
	ev := evaluateHand(view.Hand)
	if ev.strength < caution*0.6 {
		return Decision{Action: skat.Pass{}}
	}
	ceiling := int(float64(ev.value) * (0.85 + 0.3*aggression))
	// legal bids come in ascending order: the first affordable one is the cheapest
	for _, a := range view.LegalActions {
		if bid, ok := a.(skat.Bid); ok && bid.Amount <= ceiling {
			return Decision{Action: bid}
		}
	}
	return Decision{Action: skat.Pass{}}
}

func (b *RuleBrain) decideDeclare(view GameView, aggression float64) Decision {
	legal := view.LegalActions
	if !view.HasContract {
		want := skat.DeclareContract{Contract: evaluateHand(view.Hand).contract}
		if contains(legal, want) {
			return Decision{Action: want}
		}
		return Decision{Action: legal[0]}
	}

	hand := skat.DeclareModifier{Modifier: skat.ModifierHand}
	pickUp := skat.DeclareModifier{Modifier: skat.ModifierSkat}
	if view.Contract != skat.ContractNull && contains(legal, pickUp) {
		if aggression > 0.75 && evaluateHand(view.Hand).strength > 0.6 {
			return Decision{Action: hand}
		}
		return Decision{Action: pickUp}
	}
	if contains(legal, skat.FinishContract{}) {
		return Decision{Action: skat.FinishContract{}}
	}
	return Decision{Action: legal[0]}
}

func (b *RuleBrain) choosePlay(view GameView) card.Card {
	plays := make([]card.Card, 0, len(view.LegalActions))
	for _, a := range view.LegalActions {
		if pc, ok := a.(skat.PlayCard); ok {
			plays = append(plays, pc.Card)
		}
	}
	c := view.Contract
	if c == skat.ContractNull {
		return playNull(view, plays)
	}

	declarer := view.Seat == view.Declarer
	if len(view.Trick) == 0 {
		if declarer {
			if t, ok := highestTrump(c, plays); ok {
				return t
			}
		}
		for _, x := range plays {
			if x.Rank() == card.Ace && !skat.IsTrump(c, x) {
				return x
			}
		}
		return lowestValue(c, plays)
	}

	w, _ := skat.TrickWinner(c, view.Trick)
	winnerSeat := view.TrickSeats[w]
	if !declarer && winnerSeat != view.Declarer {
		// partner holds the trick: add points
		return highestValue(c, plays)
	}

	var winners []card.Card
	for _, x := range plays {
		if wins(c, view.Trick, x) {
			winners = append(winners, x)
		}
	}
	if len(winners) > 0 {
		return lowestValue(c, winners)
	}
	return lowestValue(c, plays)
}

// playNull: the declarer ducks with the highest card that still loses, everyone else
// plays low.
func playNull(view GameView, plays []card.Card) card.Card {
	if view.Seat != view.Declarer || len(view.Trick) == 0 {
		return lowestRank(plays)
	}
	best := card.CardInvalid
	for _, x := range plays {
		if wins(skat.ContractNull, view.Trick, x) {
			continue
		}
		if best == card.CardInvalid || x.Rank() > best.Rank() {
			best = x
		}
	}
	if best != card.CardInvalid {
		return best
	}
	return lowestRank(plays)
}

func wins(c skat.Contract, trick []card.Card, x card.Card) bool {
	next := make([]card.Card, 0, len(trick)+1)
	next = append(append(next, trick...), x)
	w, err := skat.TrickWinner(c, next)
	return err == nil && w == len(trick)
}

// power orders cards by taking strength within a contract.
func power(c skat.Contract, x card.Card) int {
	trump := skat.TrumpSuit(c)
	for i, t := range trump {
		if t == x {
			return 100 + i
		}
	}
	return int(x.Rank())
}

func highestTrump(c skat.Contract, plays []card.Card) (card.Card, bool) {
	best, found := card.CardInvalid, false
	for _, x := range plays {
		if skat.IsTrump(c, x) && (!found || power(c, x) > power(c, best)) {
			best, found = x, true
		}
	}
	return best, found
}

func lowestValue(c skat.Contract, plays []card.Card) card.Card {
	best := plays[0]
	for _, x := range plays[1:] {
		bv, xv := skat.CardValue(best), skat.CardValue(x)
		if xv < bv || (xv == bv && power(c, x) < power(c, best)) {
			best = x
		}
	}
	return best
}

func highestValue(c skat.Contract, plays []card.Card) card.Card {
	best := plays[0]
	for _, x := range plays[1:] {
		bv, xv := skat.CardValue(best), skat.CardValue(x)
		// keep trumps back when the points are equal
		if xv > bv || (xv == bv && power(c, x) < power(c, best)) {
			best = x
		}
	}
	return best
}

func lowestRank(plays []card.Card) card.Card {
	best := plays[0]
	for _, x := range plays[1:] {
		if x.Rank() < best.Rank() {
			best = x
		}
	}
	return best
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func contains(actions []skat.Action, target skat.Action) bool {
	for _, a := range actions {
		if a == target {
			return true
		}
	}
	return false
}
