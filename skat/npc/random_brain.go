package npc

import "math/rand"

// RandomBrain picks uniformly among the legal actions.
type RandomBrain struct {
	rng *rand.Rand
}

func NewRandomBrain(seed int64) *RandomBrain {
	return &RandomBrain{rng: rand.New(rand.NewSource(seed))}
}

func (b *RandomBrain) Name() string { return "random" }

func (b *RandomBrain) Decide(view GameView) Decision {
	if len(view.LegalActions) == 0 {
		return Decision{}
	}
	return Decision{Action: view.LegalActions[b.rng.Intn(len(view.LegalActions))]}
}
