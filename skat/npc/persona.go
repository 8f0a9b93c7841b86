package npc

// PersonalityProfile defines the tunable parameters for a RuleBrain.
type PersonalityProfile struct {
	Aggression float64 `json:"aggression"` // 0.0–1.0: how far past the hand's value it bids, Hand games
	Caution    float64 `json:"caution"`    // 0.0–1.0: minimum hand strength before bidding at all
	Randomness float64 `json:"randomness"` // 0.0–1.0: decision noise
}

// NPCPersona defines a named NPC character.
type NPCPersona struct {
	ID      string             `json:"id"`
	Name    string             `json:"name"`
	Tagline string             `json:"tagline"`
	Brain   PersonalityProfile `json:"brain"`
}
