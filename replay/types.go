package replay

import (
	"google.golang.org/protobuf/types/known/structpb"

	"skat-lite/skat"
)

// HandSpec describes one hand to replay. The deal comes from Deck (all 32 cards in deal
// order), or from Hands/Skat constraints with the rest filled from the seeded RNG.
type HandSpec struct {
	Variant    string       `json:"variant" yaml:"variant"`
	DealerSeat int          `json:"dealer_seat" yaml:"dealer_seat"`
	HeroSeat   int          `json:"hero_seat" yaml:"hero_seat"`
	Deck       []string     `json:"deck,omitempty" yaml:"deck,omitempty"`
	Hands      [][]string   `json:"hands,omitempty" yaml:"hands,omitempty"`
	Skat       []string     `json:"skat,omitempty" yaml:"skat,omitempty"`
	Actions    []ActionSpec `json:"actions" yaml:"actions"`
	RNG        *RNGSpec     `json:"rng,omitempty" yaml:"rng,omitempty"`
}

// ActionSpec is one scripted move. Action is one of "pass", "bid 18", "declare C",
// "modifier Hand", "finish", "play JC" or "id 77". Phase is optional; when set it must
// match the phase the action is applied in.
type ActionSpec struct {
	Seat   int    `json:"seat" yaml:"seat"`
	Phase  string `json:"phase,omitempty" yaml:"phase,omitempty"`
	Action string `json:"action" yaml:"action"`
}

type RNGSpec struct {
	Seed int64 `json:"seed" yaml:"seed"`
}

type ReplayTape struct {
	TapeVersion int           `json:"tape_version"`
	HandID      string        `json:"hand_id"`
	HeroSeat    int           `json:"hero_seat"`
	Events      []ReplayEvent `json:"events"`
	// Result is nil when the script stops before the last trick.
	Result *HandResult `json:"result,omitempty"`
}

type HandResult struct {
	Declarer   int       `json:"declarer"`
	Contract   string    `json:"contract"`
	FinalValue int       `json:"final_value"`
	Won        bool      `json:"won"`
	Payoffs    []float64 `json:"payoffs"`
}

func newHandResult(s *skat.Settlement) *HandResult {
	if s == nil {
		return nil
	}
	return &HandResult{
		Declarer:   s.Declarer,
		Contract:   s.Contract.String(),
		FinalValue: s.FinalValue,
		Won:        s.Won,
		Payoffs:    append([]float64(nil), s.Payoffs[:]...),
	}
}

type ReplayEvent struct {
	Type        string           `json:"type"`
	Seq         uint64           `json:"seq"`
	Value       *structpb.Struct `json:"value,omitempty"`
	EnvelopeB64 string           `json:"envelope_b64,omitempty"`
}
