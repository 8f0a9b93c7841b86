package replay

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"skat-lite/card"
	"skat-lite/skat"
)

type normalizedAction struct {
	seat     int
	phase    skat.Phase
	hasPhase bool
	action   skat.Action
}

type normalizedSpec struct {
	dealerSeat int
	heroSeat   int
	seed       int64
	deck       []card.Card
	actions    []normalizedAction
}

func normalizeSpec(spec HandSpec) (normalizedSpec, error) {
	var out normalizedSpec
	out.dealerSeat = spec.DealerSeat
	out.heroSeat = spec.HeroSeat
	out.seed = seedFromSpec(spec.RNG)

	if spec.Variant != "" && !strings.EqualFold(spec.Variant, "skat") {
		return out, &ReplayError{StepIndex: -1, Reason: "invalid_variant", Message: "only skat is supported"}
	}
	if out.dealerSeat < 0 || out.dealerSeat >= skat.NumPlayers {
		return out, &ReplayError{StepIndex: -1, Reason: "invalid_dealer", Message: "dealer_seat out of range"}
	}
	if out.heroSeat < 0 || out.heroSeat >= skat.NumPlayers {
		return out, &ReplayError{StepIndex: -1, Reason: "invalid_hero", Message: "hero_seat out of range"}
	}

	constraints, err := buildSlotConstraints(out.dealerSeat, spec.Hands, spec.Skat)
	if err != nil {
		return out, err
	}
	out.deck, err = parseOrBuildDeck(spec.Deck, constraints, out.seed)
	if err != nil {
		return out, err
	}

	out.actions = make([]normalizedAction, 0, len(spec.Actions))
	for i, a := range spec.Actions {
		if a.Seat < 0 || a.Seat >= skat.NumPlayers {
			return out, &ReplayError{StepIndex: int32(i), Reason: "invalid_action_seat", Message: fmt.Sprintf("seat %d out of range", a.Seat)}
		}
		action, err := parseActionString(a.Action)
		if err != nil {
			return out, &ReplayError{StepIndex: int32(i), Reason: "invalid_action", Message: err.Error()}
		}
		na := normalizedAction{seat: a.Seat, action: action}
		if strings.TrimSpace(a.Phase) != "" {
			na.phase, err = parsePhaseName(a.Phase)
			if err != nil {
				return out, &ReplayError{StepIndex: int32(i), Reason: "invalid_phase", Message: err.Error()}
			}
			na.hasPhase = true
		}
		out.actions = append(out.actions, na)
	}
	return out, nil
}

// dealSlots maps each seat, and the skat, to its deck positions for a deal from dealer.
func dealSlots(dealer int) (seats [skat.NumPlayers][]int, skatSlots []int) {
	forehand := (dealer + 1) % skat.NumPlayers
	pos := 0
	for cycle, n := range []int{3, 4, 3} {
		if cycle == 1 {
			skatSlots = []int{pos, pos + 1}
			pos += 2
		}
		for i := 0; i < skat.NumPlayers; i++ {
			seat := (forehand + i) % skat.NumPlayers
			for k := 0; k < n; k++ {
				seats[seat] = append(seats[seat], pos)
				pos++
			}
		}
	}
	return seats, skatSlots
}

func buildSlotConstraints(dealer int, hands [][]string, skatCards []string) (map[int]card.Card, error) {
	constraints := make(map[int]card.Card, card.NumCards)
	if len(hands) == 0 && len(skatCards) == 0 {
		return constraints, nil
	}
	if len(hands) > skat.NumPlayers {
		return nil, &ReplayError{StepIndex: -1, Reason: "invalid_hand_cards", Message: "at most 3 hands"}
	}
	seatSlots, skatSlots := dealSlots(dealer)
	used := make(map[card.Card]struct{}, card.NumCards)

	for seat, h := range hands {
		if len(h) > len(seatSlots[seat]) {
			return nil, &ReplayError{StepIndex: -1, Reason: "invalid_hand_cards", Message: fmt.Sprintf("seat %d: more than 10 cards", seat)}
		}
		for k, s := range h {
			c, err := card.Parse(s)
			if err != nil {
				return nil, &ReplayError{StepIndex: -1, Reason: "invalid_hand_cards", Message: fmt.Sprintf("seat %d: %v", seat, err)}
			}
			if err := assignConstraint(constraints, used, seatSlots[seat][k], c); err != nil {
				return nil, err
			}
		}
	}
	if len(skatCards) > len(skatSlots) {
		return nil, &ReplayError{StepIndex: -1, Reason: "invalid_skat", Message: "skat holds 2 cards"}
	}
	for k, s := range skatCards {
		c, err := card.Parse(s)
		if err != nil {
			return nil, &ReplayError{StepIndex: -1, Reason: "invalid_skat", Message: err.Error()}
		}
		if err := assignConstraint(constraints, used, skatSlots[k], c); err != nil {
			return nil, err
		}
	}
	return constraints, nil
}

func assignConstraint(constraints map[int]card.Card, used map[card.Card]struct{}, slot int, c card.Card) error {
	if _, ok := used[c]; ok {
		return &ReplayError{StepIndex: -1, Reason: "duplicate_card", Message: fmt.Sprintf("card %s assigned twice", c)}
	}
	used[c] = struct{}{}
	constraints[slot] = c
	return nil
}

func parseOrBuildDeck(deck []string, constraints map[int]card.Card, seed int64) ([]card.Card, error) {
	if len(deck) > 0 {
		if len(deck) != card.NumCards {
			return nil, &ReplayError{
				StepIndex: -1,
				Reason:    "invalid_deck",
				Message:   fmt.Sprintf("deck must contain %d cards", card.NumCards),
			}
		}
		out := make([]card.Card, len(deck))
		var seen card.Set
		for i, s := range deck {
			c, err := card.Parse(strings.TrimSpace(s))
			if err != nil {
				return nil, &ReplayError{StepIndex: -1, Reason: "invalid_deck_card", Message: fmt.Sprintf("deck[%d]: %v", i, err)}
			}
			if seen.Has(c) {
				return nil, &ReplayError{StepIndex: -1, Reason: "invalid_deck", Message: fmt.Sprintf("duplicate card in deck[%d]", i)}
			}
			seen = seen.With(c)
			out[i] = c
		}
		for idx, expected := range constraints {
			if out[idx] != expected {
				return nil, &ReplayError{
					StepIndex: -1,
					Reason:    "deck_constraint_mismatch",
					Message:   fmt.Sprintf("deck[%d] does not match constrained card %s", idx, expected),
				}
			}
		}
		return out, nil
	}

	var used card.Set
	for _, c := range constraints {
		used = used.With(c)
	}
	remaining := card.Full.Minus(used).Cards()
	if seed != 0 {
		r := rand.New(rand.NewSource(seed))
		r.Shuffle(len(remaining), func(i, j int) {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		})
	}

	out := make([]card.Card, card.NumCards)
	next := 0
	for slot := range out {
		if c, ok := constraints[slot]; ok {
			out[slot] = c
			continue
		}
		out[slot] = remaining[next]
		next++
	}
	return out, nil
}

var contractAliases = map[string]skat.Contract{
	"diamonds": skat.ContractDiamonds,
	"hearts":   skat.ContractHearts,
	"spades":   skat.ContractSpades,
	"clubs":    skat.ContractClubs,
	"grand":    skat.ContractGrand,
	"null":     skat.ContractNull,
}

// parseActionString reads the ActionSpec mini-language.
func parseActionString(s string) (skat.Action, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty action")
	}
	verb := strings.ToLower(fields[0])
	arg := ""
	if len(fields) == 2 {
		arg = fields[1]
	} else if len(fields) > 2 {
		return nil, fmt.Errorf("unsupported action %q", s)
	}
	needArg := func() error {
		if arg == "" {
			return fmt.Errorf("action %q needs an argument", verb)
		}
		return nil
	}

	switch verb {
	case "pass":
		return skat.Pass{}, nil
	case "finish":
		return skat.FinishContract{}, nil
	case "bid":
		if err := needArg(); err != nil {
			return nil, err
		}
		amount, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("bid amount %q: %w", arg, err)
		}
		return skat.NewBid(amount)
	case "declare":
		if err := needArg(); err != nil {
			return nil, err
		}
		if c, ok := contractAliases[strings.ToLower(arg)]; ok {
			return skat.DeclareContract{Contract: c}, nil
		}
		c, err := skat.ParseContract(strings.ToUpper(arg))
		if err != nil {
			return nil, err
		}
		return skat.NewDeclareContract(c)
	case "modifier":
		if err := needArg(); err != nil {
			return nil, err
		}
		for i, tok := range skat.ModifierTable {
			if strings.EqualFold(string(tok), arg) {
				return skat.NewDeclareModifier(skat.Modifier(i))
			}
		}
		return nil, fmt.Errorf("%w: %q", skat.ErrInvalidModifier, arg)
	case "play":
		if err := needArg(); err != nil {
			return nil, err
		}
		c, err := card.Parse(arg)
		if err != nil {
			return nil, err
		}
		return skat.NewPlayCard(c)
	case "id":
		if err := needArg(); err != nil {
			return nil, err
		}
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("action id %q: %w", arg, err)
		}
		return skat.DecodeAction(skat.ActionID(id))
	}
	return nil, fmt.Errorf("unsupported action %q", s)
}

func parsePhaseName(s string) (skat.Phase, error) {
	for p, name := range skat.PhaseDictionary {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unsupported phase %q", s)
}

func seedFromSpec(rng *RNGSpec) int64 {
	if rng == nil {
		return 0
	}
	return rng.Seed
}
