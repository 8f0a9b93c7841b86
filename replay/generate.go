package replay

import (
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"skat-lite/card"
	"skat-lite/skat"
)

const tapeVersion = 1

// GenerateReplayTape drives the scripted hand through the engine and records every event.
// The same spec always yields the same tape.
func GenerateReplayTape(spec HandSpec) (*ReplayTape, error) {
	ns, err := normalizeSpec(spec)
	if err != nil {
		return nil, err
	}

	dealer := ns.dealerSeat
	game, err := skat.NewGame(skat.Config{
		Seed:         ns.seed,
		ForcedDealer: &dealer,
		DeckOverride: ns.deck,
	})
	if err != nil {
		return nil, &ReplayError{StepIndex: -1, Reason: "engine_init_failed", Message: err.Error()}
	}
	if _, _, err := game.Init(); err != nil {
		return nil, &ReplayError{StepIndex: -1, Reason: "start_hand_failed", Message: err.Error()}
	}
	r := game.Round()

	builder := newTapeBuilder(handID(ns), ns.heroSeat)
	builder.addHandStart(r)
	for seat := 0; seat < skat.NumPlayers; seat++ {
		builder.addHoleCards(seat, r.Player(seat).Hand())
	}
	builder.addActionPrompt(game)

	for stepIdx, action := range ns.actions {
		if game.IsOver() {
			return nil, &ReplayError{
				StepIndex: int32(stepIdx),
				Reason:    "no_action_expected",
				Message:   "hand is already complete; no further actions are allowed",
			}
		}
		before := r.Phase()
		if action.hasPhase && action.phase != before {
			return nil, &ReplayError{
				StepIndex: int32(stepIdx),
				Reason:    "phase_mismatch",
				Message:   fmt.Sprintf("expected phase %s, got %s", before, action.phase),
				Expected:  expectedState(game),
			}
		}
		if cur := game.PlayerID(); cur != action.seat {
			return nil, &ReplayError{
				StepIndex: int32(stepIdx),
				Reason:    "out_of_turn",
				Message:   fmt.Sprintf("expected action seat %d, got %d", cur, action.seat),
				Expected:  expectedState(game),
			}
		}
		if !isLegalAction(game, action.action) {
			return nil, &ReplayError{
				StepIndex: int32(stepIdx),
				Reason:    "illegal_action",
				Message:   fmt.Sprintf("action %s is not legal for seat %d", actionName(action.action), action.seat),
				Expected:  expectedState(game),
			}
		}

		if err := game.Act(action.seat, action.action); err != nil {
			return nil, &ReplayError{
				StepIndex: int32(stepIdx),
				Reason:    "action_apply_failed",
				Message:   err.Error(),
				Expected:  expectedState(game),
			}
		}

		builder.addActionResult(action.seat, action.action, r)
		if _, ok := action.action.(skat.PlayCard); ok && len(r.CurrentTrick()) == 0 {
			builder.addTrickComplete(r)
		}
		if after := r.Phase(); after != before {
			builder.addPhaseChange(r)
		}
		if game.IsOver() {
			builder.addHandEnd(game.Settlement(), r)
			break
		}
		builder.addActionPrompt(game)
	}

	if builder.err != nil {
		return nil, &ReplayError{StepIndex: -1, Reason: "tape_encode_failed", Message: builder.err.Error()}
	}
	return &ReplayTape{
		TapeVersion: tapeVersion,
		HandID:      builder.handID,
		HeroSeat:    ns.heroSeat,
		Events:      builder.events,
		Result:      newHandResult(game.Settlement()),
	}, nil
}

// handID is a name-based UUID over the deal and the script, so replays keep their id.
func handID(ns normalizedSpec) string {
	buf := make([]byte, 0, 2+len(ns.deck)+2*len(ns.actions))
	buf = append(buf, byte(ns.dealerSeat), byte(ns.heroSeat))
	for _, c := range ns.deck {
		buf = append(buf, byte(c))
	}
	for _, a := range ns.actions {
		buf = append(buf, byte(a.seat), byte(a.action.ID()))
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, buf).String()
}

func isLegalAction(g *skat.Game, action skat.Action) bool {
	for _, a := range g.LegalActions() {
		if a == action {
			return true
		}
	}
	return false
}

func expectedState(g *skat.Game) *ExpectedState {
	legal := g.LegalActions()
	out := &ExpectedState{
		Seat:         g.PlayerID(),
		Phase:        g.Round().Phase().String(),
		LegalActions: make([]int, 0, len(legal)),
		LegalNames:   make([]string, 0, len(legal)),
	}
	for _, a := range legal {
		out.LegalActions = append(out.LegalActions, int(a.ID()))
		out.LegalNames = append(out.LegalNames, actionName(a))
	}
	return out
}

type tapeBuilder struct {
	handID string
	hero   int
	seq    uint64
	events []ReplayEvent
	err    error
}

func newTapeBuilder(handID string, hero int) *tapeBuilder {
	return &tapeBuilder{
		handID: handID,
		hero:   hero,
		events: make([]ReplayEvent, 0, 128),
	}
}

func (b *tapeBuilder) addHandStart(r *skat.Round) {
	b.push("handStart", map[string]any{
		"dealerSeat": r.DealerSeat(),
		"forehand":   r.Forehand(),
		"middlehand": r.Middlehand(),
		"backhand":   r.Backhand(),
		"heroSeat":   b.hero,
	})
}

func (b *tapeBuilder) addHoleCards(seat int, hand []card.Card) {
	b.push("holeCards", map[string]any{
		"seat":  seat,
		"cards": cardsToValues(hand),
		"ids":   intsToValues(card.IDs(hand)),
	})
}

func (b *tapeBuilder) addActionPrompt(g *skat.Game) {
	exp := expectedState(g)
	b.push("actionPrompt", map[string]any{
		"seat":         exp.Seat,
		"phase":        exp.Phase,
		"legalActions": intsToValues(exp.LegalActions),
		"legalNames":   stringsToValues(exp.LegalNames),
	})
}

func (b *tapeBuilder) addActionResult(seat int, a skat.Action, r *skat.Round) {
	b.push("actionResult", map[string]any{
		"seat":     seat,
		"kind":     a.Kind().String(),
		"action":   actionName(a),
		"actionId": int(a.ID()),
		"topBid":   r.TopBid(),
	})
}

func (b *tapeBuilder) addTrickComplete(r *skat.Round) {
	trick := r.LastTrick()
	scores := r.RoundScores()
	b.push("trickComplete", map[string]any{
		"winner": r.CurrentPlayerID(),
		"cards":  movesToValues(trick),
		"points": skat.PointsOf(movesToCards(trick)),
		"scores": intsToValues(scores[:]),
	})
}

func (b *tapeBuilder) addPhaseChange(r *skat.Round) {
	fields := map[string]any{
		"phase":  r.Phase().String(),
		"topBid": r.TopBid(),
	}
	if d, ok := r.Declarer(); ok {
		fields["declarer"] = d
	}
	if tokens := r.Contract(); len(tokens) > 0 {
		fields["contract"] = tokensToValues(tokens)
		fields["contractScore"] = r.ContractScore()
		fields["gameModifier"] = r.GameModifier()
	}
	b.push("phaseChange", fields)
}

func (b *tapeBuilder) addHandEnd(s *skat.Settlement, r *skat.Round) {
	if s == nil {
		b.fail(fmt.Errorf("hand over without settlement"))
		return
	}
	fields := settlementToFields(s)
	fields["skat"] = cardsToValues(r.Dealer().Skat())
	b.push("handEnd", fields)
}

func (b *tapeBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *tapeBuilder) push(typ string, fields map[string]any) {
	if b.err != nil {
		return
	}
	b.seq++
	fields["handId"] = b.handID
	fields["seq"] = b.seq
	st, err := structpb.NewStruct(fields)
	if err != nil {
		b.fail(fmt.Errorf("%s event: %w", typ, err))
		return
	}
	bin, err := proto.MarshalOptions{Deterministic: true}.Marshal(st)
	if err != nil {
		b.fail(fmt.Errorf("%s event: %w", typ, err))
		return
	}
	b.events = append(b.events, ReplayEvent{
		Type:        typ,
		Seq:         b.seq,
		Value:       st,
		EnvelopeB64: base64.StdEncoding.EncodeToString(bin),
	})
}
