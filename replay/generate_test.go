package replay

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"skat-lite/card"
)

func baseHandSpec() HandSpec {
	spec := HandSpec{
		Variant:    "skat",
		DealerSeat: 0,
		HeroSeat:   1,
		Hands: [][]string{
			{"AD", "TD", "KD", "QD", "9D", "8D", "7D", "TH", "QH", "9H"},
			{"JC", "JS", "JH", "JD", "AC", "TC", "KC", "AS", "TS", "AH"},
			{"7C", "8C", "9C", "QC", "KS", "QS", "9S", "8S", "7S", "KH"},
		},
		Skat: []string{"8H", "7H"},
		Actions: []ActionSpec{
			{Seat: 2, Phase: "bid", Action: "bid 18"},
			{Seat: 1, Action: "bid 18"},
			{Seat: 2, Action: "pass"},
			{Seat: 0, Action: "pass"},
			{Seat: 1, Phase: "declare", Action: "declare grand"},
			{Seat: 1, Action: "modifier hand"},
			{Seat: 1, Action: "finish"},
		},
	}
	tricks := [][3]string{
		{"JC", "7S", "7D"}, {"JS", "8S", "8D"}, {"JH", "9S", "9D"}, {"JD", "QS", "QD"},
		{"AC", "7C", "KD"}, {"TC", "8C", "TD"}, {"KC", "9C", "AD"}, {"AS", "KS", "9H"},
		{"TS", "QC", "TH"}, {"AH", "KH", "QH"},
	}
	for _, tr := range tricks {
		spec.Actions = append(spec.Actions,
			ActionSpec{Seat: 1, Action: "play " + tr[0]},
			ActionSpec{Seat: 2, Action: "play " + tr[1]},
			ActionSpec{Seat: 0, Action: "play " + tr[2]},
		)
	}
	return spec
}

func decodeEnvelope(t *testing.T, e ReplayEvent) *structpb.Struct {
	t.Helper()
	bin, err := base64.StdEncoding.DecodeString(e.EnvelopeB64)
	require.NoError(t, err)
	var st structpb.Struct
	require.NoError(t, proto.Unmarshal(bin, &st))
	return &st
}

func TestGenerateReplayTape_IsDeterministic(t *testing.T) {
	spec := baseHandSpec()

	tapeA, err := GenerateReplayTape(spec)
	require.NoError(t, err)
	tapeB, err := GenerateReplayTape(spec)
	require.NoError(t, err)

	if diff := cmp.Diff(ToWireReplayTape(tapeA), ToWireReplayTape(tapeB)); diff != "" {
		t.Fatalf("expected deterministic replay tape (-A +B):\n%s", diff)
	}
	assert.NotEmpty(t, tapeA.HandID)
	assert.Equal(t, 1, tapeA.HeroSeat)

	counts := map[string]int{}
	for i, e := range tapeA.Events {
		counts[e.Type]++
		assert.Equal(t, uint64(i+1), e.Seq)
	}
	assert.Equal(t, 1, counts["handStart"])
	assert.Equal(t, 3, counts["holeCards"])
	assert.Equal(t, len(spec.Actions), counts["actionResult"])
	assert.Equal(t, 10, counts["trickComplete"])
	assert.Equal(t, 3, counts["phaseChange"])
	assert.Equal(t, 1, counts["handEnd"])
}

func TestGenerateReplayTape_HandEndCarriesSettlement(t *testing.T) {
	tape, err := GenerateReplayTape(baseHandSpec())
	require.NoError(t, err)

	last := tape.Events[len(tape.Events)-1]
	require.Equal(t, "handEnd", last.Type)

	st := decodeEnvelope(t, last)
	f := st.GetFields()
	assert.Equal(t, float64(1), f["declarer"].GetNumberValue())
	assert.Equal(t, float64(168), f["declarerPayoff"].GetNumberValue())
	assert.True(t, f["won"].GetBoolValue())
	assert.True(t, f["schwarz"].GetBoolValue())
	assert.Equal(t, tape.HandID, f["handId"].GetStringValue())

	payoffs := f["payoffs"].GetListValue().GetValues()
	require.Len(t, payoffs, 3)
	assert.Equal(t, float64(-84), payoffs[0].GetNumberValue())

	skatCards := f["skat"].GetListValue().GetValues()
	require.Len(t, skatCards, 2)
	assert.Equal(t, "8H", skatCards[0].GetStringValue())

	require.NotNil(t, tape.Result)
	assert.Equal(t, "G", tape.Result.Contract)
	assert.Equal(t, []float64{-84, 168, -84}, tape.Result.Payoffs)

	wire := ToWireReplayTape(tape)
	assert.True(t, wire.Complete)
	assert.Len(t, wire.Events, len(tape.Events))
}

func TestGenerateReplayTape_PartialScriptHasNoResult(t *testing.T) {
	spec := baseHandSpec()
	spec.Actions = spec.Actions[:4]

	tape, err := GenerateReplayTape(spec)
	require.NoError(t, err)
	assert.Nil(t, tape.Result)
	assert.False(t, ToWireReplayTape(tape).Complete)
	assert.Equal(t, "actionPrompt", tape.Events[len(tape.Events)-1].Type)

	hole := decodeEnvelope(t, tape.Events[1]).GetFields()
	assert.Len(t, hole["ids"].GetListValue().GetValues(), 10)
}

func requireReplayError(t *testing.T, err error, reason string) *ReplayError {
	t.Helper()
	require.Error(t, err)
	var replayErr *ReplayError
	require.True(t, errors.As(err, &replayErr), "expected ReplayError, got %T", err)
	assert.Equal(t, reason, replayErr.Reason)
	return replayErr
}

func TestGenerateReplayTape_ReturnsReplayErrorOnOutOfTurnAction(t *testing.T) {
	spec := baseHandSpec()
	spec.Actions[0].Seat = 1

	_, err := GenerateReplayTape(spec)
	replayErr := requireReplayError(t, err, "out_of_turn")
	assert.Equal(t, int32(0), replayErr.StepIndex)
	require.NotNil(t, replayErr.Expected)
	assert.Equal(t, 2, replayErr.Expected.Seat)
	assert.Equal(t, "bid", replayErr.Expected.Phase)
	assert.Contains(t, replayErr.Expected.LegalNames, "pass")
}

func TestGenerateReplayTape_Rejections(t *testing.T) {
	t.Run("illegal action", func(t *testing.T) {
		spec := baseHandSpec()
		spec.Actions[2].Action = "bid 18" // middlehand cannot hold against forehand
		_, err := GenerateReplayTape(spec)
		replayErr := requireReplayError(t, err, "illegal_action")
		assert.Equal(t, int32(2), replayErr.StepIndex)
		assert.Equal(t, 2, replayErr.Expected.LegalActions[0])
	})
	t.Run("phase mismatch", func(t *testing.T) {
		spec := baseHandSpec()
		spec.Actions[3].Phase = "declare"
		_, err := GenerateReplayTape(spec)
		requireReplayError(t, err, "phase_mismatch")
	})
	t.Run("trailing action", func(t *testing.T) {
		spec := baseHandSpec()
		spec.Actions = append(spec.Actions, ActionSpec{Seat: 1, Action: "pass"})
		_, err := GenerateReplayTape(spec)
		requireReplayError(t, err, "no_action_expected")
	})
	t.Run("bad action syntax", func(t *testing.T) {
		spec := baseHandSpec()
		spec.Actions[0].Action = "bid 17"
		_, err := GenerateReplayTape(spec)
		requireReplayError(t, err, "invalid_action")
	})
	t.Run("duplicate card", func(t *testing.T) {
		spec := baseHandSpec()
		spec.Skat = []string{"8H", "JC"}
		_, err := GenerateReplayTape(spec)
		requireReplayError(t, err, "duplicate_card")
	})
	t.Run("deck conflicts with hands", func(t *testing.T) {
		spec := baseHandSpec()
		for _, c := range card.All() {
			spec.Deck = append(spec.Deck, c.String())
		}
		_, err := GenerateReplayTape(spec)
		requireReplayError(t, err, "deck_constraint_mismatch")
	})
	t.Run("variant", func(t *testing.T) {
		spec := baseHandSpec()
		spec.Variant = "NLH"
		_, err := GenerateReplayTape(spec)
		requireReplayError(t, err, "invalid_variant")
	})
}

func TestNormalizeSpec_PartialHandsFilledFromSeed(t *testing.T) {
	spec := HandSpec{
		DealerSeat: 2,
		Hands:      [][]string{nil, {"JC", "JS"}},
		RNG:        &RNGSpec{Seed: 9},
	}
	ns, err := normalizeSpec(spec)
	require.NoError(t, err)
	require.Len(t, ns.deck, card.NumCards)
	assert.Equal(t, card.Full, card.SetOf(ns.deck...))

	// dealer 2: forehand is seat 0, so seat 1 receives deck positions 3..5 first
	assert.Equal(t, card.CardClubJ, ns.deck[3])
	assert.Equal(t, card.CardSpadeJ, ns.deck[4])

	again, err := normalizeSpec(spec)
	require.NoError(t, err)
	assert.Equal(t, ns.deck, again.deck)
}

func TestParseActionString(t *testing.T) {
	tests := map[string]string{
		"pass":          "pass",
		"bid 23":        "bid 23",
		"declare C":     "declare C",
		"declare null":  "declare N",
		"modifier open": "modifier Open",
		"finish":        "finish",
		"play 10h":      "play TH",
		"id 77":         "play 7D",
		"id 64":         "pass",
	}
	for in, want := range tests {
		a, err := parseActionString(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, actionName(a), in)
	}
	for _, bad := range []string{"", "bid", "bid x", "declare X", "modifier Kontra", "play ZZ", "id 0", "fold", "bid 18 20"} {
		_, err := parseActionString(bad)
		assert.Error(t, err, bad)
	}
}
