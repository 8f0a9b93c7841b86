package replay

// WireReplayTape is the JSON shape handed to the browser: envelopes only, the decoded
// structpb values stay on the Go side.
type WireReplayTape struct {
	TapeVersion int               `json:"tapeVersion"`
	HandID      string            `json:"handId"`
	HeroSeat    int               `json:"heroSeat"`
	Complete    bool              `json:"complete"`
	Result      *HandResult       `json:"result,omitempty"`
	Events      []WireReplayEvent `json:"events"`
}

type WireReplayEvent struct {
	Type        string `json:"type"`
	Seq         uint64 `json:"seq"`
	EnvelopeB64 string `json:"envelopeB64"`
}

func ToWireReplayTape(tape *ReplayTape) *WireReplayTape {
	if tape == nil {
		return nil
	}
	events := make([]WireReplayEvent, len(tape.Events))
	for i, e := range tape.Events {
		events[i] = WireReplayEvent{Type: e.Type, Seq: e.Seq, EnvelopeB64: e.EnvelopeB64}
	}
	return &WireReplayTape{
		TapeVersion: tape.TapeVersion,
		HandID:      tape.HandID,
		HeroSeat:    tape.HeroSeat,
		Complete:    tape.Result != nil,
		Result:      tape.Result,
		Events:      events,
	}
}
