//go:build js && wasm

package main

import (
	"encoding/json"
	"errors"
	"syscall/js"

	"skat-lite/replay"
)

// initRequest carries the hand either as a JSON object or as YAML/JSON text.
type initRequest struct {
	Spec     *replay.HandSpec `json:"spec,omitempty"`
	SpecText string           `json:"specText,omitempty"`
}

type initResponse struct {
	OK    bool                   `json:"ok"`
	Tape  *replay.WireReplayTape `json:"tape,omitempty"`
	Error *replay.ReplayError    `json:"error,omitempty"`
}

func main() {
	js.Global().Set("__replayInit", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 1 {
			return mustJSON(initResponse{
				OK:    false,
				Error: &replay.ReplayError{StepIndex: -1, Reason: "invalid_request", Message: "missing request payload"},
			})
		}
		return mustJSON(handleInit(args[0].String()))
	}))

	select {}
}

func handleInit(raw string) initResponse {
	var req initRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return failure("invalid_json", err)
	}

	var spec replay.HandSpec
	switch {
	case req.Spec != nil:
		spec = *req.Spec
	case req.SpecText != "":
		parsed, err := replay.ParseHandSpec([]byte(req.SpecText))
		if err != nil {
			return failure("invalid_spec", err)
		}
		spec = parsed
	default:
		return failure("invalid_request", errors.New("spec or specText is required"))
	}

	tape, err := replay.GenerateReplayTape(spec)
	if err != nil {
		var replayErr *replay.ReplayError
		if errors.As(err, &replayErr) {
			return initResponse{OK: false, Error: replayErr}
		}
		return failure("replay_generation_failed", err)
	}
	return initResponse{
		OK:   true,
		Tape: replay.ToWireReplayTape(tape),
	}
}

func failure(reason string, err error) initResponse {
	return initResponse{
		OK:    false,
		Error: &replay.ReplayError{StepIndex: -1, Reason: reason, Message: err.Error()},
	}
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		b, _ = json.Marshal(failure("marshal_failed", err))
	}
	return string(b)
}
