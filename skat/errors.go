package skat

import "errors"

var (
	ErrInvalidBid      = errors.New("invalid bid amount")
	ErrInvalidContract = errors.New("invalid contract type")
	ErrInvalidModifier = errors.New("invalid contract modifier")
	ErrDecodeAction    = errors.New("cannot decode action id")
	ErrIllegalAction   = errors.New("action is not legal in the current state")
	ErrOutOfTurn       = errors.New("action out of turn")
	ErrHandNotStarted  = errors.New("hand not started")
	ErrHandEnded       = errors.New("hand already ended")
	ErrHandNotOver     = errors.New("hand is not over")
	ErrHandAborted     = errors.New("hand aborted after an internal consistency failure")
)

// InvalidStateError marks a broken engine invariant. A round that produced one is aborted.
type InvalidStateError string

func (e InvalidStateError) Error() string { return "invalid state: " + string(e) }

func ErrInvalidState(msg string) error { return InvalidStateError(msg) }
