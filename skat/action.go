package skat

import (
	"fmt"
	"strconv"

	"skat-lite/card"
)

// ActionID is the flat integer encoding of an action:
//
//	0        no-bid sentinel (never decodes)
//	1..63    Bid, indexed into BidTable
//	64       Pass
//	65..70   DeclareContract, indexed into ContractTable
//	71..75   DeclareModifier, indexed into ModifierTable
//	76       FinishContract
//	77..108  PlayCard, indexed by card id
type ActionID int

const (
	NoBidActionID          ActionID = 0
	FirstBidActionID       ActionID = 1
	PassActionID           ActionID = 64
	FirstDeclareActionID   ActionID = 65
	FirstModifierActionID  ActionID = 71
	FinishContractActionID ActionID = 76
	FirstPlayCardActionID  ActionID = 77
	LastActionID           ActionID = FirstPlayCardActionID + card.NumCards - 1

	// NumActions counts the submittable ids 1..108.
	NumActions = int(LastActionID)
)

// ActionKind 动作类型
type ActionKind byte

const (
	ActionKindBid ActionKind = iota
	ActionKindPass
	ActionKindDeclareContract
	ActionKindDeclareModifier
	ActionKindFinishContract
	ActionKindPlayCard
)

var ActionKindDictionary = map[ActionKind]string{
	ActionKindBid:             "BID",
	ActionKindPass:            "PASS",
	ActionKindDeclareContract: "DECLARE",
	ActionKindDeclareModifier: "MODIFIER",
	ActionKindFinishContract:  "FINISH",
	ActionKindPlayCard:        "PLAY",
}

func (k ActionKind) String() string {
	if s, ok := ActionKindDictionary[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Action is a closed sum type; the variants are Bid, Pass, DeclareContract,
// DeclareModifier, FinishContract and PlayCard. Values are comparable with ==.
type Action interface {
	ID() ActionID
	Kind() ActionKind
	String() string
	action()
}

type Bid struct{ Amount int }

type Pass struct{}

type DeclareContract struct{ Contract Contract }

type DeclareModifier struct{ Modifier Modifier }

type FinishContract struct{}

type PlayCard struct{ Card card.Card }

func NewBid(amount int) (Bid, error) {
	if bidIndex(amount) < 0 {
		return Bid{}, fmt.Errorf("%w: %d", ErrInvalidBid, amount)
	}
	return Bid{Amount: amount}, nil
}

func NewDeclareContract(c Contract) (DeclareContract, error) {
	if !c.Valid() {
		return DeclareContract{}, fmt.Errorf("%w: %d", ErrInvalidContract, c)
	}
	return DeclareContract{Contract: c}, nil
}

func NewDeclareModifier(m Modifier) (DeclareModifier, error) {
	if !m.Valid() {
		return DeclareModifier{}, fmt.Errorf("%w: %d", ErrInvalidModifier, m)
	}
	return DeclareModifier{Modifier: m}, nil
}

func NewPlayCard(c card.Card) (PlayCard, error) {
	if !c.Valid() {
		return PlayCard{}, fmt.Errorf("invalid card: %d", c)
	}
	return PlayCard{Card: c}, nil
}

func (a Bid) ID() ActionID             { return FirstBidActionID + ActionID(bidIndex(a.Amount)) }
func (a Pass) ID() ActionID            { return PassActionID }
func (a DeclareContract) ID() ActionID { return FirstDeclareActionID + ActionID(a.Contract) }
func (a DeclareModifier) ID() ActionID { return FirstModifierActionID + ActionID(a.Modifier) }
func (a FinishContract) ID() ActionID  { return FinishContractActionID }
func (a PlayCard) ID() ActionID        { return FirstPlayCardActionID + ActionID(a.Card.ID()) }

func (Bid) Kind() ActionKind             { return ActionKindBid }
func (Pass) Kind() ActionKind            { return ActionKindPass }
func (DeclareContract) Kind() ActionKind { return ActionKindDeclareContract }
func (DeclareModifier) Kind() ActionKind { return ActionKindDeclareModifier }
func (FinishContract) Kind() ActionKind  { return ActionKindFinishContract }
func (PlayCard) Kind() ActionKind        { return ActionKindPlayCard }

func (a Bid) String() string             { return strconv.Itoa(a.Amount) }
func (Pass) String() string              { return "pass" }
func (a DeclareContract) String() string { return a.Contract.String() }
func (a DeclareModifier) String() string { return a.Modifier.String() }
func (FinishContract) String() string    { return "finish" }
func (a PlayCard) String() string        { return a.Card.String() }

func (Bid) action()             {}
func (Pass) action()            {}
func (DeclareContract) action() {}
func (DeclareModifier) action() {}
func (FinishContract) action()  {}
func (PlayCard) action()        {}

// DecodeAction maps an id back to its action. Id 0 and anything past LastActionID fail.
func DecodeAction(id ActionID) (Action, error) {
	switch {
	case id == PassActionID:
		return Pass{}, nil
	case id == FinishContractActionID:
		return FinishContract{}, nil
	case id >= FirstBidActionID && id < PassActionID:
		return Bid{Amount: BidTable[id-FirstBidActionID]}, nil
	case id >= FirstDeclareActionID && id < FirstModifierActionID:
		return DeclareContract{Contract: Contract(id - FirstDeclareActionID)}, nil
	case id >= FirstModifierActionID && id < FinishContractActionID:
		return DeclareModifier{Modifier: Modifier(id - FirstModifierActionID)}, nil
	case id >= FirstPlayCardActionID && id <= LastActionID:
		c, err := card.FromID(int(id - FirstPlayCardActionID))
		if err != nil {
			return nil, fmt.Errorf("%w: %d", ErrDecodeAction, id)
		}
		return PlayCard{Card: c}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrDecodeAction, id)
}

// ActionIDs encodes a list of actions.
func ActionIDs(actions []Action) []ActionID {
	out := make([]ActionID, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.ID())
	}
	return out
}

// ActionMask marks the given actions in a NumActions-wide mask indexed by id-1.
func ActionMask(actions []Action) [NumActions]bool {
	var mask [NumActions]bool
	for _, a := range actions {
		if id := a.ID(); id >= FirstBidActionID && id <= LastActionID {
			mask[id-1] = true
		}
	}
	return mask
}
