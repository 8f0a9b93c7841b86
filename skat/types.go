package skat

import (
	"fmt"

	"skat-lite/card"
)

const NumPlayers = 3

// Phase is derived from the move history, never stored.
type Phase byte

const (
	PhaseBid     Phase = 0
	PhaseDeclare Phase = 1
	PhasePlay    Phase = 2
	PhaseOver    Phase = 3
)

const NumPhases = 4

var PhaseDictionary = map[Phase]string{
	PhaseBid:     "bid",
	PhaseDeclare: "declare",
	PhasePlay:    "play",
	PhaseOver:    "over",
}

func (p Phase) String() string {
	if s, ok := PhaseDictionary[p]; ok {
		return s
	}
	return "unknown"
}

// Role is a seat's auction/trick seniority for the current hand.
type Role byte

const (
	RoleForehand   Role = 0
	RoleMiddlehand Role = 1
	RoleBackhand   Role = 2
)

func (r Role) String() string {
	switch r {
	case RoleForehand:
		return "forehand"
	case RoleMiddlehand:
		return "middlehand"
	case RoleBackhand:
		return "backhand"
	}
	return "unknown"
}

// Token is one entry of a declared contract: a contract type or a modifier name.
type Token string

// Contract 游戏类型 (D, H, S, C, G, N)
type Contract byte

const (
	ContractDiamonds Contract = iota
	ContractHearts
	ContractSpades
	ContractClubs
	ContractGrand
	ContractNull
)

const NumContracts = 6

var ContractTable = [NumContracts]Token{"D", "H", "S", "C", "G", "N"}

func (c Contract) Valid() bool { return c <= ContractNull }

func (c Contract) Token() Token {
	if !c.Valid() {
		return "?"
	}
	return ContractTable[c]
}

func (c Contract) String() string { return string(c.Token()) }

// IsSuit reports a D/H/S/C game.
func (c Contract) IsSuit() bool { return c <= ContractClubs }

// Suit is the trump suit of a suit game.
func (c Contract) Suit() (card.Suit, bool) {
	if !c.IsSuit() {
		return card.SuitInvalid, false
	}
	return card.Suit(c), true
}

// BaseScore D=9 H=10 S=11 C=12 G=24 N=23
func (c Contract) BaseScore() int {
	switch {
	case c.IsSuit():
		return 9 + int(c)
	case c == ContractGrand:
		return 24
	case c == ContractNull:
		return 23
	}
	return 0
}

func ParseContract(tok string) (Contract, error) {
	for i, t := range ContractTable {
		if string(t) == tok {
			return Contract(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidContract, tok)
}

// Modifier 附加声明
type Modifier byte

const (
	ModifierSkat Modifier = iota
	ModifierHand
	ModifierSchneider
	ModifierSchwarz
	ModifierOpen
)

const NumModifiers = 5

var ModifierTable = [NumModifiers]Token{"Skat", "Hand", "Schneider", "Schwarz", "Open"}

func (m Modifier) Valid() bool { return m <= ModifierOpen }

func (m Modifier) Token() Token {
	if !m.Valid() {
		return "?"
	}
	return ModifierTable[m]
}

func (m Modifier) String() string { return string(m.Token()) }

func ParseModifier(tok string) (Modifier, error) {
	for i, t := range ModifierTable {
		if string(t) == tok {
			return Modifier(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidModifier, tok)
}

// BidTable lists every bid value available in Skat, ascending.
var BidTable = [...]int{
	18, 20, 22, 23, 24, 27, 30, 33, 35, 36, 40, 44, 45, 46, 48, 50, 54, 55, 59, 60, 63,
	66, 70, 72, 77, 80, 81, 84, 88, 90, 96, 99, 100, 108, 110, 117, 120, 121, 126, 130,
	132, 135, 140, 143, 144, 150, 153, 154, 156, 160, 162, 165, 168, 170, 176, 180, 187,
	192, 198, 204, 216, 240, 264,
}

// bidIndex returns the position of amount in BidTable, or -1.
func bidIndex(amount int) int {
	for i, b := range BidTable {
		if b == amount {
			return i
		}
	}
	return -1
}
