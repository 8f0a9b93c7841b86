package skat

import "fmt"

// Move is one accepted action together with the seat that made it. The round's move
// history is append-only and is the single source of truth for all derived state.
type Move struct {
	Seat   int
	Action Action
}

func (m Move) String() string {
	switch a := m.Action.(type) {
	case Bid:
		return fmt.Sprintf("P%d bids %d", m.Seat, a.Amount)
	case Pass:
		return fmt.Sprintf("P%d passes", m.Seat)
	case DeclareContract:
		return fmt.Sprintf("P%d declares contract %s", m.Seat, a.Contract)
	case DeclareModifier:
		return fmt.Sprintf("P%d declares modifier %s", m.Seat, a.Modifier)
	case FinishContract:
		return fmt.Sprintf("P%d finishes declarations", m.Seat)
	case PlayCard:
		return fmt.Sprintf("P%d plays %s", m.Seat, a.Card)
	}
	return fmt.Sprintf("P%d %v", m.Seat, m.Action)
}
