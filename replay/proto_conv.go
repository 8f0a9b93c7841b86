package replay

import (
	"skat-lite/card"
	"skat-lite/skat"
)

// structpb only accepts []any for lists; these helpers flatten engine values into it.

func cardsToValues(cards []card.Card) []any {
	return stringsToValues(card.Strings(cards))
}

func intsToValues(vs []int) []any {
	out := make([]any, 0, len(vs))
	for _, v := range vs {
		out = append(out, v)
	}
	return out
}

func floatsToValues(vs []float64) []any {
	out := make([]any, 0, len(vs))
	for _, v := range vs {
		out = append(out, v)
	}
	return out
}

func stringsToValues(vs []string) []any {
	out := make([]any, 0, len(vs))
	for _, v := range vs {
		out = append(out, v)
	}
	return out
}

func tokensToValues(tokens []skat.Token) []any {
	out := make([]any, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, string(t))
	}
	return out
}

func movesToCards(moves []skat.Move) []card.Card {
	out := make([]card.Card, 0, len(moves))
	for _, m := range moves {
		if pc, ok := m.Action.(skat.PlayCard); ok {
			out = append(out, pc.Card)
		}
	}
	return out
}

// movesToValues lists a trick as {seat, card} pairs in play order.
func movesToValues(moves []skat.Move) []any {
	out := make([]any, 0, len(moves))
	for _, m := range moves {
		pc, ok := m.Action.(skat.PlayCard)
		if !ok {
			continue
		}
		out = append(out, map[string]any{"seat": m.Seat, "card": pc.Card.String()})
	}
	return out
}

// actionName renders an action in the ActionSpec syntax, so prompts can be pasted back
// into a hand spec.
func actionName(a skat.Action) string {
	switch x := a.(type) {
	case skat.Bid:
		return "bid " + x.String()
	case skat.Pass:
		return "pass"
	case skat.DeclareContract:
		return "declare " + x.String()
	case skat.DeclareModifier:
		return "modifier " + x.String()
	case skat.FinishContract:
		return "finish"
	case skat.PlayCard:
		return "play " + x.String()
	}
	return "unknown"
}

func settlementToFields(s *skat.Settlement) map[string]any {
	return map[string]any{
		"declarer":       s.Declarer,
		"contract":       tokensToValues(s.Tokens),
		"contractScore":  s.ContractScore,
		"gameModifier":   s.GameModifier,
		"matadors":       s.Matadors,
		"finalValue":     s.FinalValue,
		"topBid":         s.TopBid,
		"declarerPoints": s.DeclarerPoints,
		"defenderPoints": s.DefenderPoints,
		"declarerTricks": s.DeclarerTricks,
		"won":            s.Won,
		"forcedLoss":     s.ForcedLoss,
		"declarerPayoff": s.DeclarerPayoff,
		"payoffs":        floatsToValues(s.Payoffs[:]),
		"schneider":      s.Achieved.SchneiderFor || s.Achieved.SchneiderAgainst,
		"schwarz":        s.Achieved.SchwarzFor || s.Achieved.SchwarzAgainst,
	}
}
