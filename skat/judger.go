package skat

import (
	"fmt"

	"skat-lite/card"
)

// Judger enumerates legal actions and scores finished rounds. It holds no state: every
// answer is a projection of the round.
type Judger struct{}

// LegalActions returns the legal actions for the current player, in ascending id order.
func (j Judger) LegalActions(r *Round) []Action {
	if r.aborted != nil {
		return nil
	}
	return j.legalActions(r, r.view())
}

func (j Judger) legalActions(r *Round, v roundView) []Action {
	switch v.phase {
	case PhaseBid:
		out := make([]Action, 0, len(BidTable)+1)
		if v.topBid > 0 && r.seniorTo(v.current, v.topBidder) {
			out = append(out, Bid{Amount: v.topBid})
		}
		for _, b := range BidTable {
			if b > v.topBid {
				out = append(out, Bid{Amount: b})
			}
		}
		return append(out, Pass{})

	case PhaseDeclare:
		if !v.hasContract {
			out := make([]Action, 0, NumContracts)
			for c := ContractDiamonds; c <= ContractNull; c++ {
				out = append(out, DeclareContract{Contract: c})
			}
			return out
		}
		mods := declarableModifiers(v)
		out := make([]Action, 0, len(mods)+1)
		for _, m := range mods {
			out = append(out, DeclareModifier{Modifier: m})
		}
		if canFinish(v) {
			out = append(out, FinishContract{})
		}
		return out

	case PhasePlay:
		plays := LegalPlays(v.contract, r.players[v.current].Hand(), trickCards(v.trick))
		out := make([]Action, 0, len(plays))
		for _, c := range sortedByID(plays) {
			out = append(out, PlayCard{Card: c})
		}
		return out
	}
	return nil
}

func (j Judger) isLegal(r *Round, v roundView, a Action) bool {
	for _, x := range j.legalActions(r, v) {
		if x == a {
			return true
		}
	}
	return false
}

// declarableModifiers: suit and Grand games pick Skat or Hand first, and only a Hand game
// may go on to Schneider, then Schwarz, then Open. Null takes at most one of Skat/Hand plus
// an optional Open, in any order.
func declarableModifiers(v roundView) []Modifier {
	pickedUp := v.hasModifier(ModifierSkat) || v.hasModifier(ModifierHand)
	if v.contract == ContractNull {
		var out []Modifier
		if !pickedUp {
			out = append(out, ModifierSkat, ModifierHand)
		}
		if !v.hasModifier(ModifierOpen) {
			out = append(out, ModifierOpen)
		}
		return out
	}
	switch {
	case !pickedUp:
		return []Modifier{ModifierSkat, ModifierHand}
	case !v.hasModifier(ModifierHand):
		return nil
	case !v.hasModifier(ModifierSchneider):
		return []Modifier{ModifierSchneider}
	case !v.hasModifier(ModifierSchwarz):
		return []Modifier{ModifierSchwarz}
	case !v.hasModifier(ModifierOpen):
		return []Modifier{ModifierOpen}
	}
	return nil
}

func canFinish(v roundView) bool {
	if !v.hasContract || v.finished {
		return false
	}
	if v.contract == ContractNull {
		return true
	}
	return v.hasModifier(ModifierSkat) || v.hasModifier(ModifierHand)
}

func sortedByID(cards []card.Card) []card.Card {
	return card.SetOf(cards...).Cards()
}

// JudgePayoffs settles a finished round.
func (j Judger) JudgePayoffs(r *Round) (*Settlement, error) {
	if r.aborted != nil {
		return nil, ErrHandAborted
	}
	v := r.view()
	if v.phase != PhaseOver {
		return nil, ErrHandNotOver
	}
	if v.declarer < 0 {
		return nil, ErrInvalidState("finished round without declarer")
	}
	skatPoints := PointsOf(r.dealer.Skat())
	in := PayoffInput{
		Declarer:       v.declarer,
		Contract:       v.contract,
		Modifiers:      append([]Modifier{}, v.modifiers...),
		ContractScore:  v.contractScore,
		GameModifier:   v.gameModifier,
		TopBid:         v.topBid,
		DeclarerPoints: v.scores[v.declarer] + skatPoints,
		DeclarerTricks: len(v.tricksWon[v.declarer]),
	}
	s := Settle(in)
	s.Tokens = v.tokens()
	s.Matadors = v.matadors
	s.SkatPoints = skatPoints

	sum := 0
	for _, x := range v.scores {
		sum += x
	}
	if sum+skatPoints != TotalPoints {
		return nil, ErrInvalidState(fmt.Sprintf("card points add up to %d", sum+skatPoints))
	}
	return &s, nil
}
