package skat

// Achievements records which schneider/schwarz thresholds were reached. Schneider is
// counted in card points (the skat belongs to the declarer), schwarz in tricks.
type Achievements struct {
	SchneiderFor     bool // declarer >= 90 points
	SchwarzFor       bool // declarer took every trick
	SchneiderAgainst bool // defenders >= 90 points
	SchwarzAgainst   bool // declarer took no trick
}

func DetermineSchneiderSchwarz(declarerPoints, declarerTricks int) Achievements {
	defenders := TotalPoints - declarerPoints
	return Achievements{
		SchneiderFor:     declarerPoints >= 90,
		SchwarzFor:       declarerTricks == NumTricks,
		SchneiderAgainst: defenders >= 90,
		SchwarzAgainst:   declarerTricks == 0,
	}
}

// PayoffInput is everything the payoff rule looks at.
type PayoffInput struct {
	Declarer       int
	Contract       Contract
	Modifiers      []Modifier
	ContractScore  int
	GameModifier   int
	TopBid         int
	DeclarerPoints int // trick points plus skat
	DeclarerTricks int
}

func (in PayoffInput) has(m Modifier) bool {
	for _, x := range in.Modifiers {
		if x == m {
			return true
		}
	}
	return false
}

type Settlement struct {
	Declarer      int
	Contract      Contract
	Tokens        []Token
	ContractScore int
	GameModifier  int
	Matadors      int
	FinalValue    int
	TopBid        int

	DeclarerPoints int
	DefenderPoints int
	SkatPoints     int
	DeclarerTricks int

	Achieved   Achievements
	ForcedLoss bool
	Won        bool

	DeclarerPayoff int
	// Payoffs by seat: the declarer's payoff, and minus half of it for each defender.
	Payoffs [NumPlayers]float64
}

// Settle applies the payoff rule. It has no access to the round, so scenario checks can
// call it with literal values.
func Settle(in PayoffInput) Settlement {
	ach := DetermineSchneiderSchwarz(in.DeclarerPoints, in.DeclarerTricks)
	s := Settlement{
		Declarer:       in.Declarer,
		Contract:       in.Contract,
		ContractScore:  in.ContractScore,
		GameModifier:   in.GameModifier,
		TopBid:         in.TopBid,
		DeclarerPoints: in.DeclarerPoints,
		DefenderPoints: TotalPoints - in.DeclarerPoints,
		DeclarerTricks: in.DeclarerTricks,
		Achieved:       ach,
	}

	levels := in.GameModifier
	if in.Contract != ContractNull {
		// schneider/schwarz suffered by the declarer raise the game value
		if ach.SchneiderAgainst {
			levels++
		}
		if ach.SchwarzAgainst {
			levels++
		}
	}
	s.FinalValue = in.ContractScore * levels

	unmetSchneider := in.has(ModifierSchneider) && !ach.SchneiderFor
	unmetSchwarz := in.has(ModifierSchwarz) && !ach.SchwarzFor
	switch {
	case s.FinalValue < in.TopBid || unmetSchneider || unmetSchwarz:
		s.ForcedLoss = true
		s.DeclarerPayoff = forcedLossPenalty(in.ContractScore, in.TopBid)
	case won(in) && s.FinalValue >= in.TopBid:
		s.Won = true
		s.DeclarerPayoff = s.FinalValue
	default:
		s.DeclarerPayoff = -s.FinalValue * 2
	}

	for seat := range s.Payoffs {
		if seat == in.Declarer {
			s.Payoffs[seat] = float64(s.DeclarerPayoff)
		} else {
			s.Payoffs[seat] = -float64(s.DeclarerPayoff) / 2
		}
	}
	return s
}

func won(in PayoffInput) bool {
	if in.Contract == ContractNull {
		return in.DeclarerTricks == 0
	}
	return in.DeclarerPoints > 60
}

// forcedLossPenalty charges the smallest multiple of the contract score above the bid, doubled.
func forcedLossPenalty(contractScore, topBid int) int {
	if contractScore <= 0 {
		return 0
	}
	return -(contractScore * (topBid/contractScore + 1)) * 2
}
