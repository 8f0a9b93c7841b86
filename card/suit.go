package card

type Suit byte

const (
	Diamonds Suit = iota // ♦
	Hearts               // ♥
	Spades               // ♠
	Clubs                // ♣

	SuitInvalid Suit = 0xFF
)

// Suits in ascending id order.
var Suits = [4]Suit{Diamonds, Hearts, Spades, Clubs}

func (s Suit) Valid() bool { return s <= Clubs }

func (s Suit) String() string {
	switch s {
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	case Clubs:
		return "C"
	}
	return "?"
}

func (s Suit) Symbol() string {
	switch s {
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	}
	return "?"
}

type Rank byte

const (
	Seven Rank = iota
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace

	RankInvalid Rank = 0xFF
)

func (r Rank) Valid() bool { return r <= Ace }

func (r Rank) String() string {
	switch r {
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return "?"
}
