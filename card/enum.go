package card

// Diamonds 方块
const (
	CardDiamond7 Card = iota
	CardDiamond8
	CardDiamond9
	CardDiamondT
	CardDiamondJ
	CardDiamondQ
	CardDiamondK
	CardDiamondA
)

// Hearts 红心
const (
	CardHeart7 Card = iota + 8
	CardHeart8
	CardHeart9
	CardHeartT
	CardHeartJ
	CardHeartQ
	CardHeartK
	CardHeartA
)

// Spades 黑桃
const (
	CardSpade7 Card = iota + 16
	CardSpade8
	CardSpade9
	CardSpadeT
	CardSpadeJ
	CardSpadeQ
	CardSpadeK
	CardSpadeA
)

// Clubs 梅花
const (
	CardClub7 Card = iota + 24
	CardClub8
	CardClub9
	CardClubT
	CardClubJ
	CardClubQ
	CardClubK
	CardClubA
)
