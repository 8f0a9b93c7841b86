package card

// IDs 返回牌的稳定编号（0..31）
func IDs(cs []Card) []int {
	out := make([]int, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID())
	}
	return out
}

// Strings renders cards as "JC", "7D", ...
func Strings(cs []Card) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.String())
	}
	return out
}
