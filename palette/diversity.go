package palette

import "github.com/fwojciec/iro"

// maxRelaxRounds bounds how often Select halves its threshold.
const maxRelaxRounds = 3

// Selection is the output of Select.
type Selection struct {
	Colors []iro.RawColor
	// Threshold is the distance every accepted pair satisfies. It is lower
	// than the requested threshold when relaxation was needed.
	Threshold float64
}

// Select greedily picks up to count mutually distinct colors in input order.
// A candidate is accepted only if its distance to every accepted color is at
// least threshold. When too few survive, the threshold is halved and the walk
// restarts, at most maxRelaxRounds times; the largest selection wins.
func Select(colors []iro.RawColor, threshold float64, count int) Selection {
	best := greedy(colors, threshold, count)
	used := threshold
	for round := 0; round < maxRelaxRounds && len(best) < count && len(best) < len(colors); round++ {
		threshold /= 2
		if sel := greedy(colors, threshold, count); len(sel) > len(best) {
			best, used = sel, threshold
		}
	}
	return Selection{Colors: best, Threshold: used}
}

func greedy(colors []iro.RawColor, threshold float64, count int) []iro.RawColor {
	accepted := make([]iro.RawColor, 0, count)
	for _, c := range colors {
		if len(accepted) >= count {
			break
		}
		if distinct(accepted, c.Color, threshold) {
			accepted = append(accepted, c)
		}
	}
	return accepted
}

func distinct(accepted []iro.RawColor, c iro.Color, threshold float64) bool {
	for _, a := range accepted {
		if iro.Distance(a.Color, c) < threshold {
			return false
		}
	}
	return true
}
