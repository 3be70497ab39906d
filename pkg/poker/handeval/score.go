package handeval

// noRank pads unused tie-break slots. It sorts below every real rank (2-14).
const noRank = 0

// Score is a comparable hand strength: a category followed by up to five
// tie-break ranks, highest significance first. Unused slots hold noRank.
// Scores are totally ordered lexicographically.
type Score struct {
	Category  Category
	TieBreaks [5]int
}

func newScore(category Category, tieBreaks ...int) Score {
	s := Score{Category: category}
	copy(s.TieBreaks[:], tieBreaks)
	return s
}

// Compare returns -1 if s is weaker than o, 0 if equal, and 1 if stronger
func (s Score) Compare(o Score) int {
	if s.Category != o.Category {
		if s.Category < o.Category {
			return -1
		}

		return 1
	}

	for i := range s.TieBreaks {
		if s.TieBreaks[i] != o.TieBreaks[i] {
			if s.TieBreaks[i] < o.TieBreaks[i] {
				return -1
			}

			return 1
		}
	}

	return 0
}

// Beats returns true if s is strictly stronger than o
func (s Score) Beats(o Score) bool {
	return s.Compare(o) > 0
}
