package handeval

import (
	"errors"
	"sort"

	"holdemtable-server/pkg/deck"
)

// ErrWrongCardCount is an error when Evaluate is called with anything other than seven cards
var ErrWrongCardCount = errors.New("evaluation requires exactly seven cards")

// Evaluate returns the strongest Score among all 21 five-card subsets of the
// seven provided cards (two hole cards plus a full board).
func Evaluate(cards []*deck.Card) (Score, error) {
	if len(cards) != 7 {
		return Score{}, ErrWrongCardCount
	}

	var best Score
	first := true
	for a := 0; a < 3; a++ {
		for b := a + 1; b < 4; b++ {
			for c := b + 1; c < 5; c++ {
				for d := c + 1; d < 6; d++ {
					for e := d + 1; e < 7; e++ {
						score := evaluateFive(cards[a], cards[b], cards[c], cards[d], cards[e])
						if first || score.Beats(best) {
							best = score
							first = false
						}
					}
				}
			}
		}
	}

	return best, nil
}

func evaluateFive(c1, c2, c3, c4, c5 *deck.Card) Score {
	cards := [5]*deck.Card{c1, c2, c3, c4, c5}

	rankCounts := make(map[int]int, 5)
	ranks := make([]int, 0, 5)
	isFlush := true
	for _, c := range cards {
		rankCounts[c.Rank]++
		ranks = append(ranks, c.Rank)
		if c.Suit != c1.Suit {
			isFlush = false
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	isStraight, straightHigh := straightHigh(ranks)
	if isStraight && isFlush {
		return newScore(StraightFlush, straightHigh)
	}

	// distinct ranks ordered by count, then rank, descending. The leading
	// entries identify pairs, trips and quads; the rest are kickers.
	type rankCount struct {
		rank  int
		count int
	}

	byCount := make([]rankCount, 0, len(rankCounts))
	for rank, count := range rankCounts {
		byCount = append(byCount, rankCount{rank: rank, count: count})
	}

	sort.Slice(byCount, func(i, j int) bool {
		if byCount[i].count != byCount[j].count {
			return byCount[i].count > byCount[j].count
		}

		return byCount[i].rank > byCount[j].rank
	})

	grouped := make([]int, len(byCount))
	for i, rc := range byCount {
		grouped[i] = rc.rank
	}

	switch {
	case byCount[0].count == 4:
		return newScore(FourOfAKind, grouped...)
	case byCount[0].count == 3 && byCount[1].count == 2:
		return newScore(FullHouse, grouped...)
	case isFlush:
		return newScore(Flush, ranks...)
	case isStraight:
		return newScore(Straight, straightHigh)
	case byCount[0].count == 3:
		return newScore(ThreeOfAKind, grouped...)
	case byCount[0].count == 2 && byCount[1].count == 2:
		return newScore(TwoPair, grouped...)
	case byCount[0].count == 2:
		return newScore(OnePair, grouped...)
	}

	return newScore(HighCard, ranks...)
}

// straightHigh reports whether the five ranks (sorted descending) form a
// straight, and if so its high card. The wheel (A-5-4-3-2) counts as a
// straight with high card 5, not ace.
func straightHigh(ranks []int) (bool, int) {
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]-1 {
			// wheel: A,5,4,3,2
			if i == 1 && ranks[0] == deck.Ace && ranks[1] == 5 {
				continue
			}

			return false, 0
		}
	}

	if ranks[0] == deck.Ace && ranks[1] == 5 {
		return true, 5
	}

	return true, ranks[0]
}
