package handeval

import (
	"testing"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"

	"holdemtable-server/internal/rng"
	"holdemtable-server/pkg/deck"
)

// oracleCard converts to the reference evaluator's representation
// (suits 0-3, ranks 1-13 with ace low).
func oracleCard(t *testing.T, c *deck.Card) poker.Card {
	t.Helper()

	var suit poker.Suit
	switch c.Suit {
	case deck.Clubs:
		suit = poker.Club
	case deck.Diamonds:
		suit = poker.Diamond
	case deck.Hearts:
		suit = poker.Heart
	case deck.Spades:
		suit = poker.Spade
	}

	rank := c.Rank
	if rank == deck.Ace {
		rank = 1
	}

	card, err := poker.MakeCard(suit, poker.Rank(rank))
	if err != nil {
		t.Fatalf("could not convert card %s: %v", c, err)
	}

	return card
}

func oracleEval(t *testing.T, cards []*deck.Card) int16 {
	t.Helper()

	var hand [7]poker.Card
	for i, c := range cards {
		hand[i] = oracleCard(t, c)
	}

	return poker.Eval7(&hand)
}

// TestEvaluate_againstOracle compares this evaluator's ordering with an
// independent evaluator over seeded random deals.
func TestEvaluate_againstOracle(t *testing.T) {
	a := assert.New(t)
	d := deck.NewWithRNG(rng.NewSeeded(99))

	for i := 0; i < 2000; i++ {
		d.Shuffle()

		first, err := d.DrawMany(7)
		a.NoError(err)
		second, err := d.DrawMany(7)
		a.NoError(err)

		mine, err := Evaluate(first)
		a.NoError(err)
		theirs, err := Evaluate(second)
		a.NoError(err)

		oracleFirst := oracleEval(t, first)
		oracleSecond := oracleEval(t, second)

		switch mine.Compare(theirs) {
		case 1:
			a.Greater(oracleFirst, oracleSecond, "hands %s vs %s", deck.CardsToString(first), deck.CardsToString(second))
		case -1:
			a.Less(oracleFirst, oracleSecond, "hands %s vs %s", deck.CardsToString(first), deck.CardsToString(second))
		default:
			a.Equal(oracleFirst, oracleSecond, "hands %s vs %s", deck.CardsToString(first), deck.CardsToString(second))
		}
	}
}
