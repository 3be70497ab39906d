package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"holdemtable-server/internal/rng"
)

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Equal(t, 52, deck.CardsLeft())
	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, *deck.Cards[0])
	assert.Equal(t, Card{Rank: 14, Suit: Spades}, *deck.Cards[51])

	seen := make(map[Card]bool)
	for _, card := range deck.Cards {
		seen[*card] = true
	}
	assert.Equal(t, 52, len(seen))
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := NewWithRNG(rng.NewSeeded(1))
	d2 := NewWithRNG(rng.NewSeeded(1))
	d1.Shuffle()
	d2.Shuffle()
	a.Equal(d1.HashCode(), d2.HashCode())

	d3 := NewWithRNG(rng.NewSeeded(2))
	d3.Shuffle()
	a.NotEqual(d1.HashCode(), d3.HashCode())

	// all 52 cards survive the shuffle
	seen := make(map[Card]bool)
	for _, card := range d1.Cards {
		seen[*card] = true
	}
	a.Equal(52, len(seen))

	// a shuffle after drawing restores a full deck
	_, _ = d1.Draw()
	d1.Shuffle()
	a.Equal(52, d1.CardsLeft())
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	if !deck.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if deck.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := deck.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	if deck.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err := deck.Draw()
	if card != nil {
		t.Errorf("expected card to be nil, got %#v", card)
	}

	if err != ErrEndOfDeck {
		t.Errorf("expected err to be ErrEndOfDeck, got %#v", err)
	}
}

func TestDeck_DrawMany(t *testing.T) {
	a := assert.New(t)
	d := New()

	flop, err := d.DrawMany(3)
	a.NoError(err)
	a.Equal(3, len(flop))
	a.Equal(49, d.CardsLeft())

	_, err = d.DrawMany(48)
	a.NoError(err)
	a.Equal(1, d.CardsLeft())

	// not enough cards: nothing is removed
	cards, err := d.DrawMany(2)
	a.Equal(ErrEndOfDeck, err)
	a.Nil(cards)
	a.Equal(1, d.CardsLeft())
}
