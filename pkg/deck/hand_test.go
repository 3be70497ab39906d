package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_AddCard(t *testing.T) {
	a := assert.New(t)

	hand := Hand{}
	hand.AddCard(CardFromString("5s"))
	hand.AddCard(CardFromString("14h"))

	a.Equal("5s,14h", hand.String())
	a.True(hand.HasCard(CardFromString("5s")))
	a.False(hand.HasCard(CardFromString("5c")))
}

func TestHand_Clone(t *testing.T) {
	hand := Hand(CardsFromString("2c,3c"))
	clone := hand.Clone()
	clone[0] = CardFromString("14s")

	assert.Equal(t, "2c,3c", hand.String())
	assert.Equal(t, "14s,3c", clone.String())
}
