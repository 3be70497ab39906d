package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("A♠", CardFromString("14s").String())
	a.Equal("K♡", CardFromString("13h").String())
	a.Equal("Q♢", CardFromString("12d").String())
	a.Equal("J♣", CardFromString("11c").String())
	a.Equal("10♣", CardFromString("10c").String())
	a.Equal("2♡", CardFromString("2h").String())
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("5s").Equal(CardFromString("5s")))
	a.False(CardFromString("5s").Equal(CardFromString("5c")))
	a.False(CardFromString("5s").Equal(CardFromString("6s")))
}

func TestCardFromString_badInput(t *testing.T) {
	assert.Panics(t, func() {
		CardFromString("15s")
	})

	assert.Panics(t, func() {
		CardFromString("5x")
	})
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("2c,10h,14s")
	assert.Equal(t, "2c,10h,14s", CardsToString(cards))
	assert.Equal(t, "", CardsToString(nil))
	assert.Equal(t, []*Card{}, CardsFromString(""))
}
