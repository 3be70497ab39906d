package table

import (
	"holdemtable-server/pkg/deck"
)

// Player is a seat at the table. Seats persist across hands; only the
// hand-scoped fields are reset by a new deal.
type Player struct {
	id   string
	name string
	bot  bool

	stack    int
	hand     deck.Hand
	folded   bool
	allIn    bool
	roundPut int
	totalPut int
	hasActed bool
	position string
}

// ID returns the stable seat identifier
func (p *Player) ID() string {
	return p.id
}

// Name returns the display name
func (p *Player) Name() string {
	return p.name
}

// IsBot returns true if the seat is played by the decision service
func (p *Player) IsBot() bool {
	return p.bot
}

// Stack returns the chips not yet wagered
func (p *Player) Stack() int {
	return p.stack
}

// Hand returns the player's hole cards
func (p *Player) Hand() deck.Hand {
	return p.hand
}

// Folded returns true if the player folded this hand
func (p *Player) Folded() bool {
	return p.folded
}

// AllIn returns true if the player has no chips behind
func (p *Player) AllIn() bool {
	return p.allIn
}

// RoundPut returns the chips committed in the current betting round
func (p *Player) RoundPut() int {
	return p.roundPut
}

// Position returns the seat label for the current hand (BTN, SB, ...)
func (p *Player) Position() string {
	return p.position
}

// TotalCommitted returns the chips committed across the whole hand
func (p *Player) TotalCommitted() int {
	return p.totalPut
}

// HasFolded returns true if the player folded this hand
func (p *Player) HasFolded() bool {
	return p.folded
}

// newHand resets the hand-scoped fields and deals the hole cards
func (p *Player) newHand(hand deck.Hand) {
	p.hand = hand
	p.folded = false
	p.allIn = false
	p.roundPut = 0
	p.totalPut = 0
	p.hasActed = false
	p.position = ""
}

// commit moves up to amount chips from the stack into the current round.
// It returns the amount actually paid, which is capped by the stack.
func (p *Player) commit(amount int) int {
	if amount > p.stack {
		amount = p.stack
	}

	if amount < 0 {
		amount = 0
	}

	p.stack -= amount
	p.roundPut += amount
	p.totalPut += amount

	if p.stack == 0 {
		p.allIn = true
	}

	return amount
}
