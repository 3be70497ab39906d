// Package table implements the hold'em betting engine: a deterministic
// state machine that owns the deck, the board, the pot and every seat,
// validates and applies player actions, advances streets and resolves
// showdowns. The engine is single-threaded per table; callers must
// serialize all mutations.
package table

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"holdemtable-server/internal/rng"
	"holdemtable-server/pkg/deck"
)

// HeroID is the seat ID assigned to the human player
const HeroID = "HERO"

// ErrTableFull is an error when a seat is requested at a full table
var ErrTableFull = errors.New("table is full")

// ErrHandInProgress is an error when a seat is requested mid-hand
var ErrHandInProgress = errors.New("cannot add a player while a hand is in progress")

// Options configures a table
type Options struct {
	MaxPlayers    int
	StartingStack int
	SmallBlind    int
	BigBlind      int
}

// DefaultOptions returns the default table configuration
func DefaultOptions() Options {
	return Options{
		MaxPlayers:    6,
		StartingStack: 1000,
		SmallBlind:    10,
		BigBlind:      20,
	}
}

// Table owns all player and hand state for one hold'em table
type Table struct {
	logger  logrus.FieldLogger
	options Options
	rng     rng.Generator

	players     []*Player
	dealerIndex int

	deck       *deck.Deck
	board      deck.Hand
	pot        int
	street     Street
	currentBet int
	minRaise   int
	turnIndex  int
	actionLog  []string

	lastSummary *Summary
}

// New returns a table with no seats taken.
// The generator is only used to shuffle; pass a rng.Seeded for
// reproducible hands.
func New(logger logrus.FieldLogger, generator rng.Generator, options Options) (*Table, error) {
	if err := validateOptions(options); err != nil {
		return nil, err
	}

	t := &Table{
		logger:      logger,
		options:     options,
		rng:         generator,
		dealerIndex: -1,
	}

	t.resetHand()
	return t, nil
}

func validateOptions(options Options) error {
	if options.MaxPlayers < 2 {
		return errors.New("max players must be at least 2")
	}

	if options.StartingStack <= 0 {
		return errors.New("starting stack must be greater than zero")
	}

	if options.SmallBlind <= 0 || options.BigBlind <= 0 {
		return errors.New("blinds must be greater than zero")
	}

	if options.SmallBlind > options.BigBlind {
		return errors.New("small blind cannot exceed the big blind")
	}

	return nil
}

// AddPlayer seats a player. Seating order is fixed for the table's
// lifetime and players persist across hands.
func (t *Table) AddPlayer(name string, bot bool) (*Player, error) {
	if len(t.players) >= t.options.MaxPlayers {
		return nil, ErrTableFull
	}

	if t.street != StreetPreDeal && t.street != StreetShowdown {
		return nil, ErrHandInProgress
	}

	id := HeroID
	if bot {
		id = fmt.Sprintf("B%d", len(t.players))
	}

	player := &Player{
		id:    id,
		name:  name,
		bot:   bot,
		stack: t.options.StartingStack,
	}

	t.players = append(t.players, player)
	t.logger.WithFields(logrus.Fields{
		"player": name,
		"id":     id,
	}).Debug("player seated")

	return player, nil
}

// resetHand clears all hand-scoped table state
func (t *Table) resetHand() {
	t.deck = deck.NewWithRNG(t.rng)
	t.board = nil
	t.pot = 0
	t.street = StreetPreDeal
	t.currentBet = 0
	t.minRaise = 0
	t.turnIndex = -1
	t.actionLog = []string{}
	t.lastSummary = nil
}

// DealNewHand starts the next hand: reshuffles, deals hole cards, rotates
// the button, assigns positions and posts the blinds. With fewer than two
// seats taken it logs a waiting message and deals nothing.
func (t *Table) DealNewHand() error {
	if len(t.players) < 2 {
		t.resetHand()
		t.log("Waiting for players...")
		return nil
	}

	t.resetHand()
	t.street = StreetPreFlop
	t.log("--- New Hand ---")

	t.deck.Shuffle()

	n := len(t.players)
	for _, p := range t.players {
		hand, err := t.deck.DrawMany(2)
		if err != nil {
			return err
		}

		p.newHand(hand)
	}

	t.dealerIndex = (t.dealerIndex + 1) % n
	t.assignPositions()

	sbIndex := (t.dealerIndex + 1) % n
	bbIndex := (t.dealerIndex + 2) % n

	sbPlayer := t.players[sbIndex]
	sbAmount := sbPlayer.commit(t.options.SmallBlind)
	t.pot += sbAmount
	t.log("%s posts small blind of %d", sbPlayer.name, sbAmount)

	bbPlayer := t.players[bbIndex]
	bbAmount := bbPlayer.commit(t.options.BigBlind)
	t.pot += bbAmount
	t.log("%s posts big blind of %d", bbPlayer.name, bbAmount)

	t.currentBet = t.options.BigBlind
	t.minRaise = t.options.BigBlind
	t.turnIndex = t.nextActionableSeat(bbIndex)

	return nil
}

// Street returns the current street
func (t *Table) Street() Street {
	return t.street
}

// Pot returns the chips not yet distributed
func (t *Table) Pot() int {
	return t.pot
}

// CurrentBet returns the highest round commitment required to stay in
func (t *Table) CurrentBet() int {
	return t.currentBet
}

// MinRaise returns the minimum increase over the current bet for a full raise
func (t *Table) MinRaise() int {
	return t.minRaise
}

// Board returns the community cards
func (t *Table) Board() deck.Hand {
	return t.board
}

// Players returns the seats in seating order
func (t *Table) Players() []*Player {
	return t.players
}

// PlayerByID returns the seat with the given identifier, or nil
func (t *Table) PlayerByID(id string) *Player {
	for _, p := range t.players {
		if p.id == id {
			return p
		}
	}

	return nil
}

// CurrentTurn returns the player to act, or nil once the hand is over
func (t *Table) CurrentTurn() *Player {
	if t.street == StreetShowdown || t.street == StreetPreDeal {
		return nil
	}

	if t.turnIndex < 0 || t.turnIndex >= len(t.players) {
		return nil
	}

	return t.players[t.turnIndex]
}

// ToCall returns how many chips the player must add to match the current bet
func (t *Table) ToCall(p *Player) int {
	toCall := t.currentBet - p.roundPut
	if toCall < 0 {
		return 0
	}

	return toCall
}

// LastSummary returns the result of the most recently completed hand, or nil
func (t *Table) LastSummary() *Summary {
	return t.lastSummary
}

// ActionLog returns a copy of the hand's event log
func (t *Table) ActionLog() []string {
	entries := make([]string, len(t.actionLog))
	copy(entries, t.actionLog)
	return entries
}

// activePlayers returns the non-folded seats
func (t *Table) activePlayers() []*Player {
	active := make([]*Player, 0, len(t.players))
	for _, p := range t.players {
		if !p.folded {
			active = append(active, p)
		}
	}

	return active
}

// nextActionableSeat scans forward from the seat after start (wrapping) to
// the next non-folded, non-all-in seat. Returns -1 if no seat can act.
func (t *Table) nextActionableSeat(start int) int {
	n := len(t.players)
	for i := 1; i <= n; i++ {
		seat := (start + i) % n
		p := t.players[seat]
		if !p.folded && !p.allIn {
			return seat
		}
	}

	return -1
}

func (t *Table) log(format string, args ...interface{}) {
	entry := fmt.Sprintf(format, args...)
	t.actionLog = append(t.actionLog, entry)
	t.logger.WithField("street", t.street.String()).Debug(entry)
}
