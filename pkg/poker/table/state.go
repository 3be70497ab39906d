package table

import "holdemtable-server/pkg/deck"

// hiddenCard is what a concealed hole card renders as
const hiddenCard = "??"

// terminalMarker is reported as toAct once no player can act
const terminalMarker = "Game Over"

// PlayerState is the public view of a seat
type PlayerState struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Stack    int      `json:"stack"`
	Folded   bool     `json:"folded"`
	AllIn    bool     `json:"allIn"`
	Position string   `json:"position"`
	Hand     []string `json:"hand"`
}

// State is a redacted snapshot of the table for one viewer
type State struct {
	Street     Street         `json:"street"`
	Board      []string       `json:"board"`
	Pot        int            `json:"pot"`
	CurrentBet int            `json:"currentBet"`
	MinRaise   int            `json:"minRaise"`
	ToAct      string         `json:"toAct"`
	Players    []*PlayerState `json:"players"`
	ActionLog  []string       `json:"actionLog"`
	Summary    *Summary       `json:"summary,omitempty"`
}

// VisibleState returns a snapshot redacted for the given viewer: hole
// cards are revealed only for the viewer's own seat, or for every seat
// once the hand reaches showdown. Taking a snapshot never mutates the
// table.
func (t *Table) VisibleState(viewerID string) *State {
	players := make([]*PlayerState, len(t.players))
	for i, p := range t.players {
		players[i] = t.playerState(p, viewerID)
	}

	toAct := terminalMarker
	if turn := t.CurrentTurn(); turn != nil {
		toAct = turn.name
	}

	return &State{
		Street:     t.street,
		Board:      cardStrings(t.board),
		Pot:        t.pot,
		CurrentBet: t.currentBet,
		MinRaise:   t.minRaise,
		ToAct:      toAct,
		Players:    players,
		ActionLog:  t.ActionLog(),
		Summary:    t.lastSummary,
	}
}

func (t *Table) playerState(p *Player, viewerID string) *PlayerState {
	reveal := p.id == viewerID || t.street == StreetShowdown

	hand := make([]string, len(p.hand))
	for i, card := range p.hand {
		if reveal {
			hand[i] = deck.CardToString(card)
		} else {
			hand[i] = hiddenCard
		}
	}

	return &PlayerState{
		ID:       p.id,
		Name:     p.name,
		Stack:    p.stack,
		Folded:   p.folded,
		AllIn:    p.allIn,
		Position: p.position,
		Hand:     hand,
	}
}

func cardStrings(cards deck.Hand) []string {
	out := make([]string, len(cards))
	for i, card := range cards {
		out[i] = deck.CardToString(card)
	}

	return out
}
