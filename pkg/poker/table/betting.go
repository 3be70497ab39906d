package table

import (
	"holdemtable-server/pkg/poker/action"
)

// ApplyAction validates and applies one player action. The engine is
// deliberately forgiving: rather than rejecting, it coerces an illegal
// check into a call and clamps raise amounts, so a misbehaving caller can
// never wedge the hand. Callers wanting strict rejection must validate
// before calling. Turn order is not re-checked here; that is the calling
// layer's job.
//
// A raise amount is the player's intended new total commitment for this
// round, not a delta.
func (t *Table) ApplyAction(p *Player, act action.Action, amount int) {
	if t.street == StreetShowdown || t.street == StreetPreDeal {
		return
	}

	if p.folded || p.allIn {
		return
	}

	switch act {
	case action.Fold:
		p.folded = true
		t.log("%s folds", p.name)
	case action.Check:
		if toCall := t.ToCall(p); toCall > 0 {
			// never let an illegal check stall the hand
			paid := p.commit(toCall)
			t.pot += paid
			t.log("%s cannot check, forced to call %d", p.name, paid)
		} else {
			t.log("%s checks", p.name)
		}
	case action.Call:
		paid := p.commit(t.ToCall(p))
		t.pot += paid
		t.log("%s calls %d", p.name, paid)
	case action.Raise:
		t.applyRaise(p, amount)
	}

	p.hasActed = true

	if len(t.activePlayers()) <= 1 {
		t.handleShowdown()
	}
}

// applyRaise moves the player toward the requested total round commitment.
// The target is clamped to at least the current bet and, implicitly, to the
// player's stack. Any resulting new high reopens the action for every other
// active player who still has chips, whether or not the increase amounts to
// a full raise.
func (t *Table) applyRaise(p *Player, amount int) {
	target := amount
	if target < t.currentBet {
		target = t.currentBet
	}

	paid := p.commit(target - p.roundPut)
	t.pot += paid

	if p.roundPut > t.currentBet {
		increase := p.roundPut - t.currentBet
		t.currentBet = p.roundPut
		if increase > t.minRaise {
			t.minRaise = increase
		}

		for _, other := range t.players {
			if other != p && !other.folded && !other.allIn {
				other.hasActed = false
			}
		}

		t.log("%s raises to %d", p.name, p.roundPut)
		return
	}

	// stack couldn't cover an actual increase
	t.log("%s calls %d", p.name, paid)
}

// RoundClosed reports whether the current betting round is complete:
// every non-folded player is either all-in, or has voluntarily acted this
// round and matches the current bet. A blind post alone does not count as
// having acted.
func (t *Table) RoundClosed() bool {
	active := t.activePlayers()
	if len(active) <= 1 {
		return true
	}

	for _, p := range active {
		if p.allIn {
			continue
		}

		if !p.hasActed {
			return false
		}

		if p.roundPut != t.currentBet {
			return false
		}
	}

	return true
}

// NextTurn advances the turn to the next seat that can act.
// No-op once one or fewer active players remain.
func (t *Table) NextTurn() {
	if len(t.activePlayers()) <= 1 {
		return
	}

	if seat := t.nextActionableSeat(t.turnIndex); seat >= 0 {
		t.turnIndex = seat
	}
}

// DealNextStreet moves the hand to its next phase: it deals the flop, turn
// or river, or resolves the showdown after the river. Betting state resets
// for the new street; all-in players count as having already acted.
func (t *Table) DealNextStreet() error {
	if len(t.activePlayers()) <= 1 {
		t.handleShowdown()
		return nil
	}

	switch t.street {
	case StreetPreFlop:
		cards, err := t.deck.DrawMany(3)
		if err != nil {
			return err
		}

		t.board = append(t.board, cards...)
		t.street = StreetFlop
		t.log("--- FLOP --- %s", t.board.String())
	case StreetFlop:
		cards, err := t.deck.DrawMany(1)
		if err != nil {
			return err
		}

		t.board = append(t.board, cards...)
		t.street = StreetTurn
		t.log("--- TURN --- %s", t.board[3])
	case StreetTurn:
		cards, err := t.deck.DrawMany(1)
		if err != nil {
			return err
		}

		t.board = append(t.board, cards...)
		t.street = StreetRiver
		t.log("--- RIVER --- %s", t.board[4])
	case StreetRiver:
		t.handleShowdown()
		return nil
	default:
		return nil
	}

	for _, p := range t.players {
		if !p.folded {
			p.roundPut = 0
			p.hasActed = p.allIn
		}
	}

	t.currentBet = 0
	t.minRaise = t.options.BigBlind
	t.turnIndex = t.nextActionableSeat(t.dealerIndex)

	return nil
}

// Advance moves the hand forward after an action: while the betting round
// is closed it keeps dealing streets (all-in rounds close immediately, so
// this may run the board out to showdown in one call); otherwise it passes
// the turn to the next seat.
func (t *Table) Advance() error {
	if !t.RoundClosed() {
		t.NextTurn()
		return nil
	}

	for t.RoundClosed() && t.street != StreetShowdown && t.street != StreetPreDeal {
		if err := t.DealNextStreet(); err != nil {
			return err
		}
	}

	return nil
}
