package table

import (
	"github.com/sirupsen/logrus"

	"holdemtable-server/pkg/poker/handeval"
	"holdemtable-server/pkg/poker/potmanager"
)

// SummaryPlayer describes one revealed seat in a hand summary
type SummaryPlayer struct {
	Name     string   `json:"name"`
	Hand     []string `json:"hand"`
	HandRank string   `json:"handRank,omitempty"`
	Amount   int      `json:"amount,omitempty"`
}

// Summary is the displayable result of the last completed hand
type Summary struct {
	Winners []SummaryPlayer `json:"winners"`
	Losers  []SummaryPlayer `json:"losers"`
}

// handleShowdown ends the hand and pays out the pot. With one active
// player left the pot is awarded outright; otherwise each pot layer is
// resolved independently among its eligible players, splitting ties by
// integer division. Remainder chips from uneven splits are dropped, not
// awarded.
func (t *Table) handleShowdown() {
	t.street = StreetShowdown

	active := t.activePlayers()
	if len(active) == 0 {
		return
	}

	if len(active) == 1 {
		winner := active[0]
		winner.stack += t.pot
		t.log("%s wins %d.", winner.name, t.pot)

		t.lastSummary = &Summary{
			Winners: []SummaryPlayer{{
				Name:     winner.name,
				Hand:     cardStrings(winner.hand),
				HandRank: t.rankLabel(winner),
				Amount:   t.pot,
			}},
		}

		t.pot = 0
		return
	}

	contributors := make([]potmanager.Contributor, len(t.players))
	for i, p := range t.players {
		contributors[i] = p
	}

	pots := potmanager.Build(contributors)
	t.logger.WithFields(logrus.Fields{
		"pots":  len(pots),
		"total": pots.Total(),
	}).Debug("resolving showdown")

	winnings := make(map[*Player]int)

	for _, pot := range pots {
		var winners []*Player
		var best handeval.Score

		for _, c := range pot.Eligible {
			p := c.(*Player)
			score, ok := t.evaluateSeat(p)
			if !ok {
				continue
			}

			switch {
			case len(winners) == 0 || score.Beats(best):
				best = score
				winners = []*Player{p}
			case score.Compare(best) == 0:
				winners = append(winners, p)
			}
		}

		if len(winners) == 0 {
			continue
		}

		share := pot.Amount / len(winners)
		for _, winner := range winners {
			winner.stack += share
			winnings[winner] += share
			t.log("%s wins %d.", winner.name, share)
		}
	}

	summary := &Summary{}
	for _, p := range active {
		entry := SummaryPlayer{
			Name:     p.name,
			Hand:     cardStrings(p.hand),
			HandRank: t.rankLabel(p),
		}

		if amount, ok := winnings[p]; ok {
			entry.Amount = amount
			summary.Winners = append(summary.Winners, entry)
		} else {
			summary.Losers = append(summary.Losers, entry)
		}
	}

	t.lastSummary = summary
	t.pot = 0
}

// evaluateSeat scores the player's best five-card hand from their hole
// cards and the board. Only possible once seven cards are available.
func (t *Table) evaluateSeat(p *Player) (handeval.Score, bool) {
	cards := append(p.hand.Clone(), t.board...)
	if len(cards) != 7 {
		return handeval.Score{}, false
	}

	score, err := handeval.Evaluate(cards)
	if err != nil {
		return handeval.Score{}, false
	}

	return score, true
}

// rankLabel returns the display name of the player's hand category, or ""
// when the hand can't be evaluated (e.g. the hand ended before the river).
func (t *Table) rankLabel(p *Player) string {
	score, ok := t.evaluateSeat(p)
	if !ok {
		return ""
	}

	return score.Category.String()
}
