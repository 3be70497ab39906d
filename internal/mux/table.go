package mux

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdemtable-server/internal/config"
	"holdemtable-server/internal/rng"
	"holdemtable-server/internal/util"
	"holdemtable-server/pkg/advisor"
	"holdemtable-server/pkg/deck"
	"holdemtable-server/pkg/poker/action"
	"holdemtable-server/pkg/poker/table"
)

const defaultNumBots = 3

var errNoTable = errors.New("create table first")

type postTablePayload struct {
	NumBots int `json:"numBots"`
}

type tableResponse struct {
	ID    string       `json:"id"`
	State *table.State `json:"state"`
}

func gameOptions() table.Options {
	cfg := config.Instance()
	return table.Options{
		MaxPlayers:    cfg.Game.MaxPlayers,
		StartingStack: cfg.Game.StartingStack,
		SmallBlind:    cfg.Game.SmallBlind,
		BigBlind:      cfg.Game.BigBlind,
	}
}

func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pp := postTablePayload{NumBots: defaultNumBots}
		if r.ContentLength > 0 {
			if !decodeRequest(w, r, &pp) {
				return
			}
		}

		options := gameOptions()
		if pp.NumBots < 1 || pp.NumBots >= options.MaxPlayers {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("numBots must be between 1 and %d", options.MaxPlayers-1))
			return
		}

		tbl, err := table.New(logrus.StandardLogger(), rng.Crypto{}, options)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		if _, err := tbl.AddPlayer("Hero", false); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		for i := 0; i < pp.NumBots; i++ {
			if _, err := tbl.AddPlayer(util.GetRandomName(), true); err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}
		}

		m.mu.Lock()
		defer m.mu.Unlock()

		m.table = tbl
		m.tableID = uuid.New().String()
		m.broadcastState()

		writeJSON(w, http.StatusCreated, tableResponse{
			ID:    m.tableID,
			State: tbl.VisibleState(table.HeroID),
		})
	}
}

func (m *Mux) postDeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()

		if m.table == nil {
			writeJSONError(w, http.StatusBadRequest, errNoTable)
			return
		}

		if err := m.table.DealNewHand(); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		// the blind posts alone can close the round (both seats all-in);
		// run the board out rather than waiting on a turn that never comes
		if m.table.RoundClosed() {
			if err := m.table.Advance(); err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}
		}

		m.runBotTurns(r.Context())
		m.broadcastState()

		writeJSON(w, http.StatusOK, m.table.VisibleState(table.HeroID))
	}
}

type postActionPayload struct {
	Action string `json:"action"`
	Amount int    `json:"amount"`
}

type postActionResponse struct {
	Action action.Action `json:"action"`
	State  *table.State  `json:"state"`
}

func (m *Mux) postAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postActionPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		m.mu.Lock()
		defer m.mu.Unlock()

		if m.table == nil {
			writeJSONError(w, http.StatusBadRequest, errNoTable)
			return
		}

		act, err := action.FromString(pp.Action)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		hero := m.table.CurrentTurn()
		if hero == nil || hero.ID() != table.HeroID {
			writeJSONError(w, http.StatusBadRequest, errors.New("not hero's turn"))
			return
		}

		if act == action.Check && m.table.ToCall(hero) > 0 {
			writeJSONError(w, http.StatusBadRequest, errors.New("cannot check facing a bet"))
			return
		}

		if act == action.Raise {
			minTarget := m.table.CurrentBet() + m.table.MinRaise()
			allIn := hero.RoundPut() + hero.Stack()
			if pp.Amount < minTarget && pp.Amount < allIn {
				writeJSONError(w, http.StatusBadRequest, fmt.Errorf("raise must be to at least %d", minTarget))
				return
			}
		}

		m.table.ApplyAction(hero, act, pp.Amount)
		if err := m.table.Advance(); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		m.runBotTurns(r.Context())
		m.broadcastState()

		writeJSON(w, http.StatusOK, postActionResponse{
			Action: act,
			State:  m.table.VisibleState(table.HeroID),
		})
	}
}

func (m *Mux) getState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()

		if m.table == nil {
			writeJSON(w, http.StatusOK, struct{}{})
			return
		}

		writeJSON(w, http.StatusOK, m.table.VisibleState(table.HeroID))
	}
}

func (m *Mux) postSuggest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()

		if m.table == nil {
			writeJSONError(w, http.StatusBadRequest, errNoTable)
			return
		}

		hero := m.table.PlayerByID(table.HeroID)
		if hero == nil {
			writeJSONError(w, http.StatusBadRequest, errors.New("no hero at the table"))
			return
		}

		suggestion, err := m.advisor.Suggest(r.Context(), m.advisorRequest(hero))
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, suggestion)
	}
}

// runBotTurns lets the advisor act for every bot seat until the hand needs
// human input or reaches showdown. Advisor failures degrade to a call or a
// check so the hand always moves forward. Callers must hold mu.
func (m *Mux) runBotTurns(ctx context.Context) {
	for {
		bot := m.table.CurrentTurn()
		if bot == nil || !bot.IsBot() {
			return
		}

		act, amount := m.botDecision(ctx, bot)
		m.table.ApplyAction(bot, act, amount)
		if err := m.table.Advance(); err != nil {
			logrus.WithError(err).Error("could not advance the hand")
			return
		}
	}
}

func (m *Mux) botDecision(ctx context.Context, bot *table.Player) (action.Action, int) {
	decision, err := m.advisor.Act(ctx, m.advisorRequest(bot))
	if err != nil {
		logrus.WithError(err).WithField("bot", bot.Name()).Warn("advisor unavailable")
		if m.table.ToCall(bot) > 0 {
			return action.Call, 0
		}

		return action.Check, 0
	}

	act, err := action.FromString(decision.Action)
	if err != nil {
		logrus.WithField("action", decision.Action).WithField("bot", bot.Name()).Warn("advisor returned an unknown action")
		return action.Check, 0
	}

	return act, decision.Amount
}

func (m *Mux) advisorRequest(p *table.Player) advisor.Request {
	return advisor.Request{
		Hero:     cardStrings(p.Hand()),
		Board:    cardStrings(m.table.Board()),
		Pot:      m.table.Pot(),
		ToCall:   m.table.ToCall(p),
		Street:   m.table.Street().String(),
		Position: p.Position(),
	}
}

func cardStrings(cards deck.Hand) []string {
	out := make([]string, len(cards))
	for i, card := range cards {
		out[i] = deck.CardToString(card)
	}

	return out
}
