package mux

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"holdemtable-server/pkg/poker/table"
)

func TestGetStateWS(t *testing.T) {
	a := assert.New(t)
	ts := newTestServer(t, &stubAdvisor{})

	assertPost(t, ts, "/api/table", map[string]int{"numBots": 2}, nil, 201)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	a.NoError(err)
	defer resp.Body.Close()
	defer conn.Close()

	// a new subscriber immediately receives the current state
	var state stateMap
	a.NoError(conn.ReadJSON(&state))
	a.Equal("pre-deal", state.street())

	// mutations are pushed as they happen
	assertPost(t, ts, "/api/deal", nil, nil, 200)
	a.NoError(conn.ReadJSON(&state))
	a.Equal("preflop", state.street())
	a.Contains(state.actionLog(), "--- New Hand ---")
}

func TestBroadcastState_dropsSlowClients(t *testing.T) {
	a := assert.New(t)

	m := NewMux("v-test", &stubAdvisor{})
	ts := httptest.NewServer(m)
	defer ts.Close()

	assertPost(t, ts, "/api/table", map[string]int{"numBots": 2}, nil, 201)

	slow := &wsClient{send: make(chan *table.State)}
	m.mu.Lock()
	m.clients[slow] = true
	m.broadcastState()
	_, open := m.clients[slow]
	m.mu.Unlock()

	a.False(open)
}
