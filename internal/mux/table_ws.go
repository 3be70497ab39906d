package mux

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"holdemtable-server/pkg/poker/table"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// wsClient is one connected state-stream subscriber
type wsClient struct {
	conn *websocket.Conn
	send chan *table.State
}

func (m *Mux) getStateWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		client := &wsClient{
			conn: conn,
			send: make(chan *table.State, 8),
		}

		m.registerClient(client)
		defer func() {
			m.unregisterClient(client)
			_ = conn.Close()
		}()

		go m.webSocketWriteLoop(client)
		m.webSocketReadLoop(client)
	}
}

// registerClient subscribes the client and queues the current state so a
// newly connected client renders immediately
func (m *Mux) registerClient(client *wsClient) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clients[client] = true
	if m.table != nil {
		client.send <- m.table.VisibleState(table.HeroID)
	}
}

func (m *Mux) unregisterClient(client *wsClient) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.clients[client]; ok {
		delete(m.clients, client)
		close(client.send)
	}
}

// broadcastState pushes the redacted state to every subscriber. Slow
// clients are dropped rather than blocking the hand. Callers must hold mu.
func (m *Mux) broadcastState() {
	if m.table == nil {
		return
	}

	state := m.table.VisibleState(table.HeroID)
	for client := range m.clients {
		select {
		case client.send <- state:
		default:
			delete(m.clients, client)
			close(client.send)
		}
	}
}

func (m *Mux) webSocketWriteLoop(client *wsClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = client.conn.Close()
	}()

	for {
		select {
		case <-ticker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case state, ok := <-client.send:
			if !ok {
				_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = client.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteJSON(state); err != nil {
				logrus.WithError(err).Error("could not write state")
				return
			}
		}
	}
}

// webSocketReadLoop discards inbound messages; the stream is one-way but
// reads must continue for pong handling
func (m *Mux) webSocketReadLoop(client *wsClient) {
	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.WithError(err).Debug("websocket closed unexpectedly")
			}

			return
		}
	}
}
