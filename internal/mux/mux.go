package mux

import (
	"net/http"
	"sync"

	gmux "github.com/gorilla/mux"

	"holdemtable-server/pkg/advisor"
	"holdemtable-server/pkg/poker/table"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	advisor advisor.Advisor

	// one table per server; mu serializes every table mutation
	mu      sync.Mutex
	tableID string
	table   *table.Table
	clients map[*wsClient]bool
}

// NewMux returns a new HTTP mux
func NewMux(version string, adv advisor.Advisor) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		advisor: adv,
		clients: make(map[*wsClient]bool),
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/api/table").Handler(this.postTable())
	r.Methods(http.MethodPost).Path("/api/deal").Handler(this.postDeal())
	r.Methods(http.MethodPost).Path("/api/action").Handler(this.postAction())
	r.Methods(http.MethodPost).Path("/api/suggest").Handler(this.postSuggest())
	r.Methods(http.MethodGet).Path("/api/state").Handler(this.getState())
	r.Methods(http.MethodGet).Path("/api/ws").Handler(this.getStateWS())

	return this
}
