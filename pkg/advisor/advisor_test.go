package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestClient_Act(t *testing.T) {
	a := assert.New(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.Equal(http.MethodPost, r.Method)
		a.Equal("/action", r.URL.Path)
		a.Equal("application/json", r.Header.Get("Content-Type"))

		var req Request
		a.NoError(json.NewDecoder(r.Body).Decode(&req))
		a.Equal([]string{"14s", "13s"}, req.Hero)
		a.Equal(60, req.Pot)
		a.Equal(20, req.ToCall)
		a.Equal("flop", req.Street)
		a.Equal("BTN", req.Position)

		_, _ = w.Write([]byte(`{"action":"raise","amount":45}`))
	}))
	defer ts.Close()

	client := NewClient(logrus.StandardLogger(), ts.URL, time.Second)
	decision, err := client.Act(context.Background(), Request{
		Hero:     []string{"14s", "13s"},
		Board:    []string{"2h", "7d", "9c"},
		Pot:      60,
		ToCall:   20,
		Street:   "flop",
		Position: "BTN",
	})

	a.NoError(err)
	a.Equal("raise", decision.Action)
	a.Equal(45, decision.Amount)
}

func TestClient_Suggest(t *testing.T) {
	a := assert.New(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.Equal("/suggest", r.URL.Path)
		_, _ = w.Write([]byte(`{"advice":"Check. Your hand is weak.","prediction":"PAIR","detailed_chances":{"PAIR":"42.0%"}}`))
	}))
	defer ts.Close()

	client := NewClient(logrus.StandardLogger(), ts.URL, time.Second)
	suggestion, err := client.Suggest(context.Background(), Request{Hero: []string{"2s", "7d"}})

	a.NoError(err)
	a.Equal("Check. Your hand is weak.", suggestion.Advice)
	a.Equal("PAIR", suggestion.Prediction)
	a.Equal(map[string]string{"PAIR": "42.0%"}, suggestion.DetailedChances)
}

func TestClient_badStatus(t *testing.T) {
	a := assert.New(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient(logrus.StandardLogger(), ts.URL, time.Second)
	_, err := client.Act(context.Background(), Request{})
	a.EqualError(err, "advisor returned an unexpected status code: 500")

	_, err = client.Suggest(context.Background(), Request{})
	a.EqualError(err, "advisor returned an unexpected status code: 500")
}

func TestClient_transportError(t *testing.T) {
	a := assert.New(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	client := NewClient(logrus.StandardLogger(), ts.URL, time.Second)
	_, err := client.Act(context.Background(), Request{})
	a.Error(err)
}
