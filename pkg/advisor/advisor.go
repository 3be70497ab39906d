// Package advisor talks to the external decision service that drives the
// bot seats and powers hand suggestions for the human player.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Request describes one decision point
type Request struct {
	Hero     []string `json:"hero"`
	Board    []string `json:"board"`
	Pot      int      `json:"pot"`
	ToCall   int      `json:"to_call"`
	Street   string   `json:"street"`
	Position string   `json:"position,omitempty"`
}

// Decision is the advisor's answer for a bot seat. Amount is the intended
// total commitment for the round when the action is a raise.
type Decision struct {
	Action string `json:"action"`
	Amount int    `json:"amount"`
}

// Suggestion is the advisor's human-readable advice, passed through to the
// client untouched.
type Suggestion struct {
	Advice          string            `json:"advice"`
	Prediction      string            `json:"prediction"`
	DetailedChances map[string]string `json:"detailed_chances,omitempty"`
}

// Advisor can decide an action for a seat or explain what it would do
type Advisor interface {
	// Act returns the decision for the seat described by the request
	Act(ctx context.Context, req Request) (*Decision, error)

	// Suggest returns display-oriented advice for the same spot
	Suggest(ctx context.Context, req Request) (*Suggestion, error)
}

// Client is an Advisor backed by an HTTP decision service
type Client struct {
	baseURL string
	client  *http.Client
	logger  logrus.FieldLogger
}

var _ Advisor = (*Client)(nil)

// NewClient returns a client for the advisor service at baseURL
func NewClient(logger logrus.FieldLogger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Act implements Advisor
func (c *Client) Act(ctx context.Context, req Request) (*Decision, error) {
	var decision Decision
	if err := c.post(ctx, "/action", req, &decision); err != nil {
		return nil, err
	}

	return &decision, nil
}

// Suggest implements Advisor
func (c *Client) Suggest(ctx context.Context, req Request) (*Suggestion, error) {
	var suggestion Suggestion
	if err := c.post(ctx, "/suggest", req, &suggestion); err != nil {
		return nil, err
	}

	return &suggestion, nil
}

func (c *Client) post(ctx context.Context, path string, payload, response interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}

	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return err
	}

	defer func() {
		if err := res.Body.Close(); err != nil {
			c.logger.WithError(err).Error("could not close response body")
		}
	}()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("advisor returned an unexpected status code: %d", res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(response)
}
