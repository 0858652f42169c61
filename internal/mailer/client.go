// Package mailer delivers form submissions to an HTTP email endpoint.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"folio/internal/jsonutil"
	"folio/internal/submit"
)

// Client posts submissions as JSON to Endpoint.
//
// Request body: {"name", "email", "message", "type"} (absent fields omitted).
// A 2xx reply carries {"message": "..."}; any other status is an error whose
// text is the reply's "message" or "error" field when present.
type Client struct {
	Endpoint string
	HTTP     *http.Client
}

var _ submit.Sender = (*Client)(nil)

// NewClient creates a client with its own http.Client.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: timeout},
	}
}

type payload struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message,omitempty"`
	Type    string `json:"type"`
}

// Error is a non-2xx reply from the endpoint.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Send implements submit.Sender.
func (c *Client) Send(ctx context.Context, req submit.Request) (submit.Response, error) {
	body, err := json.Marshal(payload{
		Name:    strings.TrimSpace(req.Fields.Get("name")),
		Email:   strings.TrimSpace(req.Fields.Get("email")),
		Message: strings.TrimSpace(req.Fields.Get("message")),
		Type:    string(req.Kind),
	})
	if err != nil {
		return submit.Response{}, fmt.Errorf("encode %s submission: %w", req.Kind, err)
	}
	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return submit.Response{}, fmt.Errorf("build request: %w", err)
	}
	hreq.Header.Set("Content-Type", "application/json")
	hreq.Header.Set("Accept", "application/json")

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(hreq)
	if err != nil {
		return submit.Response{}, fmt.Errorf("send %s submission: %w", req.Kind, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return submit.Response{}, fmt.Errorf("read reply: %w", err)
	}
	r, err := jsonutil.Object(raw, "decode reply")
	if err != nil {
		log.Printf("mailer: %d reply is not a JSON object: %v", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := jsonutil.FirstString(r, "message", "error")
		if msg == "" {
			msg = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return submit.Response{}, &Error{Status: resp.StatusCode, Message: msg}
	}
	return submit.Response{Message: jsonutil.FirstString(r, "message")}, nil
}
