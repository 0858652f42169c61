package mailer

import (
	"context"
	"log"
	"time"

	"folio/internal/submit"
)

// Echo accepts every submission without sending anything. It stands in for
// the HTTP client when no endpoint is configured.
type Echo struct {
	// Delay simulates network latency.
	Delay time.Duration
}

var _ submit.Sender = Echo{}

// Send implements submit.Sender.
func (e Echo) Send(ctx context.Context, req submit.Request) (submit.Response, error) {
	if e.Delay > 0 {
		select {
		case <-time.After(e.Delay):
		case <-ctx.Done():
			return submit.Response{}, ctx.Err()
		}
	}
	log.Printf("mailer: echo %s submission from %s", req.Kind, req.Fields.Get("email"))
	switch req.Kind {
	case submit.KindNewsletter:
		return submit.Response{Message: "You're subscribed. Watch your inbox for the next issue."}, nil
	default:
		return submit.Response{Message: "Thanks for reaching out. I'll get back to you soon."}, nil
	}
}
