package response

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrymomot/dispatch/handler"
)

// DefaultSSEKeepAlive is the default keep-alive interval for SSE connections.
const DefaultSSEKeepAlive = 30 * time.Second

// sseConfig holds configuration for Server-Sent Events responses.
type sseConfig struct {
	eventName string
	keepAlive time.Duration
}

// EventOption configures Server-Sent Events behavior.
type EventOption func(*sseConfig)

// WithEventName sets the event name for SSE events.
func WithEventName(name string) EventOption {
	return func(s *sseConfig) {
		s.eventName = name
	}
}

// WithKeepAlive sets the keep-alive interval for SSE connections.
// A zero or negative interval disables keep-alive comments.
func WithKeepAlive(interval time.Duration) EventOption {
	return func(s *sseConfig) {
		s.keepAlive = interval
	}
}

// SSE creates a Server-Sent Events response from a channel of data.
// Strings and byte slices go out as-is; anything else is JSON-encoded.
// Streaming stops when the channel closes or the request context is
// cancelled.
func SSE(events <-chan any, opts ...EventOption) handler.Response {
	cfg := &sseConfig{keepAlive: DefaultSSEKeepAlive}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, req *http.Request) error {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return nil
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		var keepAliveChan <-chan time.Time
		if cfg.keepAlive > 0 {
			ticker := time.NewTicker(cfg.keepAlive)
			defer ticker.Stop()
			keepAliveChan = ticker.C
		}

		for {
			select {
			case <-req.Context().Done():
				return nil

			case <-keepAliveChan:
				if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
					return nil
				}
				flusher.Flush()

			case data, open := <-events:
				if !open {
					return nil
				}
				if err := writeSSEEvent(w, data, cfg.eventName); err != nil {
					continue
				}
				flusher.Flush()
			}
		}
	}
}

func writeSSEEvent(w io.Writer, data any, eventName string) error {
	if eventName != "" {
		if _, err := fmt.Fprintf(w, "event: %s\n", eventName); err != nil {
			return err
		}
	}

	var payload string
	switch v := data.(type) {
	case string:
		payload = v
	case []byte:
		payload = string(v)
	default:
		encoded, err := json.Marshal(data)
		if err != nil {
			return err
		}
		payload = string(encoded)
	}

	_, err := fmt.Fprintf(w, "data: %s\n\n", payload)
	return err
}
