package response

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/dmitrymomot/dispatch/handler"
)

// Stream creates a chunked streaming response that gives the writer
// function direct access to the response body. The consumer of the
// stream drains it at its own pace; flush inside the writer for
// real-time delivery, the final flush happens automatically.
func Stream(writer func(w io.Writer) error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return nil
		}

		w.Header().Set("Transfer-Encoding", "chunked")
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(http.StatusOK)

		if err := writer(w); err != nil {
			// Headers are already out; the error goes to the dispatcher.
			return err
		}

		flusher.Flush()
		return nil
	}
}

// streamJSONConfig holds configuration for streaming JSON responses.
type streamJSONConfig struct {
	onError func(context.Context, error)
}

// StreamOption configures streaming behavior.
type StreamOption func(*streamJSONConfig)

// WithStreamErrorHandler sets an error handler for streaming errors.
func WithStreamErrorHandler(handler func(context.Context, error)) StreamOption {
	return func(s *streamJSONConfig) {
		s.onError = handler
	}
}

// StreamJSON creates a newline-delimited JSON streaming response. Each
// item from the channel is encoded as one line. Streaming stops when
// the channel closes or the request context is cancelled.
func StreamJSON(items <-chan any, opts ...StreamOption) handler.Response {
	cfg := &streamJSONConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) error {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return nil
		}

		w.Header().Set("Content-Type", "application/x-ndjson")
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(http.StatusOK)

		enc := json.NewEncoder(w)
		for {
			select {
			case <-r.Context().Done():
				return nil
			case item, open := <-items:
				if !open {
					return nil
				}
				if err := enc.Encode(item); err != nil {
					if cfg.onError != nil {
						cfg.onError(r.Context(), err)
					}
					return nil
				}
				flusher.Flush()
			}
		}
	}
}
