package binder

import (
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxTextSize is the maximum size for plain-text request bodies (1MB).
const DefaultMaxTextSize = 1 << 20

// Text reads the request body as a string, capped at DefaultMaxTextSize.
func Text(r *http.Request) (string, error) {
	limited := io.LimitReader(r.Body, DefaultMaxTextSize+1)
	body, err := io.ReadAll(limited)
	if err != nil {
		return "", fmt.Errorf("failed to read request body: %w", err)
	}
	if len(body) > DefaultMaxTextSize {
		return "", fmt.Errorf("request body too large (max %d bytes)", DefaultMaxTextSize)
	}
	return string(body), nil
}
