package port

import (
	"context"
	"errors"
)

// BackendFetcher executes one GET against the rental API and returns the decoded
// JSON body as a loose value. Implementations apply their own bounded timeout.
type BackendFetcher interface {
	Get(ctx context.Context, path string, query map[string]string) (any, error)
}

// ErrNotFound signals a 404 from the backend, or a response that carried no
// usable entity for a detail page.
var ErrNotFound = errors.New("backend resource not found")
