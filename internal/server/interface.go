package server

import (
	"context"
	"net/http"
)

// Server is the local browser form.
type Server interface {
	Handler() http.Handler
	// Run serves until ctx is done, then shuts down gracefully.
	Run(ctx context.Context) error
}
