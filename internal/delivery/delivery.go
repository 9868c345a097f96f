// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is a transport endpoint (e.g. the HTTP server) whose Serve
// method blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
