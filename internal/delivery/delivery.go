// Package delivery defines the contract every server process entry
// point implements, letting main collect them behind one fx group.
package delivery

import "context"

// Delivery is a long-running server. Serve blocks until the server
// stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
