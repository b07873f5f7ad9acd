// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a long-running inbound adapter (HTTP server, scheduler).
type Delivery interface {
	// Serve runs the delivery until it fails or is shut down.
	Serve(ctx context.Context) error
}
