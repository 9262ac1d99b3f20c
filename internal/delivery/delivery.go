// Package delivery defines the servers that expose the application to the outside world.
package delivery

import "context"

// Delivery is a long-running server started by the application and stopped through its fx lifecycle.
type Delivery interface {
	// Serve blocks until the server stops. A graceful shutdown returns nil.
	Serve(ctx context.Context) error
}
