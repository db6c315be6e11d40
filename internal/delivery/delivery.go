// Package delivery contains the transports that expose the use cases.
package delivery

import "context"

// Delivery is a transport started by the application after fx has wired it.
type Delivery interface {
	// Serve blocks until the transport stops.
	Serve(ctx context.Context) error
}
