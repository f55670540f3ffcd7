// Package delivery defines the contract for inbound transports.
package delivery

import "context"

// Delivery is implemented by every serving surface of the application.
// Serve blocks until the underlying listener stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
