// Package delivery defines the contract for transport-layer servers.
package delivery

import "context"

// Delivery is implemented by every transport that serves the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
