// Package delivery defines the contract every delivery mechanism of the
// application fulfills.
package delivery

import "context"

// Delivery is a long-running entry point such as an HTTP server. Serve
// blocks until the delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
