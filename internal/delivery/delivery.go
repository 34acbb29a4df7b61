// Package delivery defines the long-running entry points started by main.
package delivery

import "context"

// Delivery is a server that blocks in Serve until it is shut down by its fx lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
