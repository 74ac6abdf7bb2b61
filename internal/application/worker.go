package application

import "context"

// Worker represents a background process such as the connectivity monitor.
// Implementations must run until the context is canceled.
type Worker interface {
	Start(ctx context.Context)
}
