package engine

import (
	"context"
	"time"
)

// Run ticks the engine in a loop until ctx is canceled. A short yield
// keeps a mock or otherwise very fast sink from pinning a CPU core.
func (e *Engine) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		e.Tick()
		time.Sleep(time.Microsecond)
	}
}
