// Package retry provides a small context-aware periodic-backoff helper
// for the listener's accept loop. Adapted from the teacher's pattern of
// wrapping a ticker in a context-cancelable goroutine (see
// async.RunEvery in prysmaticlabs/prysm), generalized here to a single
// bounded sleep rather than a recurring ticker, since the accept loop
// already supplies its own retry loop.
package retry

import (
	"context"
	"time"
)

// Sleep blocks for d or until ctx is done, whichever comes first. It
// reports whether ctx ended the wait early.
func Sleep(ctx context.Context, d time.Duration) (cancelled bool) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return false
	case <-ctx.Done():
		return true
	}
}
