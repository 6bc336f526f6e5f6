// Package lock serialises read-validate-write sequences on a single debt.
package lock

import (
	"context"
	"errors"
	"time"

	"github.com/chris/debt-ledger/pkg/ledger"
)

// DefaultWait is how long Acquire waits for a held key before giving up.
const DefaultWait = 2 * time.Second

// Locker hands out exclusive, per-key locks.
type Locker interface {
	// Acquire blocks until key is free, the wait budget runs out or ctx is done.
	// A budget timeout or an expired ctx deadline is reported as ledger.ErrConcurrency. The returned release is safe to call more than once.
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// DebtKey is the lock key guarding a debt.
func DebtKey(debtID string) string {
	return "debt:" + debtID
}

// waitError reports why waiting for key stopped early. A request deadline that expires in the queue
// is a retryable conflict; a cancelled request is returned as is.
func waitError(ctx context.Context, key string) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ledger.ConcurrencyError("request deadline passed waiting for %s, retry", key)
	}
	return ctx.Err()
}
