package lock

import (
	"context"
	"sync"
	"time"

	"github.com/chris/debt-ledger/pkg/ledger"
)

type keyLock struct {
	held chan struct{}
	refs int
}

// LocalLocker is an in-process Locker. It only protects callers sharing the same instance.
type LocalLocker struct {
	mu   sync.Mutex
	keys map[string]*keyLock
	wait time.Duration
}

// NewLocalLocker returns a LocalLocker that waits at most wait for a held key.
func NewLocalLocker(wait time.Duration) *LocalLocker {
	if wait <= 0 {
		wait = DefaultWait
	}
	return &LocalLocker{keys: make(map[string]*keyLock), wait: wait}
}

// Acquire implements Locker.
func (l *LocalLocker) Acquire(ctx context.Context, key string) (func(), error) {
	kl := l.ref(key)

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case kl.held <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-kl.held
				l.unref(key, kl)
			})
		}, nil
	case <-timer.C:
		l.unref(key, kl)
		return nil, ledger.ConcurrencyError("timed out waiting for %s, retry", key)
	case <-ctx.Done():
		l.unref(key, kl)
		return nil, waitError(ctx, key)
	}
}

func (l *LocalLocker) ref(key string) *keyLock {
	l.mu.Lock()
	defer l.mu.Unlock()
	kl, ok := l.keys[key]
	if !ok {
		kl = &keyLock{held: make(chan struct{}, 1)}
		l.keys[key] = kl
	}
	kl.refs++
	return kl
}

func (l *LocalLocker) unref(key string, kl *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kl.refs--
	if kl.refs == 0 {
		delete(l.keys, key)
	}
}
