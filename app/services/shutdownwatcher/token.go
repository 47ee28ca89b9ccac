package shutdownwatcher

import "sync"

// Token is a cooperative cancellation signal. Work that should stop when
// the host is asked to shut down either polls Fired, selects on Done, or
// registers a callback. A Token fires at most once; it is never reset.
type Token struct {
	mu        sync.Mutex
	fired     bool
	done      chan struct{}
	callbacks map[uint64]func()
	nextID    uint64
}

func newToken() *Token {
	return &Token{
		done:      make(chan struct{}),
		callbacks: make(map[uint64]func()),
	}
}

var never = newToken()

// Never returns the shared token that can never fire. Disabled watchers
// hand it out so consumers do not need a nil check.
func Never() *Token {
	return never
}

// Fired reports whether the token has fired. Safe from any goroutine at
// any time, including after the owning watcher is closed.
func (t *Token) Fired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fired
}

// Done returns a channel that is closed when the token fires. The Never
// token's channel stays open forever.
func (t *Token) Done() <-chan struct{} {
	return t.done
}

// Register adds fn to be invoked when the token fires and returns a
// deregistration func. If the token already fired, fn runs immediately on
// the calling goroutine. Each registered fn runs at most once.
func (t *Token) Register(fn func()) func() {
	t.mu.Lock()
	if t.fired {
		t.mu.Unlock()
		fn()
		return func() {}
	}
	id := t.nextID
	t.nextID++
	t.callbacks[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.callbacks, id)
		t.mu.Unlock()
	}
}

// fire transitions the token to its terminal state. Only the first call
// has any effect; callbacks run outside the lock so they may call back
// into the token.
func (t *Token) fire() {
	t.mu.Lock()
	if t.fired {
		t.mu.Unlock()
		return
	}
	t.fired = true
	close(t.done)
	callbacks := make([]func(), 0, len(t.callbacks))
	for _, fn := range t.callbacks {
		callbacks = append(callbacks, fn)
	}
	t.callbacks = nil
	t.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}
