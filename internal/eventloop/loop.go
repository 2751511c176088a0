// Package eventloop serialises every mutation of a game session. Producers on
// any goroutine Post closures; Run executes them one at a time, in order.
package eventloop

import (
	"context"
	"errors"
	"sync"
)

var ErrLoopStopped = errors.New("event loop stopped")

// Loop is an unbounded FIFO of closures. Posting never blocks, so code running
// on the loop may post follow-up events to itself.
type Loop struct {
	mu      sync.Mutex
	pending []func()
	stopped bool

	wake chan struct{}
	done chan struct{}
}

func New() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Post enqueues fn. It reports false once the loop has stopped.
func (that *Loop) Post(fn func()) bool {
	that.mu.Lock()
	if that.stopped {
		that.mu.Unlock()
		return false
	}
	that.pending = append(that.pending, fn)
	that.mu.Unlock()

	select {
	case that.wake <- struct{}{}:
	default:
	}

	return true
}

// Call runs fn on the loop and waits for its result. It must not be used from
// the loop goroutine itself.
func (that *Loop) Call(ctx context.Context, fn func() error) error {
	result := make(chan error, 1)

	if !that.Post(func() { result <- fn() }) {
		return ErrLoopStopped
	}

	select {
	case err := <-result:
		return err
	case <-that.done:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes events until ctx is cancelled. Events still queued at that
// point are dropped.
func (that *Loop) Run(ctx context.Context) error {
	defer func() {
		that.mu.Lock()
		that.stopped = true
		that.pending = nil
		that.mu.Unlock()

		close(that.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-that.wake:
		}

		for {
			fn, ok := that.next()
			if !ok {
				break
			}

			fn()

			if ctx.Err() != nil {
				return ctx.Err()
			}
		}
	}
}

// Done is closed when Run returns.
func (that *Loop) Done() <-chan struct{} {
	return that.done
}

func (that *Loop) next() (func(), bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.pending) == 0 {
		return nil, false
	}

	fn := that.pending[0]
	that.pending[0] = nil
	that.pending = that.pending[1:]

	return fn, true
}
