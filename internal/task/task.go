// Package task decouples scan algorithms from their delivery mechanism:
// work is dispatched to one goroutine and the result crosses back through
// a single-slot mailbox the caller polls without blocking.
package task

import "sync"

// Handle is the caller's side of a submitted task. The result is
// delivered exactly once. There is no cancellation; a caller that no
// longer wants the result simply discards the handle.
type Handle[T any] struct {
	mu     sync.Mutex
	done   bool
	result T
	err    error
	ch     chan outcome[T]
}

type outcome[T any] struct {
	result T
	err    error
}

// Submit runs fn on its own goroutine and returns a handle to poll.
func Submit[T any](fn func() (T, error)) *Handle[T] {
	h := &Handle[T]{ch: make(chan outcome[T], 1)}

	go func() {
		result, err := fn()
		h.ch <- outcome[T]{result: result, err: err}
	}()

	return h
}

// Poll returns the task's result if it has finished. The boolean reports
// completion; Poll never blocks.
func (h *Handle[T]) Poll() (T, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.done {
		return h.result, true, h.err
	}

	select {
	case out := <-h.ch:
		h.done = true
		h.result = out.result
		h.err = out.err
		return h.result, true, h.err
	default:
		var zero T
		return zero, false, nil
	}
}

// Wait blocks until the task finishes and returns its result.
func (h *Handle[T]) Wait() (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.done {
		out := <-h.ch
		h.done = true
		h.result = out.result
		h.err = out.err
	}

	return h.result, h.err
}
