// ABOUTME: Generic lazily-computed, time-boxed value cell with serialized refresh
// ABOUTME: Backs the session credential and the short-lived edit token

package expiring

import (
	"context"
	"sync"
	"time"
)

// ComputeFunc produces a fresh value, typically via a network call.
type ComputeFunc[T any] func(ctx context.Context) (T, error)

// Value holds a lazily-computed value together with the instant it was
// produced. A read recomputes iff the value is absent or older than the
// validity window. Readers serialize behind the cell's lock, so at most one
// recomputation is in flight per expiry; a ttl of zero or less means the
// value never expires client-side and is only replaced after Reset.
type Value[T any] struct {
	mu      sync.Mutex
	compute ComputeFunc[T]
	ttl     time.Duration

	val     T
	fetched time.Time
	has     bool
}

// New creates a cell that computes its value on first read.
func New[T any](ttl time.Duration, compute ComputeFunc[T]) *Value[T] {
	return &Value[T]{
		compute: compute,
		ttl:     ttl,
	}
}

// Get returns the cached value, recomputing it first if absent or expired.
// A failed recomputation leaves the cell empty and is never cached.
func (v *Value[T]) Get(ctx context.Context) (T, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.has && !v.expired() {
		return v.val, nil
	}

	val, err := v.compute(ctx)
	if err != nil {
		var zero T
		v.val = zero
		v.has = false
		return zero, err
	}

	v.val = val
	v.fetched = time.Now()
	v.has = true
	return val, nil
}

// Peek returns the current value without triggering recomputation.
// The second result reports whether a valid value is present.
func (v *Value[T]) Peek() (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.has || v.expired() {
		var zero T
		return zero, false
	}
	return v.val, true
}

// Reset empties the cell so the next read recomputes.
func (v *Value[T]) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	var zero T
	v.val = zero
	v.has = false
	v.fetched = time.Time{}
}

// expired reports whether the validity window has elapsed.
// Callers must hold v.mu.
func (v *Value[T]) expired() bool {
	if v.ttl <= 0 {
		return false
	}
	return time.Since(v.fetched) >= v.ttl
}
