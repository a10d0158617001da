// Package observe provides a publish-subscribe value cell. A Value holds the
// latest state of something (a preference, a screen snapshot) and delivers
// it to any number of independent subscribers.
package observe

import (
	"context"
	"sync"
)

// Value is a concurrency-safe cell whose changes can be observed.
//
// Reads (Get) take a shared lock; writes (Set, Update) take an exclusive lock
// and publish the new value to every subscriber before returning.
//
// Subscribers receive a conflated stream: a slow reader skips intermediate
// values and always sees the most recent one next.
type Value[T any] struct {
	mu   sync.RWMutex
	val  T
	subs map[chan T]struct{}
}

// NewValue creates a Value holding val.
func NewValue[T any](val T) *Value[T] {
	return &Value[T]{val: val, subs: make(map[chan T]struct{})}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.val
}

// Set replaces the value and notifies subscribers.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.val = val
	v.publishLocked()
}

// Update applies fn to the value under the write lock and notifies
// subscribers with the result.
func (v *Value[T]) Update(fn func(*T)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fn(&v.val)
	v.publishLocked()
}

// Subscribe returns a channel that immediately yields the current value and
// then every subsequent one. The channel is closed once ctx is done.
func (v *Value[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	v.mu.Lock()
	ch <- v.val
	v.subs[ch] = struct{}{}
	v.mu.Unlock()

	go func() {
		<-ctx.Done()
		v.mu.Lock()
		delete(v.subs, ch)
		close(ch)
		v.mu.Unlock()
	}()

	return ch
}

// Subscribers reports the number of live subscriptions.
func (v *Value[T]) Subscribers() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.subs)
}

// publishLocked replaces any unread value in each subscriber's buffer.
// Only writers holding mu send, so after draining the send cannot block.
func (v *Value[T]) publishLocked() {
	for ch := range v.subs {
		select {
		case <-ch:
		default:
		}
		ch <- v.val
	}
}
