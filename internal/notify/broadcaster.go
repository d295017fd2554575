// Package notify carries the process-wide "data changed" signal between the
// store and anything displaying store state.
//
// The signal is deliberately untyped: subscribers are expected to re-fetch
// the full record set rather than patch from a delta. The record set is
// small and local, so always reflecting store truth wins over efficiency.
package notify

import "sync"

// Broadcaster is a synchronous fan-out channel for change signals.
//
// It is constructed by the composition root and injected wherever needed;
// there is no package-level instance. Tests construct an isolated
// Broadcaster per case.
//
// Thread-safety: all methods are safe for concurrent use. Handlers run
// outside the internal lock, so a handler may subscribe or unsubscribe
// during a broadcast.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   []subscriber
}

type subscriber struct {
	id      int
	handler func()
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe registers a handler and returns its unsubscribe function.
//
// Handlers receive no payload; each one re-fetches whatever state it needs.
// Broadcasts emitted before Subscribe returns are not replayed. Calling the
// returned function more than once is harmless.
func (b *Broadcaster) Subscribe(handler func()) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscriber{id: id, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers one change signal to every current subscriber,
// synchronously, in subscription order.
func (b *Broadcaster) Publish() {
	b.mu.Lock()
	snapshot := make([]subscriber, len(b.subs))
	copy(snapshot, b.subs)
	b.mu.Unlock()

	for _, s := range snapshot {
		s.handler()
	}
}

// SubscriberCount reports how many handlers are currently registered.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
