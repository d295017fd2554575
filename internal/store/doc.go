// Package store provides durable storage for medicine records.
//
// The store wraps a single SQLite table keyed by record ID. Every call is
// its own independent transaction: there is no cross-call atomicity, and
// concurrent writes to the same key resolve at the storage layer's natural
// granularity (last committed write wins). The design accepts this because
// the system has one active user on one device.
//
// Every mutating call publishes one untyped change signal on the injected
// notify.Broadcaster after its transaction commits. Reads never publish.
package store
