// Package inventory computes derived views over the in-memory record set.
//
// Everything here except the Repricer is a pure, synchronous function:
// subscribers re-fetch the full record set on every change signal and
// recompute these views from scratch. Aggregates are never persisted.
package inventory
