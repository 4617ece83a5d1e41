// Package memory provides in-memory implementations of the outbound
// storage ports. All state is held for the process lifetime only; the
// system deliberately has no persistence across restarts.
package memory
