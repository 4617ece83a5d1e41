// Package scheduler runs the timed status progressions of orders on
// background timelines.
//
// Every order progresses through a chain of one-shot delayed steps; the
// next step is armed only after the previous one completed, so a single
// order's transitions are strictly sequential while independent orders
// advance concurrently. The timer source is injectable, letting tests
// simulate the passage of time.
package scheduler
