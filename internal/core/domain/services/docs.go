// Package services contains stateless domain services that coordinate
// behavior across aggregates.
//
// OrderProgression encodes the next-step rule of the order status state
// machine so the scheduler only has to decide when to advance, never where
// to advance to.
package services
