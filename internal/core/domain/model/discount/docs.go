// Package discount implements the discount policy and the admin-owned
// discount registry.
//
// Percent is a validated percentage value object whose Apply method
// implements the floor-division discount rule. Registry is the process-wide
// shared state holding named discounts with last-write-wins semantics on
// the single active percentage.
package discount
