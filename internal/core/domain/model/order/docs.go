// Package order implements the order aggregate and its status state
// machine.
//
// An Order binds an immutable pizza to delivery and payment metadata and an
// evolving status. The final price is computed once at construction from
// the pizza price and the discount active at that moment; it is never
// recomputed. The status follows a fixed progression after payment:
//
//	Paid -> Preparing -> ReadyForPickup              (pickup)
//	Paid -> Preparing -> OutForDelivery -> Delivered (home delivery)
//
// Transitions are validated by the Status value object and serialized by
// the aggregate, so background timelines cannot skip or reorder states.
package order
