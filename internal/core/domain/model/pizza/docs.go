// Package pizza implements the pizza variant model and pricing policy.
//
// A Pizza is a closed tagged variant: Standard pizzas come from the fixed
// menu catalog and pay a size surcharge, Customized pizzas are assembled
// from a crust, a sauce and a topping at a fixed base cost and never pay
// the surcharge. Price computation is a single pure function dispatching on
// the variant tag.
//
// The package also provides the fluent Builder used by the interactive
// ordering flow and the static menu catalog.
package pizza
