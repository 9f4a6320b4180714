// Package tracking holds the delivery tracking aggregate: an append-only
// event history per order with a current location, optional coordinates,
// and a delivery estimate. The record freezes when the order terminates.
package tracking
