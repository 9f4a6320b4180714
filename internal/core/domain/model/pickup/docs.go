// Package pickup holds the pickup verification session: a three-stage
// gated checklist a delivery partner works through at the warehouse
// before an order may leave for delivery. Gate checks are pure functions
// over the session state, independent of any transport or UI concern.
package pickup
