// Package order contains the Order aggregate root and its value objects:
// lifecycle status, line items, delivery address, payment details, and the
// pricing policy that recomputes all totals server-side.
//
// The aggregate is the single source of truth for the order lifecycle.
// Every mutation goes through a validated method; illegal transitions and
// unauthorized actors are rejected before any state changes.
package order
