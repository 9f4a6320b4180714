// Package kernel contains the shared value objects of the fulfillment
// domain: identifiers (UUID), monetary amounts (Money), and geographic
// coordinates (Location).
//
// All kernel types are immutable value objects. Their zero values are
// invalid and fail Validate; instances must be created through the
// provided constructor functions.
package kernel
