// Package services holds stateless domain services: the progress table,
// the delivery tracking projector, and the role projection layer. All of
// them are pure functions over aggregates; none of them mutate state or
// touch storage.
package services
