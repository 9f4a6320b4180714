// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"agrimarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TrackingRepoFactory provides access to the tracking repository within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// ProductRepoFactory provides access to the product catalog within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderTrackingUoW manages transactions spanning an order and its
	// tracking record. Used by lifecycle commands that both move the order
	// and write the delivery history.
	OrderTrackingUoW interface {
		TxManager
		OrderRepoFactory
		TrackingRepoFactory
	}

	// OrderTrackingUoWFactory creates new order+tracking unit of work instances.
	OrderTrackingUoWFactory interface {
		Create() OrderTrackingUoW
	}

	// CheckoutUoW manages transactions for checkout: it reads the product
	// catalog and writes the new order atomically.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)
