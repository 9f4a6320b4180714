package ports

import (
	"context"
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/pickup"
)

// SessionStore holds open pickup verification sessions. Sessions are
// transient: they never outlive the workflow, and an idle session may be
// purged at any time without touching the order.
type SessionStore interface {
	// Save writes a session, overwriting any previous state under the
	// same id.
	Save(ctx context.Context, session *pickup.Session) error

	// Get retrieves a session by id. Returns ObjectNotFoundError when no
	// open session exists (never opened, completed, or purged).
	Get(ctx context.Context, id kernel.UUID) (*pickup.Session, error)

	// GetByOrder retrieves the open session for an order, if any.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*pickup.Session, error)

	// Delete discards a session. Deleting an absent session is not an
	// error.
	Delete(ctx context.Context, id kernel.UUID) error

	// PurgeIdle discards every session whose last activity is older than
	// the cutoff and returns how many were removed.
	PurgeIdle(ctx context.Context, cutoff time.Time) (int, error)
}
