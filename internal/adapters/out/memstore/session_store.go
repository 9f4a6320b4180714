// Package memstore provides an in-memory SessionStore for pickup
// verification sessions. Sessions are transient workflow state, so a
// process-local store is the default; deployments that need sessions to
// survive restarts use the redis store instead.
package memstore

import (
	"context"
	"sync"
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/pickup"
	"agrimarket/internal/pkg/errs"
)

// SessionStore keeps pickup sessions in process memory, indexed by session
// id and by order id. Safe for concurrent use.
type SessionStore struct {
	mu      sync.RWMutex
	byID    map[kernel.UUID]*pickup.Session
	byOrder map[kernel.UUID]kernel.UUID
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		byID:    make(map[kernel.UUID]*pickup.Session),
		byOrder: make(map[kernel.UUID]kernel.UUID),
	}
}

// Save writes a session, overwriting any previous state under the same id.
// A defensive copy is stored so later mutations of the caller's session do
// not leak in without an explicit Save.
func (s *SessionStore) Save(_ context.Context, session *pickup.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	clone, err := cloneSession(session)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[clone.ID()] = clone
	s.byOrder[clone.OrderID()] = clone.ID()
	return nil
}

// Get retrieves a session by id.
func (s *SessionStore) Get(_ context.Context, id kernel.UUID) (*pickup.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	session, ok := s.byID[id]
	s.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("pickup session", id.String())
	}
	return cloneSession(session)
}

// GetByOrder retrieves the open session for an order, if any.
func (s *SessionStore) GetByOrder(_ context.Context, orderID kernel.UUID) (*pickup.Session, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	id, ok := s.byOrder[orderID]
	var session *pickup.Session
	if ok {
		session = s.byID[id]
	}
	s.mu.RUnlock()

	if session == nil {
		return nil, errs.NewObjectNotFoundError("pickup session for order", orderID.String())
	}
	return cloneSession(session)
}

// Delete discards a session. Deleting an absent session is not an error.
func (s *SessionStore) Delete(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.byID[id]
	if !ok {
		return nil
	}

	delete(s.byID, id)
	if current, ok := s.byOrder[session.OrderID()]; ok && current == id {
		delete(s.byOrder, session.OrderID())
	}
	return nil
}

// PurgeIdle discards every session whose last activity is older than the
// cutoff and returns how many were removed.
func (s *SessionStore) PurgeIdle(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for id, session := range s.byID {
		if session.LastActivity().Before(cutoff) {
			delete(s.byID, id)
			if current, ok := s.byOrder[session.OrderID()]; ok && current == id {
				delete(s.byOrder, session.OrderID())
			}
			purged++
		}
	}
	return purged, nil
}

func cloneSession(session *pickup.Session) (*pickup.Session, error) {
	return pickup.RestoreSession(
		session.ID(),
		session.OrderID(),
		session.PartnerID(),
		session.Stage(),
		session.LineItemIDs(),
		session.CheckedItems(),
		session.Verifications(),
		session.PhotoRefs(),
		session.IsSignatureCaptured(),
		session.StartedAt(),
		session.LastActivity(),
	)
}
