// Package redisstore provides a Redis-backed SessionStore for pickup
// verification sessions. Sessions are stored as JSON under a per-session
// key with an order-id index key; both carry a TTL so abandoned sessions
// expire even if the reaper job never runs.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/pickup"
	"agrimarket/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "pickup:session:"
	orderKeyPrefix   = "pickup:order:"
)

// SessionStore keeps pickup sessions in Redis.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a Redis session store. The TTL bounds how long an
// untouched session survives; every Save refreshes it.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// sessionDTO is the JSON wire form of a pickup session.
type sessionDTO struct {
	ID          string            `json:"id"`
	OrderID     string            `json:"order_id"`
	PartnerID   string            `json:"partner_id"`
	Stage       string            `json:"stage"`
	LineItemIDs []string          `json:"line_item_ids"`
	Checked     map[string]bool   `json:"checked,omitempty"`
	Verified    []verificationDTO `json:"verified,omitempty"`
	PhotoRefs   []string          `json:"photo_refs,omitempty"`
	Signature   bool              `json:"signature"`
	StartedAt   time.Time         `json:"started_at"`
	LastActive  time.Time         `json:"last_active"`
}

type verificationDTO struct {
	LineItemID    string `json:"line_item_id"`
	Verified      bool   `json:"verified"`
	ConditionNote string `json:"condition_note,omitempty"`
}

// Save writes a session and refreshes its TTL.
func (s *SessionStore) Save(ctx context.Context, session *pickup.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(fromDomain(session))
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKeyPrefix+session.ID().String(), payload, s.ttl)
	pipe.Set(ctx, orderKeyPrefix+session.OrderID().String(), session.ID().String(), s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Get retrieves a session by id.
func (s *SessionStore) Get(ctx context.Context, id kernel.UUID) (*pickup.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	payload, err := s.client.Get(ctx, sessionKeyPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.NewObjectNotFoundError("pickup session", id.String())
		}
		return nil, err
	}

	return unmarshalSession(payload)
}

// GetByOrder retrieves the open session for an order, if any.
func (s *SessionStore) GetByOrder(ctx context.Context, orderID kernel.UUID) (*pickup.Session, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	sessionID, err := s.client.Get(ctx, orderKeyPrefix+orderID.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.NewObjectNotFoundError("pickup session for order", orderID.String())
		}
		return nil, err
	}

	payload, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// The session key expired before its index key.
			return nil, errs.NewObjectNotFoundError("pickup session for order", orderID.String())
		}
		return nil, err
	}

	return unmarshalSession(payload)
}

// Delete discards a session and its order index. Deleting an absent
// session is not an error.
func (s *SessionStore) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	payload, err := s.client.Get(ctx, sessionKeyPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}

	var dto sessionDTO
	if err := json.Unmarshal(payload, &dto); err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, sessionKeyPrefix+id.String())
	pipe.Del(ctx, orderKeyPrefix+dto.OrderID)
	_, err = pipe.Exec(ctx)
	return err
}

// PurgeIdle scans for sessions whose last activity is older than the
// cutoff and deletes them. Redis TTLs already bound session lifetime; the
// scan enforces the tighter idle cutoff the reaper job is configured with.
func (s *SessionStore) PurgeIdle(ctx context.Context, cutoff time.Time) (int, error) {
	purged := 0

	iter := s.client.Scan(ctx, 0, sessionKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		payload, err := s.client.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return purged, err
		}

		var dto sessionDTO
		if err := json.Unmarshal(payload, &dto); err != nil {
			return purged, err
		}

		if dto.LastActive.Before(cutoff) {
			pipe := s.client.TxPipeline()
			pipe.Del(ctx, key)
			pipe.Del(ctx, orderKeyPrefix+dto.OrderID)
			if _, err := pipe.Exec(ctx); err != nil {
				return purged, err
			}
			purged++
		}
	}
	if err := iter.Err(); err != nil {
		return purged, err
	}

	return purged, nil
}

func fromDomain(session *pickup.Session) sessionDTO {
	lineItemIDs := make([]string, 0, len(session.LineItemIDs()))
	for _, id := range session.LineItemIDs() {
		lineItemIDs = append(lineItemIDs, id.String())
	}

	verified := make([]verificationDTO, 0)
	for id, v := range session.Verifications() {
		verified = append(verified, verificationDTO{
			LineItemID:    id.String(),
			Verified:      v.Verified,
			ConditionNote: v.ConditionNote,
		})
	}

	return sessionDTO{
		ID:          session.ID().String(),
		OrderID:     session.OrderID().String(),
		PartnerID:   session.PartnerID().String(),
		Stage:       session.Stage().String(),
		LineItemIDs: lineItemIDs,
		Checked:     session.CheckedItems(),
		Verified:    verified,
		PhotoRefs:   session.PhotoRefs(),
		Signature:   session.IsSignatureCaptured(),
		StartedAt:   session.StartedAt(),
		LastActive:  session.LastActivity(),
	}
}

func unmarshalSession(payload []byte) (*pickup.Session, error) {
	var dto sessionDTO
	if err := json.Unmarshal(payload, &dto); err != nil {
		return nil, err
	}
	return toDomain(dto)
}

func toDomain(dto sessionDTO) (*pickup.Session, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	partnerID, err := kernel.UUIDFromString(dto.PartnerID)
	if err != nil {
		return nil, err
	}

	stage, err := pickup.StageFromString(dto.Stage)
	if err != nil {
		return nil, err
	}

	lineItemIDs := make([]kernel.UUID, 0, len(dto.LineItemIDs))
	for _, raw := range dto.LineItemIDs {
		lineItemID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		lineItemIDs = append(lineItemIDs, lineItemID)
	}

	verified := make(map[kernel.UUID]pickup.LineItemVerification, len(dto.Verified))
	for _, v := range dto.Verified {
		lineItemID, idErr := kernel.UUIDFromString(v.LineItemID)
		if idErr != nil {
			return nil, idErr
		}
		verified[lineItemID] = pickup.LineItemVerification{
			Verified:      v.Verified,
			ConditionNote: v.ConditionNote,
		}
	}

	return pickup.RestoreSession(
		id, orderID, partnerID,
		stage,
		lineItemIDs,
		dto.Checked,
		verified,
		dto.PhotoRefs,
		dto.Signature,
		dto.StartedAt,
		dto.LastActive,
	)
}
