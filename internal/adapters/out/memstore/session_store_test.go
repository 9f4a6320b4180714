package memstore_test

import (
	"context"
	"testing"
	"time"

	"agrimarket/internal/adapters/out/memstore"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/pickup"
	"agrimarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, now time.Time) *pickup.Session {
	t.Helper()
	session, err := pickup.NewSession(
		kernel.NewUUID(), kernel.NewUUID(),
		[]kernel.UUID{kernel.NewUUID(), kernel.NewUUID()},
		now,
	)
	require.NoError(t, err)
	return session
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewSessionStore()
	now := time.Now().UTC()

	session := newTestSession(t, now)
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, session.ID())
	require.NoError(t, err)
	assert.Equal(t, session.ID(), got.ID())
	assert.Equal(t, session.OrderID(), got.OrderID())
	assert.Equal(t, pickup.StageLocation, got.Stage())

	byOrder, err := store.GetByOrder(ctx, session.OrderID())
	require.NoError(t, err)
	assert.Equal(t, session.ID(), byOrder.ID())
}

func TestSessionStore_GetReturnsACopy(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewSessionStore()
	now := time.Now().UTC()

	session := newTestSession(t, now)
	require.NoError(t, store.Save(ctx, session))

	first, err := store.Get(ctx, session.ID())
	require.NoError(t, err)
	require.NoError(t, first.CheckItem(pickup.ItemWarehouseLocationConfirmed, true, now))

	// Mutation without Save must not be visible.
	second, err := store.Get(ctx, session.ID())
	require.NoError(t, err)
	assert.False(t, second.IsChecked(pickup.ItemWarehouseLocationConfirmed))

	require.NoError(t, store.Save(ctx, first))
	third, err := store.Get(ctx, session.ID())
	require.NoError(t, err)
	assert.True(t, third.IsChecked(pickup.ItemWarehouseLocationConfirmed))
}

func TestSessionStore_GetMissing(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewSessionStore()

	_, err := store.Get(ctx, kernel.NewUUID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = store.GetByOrder(ctx, kernel.NewUUID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewSessionStore()
	now := time.Now().UTC()

	session := newTestSession(t, now)
	require.NoError(t, store.Save(ctx, session))
	require.NoError(t, store.Delete(ctx, session.ID()))

	_, err := store.Get(ctx, session.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = store.GetByOrder(ctx, session.OrderID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	assert.NoError(t, store.Delete(ctx, session.ID()), "deleting twice is not an error")
}

func TestSessionStore_PurgeIdle(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewSessionStore()
	now := time.Now().UTC()

	stale := newTestSession(t, now.Add(-time.Hour))
	fresh := newTestSession(t, now)
	require.NoError(t, store.Save(ctx, stale))
	require.NoError(t, store.Save(ctx, fresh))

	purged, err := store.PurgeIdle(ctx, now.Add(-30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	_, err = store.Get(ctx, stale.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = store.Get(ctx, fresh.ID())
	assert.NoError(t, err)
}
