package tracking_test

import (
	"testing"
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/tracking"
	"agrimarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracking(t *testing.T, now time.Time) *tracking.Tracking {
	t.Helper()
	tr, err := tracking.NewTracking(kernel.NewUUID(), now)
	require.NoError(t, err)
	return tr
}

func TestNewTracking(t *testing.T) {
	now := time.Now()

	t.Run("creates an empty unfrozen record", func(t *testing.T) {
		tr := newTestTracking(t, now)

		assert.NoError(t, tr.Validate())
		assert.Empty(t, tr.Events())
		assert.Empty(t, tr.Location())
		assert.Nil(t, tr.Coordinates())
		assert.Nil(t, tr.EstimatedDelivery())
		assert.False(t, tr.IsFrozen())
	})

	t.Run("rejects empty order id", func(t *testing.T) {
		_, err := tracking.NewTracking(kernel.UUID{}, now)
		assert.Error(t, err)
	})

	t.Run("rejects zero time", func(t *testing.T) {
		_, err := tracking.NewTracking(kernel.NewUUID(), time.Time{})
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewEvent(t *testing.T) {
	now := time.Now()

	t.Run("requires a message", func(t *testing.T) {
		_, err := tracking.NewEvent("", "Hub A", now)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires a timestamp", func(t *testing.T) {
		_, err := tracking.NewEvent("picked up", "Hub A", time.Time{})
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("location is optional", func(t *testing.T) {
		e, err := tracking.NewEvent("picked up", "", now)
		require.NoError(t, err)
		assert.NoError(t, e.Validate())
	})
}

func TestTracking_AppendEvent(t *testing.T) {
	now := time.Now()

	t.Run("appends in order and adopts the event location", func(t *testing.T) {
		tr := newTestTracking(t, now)

		first, err := tracking.NewEvent("order confirmed", "", now)
		require.NoError(t, err)
		second, err := tracking.NewEvent("left the warehouse", "Hub A", now.Add(time.Hour))
		require.NoError(t, err)

		require.NoError(t, tr.AppendEvent(first, now))
		require.NoError(t, tr.AppendEvent(second, now.Add(time.Hour)))

		events := tr.Events()
		require.Len(t, events, 2)
		assert.Equal(t, "order confirmed", events[0].Message())
		assert.Equal(t, "left the warehouse", events[1].Message())
		assert.Equal(t, "Hub A", tr.Location())
	})

	t.Run("event without location keeps the current one", func(t *testing.T) {
		tr := newTestTracking(t, now)

		located, err := tracking.NewEvent("left the warehouse", "Hub A", now)
		require.NoError(t, err)
		unlocated, err := tracking.NewEvent("driver delayed", "", now.Add(time.Hour))
		require.NoError(t, err)

		require.NoError(t, tr.AppendEvent(located, now))
		require.NoError(t, tr.AppendEvent(unlocated, now.Add(time.Hour)))

		assert.Equal(t, "Hub A", tr.Location())
	})

	t.Run("rejects a zero-value event", func(t *testing.T) {
		tr := newTestTracking(t, now)
		assert.ErrorIs(t, tr.AppendEvent(tracking.Event{}, now), errs.ErrValueIsRequired)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		tr := newTestTracking(t, now)
		e, err := tracking.NewEvent("order confirmed", "", now)
		require.NoError(t, err)
		require.NoError(t, tr.AppendEvent(e, now))

		got := tr.Events()
		got[0] = tracking.Event{}
		assert.Equal(t, "order confirmed", tr.Events()[0].Message())
	})
}

func TestTracking_Freeze(t *testing.T) {
	now := time.Now()

	t.Run("frozen record rejects all writes", func(t *testing.T) {
		tr := newTestTracking(t, now)
		tr.Freeze(now)

		e, err := tracking.NewEvent("late update", "", now)
		require.NoError(t, err)

		assert.ErrorIs(t, tr.AppendEvent(e, now), errs.ErrPreconditionFailed)
		assert.ErrorIs(t, tr.SetEstimatedDelivery(now.Add(time.Hour), now), errs.ErrPreconditionFailed)

		coords, err := kernel.NewLocation(12.97, 77.59)
		require.NoError(t, err)
		assert.ErrorIs(t, tr.UpdatePosition(coords, now), errs.ErrPreconditionFailed)
	})

	t.Run("freezing twice is a no-op", func(t *testing.T) {
		tr := newTestTracking(t, now)
		tr.Freeze(now)
		tr.Freeze(now.Add(time.Hour))
		assert.True(t, tr.IsFrozen())
		assert.Equal(t, now, tr.UpdatedAt())
	})
}

func TestTracking_TimeRemaining(t *testing.T) {
	now := time.Now()

	t.Run("zero without an estimate", func(t *testing.T) {
		tr := newTestTracking(t, now)
		assert.Zero(t, tr.TimeRemaining(now))
	})

	t.Run("clamps past estimates at zero", func(t *testing.T) {
		tr := newTestTracking(t, now)
		require.NoError(t, tr.SetEstimatedDelivery(now.Add(-time.Hour), now))
		assert.Zero(t, tr.TimeRemaining(now))
	})

	t.Run("returns the remaining duration", func(t *testing.T) {
		tr := newTestTracking(t, now)
		require.NoError(t, tr.SetEstimatedDelivery(now.Add(90*time.Minute), now))
		assert.Equal(t, 90*time.Minute, tr.TimeRemaining(now))
	})

	t.Run("zero once frozen", func(t *testing.T) {
		tr := newTestTracking(t, now)
		require.NoError(t, tr.SetEstimatedDelivery(now.Add(time.Hour), now))
		tr.Freeze(now)
		assert.Zero(t, tr.TimeRemaining(now))
	})
}

func TestRestoreTracking(t *testing.T) {
	now := time.Now()

	t.Run("restores a full record", func(t *testing.T) {
		orderID := kernel.NewUUID()
		coords, err := kernel.NewLocation(12.97, 77.59)
		require.NoError(t, err)
		eta := now.Add(2 * time.Hour)
		e, err := tracking.NewEvent("left the warehouse", "Hub A", now)
		require.NoError(t, err)

		tr, err := tracking.RestoreTracking(
			orderID, "Hub A", &coords, &eta, []tracking.Event{e}, false, now)
		require.NoError(t, err)

		assert.True(t, tr.OrderID().IsEqual(orderID))
		assert.Equal(t, "Hub A", tr.Location())
		require.NotNil(t, tr.EstimatedDelivery())
		assert.Equal(t, eta, *tr.EstimatedDelivery())
		assert.Len(t, tr.Events(), 1)
	})

	t.Run("rejects unconstructed events", func(t *testing.T) {
		_, err := tracking.RestoreTracking(
			kernel.NewUUID(), "", nil, nil, []tracking.Event{{}}, false, now)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
