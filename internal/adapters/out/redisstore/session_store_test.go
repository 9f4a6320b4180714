package redisstore

import (
	"encoding/json"
	"testing"
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/pickup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSerialization_PreservesWorkflowState(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	itemA, itemB := kernel.NewUUID(), kernel.NewUUID()

	session, err := pickup.NewSession(
		kernel.NewUUID(), kernel.NewUUID(),
		[]kernel.UUID{itemA, itemB},
		now,
	)
	require.NoError(t, err)

	require.NoError(t, session.CheckItem(pickup.ItemWarehouseLocationConfirmed, true, now))
	require.NoError(t, session.CheckItem(pickup.ItemManagerCredentialsChecked, true, now))
	require.NoError(t, session.CheckItem(pickup.ItemOrderIdentityConfirmed, true, now))

	_, err = session.AdvanceStage(now)
	require.NoError(t, err)

	require.NoError(t, session.VerifyLineItem(itemA, true, "slightly bruised", now))
	session.CapturePhoto(now)

	payload, err := json.Marshal(fromDomain(session))
	require.NoError(t, err)

	restored, err := unmarshalSession(payload)
	require.NoError(t, err)

	assert.Equal(t, session.ID(), restored.ID())
	assert.Equal(t, session.OrderID(), restored.OrderID())
	assert.Equal(t, session.PartnerID(), restored.PartnerID())
	assert.Equal(t, pickup.StageVerification, restored.Stage())
	assert.Equal(t, session.LineItemIDs(), restored.LineItemIDs())
	assert.True(t, restored.IsChecked(pickup.ItemOrderIdentityConfirmed))

	verification, ok := restored.Verification(itemA)
	require.True(t, ok)
	assert.True(t, verification.Verified)
	assert.Equal(t, "slightly bruised", verification.ConditionNote)

	_, ok = restored.Verification(itemB)
	assert.False(t, ok)

	assert.Len(t, restored.PhotoRefs(), 1)
	assert.False(t, restored.IsSignatureCaptured())
	assert.Equal(t, session.CompletionPercent(), restored.CompletionPercent())
	assert.True(t, session.LastActivity().Equal(restored.LastActivity()))
}

func TestSessionSerialization_RejectsCorruptStage(t *testing.T) {
	dto := sessionDTO{
		ID:          kernel.NewUUID().String(),
		OrderID:     kernel.NewUUID().String(),
		PartnerID:   kernel.NewUUID().String(),
		Stage:       "loading_dock",
		LineItemIDs: []string{kernel.NewUUID().String()},
		StartedAt:   time.Now().UTC(),
		LastActive:  time.Now().UTC(),
	}

	_, err := toDomain(dto)
	assert.Error(t, err)
}
