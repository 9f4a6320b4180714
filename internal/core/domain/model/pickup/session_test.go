package pickup_test

import (
	"testing"
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/pickup"
	"agrimarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, lineItems int, now time.Time) *pickup.Session {
	t.Helper()

	ids := make([]kernel.UUID, 0, lineItems)
	for range lineItems {
		ids = append(ids, kernel.NewUUID())
	}

	s, err := pickup.NewSession(kernel.NewUUID(), kernel.NewUUID(), ids, now)
	require.NoError(t, err)
	return s
}

func checkStage(t *testing.T, s *pickup.Session, stage pickup.Stage, now time.Time) {
	t.Helper()
	for _, item := range pickup.ChecklistItemsForStage(stage) {
		require.NoError(t, s.CheckItem(item.ID, true, now))
	}
}

func verifyAll(t *testing.T, s *pickup.Session, now time.Time) {
	t.Helper()
	for _, id := range s.LineItemIDs() {
		require.NoError(t, s.VerifyLineItem(id, true, "good condition", now))
	}
}

func TestNewSession(t *testing.T) {
	now := time.Now()

	t.Run("opens at the location stage", func(t *testing.T) {
		s := newTestSession(t, 2, now)

		assert.NoError(t, s.Validate())
		assert.Equal(t, pickup.StageLocation, s.Stage())
		assert.False(t, s.IsSignatureCaptured())
		assert.Empty(t, s.PhotoRefs())
		assert.Equal(t, now, s.LastActivity())
	})

	t.Run("requires line items", func(t *testing.T) {
		_, err := pickup.NewSession(kernel.NewUUID(), kernel.NewUUID(), nil, now)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty partner id", func(t *testing.T) {
		_, err := pickup.NewSession(
			kernel.NewUUID(), kernel.UUID{}, []kernel.UUID{kernel.NewUUID()}, now)
		assert.Error(t, err)
	})
}

func TestSession_CheckItem(t *testing.T) {
	now := time.Now()

	t.Run("toggles idempotently", func(t *testing.T) {
		s := newTestSession(t, 1, now)

		require.NoError(t, s.CheckItem(pickup.ItemWarehouseLocationConfirmed, true, now))
		require.NoError(t, s.CheckItem(pickup.ItemWarehouseLocationConfirmed, true, now))
		assert.True(t, s.IsChecked(pickup.ItemWarehouseLocationConfirmed))

		require.NoError(t, s.CheckItem(pickup.ItemWarehouseLocationConfirmed, false, now))
		assert.False(t, s.IsChecked(pickup.ItemWarehouseLocationConfirmed))
	})

	t.Run("rejects unknown items", func(t *testing.T) {
		s := newTestSession(t, 1, now)
		err := s.CheckItem("no_such_item", true, now)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("checking ahead of the current stage is allowed", func(t *testing.T) {
		s := newTestSession(t, 1, now)
		assert.NoError(t, s.CheckItem(pickup.ItemLoadSecured, true, now))
	})
}

func TestSession_VerifyLineItem(t *testing.T) {
	now := time.Now()

	t.Run("records and overwrites a verdict", func(t *testing.T) {
		s := newTestSession(t, 2, now)
		id := s.LineItemIDs()[0]

		require.NoError(t, s.VerifyLineItem(id, false, "crate dented", now))
		v, ok := s.Verification(id)
		require.True(t, ok)
		assert.False(t, v.Verified)
		assert.Equal(t, "crate dented", v.ConditionNote)

		require.NoError(t, s.VerifyLineItem(id, true, "replacement crate fine", now))
		v, _ = s.Verification(id)
		assert.True(t, v.Verified)
	})

	t.Run("rejects line items not on the order", func(t *testing.T) {
		s := newTestSession(t, 1, now)
		err := s.VerifyLineItem(kernel.NewUUID(), true, "", now)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestSession_CapturePhoto(t *testing.T) {
	now := time.Now()

	s := newTestSession(t, 2, now)
	first := s.CapturePhoto(now)
	second := s.CapturePhoto(now)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	assert.Len(t, s.PhotoRefs(), 2)
}

func TestSession_AdvanceStage(t *testing.T) {
	now := time.Now()

	t.Run("location gate requires all location items", func(t *testing.T) {
		s := newTestSession(t, 1, now)

		_, err := s.AdvanceStage(now)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)

		checkStage(t, s, pickup.StageLocation, now)
		stage, err := s.AdvanceStage(now)
		require.NoError(t, err)
		assert.Equal(t, pickup.StageVerification, stage)
	})

	t.Run("verification gate needs every item verified and one photo each", func(t *testing.T) {
		s := newTestSession(t, 3, now)
		checkStage(t, s, pickup.StageLocation, now)
		_, err := s.AdvanceStage(now)
		require.NoError(t, err)

		checkStage(t, s, pickup.StageVerification, now)
		ids := s.LineItemIDs()
		require.NoError(t, s.VerifyLineItem(ids[0], true, "", now))
		require.NoError(t, s.VerifyLineItem(ids[1], true, "", now))
		s.CapturePhoto(now)
		s.CapturePhoto(now)

		_, err = s.AdvanceStage(now)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)

		require.NoError(t, s.VerifyLineItem(ids[2], true, "", now))
		_, err = s.AdvanceStage(now)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)

		s.CapturePhoto(now)
		stage, err := s.AdvanceStage(now)
		require.NoError(t, err)
		assert.Equal(t, pickup.StageConfirmation, stage)
	})

	t.Run("item marked not verified does not satisfy the gate", func(t *testing.T) {
		s := newTestSession(t, 1, now)
		checkStage(t, s, pickup.StageLocation, now)
		_, err := s.AdvanceStage(now)
		require.NoError(t, err)

		checkStage(t, s, pickup.StageVerification, now)
		require.NoError(t, s.VerifyLineItem(s.LineItemIDs()[0], false, "spoiled", now))
		s.CapturePhoto(now)

		_, err = s.AdvanceStage(now)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})

	t.Run("cannot advance past the final stage", func(t *testing.T) {
		s := completedSession(t, now)
		_, err := s.AdvanceStage(now)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}

func TestSession_RetreatStage(t *testing.T) {
	now := time.Now()

	t.Run("backward navigation keeps recorded state", func(t *testing.T) {
		s := newTestSession(t, 1, now)
		checkStage(t, s, pickup.StageLocation, now)
		_, err := s.AdvanceStage(now)
		require.NoError(t, err)

		stage, err := s.RetreatStage(now)
		require.NoError(t, err)
		assert.Equal(t, pickup.StageLocation, stage)
		assert.True(t, s.IsChecked(pickup.ItemWarehouseLocationConfirmed))
	})

	t.Run("cannot retreat from the first stage", func(t *testing.T) {
		s := newTestSession(t, 1, now)
		_, err := s.RetreatStage(now)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}

func completedSession(t *testing.T, now time.Time) *pickup.Session {
	t.Helper()

	s := newTestSession(t, 2, now)
	checkStage(t, s, pickup.StageLocation, now)
	_, err := s.AdvanceStage(now)
	require.NoError(t, err)

	checkStage(t, s, pickup.StageVerification, now)
	verifyAll(t, s, now)
	s.CapturePhoto(now)
	s.CapturePhoto(now)
	_, err = s.AdvanceStage(now)
	require.NoError(t, err)

	checkStage(t, s, pickup.StageConfirmation, now)
	s.CaptureSignature(now)
	return s
}

func TestSession_CompletionGate(t *testing.T) {
	now := time.Now()

	t.Run("satisfied after signature and full checklist", func(t *testing.T) {
		s := completedSession(t, now)
		assert.NoError(t, s.CompletionGate())
	})

	t.Run("fails before the confirmation stage", func(t *testing.T) {
		s := newTestSession(t, 1, now)
		assert.ErrorIs(t, s.CompletionGate(), errs.ErrPreconditionFailed)
	})

	t.Run("fails without a signature", func(t *testing.T) {
		s := newTestSession(t, 1, now)
		checkStage(t, s, pickup.StageLocation, now)
		_, err := s.AdvanceStage(now)
		require.NoError(t, err)

		checkStage(t, s, pickup.StageVerification, now)
		verifyAll(t, s, now)
		s.CapturePhoto(now)
		_, err = s.AdvanceStage(now)
		require.NoError(t, err)

		checkStage(t, s, pickup.StageConfirmation, now)
		assert.ErrorIs(t, s.CompletionGate(), errs.ErrPreconditionFailed)
	})

	t.Run("fails with an unchecked earlier stage item", func(t *testing.T) {
		s := completedSession(t, now)
		require.NoError(t, s.CheckItem(pickup.ItemBatchExpiryChecked, false, now))
		assert.ErrorIs(t, s.CompletionGate(), errs.ErrPreconditionFailed)
	})
}

func TestSession_CompletionPercent(t *testing.T) {
	now := time.Now()

	t.Run("counts checked items and verified line items", func(t *testing.T) {
		// 7 checklist items + 3 line items = 10 units.
		s := newTestSession(t, 3, now)
		assert.Equal(t, 0, s.CompletionPercent())

		checkStage(t, s, pickup.StageLocation, now)
		assert.Equal(t, 30, s.CompletionPercent())

		require.NoError(t, s.VerifyLineItem(s.LineItemIDs()[0], true, "", now))
		assert.Equal(t, 40, s.CompletionPercent())
	})

	t.Run("not-verified verdicts do not count", func(t *testing.T) {
		s := newTestSession(t, 3, now)
		require.NoError(t, s.VerifyLineItem(s.LineItemIDs()[0], false, "bruised", now))
		assert.Equal(t, 0, s.CompletionPercent())
	})

	t.Run("complete session reads 100", func(t *testing.T) {
		s := completedSession(t, now)
		assert.Equal(t, 100, s.CompletionPercent())
	})
}

func TestStage(t *testing.T) {
	t.Run("string round trip", func(t *testing.T) {
		for _, stage := range []pickup.Stage{
			pickup.StageLocation, pickup.StageVerification, pickup.StageConfirmation,
		} {
			parsed, err := pickup.StageFromString(stage.String())
			require.NoError(t, err)
			assert.Equal(t, stage, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := pickup.StageFromString("loading")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreSession(t *testing.T) {
	now := time.Now()

	t.Run("restores recorded state", func(t *testing.T) {
		original := completedSession(t, now)

		restored, err := pickup.RestoreSession(
			original.ID(), original.OrderID(), original.PartnerID(),
			original.Stage(), original.LineItemIDs(), original.CheckedItems(),
			original.Verifications(), original.PhotoRefs(),
			original.IsSignatureCaptured(), original.StartedAt(), original.LastActivity(),
		)
		require.NoError(t, err)

		assert.NoError(t, restored.CompletionGate())
		assert.Equal(t, original.CompletionPercent(), restored.CompletionPercent())
	})

	t.Run("rejects an invalid stage", func(t *testing.T) {
		_, err := pickup.RestoreSession(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			pickup.StageUnknown, []kernel.UUID{kernel.NewUUID()},
			nil, nil, nil, false, now, now,
		)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
