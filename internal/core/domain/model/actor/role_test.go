package actor_test

import (
	"testing"

	"agrimarket/internal/core/domain/model/actor"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("parses every defined role", func(t *testing.T) {
		cases := map[string]actor.Role{
			"customer":         actor.RoleCustomer,
			"farmer":           actor.RoleFarmer,
			"warehouse":        actor.RoleWarehouse,
			"delivery_partner": actor.RoleDeliveryPartner,
			"admin":            actor.RoleAdmin,
		}

		for s, want := range cases {
			got, err := actor.RoleFromString(s)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, s, got.String())
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := actor.RoleFromString("superuser")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRole_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		require.Error(t, actor.RoleUnknown.Validate())
	})

	t.Run("defined roles are valid", func(t *testing.T) {
		for _, r := range []actor.Role{
			actor.RoleCustomer, actor.RoleFarmer, actor.RoleWarehouse,
			actor.RoleDeliveryPartner, actor.RoleAdmin,
		} {
			require.NoError(t, r.Validate())
		}
	})
}

func TestNewActor(t *testing.T) {
	t.Run("creates actor with role and identity", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := actor.NewActor(actor.RoleDeliveryPartner, id)

		require.NoError(t, err)
		assert.Equal(t, actor.RoleDeliveryPartner, a.Role())
		assert.True(t, a.ID().IsEqual(id))
		require.NoError(t, a.Validate())
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := actor.NewActor(actor.RoleUnknown, kernel.NewUUID())

		require.Error(t, err)
	})

	t.Run("rejects zero identity", func(t *testing.T) {
		var id kernel.UUID
		_, err := actor.NewActor(actor.RoleCustomer, id)

		require.Error(t, err)
	})
}
