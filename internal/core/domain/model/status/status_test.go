package status_test

import (
	"testing"

	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Validate(t *testing.T) {
	t.Run("known kinds are valid", func(t *testing.T) {
		require.NoError(t, status.KindPackage.Validate())
		require.NoError(t, status.KindShipment.Validate())
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		err := status.Kind("pallet").Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "pallet")
	})
}

func TestRole_Validate(t *testing.T) {
	t.Run("known roles are valid", func(t *testing.T) {
		for _, role := range []status.Role{
			status.RoleClient,
			status.RoleWarehouseAdmin,
			status.RoleAdmin,
			status.RoleSuperAdmin,
		} {
			require.NoError(t, role.Validate())
		}
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		err := status.Role("janitor").Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestInitial(t *testing.T) {
	assert.Equal(t, status.PendingArrival, status.Initial(status.KindPackage))
	assert.Equal(t, status.AwaitingQuote, status.Initial(status.KindShipment))
}

func TestAllStatuses(t *testing.T) {
	t.Run("package catalog has seventeen members", func(t *testing.T) {
		assert.Len(t, status.AllStatuses(status.KindPackage), 17)
	})

	t.Run("shipment catalog has fourteen members including legacy aliases", func(t *testing.T) {
		infos := status.AllStatuses(status.KindShipment)
		assert.Len(t, infos, 14)

		values := make([]status.Value, len(infos))
		for i, info := range infos {
			values[i] = info.Value
		}
		assert.Contains(t, values, status.LegacyPending)
		assert.Contains(t, values, status.LegacyReceived)
		assert.Contains(t, values, status.LegacyTransit)
	})

	t.Run("unknown kind yields empty catalog", func(t *testing.T) {
		assert.Empty(t, status.AllStatuses("pallet"))
	})

	t.Run("catalog entries carry complete metadata", func(t *testing.T) {
		for _, kind := range []status.Kind{status.KindPackage, status.KindShipment} {
			for _, info := range status.AllStatuses(kind) {
				assert.NotEmpty(t, info.Value)
				assert.NotEmpty(t, info.Label)
				assert.NotEmpty(t, info.Color)
				assert.NotEmpty(t, info.Description)
			}
		}
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		first := status.AllStatuses(status.KindPackage)
		first[0].Label = "mutated"

		second := status.AllStatuses(status.KindPackage)
		assert.NotEqual(t, "mutated", second[0].Label)
	})
}

func TestLookup(t *testing.T) {
	t.Run("finds registered status", func(t *testing.T) {
		info, ok := status.Lookup(status.KindPackage, status.Arrived)

		require.True(t, ok)
		assert.Equal(t, status.Arrived, info.Value)
		assert.Equal(t, "Arrived", info.Label)
	})

	t.Run("same spelling resolves per kind", func(t *testing.T) {
		pkg, ok := status.Lookup(status.KindPackage, status.Arrived)
		require.True(t, ok)
		shp, ok := status.Lookup(status.KindShipment, status.Arrived)
		require.True(t, ok)

		assert.NotEqual(t, pkg.Description, shp.Description)
	})

	t.Run("unknown status reports absent without error", func(t *testing.T) {
		_, ok := status.Lookup(status.KindPackage, "teleported")
		assert.False(t, ok)
		assert.False(t, status.IsKnown(status.KindPackage, "teleported"))
	})

	t.Run("kinds do not share members", func(t *testing.T) {
		assert.False(t, status.IsKnown(status.KindPackage, status.AwaitingQuote))
		assert.False(t, status.IsKnown(status.KindShipment, status.Inspected))
	})
}
