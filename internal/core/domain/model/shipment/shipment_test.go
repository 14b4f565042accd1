package shipment_test

import (
	"testing"
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/shipment"
	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func TestNewShipment(t *testing.T) {
	t.Run("creates shipment awaiting quote", func(t *testing.T) {
		id := kernel.NewUUID()
		owner := kernel.NewUUID()

		s, err := shipment.NewShipment(id, owner, "SHP-2026-0117", testTime)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.True(t, s.OwnerID().IsEqual(owner))
		assert.Equal(t, "SHP-2026-0117", s.Reference())
		assert.Equal(t, status.AwaitingQuote, s.Status())
	})

	t.Run("rejects empty reference", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), "", testTime)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreShipment(t *testing.T) {
	t.Run("restores stored status", func(t *testing.T) {
		s, err := shipment.RestoreShipment(kernel.NewUUID(), kernel.NewUUID(), "SHP-1", status.InTransit, testTime)

		require.NoError(t, err)
		assert.Equal(t, status.InTransit, s.Status())
	})

	t.Run("accepts legacy status spellings", func(t *testing.T) {
		s, err := shipment.RestoreShipment(kernel.NewUUID(), kernel.NewUUID(), "SHP-1", status.LegacyTransit, testTime)

		require.NoError(t, err)
		assert.Equal(t, status.LegacyTransit, s.Status())
	})

	t.Run("rejects statuses from the wrong kind", func(t *testing.T) {
		_, err := shipment.RestoreShipment(kernel.NewUUID(), kernel.NewUUID(), "SHP-1", status.Inspected, testTime)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestShipment_ApplyStatus(t *testing.T) {
	t.Run("records status and timestamp", func(t *testing.T) {
		s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), "SHP-1", testTime)
		require.NoError(t, err)
		at := testTime.Add(time.Hour)

		require.NoError(t, s.ApplyStatus(status.QuoteReady, at))

		assert.Equal(t, status.QuoteReady, s.Status())
		assert.Equal(t, at, s.StatusChangedAt())
	})

	t.Run("rejects unregistered status", func(t *testing.T) {
		s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), "SHP-1", testTime)
		require.NoError(t, err)

		err = s.ApplyStatus("warp", testTime.Add(time.Hour))

		require.Error(t, err)
		assert.Equal(t, status.AwaitingQuote, s.Status())
	})
}

func TestShipment_Validate(t *testing.T) {
	t.Run("zero value is rejected", func(t *testing.T) {
		var s shipment.Shipment

		err := s.Validate()

		require.Error(t, err)
		assert.Equal(t, shipment.ErrShipmentIsNotConstructed, err)
	})
}
