package kernel_test

import (
	"testing"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	t.Run("should create unique valid UUIDs", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()

		require.NoError(t, a.Validate())
		assert.False(t, a.IsEqual(b))
	})

	t.Run("should round trip through string", func(t *testing.T) {
		id := kernel.NewUUID()

		parsed, err := kernel.UUIDFromString(id.String())

		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(id))
	})

	t.Run("should reject malformed strings as validation errors", func(t *testing.T) {
		for _, raw := range []string{"", "O1", "550e8400-e29b-41d4-a716-44665544000z"} {
			_, err := kernel.UUIDFromString(raw)

			require.Error(t, err, raw)
			assert.True(t, errs.IsValidation(err), raw)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString(uuid.Nil.String())
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)

		_, err = kernel.UUIDFromBytes(make([]byte, 16))
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)

		var zero kernel.UUID
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, zero.Validate())
	})

	t.Run("should round trip through bytes", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(id))
	})
}

func TestActorID(t *testing.T) {
	t.Run("should normalize case and whitespace", func(t *testing.T) {
		a, err := kernel.NewActorID("  64F1A2B3C4D5E6F7A8B9C0D1 ")
		require.NoError(t, err)
		b, err := kernel.NewActorID("64f1a2b3c4d5e6f7a8b9c0d1")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.Equal(t, "64f1a2b3c4d5e6f7a8b9c0d1", a.String())
	})

	t.Run("should reject blank identifiers", func(t *testing.T) {
		_, err := kernel.NewActorID("   ")

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("zero values never match", func(t *testing.T) {
		var a, b kernel.ActorID

		assert.False(t, a.IsEqual(b))
		assert.Equal(t, kernel.ErrActorIDIsNotConstructed, a.Validate())
	})
}

func TestAddress(t *testing.T) {
	t.Run("should require line1 and city", func(t *testing.T) {
		_, err := kernel.NewAddress(kernel.AddressFields{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "address.line1")
		assert.Contains(t, err.Error(), "address.city")
	})

	t.Run("should trim and expose fields", func(t *testing.T) {
		a, err := kernel.NewAddress(kernel.AddressFields{
			Recipient: " Asha ", Line1: "12 MG Road", City: "Pune", PostalCode: "411001",
		})

		require.NoError(t, err)
		assert.Equal(t, "Asha", a.Fields().Recipient)
		assert.Equal(t, "411001", a.Fields().PostalCode)
		assert.False(t, a.IsZero())
		assert.True(t, kernel.Address{}.IsZero())
	})

	t.Run("should restore a partial address without losing fields", func(t *testing.T) {
		a := kernel.RestoreAddress(kernel.AddressFields{Recipient: "Asha", Phone: "999", City: "Pune"})

		assert.False(t, a.IsZero())
		assert.Equal(t, kernel.AddressFields{Recipient: "Asha", Phone: "999", City: "Pune"}, a.Fields())
	})
}
