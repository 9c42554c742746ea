package kernel_test

import (
	"testing"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignature(t *testing.T) {
	t.Run("should create a signed signature", func(t *testing.T) {
		signer := kernel.NewUUID()
		at := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

		sig, err := kernel.NewSignature(signer, at)

		require.NoError(t, err)
		assert.True(t, sig.IsSigned())
		assert.True(t, sig.SignedBy().IsEqual(signer))
		assert.Equal(t, at, sig.SignedAt())
	})

	t.Run("should reject zero signer", func(t *testing.T) {
		_, err := kernel.NewSignature(kernel.UUID{}, time.Now())

		require.Error(t, err)
	})

	t.Run("should reject zero time", func(t *testing.T) {
		_, err := kernel.NewSignature(kernel.NewUUID(), time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSignature_ZeroValue(t *testing.T) {
	var sig kernel.Signature

	assert.False(t, sig.IsSigned())
	assert.Error(t, sig.SignedBy().Validate())
	assert.True(t, sig.SignedAt().IsZero())
}

func TestRestoreSignature(t *testing.T) {
	t.Run("should restore a signed slot", func(t *testing.T) {
		signer := kernel.NewUUID()
		at := time.Now()

		sig := kernel.RestoreSignature(true, signer, at)

		assert.True(t, sig.IsSigned())
		assert.True(t, sig.SignedBy().IsEqual(signer))
	})

	t.Run("should restore an unsigned slot as zero value", func(t *testing.T) {
		sig := kernel.RestoreSignature(false, kernel.NewUUID(), time.Now())

		assert.False(t, sig.IsSigned())
		assert.True(t, sig.SignedAt().IsZero())
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("should parse known roles", func(t *testing.T) {
		for _, name := range []string{
			"Advisor", "Technician", "Foreman", "Warehouse", "Cashier",
			"Accounting", "WarrantyOfficer", "ServiceManager", "Security", "JobController",
		} {
			role, err := kernel.RoleFromString(name)

			require.NoError(t, err, name)
			assert.Equal(t, name, role.String())
			assert.NoError(t, role.Validate())
		}
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		_, err := kernel.RoleFromString("Janitor")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewPrincipal(t *testing.T) {
	t.Run("should create principal with role", func(t *testing.T) {
		userID := kernel.NewUUID()

		p, err := kernel.NewPrincipal(userID, kernel.RoleCashier)

		require.NoError(t, err)
		assert.True(t, p.UserID().IsEqual(userID))
		assert.Equal(t, kernel.RoleCashier, p.Role())
		assert.Nil(t, p.TechnicianID())
		assert.True(t, p.HasRole(kernel.RoleCashier, kernel.RoleAccounting))
		assert.False(t, p.HasRole(kernel.RoleSecurity))
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		_, err := kernel.NewPrincipal(kernel.NewUUID(), kernel.RoleUnknown)

		require.Error(t, err)
	})
}

func TestNewTechnicianPrincipal(t *testing.T) {
	t.Run("should link technician identity", func(t *testing.T) {
		techID := kernel.NewUUID()

		p, err := kernel.NewTechnicianPrincipal(kernel.NewUUID(), techID)

		require.NoError(t, err)
		assert.Equal(t, kernel.RoleTechnician, p.Role())
		require.NotNil(t, p.TechnicianID())
		assert.True(t, p.TechnicianID().IsEqual(techID))
	})

	t.Run("should reject zero technician id", func(t *testing.T) {
		_, err := kernel.NewTechnicianPrincipal(kernel.NewUUID(), kernel.UUID{})

		require.Error(t, err)
	})
}
