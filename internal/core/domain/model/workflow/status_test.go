package workflow_test

import (
	"testing"

	"medlogistics/internal/core/domain/model/workflow"
	"medlogistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("accepts canonical identifiers", func(t *testing.T) {
		status, err := workflow.ParseStatus("pending_approval")

		require.NoError(t, err)
		assert.Equal(t, workflow.StatusPendingApproval, status)
	})

	t.Run("normalizes casing and whitespace", func(t *testing.T) {
		status, err := workflow.ParseStatus("  Templates_Ready ")

		require.NoError(t, err)
		assert.Equal(t, workflow.StatusTemplatesReady, status)
	})

	t.Run("rejects undeclared identifiers", func(t *testing.T) {
		_, err := workflow.ParseStatus("shipped")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_CanonicalIndex(t *testing.T) {
	tests := []struct {
		status  workflow.Status
		index   int
		indexed bool
	}{
		{workflow.StatusCreated, 0, true},
		{workflow.StatusPendingApproval, 1, true},
		{workflow.StatusApproved, 2, true},
		{workflow.StatusDoctorConfirmation, 3, true},
		{workflow.StatusDoctorApproved, 4, true},
		{workflow.StatusTemplatesReady, 5, true},
		{workflow.StatusTechniciansAssigned, 6, true},
		{workflow.StatusEquipmentTransported, 7, true},
		{workflow.StatusRemissionCreated, 8, true},
		{workflow.StatusSurgeryPrepared, 9, true},
		{workflow.StatusSurgeryCompleted, 10, true},
		{workflow.StatusReadyForBilling, 11, true},
		{workflow.StatusBilled, 12, true},
		{workflow.StatusDoctorRejected, 0, false},
		{workflow.StatusRejected, 0, false},
		{workflow.StatusCancelled, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.status.String(), func(t *testing.T) {
			idx, ok := tc.status.CanonicalIndex()

			assert.Equal(t, tc.indexed, ok)
			if tc.indexed {
				assert.Equal(t, tc.index, idx)
			}
		})
	}
}

func TestStatus_IsAbsorbing(t *testing.T) {
	assert.True(t, workflow.StatusCancelled.IsAbsorbing())
	assert.True(t, workflow.StatusRejected.IsAbsorbing())
	assert.True(t, workflow.StatusDoctorRejected.IsAbsorbing())
	assert.False(t, workflow.StatusBilled.IsAbsorbing())
	assert.False(t, workflow.StatusCreated.IsAbsorbing())
}

func TestParseRole(t *testing.T) {
	t.Run("accepts declared roles", func(t *testing.T) {
		role, err := workflow.ParseRole("Warehouse_Lead")

		require.NoError(t, err)
		assert.Equal(t, workflow.RoleWarehouseLead, role)
	})

	t.Run("rejects undeclared roles", func(t *testing.T) {
		_, err := workflow.ParseRole("intern")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRole_IsElevated(t *testing.T) {
	assert.True(t, workflow.RoleAdministrator.IsElevated())
	assert.True(t, workflow.RoleOperationsManager.IsElevated())
	assert.False(t, workflow.RoleTechnician.IsElevated())
	assert.False(t, workflow.RoleDoctor.IsElevated())
	assert.False(t, workflow.RoleSystem.IsElevated())
}
