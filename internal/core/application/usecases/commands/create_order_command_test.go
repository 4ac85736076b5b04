package commands_test

import (
	"testing"

	"medlogistics/internal/core/application/usecases/commands"
	"medlogistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("creates valid command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(id, "Ada Roman", "knee replacement")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, "Ada Roman", cmd.PatientName())
		assert.Equal(t, "knee replacement", cmd.Procedure())
	})

	t.Run("rejects zero-value id", func(t *testing.T) {
		var id kernel.UUID

		_, err := commands.NewCreateOrderCommand(id, "Ada Roman", "knee replacement")

		require.Error(t, err)
	})

	t.Run("rejects empty patient name", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "", "knee replacement")

		require.ErrorIs(t, err, commands.ErrPatientNameIsRequired)
	})

	t.Run("rejects empty procedure", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Ada Roman", "")

		require.ErrorIs(t, err, commands.ErrProcedureIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
