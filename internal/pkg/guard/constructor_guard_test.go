package guard_test

import (
	"errors"
	"testing"

	"medlogistics/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("should not be returned")))
	})
}

// TestConstructorGuardUsageExample demonstrates enforcing constructor usage
// on a guarded command object.
func TestConstructorGuardUsageExample(t *testing.T) {
	var errReasonNotConstructed = errors.New("RollbackReason must be created via newRollbackReason")

	type RollbackReason struct {
		text  string
		guard guard.ConstructorGuard
	}

	newRollbackReason := func(text string) (RollbackReason, error) {
		if text == "" {
			return RollbackReason{}, errors.New("reason is required")
		}
		return RollbackReason{text: text, guard: guard.NewConstructorGuard()}, nil
	}

	validate := func(r RollbackReason) error {
		return r.guard.Validate(errReasonNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		reason, err := newRollbackReason("duplicate remission paperwork")

		require.NoError(t, err)
		require.NoError(t, validate(reason))
		assert.Equal(t, "duplicate remission paperwork", reason.text)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var reason RollbackReason // zero value

		err := validate(reason)

		require.Error(t, err)
		assert.Equal(t, errReasonNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newRollbackReason("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reason is required")
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 500 {
				err := g.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}
