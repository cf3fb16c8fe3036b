package callState

import (
	"testing"

	truthState "concord/models/constants/truth-state"

	"github.com/stretchr/testify/assert"
)

// Every truth-state name must also denote a call state of identical meaning;
// the reverse does not hold.
func TestEveryTruthStateNameIsACallState(t *testing.T) {
	for _, truth := range truthState.Values() {
		name := truthState.TruthStateToString(truth)

		call, castErr := CastToCallState(name)

		assert.NoError(t, castErr, name)
		assert.Equal(t, name, CallStateToString(call))
	}
}

func TestCastToCallState(t *testing.T) {
	t.Run("round trips every value", func(t *testing.T) {
		for _, call := range Values() {
			name := CallStateToString(call)

			cast, castErr := CastToCallState(name)

			assert.NoError(t, castErr)
			assert.Equal(t, call, cast)
		}
	})

	t.Run("is case insensitive", func(t *testing.T) {
		call, castErr := CastToCallState("het_var3_var4")

		assert.NoError(t, castErr)
		assert.Equal(t, HetVar3Var4, call)
	})

	t.Run("rejects unknown categories", func(t *testing.T) {
		_, castErr := CastToCallState("HET_VAR2_VAR3")

		assert.Error(t, castErr)
	})
}

func TestValuesCountsSeventeenStates(t *testing.T) {
	assert.Equal(t, 17, len(Values()))
	assert.Equal(t, 11, len(truthState.Values()))
}
