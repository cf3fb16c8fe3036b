package schemes

import (
	"testing"

	"concord/models/constants"
	callState "concord/models/constants/call-state"
	contingencyState "concord/models/constants/contingency-state"
	schemePolicy "concord/models/constants/scheme-policy"
	truthState "concord/models/constants/truth-state"

	"github.com/stretchr/testify/assert"
)

func TestSchemeExhaustiveness(t *testing.T) {
	for _, policy := range schemePolicy.Values() {
		policy := policy
		t.Run(string(policy), func(t *testing.T) {
			s, buildErr := BuildScheme(policy)
			assert.NoError(t, buildErr)

			for _, truth := range truthState.Values() {
				for _, call := range callState.Values() {
					sequence, found := s.Lookup(truth, call)
					assert.True(t, found, "tuple [%s, %s] has no entry",
						truthState.TruthStateToString(truth), callState.CallStateToString(call))
					assert.NotEmpty(t, sequence)
				}
			}

			assert.NoError(t, s.Validate())
		})
	}
}

func TestBuildSchemeUnknownPolicy(t *testing.T) {
	_, err := BuildScheme(schemePolicy.Unknown)

	assert.Error(t, err)
	assert.IsType(t, &SchemeDefinitionError{}, err)
}

func TestGetSchemeSelectsVariant(t *testing.T) {
	t.Run("missing-as-no-call convention", func(t *testing.T) {
		s, buildErr := GetScheme(true)
		assert.NoError(t, buildErr)
		assert.Equal(t, schemePolicy.GA4GHMissingAsNoCall, s.Policy)

		// a missing truth genotype scores like a no-call : calls against it
		// contribute nothing, and a missing call against it is a true negative
		assert.Equal(t, "TN", s.Render(truthState.Missing, callState.Missing))
		assert.Equal(t, "EMPTY", s.Render(truthState.Missing, callState.HomVar1))
		assert.Equal(t, "EMPTY", s.Render(truthState.Missing, callState.HetVar1Var2))
	})

	t.Run("default GA4GH convention", func(t *testing.T) {
		s, buildErr := GetScheme(false)
		assert.NoError(t, buildErr)
		assert.Equal(t, schemePolicy.GA4GH, s.Policy)

		// a missing truth genotype scores like homozygous-reference : calls
		// asserting alternate alleles against it are false positives
		assert.Equal(t, "EMPTY", s.Render(truthState.Missing, callState.Missing))
		assert.Equal(t, "TN", s.Render(truthState.Missing, callState.HomRef))
		assert.Equal(t, "FP,TN", s.Render(truthState.Missing, callState.HetRefVar1))
		assert.Equal(t, "FP", s.Render(truthState.Missing, callState.HomVar1))
		assert.Equal(t, "FP", s.Render(truthState.Missing, callState.HetVar3Var4))
		assert.Equal(t, "FP", s.Render(truthState.Missing, callState.HomVar2))
	})

	t.Run("variants agree everywhere outside the MISSING truth column", func(t *testing.T) {
		missingAsNoCall, _ := GetScheme(true)
		ga4gh, _ := GetScheme(false)

		for _, truth := range truthState.Values() {
			if truth == truthState.Missing {
				continue
			}
			for _, call := range callState.Values() {
				assert.Equal(t,
					ga4gh.Render(truth, call),
					missingAsNoCall.Render(truth, call),
					"tuple [%s, %s] diverges",
					truthState.TruthStateToString(truth), callState.CallStateToString(call))
			}
		}
	})
}

func TestMissingAsNoCallScenarios(t *testing.T) {
	s, buildErr := GetScheme(true)
	assert.NoError(t, buildErr)
	assert.NoError(t, s.Validate())

	lookupSet := func(truth constants.TruthState, call constants.CallState) map[constants.ContingencyState]bool {
		sequence, found := s.Lookup(truth, call)
		assert.True(t, found)
		return AsSet(sequence)
	}

	t.Run("het call against hom-ref truth is FP plus TN", func(t *testing.T) {
		set := lookupSet(truthState.HomRef, callState.HetRefVar1)

		assert.Equal(t, 2, len(set))
		assert.True(t, set[contingencyState.FP])
		assert.True(t, set[contingencyState.TN])
	})

	t.Run("missing call against het truth is TN plus FN", func(t *testing.T) {
		set := lookupSet(truthState.HetRefVar1, callState.Missing)

		assert.Equal(t, 2, len(set))
		assert.True(t, set[contingencyState.TN])
		assert.True(t, set[contingencyState.FN])
	})

	t.Run("matching hom-var call is a lone TP", func(t *testing.T) {
		set := lookupSet(truthState.HomVar1, callState.HomVar1)

		assert.Equal(t, 1, len(set))
		assert.True(t, set[contingencyState.TP])
	})

	t.Run("third-allele het call against missing truth is the NA sentinel", func(t *testing.T) {
		set := lookupSet(truthState.Missing, callState.HetVar1Var3)

		assert.Equal(t, 1, len(set))
		assert.True(t, set[contingencyState.NA])
	})

	t.Run("a no-call contributes nothing for any truth state", func(t *testing.T) {
		for _, truth := range truthState.Values() {
			set := lookupSet(truth, callState.NoCall)

			assert.Equal(t, 1, len(set))
			assert.True(t, set[contingencyState.Empty])
		}
	})

	t.Run("het call against hom-var truth splits three ways", func(t *testing.T) {
		set := lookupSet(truthState.HomVar1, callState.HetVar1Var2)

		assert.Equal(t, 3, len(set))
		assert.True(t, set[contingencyState.TP])
		assert.True(t, set[contingencyState.FP])
		assert.True(t, set[contingencyState.FN])
	})
}
