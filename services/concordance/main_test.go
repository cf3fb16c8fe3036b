package concordanceService

import (
	"testing"

	"concord/models"
	schemePolicy "concord/models/constants/scheme-policy"
	callState "concord/models/constants/call-state"
	contingencyState "concord/models/constants/contingency-state"
	truthState "concord/models/constants/truth-state"
	"concord/models/dtos"
	"concord/models/schemes"

	"github.com/stretchr/testify/assert"
)

func initConfig(missingAsNoCall bool) *models.Config {
	var cfg models.Config
	cfg.Concordance.MissingAsNoCall = missingAsNoCall
	return &cfg
}

func TestNewConcordanceService(t *testing.T) {
	t.Run("selects the missing-as-no-call variant when configured", func(t *testing.T) {
		cz, czErr := NewConcordanceService(initConfig(true))

		assert.NoError(t, czErr)
		assert.Equal(t, schemePolicy.GA4GHMissingAsNoCall, cz.ActivePolicy())
		assert.True(t, cz.ActiveScheme().IsValidated())
	})

	t.Run("selects the default variant otherwise", func(t *testing.T) {
		cz, czErr := NewConcordanceService(initConfig(false))

		assert.NoError(t, czErr)
		assert.Equal(t, schemePolicy.GA4GH, cz.ActivePolicy())
		assert.True(t, cz.ActiveScheme().IsValidated())
	})

	t.Run("holds both validated variants", func(t *testing.T) {
		cz, _ := NewConcordanceService(initConfig(false))

		for _, policy := range schemePolicy.Values() {
			scheme, found := cz.Scheme(policy)
			assert.True(t, found)
			assert.True(t, scheme.IsValidated())
		}
	})
}

func TestClassify(t *testing.T) {
	cz, czErr := NewConcordanceService(initConfig(true))
	assert.NoError(t, czErr)

	t.Run("returns the stored sequence for a legitimate tuple", func(t *testing.T) {
		sequence, classifyErr := cz.Classify(truthState.HomVar1, callState.HomVar1)

		assert.NoError(t, classifyErr)
		assert.Equal(t, schemes.ContingencySequence{contingencyState.TP}, sequence)
	})

	t.Run("surfaces an observed NA as a hard error", func(t *testing.T) {
		_, classifyErr := cz.Classify(truthState.Missing, callState.HetVar1Var3)

		assert.Error(t, classifyErr)
		assert.Contains(t, classifyErr.Error(), "NA")
	})
}

func TestCountOutcomes(t *testing.T) {
	sequences := []schemes.ContingencySequence{
		schemes.TP_FP_FN,
		schemes.TN_ONLY,
		schemes.TP_ONLY,
		schemes.EMPTY,
	}

	counts := CountOutcomes(sequences)

	assert.Equal(t, 2, counts.TruePositives)
	assert.Equal(t, 1, counts.FalsePositives)
	assert.Equal(t, 1, counts.TrueNegatives)
	assert.Equal(t, 1, counts.FalseNegatives)
}

func TestComputeSummary(t *testing.T) {
	t.Run("derives the GA4GH metrics", func(t *testing.T) {
		counts := dtos.ConcordanceCounts{
			TruePositives:  9,
			FalsePositives: 1,
			TrueNegatives:  90,
			FalseNegatives: 1,
		}

		summary := ComputeSummary("run-1", counts)

		assert.Equal(t, "run-1", summary.RunId)
		assert.InDelta(t, 0.9, summary.Sensitivity, 1e-9)
		assert.InDelta(t, 0.9, summary.Precision, 1e-9)
		assert.InDelta(t, 90.0/91.0, summary.Specificity, 1e-9)
		assert.InDelta(t, 0.9, summary.FMeasure, 1e-9)
	})

	t.Run("zero counts yield zero metrics rather than NaN", func(t *testing.T) {
		summary := ComputeSummary("run-2", dtos.ConcordanceCounts{})

		assert.Equal(t, 0.0, summary.Sensitivity)
		assert.Equal(t, 0.0, summary.Precision)
		assert.Equal(t, 0.0, summary.Specificity)
		assert.Equal(t, 0.0, summary.FMeasure)
	})
}
