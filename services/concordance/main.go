package concordanceService

import (
	"fmt"

	"concord/models"
	"concord/models/constants"
	callState "concord/models/constants/call-state"
	contingencyState "concord/models/constants/contingency-state"
	schemePolicy "concord/models/constants/scheme-policy"
	truthState "concord/models/constants/truth-state"
	"concord/models/dtos"
	"concord/models/schemes"

	linq "github.com/ahmetb/go-linq"
)

type (
	ConcordanceService struct {
		Config *models.Config

		// both variants are populated and validated up front, before the
		// server starts serving, so reads never race the construction
		schemesByPolicy map[constants.SchemePolicy]*schemes.Scheme
		activePolicy    constants.SchemePolicy
	}
)

func NewConcordanceService(cfg *models.Config) (*ConcordanceService, error) {
	cz := &ConcordanceService{
		Config:          cfg,
		schemesByPolicy: map[constants.SchemePolicy]*schemes.Scheme{},
		activePolicy:    schemePolicy.GA4GH,
	}
	if cfg.Concordance.MissingAsNoCall {
		cz.activePolicy = schemePolicy.GA4GHMissingAsNoCall
	}

	for _, policy := range schemePolicy.Values() {
		scheme, buildErr := schemes.BuildScheme(policy)
		if buildErr != nil {
			return nil, buildErr
		}
		if validationErr := scheme.Validate(); validationErr != nil {
			return nil, validationErr
		}
		cz.schemesByPolicy[policy] = scheme
	}

	return cz, nil
}

func (cz *ConcordanceService) ActivePolicy() constants.SchemePolicy {
	return cz.activePolicy
}

func (cz *ConcordanceService) ActiveScheme() *schemes.Scheme {
	return cz.schemesByPolicy[cz.activePolicy]
}

func (cz *ConcordanceService) Scheme(policy constants.SchemePolicy) (*schemes.Scheme, bool) {
	scheme, found := cz.schemesByPolicy[policy]
	return scheme, found
}

// Classify returns the contingency entries one comparable site contributes
// to under the active scheme. An NA result means the upstream genotype
// categorization broke its contract; it is surfaced as an error rather than
// folded into any count.
func (cz *ConcordanceService) Classify(truth constants.TruthState, call constants.CallState) (schemes.ContingencySequence, error) {
	sequence, found := cz.ActiveScheme().Lookup(truth, call)
	if !found {
		// unreachable once the scheme has been validated
		return nil, fmt.Errorf("no contingency sequence for tuple [%s, %s]",
			truthState.TruthStateToString(truth), callState.CallStateToString(call))
	}

	for _, outcome := range sequence {
		if outcome == contingencyState.NA {
			return nil, fmt.Errorf("NA contingency observed for tuple [%s, %s] : the upstream genotype categorization is defective",
				truthState.TruthStateToString(truth), callState.CallStateToString(call))
		}
	}

	return sequence, nil
}

// CountOutcomes folds a set of per-site contingency sequences into running
// contingency-table counts. EMPTY entries contribute nothing.
func CountOutcomes(sequences []schemes.ContingencySequence) dtos.ConcordanceCounts {
	counts := dtos.ConcordanceCounts{}

	linq.From(sequences).
		SelectManyT(func(sequence schemes.ContingencySequence) linq.Query {
			return linq.From(sequence)
		}).
		ForEachT(func(outcome constants.ContingencyState) {
			switch outcome {
			case contingencyState.TP:
				counts.TruePositives++
			case contingencyState.FP:
				counts.FalsePositives++
			case contingencyState.TN:
				counts.TrueNegatives++
			case contingencyState.FN:
				counts.FalseNegatives++
			}
		})

	return counts
}

// ComputeSummary derives the GA4GH-style summary metrics from raw counts.
func ComputeSummary(runId string, counts dtos.ConcordanceCounts) dtos.ConcordanceSummaryDTO {
	var (
		tp = float64(counts.TruePositives)
		fp = float64(counts.FalsePositives)
		tn = float64(counts.TrueNegatives)
		fn = float64(counts.FalseNegatives)
	)

	summary := dtos.ConcordanceSummaryDTO{
		RunId:  runId,
		Counts: counts,
	}

	if tp+fn > 0 {
		summary.Sensitivity = tp / (tp + fn)
	}
	if tp+fp > 0 {
		summary.Precision = tp / (tp + fp)
	}
	if tn+fp > 0 {
		summary.Specificity = tn / (tn + fp)
	}
	if summary.Sensitivity+summary.Precision > 0 {
		summary.FMeasure = 2 * summary.Sensitivity * summary.Precision / (summary.Sensitivity + summary.Precision)
	}

	return summary
}
