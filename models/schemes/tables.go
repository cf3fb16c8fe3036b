package schemes

import (
	"fmt"

	"concord/models/constants"
	callState "concord/models/constants/call-state"
	contingencyState "concord/models/constants/contingency-state"
	schemePolicy "concord/models/constants/scheme-policy"
)

/*
	Convenience sequences for defining a scheme. NA means that such a tuple
	should never be observed given upstream genotype normalization.
*/
var (
	NA       = ContingencySequence{contingencyState.NA}
	EMPTY    = ContingencySequence{contingencyState.Empty}
	TP_ONLY  = ContingencySequence{contingencyState.TP}
	FP_ONLY  = ContingencySequence{contingencyState.FP}
	TN_ONLY  = ContingencySequence{contingencyState.TN}
	FN_ONLY  = ContingencySequence{contingencyState.FN}
	TP_FN    = ContingencySequence{contingencyState.TP, contingencyState.FN}
	TP_FP    = ContingencySequence{contingencyState.TP, contingencyState.FP}
	TP_TN    = ContingencySequence{contingencyState.TP, contingencyState.TN}
	FP_FN    = ContingencySequence{contingencyState.FP, contingencyState.FN}
	FP_TN    = ContingencySequence{contingencyState.FP, contingencyState.TN}
	FP_TN_FN = ContingencySequence{contingencyState.FP, contingencyState.TN, contingencyState.FN}
	TP_FP_FN = ContingencySequence{contingencyState.TP, contingencyState.FP, contingencyState.FN}
	TN_FN    = ContingencySequence{contingencyState.TN, contingencyState.FN}
)

// schemeBuilder accumulates rows and remembers the first definition error, so
// the tables below can stay flat and readable.
type schemeBuilder struct {
	scheme *Scheme
	err    error
}

func newSchemeBuilder(policy constants.SchemePolicy) *schemeBuilder {
	return &schemeBuilder{scheme: New(policy)}
}

func (b *schemeBuilder) addRow(call constants.CallState, columns ...ContingencySequence) {
	if b.err != nil {
		return
	}
	b.err = b.scheme.AddRow(call, columns...)
}

func (b *schemeBuilder) build() (*Scheme, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.scheme, nil
}

/*
	Both tables below derive from the GA4GH Benchmarking Work Group's proposed
	evaluation scheme.

	In general we are comparing two sets of alleles, so one comparison can
	contribute zero or more contingency table entries. For example, if the
	truthset is heterozygous with both alleles non-reference (HET_VAR1_VAR2)
	and the callset is homozygous for one of those alternates (HOM_VAR1), the
	matching alternate gives a true positive, the extra copy in the callset a
	false positive, and the truthset alternate not found in the callset a
	false negative. A true negative is included whenever the reference allele
	appears on both sides.
*/

// buildGA4GHScheme populates the default variant, in which a missing truth
// genotype is counted as though it were homozygous-reference: reference
// alleles in the callset score true negatives and alternate alleles score
// false positives.
func buildGA4GHScheme() (*Scheme, error) {
	b := newSchemeBuilder(schemePolicy.GA4GH)

	/*        ROW STATE                  MISSING   HOM_REF   HET_REF_VAR1  HET_VAR1_VAR2  HOM_VAR1  NO_CALL  LOW_GQ  LOW_DP  VC_FILTERED  GT_FILTERED  IS_MIXED */
	b.addRow(callState.Missing,          EMPTY,    TN_ONLY,  TN_FN,        FN_ONLY,       FN_ONLY,  EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.HomRef,           TN_ONLY,  TN_ONLY,  TN_FN,        FN_ONLY,       FN_ONLY,  EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.HetRefVar1,       FP_TN,    FP_TN,    TP_TN,        TP_FN,         TP_FN,    EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.HetRefVar2,       NA,       NA,       FP_TN_FN,     NA,            FP_FN,    NA,      NA,     NA,     NA,          NA,          NA)
	b.addRow(callState.HetRefVar3,       NA,       NA,       NA,           FP_FN,         NA,       NA,      NA,     NA,     NA,          NA,          NA)
	b.addRow(callState.HetVar1Var2,      FP_ONLY,  FP_ONLY,  TP_FP,        TP_ONLY,       TP_FP_FN, EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.HetVar1Var3,      NA,       NA,       NA,           TP_FP_FN,      NA,       NA,      NA,     NA,     NA,          NA,          NA)
	b.addRow(callState.HetVar3Var4,      FP_ONLY,  FP_ONLY,  FP_FN,        FP_FN,         FP_FN,    NA,      NA,     NA,     NA,          NA,          NA)
	b.addRow(callState.HomVar1,          FP_ONLY,  FP_ONLY,  TP_FP,        TP_FN,         TP_ONLY,  EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.HomVar2,          FP_ONLY,  NA,       FP_FN,        TP_FN,         FP_FN,    NA,      NA,     NA,     NA,          NA,          NA)
	b.addRow(callState.HomVar3,          NA,       NA,       NA,           FP_FN,         NA,       NA,      NA,     NA,     NA,          NA,          NA)
	b.addRow(callState.NoCall,           EMPTY,    EMPTY,    EMPTY,        EMPTY,         EMPTY,    EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.VcFiltered,       EMPTY,    TN_ONLY,  TN_FN,        FN_ONLY,       FN_ONLY,  EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.GtFiltered,       EMPTY,    TN_ONLY,  TN_FN,        FN_ONLY,       FN_ONLY,  EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.LowGq,            EMPTY,    TN_ONLY,  TN_FN,        FN_ONLY,       FN_ONLY,  EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.LowDp,            EMPTY,    TN_ONLY,  TN_FN,        FN_ONLY,       FN_ONLY,  EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.IsMixed,          EMPTY,    EMPTY,    EMPTY,        EMPTY,         EMPTY,    EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)

	return b.build()
}

// buildGA4GHMissingAsNoCallScheme populates the variant in which a missing
// truth genotype is treated like a no-call: only a call that is itself
// missing or homozygous-reference scores against it, and nothing a caller
// asserts about alternate alleles is penalized.
func buildGA4GHMissingAsNoCallScheme() (*Scheme, error) {
	b := newSchemeBuilder(schemePolicy.GA4GHMissingAsNoCall)

	/*        ROW STATE                  MISSING   HOM_REF   HET_REF_VAR1  HET_VAR1_VAR2  HOM_VAR1  NO_CALL  LOW_GQ  LOW_DP  VC_FILTERED  GT_FILTERED  IS_MIXED */
	b.addRow(callState.Missing,          TN_ONLY,  TN_ONLY,  TN_FN,        FN_ONLY,       FN_ONLY,  EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.HomRef,           EMPTY,    TN_ONLY,  TN_FN,        FN_ONLY,       FN_ONLY,  EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.HetRefVar1,       EMPTY,    FP_TN,    TP_TN,        TP_FN,         TP_FN,    EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.HetRefVar2,       NA,       NA,       FP_TN_FN,     NA,            FP_FN,    NA,      NA,     NA,     NA,          NA,          NA)
	b.addRow(callState.HetRefVar3,       NA,       NA,       NA,           FP_FN,         NA,       NA,      NA,     NA,     NA,          NA,          NA)
	b.addRow(callState.HetVar1Var2,      EMPTY,    FP_ONLY,  TP_FP,        TP_ONLY,       TP_FP_FN, EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.HetVar1Var3,      NA,       NA,       NA,           TP_FP_FN,      NA,       NA,      NA,     NA,     NA,          NA,          NA)
	b.addRow(callState.HetVar3Var4,      NA,       FP_ONLY,  FP_FN,        FP_FN,         FP_FN,    NA,      NA,     NA,     NA,          NA,          NA)
	b.addRow(callState.HomVar1,          EMPTY,    FP_ONLY,  TP_FP,        TP_FN,         TP_ONLY,  EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.HomVar2,          NA,       NA,       FP_FN,        TP_FN,         FP_FN,    NA,      NA,     NA,     NA,          NA,          NA)
	b.addRow(callState.HomVar3,          NA,       NA,       NA,           FP_FN,         NA,       NA,      NA,     NA,     NA,          NA,          NA)
	b.addRow(callState.NoCall,           EMPTY,    EMPTY,    EMPTY,        EMPTY,         EMPTY,    EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.VcFiltered,       EMPTY,    TN_ONLY,  TN_FN,        FN_ONLY,       FN_ONLY,  EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.GtFiltered,       EMPTY,    TN_ONLY,  TN_FN,        FN_ONLY,       FN_ONLY,  EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.LowGq,            EMPTY,    TN_ONLY,  TN_FN,        FN_ONLY,       FN_ONLY,  EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.LowDp,            EMPTY,    TN_ONLY,  TN_FN,        FN_ONLY,       FN_ONLY,  EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)
	b.addRow(callState.IsMixed,          EMPTY,    EMPTY,    EMPTY,        EMPTY,         EMPTY,    EMPTY,   EMPTY,  EMPTY,  EMPTY,       EMPTY,       EMPTY)

	return b.build()
}

// BuildScheme returns a freshly populated (not yet validated) scheme for the
// given policy.
func BuildScheme(policy constants.SchemePolicy) (*Scheme, error) {
	switch policy {
	case schemePolicy.GA4GH:
		return buildGA4GHScheme()
	case schemePolicy.GA4GHMissingAsNoCall:
		return buildGA4GHMissingAsNoCallScheme()
	default:
		return nil, &SchemeDefinitionError{Message: fmt.Sprintf("unknown scheme policy '%s'", policy)}
	}
}

// GetScheme is the boolean front door kept for callers configured by a
// single missing-as-no-call flag.
func GetScheme(missingAsNoCall bool) (*Scheme, error) {
	if missingAsNoCall {
		return BuildScheme(schemePolicy.GA4GHMissingAsNoCall)
	}
	return BuildScheme(schemePolicy.GA4GH)
}
