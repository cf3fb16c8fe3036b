package truthState

import (
	"concord/models/constants"
	"errors"
	"strings"
)

/*
	Truth genotype categories. Truth genotypes are normalized upstream to at
	most two distinct alleles, so no third/fourth-allele categories exist here.
*/
const (
	Missing constants.TruthState = iota
	HomRef
	HetRefVar1
	HetVar1Var2
	HomVar1
	NoCall
	LowGq
	LowDp
	VcFiltered
	GtFiltered
	IsMixed
)

// Values returns every truth state in the canonical column order
// (MISSING, HOM_REF, HET_REF_VAR1, HET_VAR1_VAR2, HOM_VAR1, NO_CALL,
// LOW_GQ, LOW_DP, VC_FILTERED, GT_FILTERED, IS_MIXED).
// Scheme row population is positional, so this order is part of the contract.
func Values() []constants.TruthState {
	return []constants.TruthState{
		Missing,
		HomRef,
		HetRefVar1,
		HetVar1Var2,
		HomVar1,
		NoCall,
		LowGq,
		LowDp,
		VcFiltered,
		GtFiltered,
		IsMixed,
	}
}

func IsKnown(value int) bool {
	return value >= int(Missing) && value <= int(IsMixed)
}

func TruthStateToString(state constants.TruthState) string {
	switch state {
	case Missing:
		return "MISSING"
	case HomRef:
		return "HOM_REF"
	case HetRefVar1:
		return "HET_REF_VAR1"
	case HetVar1Var2:
		return "HET_VAR1_VAR2"
	case HomVar1:
		return "HOM_VAR1"
	case NoCall:
		return "NO_CALL"
	case LowGq:
		return "LOW_GQ"
	case LowDp:
		return "LOW_DP"
	case VcFiltered:
		return "VC_FILTERED"
	case GtFiltered:
		return "GT_FILTERED"
	case IsMixed:
		return "IS_MIXED"
	default:
		return "UNKNOWN"
	}
}

func CastToTruthState(text string) (constants.TruthState, error) {
	switch strings.ToUpper(text) {
	case "MISSING":
		return Missing, nil
	case "HOM_REF":
		return HomRef, nil
	case "HET_REF_VAR1":
		return HetRefVar1, nil
	case "HET_VAR1_VAR2":
		return HetVar1Var2, nil
	case "HOM_VAR1":
		return HomVar1, nil
	case "NO_CALL":
		return NoCall, nil
	case "LOW_GQ":
		return LowGq, nil
	case "LOW_DP":
		return LowDp, nil
	case "VC_FILTERED":
		return VcFiltered, nil
	case "GT_FILTERED":
		return GtFiltered, nil
	case "IS_MIXED":
		return IsMixed, nil
	default:
		return Missing, errors.New("unable to parse truth state")
	}
}
