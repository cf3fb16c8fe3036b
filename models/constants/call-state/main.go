package callState

import (
	"concord/models/constants"
	"errors"
	"strings"
)

/*
	Call genotype categories. A superset in shape of the truth states: the
	callset under evaluation may report a third and fourth distinct allele
	at a site, which a normalized truthset never does. VAR2/VAR3 are symbolic,
	so there is no HET_VAR2_VAR3; that case folds into HET_VAR3_VAR4.
*/
const (
	Missing constants.CallState = iota
	HomRef
	HetRefVar1
	HetRefVar2
	HetRefVar3
	HetVar1Var2
	HetVar1Var3
	HetVar3Var4
	HomVar1
	HomVar2
	HomVar3
	NoCall
	LowGq
	LowDp
	VcFiltered
	GtFiltered
	IsMixed
)

// Values returns every call state, one scheme row each.
func Values() []constants.CallState {
	return []constants.CallState{
		Missing,
		HomRef,
		HetRefVar1,
		HetRefVar2,
		HetRefVar3,
		HetVar1Var2,
		HetVar1Var3,
		HetVar3Var4,
		HomVar1,
		HomVar2,
		HomVar3,
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

func CallStateToString(state constants.CallState) string {
	switch state {
	case Missing:
		return "MISSING"
	case HomRef:
		return "HOM_REF"
	case HetRefVar1:
		return "HET_REF_VAR1"
	case HetRefVar2:
		return "HET_REF_VAR2"
	case HetRefVar3:
		return "HET_REF_VAR3"
	case HetVar1Var2:
		return "HET_VAR1_VAR2"
	case HetVar1Var3:
		return "HET_VAR1_VAR3"
	case HetVar3Var4:
		return "HET_VAR3_VAR4"
	case HomVar1:
		return "HOM_VAR1"
	case HomVar2:
		return "HOM_VAR2"
	case HomVar3:
		return "HOM_VAR3"
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

func CastToCallState(text string) (constants.CallState, error) {
	switch strings.ToUpper(text) {
	case "MISSING":
		return Missing, nil
	case "HOM_REF":
		return HomRef, nil
	case "HET_REF_VAR1":
		return HetRefVar1, nil
	case "HET_REF_VAR2":
		return HetRefVar2, nil
	case "HET_REF_VAR3":
		return HetRefVar3, nil
	case "HET_VAR1_VAR2":
		return HetVar1Var2, nil
	case "HET_VAR1_VAR3":
		return HetVar1Var3, nil
	case "HET_VAR3_VAR4":
		return HetVar3Var4, nil
	case "HOM_VAR1":
		return HomVar1, nil
	case "HOM_VAR2":
		return HomVar2, nil
	case "HOM_VAR3":
		return HomVar3, nil
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
		return Missing, errors.New("unable to parse call state")
	}
}
