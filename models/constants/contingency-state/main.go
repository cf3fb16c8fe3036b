package contingencyState

import (
	"concord/models/constants"
)

/*
	Contingency table outcomes. EMPTY marks a tuple that contributes nothing
	countable; NA marks a tuple upstream normalization can never produce, so
	observing one at query time is a defect in the caller, not in the scheme.
*/
const (
	TP constants.ContingencyState = iota
	FP
	TN
	FN
	Empty
	NA
)

func Values() []constants.ContingencyState {
	return []constants.ContingencyState{TP, FP, TN, FN, Empty, NA}
}

func ContingencyStateToString(state constants.ContingencyState) string {
	switch state {
	case TP:
		return "TP"
	case FP:
		return "FP"
	case TN:
		return "TN"
	case FN:
		return "FN"
	case Empty:
		return "EMPTY"
	case NA:
		return "NA"
	default:
		return "UNKNOWN"
	}
}
