package schemes

import (
	"fmt"
	"strings"

	"concord/models/constants"
	callState "concord/models/constants/call-state"
	contingencyState "concord/models/constants/contingency-state"
	truthState "concord/models/constants/truth-state"
)

type (
	// TruthAndCallStates addresses a single cell of a concordance scheme.
	// Two keys are equal iff both components are equal.
	TruthAndCallStates struct {
		TruthState constants.TruthState
		CallState  constants.CallState
	}

	// ContingencySequence is the ordered set of contingency-table entries a
	// single truth/call comparison contributes to. Order matters for string
	// rendering only, not for set membership.
	ContingencySequence []constants.ContingencyState

	// Scheme defines, for each valid truth/call state tuple, the set of
	// contingency table entries to which the tuple should contribute.
	// Lifecycle: constructed, populated row by row, validated, then read-only.
	Scheme struct {
		Policy constants.SchemePolicy

		scheme    map[TruthAndCallStates]ContingencySequence
		validated bool
	}
)

// SchemeDefinitionError reports a defect in a scheme's population code, such
// as a row with the wrong number of columns. Never triggered by runtime input.
type SchemeDefinitionError struct {
	Message string
}

func (e *SchemeDefinitionError) Error() string {
	return e.Message
}

// SchemeValidationError names the first truth/call tuple found to have no
// stored sequence during validation.
type SchemeValidationError struct {
	TruthState constants.TruthState
	CallState  constants.CallState
}

func (e *SchemeValidationError) Error() string {
	return fmt.Sprintf("missing scheme tuple: [%s, %s]",
		truthState.TruthStateToString(e.TruthState),
		callState.CallStateToString(e.CallState))
}

func New(policy constants.SchemePolicy) *Scheme {
	return &Scheme{
		Policy: policy,
		scheme: map[TruthAndCallStates]ContingencySequence{},
	}
}

// AddRow stores one contingency sequence per truth state for the given call
// state. Sequences are positional and must follow the canonical truth-state
// column order (see truthState.Values).
func (s *Scheme) AddRow(call constants.CallState, columns ...ContingencySequence) error {
	truthStates := truthState.Values()
	if len(columns) != len(truthStates) {
		return &SchemeDefinitionError{
			Message: fmt.Sprintf("row %s supplies %d contingency sequences for %d truth states",
				callState.CallStateToString(call), len(columns), len(truthStates)),
		}
	}

	for i, truth := range truthStates {
		s.scheme[TruthAndCallStates{TruthState: truth, CallState: call}] = columns[i]
	}

	return nil
}

// Lookup returns the contingency sequence stored for the given tuple.
func (s *Scheme) Lookup(truth constants.TruthState, call constants.CallState) (ContingencySequence, bool) {
	sequence, found := s.scheme[TruthAndCallStates{TruthState: truth, CallState: call}]
	return sequence, found
}

// Render returns the stored sequence as a parse-able string: the literal
// "EMPTY" for the empty sentinel, otherwise the outcome names comma-joined
// in stored order (e.g. "TP,FN").
func (s *Scheme) Render(truth constants.TruthState, call constants.CallState) string {
	sequence, found := s.Lookup(truth, call)
	if !found {
		return ""
	}
	if len(sequence) == 0 {
		return "EMPTY"
	}

	names := make([]string, len(sequence))
	for i, outcome := range sequence {
		names[i] = contingencyState.ContingencyStateToString(outcome)
	}

	return strings.Join(names, ",")
}

// AsSet collapses a contingency sequence into its distinct outcomes.
// Well-formed rows are already distinct, but this does not assume so.
func AsSet(sequence ContingencySequence) map[constants.ContingencyState]bool {
	set := map[constants.ContingencyState]bool{}
	for _, outcome := range sequence {
		set[outcome] = true
	}
	return set
}

// Validate checks that every cell of the full truth-by-call cross product has
// a stored sequence, and reports the first gap found. Validation is a pure
// read over the table; the validated flag only short-circuits repeat calls
// and is not a lock.
func (s *Scheme) Validate() error {
	if s.validated {
		return nil
	}

	for _, truth := range truthState.Values() {
		for _, call := range callState.Values() {
			if _, found := s.scheme[TruthAndCallStates{TruthState: truth, CallState: call}]; !found {
				return &SchemeValidationError{TruthState: truth, CallState: call}
			}
		}
	}

	s.validated = true
	return nil
}

func (s *Scheme) IsValidated() bool {
	return s.validated
}
