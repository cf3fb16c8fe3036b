package schemePolicy

import (
	"concord/models/constants"
	"errors"
	"strings"
)

const (
	Unknown constants.SchemePolicy = ""

	// The GA4GH Benchmarking Work Group's proposed evaluation scheme
	GA4GH constants.SchemePolicy = "GA4GH"

	// Same scheme, except a missing truth genotype is treated like a no-call
	GA4GHMissingAsNoCall constants.SchemePolicy = "GA4GH_MISSING_AS_NO_CALL"
)

func Values() []constants.SchemePolicy {
	return []constants.SchemePolicy{GA4GH, GA4GHMissingAsNoCall}
}

func CastToSchemePolicy(text string) (constants.SchemePolicy, error) {
	switch strings.ToUpper(text) {
	case "GA4GH":
		return GA4GH, nil
	case "GA4GH_MISSING_AS_NO_CALL":
		return GA4GHMissingAsNoCall, nil
	default:
		return Unknown, errors.New("unable to parse scheme policy")
	}
}
