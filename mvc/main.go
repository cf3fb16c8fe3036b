package mvc

import (
	"concord/models/constants"
	callState "concord/models/constants/call-state"
	truthState "concord/models/constants/truth-state"

	"github.com/labstack/echo"
)

// RetrieveStatePair parses the truthState/callState query parameters shared
// by the scheme endpoints. Both parameters are pre-validated by the
// state-mandating middleware, so parse failures here fall back to the zero
// states rather than erroring twice.
func RetrieveStatePair(c echo.Context) (constants.TruthState, constants.CallState) {
	truth, _ := truthState.CastToTruthState(c.QueryParam("truthState"))
	call, _ := callState.CastToCallState(c.QueryParam("callState"))

	return truth, call
}
