package middleware

import (
	"fmt"
	"net/http"

	callState "concord/models/constants/call-state"
	truthState "concord/models/constants/truth-state"

	"github.com/labstack/echo"
)

/*
	Echo middleware to ensure a valid `truthState` HTTP query parameter was provided
*/
func MandateTruthStateAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// check for truthState query parameter
		truthStateQP := c.QueryParam("truthState")
		if len(truthStateQP) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Missing 'truthState' query parameter for querying!")
		}

		// verify:
		if _, castErr := truthState.CastToTruthState(truthStateQP); castErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid 'truthState' query parameter '%s'! Check your input", truthStateQP))
		}

		return next(c)
	}
}

/*
	Echo middleware to ensure a valid `callState` HTTP query parameter was provided
*/
func MandateCallStateAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// check for callState query parameter
		callStateQP := c.QueryParam("callState")
		if len(callStateQP) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Missing 'callState' query parameter for querying!")
		}

		// verify:
		if _, castErr := callState.CastToCallState(callStateQP); castErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid 'callState' query parameter '%s'! Check your input", callStateQP))
		}

		return next(c)
	}
}
