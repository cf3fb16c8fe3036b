package api

import (
	"encoding/json"
	"io"

	"net/http"
	"net/http/httptest"
	"testing"

	"concord/contexts"
	serviceInfo "concord/models/constants/service-info"
	concordanceMvc "concord/mvc/concordance"
	serviceInfoMvc "concord/mvc/service-info"
	concordanceService "concord/services/concordance"
	"concord/tests/common"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func TestConcordanceEndpoints(t *testing.T) {
	cfg := common.InitConfig()

	cz, czErr := concordanceService.NewConcordanceService(cfg)
	assert.NoError(t, czErr)

	setUpEcho := func(method string, path string) (*contexts.ConcordContext, *httptest.ResponseRecorder) {
		e := echo.New()
		req := httptest.NewRequest(method, path, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		gc := &contexts.ConcordContext{
			Context:            c,
			Es7Client:          nil, // todo mockup
			Config:             cfg,
			ConcordanceService: cz,
			AssessmentService:  nil,
		}
		return gc, rec
	}

	getJsonBody := func(rec *httptest.ResponseRecorder) map[string]interface{} {
		// - extract body bytes from response
		body, _ := io.ReadAll(rec.Body)
		// - unmarshal or decode the JSON to a declared empty interface.
		var bodyJson map[string]interface{}
		json.Unmarshal(body, &bodyJson)

		return bodyJson
	}

	t.Run("should return 200 status ok and the service identity", func(t *testing.T) {
		//set up
		gc, rec := setUpEcho(http.MethodGet, "/service-info")

		// perform
		serviceInfoMvc.GetServiceInfo(gc)

		// verify response status
		assert.Equal(t, http.StatusOK, rec.Code)

		// verify body
		json := getJsonBody(rec)

		assert.Equal(t, json["id"].(string), string(serviceInfo.SERVICE_ID))
		assert.Equal(t, json["name"].(string), string(serviceInfo.SERVICE_NAME))
		assert.Equal(t, json["description"].(string), string(serviceInfo.SERVICE_DESCRIPTION))
	})

	t.Run("should return the full scheme overview", func(t *testing.T) {
		//set up
		gc, rec := setUpEcho(http.MethodGet, "/schemes/overview")

		// perform
		concordanceMvc.GetSchemeOverview(gc)

		// verify response status
		assert.Equal(t, http.StatusOK, rec.Code)

		// verify body
		json := getJsonBody(rec)

		// - one column per truth state, one row per call state
		assert.Equal(t, 11, len(json["truthStates"].([]interface{})))
		assert.Equal(t, 17, len(json["rows"].([]interface{})))
	})

	t.Run("should reject an unknown scheme policy", func(t *testing.T) {
		//set up
		gc, rec := setUpEcho(http.MethodGet, "/schemes/overview?policy=NOT_A_POLICY")

		// perform
		concordanceMvc.GetSchemeOverview(gc)

		// verify response status
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should render a single scheme cell", func(t *testing.T) {
		//set up
		gc, rec := setUpEcho(http.MethodGet, "/schemes/cell?truthState=HOM_REF&callState=HET_REF_VAR1")

		// perform
		concordanceMvc.GetSchemeCell(gc)

		// verify response status
		assert.Equal(t, http.StatusOK, rec.Code)

		// verify body
		json := getJsonBody(rec)

		assert.Equal(t, "HOM_REF", json["truthState"].(string))
		assert.Equal(t, "HET_REF_VAR1", json["callState"].(string))
		assert.Equal(t, "FP,TN", json["rendered"].(string))
	})
}
