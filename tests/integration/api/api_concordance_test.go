package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"testing"
	"time"

	"concord/models"
	"concord/models/assessment"
	"concord/models/dtos"
	common "concord/tests/common"

	"github.com/stretchr/testify/assert"
)

func TestSchemeOverview(t *testing.T) {
	cfg := common.InitConfig()

	overview := common.GetSchemeOverview(t, cfg)

	assert.True(t, overview.Validated)
	assert.Equal(t, 11, len(overview.TruthStates))
	assert.Equal(t, 17, len(overview.Rows))
	for _, row := range overview.Rows {
		assert.Equal(t, len(overview.TruthStates), len(row.Cells))
	}
}

func TestSchemeCells(t *testing.T) {
	cfg := common.InitConfig()

	t.Run("well known tuples", func(t *testing.T) {
		homRefHet := common.GetSchemeCell("HOM_REF", "HET_REF_VAR1", false, t, cfg)
		assert.Equal(t, "FP,TN", homRefHet.Rendered)

		homVarMatch := common.GetSchemeCell("HOM_VAR1", "HOM_VAR1", false, t, cfg)
		assert.Equal(t, "TP", homVarMatch.Rendered)
	})

	t.Run("unknown state names are rejected up front", func(t *testing.T) {
		// the state-mandating middleware answers before the handler does
		respDto := common.GetSchemeCell("NOT_A_STATE", "HOM_REF", true, t, cfg)
		assert.Empty(t, respDto.Rendered)
	})
}

func TestAssessmentRoundTrip(t *testing.T) {
	cfg := common.InitConfig()

	runRequest := assessment.AssessmentRunRequestDTO{
		Name: "integration-round-trip",
		Sites: []assessment.GenotypeSite{
			{SampleId: "NA12878", Chrom: "1", Pos: 10177, TruthState: "HOM_VAR1", CallState: "HOM_VAR1"},
			{SampleId: "NA12878", Chrom: "1", Pos: 10352, TruthState: "HET_REF_VAR1", CallState: "HET_REF_VAR1"},
			{SampleId: "NA12878", Chrom: "2", Pos: 11012, TruthState: "HOM_REF", CallState: "HET_REF_VAR1"},
			{SampleId: "NA12878", Chrom: "2", Pos: 13110, TruthState: "HET_REF_VAR1", CallState: "NO_CALL"},
			{SampleId: "NA12878", Chrom: "3", Pos: 14464, TruthState: "HOM_REF", CallState: "HOM_REF"},
		},
	}

	//	-- queue the run
	requestBodyBytes, marshallErr := json.Marshal(runRequest)
	assert.Nil(t, marshallErr)

	url := fmt.Sprintf(common.AssessmentsRunPath, cfg.Api.Url)
	fmt.Printf("Calling %s\n", url)
	response, responseErr := http.Post(url, "application/json", bytes.NewReader(requestBodyBytes))
	assert.Nil(t, responseErr)

	defer response.Body.Close()

	shouldBe := 200
	assert.Equal(t, shouldBe, response.StatusCode, fmt.Sprintf("Error -- Api POST %s Status: %s ; Should be %d", url, response.Status, shouldBe))

	respBody, respBodyErr := ioutil.ReadAll(response.Body)
	assert.Nil(t, respBodyErr)

	var runResponse assessment.AssessmentResponseDTO
	jsonUnmarshallingError := json.Unmarshal(respBody, &runResponse)
	assert.Nil(t, jsonUnmarshallingError)
	assert.NotEmpty(t, runResponse.Id)

	//	-- poll the request list until the run settles
	runId := runResponse.Id.String()
	settled := false
	for attempt := 0; attempt < 30; attempt++ {
		requests := getAllAssessmentRequests(t, cfg)
		for _, request := range requests {
			if request.Id == runResponse.Id &&
				(request.State == assessment.Done || request.State == assessment.Error) {
				assert.Equal(t, assessment.State(assessment.Done), request.State)
				settled = true
			}
		}
		if settled {
			break
		}
		time.Sleep(1 * time.Second)
	}
	assert.True(t, settled, "assessment run never settled")

	//	-- verify the derived summary
	summaryUrl := fmt.Sprintf(common.ConcordanceSummaryPath, cfg.Api.Url, runId)
	fmt.Printf("Calling %s\n", summaryUrl)
	summaryResponse, summaryErr := http.Get(summaryUrl)
	assert.Nil(t, summaryErr)

	defer summaryResponse.Body.Close()
	assert.Equal(t, shouldBe, summaryResponse.StatusCode)

	summaryBody, summaryBodyErr := ioutil.ReadAll(summaryResponse.Body)
	assert.Nil(t, summaryBodyErr)

	var summary dtos.ConcordanceSummaryDTO
	summaryUnmarshallingError := json.Unmarshal(summaryBody, &summary)
	assert.Nil(t, summaryUnmarshallingError)

	assert.Equal(t, runId, summary.RunId)
	// 2 matching variant calls, 1 false positive site, 1 dropped call
	assert.Equal(t, 2, summary.Counts.TruePositives)
	assert.GreaterOrEqual(t, summary.Counts.FalsePositives, 1)
}

func getAllAssessmentRequests(_t *testing.T, _cfg *models.Config) []assessment.AssessmentRequest {
	url := fmt.Sprintf(common.AssessmentRequestsPath, _cfg.Api.Url)
	response, responseErr := http.Get(url)
	assert.Nil(_t, responseErr)

	defer response.Body.Close()

	respBody, respBodyErr := ioutil.ReadAll(response.Body)
	assert.Nil(_t, respBodyErr)

	var requests []assessment.AssessmentRequest
	jsonUnmarshallingError := json.Unmarshal(respBody, &requests)
	assert.Nil(_t, jsonUnmarshallingError)

	return requests
}
