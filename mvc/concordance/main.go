package concordance

import (
	"fmt"
	"net/http"
	"time"

	"concord/contexts"
	"concord/models/assessment"
	callState "concord/models/constants/call-state"
	contingencyState "concord/models/constants/contingency-state"
	schemePolicy "concord/models/constants/scheme-policy"
	truthState "concord/models/constants/truth-state"
	"concord/models/dtos"
	"concord/models/dtos/errors"
	"concord/models/indexes"
	"concord/mvc"
	esRepo "concord/repositories/elasticsearch"
	concordanceService "concord/services/concordance"

	"github.com/google/uuid"
	"github.com/labstack/echo"
	"github.com/mitchellh/mapstructure"
)

func GetSchemeOverview(c echo.Context) error {
	fmt.Printf("[%s] - GetSchemeOverview hit!\n", time.Now())
	gc := c.(*contexts.ConcordContext)

	scheme := gc.ConcordanceService.ActiveScheme()

	// an explicit `policy` query parameter overrides the configured scheme
	if policyQP := c.QueryParam("policy"); len(policyQP) > 0 {
		policy, policyErr := schemePolicy.CastToSchemePolicy(policyQP)
		if policyErr != nil {
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(fmt.Sprintf("unknown scheme policy '%s'", policyQP)))
		}
		scheme, _ = gc.ConcordanceService.Scheme(policy)
	}

	overview := dtos.SchemeOverviewDTO{
		Policy:    string(scheme.Policy),
		Validated: scheme.IsValidated(),
	}
	for _, truth := range truthState.Values() {
		overview.TruthStates = append(overview.TruthStates, truthState.TruthStateToString(truth))
	}
	for _, call := range callState.Values() {
		row := dtos.SchemeRowDTO{CallState: callState.CallStateToString(call)}
		for _, truth := range truthState.Values() {
			row.Cells = append(row.Cells, scheme.Render(truth, call))
		}
		overview.Rows = append(overview.Rows, row)
	}

	return c.JSON(http.StatusOK, overview)
}

func GetSchemeCell(c echo.Context) error {
	fmt.Printf("[%s] - GetSchemeCell hit!\n", time.Now())
	gc := c.(*contexts.ConcordContext)

	truth, call := mvc.RetrieveStatePair(c)

	scheme := gc.ConcordanceService.ActiveScheme()
	sequence, found := scheme.Lookup(truth, call)
	if !found {
		// unreachable once the scheme has been validated
		return c.JSON(http.StatusNotFound, errors.CreateSimpleNotFound(
			fmt.Sprintf("no contingency sequence for tuple [%s, %s]",
				truthState.TruthStateToString(truth), callState.CallStateToString(call))))
	}

	outcomes := make([]string, len(sequence))
	for i, outcome := range sequence {
		outcomes[i] = contingencyState.ContingencyStateToString(outcome)
	}

	return c.JSON(http.StatusOK, dtos.SchemeCellDTO{
		TruthState: truthState.TruthStateToString(truth),
		CallState:  callState.CallStateToString(call),
		Outcomes:   outcomes,
		Rendered:   scheme.Render(truth, call),
	})
}

func AssessmentsRun(c echo.Context) error {
	fmt.Printf("[%s] - AssessmentsRun hit!\n", time.Now())
	gc := c.(*contexts.ConcordContext)

	var runRequest assessment.AssessmentRunRequestDTO
	if bindErr := c.Bind(&runRequest); bindErr != nil {
		return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("unable to parse assessment request body"))
	}
	if len(runRequest.Sites) == 0 {
		return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("no sites provided"))
	}

	request := &assessment.AssessmentRequest{
		Id:        uuid.New(),
		Name:      runRequest.Name,
		State:     assessment.Queued,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	gc.AssessmentService.AssessmentRequestChan <- request

	go gc.AssessmentService.RunAssessment(gc.ConcordanceService, request, runRequest.Sites)

	return c.JSON(http.StatusOK, assessment.AssessmentResponseDTO{
		Id:      request.Id,
		Name:    request.Name,
		State:   request.State,
		Message: "Assessment run queued",
	})
}

func GetAllAssessmentRequests(c echo.Context) error {
	fmt.Printf("[%s] - GetAllAssessmentRequests hit!\n", time.Now())
	az := c.(*contexts.ConcordContext).AssessmentService

	az.AssessmentRequestMapMux.RLock()
	requests := make([]*assessment.AssessmentRequest, 0, len(az.AssessmentRequestMap))
	for _, request := range az.AssessmentRequestMap {
		requests = append(requests, request)
	}
	az.AssessmentRequestMapMux.RUnlock()

	return c.JSON(http.StatusOK, requests)
}

func GetConcordanceSummary(c echo.Context) error {
	fmt.Printf("[%s] - GetConcordanceSummary hit!\n", time.Now())
	gc := c.(*contexts.ConcordContext)

	runId := c.QueryParam("runId")
	if len(runId) == 0 {
		return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("missing 'runId' query parameter"))
	}

	bucketCounts, bucketsErr := esRepo.GetContingencyBucketsByRunId(gc.Config, gc.Es7Client, runId)
	if bucketsErr != nil {
		return c.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError("Something went wrong. Please contact the administrator!"))
	}

	counts := dtos.ConcordanceCounts{
		TruePositives:  bucketCounts["TP"],
		FalsePositives: bucketCounts["FP"],
		TrueNegatives:  bucketCounts["TN"],
		FalseNegatives: bucketCounts["FN"],
	}

	return c.JSON(http.StatusOK, concordanceService.ComputeSummary(runId, counts))
}

func GetSiteOutcomes(c echo.Context) error {
	fmt.Printf("[%s] - GetSiteOutcomes hit!\n", time.Now())
	gc := c.(*contexts.ConcordContext)

	runId := c.QueryParam("runId")
	if len(runId) == 0 {
		return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("missing 'runId' query parameter"))
	}

	result, searchErr := esRepo.GetSiteOutcomesByRunId(gc.Config, gc.Es7Client, runId, 10000)
	if searchErr != nil {
		return c.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError("Something went wrong. Please contact the administrator!"))
	}

	// gather data from "hits"
	hits, hitsOk := result["hits"].(map[string]interface{})
	if !hitsOk {
		return c.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError("unexpected response shape from the outcome index"))
	}

	allDocHits := []map[string]interface{}{}
	mapstructure.Decode(hits["hits"], &allDocHits)

	siteOutcomes := []indexes.SiteOutcome{}
	for _, docHit := range allDocHits {
		var siteOutcome indexes.SiteOutcome
		if decodeErr := mapstructure.Decode(docHit["_source"], &siteOutcome); decodeErr == nil {
			siteOutcomes = append(siteOutcomes, siteOutcome)
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"runId":   runId,
		"count":   len(siteOutcomes),
		"results": siteOutcomes,
	})
}
