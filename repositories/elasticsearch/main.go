package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"concord/models"
	"concord/models/indexes"
	"concord/utils"

	"github.com/Jeffail/gabs"
	"github.com/elastic/go-elasticsearch/v7"
)

const siteOutcomesIndex = "site_outcomes"

// CreateSiteOutcomesIndex ensures the outcome index exists with the expected
// mapping. Safe to call on every startup.
func CreateSiteOutcomesIndex(cfg *models.Config, es *elasticsearch.Client) error {
	existsRes, existsErr := es.Indices.Exists([]string{siteOutcomesIndex})
	if existsErr != nil {
		return existsErr
	}
	defer existsRes.Body.Close()
	if existsRes.StatusCode == 200 {
		return nil
	}

	var buf bytes.Buffer
	body := map[string]interface{}{
		"mappings": indexes.SITE_OUTCOME_INDEX_MAPPING,
	}
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		log.Fatalf("Error encoding index mapping: %s\n", err)
	}

	createRes, createErr := es.Indices.Create(
		siteOutcomesIndex,
		es.Indices.Create.WithBody(&buf),
	)
	if createErr != nil {
		fmt.Printf("Error getting response: %s\n", createErr)
		return createErr
	}
	defer createRes.Body.Close()

	if cfg.Debug {
		fmt.Println(createRes.String())
	}

	return nil
}

func GetSiteOutcomesByRunId(cfg *models.Config, es *elasticsearch.Client, runId string, size int) (map[string]interface{}, error) {

	// begin building the request body.
	var buf bytes.Buffer
	query := map[string]interface{}{
		"size": size,
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"runId": map[string]interface{}{
					"query": runId,
				},
			},
		},
	}

	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		log.Fatalf("Error encoding query: %s\n", query)
	}

	if cfg.Debug {
		// view the outbound elasticsearch query
		myString := string(buf.Bytes()[:])
		fmt.Println(myString)
	}

	res, searchErr := es.Search(
		es.Search.WithContext(context.Background()),
		es.Search.WithIndex(siteOutcomesIndex),
		es.Search.WithBody(&buf),
		es.Search.WithTrackTotalHits(true),
		es.Search.WithPretty(),
	)
	if searchErr != nil {
		fmt.Printf("Error getting response: %s\n", searchErr)
		return nil, searchErr
	}

	defer res.Body.Close()

	resultString := res.String()
	if cfg.Debug {
		fmt.Println(resultString)
	}

	// Prepare an empty interface
	result := make(map[string]interface{})

	// Unmarshal or Decode the JSON to the empty interface.
	// Known bug: response comes back with a preceding '[200 OK] ' which needs trimming
	bracketString, jsonBodyString := utils.GetLeadingStringInBetweenSquareBrackets(resultString)
	if !strings.Contains(bracketString, "200") {
		return nil, fmt.Errorf("failed to get site outcomes by run id : got '%s'", bracketString)
	}
	umErr := json.Unmarshal([]byte(jsonBodyString), &result)
	if umErr != nil {
		fmt.Printf("Error unmarshalling site outcomes response: %s\n", umErr)
		return nil, umErr
	}

	return result, nil
}

// GetContingencyBucketsByRunId aggregates the indexed outcome tokens of one
// assessment run into per-contingency document counts (e.g. "TP" -> 42).
func GetContingencyBucketsByRunId(cfg *models.Config, es *elasticsearch.Client, runId string) (map[string]int, error) {

	var buf bytes.Buffer
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"runId": map[string]interface{}{
					"query": runId,
				},
			},
		},
		"aggs": map[string]interface{}{
			"outcomes": map[string]interface{}{
				"terms": map[string]interface{}{
					"field": "outcomes.keyword",
				},
			},
		},
	}

	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		log.Fatalf("Error encoding query: %s\n", query)
	}

	res, searchErr := es.Search(
		es.Search.WithContext(context.Background()),
		es.Search.WithIndex(siteOutcomesIndex),
		es.Search.WithBody(&buf),
		es.Search.WithTrackTotalHits(true),
	)
	if searchErr != nil {
		fmt.Printf("Error getting response: %s\n", searchErr)
		return nil, searchErr
	}

	defer res.Body.Close()

	resultString := res.String()
	if cfg.Debug {
		fmt.Println(resultString)
	}

	bracketString, jsonBodyString := utils.GetLeadingStringInBetweenSquareBrackets(resultString)
	if !strings.Contains(bracketString, "200") {
		return nil, fmt.Errorf("failed to aggregate contingency buckets : got '%s'", bracketString)
	}

	jsonParsed, parseErr := gabs.ParseJSON([]byte(jsonBodyString))
	if parseErr != nil {
		fmt.Printf("Parsing error: %s\n", parseErr)
		return nil, parseErr
	}

	bucketCounts := map[string]int{}
	buckets, bucketsErr := jsonParsed.Path("aggregations.outcomes.buckets").Children()
	if bucketsErr != nil {
		return nil, bucketsErr
	}
	for _, bucket := range buckets {
		key := fmt.Sprint(bucket.Path("key").Data())
		docCount, countOk := bucket.Path("doc_count").Data().(float64)
		if !countOk {
			continue
		}
		bucketCounts[key] = int(docCount)
	}

	return bucketCounts, nil
}

// GetDistinctRunIds lists the run ids currently present in the outcome index.
func GetDistinctRunIds(cfg *models.Config, es *elasticsearch.Client) ([]string, error) {

	var buf bytes.Buffer
	query := map[string]interface{}{
		"size": 0,
		"aggs": map[string]interface{}{
			"runs": map[string]interface{}{
				"terms": map[string]interface{}{
					"field": "runId.keyword",
					"size":  10000,
				},
			},
		},
	}

	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		log.Fatalf("Error encoding query: %s\n", query)
	}

	res, searchErr := es.Search(
		es.Search.WithContext(context.Background()),
		es.Search.WithIndex(siteOutcomesIndex),
		es.Search.WithBody(&buf),
	)
	if searchErr != nil {
		fmt.Printf("Error getting response: %s\n", searchErr)
		return nil, searchErr
	}

	defer res.Body.Close()

	resultString := res.String()

	bracketString, jsonBodyString := utils.GetLeadingStringInBetweenSquareBrackets(resultString)
	if !strings.Contains(bracketString, "200") {
		return nil, fmt.Errorf("failed to list run ids : got '%s'", bracketString)
	}

	jsonParsed, parseErr := gabs.ParseJSON([]byte(jsonBodyString))
	if parseErr != nil {
		fmt.Printf("Parsing error: %s\n", parseErr)
		return nil, parseErr
	}

	runIds := []string{}
	buckets, bucketsErr := jsonParsed.Path("aggregations.runs.buckets").Children()
	if bucketsErr != nil {
		return nil, bucketsErr
	}
	for _, bucket := range buckets {
		runIds = append(runIds, fmt.Sprint(bucket.Path("key").Data()))
	}

	return runIds, nil
}

func DeleteSiteOutcomesByRunId(cfg *models.Config, es *elasticsearch.Client, runId string) (map[string]interface{}, error) {

	var buf bytes.Buffer
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"runId": runId,
			},
		},
	}

	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		log.Fatalf("Error encoding query: %s\n", query)
	}

	// Perform the delete request.
	deleteRes, deleteErr := es.DeleteByQuery(
		[]string{siteOutcomesIndex},
		bytes.NewReader(buf.Bytes()),
	)
	if deleteErr != nil {
		fmt.Printf("Error getting response: %s\n", deleteErr)
		return nil, deleteErr
	}

	defer deleteRes.Body.Close()

	resultString := deleteRes.String()
	if cfg.Debug {
		fmt.Println(resultString)
	}

	// Prepare an empty interface
	result := make(map[string]interface{})

	// Unmarshal or Decode the JSON to the empty interface.
	// Known bug: response comes back with a preceding '[200 OK] ' which needs trimming
	bracketString, jsonBodyString := utils.GetLeadingStringInBetweenSquareBrackets(resultString)
	if !strings.Contains(bracketString, "200") {
		return nil, fmt.Errorf("failed to delete site outcomes by run id : got '%s'", bracketString)
	}
	umErr := json.Unmarshal([]byte(jsonBodyString), &result)
	if umErr != nil {
		fmt.Printf("Error unmarshalling outcome deletion response: %s\n", umErr)
		return nil, umErr
	}

	return result, nil
}
