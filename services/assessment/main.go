package assessmentService

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"concord/models"
	"concord/models/assessment"
	"concord/models/assessment/structs"
	callState "concord/models/constants/call-state"
	contingencyState "concord/models/constants/contingency-state"
	truthState "concord/models/constants/truth-state"
	"concord/models/indexes"
	"concord/models/schemes"
	concordanceService "concord/services/concordance"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esutil"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const siteOutcomesIndex = "site_outcomes"

type (
	AssessmentService struct {
		Initialized                    bool
		AssessmentRequestChan          chan *assessment.AssessmentRequest
		AssessmentRequestMap           map[string]*assessment.AssessmentRequest
		AssessmentRequestMapMux        sync.RWMutex
		OutcomeBulkIndexingCapacity    int
		OutcomeBulkIndexingQueue       chan *structs.OutcomeIndexingQueueStructure
		OutcomeBulkIndexer             esutil.BulkIndexer
		SiteProcessingConcurrencyLevel int
		ElasticsearchClient            *es7.Client
	}
)

func NewAssessmentService(es *es7.Client, cfg *models.Config) *AssessmentService {

	az := &AssessmentService{
		Initialized:                    false,
		AssessmentRequestChan:          make(chan *assessment.AssessmentRequest),
		AssessmentRequestMap:           map[string]*assessment.AssessmentRequest{},
		AssessmentRequestMapMux:        sync.RWMutex{},
		OutcomeBulkIndexingCapacity:    cfg.Concordance.BulkIndexingCap,
		OutcomeBulkIndexingQueue:       make(chan *structs.OutcomeIndexingQueueStructure, cfg.Concordance.BulkIndexingCap),
		SiteProcessingConcurrencyLevel: cfg.Concordance.SiteProcessingConcurrencyLevel,
		ElasticsearchClient:            es,
	}

	//see: https://www.elastic.co/blog/why-am-i-seeing-bulk-rejections-in-my-elasticsearch-cluster
	var numWorkers = az.OutcomeBulkIndexingCapacity / 100
	if numWorkers < 1 {
		numWorkers = 1
	}

	bi, _ := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:      siteOutcomesIndex,
		Client:     az.ElasticsearchClient,
		NumWorkers: numWorkers,
	})
	az.OutcomeBulkIndexer = bi

	az.Init()

	return az
}

func (a *AssessmentService) Init() {
	// safeguard to prevent multiple initilizations
	if !a.Initialized {
		// spin up a go routine acting as a listener for assessment
		// request updates and outcome bulk indexing
		go func() {
			for {
				select {
				case assessmentRequest := <-a.AssessmentRequestChan:
					if assessmentRequest.State == assessment.Queued {
						fmt.Printf("Queueing a new assessment request for %s\n", assessmentRequest.Name)
					}

					assessmentRequest.UpdatedAt = time.Now().String()
					a.AssessmentRequestMapMux.Lock()
					a.AssessmentRequestMap[assessmentRequest.Id.String()] = assessmentRequest
					a.AssessmentRequestMapMux.Unlock()

				case queuedOutcomeItem := <-a.OutcomeBulkIndexingQueue:

					queuedOutcome := queuedOutcomeItem.SiteOutcome
					wg := queuedOutcomeItem.WaitGroup

					// Prepare the data payload: encode the outcome document to JSON
					outcomeData, marshallErr := json.Marshal(queuedOutcome)
					if marshallErr != nil {
						log.Fatalf("Cannot encode site outcome %s: %s\n", queuedOutcome.Id, marshallErr)
					}

					// Add an item to the BulkIndexer
					marshallErr = a.OutcomeBulkIndexer.Add(
						context.Background(),
						esutil.BulkIndexerItem{
							// Action field configures the operation to perform (index, create, delete, update)
							Action: "index",
							Index:  siteOutcomesIndex,

							// Body is an `io.Reader` with the payload
							Body: bytes.NewReader(outcomeData),

							// OnSuccess is called for each successful operation
							OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
								defer wg.Done()
							},

							// OnFailure is called for each failed operation
							OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
								defer wg.Done()
								if err != nil {
									fmt.Printf("ERROR: %s", err)
								} else {
									fmt.Printf("ERROR: %s: %s", res.Error.Type, res.Error.Reason)
								}
							},
						},
					)
					if marshallErr != nil {
						fmt.Printf("Unexpected error: %s", marshallErr)
						wg.Done()
					}
				}
			}
		}()

		a.Initialized = true
	}
}

// RunAssessment classifies every site of a queued request under the active
// scheme, accumulates the contingency counts, and bulk-indexes one outcome
// document per site. Intended to be run in its own goroutine per request.
func (a *AssessmentService) RunAssessment(cz *concordanceService.ConcordanceService, request *assessment.AssessmentRequest, sites []assessment.GenotypeSite) {
	fmt.Printf("[%s] - Assessment run %s started : %d sites\n", time.Now(), request.Id, len(sites))

	request.State = assessment.Running
	a.AssessmentRequestChan <- request

	var (
		indexingWaitGroup sync.WaitGroup
		sequencesMux      sync.Mutex
		sequences         = make([]schemes.ContingencySequence, 0, len(sites))
	)

	g := new(errgroup.Group)
	if a.SiteProcessingConcurrencyLevel > 0 {
		g.SetLimit(a.SiteProcessingConcurrencyLevel)
	}

	for _, site := range sites {
		site := site
		g.Go(func() error {
			truth, truthErr := truthState.CastToTruthState(site.TruthState)
			if truthErr != nil {
				return fmt.Errorf("site %s:%d : %s '%s'", site.Chrom, site.Pos, truthErr, site.TruthState)
			}
			call, callErr := callState.CastToCallState(site.CallState)
			if callErr != nil {
				return fmt.Errorf("site %s:%d : %s '%s'", site.Chrom, site.Pos, callErr, site.CallState)
			}

			sequence, classifyErr := cz.Classify(truth, call)
			if classifyErr != nil {
				return fmt.Errorf("site %s:%d : %s", site.Chrom, site.Pos, classifyErr)
			}

			sequencesMux.Lock()
			sequences = append(sequences, sequence)
			sequencesMux.Unlock()

			outcomes := make([]string, len(sequence))
			for i, outcome := range sequence {
				outcomes[i] = contingencyState.ContingencyStateToString(outcome)
			}

			indexingWaitGroup.Add(1)
			a.OutcomeBulkIndexingQueue <- &structs.OutcomeIndexingQueueStructure{
				SiteOutcome: &indexes.SiteOutcome{
					Id:         uuid.New().String(),
					RunId:      request.Id.String(),
					SampleId:   site.SampleId,
					Chrom:      site.Chrom,
					Pos:        site.Pos,
					TruthState: truthState.TruthStateToString(truth),
					CallState:  callState.CallStateToString(call),
					Outcomes:   outcomes,
					CreatedAt:  time.Now().Format(time.RFC3339),
				},
				WaitGroup: &indexingWaitGroup,
			}

			return nil
		})
	}

	if runErr := g.Wait(); runErr != nil {
		fmt.Printf("[%s] - Assessment run %s failed : %s\n", time.Now(), request.Id, runErr)

		request.State = assessment.Error
		request.Message = runErr.Error()
		a.AssessmentRequestChan <- request
		return
	}

	// wait for the bulk indexer to flush every queued outcome
	indexingWaitGroup.Wait()

	counts := concordanceService.CountOutcomes(sequences)
	request.Counts = &counts
	request.State = assessment.Done
	request.Message = fmt.Sprintf("%d sites classified", len(sites))
	a.AssessmentRequestChan <- request

	fmt.Printf("[%s] - Assessment run %s done\n", time.Now(), request.Id)
}
