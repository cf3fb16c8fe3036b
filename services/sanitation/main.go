package sanitationService

import (
	"fmt"
	"time"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/go-co-op/gocron"

	"concord/models"
	"concord/models/assessment"
	esRepo "concord/repositories/elasticsearch"
	assessmentService "concord/services/assessment"
	"concord/utils"
)

type (
	SanitationService struct {
		Initialized bool
		Es7Client   *es7.Client
		Config      *models.Config
	}
)

func NewSanitationService(es *es7.Client, cfg *models.Config) *SanitationService {
	ss := &SanitationService{
		Initialized: false,
		Es7Client:   es,
		Config:      cfg,
	}

	return ss
}

// Init spins up a daily cron that keeps the system "sanitary":
//   - finished assessment requests older than the retention window are
//     dropped from the in-memory request map
//   - outcome documents whose run no longer has a request entry are
//     deleted from elasticsearch
func (ss *SanitationService) Init(az *assessmentService.AssessmentService) {
	if !ss.Initialized {
		go func() {
			// setup cron job
			s := gocron.NewScheduler(time.UTC)

			s.Every(1).Days().At("04:00:00").Do(func() {
				fmt.Printf("[%s] - Running assessment runs cleanup..\n", time.Now())

				retentionDays := ss.Config.Concordance.RequestRetentionDays
				if retentionDays <= 0 {
					retentionDays = 30
				}
				cutoff := time.Now().AddDate(0, 0, -retentionDays)

				// - drop finished requests that outlived the retention window
				az.AssessmentRequestMapMux.Lock()
				for id, request := range az.AssessmentRequestMap {
					if !utils.StringInSlice(string(request.State), []string{string(assessment.Done), string(assessment.Error)}) {
						continue
					}

					createdAt, parseErr := time.Parse(time.RFC3339, request.CreatedAt)
					if parseErr != nil || createdAt.After(cutoff) {
						continue
					}

					delete(az.AssessmentRequestMap, id)
					fmt.Printf("[%s] - Dropped stale assessment request %s\n", time.Now(), id)
				}
				az.AssessmentRequestMapMux.Unlock()

				// - get every run id still indexed
				runIds, runIdsError := esRepo.GetDistinctRunIds(ss.Config, ss.Es7Client)
				if runIdsError != nil {
					fmt.Printf("[%s] - Error getting run ids : %v..\n", time.Now(), runIdsError)
					return
				}

				// - delete outcome documents orphaned by the request cleanup
				for _, runId := range runIds {
					az.AssessmentRequestMapMux.RLock()
					_, stillTracked := az.AssessmentRequestMap[runId]
					az.AssessmentRequestMapMux.RUnlock()

					if stillTracked {
						continue
					}

					if _, deleteErr := esRepo.DeleteSiteOutcomesByRunId(ss.Config, ss.Es7Client, runId); deleteErr != nil {
						fmt.Printf("[%s] - Error deleting outcomes for run %s : %v..\n", time.Now(), runId, deleteErr)
						continue
					}
					fmt.Printf("[%s] - Deleted orphaned outcomes for run %s\n", time.Now(), runId)
				}
			})

			s.StartBlocking()
		}()

		ss.Initialized = true
	}
}
