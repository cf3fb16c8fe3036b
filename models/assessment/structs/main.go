package structs

import (
	"sync"

	"concord/models/indexes"
)

type OutcomeIndexingQueueStructure struct {
	SiteOutcome *indexes.SiteOutcome
	WaitGroup   *sync.WaitGroup
}
