package contexts

import (
	"concord/models"
	assessmentService "concord/services/assessment"
	concordanceService "concord/services/concordance"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  an elasticsearch client and the service singletons
	ConcordContext struct {
		echo.Context
		Es7Client          *es7.Client
		Config             *models.Config
		ConcordanceService *concordanceService.ConcordanceService
		AssessmentService  *assessmentService.AssessmentService
	}
)
