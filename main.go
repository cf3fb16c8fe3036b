package main

import (
	"concord/contexts"
	gam "concord/middleware"
	"concord/models"
	serviceInfo "concord/models/constants/service-info"
	concordanceMvc "concord/mvc/concordance"
	serviceInfoMvc "concord/mvc/service-info"
	esRepo "concord/repositories/elasticsearch"
	assessmentService "concord/services/assessment"
	concordanceService "concord/services/concordance"
	sanitationService "concord/services/sanitation"
	"concord/utils"
	"time"

	"fmt"
	"net/http"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n\n"+

		"\tScheme Missing-As-No-Call : %t \n"+
		"\tBulk Indexing Cap : %d\n"+
		"\tSite Processing Concurrency Level : %d\n"+
		"\tRequest Retention Days : %d\n"+
		"\tElasticsearch Url : %s \n"+
		"\tElasticsearch Username : %s\n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.Concordance.MissingAsNoCall,
		cfg.Concordance.BulkIndexingCap,
		cfg.Concordance.SiteProcessingConcurrencyLevel,
		cfg.Concordance.RequestRetentionDays,
		cfg.Elasticsearch.Url, cfg.Elasticsearch.Username,
		cfg.Api.Port)
	// --

	// Instantiate Server
	e := echo.New()

	// Service Connections:
	// -- Elasticsearch
	es := utils.CreateEsConnection(&cfg)
	if indexErr := esRepo.CreateSiteOutcomesIndex(&cfg, es); indexErr != nil {
		fmt.Printf("Failed to ensure outcome index : %s\n", indexErr)
	}

	// Service Singletons
	// -- both scheme variants are built and validated here, before any
	//    route can observe them
	cz, czErr := concordanceService.NewConcordanceService(&cfg)
	if czErr != nil {
		fmt.Println(czErr)
		os.Exit(2)
	}
	az := assessmentService.NewAssessmentService(es, &cfg)
	ss := sanitationService.NewSanitationService(es, &cfg)
	ss.Init(az)

	// Configure Server
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
	}))

	// -- Override handlers with "custom Concord" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.ConcordContext{
				Context:            c,
				Es7Client:          es,
				Config:             &cfg,
				ConcordanceService: cz,
				AssessmentService:  az,
			}
			return h(cc)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		fmt.Printf("[%s] - Root hit!\n", time.Now())
		return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
	})

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Schemes
	e.GET("/schemes/overview", concordanceMvc.GetSchemeOverview)
	e.GET("/schemes/cell", concordanceMvc.GetSchemeCell,
		// middleware
		gam.MandateTruthStateAttribute,
		gam.MandateCallStateAttribute)

	// -- Concordance
	e.POST("/concordance/assessments/run", concordanceMvc.AssessmentsRun)
	e.GET("/concordance/assessments/requests", concordanceMvc.GetAllAssessmentRequests)
	e.GET("/concordance/summary", concordanceMvc.GetConcordanceSummary)
	e.GET("/concordance/outcomes", concordanceMvc.GetSiteOutcomes)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}
