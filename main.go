package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"popdiff/api/contexts"
	pdm "popdiff/api/middleware"
	"popdiff/api/models"
	serviceInfo "popdiff/api/models/constants/service-info"
	fstMvc "popdiff/api/mvc/fst"
	populationsMvc "popdiff/api/mvc/populations"
	serviceInfoMvc "popdiff/api/mvc/service-info"
	workflowsMvc "popdiff/api/mvc/workflows"
	"popdiff/api/services"
	"popdiff/api/services/sanitation"
	"popdiff/api/utils"

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

		"\tDebug : %t \n"+
		"\tService Version : %s \n\n"+

		"\tDatabase Driver : %s \n"+
		"\tDatabase Path : %s \n"+
		"\tDatabase Connect Retries : %d \n\n"+

		"\tHeatmap Directory : %s \n"+
		"\tResults File : %s/%s \n"+
		"\tArtifact Sanitation Enabled : %t (every %dh, max age %dh)\n\n"+

		"Running on Port : %s\n",

		cfg.Debug, cfg.SemVer,
		cfg.Database.Driver, cfg.Database.Path, cfg.Database.ConnectRetries,
		cfg.Artifacts.HeatmapDirectory,
		cfg.Artifacts.ResultsDirectory, cfg.Artifacts.ResultsFileName,
		cfg.Artifacts.SanitationEnabled, cfg.Artifacts.SanitationIntervalHours, cfg.Artifacts.MaxAgeHours,
		cfg.Api.Port)
	// --

	// Instantiate Server
	e := echo.New()

	// Service Connections:
	// -- Database (fail fast on a bad path or driver)
	db, err := utils.CreateDbConnection(&cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	db.Close()

	// Service Singletons
	az := services.NewAnalysisService(&cfg)
	sanitation.NewSanitationService(&cfg)

	// Configure Server
	if cfg.Debug {
		e.Use(middleware.Logger())
	}
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST},
	}))

	// -- Override handlers with "custom PopDiff" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.PopDiffContext{
				Context:         c,
				Config:          &cfg,
				AnalysisService: az,
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

	// -- Static heatmaps
	e.Static(fstMvc.HeatmapStaticPrefix, cfg.Artifacts.HeatmapDirectory)

	// -- Populations
	e.GET("/populations/overview", populationsMvc.GetPopulationsOverview)

	// -- FST
	e.GET("/fst/counts", fstMvc.GetCountFstByGene,
		// middleware
		pdm.AssignRequestId,
		pdm.MandateGeneAttribute,
		pdm.MandatePopulationsAttribute)
	e.GET("/fst/heterozygosity", fstMvc.GetHeterozygosityFstByGene,
		// middleware
		pdm.AssignRequestId,
		pdm.MandateGeneAttribute,
		pdm.MandatePopulationsAttribute,
		pdm.MandatePopulationPair)
	e.POST("/fst/heterozygosity", fstMvc.PostHeterozygosityFst,
		// middleware
		pdm.AssignRequestId)
	e.GET("/fst/results/download", fstMvc.DownloadResults)

	// -- Workflows
	e.GET("/workflows", workflowsMvc.WorkflowsGet)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}
