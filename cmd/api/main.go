package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Dattibou/Strommarkt-Analyse/internal/api/handlers"
	"github.com/Dattibou/Strommarkt-Analyse/internal/api/middleware"
	"github.com/Dattibou/Strommarkt-Analyse/internal/config"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	datasetHandler := handlers.NewDatasetHandler(cfg)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/merged", datasetHandler.GetMerged)
		api.GET("/merged/csv", datasetHandler.DownloadMerged)
		api.GET("/weeks", datasetHandler.ListWeeks)
	}

	addr := fmt.Sprintf(":%s", cfg.API.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
