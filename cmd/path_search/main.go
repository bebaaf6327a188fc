package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-path-search/api"
	"github.com/gcbaptista/go-path-search/internal/analytics"
	"github.com/gcbaptista/go-path-search/internal/engine"
)

func main() {
	// Define command-line flags
	var (
		help    = flag.Bool("help", false, "Show help message")
		version = flag.Bool("version", false, "Show version information")
		port    = flag.String("port", "8080", "Port to run the server on")
		dataDir = flag.String("data-dir", "./path_data", "Directory to store index data")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Go Path Search - A fuzzy file path search service\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                          # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000              # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --data-dir /tmp/paths    # Use custom data directory\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Go Path Search v1.0.0\n")
		fmt.Printf("Fragment-based fuzzy matching over filesystem paths\n")
		return
	}

	// Initialize the path search engine
	log.Printf("Using data directory: %s", *dataDir)
	pathEngine := engine.NewEngine(*dataDir)
	defer pathEngine.Close()

	analyticsService := analytics.NewService(pathEngine, *dataDir)

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	api.SetupRoutes(router, pathEngine, analyticsService)

	// Start the server
	log.Printf("Starting server on port %s...", *port)
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
