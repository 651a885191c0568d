package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gcbaptista/go-babi-prep/api"
	"github.com/gcbaptista/go-babi-prep/internal/engine"
	"github.com/gin-gonic/gin"
)

func main() {
	// Define command-line flags
	var (
		help    = flag.Bool("help", false, "Show help message")
		version = flag.Bool("version", false, "Show version information")
		port    = flag.String("port", "8080", "Port to run the server on")
		dataDir = flag.String("data-dir", "./babi_data", "Directory to store prepared datasets")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("bAbI Prep Service - Question-answering dataset preparation over HTTP\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                          # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000              # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --data-dir /tmp/babi     # Use custom data directory\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("bAbI Prep Service v1.0.0\n")
		fmt.Printf("Story parsing, vocabulary building and vectorization with async jobs\n")
		return
	}

	// Initialize the dataset engine
	log.Printf("Using data directory: %s", *dataDir)
	datasetEngine := engine.NewEngine(*dataDir)

	// Initialize Gin router
	router := gin.Default()
	router.Use(api.CORSMiddleware())
	router.Use(api.RequestSizeLimitMiddleware(10 << 20)) // 10 MB request cap

	// Setup API routes
	api.SetupRoutes(router, datasetEngine)

	// Start the server
	log.Printf("Starting server on port %s...", *port)
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
