package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-babi-prep/internal/corpus"
	"github.com/gcbaptista/go-babi-prep/internal/stats"
	"github.com/gcbaptista/go-babi-prep/services"
)

// API holds dependencies for API handlers, primarily the dataset manager.
type API struct {
	engine services.DatasetManager
	stats  *stats.Service
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.DatasetManager) *API {
	return &API{
		engine: engine,
		stats:  stats.NewService(engine),
	}
}

// SetupRoutes defines all the API routes for the dataset service.
func SetupRoutes(router *gin.Engine, engine services.DatasetManager) {
	apiHandler := NewAPI(engine)

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Task catalog route
	router.GET("/tasks", apiHandler.ListTasksHandler)

	// Job management routes
	jobRoutes := router.Group("/jobs")
	{
		jobRoutes.GET("/:jobId", apiHandler.GetJobHandler)         // Get job status by ID
		jobRoutes.GET("/metrics", apiHandler.GetJobMetricsHandler) // Get job performance metrics
	}

	// Dataset management routes
	datasetRoutes := router.Group("/datasets")
	{
		datasetRoutes.POST("", apiHandler.CreateDatasetHandler)                     // Prepare a new dataset
		datasetRoutes.GET("", apiHandler.ListDatasetsHandler)                       // List all datasets
		datasetRoutes.GET("/:datasetName", apiHandler.GetDatasetHandler)            // Get dataset details
		datasetRoutes.DELETE("/:datasetName", apiHandler.DeleteDatasetHandler)      // Delete a dataset
		datasetRoutes.GET("/:datasetName/vocab", apiHandler.GetVocabularyHandler)   // Get the shared vocabulary
		datasetRoutes.GET("/:datasetName/examples", apiHandler.GetExamplesHandler)  // List parsed examples with pagination
		datasetRoutes.GET("/:datasetName/tensors", apiHandler.GetTensorsHandler)    // Get vectorized arrays per split
		datasetRoutes.GET("/:datasetName/stats", apiHandler.GetDatasetStatsHandler) // Get dataset statistics
		datasetRoutes.GET("/:datasetName/jobs", apiHandler.ListJobsHandler)         // List jobs for a dataset
	}
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
		"datasets":  len(api.engine.ListDatasets()),
	})
}

// ListTasksHandler returns the bAbI task catalog.
func (api *API) ListTasksHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tasks": corpus.Tasks()})
}
