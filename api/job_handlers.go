package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-babi-prep/internal/engine"
	"github.com/gcbaptista/go-babi-prep/model"
	"github.com/gcbaptista/go-babi-prep/services"
)

// GetJobHandler returns the status of a background job by ID.
func (api *API) GetJobHandler(c *gin.Context) {
	jobID := c.Param("jobId")

	jobManager, ok := api.engine.(services.JobManager)
	if !ok {
		SendError(c, http.StatusNotImplemented, ErrorCodeInvalidRequest, "Job tracking is not supported by this engine")
		return
	}

	job, err := jobManager.GetJob(jobID)
	if err != nil {
		SendJobNotFoundError(c, jobID)
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListJobsHandler returns the jobs of a dataset, optionally filtered by
// status via the ?status= query parameter.
func (api *API) ListJobsHandler(c *gin.Context) {
	datasetName := c.Param("datasetName")
	if result := ValidateDatasetName(datasetName); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	jobManager, ok := api.engine.(services.JobManager)
	if !ok {
		SendError(c, http.StatusNotImplemented, ErrorCodeInvalidRequest, "Job tracking is not supported by this engine")
		return
	}

	var statusFilter *model.JobStatus
	if statusParam := c.Query("status"); statusParam != "" {
		status := model.JobStatus(statusParam)
		statusFilter = &status
	}

	jobs := jobManager.ListJobs(datasetName, statusFilter)
	if jobs == nil {
		jobs = []*model.Job{}
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}

// GetJobMetricsHandler returns aggregate job performance metrics.
func (api *API) GetJobMetricsHandler(c *gin.Context) {
	concreteEngine, ok := api.engine.(*engine.Engine)
	if !ok {
		SendError(c, http.StatusNotImplemented, ErrorCodeInvalidRequest, "Job metrics are not supported by this engine")
		return
	}

	c.JSON(http.StatusOK, concreteEngine.JobMetrics())
}
