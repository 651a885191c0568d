package engine

import (
	"sync"

	"github.com/gcbaptista/go-babi-prep/config"
	"github.com/gcbaptista/go-babi-prep/internal/errors"
	"github.com/gcbaptista/go-babi-prep/internal/jobs"
	"github.com/gcbaptista/go-babi-prep/model"
	"github.com/gcbaptista/go-babi-prep/services"
)

const maxConcurrentJobs = 2

// Engine manages the prepared datasets of one data directory.
// It implements the services.DatasetManager interface.
type Engine struct {
	mu         sync.RWMutex
	datasets   map[string]*DatasetInstance
	dataDir    string
	jobManager *jobs.Manager
}

// NewEngine creates a new dataset engine rooted at dataDir and reloads
// every dataset already persisted there.
func NewEngine(dataDir string) *Engine {
	eng := &Engine{
		datasets:   make(map[string]*DatasetInstance),
		dataDir:    dataDir,
		jobManager: jobs.NewManager(maxConcurrentJobs),
	}
	eng.jobManager.Start()
	eng.loadDatasetsFromDisk()
	return eng
}

// Close shuts down the background job manager.
func (e *Engine) Close() {
	e.jobManager.Stop()
}

// GetDataset returns the accessor of a prepared dataset.
func (e *Engine) GetDataset(name string) (services.DatasetAccessor, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.datasets[name]
	if !exists {
		return nil, errors.NewDatasetNotFoundError(name)
	}
	return instance, nil
}

// GetDatasetSettings returns the settings of a prepared dataset.
func (e *Engine) GetDatasetSettings(name string) (config.DatasetSettings, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.datasets[name]
	if !exists {
		return config.DatasetSettings{}, errors.NewDatasetNotFoundError(name)
	}
	return instance.Settings(), nil
}

// ListDatasets returns the names of all prepared datasets.
func (e *Engine) ListDatasets() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.datasets))
	for name := range e.datasets {
		names = append(names, name)
	}
	return names
}

// GetJob retrieves a background job by ID.
func (e *Engine) GetJob(jobID string) (*model.Job, error) {
	return e.jobManager.GetJob(jobID)
}

// ListJobs returns the background jobs of a dataset.
func (e *Engine) ListJobs(datasetName string, status *model.JobStatus) []*model.Job {
	return e.jobManager.ListJobs(datasetName, status)
}

// JobMetrics returns current job performance metrics.
func (e *Engine) JobMetrics() jobs.JobMetricsData {
	return e.jobManager.GetMetrics()
}
