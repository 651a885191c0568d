package engine

import (
	"context"
	"fmt"

	"github.com/gcbaptista/go-babi-prep/config"
	"github.com/gcbaptista/go-babi-prep/internal/errors"
	"github.com/gcbaptista/go-babi-prep/model"
)

// PrepareDatasetAsync runs the preparation pipeline in a background job
// and returns the job id immediately.
func (e *Engine) PrepareDatasetAsync(settings config.DatasetSettings) (string, error) {
	settings.ApplyDefaults()
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		return "", errors.NewValidationError("settings", conflicts[0])
	}

	e.mu.RLock()
	_, exists := e.datasets[settings.Name]
	e.mu.RUnlock()
	if exists {
		return "", errors.NewDatasetAlreadyExistsError(settings.Name)
	}

	jobID := e.jobManager.CreateJob(model.JobTypePrepareDataset, settings.Name, map[string]string{
		"task_id": fmt.Sprintf("%d", settings.TaskID),
		"variant": settings.Variant,
	})

	err := e.jobManager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return e.prepareDataset(settings, func(stage string, current int) {
			e.jobManager.UpdateJobProgress(jobID, current, stageCount, stage)
		})
	})
	if err != nil {
		return "", fmt.Errorf("failed to start prepare dataset job: %w", err)
	}

	return jobID, nil
}

// DeleteDatasetAsync removes a dataset in a background job.
func (e *Engine) DeleteDatasetAsync(name string) (string, error) {
	e.mu.RLock()
	_, exists := e.datasets[name]
	e.mu.RUnlock()
	if !exists {
		return "", errors.NewDatasetNotFoundError(name)
	}

	jobID := e.jobManager.CreateJob(model.JobTypeDeleteDataset, name, nil)

	err := e.jobManager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return e.DeleteDataset(name)
	})
	if err != nil {
		return "", fmt.Errorf("failed to start delete dataset job: %w", err)
	}

	return jobID, nil
}
