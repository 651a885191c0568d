package jobs

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/gcbaptista/go-babi-prep/internal/errors"
	"github.com/gcbaptista/go-babi-prep/model"
)

func TestJobManager_CreateJob(t *testing.T) {
	manager := NewManager(2)
	defer manager.Stop()

	jobID := manager.CreateJob(model.JobTypePrepareDataset, "qa1-en", map[string]string{
		"task_id": "1",
	})

	if jobID == "" {
		t.Error("Expected non-empty job ID")
	}

	job, err := manager.GetJob(jobID)
	if err != nil {
		t.Fatalf("Failed to get created job: %v", err)
	}

	if job.Type != model.JobTypePrepareDataset {
		t.Errorf("Expected job type %s, got %s", model.JobTypePrepareDataset, job.Type)
	}

	if job.Status != model.JobStatusPending {
		t.Errorf("Expected job status %s, got %s", model.JobStatusPending, job.Status)
	}

	if job.DatasetName != "qa1-en" {
		t.Errorf("Expected dataset name 'qa1-en', got %s", job.DatasetName)
	}
}

func TestJobManager_ExecuteJob(t *testing.T) {
	manager := NewManager(2)
	manager.Start()
	defer manager.Stop()

	jobID := manager.CreateJob(model.JobTypePrepareDataset, "qa1-en", nil)

	// Execute a simple job that updates progress
	err := manager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		manager.UpdateJobProgress(jobID, 2, 5, "Parsing stories")
		time.Sleep(10 * time.Millisecond) // Simulate work
		manager.UpdateJobProgress(jobID, 5, 5, "Completed")
		return nil
	})

	if err != nil {
		t.Fatalf("Failed to execute job: %v", err)
	}

	// Wait a bit for job to complete
	time.Sleep(50 * time.Millisecond)

	job, err := manager.GetJob(jobID)
	if err != nil {
		t.Fatalf("Failed to get job after execution: %v", err)
	}

	if job.Status != model.JobStatusCompleted {
		t.Errorf("Expected job status %s, got %s", model.JobStatusCompleted, job.Status)
	}

	if job.Progress == nil {
		t.Error("Expected job progress to be set")
	} else {
		if job.Progress.Current != 5 {
			t.Errorf("Expected progress current 5, got %d", job.Progress.Current)
		}
		if job.Progress.Total != 5 {
			t.Errorf("Expected progress total 5, got %d", job.Progress.Total)
		}
	}
}

func TestJobManager_ExecuteJobFailure(t *testing.T) {
	manager := NewManager(2)
	manager.Start()
	defer manager.Stop()

	jobID := manager.CreateJob(model.JobTypePrepareDataset, "qa1-en", nil)

	err := manager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return fmt.Errorf("corpus archive unreachable")
	})
	if err != nil {
		t.Fatalf("Failed to execute job: %v", err)
	}

	time.Sleep(50 * time.Millisecond)

	job, err := manager.GetJob(jobID)
	if err != nil {
		t.Fatalf("Failed to get job after execution: %v", err)
	}

	if job.Status != model.JobStatusFailed {
		t.Errorf("Expected job status %s, got %s", model.JobStatusFailed, job.Status)
	}
	if job.Error != "corpus archive unreachable" {
		t.Errorf("Expected job error to carry the failure, got %q", job.Error)
	}
	if job.CompletedAt == nil {
		t.Error("Failed job should carry a completion timestamp")
	}
}

func TestJobManager_GetJobNotFound(t *testing.T) {
	manager := NewManager(1)
	defer manager.Stop()

	_, err := manager.GetJob("no-such-job")
	if err == nil {
		t.Fatal("Expected an error for an unknown job ID")
	}
	if !stderrors.Is(err, errors.ErrJobNotFound) {
		t.Errorf("Expected a job not found error, got %v", err)
	}
}

func TestJobManager_ListJobs(t *testing.T) {
	manager := NewManager(2)
	manager.Start()
	defer manager.Stop()

	firstID := manager.CreateJob(model.JobTypePrepareDataset, "qa1-en", nil)
	manager.CreateJob(model.JobTypeDeleteDataset, "qa1-en", nil)
	manager.CreateJob(model.JobTypePrepareDataset, "qa2-en", nil)

	jobs := manager.ListJobs("qa1-en", nil)
	if len(jobs) != 2 {
		t.Fatalf("Expected 2 jobs for qa1-en, got %d", len(jobs))
	}

	// Complete one job and filter by status.
	err := manager.ExecuteJob(firstID, func(ctx context.Context, job *model.Job) error {
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to execute job: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	completed := model.JobStatusCompleted
	jobs = manager.ListJobs("qa1-en", &completed)
	if len(jobs) != 1 {
		t.Fatalf("Expected 1 completed job for qa1-en, got %d", len(jobs))
	}
	if jobs[0].ID != firstID {
		t.Errorf("Expected completed job %s, got %s", firstID, jobs[0].ID)
	}
}

func TestJobManager_ExecuteJobTwice(t *testing.T) {
	manager := NewManager(2)
	manager.Start()
	defer manager.Stop()

	jobID := manager.CreateJob(model.JobTypePrepareDataset, "qa1-en", nil)

	block := make(chan struct{})
	err := manager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		<-block
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to execute job: %v", err)
	}

	if err := manager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return nil
	}); err == nil {
		t.Error("Expected an error when executing a non-pending job")
	}

	close(block)
}

func TestJobManager_Metrics(t *testing.T) {
	manager := NewManager(2)
	manager.Start()
	defer manager.Stop()

	jobID := manager.CreateJob(model.JobTypePrepareDataset, "qa1-en", nil)
	err := manager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to execute job: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	metrics := manager.GetMetrics()
	if metrics.JobsCreated != 1 {
		t.Errorf("JobsCreated = %d, expected 1", metrics.JobsCreated)
	}
	if metrics.JobsCompleted != 1 {
		t.Errorf("JobsCompleted = %d, expected 1", metrics.JobsCompleted)
	}
	if metrics.JobsByType[model.JobTypePrepareDataset] != 1 {
		t.Errorf("JobsByType = %v, expected 1 prepare job", metrics.JobsByType)
	}

	if rate := manager.GetJobSuccessRate(); rate != 1.0 {
		t.Errorf("Success rate = %v, expected 1.0", rate)
	}
	if workload := manager.GetCurrentWorkload(); workload != 0 {
		t.Errorf("Current workload = %d, expected 0 after completion", workload)
	}
}

func TestJobManager_CleanupOldJobs(t *testing.T) {
	manager := NewManager(2)
	manager.Start()
	defer manager.Stop()

	jobID := manager.CreateJob(model.JobTypeDeleteDataset, "qa1-en", nil)
	err := manager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to execute job: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	// A generous max age keeps the fresh job around.
	manager.CleanupOldJobs(time.Hour)
	if _, err := manager.GetJob(jobID); err != nil {
		t.Errorf("Fresh job should survive cleanup: %v", err)
	}

	// A zero max age removes every completed job.
	manager.CleanupOldJobs(0)
	if _, err := manager.GetJob(jobID); err == nil {
		t.Error("Completed job should be removed by cleanup with zero max age")
	}
}
