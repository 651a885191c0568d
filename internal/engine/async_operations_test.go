package engine_test

import (
	"errors"
	"testing"

	"github.com/gcbaptista/go-babi-prep/config"
	apperrors "github.com/gcbaptista/go-babi-prep/internal/errors"
	testhelpers "github.com/gcbaptista/go-babi-prep/internal/testing"
	"github.com/gcbaptista/go-babi-prep/model"
)

func TestPrepareDatasetAsync(t *testing.T) {
	eng := testhelpers.CreateTestEngine(t)

	archive := testhelpers.BuildTaskArchive(t, 1, config.VariantEN, testhelpers.TinyTrainCorpus, testhelpers.TinyTestCorpus)
	server := testhelpers.ServeCorpusArchive(t, archive)
	settings := testhelpers.TestDatasetSettings("qa1-async", server.URL)

	jobID, err := eng.PrepareDatasetAsync(settings)
	if err != nil {
		t.Fatalf("PrepareDatasetAsync failed: %v", err)
	}
	if jobID == "" {
		t.Fatal("Expected a non-empty job ID")
	}

	job := testhelpers.WaitForJobCompletion(t, eng, jobID, testhelpers.DefaultJobPollingOptions())
	testhelpers.AssertJobCompleted(t, job, model.JobTypePrepareDataset, "qa1-async")

	if _, err := eng.GetDataset("qa1-async"); err != nil {
		t.Errorf("Dataset should exist after the job completed: %v", err)
	}

	// Job metadata carries the task context.
	if job.Metadata["task_id"] != "1" {
		t.Errorf("Job metadata task_id = %q, expected %q", job.Metadata["task_id"], "1")
	}
}

func TestPrepareDatasetAsyncInvalidSettings(t *testing.T) {
	eng := testhelpers.CreateTestEngine(t)

	_, err := eng.PrepareDatasetAsync(config.DatasetSettings{Name: "", TaskID: 1})
	if err == nil {
		t.Fatal("Expected a validation error before any job is created")
	}
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("Expected an invalid input error, got %v", err)
	}
}

func TestPrepareDatasetAsyncAlreadyExists(t *testing.T) {
	eng := testhelpers.CreateTestEngine(t)
	settings := testhelpers.PrepareTestDataset(t, eng, "qa1-async-dup")

	if _, err := eng.PrepareDatasetAsync(settings); !errors.Is(err, apperrors.ErrDatasetAlreadyExists) {
		t.Errorf("Expected a dataset already exists error, got %v", err)
	}
}

func TestDeleteDatasetAsync(t *testing.T) {
	eng := testhelpers.CreateTestEngine(t)
	testhelpers.PrepareTestDataset(t, eng, "qa1-async-delete")

	jobID, err := eng.DeleteDatasetAsync("qa1-async-delete")
	if err != nil {
		t.Fatalf("DeleteDatasetAsync failed: %v", err)
	}

	job := testhelpers.WaitForJobCompletion(t, eng, jobID, testhelpers.DefaultJobPollingOptions())
	testhelpers.AssertJobCompleted(t, job, model.JobTypeDeleteDataset, "qa1-async-delete")

	if _, err := eng.GetDataset("qa1-async-delete"); !errors.Is(err, apperrors.ErrDatasetNotFound) {
		t.Errorf("Dataset should be gone after the delete job, got %v", err)
	}
}

func TestDeleteDatasetAsyncNotFound(t *testing.T) {
	eng := testhelpers.CreateTestEngine(t)

	if _, err := eng.DeleteDatasetAsync("missing"); !errors.Is(err, apperrors.ErrDatasetNotFound) {
		t.Errorf("Expected a dataset not found error, got %v", err)
	}
}

func TestListJobsAfterAsyncPrepare(t *testing.T) {
	eng := testhelpers.CreateTestEngine(t)

	archive := testhelpers.BuildTaskArchive(t, 1, config.VariantEN, testhelpers.TinyTrainCorpus, testhelpers.TinyTestCorpus)
	server := testhelpers.ServeCorpusArchive(t, archive)
	settings := testhelpers.TestDatasetSettings("qa1-jobs", server.URL)

	jobID, err := eng.PrepareDatasetAsync(settings)
	if err != nil {
		t.Fatalf("PrepareDatasetAsync failed: %v", err)
	}
	testhelpers.WaitForJobCompletion(t, eng, jobID, testhelpers.DefaultJobPollingOptions())

	jobs := eng.ListJobs("qa1-jobs", nil)
	if len(jobs) != 1 {
		t.Fatalf("Expected 1 job for the dataset, got %d", len(jobs))
	}
	if jobs[0].ID != jobID {
		t.Errorf("Listed job ID = %s, expected %s", jobs[0].ID, jobID)
	}

	metrics := eng.JobMetrics()
	if metrics.JobsCompleted < 1 {
		t.Errorf("JobsCompleted = %d, expected at least 1", metrics.JobsCompleted)
	}
}
