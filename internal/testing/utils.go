// Package testing provides utilities and helpers for testing the dataset
// preparation service.
package testing

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-babi-prep/config"
	"github.com/gcbaptista/go-babi-prep/internal/corpus"
	"github.com/gcbaptista/go-babi-prep/internal/engine"
	"github.com/gcbaptista/go-babi-prep/model"
	"github.com/gcbaptista/go-babi-prep/services"
)

// TinyTrainCorpus is a minimal task 1 train split used across tests.
const TinyTrainCorpus = "1 Mary moved to the bathroom.\n" +
	"2 John went to the hallway.\n" +
	"3 Where is Mary?\tbathroom\t1\n" +
	"1 Daniel went back to the hallway.\n" +
	"2 Sandra moved to the garden.\n" +
	"3 Where is Daniel?\thallway\t1\n"

// TinyTestCorpus is a minimal task 1 test split used across tests.
const TinyTestCorpus = "1 John moved to the office.\n" +
	"2 Where is John?\toffice\t1\n"

// TestDirRegistry tracks test directories for cleanup
type TestDirRegistry struct {
	mu   sync.Mutex
	dirs []string
}

var globalTestDirRegistry = &TestDirRegistry{}

// RegisterTestDir registers a test directory for cleanup
func (r *TestDirRegistry) RegisterTestDir(dir string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dirs = append(r.dirs, dir)
}

// CleanupAll removes all registered test directories
func (r *TestDirRegistry) CleanupAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, dir := range r.dirs {
		if err := os.RemoveAll(dir); err != nil {
			fmt.Printf("Warning: Failed to remove test directory %s: %v\n", dir, err)
		}
	}
	r.dirs = nil
}

// CreateTestEngine creates a new engine instance for testing with automatic cleanup
func CreateTestEngine(t *testing.T) *engine.Engine {
	testDir := fmt.Sprintf("./test_data_%d", time.Now().UnixNano())
	globalTestDirRegistry.RegisterTestDir(testDir)

	eng := engine.NewEngine(testDir)

	t.Cleanup(func() {
		eng.Close()
	})

	return eng
}

// BuildCorpusArchive builds an in-memory tar.gz archive from member paths
// to file contents, mirroring the layout of the real bAbI archive.
func BuildCorpusArchive(t *testing.T, members map[string]string) []byte {
	var buf bytes.Buffer
	gzWriter := gzip.NewWriter(&buf)
	tarWriter := tar.NewWriter(gzWriter)

	for name, content := range members {
		header := &tar.Header{
			Name: name,
			Mode: 0644,
			Size: int64(len(content)),
		}
		require.NoError(t, tarWriter.WriteHeader(header), "Failed to write tar header")
		_, err := tarWriter.Write([]byte(content))
		require.NoError(t, err, "Failed to write tar member")
	}

	require.NoError(t, tarWriter.Close(), "Failed to close tar writer")
	require.NoError(t, gzWriter.Close(), "Failed to close gzip writer")
	return buf.Bytes()
}

// BuildTaskArchive builds an archive holding the train and test files of
// one task and variant.
func BuildTaskArchive(t *testing.T, taskID int, variant, train, test string) []byte {
	trainPath, testPath, err := corpus.TaskFiles(taskID, variant)
	require.NoError(t, err, "Failed to resolve task files")

	return BuildCorpusArchive(t, map[string]string{
		trainPath: train,
		testPath:  test,
	})
}

// ServeCorpusArchive starts an HTTP server serving the given archive bytes
// at every path, shut down automatically when the test ends.
func ServeCorpusArchive(t *testing.T, archive []byte) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(archive)))
		_, _ = w.Write(archive)
	}))
	t.Cleanup(server.Close)
	return server
}

// TestDatasetSettings returns settings for a tiny task 1 dataset whose
// corpus is served from the given URL.
func TestDatasetSettings(name, corpusURL string) config.DatasetSettings {
	return config.DatasetSettings{
		Name:      name,
		TaskID:    1,
		Variant:   config.VariantEN,
		CorpusURL: corpusURL,
	}
}

// PrepareTestDataset prepares a tiny task 1 dataset on the engine, serving
// the corpus from a local test server.
func PrepareTestDataset(t *testing.T, eng *engine.Engine, name string) config.DatasetSettings {
	archive := BuildTaskArchive(t, 1, config.VariantEN, TinyTrainCorpus, TinyTestCorpus)
	server := ServeCorpusArchive(t, archive)

	settings := TestDatasetSettings(name, server.URL)
	require.NoError(t, eng.PrepareDataset(settings), "Failed to prepare test dataset")
	return settings
}

// JobPollingOptions configures job polling behavior
type JobPollingOptions struct {
	Timeout      time.Duration
	PollInterval time.Duration
	LogProgress  bool
}

// DefaultJobPollingOptions returns sensible defaults for job polling
func DefaultJobPollingOptions() JobPollingOptions {
	return JobPollingOptions{
		Timeout:      10 * time.Second,
		PollInterval: 100 * time.Millisecond,
		LogProgress:  true,
	}
}

// WaitForJobCompletion polls a job until it completes or times out
func WaitForJobCompletion(t *testing.T, jobManager services.JobManager, jobID string, opts JobPollingOptions) *model.Job {
	timeout := time.After(opts.Timeout)
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	var job *model.Job
	var err error

	for {
		select {
		case <-timeout:
			t.Fatalf("Job %s did not complete within %v timeout", jobID, opts.Timeout)
		case <-ticker.C:
			job, err = jobManager.GetJob(jobID)
			require.NoError(t, err, "Failed to get job status")

			switch job.Status {
			case model.JobStatusCompleted:
				if opts.LogProgress {
					t.Logf("Job %s completed successfully in %v", jobID, job.CompletedAt.Sub(job.CreatedAt))
				}
				return job
			case model.JobStatusFailed:
				t.Fatalf("Job %s failed: %s", jobID, job.Error)
			case model.JobStatusRunning:
				if opts.LogProgress && job.Progress != nil {
					t.Logf("Job %s progress: %d/%d - %s",
						jobID,
						job.Progress.Current,
						job.Progress.Total,
						job.Progress.Message)
				}
			}
		}
	}
}

// AssertJobCompleted verifies that a job completed successfully
func AssertJobCompleted(t *testing.T, job *model.Job, expectedType model.JobType, expectedDataset string) {
	assert.Equal(t, model.JobStatusCompleted, job.Status, "Job should be completed")
	assert.Equal(t, expectedType, job.Type, "Job type should match")
	assert.Equal(t, expectedDataset, job.DatasetName, "Job dataset name should match")
	assert.NotNil(t, job.CompletedAt, "Job should have completion timestamp")
	assert.Empty(t, job.Error, "Job should not have error")
}

// CleanupTestDirs should be called in TestMain to clean up all test directories
func CleanupTestDirs() {
	globalTestDirRegistry.CleanupAll()
}
