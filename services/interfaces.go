package services

import (
	"github.com/gcbaptista/go-babi-prep/config"
	"github.com/gcbaptista/go-babi-prep/model"
	"github.com/gcbaptista/go-babi-prep/vocab"
)

// VocabularyView is the API-facing projection of a dataset vocabulary.
// Ids run 1..Size in sorted token order; 0 is the padding sentinel.
type VocabularyView struct {
	Size   int            `json:"size"`
	Tokens []string       `json:"tokens"`
	Index  map[string]int `json:"index"`
}

// ExamplePage is one page of examples from a split, as served by the
// inspection endpoints.
type ExamplePage struct {
	Examples []model.Example `json:"examples"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Split    string          `json:"split"`
}

// DatasetAccessor exposes one prepared dataset: its settings, parsed
// examples, shared vocabulary and vectorized tensors.
type DatasetAccessor interface {
	Settings() config.DatasetSettings
	Examples(split string) ([]model.Example, error)
	ExamplesWithToken(split, token string) ([]model.Example, error)
	Vocabulary() *vocab.Vocabulary
	Tensors(split string) (*model.SplitTensors, error)
	Widths() (storyWidth, questionWidth int)
}

// DatasetManager manages the lifecycle of prepared datasets
type DatasetManager interface {
	PrepareDataset(settings config.DatasetSettings) error
	GetDataset(name string) (DatasetAccessor, error)
	GetDatasetSettings(name string) (config.DatasetSettings, error)
	ListDatasets() []string
	DeleteDataset(name string) error
}

// DatasetManagerWithAsyncPrepare extends DatasetManager with asynchronous
// preparation through the job manager
type DatasetManagerWithAsyncPrepare interface {
	DatasetManager
	PrepareDatasetAsync(settings config.DatasetSettings) (string, error) // Returns job ID
}

// JobManager defines operations for inspecting background jobs
type JobManager interface {
	GetJob(jobID string) (*model.Job, error)
	ListJobs(datasetName string, status *model.JobStatus) []*model.Job
}
