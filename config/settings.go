// Package config provides configuration structures for the dataset
// preparation service. It defines which bAbI task a dataset is built from
// and how the parsing and vectorization pipeline behaves.
package config

import (
	"strings"
)

// Variants of the bAbI corpus. "en" carries 1k training examples per task,
// "en-10k" carries 10k.
const (
	VariantEN    = "en"
	VariantEN10k = "en-10k"
)

// DefaultCorpusURL is the canonical location of the bAbI tasks archive.
const DefaultCorpusURL = "https://s3.amazonaws.com/text-datasets/babi_tasks_1-20_v1-2.tar.gz"

// DatasetSettings contains all configuration options for one prepared
// dataset: which task file pair to load and how the parsing and
// vectorization pipeline treats it.
//
// Note: MaxStoryLength is a strict bound: an example survives the filter
// only when its flattened story token count is strictly less than the
// configured value. Zero disables the filter.
type DatasetSettings struct {
	Name           string `json:"name"`             // Unique name for the prepared dataset
	TaskID         int    `json:"task_id"`          // bAbI task number (1-20)
	Variant        string `json:"variant"`          // Corpus variant: "en" or "en-10k"
	OnlySupporting bool   `json:"only_supporting"`  // Keep only sentences referenced by supporting-fact ids
	MaxStoryLength int    `json:"max_story_length"` // Discard examples whose flattened story length is not < this (0 = keep all)
	CorpusURL      string `json:"corpus_url"`       // Archive location, defaults to DefaultCorpusURL
}

// Validate checks the settings for basic requirements and returns a list of
// human-readable conflicts. An empty list means the settings are usable.
func (settings *DatasetSettings) Validate() []string {
	var conflicts []string

	if strings.TrimSpace(settings.Name) == "" {
		conflicts = append(conflicts, "Dataset name cannot be empty or whitespace-only")
	} else if strings.TrimSpace(settings.Name) != settings.Name {
		conflicts = append(conflicts, "Dataset name cannot have leading or trailing whitespace")
	}

	if settings.TaskID < 1 || settings.TaskID > 20 {
		conflicts = append(conflicts, "Task id must be between 1 and 20")
	}

	if settings.Variant != "" && settings.Variant != VariantEN && settings.Variant != VariantEN10k {
		conflicts = append(conflicts, "Variant must be '"+VariantEN+"' or '"+VariantEN10k+"'")
	}

	if settings.MaxStoryLength < 0 {
		conflicts = append(conflicts, "Max story length cannot be negative")
	}

	return conflicts
}

// ApplyDefaults applies default values to the dataset settings
func (settings *DatasetSettings) ApplyDefaults() {
	if settings.Variant == "" {
		settings.Variant = VariantEN
	}
	if settings.CorpusURL == "" {
		settings.CorpusURL = DefaultCorpusURL
	}
}
