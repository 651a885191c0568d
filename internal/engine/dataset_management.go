package engine

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gcbaptista/go-babi-prep/config"
	"github.com/gcbaptista/go-babi-prep/internal/corpus"
	"github.com/gcbaptista/go-babi-prep/internal/errors"
	"github.com/gcbaptista/go-babi-prep/internal/parser"
	"github.com/gcbaptista/go-babi-prep/internal/vectorize"
	"github.com/gcbaptista/go-babi-prep/store"
	"github.com/gcbaptista/go-babi-prep/vocab"
)

// Pipeline stages reported through job progress while preparing a dataset.
const (
	stageFetch     = "fetching corpus archive"
	stageParse     = "parsing task files"
	stageVocab     = "building vocabulary"
	stageVectorize = "vectorizing splits"
	stagePersist   = "persisting dataset"
	stageCount     = 5
)

// progressFunc receives pipeline stage updates during preparation.
type progressFunc func(stage string, current int)

// PrepareDataset runs the full pipeline synchronously: fetch the corpus,
// parse both task splits, build the shared vocabulary, vectorize each
// split against it, and persist the result under the dataset's name.
func (e *Engine) PrepareDataset(settings config.DatasetSettings) error {
	return e.prepareDataset(settings, nil)
}

func (e *Engine) prepareDataset(settings config.DatasetSettings, report progressFunc) error {
	settings.ApplyDefaults()
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		return errors.NewValidationError("settings", strings.Join(conflicts, "; "))
	}

	e.mu.RLock()
	_, exists := e.datasets[settings.Name]
	e.mu.RUnlock()
	if exists {
		return errors.NewDatasetAlreadyExistsError(settings.Name)
	}

	instance, err := e.runPipeline(settings, report)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	// Double-check under the write lock: a concurrent prepare may have won.
	if _, exists := e.datasets[settings.Name]; exists {
		return errors.NewDatasetAlreadyExistsError(settings.Name)
	}

	if report != nil {
		report(stagePersist, stageCount)
	}
	if err := e.persistDatasetUnsafe(settings.Name, instance); err != nil {
		return fmt.Errorf("failed to persist dataset '%s': %w", settings.Name, err)
	}

	e.datasets[settings.Name] = instance
	log.Printf("Dataset '%s' prepared (task %d, variant %s): %d train / %d test examples, vocabulary size %d",
		settings.Name, settings.TaskID, settings.Variant,
		len(instance.ExampleStore.Train), len(instance.ExampleStore.Test), instance.Vocab.Size())
	return nil
}

// runPipeline executes the corpus → examples → vocabulary → tensors
// pipeline without touching engine state.
func (e *Engine) runPipeline(settings config.DatasetSettings, report progressFunc) (*DatasetInstance, error) {
	if report != nil {
		report(stageFetch, 1)
	}
	archivePath, err := corpus.EnsureArchive(e.dataDir, settings.CorpusURL, nil)
	if err != nil {
		return nil, err
	}

	trainRaw, testRaw, err := corpus.ReadTask(archivePath, settings.TaskID, settings.Variant)
	if err != nil {
		return nil, err
	}

	if report != nil {
		report(stageParse, 2)
	}
	opts := parser.Options{
		OnlySupporting: settings.OnlySupporting,
		MaxStoryLength: settings.MaxStoryLength,
	}
	train, err := parser.ParseStories(bytes.NewReader(trainRaw), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse train split of task %d: %w", settings.TaskID, err)
	}
	test, err := parser.ParseStories(bytes.NewReader(testRaw), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse test split of task %d: %w", settings.TaskID, err)
	}

	// Vocabulary and widths span both splits so ids and tensor shapes are
	// stable across train and test.
	if report != nil {
		report(stageVocab, 3)
	}
	voc := vocab.Build(train, test)
	storyWidth, questionWidth := vectorize.Widths(train, test)

	if report != nil {
		report(stageVectorize, 4)
	}
	trainTensors, err := vectorize.Examples(train, voc, storyWidth, questionWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to vectorize train split: %w", err)
	}
	testTensors, err := vectorize.Examples(test, voc, storyWidth, questionWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to vectorize test split: %w", err)
	}

	return &DatasetInstance{
		settings:      &settings,
		ExampleStore:  &store.ExampleStore{Train: train, Test: test},
		Vocab:         voc,
		TrainTensors:  trainTensors,
		TestTensors:   testTensors,
		StoryWidth:    storyWidth,
		QuestionWidth: questionWidth,
	}, nil
}

// DeleteDataset removes a prepared dataset from memory and disk.
func (e *Engine) DeleteDataset(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.datasets[name]; !exists {
		return errors.NewDatasetNotFoundError(name)
	}

	delete(e.datasets, name)

	datasetPath := filepath.Join(e.dataDir, name)
	if err := os.RemoveAll(datasetPath); err != nil {
		return fmt.Errorf("failed to remove dataset directory %s: %w", datasetPath, err)
	}

	log.Printf("Dataset '%s' deleted.", name)
	return nil
}
