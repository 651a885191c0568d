package engine

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gcbaptista/go-babi-prep/config"
	"github.com/gcbaptista/go-babi-prep/internal/persistence"
	"github.com/gcbaptista/go-babi-prep/model"
	"github.com/gcbaptista/go-babi-prep/store"
	"github.com/gcbaptista/go-babi-prep/vocab"
)

const (
	dataDirPerm    = 0755
	settingsFile   = "settings.gob"
	examplesFile   = "examples.gob"
	vocabularyFile = "vocabulary.gob"
	tensorsFile    = "tensors.gob"
)

// datasetTensors bundles both splits' tensors with the shared widths for
// persistence.
type datasetTensors struct {
	Train         *model.SplitTensors
	Test          *model.SplitTensors
	StoryWidth    int
	QuestionWidth int
}

// loadDatasetsFromDisk loads all prepared datasets from the data directory.
func (e *Engine) loadDatasetsFromDisk() {
	log.Printf("Loading datasets from disk: %s", e.dataDir)

	if err := os.MkdirAll(e.dataDir, dataDirPerm); err != nil {
		log.Printf("Warning: Could not create data directory %s: %v. Proceeding without persistence if loading fails.", e.dataDir, err)
	}

	items, err := os.ReadDir(e.dataDir)
	if err != nil {
		log.Printf("Warning: Failed to read data directory %s: %v. No datasets loaded.", e.dataDir, err)
		return
	}

	for _, item := range items {
		if !item.IsDir() {
			continue
		}
		datasetName := item.Name()
		datasetPath := filepath.Join(e.dataDir, datasetName)
		log.Printf("Attempting to load dataset: %s", datasetName)

		var settings config.DatasetSettings
		settingsPath := filepath.Join(datasetPath, settingsFile)
		if err := persistence.LoadGob(settingsPath, &settings); err != nil {
			log.Printf("Warning: Failed to load settings for dataset %s from %s: %v. Skipping this dataset.", datasetName, settingsPath, err)
			continue
		}

		// Settings name must match the directory name
		if settings.Name != datasetName {
			log.Printf("Warning: Dataset name in settings ('%s') does not match directory name ('%s') for path %s. Skipping this dataset.", settings.Name, datasetName, datasetPath)
			continue
		}

		exampleStore := &store.ExampleStore{}
		examplesPath := filepath.Join(datasetPath, examplesFile)
		if err := persistence.LoadGob(examplesPath, exampleStore); err != nil {
			log.Printf("Warning: Failed to load examples for dataset %s from %s: %v. Skipping this dataset.", datasetName, examplesPath, err)
			continue
		}

		voc := &vocab.Vocabulary{}
		vocabPath := filepath.Join(datasetPath, vocabularyFile)
		if err := persistence.LoadGob(vocabPath, voc); err != nil {
			log.Printf("Warning: Failed to load vocabulary for dataset %s from %s: %v. Skipping this dataset.", datasetName, vocabPath, err)
			continue
		}

		tensors := &datasetTensors{}
		tensorsPath := filepath.Join(datasetPath, tensorsFile)
		if err := persistence.LoadGob(tensorsPath, tensors); err != nil {
			log.Printf("Warning: Failed to load tensors for dataset %s from %s: %v. Skipping this dataset.", datasetName, tensorsPath, err)
			continue
		}

		e.datasets[datasetName] = &DatasetInstance{
			settings:      &settings,
			ExampleStore:  exampleStore,
			Vocab:         voc,
			TrainTensors:  tensors.Train,
			TestTensors:   tensors.Test,
			StoryWidth:    tensors.StoryWidth,
			QuestionWidth: tensors.QuestionWidth,
		}
		log.Printf("Successfully loaded dataset: %s", datasetName)
	}
}

// persistDatasetUnsafe writes every component of a dataset to its
// directory. Callers must hold the engine write lock.
func (e *Engine) persistDatasetUnsafe(name string, instance *DatasetInstance) error {
	datasetPath := filepath.Join(e.dataDir, name)

	settings := instance.Settings()
	if err := persistence.SaveGob(filepath.Join(datasetPath, settingsFile), &settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	if err := persistence.SaveGob(filepath.Join(datasetPath, examplesFile), instance.ExampleStore); err != nil {
		return fmt.Errorf("failed to save examples: %w", err)
	}
	if err := persistence.SaveGob(filepath.Join(datasetPath, vocabularyFile), instance.Vocab); err != nil {
		return fmt.Errorf("failed to save vocabulary: %w", err)
	}
	tensors := &datasetTensors{
		Train:         instance.TrainTensors,
		Test:          instance.TestTensors,
		StoryWidth:    instance.StoryWidth,
		QuestionWidth: instance.QuestionWidth,
	}
	if err := persistence.SaveGob(filepath.Join(datasetPath, tensorsFile), tensors); err != nil {
		return fmt.Errorf("failed to save tensors: %w", err)
	}
	return nil
}
