package engine

import (
	"github.com/gcbaptista/go-babi-prep/config"
	"github.com/gcbaptista/go-babi-prep/internal/errors"
	"github.com/gcbaptista/go-babi-prep/model"
	"github.com/gcbaptista/go-babi-prep/store"
	"github.com/gcbaptista/go-babi-prep/vocab"
)

// DatasetInstance holds all components of a single prepared dataset.
// It implements the services.DatasetAccessor interface.
type DatasetInstance struct {
	settings      *config.DatasetSettings
	ExampleStore  *store.ExampleStore
	Vocab         *vocab.Vocabulary
	TrainTensors  *model.SplitTensors
	TestTensors   *model.SplitTensors
	StoryWidth    int
	QuestionWidth int
}

// Settings returns the configuration this dataset was prepared with.
func (d *DatasetInstance) Settings() config.DatasetSettings {
	return *d.settings
}

// Examples returns the parsed examples of the named split.
func (d *DatasetInstance) Examples(split string) ([]model.Example, error) {
	return d.ExampleStore.Split(split)
}

// ExamplesWithToken returns the examples of a split whose story or
// question contains the given token.
func (d *DatasetInstance) ExamplesWithToken(split, token string) ([]model.Example, error) {
	return d.ExampleStore.FilterByToken(split, token)
}

// Vocabulary returns the token-id mapping shared by both splits.
func (d *DatasetInstance) Vocabulary() *vocab.Vocabulary {
	return d.Vocab
}

// Tensors returns the vectorized arrays of the named split.
func (d *DatasetInstance) Tensors(split string) (*model.SplitTensors, error) {
	switch split {
	case store.SplitTrain:
		return d.TrainTensors, nil
	case store.SplitTest:
		return d.TestTensors, nil
	default:
		return nil, errors.NewValidationError("split", "split must be '"+store.SplitTrain+"' or '"+store.SplitTest+"'")
	}
}

// Widths returns the corpus-wide story and question widths the tensors
// were padded to.
func (d *DatasetInstance) Widths() (storyWidth, questionWidth int) {
	return d.StoryWidth, d.QuestionWidth
}
