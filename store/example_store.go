package store

import (
	"bytes"
	"encoding/gob"
	"sync"

	"github.com/gcbaptista/go-babi-prep/internal/errors"
	"github.com/gcbaptista/go-babi-prep/model"
)

// Split names accepted by the store and by the API.
const (
	SplitTrain = "train"
	SplitTest  = "test"
)

// ExampleStore holds the parsed examples of one dataset, keyed by split.
// Both splits are immutable once the dataset is prepared; the mutex guards
// concurrent readers against a reload.
type ExampleStore struct {
	Mu    sync.RWMutex
	Train []model.Example
	Test  []model.Example
}

// Split returns the examples of the named split.
func (s *ExampleStore) Split(name string) ([]model.Example, error) {
	s.Mu.RLock()
	defer s.Mu.RUnlock()

	switch name {
	case SplitTrain:
		return s.Train, nil
	case SplitTest:
		return s.Test, nil
	default:
		return nil, errors.NewValidationError("split", "split must be '"+SplitTrain+"' or '"+SplitTest+"'")
	}
}

// FilterByToken returns the examples of a split whose story or question
// contains the given token. Used for dataset inspection.
func (s *ExampleStore) FilterByToken(split, token string) ([]model.Example, error) {
	examples, err := s.Split(split)
	if err != nil {
		return nil, err
	}

	matched := make([]model.Example, 0)
	for _, example := range examples {
		if example.ContainsToken(token) {
			matched = append(matched, example)
		}
	}
	return matched, nil
}

// Counts returns the number of examples per split.
func (s *ExampleStore) Counts() (train, test int) {
	s.Mu.RLock()
	defer s.Mu.RUnlock()
	return len(s.Train), len(s.Test)
}

// gobExampleStoreData is a helper struct for Gob encoding/decoding
// ExampleStore data. It excludes the mutex.
type gobExampleStoreData struct {
	Train []model.Example
	Test  []model.Example
}

// GobEncode implements the gob.GobEncoder interface for ExampleStore.
func (s *ExampleStore) GobEncode() ([]byte, error) {
	s.Mu.RLock()
	defer s.Mu.RUnlock()

	dataToEncode := gobExampleStoreData{
		Train: s.Train,
		Test:  s.Test,
	}

	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)
	if err := encoder.Encode(dataToEncode); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface for ExampleStore.
func (s *ExampleStore) GobDecode(data []byte) error {
	decodedData := gobExampleStoreData{}

	buf := bytes.NewBuffer(data)
	decoder := gob.NewDecoder(buf)
	if err := decoder.Decode(&decodedData); err != nil {
		return err
	}

	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.Train = decodedData.Train
	s.Test = decodedData.Test
	return nil
}
