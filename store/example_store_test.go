package store

import (
	"bytes"
	"encoding/gob"
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/gcbaptista/go-babi-prep/internal/errors"
	"github.com/gcbaptista/go-babi-prep/model"
)

func sampleStore() *ExampleStore {
	return &ExampleStore{
		Train: []model.Example{
			{Story: []string{"Mary", "moved", "."}, Question: []string{"Where", "is", "Mary", "?"}, Answer: "bathroom"},
			{Story: []string{"John", "went", "."}, Question: []string{"Where", "is", "John", "?"}, Answer: "hallway"},
		},
		Test: []model.Example{
			{Story: []string{"Sandra", "left", "."}, Question: []string{"Where", "is", "Sandra", "?"}, Answer: "garden"},
		},
	}
}

func TestSplit(t *testing.T) {
	s := sampleStore()

	train, err := s.Split(SplitTrain)
	if err != nil {
		t.Fatalf("Split(train) failed: %v", err)
	}
	if len(train) != 2 {
		t.Errorf("Train split length = %d, expected 2", len(train))
	}

	test, err := s.Split(SplitTest)
	if err != nil {
		t.Fatalf("Split(test) failed: %v", err)
	}
	if len(test) != 1 {
		t.Errorf("Test split length = %d, expected 1", len(test))
	}
}

func TestSplitUnknownName(t *testing.T) {
	s := sampleStore()

	_, err := s.Split("validation")
	if err == nil {
		t.Fatal("Expected an error for an unknown split name")
	}
	if !stderrors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("Expected an invalid input error, got %v", err)
	}
}

func TestFilterByToken(t *testing.T) {
	s := sampleStore()

	matched, err := s.FilterByToken(SplitTrain, "John")
	if err != nil {
		t.Fatalf("FilterByToken failed: %v", err)
	}
	if len(matched) != 1 {
		t.Fatalf("Expected 1 match for token John, got %d", len(matched))
	}
	if matched[0].Answer != "hallway" {
		t.Errorf("Matched example answer = %q, expected %q", matched[0].Answer, "hallway")
	}

	// Question tokens match too.
	matched, err = s.FilterByToken(SplitTrain, "Where")
	if err != nil {
		t.Fatalf("FilterByToken failed: %v", err)
	}
	if len(matched) != 2 {
		t.Errorf("Expected 2 matches for token Where, got %d", len(matched))
	}

	matched, err = s.FilterByToken(SplitTrain, "spaceship")
	if err != nil {
		t.Fatalf("FilterByToken failed: %v", err)
	}
	if len(matched) != 0 {
		t.Errorf("Expected no matches for an absent token, got %d", len(matched))
	}
}

func TestCounts(t *testing.T) {
	s := sampleStore()

	train, test := s.Counts()
	if train != 2 || test != 1 {
		t.Errorf("Counts() = (%d, %d), expected (2, 1)", train, test)
	}
}

func TestExampleStoreGobRoundtrip(t *testing.T) {
	original := sampleStore()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(original); err != nil {
		t.Fatalf("Failed to encode store: %v", err)
	}

	decoded := &ExampleStore{}
	if err := gob.NewDecoder(&buf).Decode(decoded); err != nil {
		t.Fatalf("Failed to decode store: %v", err)
	}

	if !reflect.DeepEqual(decoded.Train, original.Train) {
		t.Error("Decoded train split does not match the original")
	}
	if !reflect.DeepEqual(decoded.Test, original.Test) {
		t.Error("Decoded test split does not match the original")
	}
}
