package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type payload struct {
	Name   string
	Widths []int
}

func TestSaveAndLoadGob(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "nested", "dir", "payload.gob")
	original := payload{Name: "qa1-en", Widths: []int{13, 4}}

	if err := SaveGob(filePath, original); err != nil {
		t.Fatalf("SaveGob failed: %v", err)
	}

	var loaded payload
	if err := LoadGob(filePath, &loaded); err != nil {
		t.Fatalf("LoadGob failed: %v", err)
	}

	if !reflect.DeepEqual(loaded, original) {
		t.Errorf("Loaded payload = %+v, expected %+v", loaded, original)
	}
}

func TestLoadGobMissingFile(t *testing.T) {
	var loaded payload
	err := LoadGob(filepath.Join(t.TempDir(), "absent.gob"), &loaded)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist for a missing file, got %v", err)
	}
}

func TestLoadGobCorruptFile(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "corrupt.gob")
	if err := os.WriteFile(filePath, []byte("not gob data"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	var loaded payload
	if err := LoadGob(filePath, &loaded); err == nil {
		t.Error("Expected an error for a corrupt gob file")
	}
}
