package tokenizer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple sentence",
			input:    "Bob dropped the apple.",
			expected: []string{"Bob", "dropped", "the", "apple", "."},
		},
		{
			name:     "question with punctuation",
			input:    "Where is the apple?",
			expected: []string{"Where", "is", "the", "apple", "?"},
		},
		{
			name:     "statement followed by question",
			input:    "Bob dropped the apple. Where is the apple?",
			expected: []string{"Bob", "dropped", "the", "apple", ".", "Where", "is", "the", "apple", "?"},
		},
		{
			name:     "comma separated list",
			input:    "apple,football,milk",
			expected: []string{"apple", ",", "football", ",", "milk"},
		},
		{
			name:     "consecutive punctuation splits per character",
			input:    "Really?!",
			expected: []string{"Really", "?", "!"},
		},
		{
			name:     "digits and underscores are word characters",
			input:    "room_3 holds 2 keys",
			expected: []string{"room_3", "holds", "2", "keys"},
		},
		{
			name:     "collapses arbitrary whitespace",
			input:    "  John \t went   home.  ",
			expected: []string{"John", "went", "home", "."},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "whitespace only",
			input:    "   \t  ",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Tokenize(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeNeverReturnsNil(t *testing.T) {
	if Tokenize("") == nil {
		t.Error("Tokenize should return an empty slice for empty input, not nil")
	}
}
