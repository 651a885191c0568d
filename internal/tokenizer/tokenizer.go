package tokenizer

import (
	"regexp"
)

// tokenRegex matches either a run of word characters or a single
// punctuation mark. Whitespace never matches, so whitespace-only
// fragments are dropped for free.
var tokenRegex = regexp.MustCompile(`\w+|[^\w\s]`)

// Tokenize converts a sentence into a slice of tokens. Words are split on
// runs of non-word characters and each punctuation mark becomes its own
// token, so "Bob dropped the apple." yields
// ["Bob", "dropped", "the", "apple", "."]. Case is preserved.
func Tokenize(text string) []string {
	matches := tokenRegex.FindAllString(text, -1)

	tokens := make([]string, 0, len(matches)) // Initialize as empty slice, not nil
	tokens = append(tokens, matches...)
	return tokens
}
