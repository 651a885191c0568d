// Package vocab builds and serves the token-to-id mapping shared by both
// dataset splits.
package vocab

import (
	"bytes"
	"encoding/gob"
	"sort"
	"sync"

	"github.com/gcbaptista/go-babi-prep/internal/errors"
	"github.com/gcbaptista/go-babi-prep/model"
)

// Vocabulary maps each unique token across all examples it was built from
// to a dense integer id. Ids run from 1 to Size() in lexicographic token
// order; id 0 is reserved as the padding sentinel and never denotes a real
// token.
type Vocabulary struct {
	Mu     sync.RWMutex
	Index  map[string]int
	Tokens []string // sorted; Tokens[i] carries id i+1
}

// Build computes the vocabulary over every provided example set. All
// splits that will later be vectorized against this vocabulary must be
// passed here, otherwise lookups fail during vectorization. The result is
// deterministic: the same token union always produces the same ids.
func Build(sets ...[]model.Example) *Vocabulary {
	seen := make(map[string]struct{})
	for _, set := range sets {
		for _, example := range set {
			for _, token := range example.Story {
				seen[token] = struct{}{}
			}
			for _, token := range example.Question {
				seen[token] = struct{}{}
			}
			seen[example.Answer] = struct{}{}
		}
	}

	tokens := make([]string, 0, len(seen))
	for token := range seen {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	index := make(map[string]int, len(tokens))
	for i, token := range tokens {
		index[token] = i + 1
	}

	return &Vocabulary{Index: index, Tokens: tokens}
}

// ID returns the id assigned to the token. A miss is fatal for the caller:
// no unknown-token sentinel exists in this pipeline.
func (v *Vocabulary) ID(token string) (int, error) {
	v.Mu.RLock()
	defer v.Mu.RUnlock()

	id, ok := v.Index[token]
	if !ok {
		return 0, errors.NewUnknownTokenError(token)
	}
	return id, nil
}

// Token returns the token carrying the given id, or false for id 0 and
// ids outside the assigned range.
func (v *Vocabulary) Token(id int) (string, bool) {
	v.Mu.RLock()
	defer v.Mu.RUnlock()

	if id < 1 || id > len(v.Tokens) {
		return "", false
	}
	return v.Tokens[id-1], true
}

// Size returns the number of distinct tokens (the highest assigned id).
func (v *Vocabulary) Size() int {
	v.Mu.RLock()
	defer v.Mu.RUnlock()
	return len(v.Tokens)
}

// gobVocabularyData is a helper struct for Gob encoding/decoding
// Vocabulary data. It excludes the mutex.
type gobVocabularyData struct {
	Index  map[string]int
	Tokens []string
}

// GobEncode implements the gob.GobEncoder interface for Vocabulary.
func (v *Vocabulary) GobEncode() ([]byte, error) {
	v.Mu.RLock() // Ensure consistent data during encoding
	defer v.Mu.RUnlock()

	dataToEncode := gobVocabularyData{
		Index:  v.Index,
		Tokens: v.Tokens,
	}

	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)
	if err := encoder.Encode(dataToEncode); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface for Vocabulary.
func (v *Vocabulary) GobDecode(data []byte) error {
	decodedData := gobVocabularyData{}

	buf := bytes.NewBuffer(data)
	decoder := gob.NewDecoder(buf)
	if err := decoder.Decode(&decodedData); err != nil {
		return err
	}

	v.Mu.Lock()
	defer v.Mu.Unlock()
	v.Index = decodedData.Index
	v.Tokens = decodedData.Tokens
	return nil
}
