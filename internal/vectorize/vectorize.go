// Package vectorize turns parsed examples into fixed-width integer
// tensors: left-padded story and question id sequences and one-hot answer
// vectors.
package vectorize

import (
	"github.com/gcbaptista/go-babi-prep/internal/errors"
	"github.com/gcbaptista/go-babi-prep/model"
	"github.com/gcbaptista/go-babi-prep/vocab"
)

// Widths returns the maximum story and question token counts across all
// provided example sets. Every split that shares a tensor shape must be
// passed here before either split is vectorized.
func Widths(sets ...[]model.Example) (storyWidth, questionWidth int) {
	for _, set := range sets {
		for _, example := range set {
			if example.StoryLength() > storyWidth {
				storyWidth = example.StoryLength()
			}
			if example.QuestionLength() > questionWidth {
				questionWidth = example.QuestionLength()
			}
		}
	}
	return storyWidth, questionWidth
}

// PadIDs maps tokens to their vocabulary ids and left-pads the sequence
// with the 0 sentinel to the given width, keeping the values
// right-aligned. Sequences longer than the width are an error: widths are
// corpus-wide maxima and must be computed before vectorizing.
func PadIDs(tokens []string, voc *vocab.Vocabulary, width int, kind string) ([]int, error) {
	if len(tokens) > width {
		return nil, errors.NewSequenceTooLongError(kind, len(tokens), width)
	}

	padded := make([]int, width)
	offset := width - len(tokens)
	for i, token := range tokens {
		id, err := voc.ID(token)
		if err != nil {
			return nil, err
		}
		padded[offset+i] = id
	}
	return padded, nil
}

// OneHot builds the one-hot answer vector of length vocabulary size + 1,
// mirroring the extra slot the 0 sentinel occupies in the id space.
func OneHot(answer string, voc *vocab.Vocabulary) ([]int, error) {
	id, err := voc.ID(answer)
	if err != nil {
		return nil, err
	}

	hot := make([]int, voc.Size()+1)
	hot[id] = 1
	return hot, nil
}

// Examples vectorizes one split against the shared vocabulary and widths.
func Examples(examples []model.Example, voc *vocab.Vocabulary, storyWidth, questionWidth int) (*model.SplitTensors, error) {
	tensors := &model.SplitTensors{
		Stories:   make([][]int, 0, len(examples)),
		Questions: make([][]int, 0, len(examples)),
		Answers:   make([][]int, 0, len(examples)),
	}

	for _, example := range examples {
		story, err := PadIDs(example.Story, voc, storyWidth, "story")
		if err != nil {
			return nil, err
		}
		question, err := PadIDs(example.Question, voc, questionWidth, "question")
		if err != nil {
			return nil, err
		}
		answer, err := OneHot(example.Answer, voc)
		if err != nil {
			return nil, err
		}

		tensors.Stories = append(tensors.Stories, story)
		tensors.Questions = append(tensors.Questions, question)
		tensors.Answers = append(tensors.Answers, answer)
	}
	return tensors, nil
}
