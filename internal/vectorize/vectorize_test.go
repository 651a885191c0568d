package vectorize

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/gcbaptista/go-babi-prep/internal/errors"
	"github.com/gcbaptista/go-babi-prep/model"
	"github.com/gcbaptista/go-babi-prep/vocab"
)

func buildTestVocabulary() *vocab.Vocabulary {
	return vocab.Build([]model.Example{
		{
			Story:    []string{"Mary", "moved", "to", "the", "bathroom", "."},
			Question: []string{"Where", "is", "Mary", "?"},
			Answer:   "bathroom",
		},
	})
}

func TestWidths(t *testing.T) {
	train := []model.Example{
		{Story: []string{"a", "b", "c"}, Question: []string{"q"}},
		{Story: []string{"a"}, Question: []string{"q", "r", "s"}},
	}
	test := []model.Example{
		{Story: []string{"a", "b", "c", "d", "e"}, Question: []string{"q", "r"}},
	}

	storyWidth, questionWidth := Widths(train, test)
	if storyWidth != 5 {
		t.Errorf("storyWidth = %d, expected the maximum over both sets 5", storyWidth)
	}
	if questionWidth != 3 {
		t.Errorf("questionWidth = %d, expected the maximum over both sets 3", questionWidth)
	}
}

func TestWidthsEmpty(t *testing.T) {
	storyWidth, questionWidth := Widths(nil, []model.Example{})
	if storyWidth != 0 || questionWidth != 0 {
		t.Errorf("Widths over empty sets = (%d, %d), expected (0, 0)", storyWidth, questionWidth)
	}
}

func TestPadIDs(t *testing.T) {
	voc := buildTestVocabulary()

	padded, err := PadIDs([]string{"Where", "is", "Mary", "?"}, voc, 6, "question")
	if err != nil {
		t.Fatalf("PadIDs failed: %v", err)
	}

	if len(padded) != 6 {
		t.Fatalf("Padded length = %d, expected 6", len(padded))
	}

	// Values sit right-aligned behind the zero padding.
	if padded[0] != 0 || padded[1] != 0 {
		t.Errorf("Leading positions should carry the 0 sentinel, got %v", padded[:2])
	}

	expectedTail := make([]int, 0, 4)
	for _, token := range []string{"Where", "is", "Mary", "?"} {
		id, err := voc.ID(token)
		if err != nil {
			t.Fatalf("ID(%q) failed: %v", token, err)
		}
		expectedTail = append(expectedTail, id)
	}
	if !reflect.DeepEqual(padded[2:], expectedTail) {
		t.Errorf("Padded tail = %v, expected %v", padded[2:], expectedTail)
	}
}

func TestPadIDsExactWidth(t *testing.T) {
	voc := buildTestVocabulary()

	padded, err := PadIDs([]string{"is", "the"}, voc, 2, "story")
	if err != nil {
		t.Fatalf("PadIDs failed: %v", err)
	}
	if padded[0] == 0 || padded[1] == 0 {
		t.Errorf("A sequence at exactly the width needs no padding, got %v", padded)
	}
}

func TestPadIDsTooLong(t *testing.T) {
	voc := buildTestVocabulary()

	_, err := PadIDs([]string{"Mary", "moved", "to"}, voc, 2, "story")
	if err == nil {
		t.Fatal("Expected an error for a sequence longer than the width")
	}
	if !stderrors.Is(err, errors.ErrSequenceTooLong) {
		t.Errorf("Expected a sequence too long error, got %v", err)
	}

	var tooLong *errors.SequenceTooLongError
	if !stderrors.As(err, &tooLong) {
		t.Fatalf("Expected a SequenceTooLongError, got %T", err)
	}
	if tooLong.Kind != "story" || tooLong.Length != 3 || tooLong.Width != 2 {
		t.Errorf("Error context = %+v, expected kind story, length 3, width 2", tooLong)
	}
}

func TestPadIDsUnknownToken(t *testing.T) {
	voc := buildTestVocabulary()

	_, err := PadIDs([]string{"hallway"}, voc, 4, "story")
	if !stderrors.Is(err, errors.ErrUnknownToken) {
		t.Errorf("Expected an unknown token error, got %v", err)
	}
}

func TestOneHot(t *testing.T) {
	voc := buildTestVocabulary()

	hot, err := OneHot("bathroom", voc)
	if err != nil {
		t.Fatalf("OneHot failed: %v", err)
	}

	if len(hot) != voc.Size()+1 {
		t.Fatalf("One-hot length = %d, expected vocabulary size + 1 = %d", len(hot), voc.Size()+1)
	}

	id, err := voc.ID("bathroom")
	if err != nil {
		t.Fatalf("ID failed: %v", err)
	}

	sum := 0
	for position, value := range hot {
		sum += value
		if value == 1 && position != id {
			t.Errorf("Hot position = %d, expected %d", position, id)
		}
	}
	if sum != 1 {
		t.Errorf("One-hot vector should carry exactly one 1, sum = %d", sum)
	}
	if hot[0] != 0 {
		t.Error("Position 0 mirrors the padding sentinel and must stay 0")
	}
}

func TestOneHotUnknownAnswer(t *testing.T) {
	voc := buildTestVocabulary()

	if _, err := OneHot("garden", voc); !stderrors.Is(err, errors.ErrUnknownToken) {
		t.Errorf("Expected an unknown token error, got %v", err)
	}
}

func TestExamples(t *testing.T) {
	examples := []model.Example{
		{
			Story:    []string{"Mary", "moved", "to", "the", "bathroom", "."},
			Question: []string{"Where", "is", "Mary", "?"},
			Answer:   "bathroom",
		},
		{
			Story:    []string{"Mary", "moved", "."},
			Question: []string{"Where", "is", "Mary", "?"},
			Answer:   "bathroom",
		},
	}
	voc := vocab.Build(examples)
	storyWidth, questionWidth := Widths(examples)

	tensors, err := Examples(examples, voc, storyWidth, questionWidth)
	if err != nil {
		t.Fatalf("Examples failed: %v", err)
	}

	if tensors.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", tensors.Len())
	}
	for i := range examples {
		if len(tensors.Stories[i]) != storyWidth {
			t.Errorf("Story %d width = %d, expected %d", i, len(tensors.Stories[i]), storyWidth)
		}
		if len(tensors.Questions[i]) != questionWidth {
			t.Errorf("Question %d width = %d, expected %d", i, len(tensors.Questions[i]), questionWidth)
		}
		if len(tensors.Answers[i]) != voc.Size()+1 {
			t.Errorf("Answer %d length = %d, expected %d", i, len(tensors.Answers[i]), voc.Size()+1)
		}
	}

	// The shorter story is left-padded to the shared width.
	if tensors.Stories[1][0] != 0 {
		t.Errorf("Short story should be left-padded, got leading id %d", tensors.Stories[1][0])
	}
}

func TestExamplesEmptySplit(t *testing.T) {
	voc := buildTestVocabulary()

	tensors, err := Examples(nil, voc, 4, 2)
	if err != nil {
		t.Fatalf("Examples failed on empty split: %v", err)
	}
	if tensors.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", tensors.Len())
	}
}
