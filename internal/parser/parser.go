// Package parser converts raw bAbI task files into question examples.
//
// Every line of a task file starts with a decimal sentence id followed by a
// space. An id of 1 starts a new story. Narrative lines extend the current
// story; question lines carry a tab-delimited triple of question text,
// answer token and space-separated supporting-fact ids (1-based indices
// into the story buffer).
package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/gcbaptista/go-babi-prep/internal/errors"
	"github.com/gcbaptista/go-babi-prep/internal/tokenizer"
	"github.com/gcbaptista/go-babi-prep/model"
)

// Options controls how stories are resolved into examples.
type Options struct {
	// OnlySupporting keeps only the sentences referenced by a question's
	// supporting-fact ids instead of the full story so far.
	OnlySupporting bool

	// MaxStoryLength discards examples whose flattened story token count is
	// not strictly less than this bound. Zero disables the filter.
	MaxStoryLength int
}

// storyState is the in-progress story buffer threaded through the line
// fold. Question lines append a nil placeholder sentence so that later
// sentence ids keep lining up with buffer positions.
type storyState struct {
	sentences [][]string
}

func (s *storyState) reset() {
	s.sentences = nil
}

func (s *storyState) appendSentence(tokens []string) {
	s.sentences = append(s.sentences, tokens)
}

// flatten concatenates all non-empty sentences of the buffer. Placeholder
// entries inserted after question lines contribute nothing.
func (s *storyState) flatten() []string {
	flat := make([]string, 0)
	for _, sentence := range s.sentences {
		flat = append(flat, sentence...)
	}
	return flat
}

// flattenSupporting concatenates only the sentences referenced by the
// 1-based supporting-fact ids, in the order the ids are listed.
func (s *storyState) flattenSupporting(ids []int) []string {
	flat := make([]string, 0)
	for _, id := range ids {
		flat = append(flat, s.sentences[id-1]...)
	}
	return flat
}

// ParseStories reads bAbI task lines from r and produces one example per
// question line. Malformed lines are fatal: the first one encountered
// aborts the parse with a MalformedLineError and no partial result.
func ParseStories(r io.Reader, opts Options) ([]model.Example, error) {
	examples := make([]model.Example, 0)
	state := &storyState{}

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), "\r")

		example, isQuestion, err := parseLine(line, lineNumber, state, opts)
		if err != nil {
			return nil, err
		}
		if isQuestion {
			examples = append(examples, example)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if opts.MaxStoryLength > 0 {
		examples = filterByStoryLength(examples, opts.MaxStoryLength)
	}
	return examples, nil
}

// parseLine folds a single line into the story state. It returns the
// produced example when the line was a question line.
func parseLine(line string, lineNumber int, state *storyState, opts Options) (model.Example, bool, error) {
	idPart, content, found := strings.Cut(line, " ")
	if !found {
		return model.Example{}, false, errors.NewMalformedLineError(lineNumber, line, "missing sentence id separator")
	}

	sentenceID, err := strconv.Atoi(idPart)
	if err != nil {
		return model.Example{}, false, errors.NewMalformedLineError(lineNumber, line, "non-numeric sentence id")
	}

	// Sentence id 1 starts a new story.
	if sentenceID == 1 {
		state.reset()
	}

	if !strings.Contains(content, "\t") {
		state.appendSentence(tokenizer.Tokenize(content))
		return model.Example{}, false, nil
	}

	parts := strings.Split(content, "\t")
	if len(parts) != 3 {
		return model.Example{}, false, errors.NewMalformedLineError(lineNumber, line, "question line must carry question, answer and supporting ids")
	}

	question := tokenizer.Tokenize(parts[0])
	answer := strings.TrimSpace(parts[1])
	if answer == "" {
		return model.Example{}, false, errors.NewMalformedLineError(lineNumber, line, "empty answer")
	}

	var story []string
	if opts.OnlySupporting {
		supportingIDs, err := parseSupportingIDs(parts[2], line, lineNumber, len(state.sentences))
		if err != nil {
			return model.Example{}, false, err
		}
		story = state.flattenSupporting(supportingIDs)
	} else {
		story = state.flatten()
	}

	// Placeholder keeps subsequent sentence ids aligned with buffer
	// positions.
	state.appendSentence(nil)

	return model.Example{Story: story, Question: question, Answer: answer}, true, nil
}

// parseSupportingIDs validates the supporting-fact id list of a question
// line. An empty list or an id outside [1, storyLen] is a fatal parse
// error rather than a guess.
func parseSupportingIDs(field, line string, lineNumber, storyLen int) ([]int, error) {
	fields := strings.Fields(field)
	if len(fields) == 0 {
		return nil, errors.NewMalformedLineError(lineNumber, line, "empty supporting-fact list")
	}

	ids := make([]int, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.NewMalformedLineError(lineNumber, line, "non-numeric supporting-fact id")
		}
		if id < 1 || id > storyLen {
			return nil, errors.NewMalformedLineError(lineNumber, line, "supporting-fact id out of range")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func filterByStoryLength(examples []model.Example, maxLength int) []model.Example {
	kept := make([]model.Example, 0, len(examples))
	for _, example := range examples {
		if example.StoryLength() < maxLength {
			kept = append(kept, example)
		}
	}
	return kept
}
