package model

// Example is a single question together with its resolved story context:
// the flattened story tokens, the question tokens, and the answer token.
// The answer is kept as one token even when the corpus joins multiple
// words with commas (e.g. "apple,milk" in the lists-sets task).
type Example struct {
	Story    []string `json:"story"`
	Question []string `json:"question"`
	Answer   string   `json:"answer"`
}

// StoryLength returns the number of tokens in the flattened story.
func (e Example) StoryLength() int {
	return len(e.Story)
}

// QuestionLength returns the number of tokens in the question.
func (e Example) QuestionLength() int {
	return len(e.Question)
}

// ContainsToken reports whether the token appears in the example's story
// or question. Used by the example inspection endpoints.
func (e Example) ContainsToken(token string) bool {
	for _, t := range e.Story {
		if t == token {
			return true
		}
	}
	for _, t := range e.Question {
		if t == token {
			return true
		}
	}
	return false
}
