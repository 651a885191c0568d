// Package stats computes corpus statistics over prepared datasets.
package stats

import (
	"sort"

	"github.com/gcbaptista/go-babi-prep/config"
	"github.com/gcbaptista/go-babi-prep/model"
	"github.com/gcbaptista/go-babi-prep/services"
	"github.com/gcbaptista/go-babi-prep/store"
)

// topAnswersLimit caps the answer distribution returned in stats.
const topAnswersLimit = 10

// Compute builds the statistics summary for one prepared dataset from its
// raw components. Means and the answer distribution cover both splits.
func Compute(settings config.DatasetSettings, train, test []model.Example, vocabSize, storyWidth, questionWidth int) model.DatasetStats {
	stats := model.DatasetStats{
		DatasetName:    settings.Name,
		TaskID:         settings.TaskID,
		TrainExamples:  len(train),
		TestExamples:   len(test),
		VocabularySize: vocabSize,
		StoryWidth:     storyWidth,
		QuestionWidth:  questionWidth,
	}

	total := len(train) + len(test)
	if total == 0 {
		stats.TopAnswers = []model.AnswerCount{}
		return stats
	}

	storyTokens := 0
	questionTokens := 0
	answerCounts := make(map[string]int)
	for _, set := range [][]model.Example{train, test} {
		for _, example := range set {
			storyTokens += example.StoryLength()
			questionTokens += example.QuestionLength()
			answerCounts[example.Answer]++
		}
	}

	stats.MeanStoryLength = float64(storyTokens) / float64(total)
	stats.MeanQuestionLength = float64(questionTokens) / float64(total)
	stats.TopAnswers = topAnswers(answerCounts, topAnswersLimit)
	return stats
}

// topAnswers sorts the answer distribution by descending count, breaking
// ties alphabetically so the output is deterministic.
func topAnswers(counts map[string]int, limit int) []model.AnswerCount {
	answers := make([]model.AnswerCount, 0, len(counts))
	for answer, count := range counts {
		answers = append(answers, model.AnswerCount{Answer: answer, Count: count})
	}

	sort.Slice(answers, func(i, j int) bool {
		if answers[i].Count != answers[j].Count {
			return answers[i].Count > answers[j].Count
		}
		return answers[i].Answer < answers[j].Answer
	})

	if len(answers) > limit {
		answers = answers[:limit]
	}
	return answers
}

// Service resolves dataset statistics through the dataset manager.
type Service struct {
	manager services.DatasetManager
}

// NewService creates a new statistics service.
func NewService(manager services.DatasetManager) *Service {
	return &Service{manager: manager}
}

// DatasetStats computes the statistics of a prepared dataset by name.
func (s *Service) DatasetStats(name string) (model.DatasetStats, error) {
	accessor, err := s.manager.GetDataset(name)
	if err != nil {
		return model.DatasetStats{}, err
	}

	train, err := accessor.Examples(store.SplitTrain)
	if err != nil {
		return model.DatasetStats{}, err
	}
	test, err := accessor.Examples(store.SplitTest)
	if err != nil {
		return model.DatasetStats{}, err
	}

	storyWidth, questionWidth := accessor.Widths()
	return Compute(accessor.Settings(), train, test, accessor.Vocabulary().Size(), storyWidth, questionWidth), nil
}
