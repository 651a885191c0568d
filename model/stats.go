package model

// AnswerCount is one entry of an answer frequency distribution.
type AnswerCount struct {
	Answer string `json:"answer"`
	Count  int    `json:"count"`
}

// DatasetStats summarizes a prepared dataset across both splits.
type DatasetStats struct {
	DatasetName        string        `json:"dataset_name"`
	TaskID             int           `json:"task_id"`
	TrainExamples      int           `json:"train_examples"`
	TestExamples       int           `json:"test_examples"`
	VocabularySize     int           `json:"vocabulary_size"`
	StoryWidth         int           `json:"story_width"`
	QuestionWidth      int           `json:"question_width"`
	MeanStoryLength    float64       `json:"mean_story_length"`
	MeanQuestionLength float64       `json:"mean_question_length"`
	TopAnswers         []AnswerCount `json:"top_answers"`
}
