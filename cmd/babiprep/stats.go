package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-babi-prep/internal/engine"
	"github.com/gcbaptista/go-babi-prep/internal/stats"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [dataset_name]",
	Short: "Show statistics for a prepared dataset",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		eng := engine.NewEngine(dataDir)
		defer eng.Close()

		datasetStats, err := stats.NewService(eng).DatasetStats(args[0])
		if err != nil {
			fmt.Printf("Error computing statistics: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Dataset:          %s (task %d)\n", datasetStats.DatasetName, datasetStats.TaskID)
		fmt.Printf("Examples:         %d train / %d test\n", datasetStats.TrainExamples, datasetStats.TestExamples)
		fmt.Printf("Vocabulary size:  %d\n", datasetStats.VocabularySize)
		fmt.Printf("Story width:      %d (mean length %.2f)\n", datasetStats.StoryWidth, datasetStats.MeanStoryLength)
		fmt.Printf("Question width:   %d (mean length %.2f)\n", datasetStats.QuestionWidth, datasetStats.MeanQuestionLength)
		fmt.Println("Top answers:")
		for _, answer := range datasetStats.TopAnswers {
			fmt.Printf("  %-15s %d\n", answer.Answer, answer.Count)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
