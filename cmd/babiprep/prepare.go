package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-babi-prep/config"
	"github.com/gcbaptista/go-babi-prep/internal/engine"
	"github.com/gcbaptista/go-babi-prep/store"
)

var prepareSettings config.DatasetSettings

// prepareCmd represents the prepare command
var prepareCmd = &cobra.Command{
	Use:   "prepare [dataset_name]",
	Short: "Prepare a dataset from one bAbI task",
	Long: `Run the full preparation pipeline for one bAbI task: fetch the corpus,
parse both splits into examples, build the shared vocabulary, vectorize
the examples and persist everything under the data directory.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prepareSettings.Name = args[0]

		eng := engine.NewEngine(dataDir)
		defer eng.Close()

		if err := eng.PrepareDataset(prepareSettings); err != nil {
			fmt.Printf("Error preparing dataset: %v\n", err)
			os.Exit(1)
		}

		accessor, err := eng.GetDataset(prepareSettings.Name)
		if err != nil {
			fmt.Printf("Error reading prepared dataset: %v\n", err)
			os.Exit(1)
		}

		train, _ := accessor.Examples(store.SplitTrain)
		test, _ := accessor.Examples(store.SplitTest)
		storyWidth, questionWidth := accessor.Widths()
		fmt.Printf("Prepared dataset %q: %d train / %d test examples, vocabulary size %d, story width %d, question width %d\n",
			prepareSettings.Name, len(train), len(test), accessor.Vocabulary().Size(), storyWidth, questionWidth)
	},
}

func init() {
	rootCmd.AddCommand(prepareCmd)

	prepareCmd.Flags().IntVarP(&prepareSettings.TaskID, "task", "t", 1, "bAbI task number (1-20)")
	prepareCmd.Flags().StringVar(&prepareSettings.Variant, "variant", config.VariantEN, "Corpus variant (en or en-10k)")
	prepareCmd.Flags().BoolVar(&prepareSettings.OnlySupporting, "only-supporting", false, "Keep only the supporting facts of each question")
	prepareCmd.Flags().IntVar(&prepareSettings.MaxStoryLength, "max-story-length", 0, "Drop examples whose story has this many tokens or more (0 disables)")
	prepareCmd.Flags().StringVar(&prepareSettings.CorpusURL, "url", config.DefaultCorpusURL, "URL of the bAbI corpus archive")
}
