package main

import (
	"os"

	"github.com/spf13/cobra"
)

var dataDir string

var rootCmd = &cobra.Command{
	Use:   "babiprep",
	Short: "Prepare bAbI question-answering datasets for ML models",
	Long: `babiprep downloads the bAbI task corpus, parses its stories into
question-answering examples, builds a shared vocabulary and vectorizes
everything into padded integer arrays ready for model training.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "./babi_data", "Directory for the corpus cache and prepared datasets")
}
