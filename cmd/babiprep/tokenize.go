package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-babi-prep/internal/tokenizer"
)

// tokenizeCmd represents the tokenize command
var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [text]",
	Short: "Tokenize a line of text",
	Long: `Tokenize a line of text the way the dataset pipeline does: maximal
word runs plus single punctuation characters.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tokens := tokenizer.Tokenize(strings.Join(args, " "))
		fmt.Printf("Tokens (%d): %v\n", len(tokens), tokens)
	},
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}
