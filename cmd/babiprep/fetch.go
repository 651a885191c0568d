package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-babi-prep/config"
	"github.com/gcbaptista/go-babi-prep/internal/corpus"
)

var fetchURL string

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the bAbI corpus archive",
	Long: `Download the bAbI tasks archive into the data directory. The archive
is cached, so running fetch again is a no-op unless the cache is removed.`,
	Run: func(cmd *cobra.Command, args []string) {
		uiprogress.Start()
		bar := uiprogress.AddBar(100)
		bar.AppendCompleted()
		bar.PrependElapsed()

		progress := func(fetched, total int64) {
			if total > 0 {
				_ = bar.Set(int(fetched * 100 / total))
			}
		}

		archivePath, err := corpus.EnsureArchive(dataDir, fetchURL, progress)
		uiprogress.Stop()
		if err != nil {
			fmt.Printf("Error fetching corpus: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Corpus archive available at %s\n", archivePath)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchURL, "url", config.DefaultCorpusURL, "URL of the bAbI corpus archive")
}
