package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const separator = "----------------------------------------"

var (
	promptPath string
	debugMode  bool
)

var rootCmd = &cobra.Command{
	Use:   "summarizer <url>",
	Short: "Summarize a URL into a markdown note vault",
	Long: `Fetches the content behind a URL (YouTube transcript or article text),
summarizes it with a text-completion model, and saves the summary as a titled
note in the vault named by the OBSIDIAN_PATH environment variable. Each URL is
processed at most once, tracked in <vault>/Summarized_URLs.md.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if debugMode {
			log.SetLevel(log.DebugLevel)
		}

		cfg, err := NewConfig(promptPath)
		if err != nil {
			log.Fatalf("Configuration error: %v", err)
		}

		processor, err := NewProcessor(cfg)
		if err != nil {
			log.Fatalf("Failed to create processor: %v", err)
		}

		result, err := processor.Run(args[0])
		if errors.Is(err, ErrNoTitle) {
			// The original tool printed this and still exited zero; a
			// missing title is a failure, so the exit code now says so.
			fmt.Println("Output is empty.")
			os.Exit(1)
		}
		if err != nil {
			log.Fatalf("Processing failed: %v", err)
		}

		ledgerContents, err := processor.Ledger().Contents()
		if err != nil {
			log.Fatalf("Reading ledger failed: %v", err)
		}

		fmt.Print(ledgerContents)
		fmt.Println(separator)
		fmt.Println(result.Title)
		fmt.Println()
		fmt.Println(result.Body)
		fmt.Println(separator)
		fmt.Println(result.Path)
	},
}

func init() {
	rootCmd.Flags().StringVar(&promptPath, "prompt", "", "Path to custom prompt template file")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
