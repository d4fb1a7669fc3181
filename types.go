package main

import (
	"errors"
	"fmt"
)

// ContentPayload is the raw extracted text for a URL, produced by one of the
// fetch collaborators and consumed immediately by the summarizer.
type ContentPayload struct {
	URL  string
	Text string
}

// SummaryResult is the (title, body) pair parsed from the model response.
type SummaryResult struct {
	Title string
	Body  string
}

// RunResult is what a successful pipeline run hands back to the CLI.
type RunResult struct {
	Title string
	Body  string
	Path  string
}

// DuplicateURLError means the URL is already recorded in the ledger.
type DuplicateURLError struct {
	URL string
}

func (e *DuplicateURLError) Error() string {
	return fmt.Sprintf("already summarized: %s", e.URL)
}

// UnsupportedURLError means the input matched neither recognized pattern.
type UnsupportedURLError struct {
	URL string
}

func (e *UnsupportedURLError) Error() string {
	return fmt.Sprintf("unsupported input: %s", e.URL)
}

// HTTPError represents an HTTP error with status code
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// ErrNoTitle means the model response lacked the title delimiter. Terminal:
// no note is written and nothing is recorded in the ledger.
var ErrNoTitle = errors.New("no title found in model response")
