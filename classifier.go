package main

import (
	"strings"
)

// TranscriptFetcher turns a video URL into raw transcript text.
type TranscriptFetcher interface {
	Fetch(url string) (string, error)
}

// ArticleFetcher turns an article URL into raw article text.
type ArticleFetcher interface {
	Fetch(url string) (string, error)
}

// Classifier checks a URL against the ledger and routes it to the matching
// content fetcher. The video-hosting check runs before the generic scheme
// check, so a video link with an http prefix still goes to the transcript
// fetcher. Exactly one fetch path executes per call.
type Classifier struct {
	ledger      *Ledger
	transcripts TranscriptFetcher
	articles    ArticleFetcher
}

// NewClassifier creates a classifier over the given ledger and fetchers.
func NewClassifier(ledger *Ledger, transcripts TranscriptFetcher, articles ArticleFetcher) *Classifier {
	return &Classifier{
		ledger:      ledger,
		transcripts: transcripts,
		articles:    articles,
	}
}

// Classify rejects duplicates, dispatches to a fetcher, and returns the
// extracted content. Duplicate detection is an exact string match; trailing
// slashes, query strings and scheme case all produce distinct entries.
func (c *Classifier) Classify(rawURL string) (*ContentPayload, error) {
	seen, err := c.ledger.Load()
	if err != nil {
		return nil, err
	}
	if _, ok := seen[rawURL]; ok {
		return nil, &DuplicateURLError{URL: rawURL}
	}

	var text string
	switch {
	case isVideoURL(rawURL):
		text, err = c.transcripts.Fetch(rawURL)
	case strings.HasPrefix(rawURL, "http"):
		text, err = c.articles.Fetch(rawURL)
	default:
		return nil, &UnsupportedURLError{URL: rawURL}
	}
	if err != nil {
		return nil, err
	}

	return &ContentPayload{URL: rawURL, Text: text}, nil
}

func isVideoURL(rawURL string) bool {
	return strings.Contains(rawURL, "youtube.com") ||
		strings.Contains(rawURL, "youtu.be")
}
