package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// TranscriptClient fetches YouTube transcripts through an external transcript
// API, using a local file cache so a failed later stage can be re-run without
// refetching. No retries: a transcript API failure is terminal.
type TranscriptClient struct {
	client   *http.Client
	cacheDir string
}

// NewTranscriptClient creates a transcript client with the default cache
// location. API configuration is read from the environment at fetch time.
func NewTranscriptClient() *TranscriptClient {
	return &TranscriptClient{
		client:   &http.Client{Timeout: 30 * time.Second},
		cacheDir: filepath.Join(".cache", "youtube"),
	}
}

// Fetch returns the transcript text for a video URL.
func (tc *TranscriptClient) Fetch(videoURL string) (string, error) {
	apiURL := os.Getenv("YOUTUBE_TRANSCRIPT_API_URL")
	apiKey := os.Getenv("YOUTUBE_TRANSCRIPT_API_KEY")
	if apiURL == "" || apiKey == "" {
		return "", fmt.Errorf("transcript API configuration missing: set YOUTUBE_TRANSCRIPT_API_URL and YOUTUBE_TRANSCRIPT_API_KEY")
	}

	videoID, err := extractVideoID(videoURL)
	if err != nil {
		return "", fmt.Errorf("extracting video ID: %w", err)
	}

	cachePath := filepath.Join(tc.cacheDir, videoID)
	if content, err := os.ReadFile(cachePath); err == nil {
		log.Debugf("transcript cache hit: %s", videoID)
		return string(content), nil
	}

	log.Infof("→ Fetching transcript for %s", videoID)
	transcript, err := tc.fetchTranscript(videoID, apiURL, apiKey)
	if err != nil {
		return "", fmt.Errorf("fetching transcript: %w", err)
	}

	os.MkdirAll(tc.cacheDir, 0755)
	os.WriteFile(cachePath, []byte(transcript), 0644)

	return transcript, nil
}

func extractVideoID(videoURL string) (string, error) {
	parsedURL, err := url.Parse(videoURL)
	if err != nil {
		return "", err
	}

	if !strings.Contains(parsedURL.Host, "youtube.com") && !strings.Contains(parsedURL.Host, "youtu.be") {
		return "", fmt.Errorf("not a YouTube URL")
	}

	// youtu.be URLs carry the ID in the path
	if strings.Contains(parsedURL.Host, "youtu.be") {
		videoID := strings.TrimPrefix(parsedURL.Path, "/")
		if videoID == "" {
			return "", fmt.Errorf("no video ID found in URL")
		}
		return videoID, nil
	}

	videoID := parsedURL.Query().Get("v")
	if videoID == "" {
		return "", fmt.Errorf("no video ID found in URL")
	}
	return videoID, nil
}

func (tc *TranscriptClient) fetchTranscript(videoID, apiURL, apiKey string) (string, error) {
	videoURL := fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)

	req, err := http.NewRequest("GET", apiURL, nil)
	if err != nil {
		return "", err
	}

	q := req.URL.Query()
	q.Add("url", videoURL)
	q.Add("api_key", apiKey)
	q.Add("text", "true")
	req.URL.RawQuery = q.Encode()

	resp, err := tc.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &HTTPError{StatusCode: resp.StatusCode, URL: videoURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
