package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Ledger is the newline-delimited record of already-summarized URLs, kept at
// a fixed path inside the vault. URLs are appended, never removed or
// reordered. No state is cached between runs.
type Ledger struct {
	path string
}

// NewLedger creates a ledger backed by the file at path.
func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// Load reads the whole ledger file and returns the recorded URLs. A missing
// file is an empty ledger. Blank lines, including the trailing one left by
// the terminal newline, are skipped.
func (l *Ledger) Load() (map[string]struct{}, error) {
	urls := make(map[string]struct{})

	data, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return urls, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", l.path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		urls[line] = struct{}{}
	}

	return urls, nil
}

// Record appends the URL followed by a newline. It does not check for prior
// existence; the classifier is responsible for preventing duplicate appends.
func (l *Ledger) Record(url string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening ledger %s: %w", l.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(url + "\n"); err != nil {
		return fmt.Errorf("appending to ledger %s: %w", l.path, err)
	}

	return nil
}

// Contents returns the raw ledger text for display. A missing file reads as
// empty.
func (l *Ledger) Contents() (string, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading ledger %s: %w", l.path, err)
	}
	return string(data), nil
}
