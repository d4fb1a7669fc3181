package main

import (
	"fmt"
)

// Processor composes the pipeline: classifier → summarizer → note writer.
// One URL per invocation, fully synchronous; every failure is terminal.
type Processor struct {
	classifier *Classifier
	summarizer *Summarizer
	notes      *NoteWriter
	ledger     *Ledger
}

// NewProcessor wires up the pipeline from configuration.
func NewProcessor(cfg *Config) (*Processor, error) {
	ledger := NewLedger(cfg.LedgerPath)

	completer, err := NewCompleter(cfg.Settings)
	if err != nil {
		return nil, err
	}

	summarizer, err := NewSummarizer(completer, cfg)
	if err != nil {
		return nil, err
	}

	return &Processor{
		classifier: NewClassifier(ledger, NewTranscriptClient(), NewArticleClient()),
		summarizer: summarizer,
		notes:      NewNoteWriter(cfg.VaultDir, ledger),
		ledger:     ledger,
	}, nil
}

// Run processes a single URL end to end and returns the parsed summary and
// the note path.
func (p *Processor) Run(rawURL string) (*RunResult, error) {
	payload, err := p.classifier.Classify(rawURL)
	if err != nil {
		return nil, err
	}

	summary, err := p.summarizer.Summarize(payload)
	if err != nil {
		return nil, err
	}

	path, err := p.notes.Write(summary, payload.URL)
	if err != nil {
		return nil, fmt.Errorf("saving note: %w", err)
	}

	return &RunResult{Title: summary.Title, Body: summary.Body, Path: path}, nil
}

// Ledger exposes the ledger for display after a run.
func (p *Processor) Ledger() *Ledger {
	return p.ledger
}
