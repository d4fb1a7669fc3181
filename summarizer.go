package main

import (
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
	log "github.com/sirupsen/logrus"
)

const (
	titleOpen  = "[["
	titleClose = "]]"
)

// Languages the summary can be written in. Detection falls back to English
// when none of these matches with confidence.
var summaryLanguages = []lingua.Language{
	lingua.English,
	lingua.German,
	lingua.French,
	lingua.Spanish,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Dutch,
	lingua.Russian,
	lingua.Japanese,
	lingua.Chinese,
}

// Summarizer sends extracted text through the prompt template to the
// completion service and parses the structured response into (title, body).
type Summarizer struct {
	completer Completer
	model     string
	template  string
	detector  lingua.LanguageDetector
}

// NewSummarizer creates a summarizer using the configured model and prompt
// template. The template must contain the content placeholder.
func NewSummarizer(completer Completer, cfg *Config) (*Summarizer, error) {
	template := cfg.PromptTemplate()
	if !strings.Contains(template, "{{.content}}") {
		return nil, fmt.Errorf("prompt template must contain {{.content}} variable")
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(summaryLanguages...).
		Build()

	return &Summarizer{
		completer: completer,
		model:     cfg.Settings.Model,
		template:  template,
		detector:  detector,
	}, nil
}

// Summarize issues one completion call and parses the result. A response
// without the title delimiter is a terminal failure: the caller gets
// ErrNoTitle, never a partial result.
func (s *Summarizer) Summarize(payload *ContentPayload) (SummaryResult, error) {
	language := s.detectLanguage(payload.Text)

	prompt := strings.ReplaceAll(s.template, "{{.content}}", payload.Text)
	prompt = strings.ReplaceAll(prompt, "{{.language}}", language)

	log.Infof("→ Summarizing %s (%s, model %s)", payload.URL, language, s.model)
	raw, err := s.completer.Complete(s.model, prompt)
	if err != nil {
		return SummaryResult{}, fmt.Errorf("completion service: %w", err)
	}

	return parseSummary(raw)
}

// detectLanguage returns the English name of the dominant language of the
// text, so the summary matches the source.
func (s *Summarizer) detectLanguage(text string) string {
	language, ok := s.detector.DetectLanguageOf(text)
	if !ok {
		return "English"
	}
	return language.String()
}

// parseSummary splits the raw model response on the [[Title]] delimiters:
// everything before the opening delimiter is the body, everything between
// the delimiters is the title. Bracket characters are stripped from the
// title defensively and embedded newlines are rejoined into a single line.
func parseSummary(raw string) (SummaryResult, error) {
	end := strings.Index(raw, titleClose)
	if end == -1 {
		return SummaryResult{}, ErrNoTitle
	}

	var body, title string
	if start := strings.Index(raw, titleOpen); start != -1 && start < end {
		body = raw[:start]
		title = raw[start+len(titleOpen) : end]
	} else {
		title = raw[:end]
	}

	title = strings.NewReplacer("[", "", "]", "", ":", "").Replace(title)
	title = strings.Join(strings.Split(title, "\n"), " ")
	title = strings.TrimSpace(title)

	if title == "" {
		return SummaryResult{}, ErrNoTitle
	}

	return SummaryResult{Title: title, Body: body}, nil
}
