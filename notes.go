package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// NoteWriter persists a summary as a titled markdown note in the vault and
// records the source URL in the ledger. The URL is recorded only after the
// file write completes, so a crash mid-write leaves the URL unrecorded and
// the run can safely be repeated.
type NoteWriter struct {
	vaultDir string
	ledger   *Ledger
}

// NewNoteWriter creates a note writer for the given vault directory.
func NewNoteWriter(vaultDir string, ledger *Ledger) *NoteWriter {
	return &NoteWriter{vaultDir: vaultDir, ledger: ledger}
}

// Write saves `<vault>/<sanitized title>.md` containing the title and body
// separated by a blank line, overwriting any existing file of the same name,
// then records the source URL. Returns the note path.
func (w *NoteWriter) Write(result SummaryResult, sourceURL string) (string, error) {
	name := sanitizeTitle(result.Title)
	if name == "" {
		return "", fmt.Errorf("title %q sanitizes to an empty filename", result.Title)
	}

	path := filepath.Join(w.vaultDir, name+".md")
	content := result.Title + "\n\n" + result.Body

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing note: %w", err)
	}

	if err := w.ledger.Record(sourceURL); err != nil {
		return "", fmt.Errorf("recording URL: %w", err)
	}

	log.Infof("✓ Saved note: %s", path)
	return path, nil
}

// sanitizeTitle strips characters that are hostile to file paths or to the
// vault's wiki-link syntax. The title stays human readable rather than being
// slugified.
func sanitizeTitle(title string) string {
	sanitized := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "",
		"?", "",
		"\"", "",
		"<", "",
		">", "",
		"|", "",
		"[", "",
		"]", "",
		"#", "",
		"^", "",
		"\n", " ",
	).Replace(title)

	return strings.TrimSpace(sanitized)
}
