package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLedgerLoadMissingFile(t *testing.T) {
	ledger := NewLedger(filepath.Join(t.TempDir(), "Summarized_URLs.md"))

	urls, err := ledger.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(urls) != 0 {
		t.Errorf("Load() on missing file = %d entries, want 0", len(urls))
	}
}

func TestLedgerRecordAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Summarized_URLs.md")
	ledger := NewLedger(path)

	recorded := []string{
		"https://example.com/one",
		"https://example.com/two",
	}
	for _, url := range recorded {
		if err := ledger.Record(url); err != nil {
			t.Fatalf("Record(%q) error = %v", url, err)
		}
	}

	urls, err := ledger.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for _, url := range recorded {
		if _, ok := urls[url]; !ok {
			t.Errorf("Load() missing recorded URL %q", url)
		}
	}

	// Each Record appends exactly one newline-terminated line.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading ledger file: %v", err)
	}
	expected := "https://example.com/one\nhttps://example.com/two\n"
	if string(data) != expected {
		t.Errorf("ledger file = %q, want %q", string(data), expected)
	}
}

func TestLedgerLoadToleratesBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Summarized_URLs.md")
	content := "https://example.com/one\n\nhttps://example.com/two\n\n\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	urls, err := NewLedger(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(urls) != 2 {
		t.Errorf("Load() = %d entries, want 2 (blank lines must be skipped)", len(urls))
	}
	if _, ok := urls[""]; ok {
		t.Error("Load() returned an empty string as a URL")
	}
}

func TestLedgerLoadIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Summarized_URLs.md")
	ledger := NewLedger(path)
	if err := ledger.Record("https://example.com/article"); err != nil {
		t.Fatal(err)
	}

	first, err := ledger.Load()
	if err != nil {
		t.Fatalf("first Load() error = %v", err)
	}
	second, err := ledger.Load()
	if err != nil {
		t.Fatalf("second Load() error = %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("Load() sizes differ: %d vs %d", len(first), len(second))
	}
	for url := range first {
		if _, ok := second[url]; !ok {
			t.Errorf("second Load() missing %q", url)
		}
	}
}

func TestLedgerContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Summarized_URLs.md")
	ledger := NewLedger(path)

	contents, err := ledger.Contents()
	if err != nil {
		t.Fatalf("Contents() error = %v", err)
	}
	if contents != "" {
		t.Errorf("Contents() on missing file = %q, want empty", contents)
	}

	if err := ledger.Record("https://example.com/article"); err != nil {
		t.Fatal(err)
	}
	contents, err = ledger.Contents()
	if err != nil {
		t.Fatalf("Contents() error = %v", err)
	}
	if contents != "https://example.com/article\n" {
		t.Errorf("Contents() = %q, want %q", contents, "https://example.com/article\n")
	}
}
