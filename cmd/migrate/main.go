// Command migrate performs one-off maintenance on the Summarized_URLs.md
// ledger: deduplicating entries that predate duplicate checking, or merging
// a ledger from another vault.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: migrate <dedupe|merge> <ledger-file> [other-ledger-file]")
	}

	command := os.Args[1]
	ledgerPath := os.Args[2]

	switch command {
	case "dedupe":
		if err := dedupe(ledgerPath); err != nil {
			log.Fatal(err)
		}
	case "merge":
		if len(os.Args) < 4 {
			log.Fatal("Usage: migrate merge <ledger-file> <other-ledger-file>")
		}
		if err := merge(ledgerPath, os.Args[3]); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("Unknown command: %s", command)
	}
}

// readURLs returns the non-blank lines of a ledger file in order.
func readURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			urls = append(urls, line)
		}
	}
	return urls, scanner.Err()
}

func writeURLs(path string, urls []string) error {
	var sb strings.Builder
	for _, url := range urls {
		sb.WriteString(url)
		sb.WriteString("\n")
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// dedupe rewrites the ledger keeping the first occurrence of each URL.
func dedupe(path string) error {
	urls, err := readURLs(path)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(urls))
	kept := make([]string, 0, len(urls))
	for _, url := range urls {
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		kept = append(kept, url)
	}

	if len(kept) == len(urls) {
		fmt.Println("No duplicates found.")
		return nil
	}

	if err := writeURLs(path, kept); err != nil {
		return err
	}
	fmt.Printf("Removed %d duplicate entries.\n", len(urls)-len(kept))
	return nil
}

// merge appends URLs from another ledger that are not already present.
func merge(path, otherPath string) error {
	urls, err := readURLs(path)
	if err != nil {
		return err
	}
	other, err := readURLs(otherPath)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(urls))
	for _, url := range urls {
		seen[url] = struct{}{}
	}

	added := 0
	for _, url := range other {
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		urls = append(urls, url)
		added++
	}

	if err := writeURLs(path, urls); err != nil {
		return err
	}
	fmt.Printf("Merged %d new entries.\n", added)
	return nil
}
