package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testArticleHTML = `<!DOCTYPE html>
<html>
<head>
	<title>Understanding Goroutines</title>
	<script>var tracker = "should never appear in output";</script>
	<style>body { color: red; }</style>
</head>
<body>
	<nav><a href="/">Home</a><a href="/about">About</a></nav>
	<article>
		<h1>Understanding Goroutines</h1>
		<p>Goroutines are lightweight threads managed by the Go runtime. They make it
		practical to write programs with thousands of concurrent activities, because
		each goroutine starts with a small stack that grows and shrinks as needed.</p>
		<p>Channels provide a way for goroutines to communicate with each other and
		synchronize their execution. Sending and receiving on an unbuffered channel
		blocks until the other side is ready, which gives you synchronization for free.</p>
		<p>The select statement lets a goroutine wait on multiple communication
		operations at once, proceeding with whichever case is ready first. Combined
		with channels this forms the backbone of most concurrent Go programs.</p>
	</article>
</body>
</html>`

func TestArticleClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(testArticleHTML))
	}))
	defer server.Close()

	client := NewArticleClient()
	text, err := client.Fetch(server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if !strings.Contains(text, "lightweight threads managed by the Go runtime") {
		t.Errorf("Fetch() output missing article body, got: %q", text)
	}
	if strings.Contains(text, "should never appear in output") {
		t.Error("Fetch() output contains script content")
	}
	if strings.Contains(text, "color: red") {
		t.Error("Fetch() output contains style content")
	}
}

func TestArticleClientFetchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewArticleClient().Fetch(server.URL)

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("Fetch() error = %v, want *HTTPError", err)
	}
	if httpErr.StatusCode != http.StatusNotFound {
		t.Errorf("HTTPError.StatusCode = %d, want %d", httpErr.StatusCode, http.StatusNotFound)
	}
}

func TestArticleClientFetchUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	if _, err := NewArticleClient().Fetch(server.URL); err == nil {
		t.Error("Fetch() should fail when the server is unreachable")
	}
}
