package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	log "github.com/sirupsen/logrus"
)

// ArticleClient fetches a web page and extracts its main text: goquery drops
// script/style noise, readability isolates the article body, and the result
// is converted to markdown.
type ArticleClient struct {
	client    *http.Client
	converter *md.Converter
}

// NewArticleClient creates an article fetcher with default settings.
func NewArticleClient() *ArticleClient {
	return &ArticleClient{
		client:    &http.Client{Timeout: 30 * time.Second},
		converter: md.NewConverter("", true, nil),
	}
}

// Fetch returns the extracted article text for a page URL.
func (ac *ArticleClient) Fetch(pageURL string) (string, error) {
	log.Infof("→ Fetching article %s", pageURL)

	resp, err := ac.client.Get(pageURL)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &HTTPError{StatusCode: resp.StatusCode, URL: pageURL}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}
	doc.Find("script, style, noscript").Remove()

	html, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("rendering cleaned HTML: %w", err)
	}

	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL: %w", err)
	}

	article, err := readability.FromReader(strings.NewReader(html), parsedURL)
	if err != nil {
		return "", fmt.Errorf("extracting article: %w", err)
	}

	markdown, err := ac.converter.ConvertString(article.Content)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}

	return markdown, nil
}
