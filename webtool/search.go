// Package webtool implements the internet-facing tools: web search,
// currency rates, and translation.
package webtool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// SearchResult is one web search hit.
type SearchResult struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// Searcher queries the DuckDuckGo Instant Answer API.
type Searcher struct {
	baseURL string
	http    *http.Client
}

// NewSearcher creates a searcher against the public DuckDuckGo API.
func NewSearcher() *Searcher {
	return &Searcher{
		baseURL: "https://api.duckduckgo.com",
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type duckResponse struct {
	Heading       string      `json:"Heading"`
	AbstractText  string      `json:"AbstractText"`
	AbstractURL   string      `json:"AbstractURL"`
	RelatedTopics []duckTopic `json:"RelatedTopics"`
}

type duckTopic struct {
	Text     string      `json:"Text"`
	FirstURL string      `json:"FirstURL"`
	Topics   []duckTopic `json:"Topics"`
}

// Search returns up to maxResults hits for the query. maxResults
// outside 1..10 falls back to 5.
func (s *Searcher) Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	if maxResults < 1 || maxResults > 10 {
		maxResults = 5
	}

	endpoint := fmt.Sprintf("%s/?q=%s&format=json&no_html=1&skip_disambig=1",
		s.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned %d", resp.StatusCode)
	}

	var parsed duckResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	results := []SearchResult{}
	if parsed.AbstractText != "" {
		results = append(results, SearchResult{
			Title: parsed.Heading,
			Body:  parsed.AbstractText,
			URL:   parsed.AbstractURL,
		})
	}
	results = appendTopics(results, parsed.RelatedTopics, maxResults)

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// appendTopics flattens related topics (which nest one level for
// categorized answers) into plain results.
func appendTopics(results []SearchResult, topics []duckTopic, max int) []SearchResult {
	for _, topic := range topics {
		if len(results) >= max {
			break
		}
		if len(topic.Topics) > 0 {
			results = appendTopics(results, topic.Topics, max)
			continue
		}
		if topic.Text == "" && topic.FirstURL == "" {
			continue
		}
		results = append(results, SearchResult{
			Title: topic.Text,
			Body:  topic.Text,
			URL:   topic.FirstURL,
		})
	}
	return results
}
