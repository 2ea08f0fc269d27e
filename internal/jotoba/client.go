// Package jotoba is a client for the public Jotoba dictionary API,
// used by the dataset expansion to harvest example sentences.
package jotoba

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"jp-grammar/internal/config"
)

const searchWordsPath = "/api/search/words"

// Sentence is one harvested example pair.
type Sentence struct {
	Japanese string
	English  string
}

// Client issues word searches against one Jotoba deployment.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the configured deployment, defaulting to the
// public instance.
func New(cfg config.JotobaConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://jotoba.de"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type searchRequest struct {
	Query     string `json:"query"`
	Language  string `json:"language"`
	NoEnglish bool   `json:"no_english"`
}

type searchResponse struct {
	Words []struct {
		Examples []struct {
			Japanese string `json:"japanese"`
			English  string `json:"english"`
		} `json:"examples"`
	} `json:"words"`
}

// SearchExamples queries the word search for the given term and returns
// up to max sentence pairs where both sides are present.
func (c *Client) SearchExamples(ctx context.Context, query string, max int) ([]Sentence, error) {
	body, err := json.Marshal(searchRequest{Query: query, Language: "English"})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchWordsPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jotoba search %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("jotoba search %q: status %d: %s", query, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("jotoba search %q: decode response: %w", query, err)
	}

	var sentences []Sentence
	for _, word := range decoded.Words {
		for _, ex := range word.Examples {
			if ex.Japanese == "" || ex.English == "" {
				continue
			}
			sentences = append(sentences, Sentence{Japanese: ex.Japanese, English: ex.English})
			if max > 0 && len(sentences) >= max {
				return sentences, nil
			}
		}
	}
	return sentences, nil
}
