package jotoba

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jp-grammar/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(config.JotobaConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
}

func TestSearchExamples(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/search/words", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ている", req["query"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"words": []map[string]interface{}{
				{
					"examples": []map[string]string{
						{"japanese": "本を読んでいる。", "english": "I am reading a book."},
						{"japanese": "雨が降っている。", "english": ""},
						{"japanese": "食べている。", "english": "I am eating."},
						{"japanese": "待っている。", "english": "I am waiting."},
					},
				},
			},
		})
	})

	sentences, err := client.SearchExamples(context.Background(), "ている", 2)
	require.NoError(t, err)
	require.Len(t, sentences, 2)
	assert.Equal(t, "本を読んでいる。", sentences[0].Japanese)
	assert.Equal(t, "I am reading a book.", sentences[0].English)
	// The pair with an empty english side was skipped.
	assert.Equal(t, "食べている。", sentences[1].Japanese)
}

func TestSearchExamplesNoResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"words": []interface{}{}})
	})

	sentences, err := client.SearchExamples(context.Background(), "xyz", 5)
	require.NoError(t, err)
	assert.Empty(t, sentences)
}

func TestSearchExamplesServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	})

	_, err := client.SearchExamples(context.Background(), "ている", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestSearchExamplesMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := client.SearchExamples(context.Background(), "ている", 5)
	require.Error(t, err)
}
