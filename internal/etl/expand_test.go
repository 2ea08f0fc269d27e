package etl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jp-grammar/internal/config"
	"jp-grammar/internal/jotoba"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandVariations(t *testing.T) {
	rows := []Row{{LevelCode: "N5", Title: "ています", JP: "本を読んでいる。", Romaji: "hon o yonde iru"}}

	out := ExpandVariations(rows, 10, nil)

	require.Len(t, out, 11)
	// Original row comes first, untouched.
	assert.Equal(t, rows[0], out[0])
	for _, variation := range out[1:] {
		assert.True(t, strings.HasSuffix(variation.JP, "本を読んでいる。"))
		assert.Equal(t, "N5", variation.LevelCode)
		// Without a transliterator the base romaji is carried over.
		assert.Equal(t, "hon o yonde iru", variation.Romaji)
	}
}

func TestExpandVariationsSkipsRowsWithoutSentence(t *testing.T) {
	rows := []Row{{LevelCode: "N5", Title: "ています"}}

	out := ExpandVariations(rows, 10, nil)

	require.Len(t, out, 1)
	assert.Equal(t, rows[0], out[0])
}

func TestExpandVariationsCap(t *testing.T) {
	rows := []Row{{LevelCode: "N5", JP: "行く。"}}

	out := ExpandVariations(rows, 100000, nil)

	// Cap applies when the requested budget is out of range.
	assert.Len(t, out, 1+MaxVariationsPerRow)
}

func TestExpandJotoba(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"words": []map[string]interface{}{{
				"examples": []map[string]string{
					{"japanese": "本を読んでいる。", "english": "I am reading a book."},
					{"japanese": "待っている。", "english": "I am waiting."},
				},
			}},
		})
	}))
	defer server.Close()
	client := jotoba.New(config.JotobaConfig{BaseURL: server.URL})

	rows := []Row{
		{LevelCode: "N5", Title: "ています", Pattern: "ている", Romaji: "stale"},
		{LevelCode: "N5", Title: "no pattern"},
	}

	out, err := ExpandJotoba(context.Background(), rows, client, 2, 0)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "本を読んでいる。", out[0].JP)
	assert.Equal(t, "I am reading a book.", out[0].EN)
	// Stale romaji of the base row must not survive onto harvested sentences.
	assert.Empty(t, out[0].Romaji)
	assert.Equal(t, "待っている。", out[1].JP)
	// Rows without a pattern pass through unchanged.
	assert.Equal(t, rows[1], out[2])
}

func TestExpandJotobaKeepsRowOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()
	client := jotoba.New(config.JotobaConfig{BaseURL: server.URL})

	rows := []Row{{LevelCode: "N5", Pattern: "ている", JP: "原文。"}}

	out, err := ExpandJotoba(context.Background(), rows, client, 3, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, rows[0], out[0])
}
