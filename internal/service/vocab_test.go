package service

import (
	"context"
	"testing"

	"jp-grammar/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListVocab(t *testing.T) {
	repo := &mockVocabRepo{
		ListVocabFn: func(ctx context.Context, filter domain.VocabFilter) ([]domain.VocabItem, int, error) {
			assert.Equal(t, 200, filter.Limit)
			return []domain.VocabItem{{ID: "v-1", Kanji: "水", ReadingKana: "みず"}}, 12, nil
		},
	}
	svc := NewVocabService(repo)

	resp, err := svc.ListVocab(context.Background(), domain.VocabFilter{Limit: 999})
	require.NoError(t, err)

	assert.Equal(t, 12, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "水", resp.Items[0].Kanji)
}

func TestListJotoba(t *testing.T) {
	repo := &mockVocabRepo{
		ListJotobaFn: func(ctx context.Context, filter domain.JotobaFilter) ([]domain.JotobaEntry, int, error) {
			assert.Equal(t, 20, filter.Limit)
			return []domain.JotobaEntry{{ID: "j-1", Term: "食べる", Readings: map[string]interface{}{"kana": "たべる"}}}, 1, nil
		},
	}
	svc := NewVocabService(repo)

	resp, err := svc.ListJotoba(context.Background(), domain.JotobaFilter{})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "食べる", resp.Items[0].Term)
	assert.Equal(t, "たべる", resp.Items[0].Readings["kana"])
}
