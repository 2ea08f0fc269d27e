package romaji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKanaToRomaji(t *testing.T) {
	tests := []struct {
		kana string
		want string
	}{
		{"ワタシ", "watashi"},
		{"ガッコウ", "gakkou"},
		{"キャク", "kyaku"},
		{"ジュギョウ", "jugyou"},
		{"マッチャ", "matcha"},
		{"コーヒー", "koohii"},
		{"ニッポン", "nippon"},
	}

	for _, tt := range tests {
		t.Run(tt.kana, func(t *testing.T) {
			got, ok := kanaToRomaji(tt.kana)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKanaToRomajiUnmappable(t *testing.T) {
	for _, kana := range []string{"ABC", "ーア", "ッ"} {
		_, ok := kanaToRomaji(kana)
		assert.False(t, ok, kana)
	}
}

func TestRomaji(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)

	tests := []struct {
		text string
		want string
	}{
		{"私は学生です", "watashi wa gakusei desu"},
		{"学校へ行く", "gakkou e iku"},
		{"本を読む", "hon o yomu"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Romaji(tt.text))
		})
	}
}

func TestRomajiPassesThroughNonJapanese(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)

	got := tr.Romaji("JLPT")
	assert.Contains(t, got, "JLPT")
}
