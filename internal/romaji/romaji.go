// Package romaji transliterates Japanese text into wapuro-style Hepburn
// romaji. Readings come from a morphological analysis, so kanji are
// romanized through their pronunciation, not skipped.
package romaji

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// IPA dictionary feature indexes used below. Index 0 is the part of
// speech, index 7 the katakana reading.
const (
	featurePOS     = 0
	featureReading = 7
)

// Transliterator converts Japanese text to romaji.
type Transliterator struct {
	t *tokenizer.Tokenizer
}

// New creates a transliterator backed by the IPA dictionary.
func New() (*Transliterator, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Transliterator{t: t}, nil
}

// Romaji returns the space-joined romaji reading of text. Tokens the
// dictionary has no reading for (latin words, numbers) pass through
// unchanged.
func (tr *Transliterator) Romaji(text string) string {
	tokens := tr.t.Tokenize(text)

	var parts []string
	for _, token := range tokens {
		if token.Class == tokenizer.DUMMY || strings.TrimSpace(token.Surface) == "" {
			continue
		}

		features := token.Features()

		// Topic and direction particles are read irregularly.
		if len(features) > featurePOS && features[featurePOS] == "助詞" {
			switch token.Surface {
			case "は":
				parts = append(parts, "wa")
				continue
			case "へ":
				parts = append(parts, "e")
				continue
			case "を":
				parts = append(parts, "o")
				continue
			}
		}

		reading := token.Surface
		if len(features) > featureReading && features[featureReading] != "*" {
			reading = features[featureReading]
		}

		if romanized, ok := kanaToRomaji(reading); ok {
			parts = append(parts, romanized)
		} else {
			parts = append(parts, token.Surface)
		}
	}

	return strings.Join(parts, " ")
}

// kanaDigraphs maps two-rune katakana combinations. Checked before the
// single-rune table.
var kanaDigraphs = map[string]string{
	"キャ": "kya", "キュ": "kyu", "キョ": "kyo",
	"シャ": "sha", "シュ": "shu", "ショ": "sho",
	"チャ": "cha", "チュ": "chu", "チョ": "cho",
	"ニャ": "nya", "ニュ": "nyu", "ニョ": "nyo",
	"ヒャ": "hya", "ヒュ": "hyu", "ヒョ": "hyo",
	"ミャ": "mya", "ミュ": "myu", "ミョ": "myo",
	"リャ": "rya", "リュ": "ryu", "リョ": "ryo",
	"ギャ": "gya", "ギュ": "gyu", "ギョ": "gyo",
	"ジャ": "ja", "ジュ": "ju", "ジョ": "jo",
	"ビャ": "bya", "ビュ": "byu", "ビョ": "byo",
	"ピャ": "pya", "ピュ": "pyu", "ピョ": "pyo",
	"ファ": "fa", "フィ": "fi", "フェ": "fe", "フォ": "fo",
	"ティ": "ti", "ディ": "di",
	"ウィ": "wi", "ウェ": "we", "ウォ": "wo",
}

// kanaSingles maps single katakana runes.
var kanaSingles = map[rune]string{
	'ア': "a", 'イ': "i", 'ウ': "u", 'エ': "e", 'オ': "o",
	'カ': "ka", 'キ': "ki", 'ク': "ku", 'ケ': "ke", 'コ': "ko",
	'サ': "sa", 'シ': "shi", 'ス': "su", 'セ': "se", 'ソ': "so",
	'タ': "ta", 'チ': "chi", 'ツ': "tsu", 'テ': "te", 'ト': "to",
	'ナ': "na", 'ニ': "ni", 'ヌ': "nu", 'ネ': "ne", 'ノ': "no",
	'ハ': "ha", 'ヒ': "hi", 'フ': "fu", 'ヘ': "he", 'ホ': "ho",
	'マ': "ma", 'ミ': "mi", 'ム': "mu", 'メ': "me", 'モ': "mo",
	'ヤ': "ya", 'ユ': "yu", 'ヨ': "yo",
	'ラ': "ra", 'リ': "ri", 'ル': "ru", 'レ': "re", 'ロ': "ro",
	'ワ': "wa", 'ヲ': "o", 'ン': "n",
	'ガ': "ga", 'ギ': "gi", 'グ': "gu", 'ゲ': "ge", 'ゴ': "go",
	'ザ': "za", 'ジ': "ji", 'ズ': "zu", 'ゼ': "ze", 'ゾ': "zo",
	'ダ': "da", 'ヂ': "ji", 'ヅ': "zu", 'デ': "de", 'ド': "do",
	'バ': "ba", 'ビ': "bi", 'ブ': "bu", 'ベ': "be", 'ボ': "bo",
	'パ': "pa", 'ピ': "pi", 'プ': "pu", 'ペ': "pe", 'ポ': "po",
	'ヴ': "vu",
	'ァ': "a", 'ィ': "i", 'ゥ': "u", 'ェ': "e", 'ォ': "o",
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'i', 'u', 'e', 'o':
		return true
	}
	return false
}

// kanaToRomaji converts a katakana reading. It reports false when the
// input contains anything it cannot map, so callers can fall back to
// the surface form.
func kanaToRomaji(reading string) (string, bool) {
	runes := []rune(reading)

	var sb strings.Builder
	sokuon := false
	for i := 0; i < len(runes); i++ {
		// Sokuon doubles the consonant of the next syllable.
		if runes[i] == 'ッ' {
			sokuon = true
			continue
		}

		// Chouonpu extends the previous vowel.
		if runes[i] == 'ー' {
			out := sb.String()
			if len(out) == 0 || !isVowel(out[len(out)-1]) {
				return "", false
			}
			sb.WriteByte(out[len(out)-1])
			continue
		}

		syllable := ""
		if i+1 < len(runes) {
			if digraph, ok := kanaDigraphs[string(runes[i:i+2])]; ok {
				syllable = digraph
				i++
			}
		}
		if syllable == "" {
			single, ok := kanaSingles[runes[i]]
			if !ok {
				return "", false
			}
			syllable = single
		}

		if sokuon {
			if isVowel(syllable[0]) {
				return "", false
			}
			// Hepburn writes っち as tchi.
			if strings.HasPrefix(syllable, "ch") {
				sb.WriteByte('t')
			} else {
				sb.WriteByte(syllable[0])
			}
			sokuon = false
		}
		sb.WriteString(syllable)
	}

	if sokuon {
		return "", false
	}
	return sb.String(), true
}
