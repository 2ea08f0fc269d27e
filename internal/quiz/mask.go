package quiz

import (
	"regexp"
	"strings"
)

// wordRun matches a run of two or more Japanese word characters:
// kanji, hiragana, katakana, the prolonged sound mark and the
// iteration mark.
var wordRun = regexp.MustCompile(`[\p{Han}\p{Hiragana}\p{Katakana}ー々]{2,}`)

// MaskSentence replaces the quizzed fragment of sentence with BlankToken.
// The target is matched as a literal string (data may contain regex
// metacharacters) and only its first occurrence is replaced. When the
// target is empty or does not occur, the first word run is masked
// instead. The second return value reports whether anything was masked;
// a false result returns the sentence unmodified.
func MaskSentence(sentence, target string) (string, bool) {
	if sentence == "" {
		return "", false
	}

	if target != "" && strings.Contains(sentence, target) {
		return strings.Replace(sentence, target, BlankToken, 1), true
	}

	if loc := wordRun.FindStringIndex(sentence); loc != nil {
		return sentence[:loc[0]] + BlankToken + sentence[loc[1]:], true
	}

	return sentence, false
}
