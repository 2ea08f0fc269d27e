package domain

// Language selects which translation column meanings and example
// translations are read from. Spanish is the catalogue's primary
// language; English is the secondary one.
type Language string

const (
	LanguageES Language = "es"
	LanguageEN Language = "en"
)

// ParseLanguage normalizes a user-supplied language selector.
// Anything that is not a known language falls back to Spanish.
func ParseLanguage(s string) Language {
	if Language(s) == LanguageEN {
		return LanguageEN
	}
	return LanguageES
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l == LanguageES || l == LanguageEN
}

// Level is one JLPT level row of the levels table.
type Level struct {
	Code string
	Name string
}

// GrammarPoint is a single grammar entry of the study catalogue.
// Only ID, LevelCode and Title are guaranteed to be present; the
// remaining fields depend on how complete the source row was.
type GrammarPoint struct {
	ID        string
	LevelCode string
	Title     string
	Pattern   string
	MeaningES string
	MeaningEN string
	Notes     string
	Tags      []string
	Source    string
	Published bool
}

// MeaningIn returns the point's meaning in the given language.
// An empty string means the row has no meaning in that language.
func (g GrammarPoint) MeaningIn(lang Language) string {
	if lang == LanguageEN {
		return g.MeaningEN
	}
	return g.MeaningES
}

// Example is one example sentence, optionally linked to a grammar point
// through GrammarID. Title, Pattern and LevelCode are denormalized copies
// carried by some datasets; they may be empty.
type Example struct {
	ID        string
	GrammarID string
	LevelCode string
	Title     string
	Pattern   string
	JP        string
	Romaji    string
	ES        string
	EN        string
	Hint      string
}

// TranslationIn returns the sentence translation in the given language.
func (e Example) TranslationIn(lang Language) string {
	if lang == LanguageEN {
		return e.EN
	}
	return e.ES
}

// VocabItem is one vocabulary row.
type VocabItem struct {
	ID          string
	Level       string
	Kanji       string
	ReadingKana string
	Meaning     string
}

// JotobaEntry is one cached dictionary entry imported from Jotoba.
// Readings holds the raw JSON document as stored.
type JotobaEntry struct {
	ID       string
	Term     string
	Level    string
	Language string
	Readings map[string]interface{}
}
