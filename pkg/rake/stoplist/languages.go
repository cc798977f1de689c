package stoplist

import (
	"embed"
	"strings"
)

//go:embed lists/*.txt
var lists embed.FS

// Language identifies one of the built-in stopword lists.
type Language string

const (
	English    Language = "en"
	Indonesian Language = "id"
	Malay      Language = "ms"
)

// DefaultLanguage is used when a code is not recognized.
const DefaultLanguage = English

var aliases = map[string]Language{
	"en":         English,
	"english":    English,
	"id":         Indonesian,
	"indonesian": Indonesian,
	"indonesia":  Indonesian,
	"my":         Malay,
	"ms":         Malay,
	"malay":      Malay,
	"malaysian":  Malay,
	"malaysia":   Malay,
}

// Resolve maps a language code to a built-in language. Codes are matched
// case-insensitively; anything unrecognized resolves to English.
func Resolve(code string) Language {
	if lang, ok := aliases[strings.ToLower(strings.TrimSpace(code))]; ok {
		return lang
	}
	return DefaultLanguage
}

// Known reports whether code names a built-in language without falling back.
func Known(code string) bool {
	_, ok := aliases[strings.ToLower(strings.TrimSpace(code))]
	return ok
}

// ForLanguage returns the built-in stopword list for a language code.
// It never fails: unknown codes get the English list.
func ForLanguage(code string) []string {
	return Resolve(code).Words()
}

// Words returns the stopword list for the language.
func (l Language) Words() []string {
	data, err := lists.ReadFile("lists/" + string(l) + ".txt")
	if err != nil {
		// every Language constant has an embedded list
		data, _ = lists.ReadFile("lists/" + string(DefaultLanguage) + ".txt")
	}
	return Parse(string(data))
}

// Languages returns the built-in languages.
func Languages() []Language {
	return []Language{English, Indonesian, Malay}
}
