package backend

import "strings"

// Language is an output language offered in the selector.
type Language struct {
	Code string
	Name string
}

var languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Español"},
	{Code: "fr", Name: "Français"},
	{Code: "de", Name: "Deutsch"},
	{Code: "it", Name: "Italiano"},
	{Code: "pt", Name: "Português"},
	{Code: "hi", Name: "हिन्दी"},
	{Code: "ja", Name: "日本語"},
	{Code: "ko", Name: "한국어"},
	{Code: "zh", Name: "中文"},
}

// DefaultLanguage is preselected.
const DefaultLanguage = "en"

// Languages returns the supported output languages in selector order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// LookupLanguage finds a language by code.
func LookupLanguage(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, lang := range languages {
		if lang.Code == code {
			return lang, true
		}
	}
	return Language{}, false
}

// NextLanguage cycles through the selector, wrapping at the end. Unknown
// codes restart at the first entry.
func NextLanguage(code string) Language {
	for i, lang := range languages {
		if lang.Code == code {
			return languages[(i+1)%len(languages)]
		}
	}
	return languages[0]
}
