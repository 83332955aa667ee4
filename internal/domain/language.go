package domain

// Language identifies a supported learning language.
type Language string

const (
	LanguageEnglish Language = "English"
	LanguageGerman  Language = "German"
)

// Valid reports whether the language is one of the supported values.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageGerman
}
