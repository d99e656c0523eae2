package entity

import "strings"

// Language represents supported language codes using ISO-style abbreviations.
type Language string

const (
	LanguageUnspecified Language = ""
	LanguageEnglish     Language = "en"
	LanguageChinese     Language = "zh"
	LanguageSpanish     Language = "es"
	LanguageFrench      Language = "fr"
	LanguageGerman      Language = "de"
	LanguageItalian     Language = "it"
	LanguagePortuguese  Language = "pt"
	LanguageJapanese    Language = "ja"
	LanguageKorean      Language = "ko"
)

var supportedLanguages = map[string]Language{
	"en": LanguageEnglish,
	"zh": LanguageChinese,
	"es": LanguageSpanish,
	"fr": LanguageFrench,
	"de": LanguageGerman,
	"it": LanguageItalian,
	"pt": LanguagePortuguese,
	"ja": LanguageJapanese,
	"ko": LanguageKorean,
}

// ParseLanguage converts an arbitrary string into a supported Language value.
// Unknown codes map to LanguageUnspecified.
func ParseLanguage(code string) Language {
	return supportedLanguages[strings.ToLower(strings.TrimSpace(code))]
}

// NormalizeItemID lowercases the text and joins its words with dashes so that
// "Buenos días" and " buenos  DÍAS " produce the same identifier.
func NormalizeItemID(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	return strings.Join(fields, "-")
}
