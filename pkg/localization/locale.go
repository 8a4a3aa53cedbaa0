package localization

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed locales/*.json
var builtin embed.FS

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

type Locale struct {
	language     string
	translations map[string]string
}

// NewLocale loads one of the built-in languages.
func NewLocale(language string) (*Locale, error) {
	if language == "" {
		language = DefaultLanguage
	}
	data, err := builtin.ReadFile("locales/" + language + ".json")
	if err != nil {
		return nil, fmt.Errorf("unsupported language %q", language)
	}
	return decode(language, data)
}

// NewLocaleFromFile loads translations from a JSON file; the language is the file name.
func NewLocaleFromFile(filePath string) (*Locale, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	language := filepath.Base(filePath)
	language = language[:len(language)-len(filepath.Ext(language))]
	return decode(language, data)
}

func decode(language string, data []byte) (*Locale, error) {
	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return nil, fmt.Errorf("decode %s translations: %w", language, err)
	}
	return &Locale{language: language, translations: translations}, nil
}

// Languages lists the built-in languages.
func Languages() []string {
	entries, _ := builtin.ReadDir("locales")
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		out = append(out, name[:len(name)-len(filepath.Ext(name))])
	}
	return out
}

// Language returns the language code of the locale.
func (l *Locale) Language() string {
	return l.language
}

// Translate returns the translation for key, or key itself when none exists.
func (l *Locale) Translate(key string) string {
	if l == nil {
		return key
	}
	if translation, ok := l.translations[key]; ok {
		return translation
	}
	return key
}
