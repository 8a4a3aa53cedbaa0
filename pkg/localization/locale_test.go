package localization

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinLanguages(t *testing.T) {
	langs := Languages()
	if len(langs) != 2 || langs[0] != "en" || langs[1] != "ru" {
		t.Fatalf("Languages = %v, want [en ru]", langs)
	}
}

func TestTranslate(t *testing.T) {
	ru, err := NewLocale("ru")
	if err != nil {
		t.Fatalf("NewLocale: %v", err)
	}
	if got := ru.Translate("Variance Bubble"); got != "Пузырь отклонения" {
		t.Fatalf("Translate = %q", got)
	}
	if got := ru.Translate("no such key"); got != "no such key" {
		t.Fatalf("missing key should fall back to itself, got %q", got)
	}

	var nilLocale *Locale
	if got := nilLocale.Translate("Show"); got != "Show" {
		t.Fatalf("nil locale Translate = %q", got)
	}
}

func TestDefaultLanguage(t *testing.T) {
	l, err := NewLocale("")
	if err != nil {
		t.Fatalf("NewLocale: %v", err)
	}
	if l.Language() != "en" {
		t.Fatalf("Language = %q, want en", l.Language())
	}
}

func TestUnsupportedLanguage(t *testing.T) {
	if _, err := NewLocale("xx"); err == nil {
		t.Fatalf("expected error for unsupported language")
	}
}

func TestNewLocaleFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "de.json")
	if err := os.WriteFile(path, []byte(`{"Show": "Anzeigen"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := NewLocaleFromFile(path)
	if err != nil {
		t.Fatalf("NewLocaleFromFile: %v", err)
	}
	if l.Language() != "de" || l.Translate("Show") != "Anzeigen" {
		t.Fatalf("locale = %q, Show = %q", l.Language(), l.Translate("Show"))
	}
}
