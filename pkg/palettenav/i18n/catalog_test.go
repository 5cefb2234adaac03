package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := map[string]language.Tag{
		"":                      language.Russian,
		"ru":                    language.Russian,
		"en":                    language.English,
		"en-US,en;q=0.9":        language.English,
		"de-DE":                 language.Russian,
		"fr;q=0.9, en;q=0.8":    language.English,
		"!!not a language tag!": language.Russian,
	}
	for locale, want := range tests {
		if got := Match(locale); got != want {
			t.Fatalf("Match(%q) = %v, want %v", locale, got, want)
		}
	}
}

func TestLocalizeRussian(t *testing.T) {
	c, err := New("ru")
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	if got := c.Localize("RouteLibraryTitle", ""); got != "Библиотека палитр" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := c.Localize("AppName", "fallback"); got != "Генератор цветов" {
		t.Fatalf("unexpected app name %q", got)
	}
}

func TestLocalizeEnglish(t *testing.T) {
	c, err := New("en-GB")
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if c.Language() != language.English {
		t.Fatalf("expected English, got %v", c.Language())
	}
	if got := c.Localize("RouteLibraryTitle", "Библиотека палитр"); got != "Palette Library" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := c.LocalizeWith("PaletteHeading", "", map[string]any{"ID": "42"}); got != "Palette 42" {
		t.Fatalf("unexpected heading %q", got)
	}
}

func TestLocalizeFallback(t *testing.T) {
	c, err := New("ru")
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	if got := c.Localize("", "Как есть"); got != "Как есть" {
		t.Fatalf("empty ID should return fallback, got %q", got)
	}
	if got := c.Localize("NoSuchMessage", "Запасной"); got != "Запасной" {
		t.Fatalf("missing ID should return fallback, got %q", got)
	}
	if got := c.Localize("NoSuchMessage", ""); got != "" {
		t.Fatalf("missing ID without fallback should be empty, got %q", got)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	c, err := New("en")
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	file := filepath.Join(t.TempDir(), "active.en.toml")
	if err := os.WriteFile(file, []byte(`RouteLibraryTitle = "My Swatches"`+"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := c.LoadFile(file); err != nil {
		t.Fatalf("load file: %v", err)
	}
	if got := c.Localize("RouteLibraryTitle", ""); got != "My Swatches" {
		t.Fatalf("override not applied, got %q", got)
	}

	if err := c.LoadFile(filepath.Join(t.TempDir(), "missing.en.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
