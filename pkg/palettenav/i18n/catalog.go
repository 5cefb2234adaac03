// Package i18n localizes page titles and view text. Message files are TOML,
// one per language, named active.<lang>.toml; Russian is the source language.
package i18n

import (
	"embed"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Supported lists the languages shipped with the application, default first.
var Supported = []language.Tag{language.Russian, language.English}

// Catalog holds the message bundle and a localizer for one language.
type Catalog struct {
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
	tag       language.Tag
}

// New loads the embedded message files and picks the closest supported
// language to locale, which may be a tag ("en") or an Accept-Language value.
func New(locale string) (*Catalog, error) {
	bundle := goi18n.NewBundle(Supported[0])
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: read locales: %w", err)
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(locales, path.Join("locales", entry.Name())); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", entry.Name(), err)
		}
	}

	tag := Match(locale)
	return &Catalog{
		bundle:    bundle,
		localizer: goi18n.NewLocalizer(bundle, tag.String()),
		tag:       tag,
	}, nil
}

// LoadFile adds or overrides messages from a TOML file on disk.
func (c *Catalog) LoadFile(filename string) error {
	if _, err := c.bundle.LoadMessageFile(filename); err != nil {
		return fmt.Errorf("i18n: load %s: %w", filename, err)
	}
	c.localizer = goi18n.NewLocalizer(c.bundle, c.tag.String())
	return nil
}

// Language returns the language the catalog localizes into.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Localize returns the translation of messageID, or fallback when the ID is
// empty or has no translation.
func (c *Catalog) Localize(messageID, fallback string) string {
	return c.LocalizeWith(messageID, fallback, nil)
}

// LocalizeWith is Localize with template data, e.g. {"ID": "42"} for "Палитра {{.ID}}".
func (c *Catalog) LocalizeWith(messageID, fallback string, data map[string]any) string {
	if messageID == "" {
		return fallback
	}

	cfg := &goi18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	}
	if fallback != "" {
		cfg.DefaultMessage = &goi18n.Message{ID: messageID, Other: fallback}
	}

	msg, err := c.localizer.Localize(cfg)
	if err != nil && msg == "" {
		return fallback
	}
	return msg
}

// Match picks the supported language closest to locale. Unparseable or
// unknown input yields the default language.
func Match(locale string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(tags) == 0 {
		return Supported[0]
	}

	matcher := language.NewMatcher(Supported)
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Supported[0]
	}
	return Supported[index]
}
