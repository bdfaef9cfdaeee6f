package theme

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"

	"github.com/BurntSushi/toml"
	log "github.com/go-pkgz/lgr"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales
var localesFS embed.FS

// Labels holds the translated toggle labels.
type Labels struct {
	bundle *i18n.Bundle
	lang   string
}

// NewLabels loads the embedded message files. defaultLang is used when
// none of the requested languages has a translation.
func NewLabels(defaultLang string) (*Labels, error) {
	tag, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("invalid default language %q: %w", defaultLang, err)
	}

	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localesFS, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(localesFS, f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	log.Printf("[DEBUG] loaded %d label locales, default %s", len(files), tag)
	return &Labels{bundle: bundle, lang: tag.String()}, nil
}

// For returns a localizer for the given languages, in preference order.
// Entries may be plain tags or Accept-Language header values.
func (l *Labels) For(langs ...string) Localizer {
	return &localizer{loc: i18n.NewLocalizer(l.bundle, append(slices.Clone(langs), l.lang)...)}
}

type localizer struct {
	loc *i18n.Localizer
}

// Text implements Localizer.
func (l *localizer) Text(id, fallback string) string {
	msg, err := l.loc.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if err != nil {
		return fallback
	}
	return msg
}
