package i18n

import (
	"embed"
	"fmt"
	"log"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"hostbot/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var localeFiles = []string{"active.fr.toml", "active.en.toml"}

var _ output.T = (*Translator)(nil)

// Translator wraps a go-i18n Bundle. Localizers are cached per requested
// locale since Discord sends the same handful of locales over and over.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag

	mu         sync.RWMutex
	localizers map[string]*i18n.Localizer
}

// NewTranslator builds a Translator from the embedded active.*.toml files,
// falling back to defaultLocale (e.g. "fr") for unknown locales and keys.
func NewTranslator(defaultLocale string) (*Translator, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("i18n: locale par défaut invalide %q: %w", defaultLocale, err)
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("i18n: chargement de %s: %w", file, err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		localizers:      make(map[string]*i18n.Localizer),
	}, nil
}

func (t *Translator) localizer(locale string) *i18n.Localizer {
	t.mu.RLock()
	l, ok := t.localizers[locale]
	t.mu.RUnlock()
	if ok {
		return l
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())
	l = i18n.NewLocalizer(t.bundle, languages...)

	t.mu.Lock()
	t.localizers[locale] = l
	t.mu.Unlock()
	return l
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.localizer(locale).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("⚠️ i18n: clé %q introuvable (locale=%q): %v", key, locale, err)
		return key
	}
	return msg
}
