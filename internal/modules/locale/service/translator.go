package service

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"folio/internal/modules/locale/domain"
	localeout "folio/internal/modules/locale/port/out"
	apperrors "folio/internal/platform/errors"
)

// Translator looks keys up in the current language, then in the fallback
// language, and finally returns the key itself.
type Translator struct {
	catalogs map[string]domain.Catalog
	langs    []string

	mu   sync.RWMutex
	lang string
}

func NewTranslator(source localeout.CatalogSource, lang string) (*Translator, error) {
	t := &Translator{catalogs: map[string]domain.Catalog{}}
	for _, l := range source.Languages() {
		c, err := source.Load(l)
		if err != nil {
			return nil, err
		}
		t.catalogs[l] = c
		t.langs = append(t.langs, l)
	}
	if _, ok := t.catalogs[domain.Fallback]; !ok {
		return nil, fmt.Errorf("%w: fallback catalog %q", apperrors.ErrNotFound, domain.Fallback)
	}
	t.lang = domain.Fallback
	if _, ok := t.catalogs[lang]; ok {
		t.lang = lang
	}
	return t, nil
}

func (t *Translator) T(key string) string {
	t.mu.RLock()
	lang := t.lang
	t.mu.RUnlock()
	if v, ok := t.catalogs[lang][key]; ok {
		return v
	}
	if v, ok := t.catalogs[domain.Fallback][key]; ok {
		return v
	}
	return key
}

func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

func (t *Translator) Languages() []string {
	return append([]string(nil), t.langs...)
}

func (t *Translator) SetLanguage(lang string) error {
	if _, ok := t.catalogs[lang]; !ok {
		return fmt.Errorf("%w: unsupported language %q", apperrors.ErrInvalidInput, lang)
	}
	t.mu.Lock()
	t.lang = lang
	t.mu.Unlock()
	return nil
}

// Toggle switches between English and Spanish and returns the new language.
func (t *Translator) Toggle() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.lang == domain.English {
		t.lang = domain.Spanish
	} else {
		t.lang = domain.English
	}
	return t.lang
}

var supported = []language.Tag{language.Spanish, language.English}

// Detect picks the language from a saved choice, then from POSIX locale
// values such as "en_US.UTF-8". Unmatched input yields the fallback.
func Detect(saved string, locales ...string) string {
	candidates := append([]string{saved}, locales...)
	matcher := language.NewMatcher(supported)
	for _, raw := range candidates {
		tag, ok := parsePOSIX(raw)
		if !ok {
			continue
		}
		_, idx, conf := matcher.Match(tag)
		if conf == language.No {
			continue
		}
		base, _ := supported[idx].Base()
		return base.String()
	}
	return domain.Fallback
}

func parsePOSIX(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" || raw == "C" || raw == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
