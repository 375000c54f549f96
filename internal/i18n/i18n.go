// Package i18n resolves UI strings by language and key.
package i18n

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"probagno/storefront/internal/domain"
)

type entry struct {
	el string
	en string
}

func (e entry) in(lang domain.Language) string {
	if lang == domain.LanguageEnglish {
		return e.en
	}
	return e.el
}

// Translator looks strings up in a two-level (key, language) table.
type Translator struct {
	strings map[string]entry
}

func New() *Translator {
	return &Translator{strings: storefrontStrings}
}

// T returns the string for key in lang. A missing key is logged and the key
// itself is returned so the UI still shows something.
func (t *Translator) T(lang domain.Language, key string) string {
	e, ok := t.strings[key]
	if !ok {
		log.Warnf("Translation missing for key: %s", key)
		return key
	}
	return e.in(lang)
}

func (t *Translator) Has(key string) bool {
	_, ok := t.strings[key]
	return ok
}

// Table flattens every key for one language, for clients that bundle it.
func (t *Translator) Table(lang domain.Language) map[string]string {
	out := make(map[string]string, len(t.strings))
	for k, e := range t.strings {
		out[k] = e.in(lang)
	}
	return out
}

func (t *Translator) Keys() []string {
	keys := make([]string, 0, len(t.strings))
	for k := range t.strings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
