package catalog

import (
	"regexp"
	"strings"
)

var greekToLatin = map[rune]string{
	'α': "a", 'ά': "a", 'β': "v", 'γ': "g", 'δ': "d", 'ε': "e", 'έ': "e",
	'ζ': "z", 'η': "i", 'ή': "i", 'θ': "th", 'ι': "i", 'ί': "i", 'ϊ': "i", 'ΐ': "i",
	'κ': "k", 'λ': "l", 'μ': "m", 'ν': "n", 'ξ': "x", 'ο': "o", 'ό': "o",
	'π': "p", 'ρ': "r", 'σ': "s", 'ς': "s", 'τ': "t", 'υ': "y", 'ύ': "y",
	'ϋ': "y", 'ΰ': "y", 'φ': "f", 'χ': "ch", 'ψ': "ps", 'ω': "o", 'ώ': "o",
}

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	invalidRegex    = regexp.MustCompile(`[^a-z0-9-]`)
	dashesRegex     = regexp.MustCompile(`-+`)
)

// Slugify transliterates Greek to Latin and reduces the result to [a-z0-9-].
func Slugify(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if latin, ok := greekToLatin[r]; ok {
			b.WriteString(latin)
			continue
		}
		b.WriteRune(r)
	}

	slug := whitespaceRegex.ReplaceAllString(b.String(), "-")
	slug = invalidRegex.ReplaceAllString(slug, "")
	slug = dashesRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// productSlug prefers the English name, then the Greek one.
func productSlug(slug, nameEn, name string) string {
	if s := strings.TrimSpace(slug); s != "" {
		return s
	}
	if s := Slugify(nameEn); s != "" {
		return s
	}
	return Slugify(name)
}
