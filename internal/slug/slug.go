// Package slug derives URL-safe group identifiers from display names.
package slug

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mmynk/quando/internal/models"
)

// fallbackPrefix prefixes the random slug used when a name has no [a-z0-9]
// characters left after transliteration.
const fallbackPrefix = "gruppo-"

// ExistsFunc reports whether a slug is already taken.
type ExistsFunc func(ctx context.Context, slug string) bool

// vowelFamilies lists the accented vowels folded to their base letter. Any
// other accented letter is not in [a-z0-9] and becomes a separator.
var vowelFamilies = map[rune]string{
	'a': "àáâãäå",
	'e': "èéêë",
	'i': "ìíîï",
	'o': "òóôõö",
	'u': "ùúûü",
}

var accentedVowels = func() map[rune]rune {
	m := make(map[rune]rune)
	for base, accented := range vowelFamilies {
		for _, r := range accented {
			m[r] = base
		}
	}
	return m
}()

func foldVowel(r rune) rune {
	if base, ok := accentedVowels[r]; ok {
		return base
	}
	return r
}

// Make lowercases name and folds accented vowels to their base letter. Every
// run of characters outside [a-z0-9] collapses into a single hyphen, and
// hyphens are trimmed from both ends. The result may be empty.
func Make(name string) string {
	lower := cases.Lower(language.Italian).String(name)

	stripped, _, err := transform.String(
		transform.Chain(norm.NFC, runes.Map(foldVowel)),
		lower,
	)
	if err != nil {
		stripped = lower
	}

	var b strings.Builder
	b.Grow(len(stripped))
	pendingHyphen := false
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// Unique returns Make(name), suffixed with -1, -2, ... until exists reports
// it free. A name that yields an empty slug gets a random "gruppo-xxxxxxxx"
// base instead.
func Unique(ctx context.Context, name string, exists ExistsFunc) string {
	base := Make(name)
	if base == "" {
		base = fallbackPrefix + models.RandomToken(8)
	}

	candidate := base
	for i := 1; exists(ctx, candidate); i++ {
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return candidate
}
