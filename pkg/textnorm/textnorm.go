// Package textnorm produces the canonical lowercase form of free text used for
// interest matching.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize strips markup, spells out "&" as "and", lowercases, folds
// diacritics, drops everything that is not a letter, digit or whitespace and
// collapses whitespace. The result only contains [a-z0-9] and single spaces,
// so Normalize(Normalize(s)) == Normalize(s).
func Normalize(value string) string {
	if value == "" {
		return ""
	}

	value = StripMarkup(value)
	value = strings.ReplaceAll(value, "&", " and ")
	value = foldDiacritics(strings.ToLower(value))

	var b strings.Builder
	b.Grow(len(value))

	pendingSpace := false
	for _, r := range value {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			pendingSpace = true
		}
		// punctuation is deleted, not replaced, so "e-sports" becomes "esports"
	}

	return b.String()
}

// Words returns the tokens of the normalized value.
func Words(value string) []string {
	return strings.Fields(Normalize(value))
}

// WordSet returns the distinct tokens of the normalized value.
func WordSet(value string) map[string]struct{} {
	words := Words(value)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// StripMarkup removes HTML tags and decodes entities. Tag boundaries become a
// single space so "<p>a</p><p>b</p>" does not merge into "ab".
func StripMarkup(value string) string {
	if !strings.ContainsAny(value, "<&") {
		return value
	}

	z := html.NewTokenizer(strings.NewReader(value))
	var b strings.Builder
	b.Grow(len(value))

	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			b.WriteByte(' ')
		}
	}
}

func foldDiacritics(value string) string {
	// transform.Chain keeps state, so it is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, value)
	if err != nil {
		return value
	}
	return folded
}
