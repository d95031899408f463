// Package textnorm turns raw tweet text into the lowercase, bare-word
// form the sentiment scorer consumes.
package textnorm

import (
	"html"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bbalet/stopwords"
	"github.com/russross/blackfriday/v2"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]*>`)
)

func removeLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, " ")
}

// flattenMarkdown renders any markdown to HTML and strips the tags,
// leaving plain text for the cleaning passes below.
func flattenMarkdown(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := htmlTagPattern.ReplaceAllString(string(output), " ")
	plain = html.UnescapeString(plain)

	return strings.Join(strings.Fields(plain), " ")
}

// Normalize lowercases text and removes links, punctuation, digits and
// English stopwords, collapsing whitespace to single spaces. Empty or
// whitespace-only input yields "". The result is stable under
// re-normalization and always safe to hand to the scorer.
func Normalize(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	plain := removeLinks(flattenMarkdown(text))
	cleaned := stopwords.CleanString(plain, "en", false)

	// CleanString keeps word-internal '-_' runes; drop them so no
	// punctuation survives. Dropping rather than splitting keeps the
	// transform idempotent ("kind-of" -> "kindof", stable thereafter).
	var b strings.Builder
	b.Grow(len(cleaned))
	for _, r := range cleaned {
		if unicode.IsLetter(r) || r == ' ' {
			b.WriteRune(r)
		}
	}

	// The stopword list leaves lone-letter tokens ("i") in place;
	// no single letter carries sentiment, so drop them all.
	words := strings.Fields(b.String())
	kept := words[:0]
	for _, w := range words {
		if utf8.RuneCountInString(w) > 1 {
			kept = append(kept, w)
		}
	}

	return strings.Join(kept, " ")
}
