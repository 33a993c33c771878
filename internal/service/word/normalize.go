package service_word

import (
	"strings"
	"unicode"

	"github.com/humanbelnik/wordchain/internal/model"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize trims, lowercases and strips diacritics: "  Ação " -> "acao".
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return folded
}

// BuildCorpus normalizes raw provider lines and drops the empty ones.
func BuildCorpus(lines []string) model.Corpus {
	words := make([]string, 0, len(lines))
	for _, l := range lines {
		if w := Normalize(l); w != "" {
			words = append(words, w)
		}
	}
	return model.NewCorpus(words)
}
