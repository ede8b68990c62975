package corpus

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// cleanCorpus lowercases the text, drops every word that cannot be
// cleaned, and joins the survivors with a single space before each
// word. An input with no usable words cleans to the empty string.
func cleanCorpus(text string, minWordLength int) string {
	var b strings.Builder

	for _, word := range strings.Fields(strings.ToLower(text)) {
		cleaned, ok := cleanWord(word, minWordLength)
		if !ok {
			continue
		}

		b.WriteByte(' ')
		b.WriteString(cleaned)
	}

	return b.String()
}

// cleanWord strips non-word runes from both ends and keeps the word
// only if what remains is all word runes and long enough. Words with
// punctuation or digits in the middle are dropped entirely rather than
// patched.
func cleanWord(word string, minLength int) (string, bool) {
	word = strings.TrimFunc(word, func(r rune) bool {
		return !isWordRune(r)
	})

	if utf8.RuneCountInString(word) < minLength {
		return "", false
	}

	for _, r := range word {
		if !isWordRune(r) {
			return "", false
		}
	}

	return word, true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '\''
}
