// Package parsing provides the single text normalization step shared by every matcher:
// keyword extraction, relevance scoring, company detection and density checks all
// compare text through Normalize so that matching semantics are identical everywhere.
package parsing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kljensen/snowball/english"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// tokenAliases maps common variants to a canonical token before stemming
var tokenAliases = map[string]string{
	"golang":     "go",
	"js":         "javascript",
	"ts":         "typescript",
	"k8s":        "kubernetes",
	"reactjs":    "react",
	"react.js":   "react",
	"vuejs":      "vue",
	"vue.js":     "vue",
	"nodejs":     "node.js",
	"start-up":   "startup",
	"e-mail":     "email",
	"postgresql": "postgres",
}

// minStemLength is the shortest token passed through the stemmer
const minStemLength = 4

// Text is a normalized view of free text: case-folded words plus their stems.
// Phrase matching compares stems on token boundaries.
type Text struct {
	words  []string
	stems  []string
	joined string
}

// Normalize folds, tokenizes and stems text. Empty input yields an empty Text.
func Normalize(s string) Text {
	words := Tokenize(s)
	stems := make([]string, len(words))
	for i, w := range words {
		stems[i] = Stem(w)
	}
	return Text{
		words:  words,
		stems:  stems,
		joined: " " + strings.Join(stems, " ") + " ",
	}
}

// Tokenize splits text into case-folded word tokens.
// Letters, digits and the characters + # & are word characters, so "c++", "security+"
// and "att&ck" survive; '.', '-' and apostrophes are kept only inside a token.
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	// a Caser is stateful, so each call gets its own
	s = cases.Fold().String(norm.NFKC.String(s))
	s = strings.ReplaceAll(s, "’", "'")

	var tokens []string
	var word strings.Builder
	flush := func() {
		w := cleanToken(word.String())
		word.Reset()
		if w == "" {
			return
		}
		if alias, ok := tokenAliases[w]; ok {
			w = alias
		}
		tokens = append(tokens, w)
	}

	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '+', r == '#', r == '&':
			word.WriteRune(r)
		case r == '.', r == '-', r == '\'':
			if word.Len() > 0 {
				word.WriteRune(r)
			}
		default:
			flush()
		}
	}
	flush()

	return tokens
}

// cleanToken trims inner-only punctuation from the ends and drops possessives.
// Tokens without any letter or digit are discarded.
func cleanToken(w string) string {
	w = strings.TrimRight(w, ".-'")
	w = strings.TrimSuffix(w, "'s")
	if !strings.ContainsFunc(w, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }) {
		return ""
	}
	return w
}

// Stem reduces a plain alphabetic token to its English stem. Other tokens pass through unchanged.
func Stem(word string) string {
	if utf8.RuneCountInString(word) < minStemLength || !isPlainWord(word) {
		return word
	}
	return english.Stem(word, false)
}

func isPlainWord(w string) bool {
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Words returns the case-folded, unstemmed tokens
func (t Text) Words() []string {
	return t.words
}

// Stems returns the stemmed tokens
func (t Text) Stems() []string {
	return t.stems
}

// Len returns the number of tokens
func (t Text) Len() int {
	return len(t.words)
}

// IsEmpty reports whether the text has no tokens
func (t Text) IsEmpty() bool {
	return len(t.words) == 0
}

// String returns the stem sequence joined by single spaces
func (t Text) String() string {
	return strings.Join(t.stems, " ")
}

// ContainsPhrase reports whether the phrase occurs on token boundaries
func (t Text) ContainsPhrase(phrase Text) bool {
	if phrase.IsEmpty() || t.IsEmpty() {
		return false
	}
	return strings.Contains(t.joined, phrase.joined)
}

// Contains normalizes the phrase and reports whether it occurs in the text
func (t Text) Contains(phrase string) bool {
	return t.ContainsPhrase(Normalize(phrase))
}

// ContainsAny reports whether any of the phrases occurs in the text
func (t Text) ContainsAny(phrases []string) bool {
	for _, p := range phrases {
		if t.Contains(p) {
			return true
		}
	}
	return false
}

// Find returns the token offsets at which the phrase starts
func (t Text) Find(phrase Text) []int {
	n := len(phrase.stems)
	if n == 0 || n > len(t.stems) {
		return nil
	}

	var positions []int
	for i := 0; i+n <= len(t.stems); i++ {
		if equalTokens(t.stems[i:i+n], phrase.stems) {
			positions = append(positions, i)
		}
	}
	return positions
}

// Count returns the number of non-overlapping occurrences of the phrase
func (t Text) Count(phrase Text) int {
	count := 0
	next := 0
	for _, pos := range t.Find(phrase) {
		if pos < next {
			continue
		}
		count++
		next = pos + len(phrase.stems)
	}
	return count
}

func equalTokens(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
