// Package keywords extracts categorized keyword sets from job description text.
package keywords

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/ats-tailor/internal/parsing"
	"github.com/jonathan/ats-tailor/internal/types"
	"github.com/jonathan/ats-tailor/internal/vocab"
)

const (
	// DefaultMaxCustom caps the frequency-fallback keywords
	DefaultMaxCustom = 15
	// minCustomLength is the shortest token kept by the frequency fallback
	minCustomLength = 3
)

var yearsPattern = regexp.MustCompile(`(\d+)\+?\s+years?`)

// term is a prepared vocabulary entry
type term struct {
	category types.Category
	keyword  string
	phrase   parsing.Text
}

// Extractor turns job description text into a KeywordSet
type Extractor struct {
	terms     []term
	stopWords map[string]bool
	maxCustom int
}

// Option configures an Extractor
type Option func(*Extractor)

// WithMaxCustom sets the cap on frequency-fallback keywords. Zero disables the fallback.
func WithMaxCustom(n int) Option {
	return func(e *Extractor) {
		if n >= 0 {
			e.maxCustom = n
		}
	}
}

// NewExtractor prepares the vocabulary for matching.
// Longer phrases are matched first so that "owasp top 10" claims its tokens before "owasp".
func NewExtractor(v vocab.Vocabulary, opts ...Option) *Extractor {
	e := &Extractor{
		stopWords: make(map[string]bool, len(v.StopWords)),
		maxCustom: DefaultMaxCustom,
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, w := range v.StopWords {
		for _, tok := range parsing.Tokenize(w) {
			e.stopWords[tok] = true
		}
	}

	add := func(cat types.Category, entries []string) {
		for _, entry := range entries {
			phrase := parsing.Normalize(entry)
			if phrase.IsEmpty() {
				continue
			}
			e.terms = append(e.terms, term{
				category: cat,
				keyword:  strings.ToLower(strings.TrimSpace(entry)),
				phrase:   phrase,
			})
		}
	}
	add(types.CategoryTool, v.Tools)
	add(types.CategoryConcept, v.Concepts)
	add(types.CategoryFramework, v.Frameworks)
	add(types.CategoryCustom, v.Certifications)

	sort.SliceStable(e.terms, func(i, j int) bool {
		return e.terms[i].phrase.Len() > e.terms[j].phrase.Len()
	})

	return e
}

// match is a vocabulary hit at a token position
type match struct {
	term     term
	position int
}

// Extract builds the KeywordSet for a job description. Empty text yields an empty set.
func (e *Extractor) Extract(text string) types.KeywordSet {
	ks := types.NewKeywordSet()
	doc := parsing.Normalize(text)
	if doc.IsEmpty() {
		return ks
	}

	claimed := make([]bool, doc.Len())
	var matches []match

	for _, t := range e.terms {
		first := -1
		for _, pos := range doc.Find(t.phrase) {
			if !isFree(claimed, pos, t.phrase.Len()) {
				continue
			}
			for i := pos; i < pos+t.phrase.Len(); i++ {
				claimed[i] = true
			}
			if first < 0 {
				first = pos
			}
		}
		if first >= 0 {
			matches = append(matches, match{term: t, position: first})
		}
	}

	// report keywords in order of first appearance
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].position < matches[j].position
	})
	for _, m := range matches {
		ks.Add(m.term.category, m.term.keyword)
	}

	if years := yearsPattern.FindStringSubmatch(strings.ToLower(text)); years != nil {
		ks.Add(types.CategoryCustom, years[1]+" years")
	}

	for _, kw := range e.frequentTokens(doc, claimed) {
		ks.Add(types.CategoryCustom, kw)
	}

	return ks
}

// frequentTokens returns unclaimed significant tokens ordered by frequency, then first occurrence
func (e *Extractor) frequentTokens(doc parsing.Text, claimed []bool) []string {
	if e.maxCustom == 0 {
		return nil
	}

	type candidate struct {
		word  string
		count int
		first int
	}
	byStem := make(map[string]*candidate)
	var order []*candidate

	words := doc.Words()
	stems := doc.Stems()
	for i, w := range words {
		if claimed[i] || !e.significant(w) {
			continue
		}
		if c, ok := byStem[stems[i]]; ok {
			c.count++
			continue
		}
		c := &candidate{word: w, count: 1, first: i}
		byStem[stems[i]] = c
		order = append(order, c)
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	limit := min(len(order), e.maxCustom)
	out := make([]string, 0, limit)
	for _, c := range order[:limit] {
		out = append(out, c.word)
	}
	return out
}

func (e *Extractor) significant(word string) bool {
	if utf8.RuneCountInString(word) < minCustomLength || e.stopWords[word] {
		return false
	}
	return strings.ContainsFunc(word, unicode.IsLetter)
}

func isFree(claimed []bool, pos, n int) bool {
	for i := pos; i < pos+n; i++ {
		if claimed[i] {
			return false
		}
	}
	return true
}
