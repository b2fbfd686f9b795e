// Package company infers the hiring company's name, size, industry, values and location
// from job posting text.
package company

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/ats-tailor/internal/parsing"
	"github.com/jonathan/ats-tailor/internal/types"
	"github.com/jonathan/ats-tailor/internal/vocab"
)

// namePattern matches a run of capitalized words, allowing "&" between them
const namePattern = `[A-Z][\w&.'-]*(?:[ \t]+(?:&[ \t]+)?[A-Z][\w&.'-]*)*`

// namedPhrases is a label with its normalized trigger phrases
type namedPhrases struct {
	name    string
	phrases []parsing.Text
}

// Extractor detects company information. It is safe for concurrent use.
type Extractor struct {
	prefix     *regexp.Regexp
	suffix     *regexp.Regexp
	generic    map[string]bool
	startup    []parsing.Text
	enterprise []parsing.Text
	industries []namedPhrases
	values     []namedPhrases
	remote     []parsing.Text
	cities     []cityPhrase
}

type cityPhrase struct {
	name   string
	phrase parsing.Text
}

// NewExtractor compiles the trigger patterns and normalizes the vocabulary
func NewExtractor(v vocab.CompanyVocabulary) *Extractor {
	e := &Extractor{
		prefix:     triggerPattern(v.PrefixTriggers, true),
		suffix:     triggerPattern(v.SuffixTriggers, false),
		generic:    make(map[string]bool, len(v.GenericNames)),
		startup:    normalizeAll(v.StartupTerms),
		enterprise: normalizeAll(v.EnterpriseTerms),
		industries: normalizeNamed(v.Industries),
		values:     normalizeNamed(v.Values),
		remote:     normalizeAll(v.RemoteTerms),
	}
	for _, g := range v.GenericNames {
		e.generic[strings.ToLower(g)] = true
	}
	// a capitalized trigger ("Join Acme is hiring") is never part of the name
	for _, t := range v.PrefixTriggers {
		for _, w := range strings.Fields(t) {
			e.generic[strings.ToLower(w)] = true
		}
	}
	for _, c := range v.Cities {
		if p := parsing.Normalize(c); !p.IsEmpty() {
			e.cities = append(e.cities, cityPhrase{name: c, phrase: p})
		}
	}
	return e
}

// triggerPattern builds "(trigger) NAME" or "NAME (trigger)". Triggers are case-insensitive,
// the name is not. Returns nil when there are no triggers.
func triggerPattern(triggers []string, prefix bool) *regexp.Regexp {
	var alts []string
	for _, t := range triggers {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		words := strings.Fields(regexp.QuoteMeta(t))
		alts = append(alts, strings.Join(words, `\s+`))
	}
	if len(alts) == 0 {
		return nil
	}

	// longer triggers first so "we are" is preferred over a shorter overlapping one
	sort.SliceStable(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })
	trigger := `(?i:\b(?:` + strings.Join(alts, "|") + `)\b)`

	if prefix {
		return regexp.MustCompile(trigger + `[ \t]+(` + namePattern + `)`)
	}
	return regexp.MustCompile(`(` + namePattern + `)[ \t]+` + trigger)
}

func normalizeAll(terms []string) []parsing.Text {
	out := make([]parsing.Text, 0, len(terms))
	for _, t := range terms {
		if p := parsing.Normalize(t); !p.IsEmpty() {
			out = append(out, p)
		}
	}
	return out
}

func normalizeNamed(groups []vocab.NamedTerms) []namedPhrases {
	out := make([]namedPhrases, 0, len(groups))
	for _, g := range groups {
		out = append(out, namedPhrases{name: g.Name, phrases: normalizeAll(g.Terms)})
	}
	return out
}

// Extract returns the company information found in text; fields that cannot be detected
// keep their defaults.
func (e *Extractor) Extract(text string) types.CompanyInfo {
	info := types.DefaultCompanyInfo()
	if strings.TrimSpace(text) == "" {
		return info
	}

	if name := e.findName(text); name != "" {
		info.Name = name
	}

	doc := parsing.Normalize(text)
	info.Size = e.size(doc)
	info.Industry = firstNamed(doc, e.industries)
	info.Values = allNamed(doc, e.values)
	info.Location = e.location(doc)

	return info
}

// nameCandidate is a possible company name and where it starts in the text
type nameCandidate struct {
	start int
	name  string
}

// findName returns the earliest acceptable name adjacent to a trigger
func (e *Extractor) findName(text string) string {
	var candidates []nameCandidate
	for _, re := range []*regexp.Regexp{e.prefix, e.suffix} {
		if re == nil {
			continue
		}
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			candidates = append(candidates, nameCandidate{start: m[2], name: text[m[2]:m[3]]})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].start < candidates[j].start
	})

	for _, c := range candidates {
		if name := e.cleanName(c.name); name != "" {
			return name
		}
	}
	return ""
}

// cleanName cuts the name at a sentence break, drops leading generic words and trailing
// punctuation. Returns "" if nothing specific remains.
func (e *Extractor) cleanName(raw string) string {
	words := strings.Fields(raw)
	for i, w := range words {
		if strings.HasSuffix(w, ".") && i < len(words)-1 {
			words = words[:i+1]
			break
		}
	}

	for len(words) > 0 && (e.generic[strings.ToLower(strings.TrimRight(words[0], ".'-"))] || words[0] == "&") {
		words = words[1:]
	}
	for len(words) > 0 && words[len(words)-1] == "&" {
		words = words[:len(words)-1]
	}
	if len(words) == 0 {
		return ""
	}

	name := strings.TrimRight(strings.Join(words, " "), ".'-")
	if name == "" || e.generic[strings.ToLower(name)] {
		return ""
	}
	return name
}

func (e *Extractor) size(doc parsing.Text) string {
	switch {
	case containsAny(doc, e.startup):
		return types.SizeStartup
	case containsAny(doc, e.enterprise):
		return types.SizeEnterprise
	default:
		return types.Unknown
	}
}

func (e *Extractor) location(doc parsing.Text) string {
	if containsAny(doc, e.remote) {
		return types.LocationRemote
	}

	best := ""
	bestPos := -1
	for _, c := range e.cities {
		positions := doc.Find(c.phrase)
		if len(positions) == 0 {
			continue
		}
		if bestPos < 0 || positions[0] < bestPos {
			best = c.name
			bestPos = positions[0]
		}
	}
	if best == "" {
		return types.Unknown
	}
	return best
}

func containsAny(doc parsing.Text, phrases []parsing.Text) bool {
	for _, p := range phrases {
		if doc.ContainsPhrase(p) {
			return true
		}
	}
	return false
}

func firstNamed(doc parsing.Text, groups []namedPhrases) string {
	for _, g := range groups {
		if containsAny(doc, g.phrases) {
			return g.name
		}
	}
	return types.Unknown
}

func allNamed(doc parsing.Text, groups []namedPhrases) []string {
	out := []string{}
	for _, g := range groups {
		if containsAny(doc, g.phrases) {
			out = append(out, g.name)
		}
	}
	return out
}
