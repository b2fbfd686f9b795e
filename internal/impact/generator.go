// Package impact rewrites an achievement into angle-specific resume bullets and recommends
// the angle that best fits a job posting.
package impact

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/ats-tailor/internal/ranking"
	"github.com/jonathan/ats-tailor/internal/types"
	"github.com/jonathan/ats-tailor/internal/vocab"
)

// Recommendation weights: how well the bullet matches the job, and how much the job leans
// toward the angle's theme.
const (
	bulletWeight = 0.7
	themeWeight  = 0.3
)

// angleSpec is an angle's vocabulary combined with its sentence template
type angleSpec struct {
	angle    types.Angle
	leadVerb string
	keywords []string
	template angleTemplate
}

// Generator produces impact variants. It is safe for concurrent use.
type Generator struct {
	scorer      *ranking.Scorer
	angles      []angleSpec
	knownVerbs  map[string]bool
	weakOpeners []string
	// properNouns are lowercased first words of product and framework names
	properNouns map[string]bool
}

// NewGenerator prepares angle vocabularies. Angles missing from v fall back to the built-in vocabulary.
func NewGenerator(v vocab.Vocabulary, scorer *ranking.Scorer) *Generator {
	defaults := vocab.Default()
	g := &Generator{
		scorer:      scorer,
		knownVerbs:  make(map[string]bool),
		properNouns: make(map[string]bool),
	}

	for _, group := range [][]string{v.Tools, v.Frameworks, v.Certifications} {
		for _, name := range group {
			if fields := strings.Fields(name); len(fields) > 0 {
				g.properNouns[strings.ToLower(fields[0])] = true
			}
		}
	}

	for _, verb := range v.ActionVerbs {
		g.knownVerbs[strings.ToLower(verb)] = true
	}
	for _, opener := range v.WeakOpeners {
		if o := strings.ToLower(strings.TrimSpace(opener)); o != "" {
			g.weakOpeners = append(g.weakOpeners, o)
		}
	}

	for _, a := range types.Angles {
		term, ok := v.Angle(a)
		if !ok || len(term.Verbs) == 0 {
			term, _ = defaults.Angle(a)
		}

		spec := angleSpec{
			angle:    a,
			leadVerb: term.Verbs[0],
			keywords: term.Keywords,
			template: angleTemplates[a],
		}
		for _, verb := range term.Verbs {
			g.knownVerbs[strings.ToLower(verb)] = true
		}
		g.angles = append(g.angles, spec)
	}

	return g
}

// Result holds the four variants in angle order and the recommended angle
type Result struct {
	Variants    []types.ImpactVariant `json:"variants"`
	Recommended types.Angle           `json:"recommended"`
}

// Generate builds one bullet per angle from a responsibility and its metrics, scores each
// against the keyword set and recommends the best. Exact ties resolve in angle priority order
// (security, efficiency, team, business). Unknown metric keys are ignored.
func (g *Generator) Generate(responsibility string, metrics types.Metrics, ks types.KeywordSet) Result {
	query := g.scorer.Prepare(ks)
	base := strings.TrimRight(strings.TrimSpace(responsibility), ".,;: ")
	base = withScope(base, metrics)

	result := Result{Variants: make([]types.ImpactVariant, 0, len(g.angles))}
	bestScore := -1.0

	for _, spec := range g.angles {
		text := g.compose(spec, base, metrics)
		score := bulletWeight*query.Score(text) + themeWeight*query.Score(spec.keywords...)

		result.Variants = append(result.Variants, types.ImpactVariant{
			Angle: spec.angle,
			Text:  text,
			Score: score,
		})
		if score > bestScore {
			bestScore = score
			result.Recommended = spec.angle
		}
	}

	return result
}

// compose renders one angle's bullet
func (g *Generator) compose(spec angleSpec, base string, metrics types.Metrics) string {
	lead := g.reframe(spec, base)

	var clauses []string
	for _, s := range spec.template.slots {
		if m, ok := metrics[s.key]; ok && !m.IsZero() {
			clauses = append(clauses, fmt.Sprintf(s.clause, m.String()))
		}
	}
	if len(clauses) == 0 {
		clauses = append(clauses, spec.template.fallback)
	}
	if m, ok := metrics[outcomeKey]; ok && !m.IsZero() {
		clauses = append(clauses, strings.TrimRight(m.String(), "."))
	}

	if lead == "" {
		return capitalize(joinAnd(clauses)) + "."
	}
	return lead + ", " + joinAnd(clauses) + "."
}

// reframe makes the bullet open with an action verb suited to the angle.
// A strong leading verb is kept; a weak opener is replaced by the angle's lead verb;
// text without a leading verb gets the lead verb prepended.
func (g *Generator) reframe(spec angleSpec, base string) string {
	if base == "" {
		return ""
	}

	lower := strings.ToLower(base)
	for _, opener := range g.weakOpeners {
		if strings.HasPrefix(lower, opener+" ") {
			rest := strings.TrimSpace(base[len(opener):])
			return spec.leadVerb + " " + rest
		}
	}

	first := strings.ToLower(strings.Fields(base)[0])
	first = strings.TrimRight(first, ".,;:")
	if g.knownVerbs[first] {
		return base
	}

	if g.properNouns[first] {
		return spec.leadVerb + " " + base
	}
	return spec.leadVerb + " " + decapitalize(base)
}

// withScope appends the scope metric unless the text already mentions it
func withScope(base string, metrics types.Metrics) string {
	m, ok := metrics[scopeKey]
	if !ok || m.IsZero() {
		return base
	}
	scope := strings.TrimSpace(m.String())
	if strings.Contains(strings.ToLower(base), strings.ToLower(scope)) {
		return base
	}
	if base == "" {
		return "Operated across " + scope
	}
	return base + " across " + scope
}

// joinAnd joins clauses as "a", "a and b" or "a, b, and c"
func joinAnd(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// decapitalize lowercases the first letter unless the first word looks like an acronym or name
func decapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsUpper(r) {
		return s
	}
	next, _ := utf8.DecodeRuneInString(s[size:])
	if unicode.IsUpper(next) || unicode.IsDigit(next) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// Texts returns the bullet text per angle
func (r Result) Texts() map[types.Angle]string {
	out := make(map[types.Angle]string, len(r.Variants))
	for _, v := range r.Variants {
		out[v.Angle] = v.Text
	}
	return out
}

// Scores returns the recommendation score per angle
func (r Result) Scores() map[types.Angle]float64 {
	out := make(map[types.Angle]float64, len(r.Variants))
	for _, v := range r.Variants {
		out[v.Angle] = v.Score
	}
	return out
}

// Variant returns the variant for an angle
func (r Result) Variant(a types.Angle) (types.ImpactVariant, bool) {
	for _, v := range r.Variants {
		if v.Angle == a {
			return v, true
		}
	}
	return types.ImpactVariant{}, false
}

// RecommendedText returns the text of the recommended variant
func (r Result) RecommendedText() string {
	v, _ := r.Variant(r.Recommended)
	return v.Text
}
