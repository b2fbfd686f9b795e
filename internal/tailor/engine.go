// Package tailor wires the scoring and selection components around one shared vocabulary
// and scorer, and derives tailored resume content and cover letters from a profile.
package tailor

import (
	"errors"
	"strings"

	"github.com/jonathan/ats-tailor/internal/company"
	"github.com/jonathan/ats-tailor/internal/config"
	"github.com/jonathan/ats-tailor/internal/impact"
	"github.com/jonathan/ats-tailor/internal/keywords"
	"github.com/jonathan/ats-tailor/internal/letters"
	"github.com/jonathan/ats-tailor/internal/ranking"
	"github.com/jonathan/ats-tailor/internal/selection"
	"github.com/jonathan/ats-tailor/internal/skills"
	"github.com/jonathan/ats-tailor/internal/types"
	"github.com/jonathan/ats-tailor/internal/validation"
	"github.com/jonathan/ats-tailor/internal/vocab"
)

// DefaultProjectCount is how many projects of the first category are shown when a role names none
const DefaultProjectCount = 5

// Options tunes an Engine
type Options struct {
	// MaxSkills caps reordered skills; zero keeps all
	MaxSkills int
	// MinProofConfidence is the exclusive lower bound for proof matches
	MinProofConfidence float64
	// MaxProofs caps proof matches per letter; zero keeps all
	MaxProofs int
	// Styles are the cover letter styles produced when a role names none
	Styles []string
}

// DefaultOptions mirrors the configuration defaults
func DefaultOptions() Options {
	return Options{
		MinProofConfidence: config.DefaultMinProofConfidence,
		MaxProofs:          config.DefaultMaxProofs,
	}
}

// OptionsFromConfig builds engine options from a merged CLI configuration
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		MaxSkills:          cfg.MaxSkills,
		MinProofConfidence: cfg.MinProofConfidence,
		MaxProofs:          cfg.MaxProofs,
		Styles:             cfg.Styles,
	}
}

// Engine bundles every core component. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	opts      Options
	scorer    *ranking.Scorer
	extractor *keywords.Extractor
	generator *impact.Generator
	company   *company.Extractor
	matcher   *selection.Matcher
	assembler *letters.Assembler
}

// NewEngine builds the components from a vocabulary and cover letter templates
func NewEngine(v vocab.Vocabulary, t letters.Templates, opts Options) (*Engine, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	assembler, err := letters.NewAssembler(t)
	if err != nil {
		return nil, err
	}

	scorer := ranking.NewDefaultScorer()
	extractor := keywords.NewExtractor(v)

	matcher := selection.NewMatcher(extractor, scorer)
	matcher.MinConfidence = opts.MinProofConfidence
	matcher.Limit = opts.MaxProofs

	return &Engine{
		opts:      opts,
		scorer:    scorer,
		extractor: extractor,
		generator: impact.NewGenerator(v, scorer),
		company:   company.NewExtractor(v.Company),
		matcher:   matcher,
		assembler: assembler,
	}, nil
}

// NewDefaultEngine builds an engine from the built-in vocabulary and templates
func NewDefaultEngine(opts Options) (*Engine, error) {
	t, err := letters.DefaultTemplates()
	if err != nil {
		return nil, err
	}
	return NewEngine(vocab.Default(), t, opts)
}

// ExtractKeywords categorizes the vocabulary terms found in a job description
func (e *Engine) ExtractKeywords(text string) types.KeywordSet {
	return e.extractor.Extract(text)
}

// Score is the weighted share of keywords found in the candidate texts
func (e *Engine) Score(ks types.KeywordSet, candidates ...string) float64 {
	return e.scorer.Score(ks, candidates...)
}

// Explain scores the candidates and lists which keywords matched
func (e *Engine) Explain(ks types.KeywordSet, candidates ...string) ranking.Result {
	return e.scorer.Explain(ks, candidates...)
}

// RankSkills scores every skill against the keyword set
func (e *Engine) RankSkills(collection types.SkillCollection, ks types.KeywordSet) []types.RankedSkill {
	return skills.Rank(e.scorer, collection, ks)
}

// ReorderSkills orders skills by relevance, keeping at most maxCount when positive
func (e *Engine) ReorderSkills(collection types.SkillCollection, ks types.KeywordSet, maxCount int) []string {
	return skills.Reorder(e.scorer, collection, ks, maxCount)
}

// SelectSummary picks the highest scoring summary
func (e *Engine) SelectSummary(summaries types.Summaries, ks types.KeywordSet) (types.SummarySelection, error) {
	return selection.SelectSummary(e.scorer, summaries, ks)
}

// SummaryByKey scores the named summary
func (e *Engine) SummaryByKey(summaries types.Summaries, key string, ks types.KeywordSet) (types.SummarySelection, error) {
	return selection.SummaryByKey(e.scorer, summaries, key, ks)
}

// ImpactVariants rewrites a responsibility from each angle and recommends one
func (e *Engine) ImpactVariants(responsibility string, metrics types.Metrics, ks types.KeywordSet) impact.Result {
	return e.generator.Generate(responsibility, metrics, ks)
}

// CompanyInfo extracts company details from a job description
func (e *Engine) CompanyInfo(text string) types.CompanyInfo {
	return e.company.Extract(text)
}

// MatchProofs pairs requirements with the achievements that best support them
func (e *Engine) MatchProofs(achievements, requirements []string) []types.ProofMatch {
	return e.matcher.Match(achievements, requirements)
}

// CoverLetters builds one letter per style. With no styles the engine's configured styles are
// used, then the default styles.
func (e *Engine) CoverLetters(in letters.Input, styles ...string) ([]types.CoverLetter, error) {
	if len(styles) == 0 {
		styles = e.opts.Styles
	}
	return e.assembler.Variants(in, styles...)
}

// Tailor selects and orders profile content for a role. A nil role produces the general resume
// from the profile's own label; an empty job text keeps declared order throughout.
func (e *Engine) Tailor(p *types.Profile, role *config.RoleConfig, jobText string) (*types.TailoredResume, error) {
	ks := e.ExtractKeywords(jobText)

	basics := p.Basics
	title := strings.TrimSpace(basics.Label)
	if role != nil {
		title = strings.TrimSpace(role.RoleTitle)
		basics.Label = title
	}

	summary, err := e.summary(p.Summaries, role, ks)
	if err != nil && !errors.Is(err, selection.ErrNoSummaries) {
		return nil, err
	}

	maxSkills := e.opts.MaxSkills
	if role != nil && role.MaxSkills > 0 {
		maxSkills = role.MaxSkills
	}
	ordered := e.ReorderSkills(p.Skills, ks, maxSkills)

	achievements := make([]types.TailoredAchievement, 0, len(p.Achievements))
	for _, a := range p.Achievements {
		result := e.ImpactVariants(a.Description, a.Metrics, ks)
		achievements = append(achievements, types.TailoredAchievement{
			ID:          a.ID,
			Description: a.Description,
			Variants:    result.Variants,
			Recommended: result.Recommended,
			Bullet:      result.RecommendedText(),
		})
	}

	resume := &types.TailoredResume{
		RoleTitle:    title,
		Basics:       basics,
		Summary:      summary,
		Skills:       ordered,
		Projects:     selectProjects(p.Projects, role),
		Work:         p.Work,
		Achievements: achievements,
		Keywords:     ks,
		Company:      e.CompanyInfo(jobText),
	}
	if resume.RoleTitle == "" {
		resume.RoleTitle = config.DefaultRoleTitle
	}
	if title != "" {
		resume.Headline = skills.Headline(title, ordered, basics.Domain)
	}
	if role != nil && strings.TrimSpace(role.Company) != "" {
		resume.Company.Name = strings.TrimSpace(role.Company)
	}
	resume.Coverage = validation.KeywordCoverage(ks, resumeText(resume))

	return resume, nil
}

// summary honors an explicit summary type that exists in the profile, else picks by score
func (e *Engine) summary(summaries types.Summaries, role *config.RoleConfig, ks types.KeywordSet) (types.SummarySelection, error) {
	if role != nil && role.SummaryType != "" {
		if _, ok := summaries.Get(role.SummaryType); ok {
			return e.SummaryByKey(summaries, role.SummaryType, ks)
		}
	}
	return e.SelectSummary(summaries, ks)
}

// selectProjects returns the role's projects in the role's order, else the head of the first category.
// Unknown IDs are skipped.
func selectProjects(projects types.ProjectCollection, role *config.RoleConfig) []types.Project {
	if role != nil && len(role.ProjectIDs) > 0 {
		byID := make(map[string]types.Project)
		for _, p := range projects.All() {
			if _, seen := byID[p.ID]; !seen {
				byID[p.ID] = p
			}
		}
		selected := make([]types.Project, 0, len(role.ProjectIDs))
		for _, id := range role.ProjectIDs {
			if p, ok := byID[id]; ok {
				selected = append(selected, p)
			}
		}
		return selected
	}

	if len(projects) == 0 {
		return []types.Project{}
	}
	first := projects[0].Projects
	if len(first) > DefaultProjectCount {
		first = first[:DefaultProjectCount]
	}
	return append([]types.Project{}, first...)
}

// resumeText is the visible text of a tailored resume, used for coverage
func resumeText(r *types.TailoredResume) string {
	parts := []string{r.Headline, r.Summary.Text}
	parts = append(parts, r.Skills...)
	for _, a := range r.Achievements {
		parts = append(parts, a.Bullet)
	}
	for _, w := range r.Work {
		parts = append(parts, w.Position)
		parts = append(parts, w.Highlights...)
	}
	for _, p := range r.Projects {
		parts = append(parts, p.Name, p.Description)
		parts = append(parts, p.Technologies...)
	}
	return strings.Join(parts, "\n")
}
