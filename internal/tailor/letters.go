package tailor

import (
	"strings"

	"github.com/jonathan/ats-tailor/internal/config"
	"github.com/jonathan/ats-tailor/internal/letters"
	"github.com/jonathan/ats-tailor/internal/types"
)

// Background phrases keyed by summary type
const (
	backgroundAppSec     = "full-stack development and application security"
	backgroundHealthcare = "healthcare compliance and secure system administration"
	backgroundDefault    = "incident response and vulnerability management"
)

// BackgroundContext describes the candidate's background for a summary type
func BackgroundContext(summaryType string) string {
	switch strings.ToLower(strings.TrimSpace(summaryType)) {
	case "appsec":
		return backgroundAppSec
	case "healthcare":
		return backgroundHealthcare
	default:
		return backgroundDefault
	}
}

// Requirements returns the role's explicit requirements, else the tools, concepts and frameworks
// extracted from the job text in extraction order
func Requirements(role *config.RoleConfig, ks types.KeywordSet) []string {
	if role != nil && len(role.Requirements) > 0 {
		return append([]string{}, role.Requirements...)
	}
	reqs := make([]string, 0, len(ks.Tools)+len(ks.Concepts)+len(ks.Frameworks))
	reqs = append(reqs, ks.Tools...)
	reqs = append(reqs, ks.Concepts...)
	reqs = append(reqs, ks.Frameworks...)
	return reqs
}

// LetterInput assembles the cover letter input for a tailored resume. The date is printed as given.
func (e *Engine) LetterInput(p *types.Profile, role *config.RoleConfig, resume *types.TailoredResume, date string) letters.Input {
	primary := p.Basics.PrimarySkill
	if primary == "" && len(resume.Skills) > 0 {
		primary = resume.Skills[0]
	}

	summaryType := ""
	keyResponsibility := ""
	if role != nil {
		summaryType = role.SummaryType
		keyResponsibility = role.KeyResponsibility
	}

	descriptions := make([]string, 0, len(p.Achievements))
	for _, a := range p.Achievements {
		descriptions = append(descriptions, a.Description)
	}

	var highlight string
	if len(resume.Achievements) > 0 {
		highlight = resume.Achievements[0].Bullet
	}

	return letters.Input{
		Name:              p.Basics.Name,
		Email:             p.Basics.Email,
		Phone:             p.Basics.Phone,
		JobTitle:          resume.RoleTitle,
		YearsExperience:   p.Basics.YearsExperience,
		PrimarySkill:      primary,
		Domain:            p.Basics.Domain,
		Background:        "My background spans " + BackgroundContext(summaryType) + ".",
		KeyResponsibility: keyResponsibility,
		Company:           resume.Company,
		Proofs:            e.MatchProofs(descriptions, Requirements(role, resume.Keywords)),
		Highlight:         highlight,
		Date:              date,
	}
}

// RoleStyles returns the role's styles when it names any
func RoleStyles(role *config.RoleConfig) []string {
	if role == nil {
		return nil
	}
	return role.Styles
}
