// Package types provides type definitions for structured data used throughout the ats-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Angle is a framing perspective for an achievement bullet
type Angle string

// Impact angles
const (
	AngleSecurity   Angle = "security"
	AngleEfficiency Angle = "efficiency"
	AngleTeam       Angle = "team"
	AngleBusiness   Angle = "business"
)

// Angles lists every angle in tie-break priority order (earlier wins ties).
var Angles = []Angle{AngleSecurity, AngleEfficiency, AngleTeam, AngleBusiness}

// ImpactVariant is one angle-specific rendering of an achievement
type ImpactVariant struct {
	Angle Angle   `json:"angle"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// ProofMatch pairs a job requirement with the achievement offered as evidence
type ProofMatch struct {
	Requirement string  `json:"requirement"`
	Achievement string  `json:"achievement"`
	Confidence  float64 `json:"confidence"`
}

// Company size categories and defaults
const (
	SizeStartup        = "startup"
	SizeEnterprise     = "enterprise"
	Unknown            = "unknown"
	DefaultCompanyName = "the company"
	LocationRemote     = "remote"
)

// CompanyInfo is what could be inferred about the hiring company from a job posting
type CompanyInfo struct {
	Name     string   `json:"name"`
	Size     string   `json:"size"`
	Industry string   `json:"industry"`
	Values   []string `json:"values"`
	Location string   `json:"location"`
}

// DefaultCompanyInfo returns the fallback used when nothing could be detected
func DefaultCompanyInfo() CompanyInfo {
	return CompanyInfo{
		Name:     DefaultCompanyName,
		Size:     Unknown,
		Industry: Unknown,
		Values:   []string{},
		Location: Unknown,
	}
}

// CoverLetter is an assembled cover letter in one style
type CoverLetter struct {
	Style    string `json:"style"`
	Opening  string `json:"opening"`
	Body     string `json:"body"`
	Closing  string `json:"closing"`
	FullText string `json:"full_text"`
}

// SummarySelection is the chosen summary and its relevance score
type SummarySelection struct {
	Key   string  `json:"key"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// RankedSkill is a skill with its relevance score and original position
type RankedSkill struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Position int      `json:"position"`
	Score    float64  `json:"score"`
	Matched  []string `json:"matched,omitempty"`
}

// TailoredAchievement carries the generated bullet variants for one achievement
type TailoredAchievement struct {
	ID          string          `json:"id,omitempty"`
	Description string          `json:"description"`
	Variants    []ImpactVariant `json:"variants"`
	Recommended Angle           `json:"recommended"`
	Bullet      string          `json:"bullet"`
}

// KeywordCoverage reports which job keywords a document covers
type KeywordCoverage struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Ratio   float64  `json:"ratio"`
}

// TailoredResume is the fully selected content handed to the rendering layer
type TailoredResume struct {
	RoleTitle    string                `json:"role_title"`
	Basics       Basics                `json:"basics"`
	Headline     string                `json:"headline"`
	Summary      SummarySelection      `json:"summary"`
	Skills       []string              `json:"skills"`
	Projects     []Project             `json:"projects"`
	Work         []Work                `json:"work,omitempty"`
	Achievements []TailoredAchievement `json:"achievements"`
	Keywords     KeywordSet            `json:"keywords"`
	Company      CompanyInfo           `json:"company"`
	Coverage     KeywordCoverage       `json:"coverage"`
}
