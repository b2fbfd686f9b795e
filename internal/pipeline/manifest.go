package pipeline

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Kind classifies a generated artifact
type Kind string

// Artifact kinds
const (
	KindResume         Kind = "resume"
	KindCoverLetter    Kind = "cover_letter"
	KindLetterVariants Kind = "cover_letter_variants"
	KindReport         Kind = "report"
	KindPDF            Kind = "pdf"
)

// artifactNamespace scopes artifact IDs so the same file and content always get the same ID
var artifactNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("ats-tailor/artifact"))

// Artifact is one generated file
type Artifact struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	Kind Kind   `json:"kind"`
	Path string `json:"path"`
}

// Manifest lists everything one run produced
type Manifest struct {
	Profile   string     `json:"profile"`
	Date      string     `json:"date"`
	Artifacts []Artifact `json:"artifacts"`
	Warnings  []string   `json:"warnings,omitempty"`
}

// ByRole returns the artifacts generated for a role title
func (m *Manifest) ByRole(role string) []Artifact {
	var out []Artifact
	for _, a := range m.Artifacts {
		if a.Role == role {
			out = append(out, a)
		}
	}
	return out
}

// newArtifact derives a name-based ID from the file name and content. Files written elsewhere
// (JSON, PDF) are read back so their ID also tracks content.
func newArtifact(role string, kind Kind, path, content string) Artifact {
	if content == "" {
		if data, err := os.ReadFile(path); err == nil {
			content = string(data)
		}
	}
	name := filepath.Base(path) + "\x00" + content
	return Artifact{
		ID:   uuid.NewSHA1(artifactNamespace, []byte(name)).String(),
		Role: role,
		Kind: kind,
		Path: path,
	}
}

// ResumeFile is the resume file name for a role slug
func ResumeFile(slug string) string {
	return "Resume_" + slug + ".md"
}

// CoverLetterFile is the primary cover letter file name
func CoverLetterFile(slug string) string {
	return "Cover_Letter_" + slug + ".md"
}

// VariantsFile holds every cover letter style as JSON
func VariantsFile(slug string) string {
	return "Cover_Letter_" + slug + ".variants.json"
}

// ReportFile holds the scoring report
func ReportFile(slug string) string {
	return "Report_" + slug + ".json"
}
