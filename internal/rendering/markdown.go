package rendering

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/jonathan/ats-tailor/internal/types"
)

// Template file names, looked up in the template directory before the embedded defaults
const (
	ResumeTemplate      = "resume.md.tmpl"
	CoverLetterTemplate = "cover_letter.md.tmpl"
)

//go:embed templates/*.md.tmpl
var defaultTemplates embed.FS

var blankRun = regexp.MustCompile(`\n{3,}`)

// CoverLetterData is passed to the cover letter template
type CoverLetterData struct {
	Name      string
	RoleTitle string
	Company   types.CompanyInfo
	Letter    types.CoverLetter
}

// Renderer renders Markdown documents from parsed templates
type Renderer struct {
	resume      *template.Template
	coverLetter *template.Template
}

// NewRenderer parses the resume and cover letter templates. Files in templateDir replace
// the embedded defaults; an empty templateDir uses the defaults only.
func NewRenderer(templateDir string) (*Renderer, error) {
	resume, err := loadTemplate(templateDir, ResumeTemplate)
	if err != nil {
		return nil, err
	}
	coverLetter, err := loadTemplate(templateDir, CoverLetterTemplate)
	if err != nil {
		return nil, err
	}
	return &Renderer{resume: resume, coverLetter: coverLetter}, nil
}

func loadTemplate(templateDir, name string) (*template.Template, error) {
	content, err := readTemplate(templateDir, name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Funcs(template.FuncMap{
		"escape":      EscapeMarkdown,
		"escapeAll":   escapeAll,
		"join":        strings.Join,
		"contactLine": contactLine,
	}).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to parse template %s", name),
			Cause:   err,
		}
	}
	return tmpl, nil
}

// readTemplate prefers templateDir/name and falls back to the embedded copy
func readTemplate(templateDir, name string) ([]byte, error) {
	if templateDir != "" {
		path := filepath.Join(templateDir, name)
		content, err := os.ReadFile(path)
		if err == nil {
			return content, nil
		}
		if !os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("failed to read template file: %s", path),
				Cause:   err,
			}
		}
	}

	content, err := defaultTemplates.ReadFile("templates/" + name)
	if err != nil {
		return nil, &TemplateError{
			Message: fmt.Sprintf("template not found: %s", name),
			Cause:   err,
		}
	}
	return content, nil
}

// RenderResume renders a tailored resume to Markdown
func (r *Renderer) RenderResume(resume types.TailoredResume) (string, error) {
	return execute(r.resume, resume)
}

// RenderCoverLetter renders a cover letter to Markdown
func (r *Renderer) RenderCoverLetter(data CoverLetterData) (string, error) {
	return execute(r.coverLetter, data)
}

func execute(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	out := blankRun.ReplaceAllString(sb.String(), "\n\n")
	return strings.TrimSpace(out) + "\n", nil
}

// WriteDocument writes rendered content, creating the parent directory
func WriteDocument(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &RenderError{
			Message: "failed to create output directory",
			Cause:   err,
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return &RenderError{
			Message: fmt.Sprintf("failed to write %s", path),
			Cause:   err,
		}
	}
	return nil
}

func escapeAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = EscapeMarkdown(s)
	}
	return out
}

// contactLine joins the non-empty contact fields
func contactLine(b types.Basics) string {
	var parts []string
	for _, field := range []string{b.Email, b.Phone, b.Location, b.Website} {
		if field = strings.TrimSpace(field); field != "" {
			parts = append(parts, EscapeMarkdown(field))
		}
	}
	return strings.Join(parts, " | ")
}
