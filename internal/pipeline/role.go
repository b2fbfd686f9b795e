package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jonathan/ats-tailor/internal/config"
	"github.com/jonathan/ats-tailor/internal/ingestion"
	"github.com/jonathan/ats-tailor/internal/rendering"
	"github.com/jonathan/ats-tailor/internal/tailor"
	"github.com/jonathan/ats-tailor/internal/types"
	"github.com/jonathan/ats-tailor/internal/validation"
)

// Report is the per-role scoring detail written next to the documents
type Report struct {
	RoleTitle    string                      `json:"role_title"`
	Keywords     types.KeywordSet            `json:"keywords"`
	Summary      types.SummarySelection      `json:"summary"`
	Skills       []string                    `json:"skills"`
	Company      types.CompanyInfo           `json:"company"`
	Proofs       []types.ProofMatch          `json:"proofs"`
	Achievements []types.TailoredAchievement `json:"achievements"`
	Coverage     types.KeywordCoverage       `json:"coverage"`
	Validation   validation.Report           `json:"validation"`
}

// general renders the untailored resume
func (g *generator) general(ctx context.Context) ([]Artifact, error) {
	resume, err := g.engine.Tailor(g.profile, nil, "")
	if err != nil {
		return nil, fmt.Errorf("tailoring general resume failed: %w", err)
	}
	content, err := g.renderer.RenderResume(*resume)
	if err != nil {
		return nil, err
	}
	return g.writeDocument(ctx, config.DefaultRoleTitle, KindResume, ResumeFile(config.DefaultRoleTitle), content)
}

// role tailors, renders and writes every document for one role config
func (g *generator) role(ctx context.Context, role *config.RoleConfig) (*RoleResult, error) {
	log := g.log.With("role", role.RoleTitle)
	slug := role.Slug()

	jobText, err := JobDescription(role)
	if err != nil {
		return nil, err
	}
	if jobText == "" {
		log.Warn("role has no job description, keeping declared order")
	}

	resume, err := g.engine.Tailor(g.profile, role, jobText)
	if err != nil {
		return nil, fmt.Errorf("tailoring failed: %w", err)
	}
	log.Debug("tailored resume", "keywords", resume.Keywords.Len(), "coverage", resume.Coverage.Ratio)

	result := &RoleResult{Role: role, Resume: resume}

	content, err := g.renderer.RenderResume(*resume)
	if err != nil {
		return nil, err
	}
	artifacts, err := g.writeDocument(ctx, role.RoleTitle, KindResume, ResumeFile(slug), content)
	if err != nil {
		return nil, err
	}
	result.Artifacts = append(result.Artifacts, artifacts...)

	in := g.engine.LetterInput(g.profile, role, resume, g.date)
	result.Proofs = in.Proofs
	letters, err := g.engine.CoverLetters(in, tailor.RoleStyles(role)...)
	if err != nil {
		return nil, fmt.Errorf("assembling cover letters failed: %w", err)
	}
	result.Letters = letters

	letter, err := g.renderer.RenderCoverLetter(rendering.CoverLetterData{
		Name:      g.profile.Basics.Name,
		RoleTitle: resume.RoleTitle,
		Company:   resume.Company,
		Letter:    letters[0],
	})
	if err != nil {
		return nil, err
	}
	artifacts, err = g.writeDocument(ctx, role.RoleTitle, KindCoverLetter, CoverLetterFile(slug), letter)
	if err != nil {
		return nil, err
	}
	result.Artifacts = append(result.Artifacts, artifacts...)

	variantsPath := filepath.Join(g.cfg.OutputDir, VariantsFile(slug))
	if err := writeJSON(variantsPath, letters); err != nil {
		return nil, err
	}
	result.Artifacts = append(result.Artifacts, newArtifact(role.RoleTitle, KindLetterVariants, variantsPath, ""))

	report := Report{
		RoleTitle:    resume.RoleTitle,
		Keywords:     resume.Keywords,
		Summary:      resume.Summary,
		Skills:       resume.Skills,
		Company:      resume.Company,
		Proofs:       in.Proofs,
		Achievements: resume.Achievements,
		Coverage:     resume.Coverage,
		Validation:   validation.Validate(content, resume.Keywords, validation.Options{}),
	}
	if !report.Validation.Valid() {
		log.Warn("resume failed validation", "violations", len(report.Validation.Violations))
	}
	reportPath := filepath.Join(g.cfg.OutputDir, ReportFile(slug))
	if err := writeJSON(reportPath, report); err != nil {
		return nil, err
	}
	result.Artifacts = append(result.Artifacts, newArtifact(role.RoleTitle, KindReport, reportPath, ""))

	log.Info("generated role documents", "artifacts", len(result.Artifacts))
	return result, nil
}

// JobDescription returns the role's inline description with markup stripped, or the cleaned
// text of its job file
func JobDescription(role *config.RoleConfig) (string, error) {
	if role.JobDescription != "" {
		return ingestion.CleanText(ingestion.StripHTML(role.JobDescription)), nil
	}
	if role.JobFile == "" {
		return "", nil
	}
	text, _, err := ingestion.LoadJobDescription(role.ResolveJobFile())
	if err != nil {
		return "", fmt.Errorf("loading job description failed: %w", err)
	}
	return text, nil
}

// writeDocument writes Markdown output and, when enabled, its PDF conversion.
// A missing pandoc is recorded once as a warning.
func (g *generator) writeDocument(ctx context.Context, role string, kind Kind, name, content string) ([]Artifact, error) {
	path := filepath.Join(g.cfg.OutputDir, name)
	if err := rendering.WriteDocument(path, content); err != nil {
		return nil, err
	}
	g.log.Info("wrote document", "path", path)
	artifacts := []Artifact{newArtifact(role, kind, path, content)}

	if !g.cfg.ConvertPDF {
		return artifacts, nil
	}

	pdfPath, err := rendering.ConvertToPDF(ctx, g.cfg.PandocPath, path)
	switch {
	case errors.Is(err, rendering.ErrPandocNotFound):
		g.mu.Lock()
		if !g.pandocMissed {
			g.pandocMissed = true
			g.pdfWarnings = append(g.pdfWarnings, "pandoc not found, PDF conversion skipped")
			g.log.Warn("pandoc not found, skipping PDF conversion", "pandoc", g.cfg.PandocPath)
		}
		g.mu.Unlock()
	case err != nil:
		g.mu.Lock()
		g.pdfWarnings = append(g.pdfWarnings, fmt.Sprintf("%s: PDF conversion failed", path))
		g.mu.Unlock()
		g.log.Warn("PDF conversion failed", "path", path, "error", err)
	default:
		artifacts = append(artifacts, newArtifact(role, KindPDF, pdfPath, ""))
		g.log.Info("wrote document", "path", pdfPath)
	}
	return artifacts, nil
}
