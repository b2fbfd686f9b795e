// Package pipeline provides the high-level orchestration for batch document generation.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-tailor/internal/config"
	"github.com/jonathan/ats-tailor/internal/logging"
	"github.com/jonathan/ats-tailor/internal/observability"
	"github.com/jonathan/ats-tailor/internal/profile"
	"github.com/jonathan/ats-tailor/internal/rendering"
	"github.com/jonathan/ats-tailor/internal/schemas"
	"github.com/jonathan/ats-tailor/internal/tailor"
	"github.com/jonathan/ats-tailor/internal/types"
)

// DateLayout is how the cover letter date is printed
const DateLayout = "January 02, 2006"

// ManifestFile is written to the output directory after every run
const ManifestFile = "manifest.json"

// Options holds configuration for a generation run
type Options struct {
	// Config is the merged CLI configuration
	Config config.Config
	// Date is printed on cover letters; empty uses today
	Date   string
	Logger *logging.Logger
	// Printer receives verbose per-role summaries when Config.Verbose is set
	Printer *observability.Printer
}

// RoleResult is everything produced for one role
type RoleResult struct {
	Role      *config.RoleConfig
	Resume    *types.TailoredResume
	Letters   []types.CoverLetter
	Proofs    []types.ProofMatch
	Artifacts []Artifact
}

// Generate writes the general resume and, for every role config in the roles directory, a
// tailored resume, a cover letter and the letter variants. Roles run in parallel; the manifest
// lists artifacts in role order.
func Generate(ctx context.Context, opts Options) (*Manifest, error) {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}
	date := opts.Date
	if date == "" {
		date = time.Now().Format(DateLayout)
	}

	var warnings []string
	if w := checkSchema(log, schemas.Profile, cfg.Profile); w != "" {
		warnings = append(warnings, w)
	}

	prof, err := profile.LoadProfile(cfg.Profile)
	if err != nil {
		return nil, fmt.Errorf("loading profile failed: %w", err)
	}
	log.Info("loaded profile", "path", cfg.Profile, "achievements", len(prof.Achievements))

	engine, err := tailor.NewEngineFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	renderer, err := rendering.NewRenderer(cfg.TemplateDir)
	if err != nil {
		return nil, fmt.Errorf("loading templates failed: %w", err)
	}

	roles, err := config.LoadRoleConfigs(cfg.RolesDir)
	if err != nil {
		return nil, fmt.Errorf("loading role configs failed: %w", err)
	}
	for _, role := range roles {
		if filepath.Ext(role.Path) != ".json" {
			continue
		}
		if w := checkSchema(log, schemas.RoleConfig, role.Path); w != "" {
			warnings = append(warnings, w)
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	g := &generator{
		cfg:      cfg,
		log:      log,
		engine:   engine,
		renderer: renderer,
		profile:  prof,
		date:     date,
	}

	log.Info("generating general resume")
	general, err := g.general(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*RoleResult, len(roles))
	eg, egCtx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		eg.SetLimit(cfg.Workers)
	}
	for i, role := range roles {
		i, role := i, role
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			result, err := g.role(egCtx, role)
			if err != nil {
				return fmt.Errorf("role %q failed: %w", role.RoleTitle, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	manifest := &Manifest{
		Profile:   cfg.Profile,
		Date:      date,
		Artifacts: append([]Artifact{}, general...),
		Warnings:  append(warnings, g.warnings()...),
	}
	for _, r := range results {
		manifest.Artifacts = append(manifest.Artifacts, r.Artifacts...)
		if cfg.Verbose && opts.Printer != nil {
			printRole(opts.Printer, r)
		}
	}

	if err := writeJSON(filepath.Join(cfg.OutputDir, ManifestFile), manifest); err != nil {
		return nil, err
	}
	log.Info("generation complete", "roles", len(roles), "artifacts", len(manifest.Artifacts))

	return manifest, nil
}

// checkSchema validates a JSON file and returns a warning instead of failing the run
func checkSchema(log *logging.Logger, name schemas.Schema, path string) string {
	err := schemas.ValidateFile(name, path)
	if err == nil {
		return ""
	}

	var validationErr *schemas.ValidationError
	var loadErr *schemas.SchemaLoadError
	switch {
	case errors.As(err, &validationErr):
		log.Warn("schema validation failed", "file", path, "schema", name, "errors", len(validationErr.Errors))
		return fmt.Sprintf("%s: %d schema violation(s)", path, len(validationErr.Errors))
	case errors.As(err, &loadErr):
		log.Warn("schema unavailable", "schema", name, "error", loadErr)
		return fmt.Sprintf("%s: schema %s unavailable", path, name)
	default:
		log.Warn("schema check skipped", "file", path, "error", err)
		return fmt.Sprintf("%s: %v", path, err)
	}
}

func printRole(p *observability.Printer, r *RoleResult) {
	p.PrintKeywordSet(r.Resume.Keywords)
	p.PrintSummarySelection(r.Resume.Summary)
	p.PrintCompanyInfo(r.Resume.Company)
	p.PrintProofMatches(r.Proofs)
	for _, a := range r.Resume.Achievements {
		p.PrintImpactVariants(a.Variants, a.Recommended)
	}
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// generator carries the shared, read-only state of one run
type generator struct {
	cfg      config.Config
	log      *logging.Logger
	engine   *tailor.Engine
	renderer *rendering.Renderer
	profile  *types.Profile
	date     string

	mu           sync.Mutex
	pdfWarnings  []string
	pandocMissed bool
}

func (g *generator) warnings() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string{}, g.pdfWarnings...)
}
