package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-tailor/internal/config"
	"github.com/jonathan/ats-tailor/internal/pipeline"
	"github.com/jonathan/ats-tailor/internal/rendering"
	"github.com/jonathan/ats-tailor/internal/tailor"
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Assemble a cover letter for one role",
	Long: `Assemble cover letters for a single role from the master profile. The role is read from a role
config (--role) or described with --title and the related flags. The first style is rendered to
Markdown and every style is written to a variants JSON file.`,
	RunE: runCoverLetter,
}

var (
	letterJob               jobInput
	letterProfile           string
	letterRolePath          string
	letterTitle             string
	letterCompany           string
	letterSummaryType       string
	letterRequirements      []string
	letterKeyResponsibility string
	letterStyles            []string
	letterDate              string
	letterOutDir            string
)

func init() {
	letterJob.bind(coverLetterCmd, false)
	coverLetterCmd.Flags().StringVarP(&letterProfile, "profile", "p", "", "Path to master profile JSON (defaults to config profile)")
	coverLetterCmd.Flags().StringVarP(&letterRolePath, "role", "r", "", "Path to a role config (.json, .yaml)")
	coverLetterCmd.Flags().StringVarP(&letterTitle, "title", "t", "", "Role title when no role config is given")
	coverLetterCmd.Flags().StringVar(&letterCompany, "company", "", "Company name (overrides the name found in the job)")
	coverLetterCmd.Flags().StringVar(&letterSummaryType, "summary-type", "", "Summary type used for the background sentence")
	coverLetterCmd.Flags().StringArrayVar(&letterRequirements, "requirement", nil, "Job requirement to prove (repeatable)")
	coverLetterCmd.Flags().StringVar(&letterKeyResponsibility, "key-responsibility", "", "Completes \"a <title> who can ...\"")
	coverLetterCmd.Flags().StringSliceVarP(&letterStyles, "style", "s", nil, "Letter styles: enthusiastic, professional, achievement (defaults to config styles)")
	coverLetterCmd.Flags().StringVar(&letterDate, "date", "", "Date printed on the letter (defaults to today)")
	coverLetterCmd.Flags().StringVar(&letterOutDir, "out-dir", "", "Output directory (defaults to config output_dir)")

	rootCmd.AddCommand(coverLetterCmd)
}

func runCoverLetter(cmd *cobra.Command, _ []string) error {
	role, err := letterRole()
	if err != nil {
		return err
	}

	engine, cfg, err := newEngine()
	if err != nil {
		return err
	}
	p, err := loadProfile(letterProfile, cfg)
	if err != nil {
		return err
	}

	jobText := ""
	if letterJob.path != "" || letterJob.text != "" {
		jobText, err = letterJob.jobText()
	} else {
		jobText, err = pipeline.JobDescription(role)
	}
	if err != nil {
		return err
	}

	resume, err := engine.Tailor(p, role, jobText)
	if err != nil {
		return fmt.Errorf("tailoring failed: %w", err)
	}

	date := letterDate
	if date == "" {
		date = time.Now().Format(pipeline.DateLayout)
	}
	in := engine.LetterInput(p, role, resume, date)

	styles := letterStyles
	if len(styles) == 0 {
		styles = tailor.RoleStyles(role)
	}
	letters, err := engine.CoverLetters(in, styles...)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		pr := printer(cmd)
		pr.PrintCompanyInfo(resume.Company)
		pr.PrintProofMatches(in.Proofs)
	}

	renderer, err := rendering.NewRenderer(cfg.TemplateDir)
	if err != nil {
		return err
	}
	content, err := renderer.RenderCoverLetter(rendering.CoverLetterData{
		Name:      p.Basics.Name,
		RoleTitle: resume.RoleTitle,
		Company:   resume.Company,
		Letter:    letters[0],
	})
	if err != nil {
		return err
	}

	outDir := letterOutDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	slug := role.Slug()
	letterPath := filepath.Join(outDir, pipeline.CoverLetterFile(slug))
	if err := rendering.WriteDocument(letterPath, content); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Output: %s\n", letterPath)
	logger.Info("assembled cover letters", "role", role.RoleTitle, "styles", len(letters), "proofs", len(in.Proofs))

	return writeOutput(cmd, filepath.Join(outDir, pipeline.VariantsFile(slug)), letters)
}

// letterRole loads --role, or builds a role from the individual flags. Flags given alongside
// --role override its values.
func letterRole() (*config.RoleConfig, error) {
	var role *config.RoleConfig
	if letterRolePath != "" {
		loaded, err := config.LoadRoleConfig(letterRolePath)
		if err != nil {
			return nil, err
		}
		role = loaded
	} else {
		if letterTitle == "" {
			return nil, fmt.Errorf("must provide either --role or --title")
		}
		role = &config.RoleConfig{}
	}

	if letterTitle != "" {
		role.RoleTitle = letterTitle
	}
	if letterCompany != "" {
		role.Company = letterCompany
	}
	if letterSummaryType != "" {
		role.SummaryType = letterSummaryType
	}
	if len(letterRequirements) > 0 {
		role.Requirements = letterRequirements
	}
	if letterKeyResponsibility != "" {
		role.KeyResponsibility = letterKeyResponsibility
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	return role, nil
}
