package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-tailor/internal/config"
	"github.com/jonathan/ats-tailor/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate resumes and cover letters for every role config",
	Long: `Generate the general resume plus, for every role config in the roles directory, a tailored
resume, a cover letter, the letter variants and a scoring report. A manifest.json listing every
artifact is written to the output directory.`,
	RunE: runGenerate,
}

var (
	generateProfile     string
	generateRolesDir    string
	generateOutputDir   string
	generateTemplateDir string
	generateWorkers     int
	generatePDF         bool
	generatePandoc      string
	generateStyles      []string
	generateDate        string
)

func init() {
	generateCmd.Flags().StringVarP(&generateProfile, "profile", "p", "", "Path to master profile JSON")
	generateCmd.Flags().StringVarP(&generateRolesDir, "roles-dir", "r", "", "Directory of role configs")
	generateCmd.Flags().StringVarP(&generateOutputDir, "output-dir", "o", "", "Output directory")
	generateCmd.Flags().StringVar(&generateTemplateDir, "template-dir", "", "Directory of Markdown template overrides")
	generateCmd.Flags().IntVarP(&generateWorkers, "workers", "w", config.DefaultWorkers, "Role configs processed in parallel")
	generateCmd.Flags().BoolVar(&generatePDF, "pdf", false, "Convert Markdown output to PDF with pandoc")
	generateCmd.Flags().StringVar(&generatePandoc, "pandoc", "", "Path to the pandoc executable")
	generateCmd.Flags().StringSliceVarP(&generateStyles, "style", "s", nil, "Cover letter styles for roles that name none")
	generateCmd.Flags().StringVar(&generateDate, "date", "", "Date printed on cover letters (defaults to today)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("profile") {
		cfg.Profile = generateProfile
	}
	if flags.Changed("roles-dir") {
		cfg.RolesDir = generateRolesDir
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = generateOutputDir
	}
	if flags.Changed("template-dir") {
		cfg.TemplateDir = generateTemplateDir
	}
	if flags.Changed("workers") {
		cfg.Workers = generateWorkers
	}
	if flags.Changed("pdf") {
		cfg.ConvertPDF = generatePDF
	}
	if flags.Changed("pandoc") {
		cfg.PandocPath = generatePandoc
	}
	if flags.Changed("style") {
		cfg.Styles = generateStyles
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	manifest, err := pipeline.Generate(cmd.Context(), pipeline.Options{
		Config:  cfg,
		Date:    generateDate,
		Logger:  logger,
		Printer: printer(cmd),
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	out := cmd.ErrOrStderr()
	for _, a := range manifest.Artifacts {
		_, _ = fmt.Fprintf(out, "Output: %s\n", a.Path)
	}
	for _, w := range manifest.Warnings {
		_, _ = fmt.Fprintf(out, "Warning: %s\n", w)
	}
	return nil
}
