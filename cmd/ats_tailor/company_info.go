package main

import (
	"github.com/spf13/cobra"
)

var companyInfoCmd = &cobra.Command{
	Use:   "company-info",
	Short: "Extract company details from a job description",
	Long:  "Infer the company name, size, industry, location and stated values from a job description. Unknown fields fall back to generic defaults.",
	RunE:  runCompanyInfo,
}

var (
	companyJob    jobInput
	companyOutput string
)

func init() {
	companyJob.bind(companyInfoCmd, false)
	companyInfoCmd.Flags().StringVarP(&companyOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")

	rootCmd.AddCommand(companyInfoCmd)
}

func runCompanyInfo(cmd *cobra.Command, _ []string) error {
	engine, cfg, err := newEngine()
	if err != nil {
		return err
	}
	text, err := companyJob.jobText()
	if err != nil {
		return err
	}

	info := engine.CompanyInfo(text)
	if cfg.Verbose {
		printer(cmd).PrintCompanyInfo(info)
	}
	logger.Info("extracted company info", "company", info.Name, "size", info.Size)

	return writeOutput(cmd, companyOutput, info)
}
