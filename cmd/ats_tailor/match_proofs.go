package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-tailor/internal/tailor"
)

var matchProofsCmd = &cobra.Command{
	Use:   "match-proofs",
	Short: "Pair job requirements with supporting achievements",
	Long: `Pair each job requirement with the achievement that best evidences it. Each achievement is used
at most once, and pairs at or below the minimum confidence are dropped. Requirements default to the
tools, concepts and frameworks extracted from the job.`,
	RunE: runMatchProofs,
}

var (
	proofsJob           jobInput
	proofsProfile       string
	proofsAchievements  []string
	proofsRequirements  []string
	proofsLimit         int
	proofsMinConfidence float64
	proofsOutput        string
)

func init() {
	proofsJob.bind(matchProofsCmd, true)
	matchProofsCmd.Flags().StringVarP(&proofsProfile, "profile", "p", "", "Path to master profile JSON (defaults to config profile)")
	matchProofsCmd.Flags().StringArrayVarP(&proofsAchievements, "achievement", "a", nil, "Achievement text (repeatable, replaces profile achievements)")
	matchProofsCmd.Flags().StringArrayVarP(&proofsRequirements, "requirement", "r", nil, "Job requirement (repeatable, defaults to extracted keywords)")
	matchProofsCmd.Flags().IntVar(&proofsLimit, "limit", 0, "Maximum matches (defaults to config max_proofs)")
	matchProofsCmd.Flags().Float64Var(&proofsMinConfidence, "min-confidence", 0, "Exclusive confidence cutoff (defaults to config min_proof_confidence)")
	matchProofsCmd.Flags().StringVarP(&proofsOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")

	rootCmd.AddCommand(matchProofsCmd)
}

func runMatchProofs(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("limit") {
		if proofsLimit < 0 {
			return fmt.Errorf("--limit must be non-negative")
		}
		cfg.MaxProofs = proofsLimit
	}
	if cmd.Flags().Changed("min-confidence") {
		if proofsMinConfidence < 0 || proofsMinConfidence >= 1 {
			return fmt.Errorf("--min-confidence must be in [0, 1)")
		}
		cfg.MinProofConfidence = proofsMinConfidence
	}
	engine, err := tailor.NewEngineFromConfig(cfg)
	if err != nil {
		return err
	}

	achievements := append([]string{}, proofsAchievements...)
	if len(achievements) == 0 {
		p, err := loadProfile(proofsProfile, cfg)
		if err != nil {
			return err
		}
		for _, a := range p.Achievements {
			achievements = append(achievements, a.Description)
		}
	}

	requirements := append([]string{}, proofsRequirements...)
	if len(requirements) == 0 {
		ks, err := proofsJob.keywordSet(engine)
		if err != nil {
			return err
		}
		requirements = tailor.Requirements(nil, ks)
	}
	if len(requirements) == 0 {
		return fmt.Errorf("no requirements given and none extracted from the job")
	}

	matches := engine.MatchProofs(achievements, requirements)
	if cfg.Verbose {
		printer(cmd).PrintProofMatches(matches)
	}
	logger.Info("matched proofs", "requirements", len(requirements), "achievements", len(achievements), "matches", len(matches))

	return writeOutput(cmd, proofsOutput, matches)
}
